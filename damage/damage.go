// Package damage tracks the dirty rectangles of a panel framebuffer: the
// regions whose pending pixel content differs from what was last transmitted
// to the hardware. The display driver drains the tracked regions and sends
// only those windows, which is what keeps the panels flicker-free and the
// shared bus quiet.
package damage

import (
	"image"

	"github.com/Fhiel/micropython-bertone-dashboard/pixel"
)

// Tracker records the damaged regions of one panel. The zero value is not
// usable; construct with [NewTracker]. Tracker is not safe for concurrent
// use, matching the single control flow that owns each panel.
type Tracker struct {
	bounds  image.Rectangle
	regions []image.Rectangle
}

func NewTracker(bounds image.Rectangle) *Tracker {
	return &Tracker{bounds: bounds}
}

// Mark records r as damaged. The rectangle is clipped to the panel bounds
// and merged with any overlapping or edge-adjacent region already tracked;
// merging takes the axis-aligned union, so bounds only ever grow.
func (t *Tracker) Mark(r image.Rectangle) {
	r = r.Intersect(t.bounds)
	if r.Empty() {
		return
	}

	// Greedy sweep: absorb every region touching r, then restart, since the
	// grown rectangle may now touch regions it previously missed.
	for {
		merged := false
		keep := t.regions[:0]
		for _, have := range t.regions {
			if touches(have, r) {
				r = r.Union(have)
				merged = true
				continue
			}
			keep = append(keep, have)
		}
		t.regions = keep
		if !merged {
			break
		}
	}
	t.regions = append(t.regions, r)
}

// MarkDiff byte-compares pending against committed frame content inside r
// and records only the rectangle that actually changed. Redrawing identical
// content therefore records nothing at all.
func (t *Tracker) MarkDiff(f *pixel.Frame, r image.Rectangle) {
	if changed, ok := f.DiffRect(r); ok {
		t.Mark(changed)
	}
}

// Regions returns the tracked regions, merged and non-overlapping, in the
// order they were first discovered. The returned slice is a snapshot: later
// Mark and Clear calls do not affect it, so a flush loop can drain regions
// one by one while iterating.
func (t *Tracker) Regions() []image.Rectangle {
	return append([]image.Rectangle(nil), t.regions...)
}

// Pending reports whether any damage is tracked.
func (t *Tracker) Pending() bool {
	return len(t.regions) > 0
}

// Clear drops r from the tracked set after it was transmitted. Only exact
// region matches are removed: a failed partial transmission must leave its
// region for the next flush cycle.
func (t *Tracker) Clear(r image.Rectangle) {
	keep := t.regions[:0]
	for _, have := range t.regions {
		if have != r {
			keep = append(keep, have)
		}
	}
	t.regions = keep
}

// Reset drops all tracked damage.
func (t *Tracker) Reset() {
	t.regions = t.regions[:0]
}

// touches reports whether the rectangles overlap or share an edge. Adjacent
// regions are merged too: one addressing window is cheaper than two.
func touches(a, b image.Rectangle) bool {
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y
}
