package damage

import (
	"image"
	"testing"

	"github.com/Fhiel/micropython-bertone-dashboard/pixel"
	"github.com/Fhiel/micropython-bertone-dashboard/pixfont"
)

var panelBounds = image.Rect(0, 0, 128, 32)

func TestMarkClipsToBounds(t *testing.T) {
	tr := NewTracker(panelBounds)
	tr.Mark(image.Rect(120, 28, 200, 64))

	want := image.Rect(120, 28, 128, 32)
	if regions := tr.Regions(); len(regions) != 1 || regions[0] != want {
		t.Errorf("expected single clipped region %s, got %v", want, regions)
	}

	tr.Mark(image.Rect(130, 0, 140, 8))
	if regions := tr.Regions(); len(regions) != 1 {
		t.Errorf("expected fully out-of-bounds mark to be dropped, got %v", regions)
	}
}

func TestMarkMerge(t *testing.T) {
	testCases := []struct {
		name  string
		marks []image.Rectangle
		want  []image.Rectangle
	}{
		{
			name:  "disjoint",
			marks: []image.Rectangle{image.Rect(0, 0, 10, 8), image.Rect(40, 0, 50, 8)},
			want:  []image.Rectangle{image.Rect(0, 0, 10, 8), image.Rect(40, 0, 50, 8)},
		},
		{
			name:  "overlapping",
			marks: []image.Rectangle{image.Rect(0, 0, 10, 8), image.Rect(5, 0, 20, 8)},
			want:  []image.Rectangle{image.Rect(0, 0, 20, 8)},
		},
		{
			name:  "adjacent",
			marks: []image.Rectangle{image.Rect(0, 0, 10, 8), image.Rect(10, 0, 20, 8)},
			want:  []image.Rectangle{image.Rect(0, 0, 20, 8)},
		},
		{
			name: "chained",
			marks: []image.Rectangle{
				image.Rect(0, 0, 10, 8),
				image.Rect(20, 0, 30, 8),
				image.Rect(10, 0, 20, 8), // bridges the two
			},
			want: []image.Rectangle{image.Rect(0, 0, 30, 8)},
		},
	}
	for _, test := range testCases {
		t.Run(test.name, func(it *testing.T) {
			tr := NewTracker(panelBounds)
			for _, r := range test.marks {
				tr.Mark(r)
			}
			regions := tr.Regions()
			if len(regions) != len(test.want) {
				it.Fatalf("expected %d regions, got %v", len(test.want), regions)
			}
			for i, want := range test.want {
				if regions[i] != want {
					it.Errorf("region %d: expected %s, got %s", i, want, regions[i])
				}
			}
		})
	}
}

func TestMergeNeverShrinks(t *testing.T) {
	tr := NewTracker(panelBounds)
	marks := []image.Rectangle{
		image.Rect(0, 0, 16, 8),
		image.Rect(8, 8, 24, 16),
		image.Rect(100, 24, 128, 32),
	}
	for _, r := range marks {
		tr.Mark(r)
	}
	for _, mark := range marks {
		covered := false
		for _, have := range tr.Regions() {
			if mark.In(have) {
				covered = true
				break
			}
		}
		if !covered {
			t.Errorf("marked region %s no longer covered by %v", mark, tr.Regions())
		}
	}
}

func TestMarkDiffIdempotence(t *testing.T) {
	f := pixel.NewFrame(128, 32)
	tr := NewTracker(f.Bounds())

	r := pixfont.DrawText(f.Pending(), 0, 5, "88", pixfont.Large, false)
	tr.MarkDiff(f, r)
	if !tr.Pending() {
		t.Fatal("expected initial draw to record damage")
	}
	f.Commit(f.Bounds())
	tr.Reset()

	// Rendering the same text over itself must record nothing.
	r = pixfont.DrawText(f.Pending(), 0, 5, "88", pixfont.Large, false)
	tr.MarkDiff(f, r)
	if tr.Pending() {
		t.Errorf("expected no damage after identical redraw, got %v", tr.Regions())
	}
}

func TestMarkDiffMinimality(t *testing.T) {
	f := pixel.NewFrame(128, 32)
	tr := NewTracker(f.Bounds())

	pixfont.DrawText(f.Pending(), 0, 5, "128", pixfont.Large, false)
	f.Commit(f.Bounds())

	// Only the last digit changes: damage must stay inside that 16 px cell.
	r := pixfont.DrawText(f.Pending(), 0, 5, "129", pixfont.Large, false)
	tr.MarkDiff(f, r)

	regions := tr.Regions()
	if len(regions) != 1 {
		t.Fatalf("expected one damage region, got %v", regions)
	}
	cell := image.Rect(32, 0, 48, 32) // third cell, page-aligned height
	if !regions[0].In(cell) {
		t.Errorf("expected damage inside digit cell %s, got %s", cell, regions[0])
	}
}

func TestRegionsSnapshot(t *testing.T) {
	tr := NewTracker(panelBounds)
	a := image.Rect(0, 0, 10, 8)
	b := image.Rect(40, 0, 50, 8)
	tr.Mark(a)
	tr.Mark(b)

	// Draining regions while iterating a Regions result must not disturb
	// the iteration: the snapshot keeps every region visible exactly once.
	regions := tr.Regions()
	tr.Clear(regions[0])
	if len(regions) != 2 || regions[0] != a || regions[1] != b {
		t.Errorf("expected snapshot %v to survive Clear, got %v", []image.Rectangle{a, b}, regions)
	}
	if got := tr.Regions(); len(got) != 1 || got[0] != b {
		t.Errorf("expected only %s to remain tracked, got %v", b, got)
	}
}

func TestClear(t *testing.T) {
	tr := NewTracker(panelBounds)
	a := image.Rect(0, 0, 10, 8)
	b := image.Rect(40, 0, 50, 8)
	tr.Mark(a)
	tr.Mark(b)

	tr.Clear(a)
	if regions := tr.Regions(); len(regions) != 1 || regions[0] != b {
		t.Errorf("expected only %s to remain, got %v", b, regions)
	}

	// Clearing a rectangle that is not tracked verbatim is a no-op.
	tr.Clear(image.Rect(40, 0, 45, 8))
	if !tr.Pending() {
		t.Error("expected partial clear to leave the region tracked")
	}
}
