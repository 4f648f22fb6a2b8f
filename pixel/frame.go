package pixel

import "image"

// Frame is the double-buffered state of one panel: the pending image receives
// draw operations, the committed image mirrors what the hardware last
// acknowledged. Only [Frame.Commit] writes to the committed image.
type Frame struct {
	pending   *MonoVerticalLSBImage
	committed *MonoVerticalLSBImage
}

func NewFrame(w, h int) *Frame {
	return &Frame{
		pending:   NewMonoVerticalLSBImage(w, h),
		committed: NewMonoVerticalLSBImage(w, h),
	}
}

// Pending is the draw target.
func (f *Frame) Pending() *MonoVerticalLSBImage {
	return f.pending
}

// Committed is the image last transmitted to the panel.
func (f *Frame) Committed() *MonoVerticalLSBImage {
	return f.committed
}

func (f *Frame) Bounds() image.Rectangle {
	return f.pending.Rect
}

// pageSpan returns the page range [start,end) covering the y extent of r.
func pageSpan(r image.Rectangle) (start, end int) {
	return r.Min.Y / 8, (r.Max.Y + 7) / 8
}

// DiffRect compares pending and committed bytes inside r and returns the
// smallest rectangle covering every difference. The returned rectangle is
// page-aligned vertically, because a byte covers 8 stacked pixels and the
// panel can only be addressed in whole pages. The second return value is
// false when the region is byte-identical in both buffers.
func (f *Frame) DiffRect(r image.Rectangle) (image.Rectangle, bool) {
	r = r.Intersect(f.pending.Rect)
	if r.Empty() {
		return image.Rectangle{}, false
	}

	var (
		stride           = f.pending.Stride
		pageMin, pageMax = pageSpan(r)
		minX             = r.Max.X
		maxX             = r.Min.X
		minPage          = pageMax
		maxPage          = pageMin
	)
	for page := pageMin; page < pageMax; page++ {
		row := page * stride
		for x := r.Min.X; x < r.Max.X; x++ {
			if f.pending.Pix[row+x] == f.committed.Pix[row+x] {
				continue
			}
			if x < minX {
				minX = x
			}
			if x+1 > maxX {
				maxX = x + 1
			}
			if page < minPage {
				minPage = page
			}
			if page+1 > maxPage {
				maxPage = page + 1
			}
		}
	}
	if minX >= maxX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minPage*8, maxX, maxPage*8).Intersect(f.pending.Rect), true
}

// Commit copies the page-aligned window covering r from pending to committed.
// It must only be called after the same window was transmitted successfully.
func (f *Frame) Commit(r image.Rectangle) {
	r = r.Intersect(f.pending.Rect)
	if r.Empty() {
		return
	}

	stride := f.pending.Stride
	pageMin, pageMax := pageSpan(r)
	for page := pageMin; page < pageMax; page++ {
		var (
			off = page*stride + r.Min.X
			end = page*stride + r.Max.X
		)
		copy(f.committed.Pix[off:end], f.pending.Pix[off:end])
	}
}

// Synced reports whether pending and committed are byte-identical.
func (f *Frame) Synced() bool {
	for i := range f.pending.Pix {
		if f.pending.Pix[i] != f.committed.Pix[i] {
			return false
		}
	}
	return true
}

// Clear zeroes both buffers, leaving the frame in a known committed state.
func (f *Frame) Clear() {
	f.pending.Clear()
	f.committed.Clear()
}
