package pixfont

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Fhiel/micropython-bertone-dashboard/draw"
	"github.com/Fhiel/micropython-bertone-dashboard/pixel"
)

var (
	srcOn  = image.NewUniform(pixel.On)
	srcOff = image.NewUniform(pixel.Off)
)

// TextRect is the cell run occupied by n characters drawn at (x, y), where
// (x, y) is the top-left corner of the first cell.
func TextRect(face *basicfont.Face, x, y, n int) image.Rectangle {
	return image.Rect(x, y, x+n*face.Advance, y+face.Ascent+face.Descent)
}

// DrawText blits s into dst with the top-left corner of the first cell at
// (x, y). The whole cell run is repainted: background first, then the glyph
// bits, so stale pixels from a previous draw cannot survive. When inverted
// is set the polarity of every pixel in the run is swapped.
//
// Drawing is clipped to dst's bounds. The returned rectangle is the cell run
// clipped the same way, which is the exact region a damage tracker needs to
// inspect. DrawText touches nothing outside that rectangle.
func DrawText(dst draw.Image, x, y int, s string, face *basicfont.Face, inverted bool) image.Rectangle {
	fg, bg := image.Image(srcOn), image.Image(srcOff)
	if inverted {
		fg, bg = bg, fg
	}

	runes := []rune(s)
	cells := TextRect(face, x, y, len(runes)).Intersect(dst.Bounds())
	if cells.Empty() {
		return image.Rectangle{}
	}

	draw.Draw(dst, cells, bg, image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  dst,
		Src:  fg,
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(s)

	return cells
}
