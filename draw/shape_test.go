package draw

import (
	"image"
	"testing"

	"github.com/Fhiel/micropython-bertone-dashboard/pixel"
)

func TestBox(t *testing.T) {
	i := pixel.NewMonoVerticalLSBImage(16, 16)
	Box(i, image.Rect(2, 3, 6, 9), pixel.On)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := pixel.Mono{On: x >= 2 && x < 6 && y >= 3 && y < 9}
			if v := i.At(x, y); v != want {
				t.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, v, want)
			}
		}
	}
}

func TestRectangle(t *testing.T) {
	i := pixel.NewMonoVerticalLSBImage(16, 16)
	r := image.Rect(1, 1, 10, 10)
	Rectangle(i, r, pixel.On)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			edge := x == r.Min.X || x == r.Max.X-1 || y == r.Min.Y || y == r.Max.Y-1
			if v := i.At(x, y); v != (pixel.Mono{On: edge}) {
				t.Fatalf("pixel (%d,%d) is %#+v, expected edge=%v", x, y, v, edge)
			}
		}
	}
}

func TestLines(t *testing.T) {
	i := pixel.NewMonoVerticalLSBImage(16, 16)
	HorizontalLine(i, 0, 5, 16, pixel.On)
	VerticalLine(i, 5, 0, 16, pixel.On)
	Line(i, image.Pt(0, 0), image.Pt(15, 15), pixel.On)

	for x := 0; x < 16; x++ {
		if i.At(x, 5) != pixel.On {
			t.Errorf("expected horizontal line pixel at (%d,5)", x)
		}
		if i.At(5, x) != pixel.On {
			t.Errorf("expected vertical line pixel at (5,%d)", x)
		}
		if i.At(x, x) != pixel.On {
			t.Errorf("expected diagonal pixel at (%d,%d)", x, x)
		}
	}
}
