package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func testRandomColor() color.Color {
	if rand.Intn(2) == 0 {
		return Off
	}
	return On
}

func TestMonoVerticalLSBImage(t *testing.T) {
	testCases := []image.Point{
		image.Point{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(64, 32),
		image.Pt(128, 32),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := NewMonoVerticalLSBImage(test.X, test.Y)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != MonoModel {
				it.Errorf("expected color model %T, got %T", MonoModel, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := MonoModel.Convert(testRandomColor())
						i.Set(x, y, c)
						if i.At(x, y) != c {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, i.At(x, y), c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y - 1; y < test.Y*2+1; y++ {
					for x := -test.X - 1; x < test.X*2+1; x++ {
						i.Set(x, y, testRandomColor())
						if x < 0 || y < 0 || x >= test.X || y >= test.Y {
							if v := i.At(x, y); v != color.Transparent {
								itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
								return
							}
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				i.Fill(On)
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						if i.At(x, y) != On {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, i.At(x, y), On)
							return
						}
					}
				}
				i.Clear()
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						if i.At(x, y) != Off {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, i.At(x, y), Off)
							return
						}
					}
				}
			})
		})
	}
}

func TestMonoVerticalLSBImagePacking(t *testing.T) {
	i := NewMonoVerticalLSBImage(128, 32)

	if v := i.Pages(); v != 4 {
		t.Errorf("expected 4 pages, got %d", v)
	}

	// LSB is the topmost pixel of a page.
	i.Set(3, 0, On)
	if v := i.Pix[i.PixOffset(3, 0)]; v != 0x01 {
		t.Errorf("expected byte %#02x, got %#02x", 0x01, v)
	}

	i.Set(3, 7, On)
	if v := i.Pix[i.PixOffset(3, 0)]; v != 0x81 {
		t.Errorf("expected byte %#02x, got %#02x", 0x81, v)
	}

	// Row 8 starts the second page.
	i.Set(5, 8, On)
	if v := i.Pix[i.PixOffset(5, 1)]; v != 0x01 {
		t.Errorf("expected byte %#02x, got %#02x", 0x01, v)
	}
}
