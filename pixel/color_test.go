package pixel

import (
	"image/color"
	"testing"
)

func TestMono(t *testing.T) {
	for y := 0; y < 2; y++ {
		t.Run("", func(it *testing.T) {
			c := Off
			if y > 0 {
				c = On
			}
			r, g, b, _ := c.RGBA()
			y *= 0xF
			want := uint32(y | y<<4 | y<<8 | y<<12)
			if r != want {
				it.Errorf("expected red to be %#04x, got %#04x", want, r)
			}
			if g != want {
				it.Errorf("expected green to be %#04x, got %#04x", want, g)
			}
			if b != want {
				it.Errorf("expected blue to be %#04x, got %#04x", want, b)
			}
		})
	}
}

func TestMonoInvert(t *testing.T) {
	if On.Invert() != Off || Off.Invert() != On {
		t.Error("expected Invert to swap polarity")
	}
}

func TestMonoModel(t *testing.T) {
	testCases := []struct {
		color color.Color
		want  Mono
	}{
		{color.White, On},
		{color.Black, Off},
		{color.Gray{Y: 0xC0}, On},
		{On, On},
		{Off, Off},
	}
	for _, test := range testCases {
		t.Run("", func(it *testing.T) {
			if v := MonoModel.Convert(test.color); v != test.want {
				it.Errorf("expected %v to convert to %#+v, got %#+v", test.color, test.want, v)
			}
		})
	}
}
