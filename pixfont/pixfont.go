// Package pixfont holds the fixed pixel-art fonts used on the dashboard
// panels and the text rasterizer that blits them into a framebuffer.
//
// The fonts are exposed as [basicfont.Face] values so they plug into the
// regular [golang.org/x/image/font] drawing machinery. Both faces are
// monospaced and include U+FFFD, which basicfont substitutes for any rune
// the face does not cover; unsupported characters therefore render as a
// placeholder box instead of shifting the remaining cells.
package pixfont

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"golang.org/x/image/font/basicfont"
)

var (
	// Large is the 16×21 face used for the primary readouts (speed digits,
	// odometer digits, gear letter).
	Large = buildFace(largeSeeds, 8, 7, 2, 3)

	// Small is the 12×16 face used for units, labels and secondary values.
	Small = buildFace(smallSeeds, 6, 8, 2, 2)
)

// buildFace scales the seed glyphs by (sx, sy) and packs them into a single
// vertically stacked alpha mask, the layout basicfont expects. Seed data is
// static, so any malformed entry is a programming error and panics at init.
func buildFace(seeds map[rune][]string, seedW, seedH, sx, sy int) *basicfont.Face {
	var (
		w     = seedW * sx
		h     = seedH * sy
		runes = make([]rune, 0, len(seeds))
	)
	for r := range seeds {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	mask := image.NewAlpha(image.Rect(0, 0, w, len(runes)*h))
	for i, r := range runes {
		rows := seeds[r]
		if len(rows) != seedH {
			panic(fmt.Sprintf("pixfont: glyph %q has %d rows, want %d", r, len(rows), seedH))
		}
		for sy0, row := range rows {
			if len(row) != seedW {
				panic(fmt.Sprintf("pixfont: glyph %q row %d is %d wide, want %d", r, sy0, len(row), seedW))
			}
			for sx0, cell := range row {
				if cell != '#' {
					continue
				}
				for dy := 0; dy < sy; dy++ {
					for dx := 0; dx < sx; dx++ {
						mask.SetAlpha(sx0*sx+dx, (i*seedH+sy0)*sy+dy, color.Alpha{A: 0xFF})
					}
				}
			}
		}
	}

	return &basicfont.Face{
		Advance: w,
		Width:   w,
		Height:  h,
		Ascent:  h,
		Descent: 0,
		Mask:    mask,
		Ranges:  glyphRanges(runes),
	}
}

// glyphRanges groups the sorted rune set into the contiguous ranges
// basicfont uses to locate a glyph strip in the mask.
func glyphRanges(runes []rune) []basicfont.Range {
	var ranges []basicfont.Range
	for i, r := range runes {
		if n := len(ranges); n > 0 && ranges[n-1].High == r {
			ranges[n-1].High = r + 1
			continue
		}
		ranges = append(ranges, basicfont.Range{Low: r, High: r + 1, Offset: i})
	}
	return ranges
}

// Covers reports whether the face has a dedicated glyph for r.
func Covers(face *basicfont.Face, r rune) bool {
	for _, rng := range face.Ranges {
		if r >= rng.Low && r < rng.High {
			return true
		}
	}
	return false
}
