package dashboard

import (
	"fmt"
	"image"

	"github.com/golang/freetype"
	"golang.org/x/image/font"

	"github.com/Fhiel/micropython-bertone-dashboard/pixel"
)

// Splash renders a one-off banner line on the central panel from a TrueType
// font instead of the built-in pixel faces. Meant for the boot banner only:
// antialiased coverage collapses to 1-bit through the mono color model, so
// small sizes render better with [Manager.Boot]. Call [Manager.FinishBoot]
// afterwards as usual.
func (m *Manager) Splash(ttf []byte, text string) error {
	if !m.central.ok() {
		return m.central.err
	}

	f, err := freetype.ParseFont(ttf)
	if err != nil {
		return fmt.Errorf("dashboard: splash font: %w", err)
	}

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(24)
	c.SetHinting(font.HintingFull)
	c.SetClip(m.central.Bounds())
	c.SetDst(m.central.Pending())
	c.SetSrc(image.NewUniform(pixel.On))

	if _, err := c.DrawString(text, freetype.Pt(4, 26)); err != nil {
		return fmt.Errorf("dashboard: splash: %w", err)
	}

	m.central.tracker.MarkDiff(m.central.frame, m.central.Bounds())
	return m.central.Flush()
}
