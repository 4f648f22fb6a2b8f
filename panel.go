package dashboard

import (
	"fmt"
	"image"
	"log"

	"golang.org/x/image/font/basicfont"

	"github.com/Fhiel/micropython-bertone-dashboard/damage"
	"github.com/Fhiel/micropython-bertone-dashboard/draw"
	"github.com/Fhiel/micropython-bertone-dashboard/pixel"
	"github.com/Fhiel/micropython-bertone-dashboard/pixfont"
)

const defaultContrast = 0xCF

// PanelConfig describes one physical OLED panel.
type PanelConfig struct {
	// Name identifies the panel in errors and debug logs.
	Name string

	// Width and Height of the panel in pixels.
	Width  int
	Height int

	// Contrast is the initial contrast level, 0 selects the default.
	Contrast byte
}

// Panel drives one SSD1306 panel. It owns the panel's framebuffer pair and
// damage tracker and is the only component that talks to the controller.
//
// A Panel must only be used from a single goroutine.
type Panel struct {
	c         Conn
	name      string
	width     int
	height    int
	pages     int
	colOffset byte

	frame   *pixel.Frame
	tracker *damage.Tracker

	// Applied hardware state. Contrast and inversion writes matching this
	// state are suppressed.
	contrast      int16 // -1 until first applied
	inverted      bool
	invertApplied bool
	halted        bool
}

// NewPanel initializes the display controller and returns a panel with
// cleared, committed framebuffers. An error here is a configuration fault:
// the caller should take the panel out of service and keep the others
// running.
func NewPanel(c Conn, config PanelConfig) (*Panel, error) {
	var (
		displayClockDiv byte
		comPins         byte
		colOffset       byte
	)
	switch {
	case config.Width == 128 && config.Height == 32:
		displayClockDiv, comPins, colOffset = 0x80, 0x02, 0
	case config.Width == 128 && config.Height == 64:
		displayClockDiv, comPins, colOffset = 0x80, 0x12, 0
	case config.Width == 64 && config.Height == 32:
		displayClockDiv, comPins, colOffset = 0x80, 0x12, 32
	default:
		return nil, fmt.Errorf("%w: %s %dx%d", ErrUnsupportedSize, config.Name, config.Width, config.Height)
	}

	d := &Panel{
		c:         c,
		name:      config.Name,
		width:     config.Width,
		height:    config.Height,
		pages:     config.Height / 8,
		colOffset: colOffset,
		frame:     pixel.NewFrame(config.Width, config.Height),
		contrast:  -1,
	}
	d.tracker = damage.NewTracker(d.frame.Bounds())

	if err := d.commands(
		[]byte{setDisplayOff},
		[]byte{setDisplayClockDiv, displayClockDiv},
		[]byte{setMultiplexRatio, byte(config.Height - 1)},
		[]byte{setDisplayOffset, 0x00},
		[]byte{setStartLine},
		[]byte{setChargePump, 0x14},
		[]byte{setMemoryMode, 0x02}, // page addressing
		[]byte{setSegmentRemap},
		[]byte{setComScanDec},
		[]byte{setComPins, comPins},
		[]byte{setPrecharge, 0xF1},
		[]byte{setVCOMDeselect, 0x40},
		[]byte{deactivateScroll},
		[]byte{setDisplayAllOnResume},
		[]byte{setNormalDisplay},
	); err != nil {
		return nil, fmt.Errorf("dashboard: %s init: %w", config.Name, err)
	}
	d.invertApplied = true // setNormalDisplay was just sent

	contrast := config.Contrast
	if contrast == 0 {
		contrast = defaultContrast
	}
	if err := d.SetContrast(contrast); err != nil {
		return nil, fmt.Errorf("dashboard: %s init: %w", config.Name, err)
	}

	// Blank the whole GDDRAM so the panel matches the committed buffer.
	if err := d.flushWindow(d.Bounds()); err != nil {
		return nil, fmt.Errorf("dashboard: %s init: %w", config.Name, err)
	}

	if err := d.Show(true); err != nil {
		return nil, fmt.Errorf("dashboard: %s init: %w", config.Name, err)
	}

	return d, nil
}

func (d *Panel) String() string {
	return fmt.Sprintf("%s SSD1306 %dx%d on %s", d.name, d.width, d.height, d.c)
}

func (d *Panel) Bounds() image.Rectangle {
	return d.frame.Bounds()
}

// Frame exposes the panel's framebuffer pair, mainly for tests.
func (d *Panel) Frame() *pixel.Frame {
	return d.frame
}

// Pending is the panel's draw target.
func (d *Panel) Pending() *pixel.MonoVerticalLSBImage {
	return d.frame.Pending()
}

// Damage returns the panel's pending damage regions.
func (d *Panel) Damage() []image.Rectangle {
	return d.tracker.Regions()
}

func (d *Panel) data(data ...byte) error {
	return d.c.Data(data...)
}

func (d *Panel) command(command byte, data ...byte) error {
	return d.c.Command(command, data...)
}

func (d *Panel) commands(commands ...[]byte) (err error) {
	for _, command := range commands {
		if err = d.c.Command(command[0], command[1:]...); err != nil {
			return
		}
	}
	return
}

// DrawText renders s into the pending buffer with the top-left corner of the
// first cell at (x, y) and records the bytes that actually changed. Text
// that would overflow the panel is clipped.
func (d *Panel) DrawText(x, y int, s string, face *basicfont.Face, inverted bool) image.Rectangle {
	r := pixfont.DrawText(d.frame.Pending(), x, y, s, face, inverted)
	d.tracker.MarkDiff(d.frame, r)
	return r
}

// FillRect paints a solid rectangle into the pending buffer and records the
// bytes that actually changed.
func (d *Panel) FillRect(r image.Rectangle, c pixel.Mono) {
	r = r.Intersect(d.Bounds())
	draw.Box(d.frame.Pending(), r, c)
	d.tracker.MarkDiff(d.frame, r)
}

// Clear blanks the pending buffer and records the resulting damage.
func (d *Panel) Clear() {
	d.frame.Pending().Clear()
	d.tracker.MarkDiff(d.frame, d.Bounds())
}

// Flush reconciles the physical panel with the pending buffer: each damage
// region becomes one page-aligned addressing window plus the pending bytes
// for that window. Regions are flushed in the order discovered. On success
// the window is committed and its damage cleared; on failure the damage is
// left pending so the next flush retries it, and the committed state is
// untouched.
func (d *Panel) Flush() error {
	for _, region := range d.tracker.Regions() {
		if err := d.flushWindow(region); err != nil {
			return fmt.Errorf("dashboard: %s flush %s: %w", d.name, region, err)
		}
		d.frame.Commit(region)
		d.tracker.Clear(region)
		if debug {
			log.Printf("%s: flushed %s", d.name, region)
		}
	}
	return nil
}

// flushWindow transmits the pending bytes covering r, page by page.
func (d *Panel) flushWindow(r image.Rectangle) error {
	r = r.Intersect(d.Bounds())
	if r.Empty() {
		return nil
	}

	var (
		pix       = d.frame.Pending().Pix
		stride    = d.frame.Pending().Stride
		pageStart = r.Min.Y / 8
		pageEnd   = (r.Max.Y + 7) / 8
		col       = byte(r.Min.X) + d.colOffset
	)
	for page := pageStart; page < pageEnd; page++ {
		if err := d.commands(
			[]byte{setPageStart | byte(page)},
			[]byte{setLowColumn | (col & 0x0F)},
			[]byte{setHighColumn | (col >> 4)},
		); err != nil {
			return err
		}
		var (
			off = page*stride + r.Min.X
			end = page*stride + r.Max.X
		)
		if err := d.data(pix[off:end]...); err != nil {
			return err
		}
	}
	return nil
}

// SetContrast adjusts the contrast level. A level matching the applied
// hardware state sends nothing.
func (d *Panel) SetContrast(level byte) error {
	if d.contrast == int16(level) {
		return nil
	}
	if err := d.command(setContrast, level); err != nil {
		return err
	}
	d.contrast = int16(level)
	return nil
}

// SetInverted toggles the controller's hardware polarity inversion. A flag
// matching the applied hardware state sends nothing.
func (d *Panel) SetInverted(inverted bool) error {
	if d.invertApplied && d.inverted == inverted {
		return nil
	}
	cmnd := byte(setNormalDisplay)
	if inverted {
		cmnd = setInvertDisplay
	}
	if err := d.command(cmnd); err != nil {
		return err
	}
	d.inverted, d.invertApplied = inverted, true
	return nil
}

// Show toggles the display on or off.
func (d *Panel) Show(show bool) error {
	if show {
		return d.command(setDisplayOn)
	}
	return d.command(setDisplayOff)
}

// Close switches the panel off and closes its connection.
func (d *Panel) Close() error {
	if !d.halted {
		if err := d.Show(false); err != nil {
			_ = d.c.Close()
			return err
		}
		d.halted = true
	}
	return d.c.Close()
}
