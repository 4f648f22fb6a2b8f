package dashboard

import (
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/Fhiel/micropython-bertone-dashboard/pixel"
	"github.com/Fhiel/micropython-bertone-dashboard/pixfont"
)

// Panel layout. Large cells are 16×21, small cells 12×16; the 21 px rows sit
// at y=5 to center them on a 32 px panel. Static labels live in columns the
// dynamic fields never touch, so they are rendered exactly once.
const (
	centralSpeedX = 8 // 3 large cells: x 8..56
	centralSpeedY = 5
	centralUnitX  = 76 // "KM/H", 4 small cells: x 76..124
	centralUnitY  = 8

	odoTotalX    = 0  // 6 large cells: x 0..96
	odoTripX     = 8  // 5 large cells: x 8..88
	odoSpeedX    = 8  // 3 large cells: x 8..56
	odoSpeedUnit = 76 // "KM/H": x 76..124
	odoValueY    = 5
	odoUnitX     = 100 // "KM": x 100..124
	odoUnitY     = 8
	odoLabelX    = 0  // temp mode labels
	odoTempX     = 76 // temp mode values, 4 small cells: x 76..124
	odoMotorY    = 0
	odoMCUY      = 16

	rndGearX = 24 // (64-16)/2, matching the original layout
	rndGearY = 5  // (32-21)/2
)

// Config carries the startup state the engine cannot know by itself.
type Config struct {
	// Contrast is the initial contrast for all panels, 0 for the default.
	Contrast byte

	// Odometer is the last known cumulative distance in km, supplied by the
	// external persistence collaborator at startup.
	Odometer float64

	// Trip is the last known trip distance in km.
	Trip float64
}

// panelSlot pairs a panel with its configuration fault, if any. A slot with
// a non-nil err is out of service; the other panels keep running.
type panelSlot struct {
	*Panel
	err error
}

func (s *panelSlot) ok() bool {
	return s.err == nil
}

// Manager owns the three panels and exposes the per-readout update entry
// points. Each entry point touches only its own panel's bus transactions, so
// a wedged panel cannot stall the others.
//
// All methods must be called from the same single goroutine.
type Manager struct {
	central  panelSlot
	odometer panelSlot
	rnd      panelSlot

	mode    Mode
	reverse bool

	// Semantic values, kept so a mode switch can re-render without waiting
	// for the next signal update.
	speed   int
	totalKM float64
	tripKM  float64
	motorC  int
	mcuC    int
	gear    Gear

	// Formatted-text caches: skip rasterizing entirely when the text for a
	// field did not change. The byte diff below would catch it anyway; this
	// just avoids redundant draw work in the control loop.
	lastSpeed string
	lastValue string // odometer panel value field, any mode
	lastMotor string
	lastMCU   string
	lastGear  string
	gearDrawn bool
}

// NewManager initializes the three panels and renders the static layer and
// initial readouts. Panels that fail initialization are disabled and
// reported in the returned error; the manager stays usable for the panels
// that came up.
func NewManager(central, odometer, rnd Conn, config Config) (*Manager, error) {
	m := &Manager{
		totalKM: config.Odometer,
		tripKM:  config.Trip,
		gear:    gearInvalid,
	}

	newSlot := func(c Conn, name string, w, h int) panelSlot {
		p, err := NewPanel(c, PanelConfig{
			Name:     name,
			Width:    w,
			Height:   h,
			Contrast: config.Contrast,
		})
		if err != nil && debug {
			log.Printf("%s: disabled: %v", name, err)
		}
		if err != nil {
			err = fmt.Errorf("%w: %s: %w", ErrPanelDisabled, name, err)
		}
		return panelSlot{Panel: p, err: err}
	}

	m.central = newSlot(central, "central", 128, 32)
	m.odometer = newSlot(odometer, "odometer", 128, 32)
	m.rnd = newSlot(rnd, "rnd", 64, 32)

	var errs []error
	for _, slot := range []*panelSlot{&m.central, &m.odometer, &m.rnd} {
		if !slot.ok() {
			errs = append(errs, slot.err)
		}
	}

	// Static layer: the central unit label never changes and is committed
	// once here; dynamic draws never touch its columns, so it is excluded
	// from all further damage tracking.
	if m.central.ok() {
		m.central.DrawText(centralUnitX, centralUnitY, "KM/H", pixfont.Small, false)
		if err := m.central.Flush(); err != nil {
			errs = append(errs, err)
		}
	}

	if m.odometer.ok() {
		m.renderOdometer()
		if err := m.odometer.Flush(); err != nil {
			errs = append(errs, err)
		}
	}

	return m, errors.Join(errs...)
}

// UpdateCentralDisplay renders the primary speed readout in km/h. The value
// is retained so the odometer panel can mirror it in [ModeSpeed].
func (m *Manager) UpdateCentralDisplay(speed int) error {
	m.speed = speed

	var errs []error
	if m.central.ok() {
		if text := formatSpeed(speed); text != m.lastSpeed {
			m.central.DrawText(centralSpeedX, centralSpeedY, text, pixfont.Large, false)
			m.lastSpeed = text
		}
		errs = append(errs, m.central.Flush())
	} else {
		errs = append(errs, m.central.err)
	}
	if m.mode == ModeSpeed {
		errs = append(errs, m.updateOdometerPanel())
	}
	return errors.Join(errs...)
}

// UpdateOdometerDisplay renders the cumulative distance in km. The value is
// retained so a later mode switch can restore it.
func (m *Manager) UpdateOdometerDisplay(km float64) error {
	m.totalKM = km
	return m.updateOdometerPanel()
}

// UpdateTrip renders the trip distance in km when the panel is in
// [ModeTrip], and retains it otherwise.
func (m *Manager) UpdateTrip(km float64) error {
	m.tripKM = km
	return m.updateOdometerPanel()
}

// UpdateTemperatures renders the motor and controller temperatures when the
// panel is in [ModeTemp], and retains them otherwise.
func (m *Manager) UpdateTemperatures(motorC, mcuC int) error {
	m.motorC, m.mcuC = motorC, mcuC
	return m.updateOdometerPanel()
}

// SetOdometerMode switches what the odometer panel shows. A mode switch is
// a full repaint of the panel's dynamic content.
func (m *Manager) SetOdometerMode(mode Mode) error {
	if mode == m.mode {
		return nil
	}
	m.mode = mode
	if !m.odometer.ok() {
		return m.odometer.err
	}
	m.odometer.Pending().Clear()
	m.lastValue, m.lastMotor, m.lastMCU = "", "", ""
	m.renderOdometer()
	m.odometer.tracker.MarkDiff(m.odometer.frame, m.odometer.Bounds())
	return m.odometer.Flush()
}

func (m *Manager) updateOdometerPanel() error {
	if !m.odometer.ok() {
		return m.odometer.err
	}
	m.renderOdometer()
	return m.odometer.Flush()
}

// renderOdometer draws the current mode's content into the pending buffer.
func (m *Manager) renderOdometer() {
	switch m.mode {
	case ModeTotal:
		if text := formatTotal(m.totalKM); text != m.lastValue {
			m.odometer.DrawText(odoTotalX, odoValueY, text, pixfont.Large, false)
			m.lastValue = text
		}
		m.odometer.DrawText(odoUnitX, odoUnitY, "KM", pixfont.Small, false)

	case ModeTrip:
		if text := formatTrip(m.tripKM); text != m.lastValue {
			m.odometer.DrawText(odoTripX, odoValueY, text, pixfont.Large, false)
			m.lastValue = text
		}
		m.odometer.DrawText(odoUnitX, odoUnitY, "KM", pixfont.Small, false)

	case ModeSpeed:
		if text := formatSpeed(m.speed); text != m.lastValue {
			m.odometer.DrawText(odoSpeedX, odoValueY, text, pixfont.Large, false)
			m.lastValue = text
		}
		m.odometer.DrawText(odoSpeedUnit, odoUnitY, "KM/H", pixfont.Small, false)

	case ModeTemp:
		m.odometer.DrawText(odoLabelX, odoMotorY, "MOTOR", pixfont.Small, false)
		m.odometer.DrawText(odoLabelX, odoMCUY, "MCU", pixfont.Small, false)
		if text := formatTemp(m.motorC); text != m.lastMotor {
			m.odometer.DrawText(odoTempX, odoMotorY, text, pixfont.Small, false)
			m.lastMotor = text
		}
		if text := formatTemp(m.mcuC); text != m.lastMCU {
			m.odometer.DrawText(odoTempX, odoMCUY, text, pixfont.Small, false)
			m.lastMCU = text
		}
	}
}

// UpdateRNDDisplay renders the gear readout. The drivetrain reports the
// gear as a number: 0 neutral, 1 drive, 2 reverse; anything else blanks the
// panel until valid data returns.
func (m *Manager) UpdateRNDDisplay(value int) error {
	switch value {
	case 0:
		m.gear = GearNeutral
	case 1:
		m.gear = GearDrive
	case 2:
		m.gear = GearReverse
	default:
		m.gear = gearInvalid
	}
	if !m.rnd.ok() {
		return m.rnd.err
	}
	m.renderGear()
	return m.rnd.Flush()
}

// SetReverse toggles polarity inversion on the gear panel. Unlike a value
// change this repaints every pixel of the gear cell, because the intended
// polarity of each one changed.
func (m *Manager) SetReverse(active bool) error {
	if active == m.reverse {
		return nil
	}
	m.reverse = active
	if !m.rnd.ok() {
		return m.rnd.err
	}
	m.gearDrawn = false
	m.renderGear()
	return m.rnd.Flush()
}

func (m *Manager) renderGear() {
	text := m.gear.String()
	if m.gearDrawn && text == m.lastGear {
		return
	}
	m.rnd.DrawText(rndGearX, rndGearY, text, pixfont.Large, m.reverse)
	m.lastGear = text
	m.gearDrawn = true
}

// SetContrast applies a contrast level to every enabled panel. Writes that
// match a panel's applied state are suppressed by the panel driver.
func (m *Manager) SetContrast(level byte) error {
	var errs []error
	for _, slot := range []*panelSlot{&m.central, &m.odometer, &m.rnd} {
		if !slot.ok() {
			continue
		}
		if err := slot.SetContrast(level); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SetNightMode toggles hardware polarity inversion on every enabled panel.
func (m *Manager) SetNightMode(on bool) error {
	var errs []error
	for _, slot := range []*panelSlot{&m.central, &m.odometer, &m.rnd} {
		if !slot.ok() {
			continue
		}
		if err := slot.SetInverted(on); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Boot renders the startup banner. The host decides how long to show it and
// then calls [Manager.FinishBoot].
func (m *Manager) Boot() error {
	if !m.central.ok() {
		return m.central.err
	}
	m.central.DrawText(22, 8, "BERTONE", pixfont.Small, false)
	m.central.FillRect(image.Rect(22, 26, 106, 28), pixel.On)
	return m.central.Flush()
}

// FinishBoot clears every enabled panel and transmits the blank frames,
// guaranteeing cleared, committed framebuffers before normal operation.
func (m *Manager) FinishBoot() error {
	var errs []error
	for _, slot := range []*panelSlot{&m.central, &m.odometer, &m.rnd} {
		if !slot.ok() {
			continue
		}
		slot.Clear()
		if err := slot.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	// The static layer and initial readouts go back up after the banner.
	m.lastSpeed, m.lastValue, m.lastMotor, m.lastMCU = "", "", "", ""
	m.gearDrawn = false
	if m.central.ok() {
		m.central.DrawText(centralUnitX, centralUnitY, "KM/H", pixfont.Small, false)
		if err := m.central.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	if m.odometer.ok() {
		m.renderOdometer()
		if err := m.odometer.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close shuts down every enabled panel.
func (m *Manager) Close() error {
	var errs []error
	for _, slot := range []*panelSlot{&m.central, &m.odometer, &m.rnd} {
		if !slot.ok() {
			continue
		}
		if err := slot.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
