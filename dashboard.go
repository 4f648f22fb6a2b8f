// Package dashboard drives the three OLED instrument panels of the Bertone
// X1/9e conversion: the central speed readout and the odometer panel
// (128×32) and the R/N/D gear panel (64×32), all SSD1306 controllers on
// shared I²C buses.
//
// The engine never retransmits unchanged pixels. Every panel keeps a pending
// and a committed framebuffer; draws are byte-diffed against the committed
// state, the changed rectangles are merged, and only those windows go out on
// the bus. Redrawing an identical value produces zero bus traffic, which is
// what keeps the panels flicker-free and leaves bus time for the drivetrain
// decoding running in the same control loop.
//
// The package is single-threaded by design: a [Manager] and its panels must
// only be touched from one goroutine, mirroring the cooperative scheduling
// of the control loop.
package dashboard

import (
	"errors"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("DASH_DEBUG") != ""
}

// Errors
var (
	// ErrPanelDisabled is returned by update calls on a panel that failed
	// initialization and was taken out of service.
	ErrPanelDisabled = errors.New("dashboard: panel disabled")

	ErrUnsupportedSize = errors.New("dashboard: unsupported panel size")
)
