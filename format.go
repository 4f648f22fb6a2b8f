package dashboard

import "fmt"

// Mode selects what the odometer panel shows.
type Mode int

const (
	// ModeTotal shows the cumulative distance.
	ModeTotal Mode = iota

	// ModeTrip shows the trip distance.
	ModeTrip

	// ModeTemp shows motor and controller temperatures.
	ModeTemp

	// ModeSpeed mirrors the central speed readout on the odometer panel.
	ModeSpeed
)

func (m Mode) String() string {
	switch m {
	case ModeTotal:
		return "total"
	case ModeTrip:
		return "trip"
	case ModeTemp:
		return "temp"
	case ModeSpeed:
		return "speed"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Gear is the drivetrain state shown on the R/N/D panel.
type Gear int

const (
	GearNeutral Gear = iota
	GearDrive
	GearReverse
	gearInvalid
)

func (g Gear) String() string {
	switch g {
	case GearNeutral:
		return "N"
	case GearDrive:
		return "D"
	case GearReverse:
		return "R"
	default:
		return " "
	}
}

// The readouts are formatted at a fixed width so character cells keep their
// position across updates: a value change then damages only the cells whose
// glyphs changed, never the whole field.

// formatSpeed renders km/h right-aligned in 3 cells.
func formatSpeed(v int) string {
	return fmt.Sprintf("%3d", clamp(v, 0, 999))
}

// formatTotal renders cumulative km zero-padded in 6 cells.
func formatTotal(km float64) string {
	return fmt.Sprintf("%06d", clamp(int(km), 0, 999999))
}

// formatTrip renders trip km with one decimal in 5 cells.
func formatTrip(km float64) string {
	if km < 0 {
		km = 0
	}
	if km > 999.9 {
		km = 999.9
	}
	return fmt.Sprintf("%05.1f", km)
}

// formatTemp renders a temperature with unit in 4 cells.
func formatTemp(v int) string {
	return fmt.Sprintf("%3dC", clamp(v, -99, 999))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
