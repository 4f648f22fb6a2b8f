// Command bertone-dash runs the dashboard engine against real panels,
// driving a simulated drive cycle. It exists for bench setups: the vehicle
// firmware wires the same Manager to the drivetrain signal source instead.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"periph.io/x/host/v3"

	dashboard "github.com/Fhiel/micropython-bertone-dashboard"
)

func main() {
	var (
		centralDevFlag  = flag.Int("central-dev", -1, "central panel I²C bus number")
		centralAddrFlag = flag.Uint("central-addr", 0x3C, "central panel I²C address")
		odoDevFlag      = flag.Int("odo-dev", -1, "odometer panel I²C bus number")
		odoAddrFlag     = flag.Uint("odo-addr", 0x3D, "odometer panel I²C address")
		rndDevFlag      = flag.Int("rnd-dev", 1, "gear panel I²C bus number")
		rndAddrFlag     = flag.Uint("rnd-addr", 0x3C, "gear panel I²C address")
		timeoutFlag     = flag.Duration("timeout", 0, "bus transfer timeout (0 = default)")
		contrastFlag    = flag.Uint("contrast", 0, "initial contrast (0 = default)")
		odometerFlag    = flag.Float64("odometer", 12345, "last known odometer value in km")
		splashFontFlag  = flag.String("splash-font", "", "TTF file for the boot splash (default: built-in pixel font)")
		bootFlag        = flag.Duration("boot", 2*time.Second, "boot banner duration")
		periodFlag      = flag.Duration("period", 100*time.Millisecond, "update period")
	)
	flag.Parse()

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	open := func(dev int, addr uint) dashboard.Conn {
		c, err := dashboard.OpenI2C(&dashboard.I2CConfig{
			Device:  dev,
			Addr:    uint8(addr),
			Timeout: *timeoutFlag,
		})
		if err != nil {
			fatal(err)
		}
		return c
	}

	m, err := dashboard.NewManager(
		open(*centralDevFlag, *centralAddrFlag),
		open(*odoDevFlag, *odoAddrFlag),
		open(*rndDevFlag, *rndAddrFlag),
		dashboard.Config{
			Contrast: byte(*contrastFlag),
			Odometer: *odometerFlag,
		},
	)
	if err != nil {
		// Panels can be individually disabled; keep going with the rest.
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	defer m.Close()

	if *splashFontFlag != "" {
		ttf, err := os.ReadFile(*splashFontFlag)
		if err != nil {
			fatal(err)
		}
		if err := m.Splash(ttf, "BERTONE"); err != nil {
			fmt.Fprintln(os.Stderr, "warning:", err)
		}
	} else if err := m.Boot(); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	time.Sleep(*bootFlag)
	if err := m.FinishBoot(); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Simulated drive cycle: accelerate, cruise, brake, reverse into a
	// parking spot, repeat. All updates run in one control flow.
	var (
		tick     = time.NewTicker(*periodFlag)
		start    = time.Now()
		odometer = *odometerFlag
		trip     float64
	)
	defer tick.Stop()

	for {
		select {
		case <-stop:
			return
		case <-tick.C:
		}

		t := time.Since(start).Seconds()
		phase := math.Mod(t, 60)

		var (
			speed int
			gear  = 1 // drive
		)
		switch {
		case phase < 40:
			speed = int(60 + 50*math.Sin(phase/6))
		case phase < 50:
			speed = int(12 * (50 - phase) / 10)
		default:
			gear = 2 // reverse
			speed = 3
		}
		if speed < 0 {
			speed = 0
		}

		km := float64(speed) * (*periodFlag).Seconds() / 3600
		odometer += km
		trip += km

		report(m.UpdateCentralDisplay(speed))
		report(m.UpdateOdometerDisplay(odometer))
		report(m.UpdateRNDDisplay(gear))
		report(m.SetReverse(gear == 2))
	}
}

// report keeps the loop running on transient bus errors; the engine retries
// the pending damage on the next update.
func report(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal:", err)
	os.Exit(1)
}
