// Package conn wraps the periph.io bus primitives used to reach the panels.
package conn

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

// ErrTimeout is returned when a bus transfer does not complete within the
// configured deadline.
var ErrTimeout = errors.New("conn: transmission timed out")

// DefaultTimeout bounds a single I²C transfer. At 400 kHz a full 128×32
// frame is ~13 ms on the wire, so 100 ms only trips on a wedged bus.
const DefaultTimeout = 100 * time.Millisecond

// I2C is a single-device I²C connection with a bounded transfer time.
type I2C struct {
	bus     i2c.BusCloser
	conn    conn.Conn
	timeout time.Duration
}

// OpenI2C opens the numbered I²C bus (use -1 for the first available one)
// and binds it to the device at addr. A timeout of 0 selects
// [DefaultTimeout]; a negative timeout disables the deadline.
func OpenI2C(device int, addr uint8, timeout time.Duration) (*I2C, error) {
	var (
		bus i2c.BusCloser
		err error
	)
	if device < 0 {
		bus, err = i2creg.Open("")
	} else {
		bus, err = i2creg.Open(strconv.FormatInt(int64(device), 10))
	}
	if err != nil {
		return nil, err
	}

	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &I2C{
		bus:     bus,
		conn:    &i2c.Dev{Bus: bus, Addr: uint16(addr)},
		timeout: timeout,
	}, nil
}

func (c *I2C) String() string {
	return fmt.Sprintf("I²C bus %s", c.bus)
}

func (c *I2C) Close() error {
	return c.bus.Close()
}

// Write sends p to the device. The transfer is bounded by the configured
// timeout: periph has no deadline support of its own, so the transfer runs
// in a goroutine that is abandoned when the timer fires. A late completion
// of an abandoned transfer is discarded.
func (c *I2C) Write(p []byte) (int, error) {
	if c.timeout < 0 {
		if err := c.conn.Tx(p, nil); err != nil {
			return 0, err
		}
		return len(p), nil
	}

	done := make(chan error, 1)
	go func() {
		done <- c.conn.Tx(p, nil)
	}()

	t := time.NewTimer(c.timeout)
	defer t.Stop()

	select {
	case err := <-done:
		if err != nil {
			return 0, err
		}
		return len(p), nil
	case <-t.C:
		return 0, ErrTimeout
	}
}
