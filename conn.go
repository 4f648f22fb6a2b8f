package dashboard

import (
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"github.com/Fhiel/micropython-bertone-dashboard/conn"
)

// Conn is the connection interface for communicating with one panel's
// display controller.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Command sends a command byte with optional arguments.
	Command(byte, ...byte) error

	// Data sends framebuffer data bytes.
	Data(...byte) error
}

// I2CConfig describes the I²C bus configuration of one panel.
type I2CConfig struct {
	// Device is the I²C bus number, use -1 to use the first available bus.
	Device int

	// Addr is the I²C address.
	Addr uint8

	// Timeout bounds a single bus transfer. 0 selects the default, a
	// negative value disables the deadline.
	Timeout time.Duration
}

var DefaultI2CConfig = I2CConfig{
	Device: -1,
	Addr:   0x3C,
}

type i2cConn struct {
	*conn.I2C
}

func OpenI2C(config *I2CConfig) (Conn, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}

	c, err := conn.OpenI2C(config.Device, config.Addr, config.Timeout)
	if err != nil {
		return nil, err
	}

	return &i2cConn{I2C: c}, nil
}

// Command frames the bytes with the 0x00 control byte (Co=0, D/C#=0).
func (c *i2cConn) Command(cmnd byte, args ...byte) (err error) {
	_, err = c.I2C.Write(append([]byte{0x00, cmnd}, args...))
	return
}

// Data frames the bytes with the 0x40 control byte (Co=0, D/C#=1).
func (c *i2cConn) Data(data ...byte) (err error) {
	_, err = c.I2C.Write(append([]byte{0x40}, data...))
	return
}

// SPIConfig describes a 4-wire SPI connection for bench use.
type SPIConfig struct {
	// Port is the SPI port name, empty for the first available port.
	Port string

	// Speed is the bus clock, 0 for the default.
	Speed physic.Frequency

	// DC is the data/command select pin.
	DC gpio.PinOut

	// Reset pin, optional.
	Reset gpio.PinOut
}

type spiConn struct {
	*conn.SPI
	dc      gpio.PinOut
	dcLevel gpio.Level
	dcKnown bool
}

func OpenSPI(config *SPIConfig) (Conn, error) {
	c, err := conn.OpenSPI(config.Port, config.Speed)
	if err != nil {
		return nil, err
	}

	s := &spiConn{
		SPI: c,
		dc:  config.DC,
	}

	if config.Reset != nil {
		// Pulse the reset line; the controller needs 3 µs minimum.
		if err := config.Reset.Out(gpio.Low); err != nil {
			_ = c.Close()
			return nil, err
		}
		time.Sleep(time.Millisecond)
		if err := config.Reset.Out(gpio.High); err != nil {
			_ = c.Close()
			return nil, err
		}
		time.Sleep(time.Millisecond)
	}

	return s, nil
}

func (c *spiConn) updateDC(level gpio.Level) error {
	if c.dcKnown && c.dcLevel == level {
		return nil
	}
	if err := c.dc.Out(level); err != nil {
		return err
	}
	c.dcLevel, c.dcKnown = level, true
	return nil
}

// Command sends the command byte and its arguments with D/C# low; on the
// SSD1306 command arguments are command bytes themselves.
func (c *spiConn) Command(cmnd byte, args ...byte) error {
	if err := c.updateDC(gpio.Low); err != nil {
		return err
	}
	_, err := c.SPI.Write(append([]byte{cmnd}, args...))
	return err
}

func (c *spiConn) Data(data ...byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := c.updateDC(gpio.High); err != nil {
		return err
	}
	_, err := c.SPI.Write(data)
	return err
}
