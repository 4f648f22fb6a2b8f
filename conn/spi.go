package conn

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// SPI is a 4-wire SPI connection for bench setups where a panel is driven
// over SPI instead of the in-vehicle I²C buses.
type SPI struct {
	port spi.PortCloser
	conn conn.Conn
}

// OpenSPI opens the named SPI port (empty for the first available one) at
// the given clock speed, Mode0, 8 bits per word. The SSD1306 accepts up to
// 10 MHz in SPI mode.
func OpenSPI(name string, speed physic.Frequency) (*SPI, error) {
	port, err := spireg.Open(name)
	if err != nil {
		return nil, err
	}

	if speed == 0 {
		speed = 8 * physic.MegaHertz
	}

	c, err := port.Connect(speed, spi.Mode0, 8)
	if err != nil {
		_ = port.Close()
		return nil, err
	}

	return &SPI{
		port: port,
		conn: c,
	}, nil
}

func (c *SPI) String() string {
	return fmt.Sprintf("SPI port %s", c.port)
}

func (c *SPI) Close() error {
	return c.port.Close()
}

func (c *SPI) Write(p []byte) (int, error) {
	if err := c.conn.Tx(p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}
