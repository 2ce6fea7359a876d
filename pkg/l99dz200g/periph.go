package l99dz200g

import (
	"errors"
	"fmt"
	"io"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// ChipSelectPin is an output driving the chip select line in software.
// gpio.PinOut satisfies it.
type ChipSelectPin interface {
	Out(l gpio.Level) error
}

// PeriphSPI is a SerialInterface over a periph.io SPI port.
type PeriphSPI struct {
	port spi.Port
	conn spi.Conn
	freq physic.Frequency
	mode ChipSelectMode
	cs   ChipSelectPin
}

// NewPeriphSPI wraps port. cs is only used with SoftwareCS and may be nil
// otherwise.
func NewPeriphSPI(port spi.Port, freq physic.Frequency, mode ChipSelectMode, cs ChipSelectPin) *PeriphSPI {
	return &PeriphSPI{
		port: port,
		freq: freq,
		mode: mode,
		cs:   cs,
	}
}

// Init connects the port with 8-bit words in the mode required by the
// chip select configuration.
func (p *PeriphSPI) Init() error {
	if p.port == nil {
		return errors.New("no spi port")
	}
	if p.mode == SoftwareCS && p.cs == nil {
		return errors.New("software chip select requires a cs pin")
	}
	c, err := p.port.Connect(p.freq, p.mode.SPIMode(), 8)
	if err != nil {
		return fmt.Errorf("spi connect: %w", err)
	}
	p.conn = c
	return nil
}

func (p *PeriphSPI) Exchange(tx, rx []byte) (int, error) {
	if p.conn == nil {
		return 0, ErrNotInitialized
	}
	if err := p.conn.Tx(tx, rx); err != nil {
		return 0, err
	}
	return len(tx), nil
}

func (p *PeriphSPI) SetCS(high bool) error {
	if p.cs == nil {
		return nil
	}
	return p.cs.Out(gpio.Level(high))
}

// Close closes the port if it supports it, and the chip select pin if it
// is an io.Closer.
func (p *PeriphSPI) Close() error {
	var errs []error
	if c, ok := p.port.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	if c, ok := p.cs.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	p.conn = nil
	return errors.Join(errs...)
}
