package ft232h

import (
	"errors"
	"fmt"

	"github.com/yunginnanet/ft232h"
)

var (
	// ErrNoCSPin is returned by SetCS before SetCSPin has been called.
	ErrNoCSPin = errors.New("chip select pin not set")

	// ErrNotOpen is returned by transfers on a bridge that was never connected.
	ErrNotOpen = errors.New("FT232H not open")
)

// engine is the subset of the bridge SPI engine used for register frames.
type engine interface {
	Init() error
	Swap(data []uint8, start, stop bool) ([]uint8, error)
	Close() error
}

// pins is the subset of the bridge GPIO port used for chip select.
type pins interface {
	ConfigPin(pin ft232h.CPin, dir ft232h.Dir, val bool) error
	Set(pin ft232h.CPin, val bool) error
}

// SPIConfig is the MPSSE SPI setup for the device.
type SPIConfig struct {
	Clock uint32 // Hz, 30 MHz maximum
	Mode  uint8  // 0..3
	// CS is the C-bus pin used as chip select. The library switches it as
	// a GPIO around every transfer; it is not an MPSSE-timed D-bus select.
	CS uint
}

// DefaultSPIConfig is mode 3 at 1 MHz with C0 as chip select.
func DefaultSPIConfig() SPIConfig {
	return SPIConfig{Clock: 1000000, Mode: 3, CS: 0}
}

// ConfigureSPI applies c to the MPSSE SPI engine.
func (ft *FT232H) ConfigureSPI(c SPIConfig) error {
	cfg := ft.SPI.GetConfig()
	cfg.Clock = c.Clock
	cfg.CS = ft232h.C(c.CS)
	cfg.ActiveLow = true
	switch c.Mode {
	case 0:
		cfg.Mode = 0
	case 1:
		cfg.Mode = 1
	case 2:
		cfg.Mode = 2
	case 3:
		cfg.Mode = 3
	default:
		return fmt.Errorf("invalid spi mode %d", c.Mode)
	}
	if err := ft.SPI.Config(cfg); err != nil {
		return fmt.Errorf("failed to configure spi: %w", err)
	}
	return nil
}

// SetCSPin configures a C-bus GPIO as a software chip select, idle high.
// The pin is configured again by Init, since SPI initialization rewrites
// the GPIO port.
func (ft *FT232H) SetCSPin(pin uint) error {
	ft.csPin = ft232h.C(pin)
	ft.csSet = true
	if ft.gpio == nil {
		return nil
	}
	return ft.configCSPin()
}

func (ft *FT232H) configCSPin() error {
	if err := ft.gpio.ConfigPin(ft.csPin, ft232h.Output, true); err != nil {
		return fmt.Errorf("failed to configure cs pin %s: %w", ft.csPin, err)
	}
	return nil
}

func (ft *FT232H) CSPin() ft232h.CPin {
	return ft.csPin
}

// SetCS drives the software chip select pin.
func (ft *FT232H) SetCS(high bool) error {
	if !ft.csSet {
		return ErrNoCSPin
	}
	if ft.gpio == nil {
		return ErrNotOpen
	}
	return ft.gpio.Set(ft.csPin, high)
}

// Exchange clocks tx out and the response in during the same clocks,
// inside one chip select assertion.
func (ft *FT232H) Exchange(tx, rx []byte) (int, error) {
	if ft.spi == nil {
		return 0, ErrNotOpen
	}
	in, err := ft.spi.Swap(tx, true, true)
	if err != nil {
		return 0, fmt.Errorf("spi swap: %w", err)
	}
	return copy(rx, in), nil
}

// Init initializes the SPI engine, then restores the software chip select pin.
func (ft *FT232H) Init() error {
	if ft.spi == nil {
		return ErrNotOpen
	}
	if err := ft.spi.Init(); err != nil {
		return err
	}
	if ft.csSet {
		return ft.configCSPin()
	}
	return nil
}

func (ft *FT232H) Close() error {
	if ft.spi == nil {
		return nil
	}
	return ft.spi.Close()
}
