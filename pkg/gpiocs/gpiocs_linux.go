//go:build linux

package gpiocs

import (
	"errors"
	"fmt"

	"github.com/warthog618/gpiod"
	"periph.io/x/conn/v3/gpio"
)

// Line is a requested output line. It satisfies l99dz200g.ChipSelectPin.
type Line struct {
	chip *gpiod.Chip
	line *gpiod.Line
}

// Open requests offset on chip (e.g. "gpiochip0") as an output, initially
// high so the device stays deselected.
func Open(chip string, offset int) (*Line, error) {
	c, err := gpiod.NewChip(chip, gpiod.WithConsumer(Consumer))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", chip, err)
	}
	l, err := c.RequestLine(offset, gpiod.AsOutput(1))
	if err != nil {
		return nil, errors.Join(fmt.Errorf("request %s line %d: %w", chip, offset, err), c.Close())
	}
	return &Line{chip: c, line: l}, nil
}

// Out drives the line. gpio.High deselects the device.
func (l *Line) Out(level gpio.Level) error {
	v := 0
	if level {
		v = 1
	}
	return l.line.SetValue(v)
}

func (l *Line) Close() error {
	return errors.Join(l.line.Close(), l.chip.Close())
}
