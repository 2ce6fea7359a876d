//go:build !linux

package gpiocs

import "periph.io/x/conn/v3/gpio"

type Line struct{}

func Open(string, int) (*Line, error) {
	return nil, ErrUnsupported
}

func (*Line) Out(gpio.Level) error {
	return ErrUnsupported
}

func (*Line) Close() error {
	return nil
}
