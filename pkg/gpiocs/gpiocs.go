// Package gpiocs drives an SPI chip select from a Linux GPIO character
// device line, for buses whose controller cannot hold chip select across
// a whole frame.
package gpiocs

import "errors"

// ErrUnsupported is returned by Open where GPIO character devices do not exist.
var ErrUnsupported = errors.New("gpio character devices are not supported on this platform")

// Consumer is the label the line is requested under.
const Consumer = "l99dz200g-cs"
