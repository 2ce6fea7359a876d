// Package ft232h adapts an FTDI FT232H USB bridge to the l99dz200g
// SerialInterface.
package ft232h

import (
	"errors"
	"fmt"

	"github.com/yunginnanet/ft232h"
)

// ErrBadDescriptor is returned by ConnectFT232h for a descriptor that
// selects nothing.
var ErrBadDescriptor = errors.New("invalid FT232H descriptor provided")

// DeviceInfo represents a snapshot of the device information for the [FT232H] device.
type DeviceInfo struct {
	Index       int
	Serial      string
	Description string
	ProductID   string
	VendorID    string
	IsOpen      bool
	IsHighSpeed bool
}

func (di DeviceInfo) String() string {
	return fmt.Sprintf(
		"DeviceInfo{Index:%d, Serial:%s, Description:%s, ProductID:%s, VendorID:%s, IsOpen:%t, IsHighSpeed:%t}",
		di.Index, di.Serial, di.Description, di.ProductID, di.VendorID, di.IsOpen, di.IsHighSpeed,
	)
}

// FT232H is an open bridge. Its MPSSE engine clocks the SPI frames and one
// of its GPIO pins can act as a software chip select.
type FT232H struct {
	*ft232h.FT232H
	info DeviceInfo

	spi  engine
	gpio pins

	csPin ft232h.CPin
	csSet bool
}

// Info returns a snapshot of the device information. Read-only.
func (ft *FT232H) Info() DeviceInfo {
	if ft.FT232H == nil {
		return ft.info
	}
	vid, pid := ft.vidPid()
	return DeviceInfo{
		Index:       ft.Index(),
		Serial:      ft.Serial(),
		Description: ft.Desc(),
		ProductID:   pid,
		VendorID:    vid,
		IsOpen:      ft.IsOpen(),
		IsHighSpeed: ft.IsHiSpeed(),
	}
}

func (ft *FT232H) String() string {
	info := ft.Info()
	return fmt.Sprintf("FT232H[%s:%s]: %s", info.VendorID, info.ProductID, info.Description)
}

// ConnectFT232h opens the first bridge found, or the one matching choice.
func ConnectFT232h(choice ...Descriptor) (ft *FT232H, err error) {
	ft = &FT232H{}

	switch len(choice) {
	case 0:
		ft.FT232H, err = ft232h.New()
	case 1:
		desc := choice[0]
		if err = desc.Validate(); err != nil {
			return nil, ErrBadDescriptor
		}
		ft.FT232H, err = ft232h.OpenMask(desc.Mask())
	default:
		return nil, fmt.Errorf("invalid number of arguments")
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open FT232H: %w", err)
	}
	ft.spi, ft.gpio = ft.SPI, ft.GPIO
	ft.info = ft.Info()
	return ft, nil
}
