package ft232h

import (
	"fmt"
	"strconv"

	"github.com/yunginnanet/ft232h"
)

// Descriptor identifies the bridge to open when several are attached.
type Descriptor struct {
	Index  int
	Serial string
	mask   *ft232h.Mask
}

// Validate checks that the [Descriptor] selects something.
func (ftd Descriptor) Validate() error {
	if ftd.Index < 0 && ftd.Serial == "" && emptyMask(ftd.mask) {
		return ErrBadDescriptor
	}
	return nil
}

// Mask returns the [ft232h.Mask] form of the [Descriptor].
func (ftd Descriptor) Mask() *ft232h.Mask {
	m := new(ft232h.Mask)
	if ftd.mask != nil {
		*m = *ftd.mask
	}
	if ftd.Serial != "" {
		m.Serial = ftd.Serial
	}
	if ftd.Index >= 0 {
		m.Index = strconv.Itoa(ftd.Index)
	}
	return m
}

func (ftd Descriptor) String() string {
	return fmt.Sprintf("Descriptor{Index:%d, Serial:%s, mask:%v}", ftd.Index, ftd.Serial, ftd.mask)
}

// ByIndex selects the bridge at a USB enumeration index.
func ByIndex(index int) Descriptor {
	return Descriptor{Index: index}
}

// BySerial selects the bridge with the given serial number.
func BySerial(serial string) Descriptor {
	return Descriptor{Serial: serial, Index: -1}
}

// ByMask selects the bridge matching mask.
func ByMask(mask *ft232h.Mask) Descriptor {
	return Descriptor{mask: mask, Index: -1}
}
