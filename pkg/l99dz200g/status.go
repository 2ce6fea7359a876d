package l99dz200g

import "strings"

// Status is the result of a status flag query. Status registers latch a 1
// for an asserted condition, so a set bit reads as Fail.
type Status uint8

const (
	OK Status = iota
	Fail
)

func (s Status) String() string {
	if s == OK {
		return "ok"
	}
	return "fail"
}

func statusOf(bit bool) Status {
	if bit {
		return Fail
	}
	return OK
}

// GlobalStatus is byte 0 of the most recent response.
type GlobalStatus uint8

// Fault reports a summary failure; GSBN reads 0 when any other bit is set.
func (g GlobalStatus) Fault() bool { return g&GSBN == 0 }

func (g GlobalStatus) Reset() bool { return g&GSBReset != 0 }
func (g GlobalStatus) SPIError() bool { return g&GSBSPIError != 0 }
func (g GlobalStatus) PhysicalLayer() bool { return g&GSBPhysicalLayer != 0 }
func (g GlobalStatus) Functional() bool { return g&GSBFunctional != 0 }
func (g GlobalStatus) DeviceError() bool { return g&GSBDeviceError != 0 }
func (g GlobalStatus) GlobalWarning() bool { return g&GSBGlobalWarning != 0 }
func (g GlobalStatus) FailSafe() bool { return g&GSBFailSafe != 0 }

func (g GlobalStatus) String() string {
	var parts []string
	for _, b := range []struct {
		mask uint8
		name string
	}{
		{GSBReset, "RSTB"},
		{GSBSPIError, "SPIE"},
		{GSBPhysicalLayer, "PLE"},
		{GSBFunctional, "FE"},
		{GSBDeviceError, "DE"},
		{GSBGlobalWarning, "GW"},
		{GSBFailSafe, "FS"},
	} {
		if uint8(g)&b.mask != 0 {
			parts = append(parts, b.name)
		}
	}
	if len(parts) == 0 {
		if g.Fault() {
			return "GSB(0x00)"
		}
		return "GSB(ok)"
	}
	return "GSB(" + strings.Join(parts, "|") + ")"
}
