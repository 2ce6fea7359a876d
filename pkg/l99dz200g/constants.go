package l99dz200g

import "fmt"

// Constants from the datasheet

// Register is a 6-bit L99DZ200G register address.
type Register uint8

// Control registers (writable)
const (
	CR1 Register = iota + 0x01
	CR2
	CR3
	CR4
	CR5
	CR6
	CR7
	CR8
	CR9
	CR10
	CR11
	CR12
	CR13
	CR14
	CR15
	CR16
	CR17
	CR18
	CR19
	CR20
	CR21
	CR22
)

// Status registers (read, read and clear)
const (
	SR1 Register = iota + 0x31
	SR2
	SR3
	SR4
	SR5
	SR6
	SR7
	SR8
	SR9
	SR10
	SR11
	SR12
)

const (
	// CFR is the configuration register. It is writable and shares the
	// address used by the broadcast "clear all status" and "reset all
	// control registers" commands.
	CFR Register = 0x3F

	// NumRegisters is the size of the 6-bit address space.
	NumRegisters = 0x40
)

// AllRegisters lists every addressable register, control first.
var AllRegisters = [...]Register{
	CR1, CR2, CR3, CR4, CR5, CR6, CR7, CR8, CR9, CR10, CR11,
	CR12, CR13, CR14, CR15, CR16, CR17, CR18, CR19, CR20, CR21, CR22,
	SR1, SR2, SR3, SR4, SR5, SR6, SR7, SR8, SR9, SR10, SR11, SR12,
	CFR,
}

func (r Register) String() string {
	switch {
	case r >= CR1 && r <= CR22:
		return fmt.Sprintf("CR%d", r-CR1+1)
	case r >= SR1 && r <= SR12:
		return fmt.Sprintf("SR%d", r-SR1+1)
	case r == CFR:
		return "CFR"
	default:
		return fmt.Sprintf("0x%02X", uint8(r))
	}
}

// IsWritable reports whether reg accepts write and read-modify-write
// transactions. Only CR1..CR22 and CFR do.
func IsWritable(reg Register) bool {
	return (reg >= CR1 && reg <= CR22) || reg == CFR
}

// Opcode occupies bits 7:6 of the first byte of every frame.
type Opcode uint8

const (
	OpWrite      Opcode = 0x00
	OpRead       Opcode = 0x40
	OpReadClear  Opcode = 0x80
	OpDeviceInfo Opcode = 0xC0 // ROM read
)

func (op Opcode) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpRead:
		return "read"
	case OpReadClear:
		return "read-clear"
	case OpDeviceInfo:
		return "device-info"
	default:
		return fmt.Sprintf("op(0x%02X)", uint8(op))
	}
}

const (
	addrMask   = 0x3F
	opcodeMask = 0xC0

	// FrameSize is the length of every register transaction, both ways.
	FrameSize = 4
	// ROMFrameSize is the short device information transaction: status + data.
	ROMFrameSize = 2

	// FullRegMask covers the 24 data bits of a register.
	FullRegMask = 0xFFFFFF
)

// Global status byte bits
const (
	GSBN             = 0x80 // cleared when any other GSB bit is set
	GSBReset         = 0x40 // RSTB
	GSBSPIError      = 0x20 // SPIE
	GSBPhysicalLayer = 0x10 // PLE
	GSBFunctional    = 0x08 // FE
	GSBDeviceError   = 0x04 // DE
	GSBGlobalWarning = 0x02 // GW
	GSBFailSafe      = 0x01 // FS
)

// Analog scaling
const (
	// VAINVS is the reference voltage spread across the 10-bit ADC range.
	VAINVS = 22.0
	// VLEDMax clamps the LED compensation voltage.
	VLEDMax = 10.0
	// EarlyWarningMax clamps the VSREG early warning threshold.
	EarlyWarningMax = 10.0
	// ECVLowMax and ECVHighMax are the two electrochromic full scales (CFR ECV_HV).
	ECVLowMax  = 1.2
	ECVHighMax = 1.5

	// SlewMax is the H-bridge slew rate current scale; field values run 0..SlewMax-1.
	SlewMax = 32

	// PWMDutyMax is the 10-bit duty cycle full scale.
	PWMDutyMax = 1023

	// AnalogSamples is how many reads are averaged per analog measurement.
	AnalogSamples = 5
)
