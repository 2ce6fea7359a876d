package l99dz200g

import "fmt"

// Bridge selects H-bridge A or B.
type Bridge uint8

const (
	BridgeA Bridge = iota
	BridgeB
)

func (b Bridge) String() string {
	switch b {
	case BridgeA:
		return "A"
	case BridgeB:
		return "B"
	default:
		return fmt.Sprintf("Bridge(%d)", uint8(b))
	}
}

type bridgeItems struct {
	enable, dir, slew, ccpt, olHigh, dualMode Item
}

var bridges = [...]bridgeItems{
	BridgeA: {CR1_HENA, CR10_HB_A_DIR, CR10_HB_SLEW, CR10_HB_CCPT, CR10_HB_OLTH_HI, CFR_DM_HB_A},
	BridgeB: {CR1_HENB, CR21_HB_B_DIR, CR21_HB_SLEW, CR21_HB_CCPT, CR21_HB_OLTH_HI, CFR_DM_HB_B},
}

func (b Bridge) items() (bridgeItems, error) {
	if int(b) >= len(bridges) {
		return bridgeItems{}, invalid("bridge", b)
	}
	return bridges[b], nil
}

// EnableBridge switches an H-bridge on or off in CR1.
func (d *Device) EnableBridge(b Bridge, on bool) error {
	bi, err := b.items()
	if err != nil {
		return err
	}
	return d.SetField(bi.enable, boolBit(on))
}

// SetBridgeDirection sets the single motor direction of an H-bridge.
// Left is counter-clockwise.
func (d *Device) SetBridgeDirection(b Bridge, dir Direction) error {
	bi, err := b.items()
	if err != nil {
		return err
	}
	if dir != Left && dir != Right {
		return invalid("bridge direction", dir)
	}
	return d.SetField(bi.dir, uint32(dir))
}

// SetBridgeSlewRate sets the gate slew rate current as a percentage of
// the maximum.
func (d *Device) SetBridgeSlewRate(b Bridge, percent uint8) error {
	bi, err := b.items()
	if err != nil {
		return err
	}
	return d.SetField(bi.slew, uint32(SlewCode(percent)))
}

// SetBridgeCrossCurrentTime sets the cross current protection time selector.
func (d *Device) SetBridgeCrossCurrentTime(b Bridge, code uint8) error {
	bi, err := b.items()
	if err != nil {
		return err
	}
	return d.SetField(bi.ccpt, uint32(code))
}

// SetBridgeOpenLoadHigh selects the high open-load threshold.
func (d *Device) SetBridgeOpenLoadHigh(b Bridge, on bool) error {
	bi, err := b.items()
	if err != nil {
		return err
	}
	return d.SetField(bi.olHigh, boolBit(on))
}

// SetBridgeDualMotor selects dual motor mode in CFR.
func (d *Device) SetBridgeDualMotor(b Bridge, on bool) error {
	bi, err := b.items()
	if err != nil {
		return err
	}
	return d.SetField(bi.dualMode, boolBit(on))
}

func (d *Device) runBridge(b Bridge, dir Direction) error {
	bi, err := b.items()
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err = d.setField(bi.dir, uint32(dir)); err != nil {
		return err
	}
	return d.setField(bi.enable, 1)
}

// Clockwise sets the bridge direction and enables it.
func (d *Device) Clockwise(b Bridge) error {
	return d.runBridge(b, Right)
}

// CounterClockwise sets the bridge direction and enables it.
func (d *Device) CounterClockwise(b Bridge) error {
	return d.runBridge(b, Left)
}

// Stop disables the bridge.
func (d *Device) Stop(b Bridge) error {
	return d.EnableBridge(b, false)
}
