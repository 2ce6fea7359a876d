package l99dz200g

import "fmt"

// Mode is a device power mode reachable through CR1 STBY.
type Mode uint8

const (
	ModeActive Mode = iota
	ModeV1Standby
	ModeVBatStandby
)

var stbyCodes = map[Mode]uint32{
	ModeActive:      0,
	ModeV1Standby:   3,
	ModeVBatStandby: 5,
}

func (m Mode) String() string {
	switch m {
	case ModeActive:
		return "active"
	case ModeV1Standby:
		return "v1-standby"
	case ModeVBatStandby:
		return "vbat-standby"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// SetMode requests a power mode transition. Entering either standby mode
// stops watchdog servicing; call EnableWatchdog after waking up.
func (d *Device) SetMode(m Mode) error {
	code, ok := stbyCodes[m]
	if !ok {
		return invalid("mode", m)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.setField(CR1_STBY, code); err != nil {
		return err
	}
	if m != ModeActive {
		d.wd.running = false
		d.log.Info().Stringer("mode", m).Msg("entering standby, watchdog stopped")
	}
	return nil
}

// V2Mode selects when the V2 regulator is on.
type V2Mode uint8

const (
	V2Off V2Mode = iota
	V2Active
	V2ActiveV1Standby
	V2AlwaysOn
)

// V2Type selects whether V2 is an independent regulator or tracks V1.
type V2Type uint8

const (
	V2Regulator V2Type = iota
	V2TrackV1
)

// ConfigureV2 sets CR1 V2_MODE, then CFR V2_CFG.
func (d *Device) ConfigureV2(mode V2Mode, typ V2Type) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.setField(CR1_V2_MODE, uint32(mode)); err != nil {
		return err
	}
	return d.setField(CFR_V2_CFG, uint32(typ))
}

// ChargePump is the charge pump configuration spread over CFR and CR22.
type ChargePump struct {
	// Off switches the charge pump off (CR22 CP_OFF).
	Off bool
	// LiveLow reports CP_LOW live rather than latched (CFR CP_LOW_CFG).
	LiveLow bool
	// NoDither disables charge pump clock dithering (CFR CP_DITH_DIS).
	NoDither bool
}

// SetChargePump applies cp. CR22 CP_OFF only accepts a change while CFR
// CP_OFF_EN is set, so both registers are read first and CFR is written
// before CR22.
func (d *Device) SetChargePump(cp ChargePump) error {
	offEn, low, dith, off := fields[CFR_CP_OFF_EN], fields[CFR_CP_LOW_CFG], fields[CFR_CP_DITH_DIS], fields[CR22_CP_OFF]

	d.mu.Lock()
	defer d.mu.Unlock()

	cfr, err := d.readRegister(CFR)
	if err != nil {
		return err
	}
	cfr &^= low.Mask | dith.Mask
	cfr |= offEn.Mask | boolBit(cp.LiveLow)<<low.Pos | boolBit(cp.NoDither)<<dith.Pos

	cr22, err := d.readRegister(CR22)
	if err != nil {
		return err
	}
	cr22 = cr22&^off.Mask | boolBit(cp.Off)<<off.Pos

	return d.writePair(CFR, cfr, CR22, cr22)
}

// SetICMP switches V1 load current supervision. Like the charge pump it is
// unlocked through CFR before CR22 is written.
func (d *Device) SetICMP(on bool) error {
	cfgEn, icmp := fields[CFR_ICMP_CFG_EN], fields[CR22_ICMP]

	d.mu.Lock()
	defer d.mu.Unlock()

	cfr, err := d.readRegister(CFR)
	if err != nil {
		return err
	}
	cr22, err := d.readRegister(CR22)
	if err != nil {
		return err
	}
	return d.writePair(CFR, cfr|cfgEn.Mask, CR22, cr22&^icmp.Mask|boolBit(on)<<icmp.Pos)
}

func (d *Device) writePair(r1 Register, v1 uint32, r2 Register, v2 uint32) error {
	if err := d.writeControl(r1, v1); err != nil {
		return err
	}
	return d.writeControl(r2, v2)
}

// SetVSRegEarlyWarning programs the VSREG early warning threshold,
// clamped to 0..EarlyWarningMax volts.
func (d *Device) SetVSRegEarlyWarning(volts float64) error {
	return d.SetField(CR3_VSREG_EW, VSCode(volts, EarlyWarningMax))
}

// DeviceState reads SR1 DEV_STATE, the state the device woke up from.
func (d *Device) DeviceState() (uint32, error) {
	return d.Field(SR1_DEV_STATE)
}

// WatchdogFailCount reads SR1 WDC_FAIL_CNT.
func (d *Device) WatchdogFailCount() (uint32, error) {
	return d.Field(SR1_WDC_FAIL_CNT)
}

// V1RestartCount reads SR1 V1_RESTART_CNT.
func (d *Device) V1RestartCount() (uint32, error) {
	return d.Field(SR1_V1_RESTART_CNT)
}
