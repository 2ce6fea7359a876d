package l99dz200g

import "fmt"

// Output names a device output stage by its pin number.
type Output uint8

const (
	Out1  Output = 1
	Out2  Output = 2
	Out3  Output = 3
	Out6  Output = 6
	Out7  Output = 7
	Out8  Output = 8
	Out9  Output = 9
	Out10 Output = 10
	Out13 Output = 13
	Out14 Output = 14
	Out15 Output = 15
	OutGH Output = 16 // heater gate driver
)

func (o Output) String() string {
	if o == OutGH {
		return "OUTGH"
	}
	return fmt.Sprintf("OUT%d", uint8(o))
}

// OutputMode is the source selection for a high-side output.
type OutputMode uint8

const (
	OutputOff OutputMode = iota
	OutputOn
	OutputTimer1
	OutputTimer2
	OutputPWM1
	OutputPWM2
	OutputPWM3
	OutputPWM4
	OutputPWM5
	OutputPWM6
	OutputPWM7
	OutputDir OutputMode = 14
)

func (m OutputMode) String() string {
	switch {
	case m == OutputOff:
		return "off"
	case m == OutputOn:
		return "on"
	case m == OutputTimer1, m == OutputTimer2:
		return fmt.Sprintf("timer%d", uint8(m-OutputTimer1)+1)
	case m >= OutputPWM1 && m <= OutputPWM7:
		return fmt.Sprintf("pwm%d", uint8(m-OutputPWM1)+1)
	case m == OutputDir:
		return "dir"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// switched reports whether the output is driven by a timer or PWM channel.
func (m OutputMode) switched() bool {
	return m >= OutputTimer1 && m <= OutputPWM7
}

var (
	highSideItems = map[Output]Item{
		Out7:  CR5_HS_OUT7,
		Out8:  CR5_HS_OUT8,
		Out10: CR5_HS_OUT10,
		OutGH: CR5_GH,
		Out9:  CR6_HS_OUT9,
		Out13: CR6_HS_OUT13,
		Out14: CR6_HS_OUT14,
		Out15: CR6_HS_OUT15,
	}
	constantCurrentItems = map[Output]Item{
		Out7: CR9_OUT7_CCM_EN,
		Out8: CR9_OUT8_CCM_EN,
		Out9: CR9_OUT9_CCM_EN,
	}
	autoRecoveryItems = map[Output]Item{
		Out1:  CR7_OUT1_OCR,
		Out2:  CR7_OUT2_OCR,
		Out3:  CR7_OUT3_OCR,
		Out6:  CR7_OUT6_OCR,
		Out7:  CR7_OUT7_OCR,
		Out8:  CR7_OUT8_OCR,
		Out15: CR7_OUT15_OCR,
	}
	vledItems = map[Output]Item{
		Out7:  CR17_OUT7_VLED,
		Out8:  CR17_OUT8_VLED,
		Out9:  CR18_OUT9_VLED,
		Out10: CR18_OUT10_VLED,
		Out13: CR19_OUT13_VLED,
		Out14: CR19_OUT14_VLED,
		Out15: CR20_OUT15_VLED,
	}
	autoCompItems = map[Output]Item{
		Out7:  CR17_OUT7_AUTOCOMP,
		Out8:  CR17_OUT8_AUTOCOMP,
		Out9:  CR18_OUT9_AUTOCOMP,
		Out10: CR18_OUT10_AUTOCOMP,
		Out13: CR19_OUT13_AUTOCOMP,
		Out14: CR19_OUT14_AUTOCOMP,
		Out15: CR20_OUT15_AUTOCOMP,
	}
)

func itemFor(table map[Output]Item, out Output, what string) (Item, error) {
	item, ok := table[out]
	if !ok {
		return itemNone, invalid(what+" output", out)
	}
	return item, nil
}

func boolBit(on bool) uint32 {
	if on {
		return 1
	}
	return 0
}

// SetHighSide selects the drive source of a high-side output in CR5 or CR6.
// OUT7, OUT8 and OUT9 have constant current mode disabled first when a
// timer or PWM source is selected; the device rejects the write otherwise.
func (d *Device) SetHighSide(out Output, mode OutputMode) error {
	item, err := itemFor(highSideItems, out, "high-side")
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if ccm, ok := constantCurrentItems[out]; ok && mode.switched() {
		if err = d.setField(ccm, 0); err != nil {
			return err
		}
	}
	return d.setField(item, uint32(mode))
}

// SetHeater selects the heater gate driver source.
func (d *Device) SetHeater(mode OutputMode) error {
	return d.SetHighSide(OutGH, mode)
}

// SetConstantCurrent switches constant current mode for OUT7, OUT8 or
// OUT9. Enabling it turns the output off and disables its overcurrent
// auto-recovery beforehand.
func (d *Device) SetConstantCurrent(out Output, on bool) error {
	item, err := itemFor(constantCurrentItems, out, "constant current")
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if on {
		if err = d.setField(highSideItems[out], uint32(OutputOff)); err != nil {
			return err
		}
		if ocr, ok := autoRecoveryItems[out]; ok {
			if err = d.setField(ocr, 0); err != nil {
				return err
			}
		}
	}
	return d.setField(item, boolBit(on))
}

// SetAutoRecovery switches overcurrent auto-recovery in CR7.
func (d *Device) SetAutoRecovery(out Output, on bool) error {
	item, err := itemFor(autoRecoveryItems, out, "auto-recovery")
	if err != nil {
		return err
	}
	return d.SetField(item, boolBit(on))
}

// SetVLED programs the LED supply compensation voltage of an output,
// clamped to 0..VLEDMax volts.
func (d *Device) SetVLED(out Output, volts float64) error {
	item, err := itemFor(vledItems, out, "vled")
	if err != nil {
		return err
	}
	return d.SetField(item, VSCode(volts, VLEDMax))
}

// SetAutoCompensation switches automatic VS compensation of an output.
func (d *Device) SetAutoCompensation(out Output, on bool) error {
	item, err := itemFor(autoCompItems, out, "auto compensation")
	if err != nil {
		return err
	}
	return d.SetField(item, boolBit(on))
}

// HalfBridgeOutput selects one side of the OUT1, OUT2, OUT3 or OUT6 half bridges.
type HalfBridgeOutput uint8

const (
	Out1HS HalfBridgeOutput = iota
	Out1LS
	Out2HS
	Out2LS
	Out3HS
	Out3LS
	Out6HS
	Out6LS
)

var halfBridgeItems = [...]struct{ on, other Item }{
	Out1HS: {CR4_HS_OUT1, CR4_LS_OUT1},
	Out1LS: {CR4_LS_OUT1, CR4_HS_OUT1},
	Out2HS: {CR4_HS_OUT2, CR4_LS_OUT2},
	Out2LS: {CR4_LS_OUT2, CR4_HS_OUT2},
	Out3HS: {CR4_HS_OUT3, CR4_LS_OUT3},
	Out3LS: {CR4_LS_OUT3, CR4_HS_OUT3},
	Out6HS: {CR4_HS_OUT6, CR4_LS_OUT6},
	Out6LS: {CR4_LS_OUT6, CR4_HS_OUT6},
}

func (h HalfBridgeOutput) String() string {
	if int(h) >= len(halfBridgeItems) {
		return fmt.Sprintf("HalfBridgeOutput(%d)", uint8(h))
	}
	return halfBridgeItems[h].on.String()
}

// SetHalfBridge switches one side of a half bridge. The opposite side of
// the same leg is always switched off in the same write.
func (d *Device) SetHalfBridge(out HalfBridgeOutput, on bool) error {
	if int(out) >= len(halfBridgeItems) {
		return invalid("half bridge output", out)
	}
	hb := halfBridgeItems[out]
	f, other := fields[hb.on], fields[hb.other]

	d.mu.Lock()
	err := d.modifyControl(CR4, f.Mask|other.Mask, boolBit(on)<<f.Pos)
	d.mu.Unlock()
	return err
}

// MotorOutputs selects which of the X, Y and fold motor legs are driven
// against OUT1.
type MotorOutputs uint8

const (
	MotorX MotorOutputs = iota // OUT2
	MotorY                     // OUT3
	MotorF                     // OUT6
	MotorXY
	MotorXF
	MotorYF
)

var motorLegs = [...][]struct{ hs, ls Item }{
	MotorX:  {{CR4_HS_OUT2, CR4_LS_OUT2}},
	MotorY:  {{CR4_HS_OUT3, CR4_LS_OUT3}},
	MotorF:  {{CR4_HS_OUT6, CR4_LS_OUT6}},
	MotorXY: {{CR4_HS_OUT2, CR4_LS_OUT2}, {CR4_HS_OUT3, CR4_LS_OUT3}},
	MotorXF: {{CR4_HS_OUT2, CR4_LS_OUT2}, {CR4_HS_OUT6, CR4_LS_OUT6}},
	MotorYF: {{CR4_HS_OUT3, CR4_LS_OUT3}, {CR4_HS_OUT6, CR4_LS_OUT6}},
}

// Direction is a motor drive direction.
type Direction uint8

const (
	Left Direction = iota
	Right
	Brake
)

func (dir Direction) String() string {
	switch dir {
	case Left:
		return "left"
	case Right:
		return "right"
	case Brake:
		return "brake"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(dir))
	}
}

// MotorWord returns the CR4 contents for driving outputs in dir.
func MotorWord(outputs MotorOutputs, dir Direction) (uint32, error) {
	if int(outputs) >= len(motorLegs) {
		return 0, invalid("motor outputs", outputs)
	}

	var word uint32
	switch dir {
	case Left:
		word = fields[CR4_LS_OUT1].Mask
		for _, leg := range motorLegs[outputs] {
			word |= fields[leg.hs].Mask
		}
	case Right:
		word = fields[CR4_HS_OUT1].Mask
		for _, leg := range motorLegs[outputs] {
			word |= fields[leg.ls].Mask
		}
	case Brake:
	default:
		return 0, invalid("direction", dir)
	}
	return word, nil
}

// DriveMotor writes all of CR4 in one transaction. OUT1 is the common
// leg; Brake switches every CR4 output off.
func (d *Device) DriveMotor(outputs MotorOutputs, dir Direction) error {
	word, err := MotorWord(outputs, dir)
	if err != nil {
		return err
	}

	d.mu.Lock()
	err = d.writeControl(CR4, word)
	d.mu.Unlock()
	return err
}

// PWMChannel is one of the seven internal PWM generators.
type PWMChannel uint8

const (
	PWM1 PWMChannel = iota + 1
	PWM2
	PWM3
	PWM4
	PWM5
	PWM6
	PWM7
)

func (c PWMChannel) String() string {
	return fmt.Sprintf("PWM%d", uint8(c))
}

// PWMFrequency selects the PWM base frequency.
type PWMFrequency uint8

const (
	PWM100Hz PWMFrequency = iota
	PWM200Hz
	PWM330Hz
	PWM500Hz
)

var (
	pwmFreqItems = map[PWMChannel]Item{
		PWM1: CR12_PWM1_FREQ,
		PWM2: CR12_PWM2_FREQ,
		PWM3: CR12_PWM3_FREQ,
		PWM4: CR12_PWM4_FREQ,
		PWM5: CR12_PWM5_FREQ,
		PWM6: CR12_PWM6_FREQ,
		PWM7: CR12_PWM7_FREQ,
	}
	pwmDutyItems = map[PWMChannel]Item{
		PWM1: CR13_PWM1_DC,
		PWM2: CR13_PWM2_DC,
		PWM3: CR14_PWM3_DC,
		PWM4: CR14_PWM4_DC,
		PWM5: CR15_PWM5_DC,
		PWM6: CR15_PWM6_DC,
		PWM7: CR16_PWM7_DC,
	}
)

// SetPWMFrequency sets the base frequency of a PWM channel in CR12.
func (d *Device) SetPWMFrequency(ch PWMChannel, f PWMFrequency) error {
	item, ok := pwmFreqItems[ch]
	if !ok {
		return invalid("pwm channel", ch)
	}
	return d.SetField(item, uint32(f))
}

// SetPWMDutyCycle sets the duty cycle of a PWM channel, 0..100 percent.
func (d *Device) SetPWMDutyCycle(ch PWMChannel, percent uint8) error {
	item, ok := pwmDutyItems[ch]
	if !ok {
		return invalid("pwm channel", ch)
	}
	code, err := PWMDutyCode(percent)
	if err != nil {
		return err
	}
	return d.SetField(item, code)
}

// PWMDutyCycle reads back the raw duty cycle of a PWM channel.
func (d *Device) PWMDutyCycle(ch PWMChannel) (uint32, error) {
	item, ok := pwmDutyItems[ch]
	if !ok {
		return 0, invalid("pwm channel", ch)
	}
	return d.Field(item)
}

// Timer is one of the two programmable output timers.
type Timer uint8

const (
	Timer1 Timer = iota + 1
	Timer2
)

// TimerConfig is the CR2 setting of a timer. Period and OnTime are the
// datasheet selector codes (T1..T8 and TON1..TON5).
type TimerConfig struct {
	Period  uint8
	OnTime  uint8
	Restart bool
	Dir     bool
}

var timerItems = map[Timer][4]Item{
	Timer1: {CR2_T1_RESTART, CR2_T1_DIR, CR2_T1_ON, CR2_T1_PER},
	Timer2: {CR2_T2_RESTART, CR2_T2_DIR, CR2_T2_ON, CR2_T2_PER},
}

// SetTimer programs a timer with one read-modify-write of CR2.
func (d *Device) SetTimer(t Timer, tc TimerConfig) error {
	items, ok := timerItems[t]
	if !ok {
		return invalid("timer", t)
	}

	var mask, data uint32
	for i, v := range [4]uint32{boolBit(tc.Restart), boolBit(tc.Dir), uint32(tc.OnTime), uint32(tc.Period)} {
		f := fields[items[i]]
		enc, err := f.Encode(v)
		if err != nil {
			return err
		}
		mask |= f.Mask
		data |= enc
	}

	d.mu.Lock()
	err := d.modifyControl(CR2, mask, data)
	d.mu.Unlock()
	return err
}

// SetECVMaxVoltage selects the 1.5V (high) or 1.2V electrochromic range.
func (d *Device) SetECVMaxVoltage(high bool) error {
	return d.SetField(CFR_ECV_HV, boolBit(high))
}

// SetECVDriveVoltage sets the electrochromic target voltage. The scale is
// taken from the current CFR ECV_HV setting and the value is clamped to it.
func (d *Device) SetECVDriveVoltage(volts float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	high, err := d.field(CFR_ECV_HV)
	if err != nil {
		return err
	}
	return d.setField(CR11_EC_VALUE, ECVCode(volts, high == 1))
}

// ECVDriveVoltage reads back the electrochromic target voltage.
func (d *Device) ECVDriveVoltage() (float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	high, err := d.field(CFR_ECV_HV)
	if err != nil {
		return 0, err
	}
	code, err := d.field(CR11_EC_VALUE)
	if err != nil {
		return 0, err
	}
	return ECVVolts(code, high == 1), nil
}
