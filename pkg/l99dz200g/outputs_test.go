package l99dz200g

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetPWMDutyCycle(t *testing.T) {
	d, c, _ := newTestDevice(t)

	if err := d.SetPWMDutyCycle(PWM1, 25); err != nil {
		t.Fatal(err)
	}
	if got := c.reg(CR13); got != 255<<12 {
		t.Errorf("CR13 = 0x%06X, want duty 255", got)
	}
	if diff := cmp.Diff([]access{{OpRead, CR13}, {OpWrite, CR13}}, c.ops()); diff != "" {
		t.Errorf("transactions (-want +got):\n%s", diff)
	}

	code, err := d.PWMDutyCycle(PWM1)
	if err != nil || code != 255 {
		t.Errorf("PWMDutyCycle = %d, %v", code, err)
	}

	if err = d.SetPWMDutyCycle(PWM7, 100); err != nil {
		t.Fatal(err)
	}
	if got := fields[CR16_PWM7_DC].Decode(c.reg(CR16)); got != PWMDutyMax {
		t.Errorf("PWM7 duty %d", got)
	}

	if err = d.SetPWMDutyCycle(PWM1, 101); !errors.Is(err, ErrValueRange) {
		t.Errorf("expected ErrValueRange, got %v", err)
	}
	if err = d.SetPWMDutyCycle(PWMChannel(8), 10); !errors.Is(err, ErrInvalidSelector) {
		t.Errorf("expected ErrInvalidSelector, got %v", err)
	}
	if err = d.SetPWMFrequency(PWM1, PWM330Hz); err != nil {
		t.Fatal(err)
	}
	if got := c.reg(CR12) >> 22; got != uint32(PWM330Hz) {
		t.Errorf("PWM1 frequency %d", got)
	}
}

func TestMotorWord(t *testing.T) {
	for _, tc := range []struct {
		out  MotorOutputs
		dir  Direction
		want uint32
	}{
		{MotorX, Left, 0x120000},
		{MotorX, Right, 0x210000},
		{MotorXY, Right, 0x211000},
		{MotorYF, Left, 0x102002},
		{MotorXF, Brake, 0},
	} {
		got, err := MotorWord(tc.out, tc.dir)
		if err != nil || got != tc.want {
			t.Errorf("MotorWord(%d, %s) = 0x%06X, %v; want 0x%06X", tc.out, tc.dir, got, err, tc.want)
		}
	}

	if _, err := MotorWord(MotorYF+1, Left); !errors.Is(err, ErrInvalidSelector) {
		t.Errorf("expected ErrInvalidSelector, got %v", err)
	}
	if _, err := MotorWord(MotorX, Direction(3)); !errors.Is(err, ErrInvalidSelector) {
		t.Errorf("expected ErrInvalidSelector, got %v", err)
	}
}

func TestDriveMotor(t *testing.T) {
	d, c, _ := newTestDevice(t)
	c.set(CR4, 0xFFFFFF)

	if err := d.DriveMotor(MotorXY, Right); err != nil {
		t.Fatal(err)
	}
	if got := c.reg(CR4); got != 0x211000 {
		t.Errorf("CR4 = 0x%06X", got)
	}
	if diff := cmp.Diff([]access{{OpWrite, CR4}}, c.ops()); diff != "" {
		t.Errorf("transactions (-want +got):\n%s", diff)
	}
}

func TestSetHalfBridge(t *testing.T) {
	d, c, _ := newTestDevice(t)
	c.set(CR4, 0x220000)

	if err := d.SetHalfBridge(Out2LS, true); err != nil {
		t.Fatal(err)
	}
	if got := c.reg(CR4); got != 0x210000 {
		t.Errorf("CR4 = 0x%06X, opposite side not switched off", got)
	}
	if err := d.SetHalfBridge(Out2LS, false); err != nil {
		t.Fatal(err)
	}
	if got := c.reg(CR4); got != 0x200000 {
		t.Errorf("CR4 = 0x%06X", got)
	}
	if err := d.SetHalfBridge(Out6LS+1, true); !errors.Is(err, ErrInvalidSelector) {
		t.Errorf("expected ErrInvalidSelector, got %v", err)
	}
}

func TestSetHighSide(t *testing.T) {
	t.Run("SwitchedDisablesConstantCurrent", func(t *testing.T) {
		d, c, _ := newTestDevice(t)
		c.set(CR9, fields[CR9_OUT7_CCM_EN].Mask)

		if err := d.SetHighSide(Out7, OutputPWM1); err != nil {
			t.Fatal(err)
		}
		want := []access{{OpRead, CR9}, {OpWrite, CR9}, {OpRead, CR5}, {OpWrite, CR5}}
		if diff := cmp.Diff(want, c.ops()); diff != "" {
			t.Errorf("transactions (-want +got):\n%s", diff)
		}
		if c.reg(CR9) != 0 {
			t.Errorf("CR9 = 0x%06X", c.reg(CR9))
		}
		if got := c.reg(CR5); got != 0x400000 {
			t.Errorf("CR5 = 0x%06X", got)
		}
	})

	t.Run("StaticLeavesConstantCurrent", func(t *testing.T) {
		d, c, _ := newTestDevice(t)
		if err := d.SetHighSide(Out7, OutputOn); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]access{{OpRead, CR5}, {OpWrite, CR5}}, c.ops()); diff != "" {
			t.Errorf("transactions (-want +got):\n%s", diff)
		}
	})

	t.Run("Heater", func(t *testing.T) {
		d, c, _ := newTestDevice(t)
		if err := d.SetHeater(OutputOn); err != nil {
			t.Fatal(err)
		}
		if c.reg(CR5) != fields[CR5_GH].Mask {
			t.Errorf("CR5 = 0x%06X", c.reg(CR5))
		}
		if err := d.SetHeater(OutputTimer1); !errors.Is(err, ErrValueRange) {
			t.Errorf("expected ErrValueRange, got %v", err)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		d, _, _ := newTestDevice(t)
		if err := d.SetHighSide(Out1, OutputOn); !errors.Is(err, ErrInvalidSelector) {
			t.Errorf("expected ErrInvalidSelector, got %v", err)
		}
	})
}

func TestSetConstantCurrent(t *testing.T) {
	d, c, _ := newTestDevice(t)
	c.set(CR5, 0xF00000)
	c.set(CR7, 0xFFFFFF)

	if err := d.SetConstantCurrent(Out7, true); err != nil {
		t.Fatal(err)
	}
	want := []access{
		{OpRead, CR5}, {OpWrite, CR5},
		{OpRead, CR7}, {OpWrite, CR7},
		{OpRead, CR9}, {OpWrite, CR9},
	}
	if diff := cmp.Diff(want, c.ops()); diff != "" {
		t.Errorf("transactions (-want +got):\n%s", diff)
	}
	if c.reg(CR5) != 0 || c.reg(CR7)&fields[CR7_OUT7_OCR].Mask != 0 {
		t.Error("output or auto-recovery left on")
	}
	if c.reg(CR9) != fields[CR9_OUT7_CCM_EN].Mask {
		t.Errorf("CR9 = 0x%06X", c.reg(CR9))
	}

	c.reset()
	if err := d.SetConstantCurrent(Out7, false); err != nil {
		t.Fatal(err)
	}
	if len(c.ops()) != 2 || c.reg(CR9) != 0 {
		t.Error("disable should only touch CR9")
	}

	if err := d.SetConstantCurrent(Out10, true); !errors.Is(err, ErrInvalidSelector) {
		t.Errorf("expected ErrInvalidSelector, got %v", err)
	}
}

func TestSetVLED(t *testing.T) {
	d, c, _ := newTestDevice(t)

	if err := d.SetVLED(Out7, 5.0); err != nil {
		t.Fatal(err)
	}
	if got := fields[CR17_OUT7_VLED].Decode(c.reg(CR17)); got != 232 {
		t.Errorf("VLED code %d", got)
	}
	if err := d.SetVLED(Out7, 50); err != nil {
		t.Fatal(err)
	}
	if got := fields[CR17_OUT7_VLED].Decode(c.reg(CR17)); got != VSCode(VLEDMax, VLEDMax) {
		t.Errorf("VLED not clamped: %d", got)
	}
	if err := d.SetAutoCompensation(Out7, true); err != nil {
		t.Fatal(err)
	}
	if c.reg(CR17)&fields[CR17_OUT7_AUTOCOMP].Mask == 0 {
		t.Error("autocomp not set")
	}
	if err := d.SetAutoRecovery(Out9, true); !errors.Is(err, ErrInvalidSelector) {
		t.Errorf("OUT9 has no auto-recovery: %v", err)
	}
}

func TestSetTimer(t *testing.T) {
	d, c, _ := newTestDevice(t)
	c.set(CR2, 0x00FFFF)

	err := d.SetTimer(Timer1, TimerConfig{Period: 5, OnTime: 3, Restart: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := c.reg(CR2); got != 0x9DFFFF {
		t.Errorf("CR2 = 0x%06X", got)
	}
	if diff := cmp.Diff([]access{{OpRead, CR2}, {OpWrite, CR2}}, c.ops()); diff != "" {
		t.Errorf("transactions (-want +got):\n%s", diff)
	}

	if err = d.SetTimer(Timer1, TimerConfig{OnTime: 8}); !errors.Is(err, ErrValueRange) {
		t.Errorf("expected ErrValueRange, got %v", err)
	}
	if err = d.SetTimer(Timer(3), TimerConfig{}); !errors.Is(err, ErrInvalidSelector) {
		t.Errorf("expected ErrInvalidSelector, got %v", err)
	}
}

func TestECV(t *testing.T) {
	d, c, _ := newTestDevice(t)

	if err := d.SetECVDriveVoltage(0.6); err != nil {
		t.Fatal(err)
	}
	if got := c.reg(CR11); got != 31 {
		t.Errorf("low range code %d", got)
	}

	if err := d.SetECVMaxVoltage(true); err != nil {
		t.Fatal(err)
	}
	if c.reg(CFR)&fields[CFR_ECV_HV].Mask == 0 {
		t.Fatal("ECV_HV not set")
	}
	if err := d.SetECVDriveVoltage(2.0); err != nil {
		t.Fatal(err)
	}
	if got := c.reg(CR11); got != 63 {
		t.Errorf("clamped code %d", got)
	}
	v, err := d.ECVDriveVoltage()
	if err != nil || v != ECVHighMax {
		t.Errorf("ECVDriveVoltage = %g, %v", v, err)
	}
}
