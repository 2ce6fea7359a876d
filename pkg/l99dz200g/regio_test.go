package l99dz200g

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteReadRegister(t *testing.T) {
	d, c, _ := newTestDevice(t)

	if err := d.WriteControl(CR7, 0x1ABCDEF); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := c.reg(CR7); got != 0xABCDEF {
		t.Errorf("device holds 0x%06X, want 0xABCDEF", got)
	}
	if got := d.LastWrittenRegister(CR7); got != 0xABCDEF {
		t.Errorf("last written 0x%06X", got)
	}

	v, err := d.ReadRegister(CR7)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if v != 0xABCDEF || d.LastReadRegister(CR7) != v {
		t.Errorf("read 0x%06X, last read 0x%06X", v, d.LastReadRegister(CR7))
	}

	want := []access{{OpWrite, CR7}, {OpRead, CR7}}
	if diff := cmp.Diff(want, c.ops()); diff != "" {
		t.Errorf("transactions (-want +got):\n%s", diff)
	}
}

func TestModifyControl(t *testing.T) {
	d, c, _ := newTestDevice(t)
	c.set(CR13, 0xABC123)

	if err := d.ModifyControl(CR13, 0x3FF000, 0x1FF000); err != nil {
		t.Fatalf("modify: %v", err)
	}
	if got := c.reg(CR13); got != 0x9FF123 {
		t.Errorf("CR13 = 0x%06X, want 0x9FF123", got)
	}
	if diff := cmp.Diff([]access{{OpRead, CR13}, {OpWrite, CR13}}, c.ops()); diff != "" {
		t.Errorf("transactions (-want +got):\n%s", diff)
	}

	t.Run("DataOutsideMaskIgnored", func(t *testing.T) {
		c.set(CR4, 0)
		if err := d.ModifyControl(CR4, 0x000001, 0xFFFFFF); err != nil {
			t.Fatal(err)
		}
		if got := c.reg(CR4); got != 0x000001 {
			t.Errorf("CR4 = 0x%06X", got)
		}
	})

	t.Run("ReadFailureWritesNothing", func(t *testing.T) {
		c.reset()
		c.set(CR5, 0x123456)
		c.err = errBus
		err := d.ModifyControl(CR5, 0xFF, 0x00)
		if !errors.Is(err, errBus) || !IsTransport(err) {
			t.Fatalf("expected transport error wrapping errBus, got %v", err)
		}
		if diff := cmp.Diff([]access{{OpRead, CR5}}, c.ops()); diff != "" {
			t.Errorf("transactions (-want +got):\n%s", diff)
		}
		if c.reg(CR5) != 0x123456 {
			t.Error("register changed after failed read")
		}
	})
}

func TestNotWritable(t *testing.T) {
	d, c, _ := newTestDevice(t)

	for _, reg := range []Register{SR1, SR12, 0x00, 0x20} {
		if err := d.WriteControl(reg, 1); !errors.Is(err, ErrRegisterNotWritable) {
			t.Errorf("WriteControl(%s): expected ErrRegisterNotWritable, got %v", reg, err)
		}
		if err := d.ModifyControl(reg, 1, 1); !errors.Is(err, ErrRegisterNotWritable) {
			t.Errorf("ModifyControl(%s): expected ErrRegisterNotWritable, got %v", reg, err)
		}
	}
	if n := len(c.ops()); n != 0 {
		t.Errorf("%d transactions issued for rejected writes", n)
	}

	if err := d.WriteControl(0x40, 0); !errors.Is(err, ErrInvalidSelector) {
		t.Errorf("out of range address: %v", err)
	}

	t.Run("SkipWritableCheck", func(t *testing.T) {
		d, c, _ := newTestDevice(t, func(cfg *Config) { cfg.SkipWritableCheck = true })
		if err := d.WriteControl(SR3, 0x10); err != nil {
			t.Fatalf("write: %v", err)
		}
		if diff := cmp.Diff([]access{{OpWrite, SR3}}, c.ops()); diff != "" {
			t.Errorf("transactions (-want +got):\n%s", diff)
		}
	})
}

func TestReadClear(t *testing.T) {
	d, c, _ := newTestDevice(t)
	c.set(SR2, 0x000901)

	v, err := d.ReadClear(SR2, 0x000800)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x000901 {
		t.Errorf("returned 0x%06X, want contents before the clear", v)
	}
	if got := c.reg(SR2); got != 0x000101 {
		t.Errorf("SR2 = 0x%06X after clear", got)
	}
}

func TestGlobalStatusCache(t *testing.T) {
	d, c, _ := newTestDevice(t)
	if d.GlobalStatus() != GSBN {
		t.Errorf("initial gsb %s", d.GlobalStatus())
	}

	c.gsb = GSBSPIError
	if _, err := d.ReadRegister(SR2); err != nil {
		t.Fatal(err)
	}
	if g := d.GlobalStatus(); !g.SPIError() || !g.Fault() {
		t.Errorf("gsb not cached: %s", g)
	}

	c.gsb = GSBN
	if err := d.WriteControl(CR1, 0); err != nil {
		t.Fatal(err)
	}
	if g := d.GlobalStatus(); g.Fault() {
		t.Errorf("gsb not refreshed: %s", g)
	}
}

func TestTransportErrors(t *testing.T) {
	d, c, _ := newTestDevice(t)

	t.Run("Short", func(t *testing.T) {
		c.short = true
		defer func() { c.short = false }()
		_, err := d.ReadRegister(SR1)
		if !errors.Is(err, ErrShortTransfer) || !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("expected short transfer, got %v", err)
		}
		var te *TransportError
		if !errors.As(err, &te) || te.Op != OpRead || Register(te.Reg) != SR1 {
			t.Errorf("unexpected transport error %#v", te)
		}
	})

	t.Run("Bus", func(t *testing.T) {
		c.err = errBus
		if err := d.WriteControl(CR1, 0); !errors.Is(err, errBus) {
			t.Errorf("expected errBus, got %v", err)
		}
	})

	t.Run("NoTransport", func(t *testing.T) {
		d := New(nil, DefaultConfig())
		if _, err := d.ReadRegister(SR1); !errors.Is(err, ErrNotInitialized) {
			t.Errorf("expected ErrNotInitialized, got %v", err)
		}
		if err := d.Initialize(); !errors.Is(err, ErrNotInitialized) {
			t.Errorf("expected ErrNotInitialized, got %v", err)
		}
	})
}

func TestSoftwareChipSelect(t *testing.T) {
	d, c, _ := newTestDevice(t, func(cfg *Config) { cfg.ChipSelect = SoftwareCS })

	if _, err := d.ReadRegister(SR1); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]bool{false, true}, c.cs); diff != "" {
		t.Errorf("chip select sequence (-want +got):\n%s", diff)
	}

	c.reset()
	c.err = errBus
	_, _ = d.ReadRegister(SR1)
	if diff := cmp.Diff([]bool{false, true}, c.cs); diff != "" {
		t.Errorf("chip select not released after failure (-want +got):\n%s", diff)
	}

	t.Run("HardwareLeavesCSAlone", func(t *testing.T) {
		d, c, _ := newTestDevice(t)
		if _, err := d.ReadRegister(SR1); err != nil {
			t.Fatal(err)
		}
		if len(c.cs) != 0 {
			t.Errorf("SetCS called %d times with hardware chip select", len(c.cs))
		}
	})
}

func TestReadROM(t *testing.T) {
	d, c, _ := newTestDevice(t)
	c.rom[0x00] = 0x00
	c.rom[0x01] = 0x16

	v, err := d.ReadROM(0x01)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x16 {
		t.Errorf("rom[1] = 0x%02X", v)
	}
	c.mu.Lock()
	frame := c.frames[0]
	c.mu.Unlock()
	if diff := cmp.Diff([]byte{0xC1, 0x00}, frame); diff != "" {
		t.Errorf("rom frame (-want +got):\n%s", diff)
	}

	if _, err = d.ReadROM(0x40); !errors.Is(err, ErrInvalidSelector) {
		t.Errorf("expected ErrInvalidSelector, got %v", err)
	}

	t.Run("FourByte", func(t *testing.T) {
		d, c, _ := newTestDevice(t, func(cfg *Config) { cfg.ROMFrameSize = FrameSize })
		c.rom[0x02] = 0x5A
		v, err := d.ReadROM(0x02)
		if err != nil {
			t.Fatal(err)
		}
		if v != 0x5A {
			t.Errorf("rom[2] = 0x%02X", v)
		}
	})
}

func TestResetAndClearAll(t *testing.T) {
	d, c, _ := newTestDevice(t)
	c.set(CR3, 0x123)
	c.set(CFR, 0x456)
	c.set(SR2, 0x789)

	if err := d.ResetControlRegisters(); err != nil {
		t.Fatal(err)
	}
	if c.reg(CR3) != 0 || c.reg(CFR) != 0 || c.reg(SR2) != 0x789 {
		t.Error("reset touched the wrong registers")
	}

	if err := d.ClearAllStatus(); err != nil {
		t.Fatal(err)
	}
	if c.reg(SR2) != 0 {
		t.Error("status not cleared")
	}

	want := []access{{OpDeviceInfo, CFR}, {OpReadClear, CFR}}
	if diff := cmp.Diff(want, c.ops()); diff != "" {
		t.Errorf("transactions (-want +got):\n%s", diff)
	}
}

func TestReadAllRegisters(t *testing.T) {
	d, c, _ := newTestDevice(t)
	for i, reg := range AllRegisters {
		c.set(reg, uint32(i+1))
	}

	regs, err := d.ReadAllRegisters()
	if err != nil {
		t.Fatal(err)
	}
	if len(regs) != len(AllRegisters) {
		t.Fatalf("%d registers, want %d", len(regs), len(AllRegisters))
	}
	for i, reg := range AllRegisters {
		if regs[reg] != uint32(i+1) {
			t.Errorf("%s = %d, want %d", reg, regs[reg], i+1)
		}
	}
	if diff := cmp.Diff(regs, d.Registers()); diff != "" {
		t.Errorf("shadow differs (-read +shadow):\n%s", diff)
	}
}

func TestClose(t *testing.T) {
	d, c, _ := newTestDevice(t)
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if c.close != 1 {
		t.Errorf("transport closed %d times", c.close)
	}
	if d.WatchdogRunning() {
		t.Error("watchdog still running after close")
	}
}
