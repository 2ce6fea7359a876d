package l99dz200g

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spitest"
)

func TestPeriphSPI(t *testing.T) {
	port := &spitest.Playback{
		Playback: conntest.Playback{
			Ops: []conntest.IO{
				{W: []byte{0x71, 0x00, 0x00, 0x00}, R: []byte{0x80, 0x12, 0x34, 0x56}},
				{W: []byte{0x0D, 0x0F, 0xF0, 0x00}, R: []byte{0xA0, 0x00, 0x00, 0x00}},
			},
		},
	}
	cs := &gpiotest.Pin{N: "CS", L: gpio.Low}

	si := NewPeriphSPI(port, physic.MegaHertz, SoftwareCS, cs)
	d := New(si, Config{ChipSelect: SoftwareCS})
	if err := d.Initialize(); err != nil {
		t.Fatal(err)
	}
	if cs.Read() != gpio.High {
		t.Error("chip select not released by Initialize")
	}

	v, err := d.ReadRegister(SR1)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x123456 {
		t.Errorf("SR1 = 0x%06X", v)
	}
	if cs.Read() != gpio.High {
		t.Error("chip select left asserted")
	}

	if err = d.WriteControl(CR13, 0x0FF000); err != nil {
		t.Fatal(err)
	}
	if g := d.GlobalStatus(); !g.SPIError() {
		t.Errorf("gsb %s", g)
	}

	if err = d.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}

func TestPeriphSPIInit(t *testing.T) {
	if err := NewPeriphSPI(nil, physic.MegaHertz, HardwareCS, nil).Init(); err == nil {
		t.Error("expected error without a port")
	}
	port := &spitest.Playback{}
	if err := NewPeriphSPI(port, physic.MegaHertz, SoftwareCS, nil).Init(); err == nil {
		t.Error("expected error for software chip select without a pin")
	}

	p := NewPeriphSPI(port, physic.MegaHertz, HardwareCS, nil)
	if _, err := p.Exchange(make([]byte, 4), make([]byte, 4)); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestChipSelectSPIMode(t *testing.T) {
	if HardwareCS.SPIMode() != spi.Mode3 {
		t.Error("hardware chip select needs mode 3")
	}
	if SoftwareCS.SPIMode()&spi.NoCS == 0 {
		t.Error("software chip select must disable the controller's CS")
	}
}
