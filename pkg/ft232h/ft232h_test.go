package ft232h

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/l0nax/go-spew/spew"
	"github.com/yunginnanet/ft232h"

	"github.com/yunginnanet/ftdi-l99dz200g/pkg/l99dz200g"
)

func TestFT232HDescriptor(t *testing.T) {
	t.Run("ByIndex", func(t *testing.T) {
		desc := ByIndex(0)
		if err := desc.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		t.Run("Invalid", func(t *testing.T) {
			desc = ByIndex(-1)
			if err := desc.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	})
	t.Run("BySerial", func(t *testing.T) {
		desc := BySerial("123456")
		if err := desc.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		t.Run("Invalid", func(t *testing.T) {
			desc = BySerial("")
			if err := desc.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	})
	t.Run("ByMask", func(t *testing.T) {
		mask := new(ft232h.Mask)
		mask.Index = "0"
		desc := ByMask(mask)
		if err := desc.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		t.Run("Invalid", func(t *testing.T) {
			desc = ByMask(nil)
			if err := desc.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	})
	t.Run("Mask", func(t *testing.T) {
		if ByIndex(5).Mask().Index != "5" {
			t.Error("unexpected mask index")
		}
		if BySerial("5").Mask().Serial != "5" {
			t.Error("unexpected mask serial")
		}
	})
	t.Run("MaskCopy", func(t *testing.T) {
		mask := &ft232h.Mask{Desc: "door"}
		desc := ByMask(mask)
		desc.Serial = "FT1"
		got := desc.Mask()
		if got.Desc != "door" || got.Serial != "FT1" {
			t.Errorf("unexpected mask: %+v", got)
		}
		if mask.Serial != "" {
			t.Error("Mask modified the caller's mask")
		}
	})
	t.Run("ConnectBadDescriptor", func(t *testing.T) {
		if _, err := ConnectFT232h(ByIndex(-1)); err != ErrBadDescriptor {
			t.Errorf("expected ErrBadDescriptor, got %v", err)
		}
		if _, err := ConnectFT232h(ByIndex(0), ByIndex(1)); err == nil {
			t.Error("expected error for two descriptors")
		}
	})
}

func TestSetCSWithoutPin(t *testing.T) {
	ft := &FT232H{}
	if err := ft.SetCS(true); err != ErrNoCSPin {
		t.Errorf("expected ErrNoCSPin, got %v", err)
	}
}

// bridge records the engine and GPIO calls made by FT232H.
type bridge struct {
	calls []string
	swaps [][]byte
	reply []byte
	err   error
}

func (b *bridge) Init() error {
	b.calls = append(b.calls, "init")
	return nil
}

func (b *bridge) Swap(data []uint8, start, stop bool) ([]uint8, error) {
	b.calls = append(b.calls, "swap")
	if !start || !stop {
		b.calls = append(b.calls, "split frame")
	}
	b.swaps = append(b.swaps, append([]byte(nil), data...))
	if b.err != nil {
		return nil, b.err
	}
	return b.reply, nil
}

func (b *bridge) Close() error {
	b.calls = append(b.calls, "close")
	return nil
}

func (b *bridge) ConfigPin(pin ft232h.CPin, dir ft232h.Dir, val bool) error {
	if dir != ft232h.Output || !val {
		b.calls = append(b.calls, "config "+pin.String()+" bad")
		return nil
	}
	b.calls = append(b.calls, "config "+pin.String())
	return nil
}

func (b *bridge) Set(pin ft232h.CPin, val bool) error {
	b.calls = append(b.calls, "set "+pin.String()+" "+strconv.FormatBool(val))
	return nil
}

func newBridge() (*FT232H, *bridge) {
	b := &bridge{}
	return &FT232H{spi: b, gpio: b}, b
}

func TestExchange(t *testing.T) {
	ft, b := newBridge()
	b.reply = []byte{0xA0, 0x12, 0x34, 0x56}

	tx := []byte{0x41, 0x00, 0x00, 0x00}
	rx := make([]byte, 4)
	n, err := ft.Exchange(tx, rx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("exchanged %d bytes", n)
	}
	if diff := cmp.Diff([]string{"swap"}, b.calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]byte{tx}, b.swaps); diff != "" {
		t.Errorf("clocked out (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(b.reply, rx); diff != "" {
		t.Errorf("received (-want +got):\n%s", diff)
	}

	t.Run("Error", func(t *testing.T) {
		fault := errors.New("usb stall")
		b.err = fault
		if _, err := ft.Exchange(tx, rx); !errors.Is(err, fault) {
			t.Errorf("expected wrapped usb stall, got %v", err)
		}
	})

	t.Run("NotOpen", func(t *testing.T) {
		if _, err := (&FT232H{}).Exchange(tx, rx); err != ErrNotOpen {
			t.Errorf("expected ErrNotOpen, got %v", err)
		}
		if err := (&FT232H{}).Init(); err != ErrNotOpen {
			t.Errorf("expected ErrNotOpen, got %v", err)
		}
	})
}

func TestInitRestoresCSPin(t *testing.T) {
	ft, b := newBridge()
	if err := ft.SetCSPin(3); err != nil {
		t.Fatal(err)
	}
	if ft.CSPin() != ft232h.C(3) {
		t.Errorf("cs pin %s", ft.CSPin())
	}
	if err := ft.Init(); err != nil {
		t.Fatal(err)
	}
	if err := ft.SetCS(false); err != nil {
		t.Fatal(err)
	}
	want := []string{"config C3", "init", "config C3", "set C3 false"}
	if diff := cmp.Diff(want, b.calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
}

func TestDefaultSPIConfig(t *testing.T) {
	c := DefaultSPIConfig()
	if c.Mode != 3 {
		t.Errorf("device needs mode 3, got %d", c.Mode)
	}
	if c.Clock == 0 || c.Clock > 30000000 {
		t.Errorf("clock out of range: %d", c.Clock)
	}
}

func testConnect(t *testing.T, desc *Descriptor, validMask bool) DeviceInfo {
	t.Helper()

	var (
		ftdi *FT232H
		err  error
	)

	if validMask {
		if desc == nil {
			t.Fatalf("descriptor is nil")
		}
		if err = desc.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if desc == nil {
		ftdi, err = ConnectFT232h()
	} else {
		ftdi, err = ConnectFT232h(*desc)
	}

	if err != nil {
		t.Fatalf("failed to connect to FT232H: %v", err)
	}

	info := ftdi.Info()
	t.Logf("connected to FT232H: %s", spew.Sdump(info))

	if err = ftdi.Close(); err != nil {
		t.Errorf("failed to close FT232H: %v", err)
	}

	return info
}

func TestConnectFT232h(t *testing.T) {
	if os.Getenv("TEST_FT232H") == "" {
		t.Skip("set 'TEST_FT232H' in environment to run this test")
	}

	testInfo := testConnect(t, nil, false)

	t.Run("ByIndex", func(t *testing.T) {
		desc := ByIndex(0)
		if os.Getenv("TEST_FT232H_INDEX") != "" {
			idx, err := strconv.Atoi(strings.TrimSpace(os.Getenv("TEST_FT232H_INDEX")))
			if err != nil {
				t.Fatalf(
					"bad 'TEST_FT232H_INDEX' environment variable: %v\nvalue: %s",
					err, os.Getenv("TEST_FT232H_INDEX"),
				)
			}
			desc = ByIndex(idx)
		}

		_ = testConnect(t, &desc, true)
	})

	t.Run("BySerial", func(t *testing.T) {
		serial := ""
		if os.Getenv("TEST_FT232H_SERIAL") != "" {
			serial = strings.TrimSpace(os.Getenv("TEST_FT232H_SERIAL"))
		}

		if serial == "" {
			serial = testInfo.Serial
		}

		if serial == "" {
			t.Skip("no serial number provided, try setting 'TEST_FT232H_SERIAL' in environment")
		}

		desc := BySerial(serial)

		_ = testConnect(t, &desc, true)
	})
}

func TestDeviceOverFT232H(t *testing.T) {
	if os.Getenv("TEST_FT232H") == "" || os.Getenv("TEST_L99_SPI") == "" {
		t.Skip("set 'TEST_FT232H' and 'TEST_L99_SPI' in environment to run this test")
	}

	ftdi, err := ConnectFT232h(ByIndex(0))
	if err != nil {
		t.Fatalf("failed to connect to FT232H: %v", err)
	}
	if err = ftdi.ConfigureSPI(DefaultSPIConfig()); err != nil {
		t.Fatalf("failed to configure spi: %v", err)
	}

	dev := l99dz200g.New(ftdi, l99dz200g.DefaultConfig())
	if err = dev.Initialize(); err != nil {
		t.Fatalf("failed to initialize: %v", err)
	}
	defer func() {
		if err := dev.Close(); err != nil {
			t.Errorf("failed to close: %v", err)
		}
	}()

	id, err := dev.ReadROM(0x00)
	if err != nil {
		t.Fatalf("failed to read device id: %v", err)
	}
	t.Logf("rom[0x00]=0x%02X gsb=%s", id, dev.GlobalStatus())

	regs, err := dev.ReadAllRegisters()
	if err != nil {
		t.Fatalf("failed to read registers: %v", err)
	}
	t.Log(spew.Sdump(regs))
}
