package l99dz200g

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

// chip emulates the register file of the device behind a SerialInterface.
// Writes answer with the previous register contents, read-and-clear
// answers with the contents before the clear.
type chip struct {
	mu sync.Mutex

	regs [NumRegisters]uint32
	rom  [NumRegisters]byte
	gsb  byte

	frames [][]byte
	cs     []bool

	err   error // returned by the next Exchange
	short bool  // report one byte less than requested
	inits int
	close int

	// now, when set, timestamps every write to CFR into cfrWrites.
	now       func() time.Time
	cfrWrites []time.Time
}

func newChip() *chip {
	return &chip{gsb: GSBN}
}

func (c *chip) Init() error {
	c.mu.Lock()
	c.inits++
	c.mu.Unlock()
	return nil
}

func (c *chip) Close() error {
	c.mu.Lock()
	c.close++
	c.mu.Unlock()
	return nil
}

func (c *chip) SetCS(high bool) error {
	c.mu.Lock()
	c.cs = append(c.cs, high)
	c.mu.Unlock()
	return nil
}

func (c *chip) Exchange(tx, rx []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.frames = append(c.frames, append([]byte(nil), tx...))

	if c.err != nil {
		err := c.err
		c.err = nil
		return 0, err
	}

	op, addr := Opcode(tx[0]&opcodeMask), tx[0]&addrMask
	rx[0] = c.gsb

	if len(tx) != FrameSize {
		if op == OpDeviceInfo {
			rx[len(rx)-1] = c.rom[addr]
		}
		return len(tx), nil
	}

	payload := UnpackPayload(tx[1:])
	prev := c.regs[addr]
	switch op {
	case OpWrite:
		c.regs[addr] = payload
		if Register(addr) == CFR && c.now != nil {
			c.cfrWrites = append(c.cfrWrites, c.now())
		}
	case OpReadClear:
		if Register(addr) == CFR && payload == 0 {
			for _, r := range AllRegisters {
				if !IsWritable(r) {
					c.regs[r] = 0
				}
			}
		} else {
			c.regs[addr] &^= payload
		}
	case OpDeviceInfo:
		if Register(addr) == CFR {
			for _, r := range AllRegisters {
				if IsWritable(r) {
					c.regs[r] = 0
				}
			}
		} else {
			prev = uint32(c.rom[addr])
		}
	}
	PackPayload(rx[1:], prev)

	if c.short {
		return len(tx) - 1, nil
	}
	return len(tx), nil
}

// ops returns the opcode and register of every recorded frame.
func (c *chip) ops() []access {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]access, 0, len(c.frames))
	for _, f := range c.frames {
		out = append(out, access{Opcode(f[0] & opcodeMask), Register(f[0] & addrMask)})
	}
	return out
}

func (c *chip) reset() {
	c.mu.Lock()
	c.frames = nil
	c.cs = nil
	c.cfrWrites = nil
	c.mu.Unlock()
}

// writeTimes returns the recorded CFR write timestamps.
func (c *chip) writeTimes() []time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Time(nil), c.cfrWrites...)
}

func (c *chip) reg(r Register) uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.regs[r]
}

func (c *chip) set(r Register, v uint32) {
	c.mu.Lock()
	c.regs[r] = v
	c.mu.Unlock()
}

type access struct {
	Op  Opcode
	Reg Register
}

var errBus = errors.New("bus fault")

func newTestDevice(t *testing.T, mutate ...func(*Config)) (*Device, *chip, clockwork.FakeClock) {
	t.Helper()
	c := newChip()
	clk := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	cfg := DefaultConfig()
	cfg.Clock = clk
	for _, m := range mutate {
		m(&cfg)
	}
	d := New(c, cfg)
	if err := d.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	c.reset()
	return d, c, clk
}

// steppingClock advances by itself on every Sleep.
type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (s *steppingClock) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *steppingClock) Sleep(d time.Duration) {
	s.mu.Lock()
	s.now = s.now.Add(d)
	s.mu.Unlock()
}
