package l99dz200g

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/spi"
)

// SerialInterface is the physical link to the device. Implementations
// exist for periph.io SPI ports ([PeriphSPI]) and the FT232H USB bridge
// (package ft232h).
type SerialInterface interface {
	// Exchange clocks tx out and len(tx) bytes into rx as one transfer.
	// It returns the number of bytes moved.
	Exchange(tx, rx []byte) (int, error)

	// SetCS drives the chip select line, high deasserts. It is only called
	// when the device is configured for [SoftwareCS].
	SetCS(high bool) error

	Init() error

	// Close closes the interface.
	Close() error
}

// Clock is the timebase used by the watchdog supervisor.
// [clockwork.Clock] satisfies it.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// ChipSelectMode selects who drives the chip select line. It also fixes
// the SPI mode: the device needs CS held for all four bytes, which
// hardware chip select controllers only do in mode 3.
type ChipSelectMode uint8

const (
	HardwareCS ChipSelectMode = iota
	SoftwareCS
)

// SPIMode returns the bus mode required for the chip select mode.
func (m ChipSelectMode) SPIMode() spi.Mode {
	if m == SoftwareCS {
		return spi.Mode0 | spi.NoCS
	}
	return spi.Mode3
}

func (m ChipSelectMode) String() string {
	if m == SoftwareCS {
		return "software"
	}
	return "hardware"
}

// Config represents driver level configuration parameters
type Config struct {
	ChipSelect ChipSelectMode
	// Watchdog selects the register holding the watchdog trigger bit.
	Watchdog WatchdogTrigger
	// WatchdogInterval is the initial refresh interval. It must match the
	// device's CR2 WD_TIME setting, TSW1 after power up.
	WatchdogInterval time.Duration
	// ROMFrameSize is 2 or 4. Some transports only clock the status and
	// data byte for device information reads.
	ROMFrameSize int
	// SkipWritableCheck lets write and read-modify-write transactions reach
	// any address. By default they are rejected for anything but CR1..CR22
	// and CFR before any I/O.
	SkipWritableCheck bool

	Clock  Clock
	Logger *zerolog.Logger
}

// DefaultConfig provides default config. You can adjust as needed
func DefaultConfig() Config {
	return Config{
		ChipSelect:       HardwareCS,
		Watchdog:         TriggerCFR,
		WatchdogInterval: watchdogIntervals[WatchdogTSW1],
		ROMFrameSize:     ROMFrameSize,
	}
}

// Device provides register level and feature level control over an
// ST L99DZ200G door zone controller.
//
// Exported methods are serialized by an internal mutex, so a
// read-modify-write is never interleaved with another caller's transaction.
type Device struct {
	mu  sync.RWMutex    // Synchronize concurrent operations
	spi SerialInterface // SerialInterface interface
	cfg Config
	log zerolog.Logger

	gsb GlobalStatus

	// Last read or written register states (for reference or debugging)
	regLR [NumRegisters]uint32 // "Last Read"  register data
	regLW [NumRegisters]uint32 // "Last Write" register data

	wd watchdog
}

// New constructs a Device on top of the given SerialInterface.
// Zero fields in cfg fall back to [DefaultConfig].
func New(si SerialInterface, cfg Config) *Device {
	def := DefaultConfig()
	if cfg.WatchdogInterval <= 0 {
		cfg.WatchdogInterval = def.WatchdogInterval
	}
	if cfg.ROMFrameSize != ROMFrameSize && cfg.ROMFrameSize != FrameSize {
		cfg.ROMFrameSize = def.ROMFrameSize
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = cfg.Logger.With().Str("caller", "l99dz200g").Logger()
	}

	d := &Device{
		spi: si,
		cfg: cfg,
		log: log,
		gsb: GSBN,
	}
	d.wd = watchdog{
		interval: cfg.WatchdogInterval,
		last:     cfg.Clock.Now(),
		running:  true,
		trigger:  cfg.Watchdog,
	}
	return d
}

// Config returns the configuration the device was built with.
func (d *Device) Config() Config {
	return d.cfg
}

// Initialize brings up the transport, releases chip select and restarts
// the watchdog bookkeeping. Call it once at start-up.
func (d *Device) Initialize() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.spi == nil {
		return ErrNotInitialized
	}
	if err := d.spi.Init(); err != nil {
		return fmt.Errorf("failed to initialize spi: %w", err)
	}
	if err := d.setCSHigh(); err != nil {
		return fmt.Errorf("failed to release chip select: %w", err)
	}

	d.wd.last = d.cfg.Clock.Now()
	d.log.Debug().
		Stringer("cs", d.cfg.ChipSelect).
		Stringer("trigger", d.wd.trigger.register()).
		Dur("interval", d.wd.interval).
		Msg("initialized")
	return nil
}

// Close stops watchdog servicing and closes the transport. The device
// falls back to fail-safe once its hardware watchdog lapses.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.wd.running = false
	if d.spi == nil {
		return nil
	}
	err := d.setCSHigh()
	return errors.Join(err, d.spi.Close())
}

// GlobalStatus returns the global status byte cached from the most recent transaction.
func (d *Device) GlobalStatus() GlobalStatus {
	d.mu.RLock()
	g := d.gsb
	d.mu.RUnlock()
	return g
}
