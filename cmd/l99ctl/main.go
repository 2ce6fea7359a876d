package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/ftdi"

	"github.com/yunginnanet/ftdi-l99dz200g/pkg/ft232h"
	"github.com/yunginnanet/ftdi-l99dz200g/pkg/gpiocs"
	"github.com/yunginnanet/ftdi-l99dz200g/pkg/l99dz200g"
)

var log zerolog.Logger

func init() {
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	log = zerolog.New(cw).With().Timestamp().Logger()
}

type options struct {
	bus      string
	spiName  string
	ftIndex  int
	cs       uint
	gpioChip string
	csLine   int
	hz       int64
	wd       uint
	verbose  bool
	trace    bool
}

func flags() options {
	var o options
	flag.StringVar(&o.bus, "bus", "periph", "transport: periph (spidev), ftdi (periph FT232H) or ft232h (yunginnanet/ft232h MPSSE bridge)")
	flag.StringVar(&o.spiName, "spi", "", "periph SPI port name, empty for the first one")
	flag.IntVar(&o.ftIndex, "ft232h", 0, "FT232H index")
	flag.UintVar(&o.cs, "cs", 0, "FT232H C-bus chip select pin")
	flag.StringVar(&o.gpioChip, "gpiochip", "", "GPIO chip for software chip select, e.g. gpiochip0")
	flag.IntVar(&o.csLine, "csline", -1, "GPIO line offset for software chip select")
	flag.Int64Var(&o.hz, "hz", 1000000, "SPI clock in Hz")
	flag.UintVar(&o.wd, "wd", 0, "watchdog time selector 0..3 (TSW1..TSW4)")
	flag.BoolVar(&o.verbose, "v", false, "debug logging")
	flag.BoolVar(&o.trace, "vv", false, "trace logging, every SPI frame")
	flag.Parse()
	return o
}

func (o options) softwareCS() bool {
	return o.gpioChip != "" && o.csLine >= 0
}

func openPeriph(o options) (l99dz200g.SerialInterface, l99dz200g.ChipSelectMode, error) {
	if _, err := host.Init(); err != nil {
		return nil, 0, fmt.Errorf("periph host init: %w", err)
	}

	var (
		port spi.PortCloser
		err  error
	)
	switch o.bus {
	case "ftdi":
		port, err = ftdiPort()
	default:
		port, err = spireg.Open(o.spiName)
	}
	if err != nil {
		return nil, 0, err
	}

	mode := l99dz200g.HardwareCS
	var cs l99dz200g.ChipSelectPin
	if o.softwareCS() {
		line, err := gpiocs.Open(o.gpioChip, o.csLine)
		if err != nil {
			return nil, 0, errors.Join(err, port.Close())
		}
		mode, cs = l99dz200g.SoftwareCS, line
	}

	return l99dz200g.NewPeriphSPI(port, physic.Frequency(o.hz)*physic.Hertz, mode, cs), mode, nil
}

func ftdiPort() (spi.PortCloser, error) {
	for _, dev := range ftdi.All() {
		if ft, ok := dev.(*ftdi.FT232H); ok {
			return ft.SPI()
		}
	}
	return nil, errors.New("no FT232H found by periph")
}

func openFT232H(o options) (l99dz200g.SerialInterface, l99dz200g.ChipSelectMode, error) {
	ft, err := ft232h.ConnectFT232h(ft232h.ByIndex(o.ftIndex))
	if err != nil {
		return nil, 0, err
	}
	log.Info().Any("info", ft.Info()).Msgf("connected to FT232H: %s", ft)

	cfg := ft232h.DefaultSPIConfig()
	cfg.Clock = uint32(o.hz)
	cfg.CS = o.cs

	log.Debug().Any("config", cfg).Msg("initializing SPI")
	if err = ft.ConfigureSPI(cfg); err != nil {
		return nil, 0, errors.Join(err, ft.Close())
	}
	return ft, l99dz200g.HardwareCS, nil
}

func main() {
	o := flags()

	switch {
	case o.trace:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case o.verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	var (
		si   l99dz200g.SerialInterface
		mode l99dz200g.ChipSelectMode
		err  error
	)
	switch o.bus {
	case "periph", "ftdi":
		si, mode, err = openPeriph(o)
	case "ft232h":
		si, mode, err = openFT232H(o)
	default:
		err = fmt.Errorf("unknown bus %q", o.bus)
	}
	if err != nil {
		log.Fatal().Err(err).Str("bus", o.bus).Msg("failed to open transport")
	}

	cfg := l99dz200g.DefaultConfig()
	cfg.ChipSelect = mode
	cfg.Logger = &log

	dev := l99dz200g.New(si, cfg)
	if err = dev.Initialize(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize L99DZ200G")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = dev.SetWatchdogTime(l99dz200g.WatchdogTime(o.wd)); err != nil {
		log.Error().Err(err).Msg("failed to set watchdog time")
	}

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"status"}
	}
	err = run(ctx, dev, args)

	if cerr := dev.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("failed to close L99DZ200G")
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", args[0]).Msg("command failed")
	}
}

func run(ctx context.Context, dev *l99dz200g.Device, args []string) error {
	switch args[0] {
	case "status":
		return status(dev)
	case "keepalive":
		d, err := durationArg(args, 1, 10*time.Second)
		if err != nil {
			return err
		}
		log.Info().Dur("duration", d).Msg("servicing watchdog")
		if err = dev.Maintain(ctx, d); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		log.Info().Uint64("refreshes", dev.WatchdogRefreshes()).Msg("done")
		return nil
	case "pwm":
		if len(args) < 3 {
			return errors.New("usage: pwm <channel 1..7> <percent>")
		}
		ch, err := strconv.ParseUint(args[1], 10, 8)
		if err != nil {
			return err
		}
		pct, err := strconv.ParseUint(args[2], 10, 8)
		if err != nil {
			return err
		}
		if err = dev.SetPWMDutyCycle(l99dz200g.PWMChannel(ch), uint8(pct)); err != nil {
			return err
		}
		code, err := dev.PWMDutyCycle(l99dz200g.PWMChannel(ch))
		log.Info().Uint64("channel", ch).Uint32("code", code).Msg("duty cycle set")
		return err
	case "clear":
		if err := dev.ClearAllStatus(); err != nil {
			return err
		}
		log.Info().Stringer("gsb", dev.GlobalStatus()).Msg("status cleared")
		return nil
	case "analog":
		return analog(dev)
	case "monitor":
		d, err := durationArg(args, 1, 30*time.Second)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		m, err := dev.Monitor(ctx, 100*time.Millisecond, func(item l99dz200g.Item) {
			log.Warn().Stringer("item", item).Msg("fault")
		})
		if err != nil {
			return err
		}
		<-m.Done()
		log.Info().Uint64("cycles", m.Cycles()).Msg("monitor stopped")
		return m.Err()
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func durationArg(args []string, i int, def time.Duration) (time.Duration, error) {
	if len(args) <= i {
		return def, nil
	}
	return time.ParseDuration(args[i])
}

func status(dev *l99dz200g.Device) error {
	regs, err := dev.ReadAllRegisters()
	if err != nil {
		return err
	}
	for _, reg := range l99dz200g.AllRegisters {
		log.Info().Str("value", fmt.Sprintf("0x%06X", regs[reg])).Msg(reg.String())
	}

	faults, err := dev.Faults(l99dz200g.Items(l99dz200g.StatusFlag, l99dz200g.StatusFlagClearElsewhere)...)
	if err != nil {
		return err
	}
	for _, f := range faults {
		log.Warn().Stringer("item", f).Msg("asserted")
	}
	log.Info().Stringer("gsb", dev.GlobalStatus()).Int("faults", len(faults)).Msg("L99DZ200G status")
	return nil
}

func analog(dev *l99dz200g.Device) error {
	for c := l99dz200g.Cluster1; c <= l99dz200g.Cluster6; c++ {
		temp, err := dev.ThermalClusterTemp(c)
		if err != nil {
			return err
		}
		log.Info().Stringer("cluster", c).Float64("celsius", temp).Msg("temperature")
	}
	for _, p := range []l99dz200g.SupplyPin{l99dz200g.PinVS, l99dz200g.PinVSReg, l99dz200g.PinVWU} {
		v, err := dev.PinVoltage(p)
		if err != nil {
			return err
		}
		log.Info().Stringer("pin", p).Float64("volts", v).Msg("voltage")
	}
	return nil
}
