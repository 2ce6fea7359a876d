package l99dz200g

import (
	"context"
	"fmt"
	"time"
)

// WatchdogTime is the CR2 WD_TIME selector.
type WatchdogTime uint8

const (
	WatchdogTSW1 WatchdogTime = iota // 10ms nominal, 7.5..12ms window
	WatchdogTSW2                     // 50ms nominal, 37.5..60ms window
	WatchdogTSW3                     // 100ms nominal, 75..120ms window
	WatchdogTSW4                     // 200ms nominal, 150..240ms window
)

// Refresh intervals sit at the early edge of each window so a refresh
// never lands late.
var watchdogIntervals = [...]time.Duration{
	WatchdogTSW1: 10 * time.Millisecond,
	WatchdogTSW2: 37 * time.Millisecond,
	WatchdogTSW3: 75 * time.Millisecond,
	WatchdogTSW4: 150 * time.Millisecond,
}

// Interval returns the software refresh interval used for t.
func (t WatchdogTime) Interval() time.Duration {
	if int(t) >= len(watchdogIntervals) {
		return 0
	}
	return watchdogIntervals[t]
}

func (t WatchdogTime) String() string {
	if int(t) >= len(watchdogIntervals) {
		return fmt.Sprintf("TSW(%d)", uint8(t))
	}
	return fmt.Sprintf("TSW%d", uint8(t)+1)
}

// WatchdogTrigger selects which register carries the trigger bit. The
// device accepts the toggle in either; pick one and keep it.
type WatchdogTrigger uint8

const (
	TriggerCFR WatchdogTrigger = iota
	TriggerCR1
)

func (t WatchdogTrigger) register() Register {
	if t == TriggerCR1 {
		return CR1
	}
	return CFR
}

func (t WatchdogTrigger) item() Item {
	if t == TriggerCR1 {
		return CR1_TRIG
	}
	return CFR_WDC
}

type watchdog struct {
	interval  time.Duration
	last      time.Time
	running   bool
	trigger   WatchdogTrigger
	refreshes uint64
}

// CheckWatchdog refreshes the device watchdog if the trigger interval has
// elapsed. The refresh timestamp is reset on expiry even while servicing is
// stopped, so no backlog builds up. It reports whether the interval had
// elapsed.
func (d *Device) CheckWatchdog() (bool, error) {
	d.mu.Lock()
	expired, err := d.checkWatchdog()
	d.mu.Unlock()
	return expired, err
}

func (d *Device) checkWatchdog() (bool, error) {
	now := d.cfg.Clock.Now()
	if now.Sub(d.wd.last) < d.wd.interval {
		return false, nil
	}
	d.wd.last = now
	if !d.wd.running {
		return true, nil
	}
	return true, d.triggerWatchdog()
}

// TriggerWatchdog toggles the watchdog trigger bit immediately.
func (d *Device) TriggerWatchdog() error {
	d.mu.Lock()
	err := d.triggerWatchdog()
	d.mu.Unlock()
	return err
}

func (d *Device) triggerWatchdog() error {
	f := fields[d.wd.trigger.item()]
	if err := d.toggleControl(f.Reg, f.Mask); err != nil {
		return fmt.Errorf("watchdog trigger: %w", err)
	}
	d.wd.refreshes++
	d.log.Debug().
		Stringer("reg", f.Reg).
		Dur("interval", d.wd.interval).
		Uint64("count", d.wd.refreshes).
		Msg("watchdog refresh")
	return nil
}

// SetWatchdogTime programs the device trigger window and adopts the
// matching software refresh interval. CFR WD_CFG_EN is written before CR2,
// as the device ignores WD_TIME changes otherwise.
func (d *Device) SetWatchdogTime(t WatchdogTime) error {
	if int(t) >= len(watchdogIntervals) {
		return invalid("watchdog time", t)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	cfgEn, wdTime := fields[CFR_WD_CFG_EN], fields[CR2_WD_TIME]

	cfr, err := d.readRegister(CFR)
	if err != nil {
		return err
	}
	cr2, err := d.readRegister(CR2)
	if err != nil {
		return err
	}

	if err = d.writeControl(CFR, cfr|cfgEn.Mask); err != nil {
		return err
	}
	if err = d.writeControl(CR2, (cr2&^wdTime.Mask)|(uint32(t)<<wdTime.Pos&wdTime.Mask)); err != nil {
		return err
	}

	d.wd.interval = t.Interval()
	d.wd.last = d.cfg.Clock.Now()
	d.log.Debug().Stringer("time", t).Dur("interval", d.wd.interval).Msg("watchdog time set")
	return nil
}

// WatchdogTime reads the trigger window selector from CR2.
func (d *Device) WatchdogTime() (WatchdogTime, error) {
	v, err := d.Field(CR2_WD_TIME)
	return WatchdogTime(v), err
}

// WatchdogInterval returns the current software refresh interval.
func (d *Device) WatchdogInterval() time.Duration {
	d.mu.RLock()
	i := d.wd.interval
	d.mu.RUnlock()
	return i
}

// EnableWatchdog resumes refreshes. It must be called after returning to
// active mode from standby.
func (d *Device) EnableWatchdog() {
	d.mu.Lock()
	d.wd.running = true
	d.wd.last = d.cfg.Clock.Now()
	d.mu.Unlock()
}

// DisableWatchdog stops refreshes. Expiry checks keep resetting the timestamp.
func (d *Device) DisableWatchdog() {
	d.mu.Lock()
	d.wd.running = false
	d.mu.Unlock()
}

func (d *Device) WatchdogRunning() bool {
	d.mu.RLock()
	r := d.wd.running
	d.mu.RUnlock()
	return r
}

// WatchdogRefreshes returns how many trigger toggles have been written.
func (d *Device) WatchdogRefreshes() uint64 {
	d.mu.RLock()
	n := d.wd.refreshes
	d.mu.RUnlock()
	return n
}

// MaintainFor blocks for dur while keeping the device watchdog serviced.
// Use it instead of time.Sleep anywhere the device must stay active.
func (d *Device) MaintainFor(dur time.Duration) error {
	return d.Maintain(context.Background(), dur)
}

// Maintain is MaintainFor with cancellation. It sleeps in 1ms steps and
// checks the watchdog after each step.
func (d *Device) Maintain(ctx context.Context, dur time.Duration) error {
	for elapsed := time.Duration(0); elapsed < dur; elapsed += time.Millisecond {
		if err := ctx.Err(); err != nil {
			return err
		}

		d.cfg.Clock.Sleep(time.Millisecond)

		d.mu.Lock()
		_, err := d.checkWatchdog()
		d.mu.Unlock()

		if err != nil {
			return err
		}
	}
	return nil
}
