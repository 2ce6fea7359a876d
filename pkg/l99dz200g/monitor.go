package l99dz200g

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

const maxMonitorErrors = 50

// FaultCallback is called from the monitor goroutine for every asserted flag.
type FaultCallback func(item Item)

// Monitor polls a set of status flags in the background. The watchdog is
// serviced while it waits between polls.
type Monitor struct {
	Interval time.Duration
	items    []Item
	callback FaultCallback

	done     *atomic.Bool
	running  *atomic.Bool
	finished chan struct{}
	cycles   *atomic.Uint64

	err   []error
	errMu sync.Mutex
}

func newMonitor(interval time.Duration, items []Item, onFault FaultCallback) *Monitor {
	return &Monitor{
		Interval: interval,
		items:    items,
		callback: onFault,
		done:     &atomic.Bool{},
		running:  &atomic.Bool{},
		finished: make(chan struct{}),
		cycles:   &atomic.Uint64{},
		err:      make([]error, 0),
	}
}

func (m *Monitor) addErr(err error) {
	if err == nil {
		return
	}
	m.errMu.Lock()
	m.err = append(m.err, err)
	if len(m.err) >= maxMonitorErrors {
		m.done.Store(true)
	}
	m.errMu.Unlock()
}

// Err returns the errors collected so far, joined.
func (m *Monitor) Err() error {
	m.errMu.Lock()
	defer m.errMu.Unlock()
	if len(m.err) == 0 {
		return nil
	}
	return fmt.Errorf("status monitor errors: %w", errors.Join(m.err...))
}

// Stop asks the monitor to exit after the current poll.
func (m *Monitor) Stop() {
	m.done.Store(true)
}

func (m *Monitor) IsDone() bool {
	return m.done.Load()
}

// Done is closed once the monitor goroutine has exited.
func (m *Monitor) Done() <-chan struct{} {
	return m.finished
}

// Cycles returns the number of completed polls.
func (m *Monitor) Cycles() uint64 {
	return m.cycles.Load()
}

// Wait blocks until the monitor goroutine exits or ctx is done.
func (m *Monitor) Wait(ctx context.Context) error {
	select {
	case <-m.finished:
		return m.Err()
	case <-ctx.Done():
		return errors.Join(ctx.Err(), m.Err())
	}
}

func (d *Device) pollFaults(m *Monitor) {
	d.mu.Lock()
	asserted, err := d.faults(m.items)
	d.mu.Unlock()

	m.addErr(err)
	for _, item := range asserted {
		d.log.Warn().Stringer("item", item).Msg("status flag asserted")
		if m.callback != nil {
			m.callback(item)
		}
	}
	m.cycles.Add(1)
}

// Monitor starts polling items every interval and calls onFault for each
// asserted flag. With no items every status flag in the table is polled.
// Polling ends on Stop, on ctx cancellation, or once too many errors have
// accumulated.
func (d *Device) Monitor(ctx context.Context, interval time.Duration, onFault FaultCallback, items ...Item) (*Monitor, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: monitor interval %s", ErrValueRange, interval)
	}
	if len(items) == 0 {
		items = Items(StatusFlag, StatusFlagClearElsewhere)
	}
	for _, item := range items {
		if _, err := lookupKind(item, StatusFlag, StatusFlagClearElsewhere); err != nil {
			return nil, err
		}
	}

	m := newMonitor(interval, items, onFault)
	m.running.Store(true)

	go func() {
		defer func() {
			m.running.Store(false)
			m.done.Store(true)
			close(m.finished)
		}()
		for !m.done.Load() {
			if ctx.Err() != nil {
				return
			}
			d.pollFaults(m)
			if m.done.Load() {
				return
			}
			if err := d.Maintain(ctx, interval); err != nil && !errors.Is(err, ctx.Err()) {
				m.addErr(err)
			}
		}
	}()

	return m, nil
}
