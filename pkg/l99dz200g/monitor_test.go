package l99dz200g

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func newMonitorDevice(t *testing.T) (*Device, *chip) {
	t.Helper()
	c := newChip()
	d := New(c, Config{Clock: &steppingClock{now: time.Unix(0, 0)}})
	if err := d.Initialize(); err != nil {
		t.Fatal(err)
	}
	return d, c
}

func waitDone(t *testing.T, m *Monitor) {
	t.Helper()
	select {
	case <-m.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("monitor did not exit")
	}
}

func TestMonitorReportsFaults(t *testing.T) {
	d, c := newMonitorDevice(t)
	c.set(SR1, fields[SR1_WD_FAIL].Mask)

	var (
		mu   sync.Mutex
		seen = make(map[Item]int)
		hit  = make(chan struct{}, 1)
	)
	m, err := d.Monitor(context.Background(), 10*time.Millisecond, func(item Item) {
		mu.Lock()
		seen[item]++
		n := seen[item]
		mu.Unlock()
		if n == 3 {
			hit <- struct{}{}
		}
	}, SR1_WD_FAIL, SR1_V1_UV)
	if err != nil {
		t.Fatal(err)
	}

	select {
	case <-hit:
	case <-time.After(5 * time.Second):
		t.Fatal("no faults reported")
	}
	m.Stop()
	waitDone(t, m)

	if err = m.Err(); err != nil {
		t.Errorf("unexpected errors: %v", err)
	}
	if m.Cycles() < 3 {
		t.Errorf("%d cycles", m.Cycles())
	}
	mu.Lock()
	defer mu.Unlock()
	if seen[SR1_V1_UV] != 0 {
		t.Error("clear flag reported")
	}
	if d.WatchdogRefreshes() == 0 {
		t.Error("watchdog not serviced between polls")
	}
}

func TestMonitorContext(t *testing.T) {
	d, _ := newMonitorDevice(t)
	ctx, cancel := context.WithCancel(context.Background())

	m, err := d.Monitor(ctx, time.Millisecond, nil)
	if err != nil {
		t.Fatal(err)
	}
	cancel()
	waitDone(t, m)

	if !m.IsDone() {
		t.Error("IsDone false after exit")
	}
	if err = m.Wait(context.Background()); err != nil {
		t.Errorf("cancellation reported as error: %v", err)
	}
}

func TestMonitorErrors(t *testing.T) {
	d, c := newMonitorDevice(t)
	c.err = errBus

	m, err := d.Monitor(context.Background(), time.Millisecond, nil, SR2_TW)
	if err != nil {
		t.Fatal(err)
	}
	for m.Cycles() < 2 {
		time.Sleep(time.Millisecond)
	}
	m.Stop()
	waitDone(t, m)

	if err = m.Err(); !errors.Is(err, errBus) || !IsTransport(err) {
		t.Errorf("expected the bus fault to be collected, got %v", err)
	}
}

func TestMonitorArgs(t *testing.T) {
	d, _ := newMonitorDevice(t)
	if _, err := d.Monitor(context.Background(), 0, nil); !errors.Is(err, ErrValueRange) {
		t.Errorf("expected ErrValueRange, got %v", err)
	}
	if _, err := d.Monitor(context.Background(), time.Millisecond, nil, CR1_TRIG); !errors.Is(err, ErrInvalidSelector) {
		t.Errorf("expected ErrInvalidSelector, got %v", err)
	}
}
