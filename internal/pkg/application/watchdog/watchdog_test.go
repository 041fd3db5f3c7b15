package watchdog

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vineetparikh-rph/temprx360/internal/pkg/application/alerts"

	"github.com/matryer/is"
)

func TestWatchdogSweepsOnStartAndOnTick(t *testing.T) {
	is, ctx := testSetup(t)

	var sweeps atomic.Int32
	svc := &alerts.AlertServiceMock{
		CheckAllSensorsFunc: func(ctx context.Context) error {
			sweeps.Add(1)
			return nil
		},
	}

	w := New(svc, 10*time.Millisecond)
	w.Start(ctx)
	defer w.Stop(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for sweeps.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	is.True(sweeps.Load() >= 2) // immediate sweep plus at least one tick
}

func TestWatchdogStopsSweeping(t *testing.T) {
	is, ctx := testSetup(t)

	var sweeps atomic.Int32
	svc := &alerts.AlertServiceMock{
		CheckAllSensorsFunc: func(ctx context.Context) error {
			sweeps.Add(1)
			return nil
		},
	}

	w := New(svc, 10*time.Millisecond)
	w.Start(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for sweeps.Load() < 1 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	w.Stop(ctx)
	w.Stop(ctx) // stopping twice must not panic

	settled := sweeps.Load()
	time.Sleep(50 * time.Millisecond)
	is.True(sweeps.Load() <= settled+1)
}

func testSetup(t *testing.T) (*is.I, context.Context) {
	return is.New(t), context.Background()
}
