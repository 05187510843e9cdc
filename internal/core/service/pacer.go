package service

import (
	"context"
	"time"
)

// Pacer paces the executor between waypoints. Execution correctness never
// depends on it: tests use NopPacer, a live demo uses DelayPacer.
type Pacer interface {
	Pause(ctx context.Context) error
}

type nopPacer struct{}

func (nopPacer) Pause(context.Context) error { return nil }

// NopPacer returns immediately on every pause.
func NopPacer() Pacer { return nopPacer{} }

type delayPacer struct {
	delay time.Duration
}

// DelayPacer waits the given wall-clock duration between waypoints, honoring
// context cancellation.
func DelayPacer(d time.Duration) Pacer { return delayPacer{delay: d} }

func (p delayPacer) Pause(ctx context.Context) error {
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
