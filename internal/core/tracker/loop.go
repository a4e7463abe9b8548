package tracker

import (
	"context"
	"log"
	"time"
)

// DefaultSampleInterval is the cadence of the sampling loop
const DefaultSampleInterval = time.Second

// Run drives the tracker at the given interval until ctx is cancelled,
// flushing the open session on shutdown. Each tick is isolated so one bad
// sample never halts subsequent ticks.
func (t *Tracker) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSampleInterval
	}

	log.Printf("Tracker starting (interval %s, idle threshold %s)", interval, t.idleThreshold)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("Tracker shutting down, flushing open session...")
			t.Flush()
			return
		case <-ticker.C:
			t.safeUpdate()
		}
	}
}

func (t *Tracker) safeUpdate() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Tracker tick panicked: %v", r)
		}
	}()
	t.Update()
}
