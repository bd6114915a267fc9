package state

import (
	"log"
	"time"
)

// DefaultSyncInterval is how often the background sync runs while at least
// one integration is enabled.
const DefaultSyncInterval = 2 * time.Hour

// Scheduler periodically invokes the mock integration sync. Ticks are
// skipped while no integration toggle is on, so enabling one later picks the
// sync back up without restarting the scheduler.
type Scheduler struct {
	container *Container
	interval  time.Duration
	logger    *log.Logger
	stop      chan struct{}
	done      chan struct{}
}

// NewScheduler builds a scheduler around the container. A non-positive
// interval falls back to the default.
func NewScheduler(c *Container, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}
	return &Scheduler{
		container: c,
		interval:  interval,
		logger:    c.logger,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the tick loop. Call Stop to tear it down.
func (s *Scheduler) Start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.tick()
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *Scheduler) tick() {
	if !s.container.HasActiveIntegrations() {
		return
	}
	steps, calories := s.container.SyncNow()
	s.logger.Printf("integration sync applied +%d steps, +%d kcal", steps, calories)
}

// Stop halts the loop and waits for it to exit.
func (s *Scheduler) Stop() {
	close(s.stop)
	<-s.done
}
