// Package testhelpers provides shared doubles for container and store
// tests: a settable clock and a store that fails on demand.
package testhelpers

import (
	"context"
	"sync"
	"time"

	"github.com/calorix/calorix/internal/models"
)

// Clock is a settable time source for pinning "today" in tests.
type Clock struct {
	mu sync.Mutex
	t  time.Time
}

func NewClock(t time.Time) *Clock {
	return &Clock{t: t}
}

// Now returns the current fake time. Pass it as the container clock.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

// Advance moves the clock forward.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// Set jumps the clock to an absolute time.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

// FailingStore implements store.StateStore with injectable errors.
type FailingStore struct {
	mu        sync.Mutex
	LoadErr   error
	SaveErr   error
	saveCount int
}

func (s *FailingStore) Load(ctx context.Context) (*models.AppState, error) {
	return nil, s.LoadErr
}

func (s *FailingStore) Save(ctx context.Context, state *models.AppState) error {
	s.mu.Lock()
	s.saveCount++
	s.mu.Unlock()
	return s.SaveErr
}

// SaveCalls reports how many saves were attempted.
func (s *FailingStore) SaveCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveCount
}
