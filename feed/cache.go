package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-kit/log"

	"github.com/monet-go/monet"
)

// cachingService decorates a Service with a cached snapshot of the rate
// table. The cachingService is concurrency safe and will periodically
// refresh the cached snapshot.
type cachingService struct {
	// next the service being decorated with a cache
	next Service

	// updateFrequency how often to refresh the cached snapshot
	updateFrequency time.Duration

	// lock synchronizes access to table to make it concurrency safe
	lock sync.RWMutex

	// table the cached snapshot; nil until the first successful refresh
	table *monet.Rates

	logger log.Logger
}

// NewCachingService returns a new caching Service.
// The cached snapshot is refreshed every updateFrequency for as long as the
// context passed to the first Rates call remains live.
func NewCachingService(updateFrequency time.Duration, next Service) Service {
	return &cachingService{
		next:            next,
		updateFrequency: updateFrequency,
		logger:          log.NewNopLogger(),
	}
}

// Rates returns the cached snapshot, loading it from the decorated service
// on first use.
func (s *cachingService) Rates(ctx context.Context) (*monet.Rates, error) {
	s.lock.RLock()
	table := s.table
	s.lock.RUnlock()

	if table == nil {
		// Concurrent first calls may race to refresh; that is harmless
		// beyond duplicate loads, and refreshNow reports which caller
		// cached first so that only one refresh goroutine is started.
		table, firstTime, err := s.refreshNow(ctx)
		if err != nil {
			return nil, fmt.Errorf("refreshing rates: %w", err)
		}
		if firstTime {
			go s.refreshPeriodically(ctx)
		}
		return table, nil
	}

	return table, nil
}

// refreshNow refreshes the cached snapshot immediately.
func (s *cachingService) refreshNow(ctx context.Context) (*monet.Rates, bool, error) {
	table, err := s.next.Rates(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("refresh: %w", err)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	firstTime := s.table == nil
	s.table = table
	return table, firstTime, nil
}

// refreshPeriodically refreshes the cached snapshot on a schedule.
// This is expected to be called from a go-routine.
func (s *cachingService) refreshPeriodically(ctx context.Context) {
	for {
		select {
		case <-time.After(s.updateFrequency):
			_, _, err := s.refreshNow(ctx)
			if err != nil {
				// Don't return, just log and hope this is a transient error
				s.logger.Log("msg", "periodic refresh failed", "error", err)
			}
		case <-ctx.Done():
			s.uncache()
			return
		}
	}
}

// uncache safely drops the cached snapshot.
func (s *cachingService) uncache() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.table = nil
}
