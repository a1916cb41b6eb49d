// Package feed maintains rate-table snapshots for executing deferred
// monetary operations.
//
// The package never fetches rates itself: callers plug in a Service that
// produces [monet.Rates] snapshots from wherever rates live, and decorate it
// with caching and logging as needed. Because a Rates table is immutable,
// refreshing always swaps in a whole new snapshot and readers never observe
// a partially updated table.
package feed

import (
	"context"

	"github.com/monet-go/monet"
)

// Service produces the current rate-table snapshot.
// Implementations must be safe for concurrent use; returned tables are
// immutable and may be shared freely.
type Service interface {
	Rates(ctx context.Context) (*monet.Rates, error)
}

// fixedService serves a single static table.
type fixedService struct {
	table *monet.Rates
}

// NewFixedService returns a Service that always serves the given table.
func NewFixedService(table *monet.Rates) Service {
	return &fixedService{
		table: table,
	}
}

func (s *fixedService) Rates(_ context.Context) (*monet.Rates, error) {
	return s.table, nil
}
