package domain

import "sync/atomic"

// Stats counts constructed categories, products added to categories and
// placed orders. Counters only grow; Reset exists for tests.
type Stats struct {
	categories atomic.Int64
	products   atomic.Int64
	orders     atomic.Int64
}

// Snapshot is a point-in-time copy of Stats.
type Snapshot struct {
	Categories int64
	Products   int64
	Orders     int64
}

var processStats = NewStats()

// NewStats returns an isolated set of counters.
func NewStats() *Stats {
	return &Stats{}
}

// DefaultStats returns the process-wide counters used when a constructor is
// not given explicit Stats.
func DefaultStats() *Stats {
	return processStats
}

func (s *Stats) CategoryCount() int64 { return s.categories.Load() }
func (s *Stats) ProductCount() int64  { return s.products.Load() }
func (s *Stats) OrderCount() int64    { return s.orders.Load() }

// Snapshot copies all counters.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Categories: s.categories.Load(),
		Products:   s.products.Load(),
		Orders:     s.orders.Load(),
	}
}

// Reset zeroes every counter.
func (s *Stats) Reset() {
	s.categories.Store(0)
	s.products.Store(0)
	s.orders.Store(0)
}
