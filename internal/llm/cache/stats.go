package cache

// Stats holds counters for the cache middleware and its Redis pool.
type Stats struct {
	Hits    int64
	Misses  int64
	Errors  int64
	HitRate float64

	PoolHits       uint32
	PoolMisses     uint32
	PoolTimeouts   uint32
	PoolTotalConns uint32
	PoolIdleConns  uint32
}

// Stats returns current counters. Safe for concurrent use.
func (m *Middleware) Stats() Stats {
	hits := m.hits.Load()
	misses := m.misses.Load()

	s := Stats{
		Hits:   hits,
		Misses: misses,
		Errors: m.errors.Load(),
	}
	if total := hits + misses; total > 0 {
		s.HitRate = float64(hits) / float64(total)
	}

	if m.client != nil {
		ps := m.client.PoolStats()
		s.PoolHits = ps.Hits
		s.PoolMisses = ps.Misses
		s.PoolTimeouts = ps.Timeouts
		s.PoolTotalConns = ps.TotalConns
		s.PoolIdleConns = ps.IdleConns
	}
	return s
}
