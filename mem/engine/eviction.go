package engine

import "time"

// evictAndRetry frees victims one at a time and re-runs placement until the
// request fits or the victim pool is exhausted. The retry count is capped at
// the number of occupied regions present when eviction began, which bounds
// the cascade even when every freed region is still too small. Retries
// re-run placement directly: the external request was already counted, so
// the request counters are not touched again.
func (e *Engine) evictAndRetry(size, owner int, began time.Time) (int, error) {
	budget := e.occupiedCount()
	for i := 0; i < budget; i++ {
		victim, ok := e.selectVictim()
		if !ok {
			return 0, ErrNoFit
		}
		e.release(victim)
		if idx, ok := e.place(size); ok {
			start := e.commit(idx, size, owner)
			e.record(owner, size, began)
			return start, nil
		}
	}
	return 0, ErrNoFit
}

func (e *Engine) occupiedCount() int {
	n := 0
	for _, r := range e.regions {
		if r.Occupied {
			n++
		}
	}
	return n
}

// selectVictim picks the index of the region the active eviction policy
// sacrifices next.
func (e *Engine) selectVictim() (int, bool) {
	switch e.eviction {
	case EvictFIFO:
		return e.fifoVictim()
	case EvictLRU:
		return e.lruVictim()
	case EvictLFU:
		return e.lfuVictim()
	}
	return 0, false
}

// fifoVictim pops queue entries until one still names an occupied region.
// Entries whose allocation was freed in the meantime no longer match any
// region and are discarded.
func (e *Engine) fifoVictim() (int, bool) {
	for len(e.queue) > 0 {
		seq := e.queue[0]
		e.queue = e.queue[1:]
		for i := range e.regions {
			if e.regions[i].Occupied && e.regions[i].seq == seq {
				return i, true
			}
		}
	}
	return 0, false
}

func (e *Engine) lruVictim() (int, bool) {
	victim := -1
	for i, r := range e.regions {
		if !r.Occupied {
			continue
		}
		if victim < 0 || r.lastTouched < e.regions[victim].lastTouched {
			victim = i
		}
	}
	if victim < 0 {
		return 0, false
	}
	return victim, true
}

// lfuVictim keeps the strict < comparison so ties resolve to the lowest
// start address.
func (e *Engine) lfuVictim() (int, bool) {
	victim := -1
	for i, r := range e.regions {
		if !r.Occupied {
			continue
		}
		if victim < 0 || r.touchCount < e.regions[victim].touchCount {
			victim = i
		}
	}
	if victim < 0 {
		return 0, false
	}
	return victim, true
}
