package engine

import "time"

// Derived metrics. All of these are pure functions over current state and
// never mutate the partition.

// FragmentationRatio measures free-space scattering as a count-based ratio:
// (freeRegions - 1) / freeRegions, or 0 when no free region exists. The
// formula deliberately ignores the size distribution of the free regions.
func (e *Engine) FragmentationRatio() float64 {
	free := e.FreeRegionCount()
	if free == 0 {
		return 0
	}
	return float64(free-1) / float64(free)
}

// SuccessRate returns (total - failed) / total requests, or 1.0 before any
// request has been made.
func (e *Engine) SuccessRate() float64 {
	if e.totalRequests == 0 {
		return 1.0
	}
	return float64(e.totalRequests-e.failedRequests) / float64(e.totalRequests)
}

// AverageLatency returns the mean latency of completed allocations, or 0
// when none have succeeded yet.
func (e *Engine) AverageLatency() time.Duration {
	if len(e.log) == 0 {
		return 0
	}
	var sum time.Duration
	for _, rec := range e.log {
		sum += rec.Latency
	}
	return sum / time.Duration(len(e.log))
}

// AllocatedPercent returns occupied bytes as a percentage of capacity.
func (e *Engine) AllocatedPercent() float64 {
	return float64(e.AllocatedBytes()) / float64(e.capacity) * 100
}

// AllocatedBytes returns the total size of occupied regions.
func (e *Engine) AllocatedBytes() int {
	n := 0
	for _, r := range e.regions {
		if r.Occupied {
			n += r.Size
		}
	}
	return n
}

// FreeBytes returns the total size of free regions.
func (e *Engine) FreeBytes() int {
	return e.capacity - e.AllocatedBytes()
}

// FreeRegionCount returns the number of free regions.
func (e *Engine) FreeRegionCount() int {
	n := 0
	for _, r := range e.regions {
		if !r.Occupied {
			n++
		}
	}
	return n
}

// LargestFreeRegion returns the size of the largest free region, or 0 when
// the partition is fully occupied.
func (e *Engine) LargestFreeRegion() int {
	largest := 0
	for _, r := range e.regions {
		if !r.Occupied && r.Size > largest {
			largest = r.Size
		}
	}
	return largest
}

// TotalRequests returns the number of Allocate calls made.
func (e *Engine) TotalRequests() int { return e.totalRequests }

// FailedRequests returns the number of Allocate calls whose initial
// placement failed.
func (e *Engine) FailedRequests() int { return e.failedRequests }

// Compactions returns the number of Compact calls made.
func (e *Engine) Compactions() int { return e.compactions }

// AllocationLog returns a copy of the completed-allocation log.
func (e *Engine) AllocationLog() []AllocationRecord {
	out := make([]AllocationRecord, len(e.log))
	copy(out, e.log)
	return out
}
