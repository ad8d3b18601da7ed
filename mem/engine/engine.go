package engine

import (
	"math/rand"
	"time"
)

// AllocationRecord is one completed allocation in the engine log, used for
// average-latency reporting.
type AllocationRecord struct {
	Owner   int
	Size    int
	Latency time.Duration
}

// Engine owns the partition and executes placement and eviction policies
// over it. It is the single mutable authority for the simulated address
// space; all other components consume read-only snapshots.
type Engine struct {
	capacity  int
	regions   []Region
	placement Placement
	eviction  EvictionPolicy

	cursor  int      // next-fit rotating index, normalized modulo len(regions) at scan time
	queue   []uint64 // allocation seq ids, oldest first (FIFO eviction order)
	clock   uint64   // logical clock driving LRU ordering
	nextSeq uint64

	totalRequests  int
	failedRequests int
	compactions    int
	log            []AllocationRecord

	rng *rand.Rand
}

// New creates an engine whose partition is a single free region spanning the
// whole capacity.
func New(capacity int) (*Engine, error) {
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}
	return &Engine{
		capacity: capacity,
		regions:  []Region{{Start: 0, Size: capacity}},
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// NewFromState creates an engine whose partition is imported wholesale from
// states, as produced by Export.
func NewFromState(states []RegionState) (*Engine, error) {
	e := &Engine{
		capacity: 1,
		regions:  []Region{{Start: 0, Size: 1}},
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if err := e.Import(states); err != nil {
		return nil, err
	}
	return e, nil
}

// Capacity returns the total size of the simulated address space.
func (e *Engine) Capacity() int { return e.capacity }

// Placement returns the active placement policy.
func (e *Engine) Placement() Placement { return e.placement }

// Eviction returns the active eviction policy.
func (e *Engine) Eviction() EvictionPolicy { return e.eviction }

// SetPlacement switches the active placement policy.
func (e *Engine) SetPlacement(p Placement) { e.placement = p }

// SetEviction switches the active eviction policy.
func (e *Engine) SetEviction(p EvictionPolicy) { e.eviction = p }

// Seed reseeds the random source used by Simulate, for reproducible runs.
func (e *Engine) Seed(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}

// ListRegions returns a snapshot copy of the partition in address order.
func (e *Engine) ListRegions() []Region {
	out := make([]Region, len(e.regions))
	copy(out, e.regions)
	return out
}

// Allocate places a request of size bytes for owner and returns the start
// offset of the new occupied region. On placement failure it falls back to
// the active eviction policy; with eviction disabled or exhausted it returns
// ErrNoFit. A non-positive size returns ErrBadSize.
func (e *Engine) Allocate(size, owner int) (int, error) {
	e.totalRequests++
	if size <= 0 {
		return 0, ErrBadSize
	}
	began := time.Now()
	if idx, ok := e.place(size); ok {
		start := e.commit(idx, size, owner)
		e.record(owner, size, began)
		return start, nil
	}
	e.failedRequests++
	if e.eviction == EvictNone {
		return 0, ErrNoFit
	}
	return e.evictAndRetry(size, owner, began)
}

// Deallocate frees the occupied region whose start matches exactly and
// coalesces it with free neighbors in both directions. A start that does not
// name an occupied region is a caller error, reported as ErrBadAddress.
func (e *Engine) Deallocate(start int) error {
	for i := range e.regions {
		if e.regions[i].Start == start && e.regions[i].Occupied {
			e.release(i)
			return nil
		}
	}
	return ErrBadAddress
}

// Compact slides all occupied regions down to address 0, preserving their
// relative order and sizes, and merges all free capacity into one trailing
// free region (absent when the partition is full).
func (e *Engine) Compact() {
	packed := make([]Region, 0, len(e.regions))
	free := 0
	for _, r := range e.regions {
		if r.Occupied {
			packed = append(packed, r)
		} else {
			free += r.Size
		}
	}
	// regions are kept in address order, so the occupied order is preserved
	pos := 0
	for i := range packed {
		packed[i].Start = pos
		pos += packed[i].Size
	}
	if free > 0 {
		packed = append(packed, Region{Start: pos, Size: free})
	}
	e.regions = packed
	e.cursor = 0
	e.compactions++
}

// Export produces the ordered (start, size, occupied, owner) projection of
// the current partition.
func (e *Engine) Export() []RegionState {
	out := make([]RegionState, len(e.regions))
	for i, r := range e.regions {
		out[i] = RegionState{Start: r.Start, Size: r.Size, Occupied: r.Occupied}
		if r.Occupied {
			out[i].Owner = r.Owner
		}
	}
	return out
}

// Import replaces the partition wholesale with the supplied list. The list
// must be a gapless decomposition starting at 0 with positive sizes;
// anything else is rejected with ErrCorruptState. Capacity becomes the sum
// of the imported sizes. Occupied regions are stamped in address order, so
// FIFO and LRU eviction treat lower addresses as older; adjacent free
// regions are merged to restore the coalescing invariant.
func (e *Engine) Import(states []RegionState) error {
	if len(states) == 0 {
		return ErrCorruptState
	}
	next := 0
	for _, s := range states {
		if s.Size <= 0 || s.Start != next {
			return ErrCorruptState
		}
		next += s.Size
	}

	regions := make([]Region, 0, len(states))
	queue := make([]uint64, 0, len(states))
	var clock, seq uint64
	for _, s := range states {
		if !s.Occupied {
			if n := len(regions); n > 0 && !regions[n-1].Occupied {
				regions[n-1].Size += s.Size
				continue
			}
			regions = append(regions, Region{Start: s.Start, Size: s.Size})
			continue
		}
		clock++
		seq++
		regions = append(regions, Region{
			Start:       s.Start,
			Size:        s.Size,
			Occupied:    true,
			Owner:       s.Owner,
			lastTouched: clock,
			touchCount:  1,
			seq:         seq,
		})
		queue = append(queue, seq)
	}

	e.capacity = next
	e.regions = regions
	e.queue = queue
	e.clock = clock
	e.nextSeq = seq
	e.cursor = 0
	return nil
}

// Simulate issues n allocation requests with uniformly random sizes in
// [minSize, maxSize] and random owner identifiers. It is purely a driver
// over Allocate; individual no-fit outcomes are counted, not returned.
func (e *Engine) Simulate(n, minSize, maxSize int) error {
	if n < 0 || minSize <= 0 || maxSize < minSize {
		return ErrBadRange
	}
	for i := 0; i < n; i++ {
		size := minSize + e.rng.Intn(maxSize-minSize+1)
		owner := 1 + e.rng.Intn(1000)
		_, _ = e.Allocate(size, owner)
	}
	return nil
}

// record appends a completed allocation to the latency log.
func (e *Engine) record(owner, size int, began time.Time) {
	e.log = append(e.log, AllocationRecord{Owner: owner, Size: size, Latency: time.Since(began)})
}

// release frees the region at idx and merges it with free neighbors. Merging
// is unconditional and may run in both directions in one call.
func (e *Engine) release(idx int) {
	r := &e.regions[idx]
	r.Occupied = false
	r.Owner = 0
	r.lastTouched = 0
	r.touchCount = 0
	r.seq = 0

	if idx+1 < len(e.regions) && !e.regions[idx+1].Occupied {
		e.regions[idx].Size += e.regions[idx+1].Size
		e.regions = append(e.regions[:idx+1], e.regions[idx+2:]...)
	}
	if idx > 0 && !e.regions[idx-1].Occupied {
		e.regions[idx-1].Size += e.regions[idx].Size
		e.regions = append(e.regions[:idx], e.regions[idx+1:]...)
	}
}
