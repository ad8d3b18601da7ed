package engine

// Region is a contiguous span of the simulated address space, either free or
// occupied by exactly one owner. Regions are value types; ListRegions hands
// out copies, so holding a Region never aliases engine state.
type Region struct {
	Start    int
	Size     int
	Occupied bool
	Owner    int

	// lastTouched is a logical clock stamp set when the region is allocated
	// (LRU eviction order). touchCount counts allocations into this region
	// (LFU eviction order). seq identifies the allocation in the FIFO
	// eviction queue independently of the region's address, so compaction
	// cannot corrupt eviction order.
	lastTouched uint64
	touchCount  int
	seq         uint64
}

// End returns the first address past the region.
func (r Region) End() int { return r.Start + r.Size }

// RegionState is the serializable projection of a Region: the
// (start, size, occupied, owner) tuple of the durable snapshot schema.
type RegionState struct {
	Start    int  `json:"start"`
	Size     int  `json:"size"`
	Occupied bool `json:"occupied"`
	Owner    int  `json:"owner,omitempty"`
}
