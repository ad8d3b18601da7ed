package engine

// place returns the index of the free region chosen by the active placement
// policy, or false when no free region can hold size bytes. It never
// mutates the partition; carving happens in commit.
func (e *Engine) place(size int) (int, bool) {
	switch e.placement {
	case BestFit:
		return e.bestFit(size)
	case WorstFit:
		return e.worstFit(size)
	case NextFit:
		return e.nextFit(size)
	default:
		return e.firstFit(size)
	}
}

func (e *Engine) firstFit(size int) (int, bool) {
	for i, r := range e.regions {
		if !r.Occupied && r.Size >= size {
			return i, true
		}
	}
	return 0, false
}

// bestFit keeps the strict < comparison so ties resolve to the lowest start.
func (e *Engine) bestFit(size int) (int, bool) {
	best := -1
	for i, r := range e.regions {
		if r.Occupied || r.Size < size {
			continue
		}
		if best < 0 || r.Size < e.regions[best].Size {
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// worstFit keeps the strict > comparison so ties resolve to the lowest start.
func (e *Engine) worstFit(size int) (int, bool) {
	worst := -1
	for i, r := range e.regions {
		if r.Occupied || r.Size < size {
			continue
		}
		if worst < 0 || r.Size > e.regions[worst].Size {
			worst = i
		}
	}
	if worst < 0 {
		return 0, false
	}
	return worst, true
}

// nextFit scans from the rotating cursor, wrapping once around the
// partition, and leaves the cursor on the region it used. The cursor is
// normalized modulo the region count because splits, merges, and compaction
// shift indexes between calls.
func (e *Engine) nextFit(size int) (int, bool) {
	n := len(e.regions)
	if n == 0 {
		return 0, false
	}
	from := e.cursor % n
	for i := 0; i < n; i++ {
		idx := (from + i) % n
		r := e.regions[idx]
		if !r.Occupied && r.Size >= size {
			e.cursor = idx
			return idx, true
		}
	}
	return 0, false
}

// commit carves size bytes out of the free region at idx and marks the head
// occupied for owner. If the region is larger than the request it is split
// into an occupied head and a free tail; an exact fit just flips the region.
// At most one region is split per successful allocation.
func (e *Engine) commit(idx, size, owner int) int {
	if e.regions[idx].Size > size {
		tail := Region{Start: e.regions[idx].Start + size, Size: e.regions[idx].Size - size}
		e.regions = append(e.regions, Region{})
		copy(e.regions[idx+2:], e.regions[idx+1:])
		e.regions[idx+1] = tail
		e.regions[idx].Size = size
	}

	e.clock++
	e.nextSeq++
	r := &e.regions[idx]
	r.Occupied = true
	r.Owner = owner
	r.lastTouched = e.clock
	r.touchCount = 1
	r.seq = e.nextSeq
	e.queue = append(e.queue, e.nextSeq)
	return r.Start
}
