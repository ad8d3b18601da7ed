package engine

import "fmt"

// Placement selects which free region satisfies an allocation request.
type Placement int

const (
	// FirstFit scans regions in address order and takes the first free
	// region large enough.
	FirstFit Placement = iota
	// BestFit takes the smallest free region large enough; ties break to the
	// lowest start address.
	BestFit
	// WorstFit takes the largest free region large enough; ties break to the
	// lowest start address.
	WorstFit
	// NextFit scans like FirstFit but starts from a rotating cursor left at
	// the previously used region, wrapping around the partition.
	NextFit
)

func (p Placement) String() string {
	switch p {
	case FirstFit:
		return "first-fit"
	case BestFit:
		return "best-fit"
	case WorstFit:
		return "worst-fit"
	case NextFit:
		return "next-fit"
	}
	return fmt.Sprintf("placement(%d)", int(p))
}

// ParsePlacement maps a policy name to its Placement. Both the short form
// ("best") and the hyphenated form ("best-fit") are accepted.
func ParsePlacement(s string) (Placement, error) {
	switch s {
	case "first", "first-fit":
		return FirstFit, nil
	case "best", "best-fit":
		return BestFit, nil
	case "worst", "worst-fit":
		return WorstFit, nil
	case "next", "next-fit":
		return NextFit, nil
	}
	return FirstFit, fmt.Errorf("engine: unknown placement policy %q", s)
}

// EvictionPolicy selects an occupied region to free when placement fails.
type EvictionPolicy int

const (
	// EvictNone disables eviction; failed placements simply fail.
	EvictNone EvictionPolicy = iota
	// EvictFIFO frees the oldest surviving allocation first.
	EvictFIFO
	// EvictLRU frees the occupied region with the oldest last-touch clock.
	EvictLRU
	// EvictLFU frees the occupied region with the lowest touch count; ties
	// break to the lowest start address.
	EvictLFU
)

func (p EvictionPolicy) String() string {
	switch p {
	case EvictNone:
		return "none"
	case EvictFIFO:
		return "fifo"
	case EvictLRU:
		return "lru"
	case EvictLFU:
		return "lfu"
	}
	return fmt.Sprintf("eviction(%d)", int(p))
}

// ParseEviction maps a policy name to its EvictionPolicy.
func ParseEviction(s string) (EvictionPolicy, error) {
	switch s {
	case "none":
		return EvictNone, nil
	case "fifo":
		return EvictFIFO, nil
	case "lru":
		return EvictLRU, nil
	case "lfu":
		return EvictLFU, nil
	}
	return EvictNone, fmt.Errorf("engine: unknown eviction policy %q", s)
}
