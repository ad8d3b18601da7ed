// Package engine simulates dynamic memory allocation over a fixed-size
// address space.
//
// # Overview
//
// The engine owns a Partition: an ordered, gapless decomposition of the
// address space [0, capacity) into Regions, each either free or occupied by
// one owner. Allocation requests are placed by one of four classic policies
// (first, best, worst, and next fit), carving the chosen free region with at
// most one split per request. Freed regions are coalesced with free
// neighbors immediately, so no two adjacent regions are ever both free when
// control returns to the caller.
//
// # Eviction
//
// When placement fails and an eviction policy is active, the engine frees
// occupied regions one victim at a time (FIFO by allocation order, LRU by
// last-touch clock, or LFU by touch count) and retries placement after each
// victim. Retries are capped at the number of occupied regions present when
// eviction began, which bounds the cascade even when every freed region is
// still too small.
//
// # Observers
//
// Visualization and metrics layers are pure readers: they consume
// ListRegions snapshots and the derived metric accessors, and never mutate
// the partition. Compact, Export, and Import round out the operation
// surface for the application shell.
//
// # Thread Safety
//
// Engine instances are not thread-safe. The simulation models a single
// logical actor; callers in concurrent settings must serialize every
// mutating call, since splitting, coalescing, and compaction touch multiple
// regions atomically.
package engine
