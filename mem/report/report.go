// Package report builds running-aggregate views over an engine and renders
// them for humans. Reports are pure derived data; collecting one never
// mutates the engine.
package report

import (
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/memsim/mem/engine"
)

// Report is a point-in-time aggregate over the engine's partition and
// counters.
type Report struct {
	Capacity         int           `json:"capacity"`
	AllocatedBytes   int           `json:"allocated_bytes"`
	AllocatedPercent float64       `json:"allocated_percent"`
	FreeBytes        int           `json:"free_bytes"`
	FreeRegions      int           `json:"free_regions"`
	LargestFree      int           `json:"largest_free"`
	Fragmentation    float64       `json:"fragmentation_ratio"`
	TotalRequests    int           `json:"total_requests"`
	FailedRequests   int           `json:"failed_requests"`
	SuccessRate      float64       `json:"success_rate"`
	AverageLatency   time.Duration `json:"average_latency_ns"`
	Compactions      int           `json:"compactions"`
	Placement        string        `json:"placement"`
	Eviction         string        `json:"eviction"`
}

// Collect snapshots the engine's derived metrics into a Report.
func Collect(e *engine.Engine) Report {
	return Report{
		Capacity:         e.Capacity(),
		AllocatedBytes:   e.AllocatedBytes(),
		AllocatedPercent: e.AllocatedPercent(),
		FreeBytes:        e.FreeBytes(),
		FreeRegions:      e.FreeRegionCount(),
		LargestFree:      e.LargestFreeRegion(),
		Fragmentation:    e.FragmentationRatio(),
		TotalRequests:    e.TotalRequests(),
		FailedRequests:   e.FailedRequests(),
		SuccessRate:      e.SuccessRate(),
		AverageLatency:   e.AverageLatency(),
		Compactions:      e.Compactions(),
		Placement:        e.Placement().String(),
		Eviction:         e.Eviction().String(),
	}
}

// WriteText renders the report as an aligned, human-readable block. Byte
// counts are grouped with locale separators so large capacities stay
// legible.
func (r Report) WriteText(w io.Writer) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "Memory:\n")
	p.Fprintf(w, "  Capacity:       %d bytes\n", r.Capacity)
	p.Fprintf(w, "  Allocated:      %d bytes (%.1f%%)\n", r.AllocatedBytes, r.AllocatedPercent)
	p.Fprintf(w, "  Free:           %d bytes in %d region(s)\n", r.FreeBytes, r.FreeRegions)
	p.Fprintf(w, "  Largest free:   %d bytes\n", r.LargestFree)
	p.Fprintf(w, "  Fragmentation:  %.2f\n", r.Fragmentation)
	p.Fprintf(w, "Requests:\n")
	p.Fprintf(w, "  Total:          %d\n", r.TotalRequests)
	p.Fprintf(w, "  Failed:         %d\n", r.FailedRequests)
	p.Fprintf(w, "  Success rate:   %.1f%%\n", r.SuccessRate*100)
	p.Fprintf(w, "  Avg latency:    %s\n", r.AverageLatency)
	p.Fprintf(w, "  Compactions:    %d\n", r.Compactions)
	p.Fprintf(w, "Policies:\n")
	p.Fprintf(w, "  Placement:      %s\n", r.Placement)
	p.Fprintf(w, "  Eviction:       %s\n", r.Eviction)
}
