// Package snapshot persists the engine's exported partition to disk and
// loads it back. The on-disk schema is an ordered sequence of fixed-size
// region records with no header, version, or checksum; structural
// validation happens in engine.Import, not here.
package snapshot

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/joshuapare/memsim/internal/format"
	"github.com/joshuapare/memsim/internal/mmfile"
	"github.com/joshuapare/memsim/mem/engine"
)

// ErrRange indicates a region whose start, size, or owner does not fit the
// 32-bit record encoding.
var ErrRange = errors.New("snapshot: region value out of range for record encoding")

// Save writes states to path atomically: records are encoded into a
// temporary file in the same directory, flushed to stable storage, and
// renamed over the destination.
func Save(path string, states []engine.RegionState) error {
	buf := make([]byte, len(states)*format.RecordSize)
	for i, s := range states {
		if s.Start < 0 || s.Size < 0 || s.Owner < 0 ||
			s.Start > math.MaxUint32 || s.Size > math.MaxUint32 || s.Owner > math.MaxUint32 {
			return fmt.Errorf("%w: region %d", ErrRange, i)
		}
		format.PutRecord(buf[i*format.RecordSize:], format.Record{
			Start:    uint32(s.Start),
			Size:     uint32(s.Size),
			Owner:    uint32(s.Owner),
			Occupied: s.Occupied,
		})
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := flush(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Load reads the record sequence at path. The file is mapped read-only and
// decoded in place; the returned states do not alias the mapping.
func Load(path string) ([]engine.RegionState, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	defer cleanup() //nolint:errcheck // read-only mapping, nothing to lose

	records, err := format.Records(data)
	if err != nil {
		return nil, err
	}
	states := make([]engine.RegionState, len(records))
	for i, rec := range records {
		states[i] = engine.RegionState{
			Start:    int(rec.Start),
			Size:     int(rec.Size),
			Occupied: rec.Occupied,
		}
		if rec.Occupied {
			states[i].Owner = int(rec.Owner)
		}
	}
	return states, nil
}
