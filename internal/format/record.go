// Package format houses the low-level codec for memsim snapshot files. The
// goal is to keep the encoding focused, allocation-free where possible, and
// independent from the public API so higher-level packages can orchestrate
// the data in a more ergonomic form.
package format

import "encoding/binary"

const (
	// RecordSize is the size in bytes of a single serialized region record.
	RecordSize = 16

	// Record field offsets within the 16-byte record.
	RecordStartOffset = 0x00 // 4, u32 little-endian
	RecordSizeOffset  = 0x04 // 4, u32 little-endian
	RecordOwnerOffset = 0x08 // 4, u32 little-endian
	RecordFlagsOffset = 0x0C // 1
	// Bytes 0x0D-0x0F are reserved and must be zero.

	// FlagOccupied marks the region as occupied by an owner. The owner field
	// is meaningful only when this flag is set.
	FlagOccupied = 0x01
)

// Record is one serialized region: the (start, size, occupied, owner) tuple
// that makes up the entire durable schema. There is no file header, version,
// or checksum; a snapshot file is just a sequence of these records.
type Record struct {
	Start    uint32
	Size     uint32
	Owner    uint32
	Occupied bool
}

// PutRecord encodes rec into b, which must hold at least RecordSize bytes.
func PutRecord(b []byte, rec Record) {
	binary.LittleEndian.PutUint32(b[RecordStartOffset:], rec.Start)
	binary.LittleEndian.PutUint32(b[RecordSizeOffset:], rec.Size)
	binary.LittleEndian.PutUint32(b[RecordOwnerOffset:], rec.Owner)
	var flags byte
	if rec.Occupied {
		flags |= FlagOccupied
	}
	b[RecordFlagsOffset] = flags
	b[RecordFlagsOffset+1] = 0
	b[RecordFlagsOffset+2] = 0
	b[RecordFlagsOffset+3] = 0
}

// ReadRecord decodes a single record from the front of b.
func ReadRecord(b []byte) (Record, error) {
	if len(b) < RecordSize {
		return Record{}, ErrTruncated
	}
	return Record{
		Start:    binary.LittleEndian.Uint32(b[RecordStartOffset:]),
		Size:     binary.LittleEndian.Uint32(b[RecordSizeOffset:]),
		Owner:    binary.LittleEndian.Uint32(b[RecordOwnerOffset:]),
		Occupied: b[RecordFlagsOffset]&FlagOccupied != 0,
	}, nil
}

// Records decodes an entire snapshot buffer. The buffer length must be a
// non-zero multiple of RecordSize.
func Records(data []byte) ([]Record, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	if len(data)%RecordSize != 0 {
		return nil, ErrMisaligned
	}
	out := make([]Record, 0, len(data)/RecordSize)
	for off := 0; off < len(data); off += RecordSize {
		rec, err := ReadRecord(data[off:])
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
