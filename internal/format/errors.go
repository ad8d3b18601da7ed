package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a record.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrMisaligned indicates a snapshot whose length is not a record multiple.
	ErrMisaligned = errors.New("format: buffer is not a multiple of the record size")
	// ErrEmpty indicates a snapshot with no records at all.
	ErrEmpty = errors.New("format: empty snapshot")
)
