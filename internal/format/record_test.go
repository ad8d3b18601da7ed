package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_RecordRoundTrip(t *testing.T) {
	recs := []Record{
		{Start: 0, Size: 128, Owner: 42, Occupied: true},
		{Start: 128, Size: 896, Owner: 0, Occupied: false},
		{Start: 1024, Size: 1, Owner: 0xFFFFFFFF, Occupied: true},
	}

	buf := make([]byte, len(recs)*RecordSize)
	for i, rec := range recs {
		PutRecord(buf[i*RecordSize:], rec)
	}

	got, err := Records(buf)
	require.NoError(t, err)
	require.Equal(t, recs, got)
}

func Test_Records_RejectsMisalignedBuffer(t *testing.T) {
	_, err := Records(make([]byte, RecordSize+1))
	require.ErrorIs(t, err, ErrMisaligned)
}

func Test_Records_RejectsEmptyBuffer(t *testing.T) {
	_, err := Records(nil)
	require.ErrorIs(t, err, ErrEmpty)
}

func Test_ReadRecord_Truncated(t *testing.T) {
	_, err := ReadRecord(make([]byte, RecordSize-1))
	require.ErrorIs(t, err, ErrTruncated)
}

func Test_PutRecord_ZeroesReservedBytes(t *testing.T) {
	buf := make([]byte, RecordSize)
	for i := range buf {
		buf[i] = 0xFF
	}
	PutRecord(buf, Record{Start: 8, Size: 8, Occupied: true})
	require.Equal(t, byte(FlagOccupied), buf[RecordFlagsOffset])
	require.Equal(t, []byte{0, 0, 0}, buf[RecordFlagsOffset+1:RecordSize])
}
