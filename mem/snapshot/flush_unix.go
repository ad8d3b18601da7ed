//go:build unix

package snapshot

import (
	"os"

	"golang.org/x/sys/unix"
)

// flush forces written records to stable storage before the rename makes
// them visible.
func flush(f *os.File) error {
	return unix.Fsync(int(f.Fd()))
}
