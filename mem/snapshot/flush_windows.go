//go:build windows

package snapshot

import (
	"os"

	"golang.org/x/sys/windows"
)

// flush forces written records to stable storage before the rename makes
// them visible.
func flush(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
