//go:build !unix && !windows

package snapshot

import "os"

func flush(f *os.File) error {
	return f.Sync()
}
