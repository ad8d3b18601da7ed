//go:build !unix

package mmfile

import "os"

// Map reads the file at path into a byte slice on platforms without a
// usable read-only mmap. The cleanup function is a no-op.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
