//go:build !linux && !darwin

package mmfile

import "os"

// Open reads the entire file when mmap is not wired up for the platform.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &File{data: data}, nil
}
