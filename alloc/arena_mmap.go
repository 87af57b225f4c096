//go:build linux || darwin

package alloc

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// mapChunk reserves size bytes (rounded up to whole pages) of private
// anonymous memory.
func mapChunk(size int) ([]byte, error) {
	page := unix.Getpagesize()
	size = (size + page - 1) &^ (page - 1)
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w", size, err)
	}
	return mem, nil
}

func unmapChunk(mem []byte) error {
	if mem == nil {
		return nil
	}
	err := unix.Munmap(mem)
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	return err
}
