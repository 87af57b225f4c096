// Package mmfile maps input files read-only.
package mmfile

// File is a read-only view of a file's contents.
type File struct {
	data  []byte
	unmap func() error
}

// Bytes returns the file contents. The slice is invalid after Close.
func (f *File) Bytes() []byte {
	return f.data
}

// Len returns the file size in bytes.
func (f *File) Len() int {
	return len(f.data)
}

// Close releases the mapping. Closing twice is a no-op.
func (f *File) Close() error {
	f.data = nil
	if f.unmap == nil {
		return nil
	}
	err := f.unmap()
	f.unmap = nil
	return err
}
