package alloc

// Allocator hands out slot blocks and string buffers for a list.
//
// Implementations:
//   - Heap: Go heap with accounting
//   - Budget: byte-limited wrapper around another Allocator
//   - Arena: mmap-backed bump allocation for string buffers
type Allocator interface {
	// AllocBlock returns a zeroed slot array of exactly capacity slots.
	// The block is accounted as layout.BlockBytes(capacity) bytes.
	AllocBlock(capacity int) ([][]byte, error)

	// FreeBlock releases a slot array returned by AllocBlock. It does not
	// free the strings the slots refer to.
	FreeBlock(slots [][]byte)

	// AllocString returns a zeroed buffer of n bytes, where n already
	// includes the terminator. len and cap of the result are both n.
	AllocString(n int) ([]byte, error)

	// FreeString releases a buffer returned by AllocString. The buffer may
	// have been resliced shorter; accounting uses its capacity.
	FreeString(b []byte)

	// Stats reports current accounting.
	Stats() Stats
}

// Stats is a snapshot of an allocator's accounting.
type Stats struct {
	Blocks  int // live slot blocks
	Strings int // live string buffers
	InUse   int // bytes held by live blocks and strings
	Peak    int // highest InUse observed
	Mapped  int // bytes of backing memory reserved (Arena only)
}

// meter is the accounting shared by the allocator implementations.
type meter struct {
	st Stats
}

func (m *meter) addBlock(n int) {
	m.st.Blocks++
	m.add(n)
}

func (m *meter) dropBlock(n int) {
	m.st.Blocks--
	m.st.InUse -= n
}

func (m *meter) addString(n int) {
	m.st.Strings++
	m.add(n)
}

func (m *meter) dropString(n int) {
	m.st.Strings--
	m.st.InUse -= n
}

func (m *meter) add(n int) {
	m.st.InUse += n
	if m.st.InUse > m.st.Peak {
		m.st.Peak = m.st.InUse
	}
}
