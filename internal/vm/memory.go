package vm

import "github.com/eth2030/ewasm-evm/internal/u256"

// Memory is the interpreter's byte-addressable linear memory. Unlike the
// teacher's word-aligned Resize, this grows by the exact deficit a Store
// needs (spec: "grows by exact deficit on store, not page-rounded") and
// never auto-resizes on Load — a read starting at or past the current size
// is reported to the caller as ErrOutOfRange rather than silently growing
// memory; a read starting within bounds but running past it is zero-padded.
type Memory struct {
	store []byte
}

// NewMemory returns an empty Memory.
func NewMemory() *Memory { return &Memory{} }

// Len returns the current size of memory in bytes.
func (m *Memory) Len() int { return len(m.store) }

// Data returns the full backing slice.
func (m *Memory) Data() []byte { return m.store }

// growTo extends the backing store by exactly enough bytes to reach size,
// doing nothing if memory is already that large.
func (m *Memory) growTo(size int) {
	if size <= len(m.store) {
		return
	}
	m.store = append(m.store, make([]byte, size-len(m.store))...)
}

// Store writes value at offset, growing memory by the exact deficit if the
// write would otherwise run past the end.
func (m *Memory) Store(offset uint64, value []byte) error {
	if len(value) == 0 {
		return nil
	}
	end := offset + uint64(len(value))
	if end < offset || end > uint64(^uint(0)>>1) {
		return ErrOutOfRange
	}
	m.growTo(int(end))
	copy(m.store[offset:end], value)
	return nil
}

// Store32 writes a 256-bit word at offset, big-endian, growing memory by
// the exact deficit needed.
func (m *Memory) Store32(offset uint64, val u256.Word) error {
	b := val.Bytes()
	return m.Store(offset, b[:])
}

// Store8 writes the single low-order byte of val at offset (MSTORE8).
func (m *Memory) Store8(offset uint64, val u256.Word) error {
	b := val.Bytes()
	return m.Store(offset, b[31:32])
}

// Load reads size bytes starting at offset, zero-padding whatever part of
// the window runs past the current memory size. Only offset itself landing
// at or past the current size is an error (ErrOutOfRange) -- the "nothing"
// sentinel spec.md calls for out-of-bounds reads is about the start of the
// window, not the window overrunning into unwritten-but-in-range memory, the
// same boundary the original engine's memory.rs draws (size_addr < *size).
// Callers that want EVM-style auto-expansion must call Store/growTo
// explicitly first.
func (m *Memory) Load(offset uint64, size uint64) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	if offset >= uint64(len(m.store)) {
		return nil, ErrOutOfRange
	}
	out := make([]byte, size)
	end := offset + size
	if end < offset {
		end = uint64(len(m.store))
	}
	if end > uint64(len(m.store)) {
		end = uint64(len(m.store))
	}
	copy(out, m.store[offset:end])
	return out, nil
}

// Load32 reads a 256-bit word at offset, big-endian, zero-padding any part
// of the word that runs past the current size. Only offset itself at or
// past the current size fails with ErrOutOfRange, the "nothing" sentinel
// spec.md calls for on out-of-bounds MLOAD.
func (m *Memory) Load32(offset uint64) (u256.Word, error) {
	b, err := m.Load(offset, 32)
	if err != nil {
		return u256.Zero(), err
	}
	var buf [32]byte
	copy(buf[:], b)
	return u256.FromBytes(buf), nil
}
