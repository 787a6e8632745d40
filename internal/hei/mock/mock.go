// Package mock implements an in-process HEI for tests and the CLI's local
// driver, the same role the original engine's mock_eei.rs EeiMock plays:
// record what Finish/Revert were called with instead of crossing any real
// host boundary.
package mock

import (
	"golang.org/x/crypto/sha3"

	"github.com/eth2030/ewasm-evm/internal/u256"
)

// HEI is an in-memory host environment fixture: a fixed contract address,
// a flat key/value storage map, and recorded finish/revert calls so tests
// can assert on what the interpreter returned.
type HEI struct {
	Address u256.Word
	storage map[u256.Word]u256.Word

	FinishedWith []byte
	RevertedWith []byte
	Finished     bool
	Reverted     bool
}

// New returns a mock HEI whose address is derived deterministically from
// seed via KECCAK-256, the same way test fixtures elsewhere in the pack
// derive stable addresses from a label instead of hardcoding raw bytes.
func New(seed string) *HEI {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(seed))
	sum := h.Sum(nil)
	var addr [32]byte
	copy(addr[32-20:], sum[len(sum)-20:])
	return &HEI{
		Address: u256.FromBytes(addr),
		storage: make(map[u256.Word]u256.Word),
	}
}

// GetAddress implements hei.HEI.
func (m *HEI) GetAddress() u256.Word { return m.Address }

// Finish implements hei.HEI.
func (m *HEI) Finish(data []byte) {
	m.Finished = true
	m.FinishedWith = append([]byte(nil), data...)
}

// Revert implements hei.HEI.
func (m *HEI) Revert(data []byte) {
	m.Reverted = true
	m.RevertedWith = append([]byte(nil), data...)
}

// Sload implements hei.HEI, returning zero for any key never written.
func (m *HEI) Sload(key u256.Word) u256.Word {
	return m.storage[key]
}

// Sstore implements hei.HEI.
func (m *HEI) Sstore(key, val u256.Word) {
	m.storage[key] = val
}

// SetStorage seeds a storage slot directly, used by program manifests that
// pre-populate state before execution.
func (m *HEI) SetStorage(key, val u256.Word) {
	m.storage[key] = val
}
