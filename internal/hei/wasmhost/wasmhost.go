//go:build wasm

// Package wasmhost is the real WASM-guest boundary shim: it trampolines
// the narrow hei.HEI contract through the ewasm host's linear-memory ABI
// using go:wasmimport, the idiomatic Go replacement for the original
// engine's wasm_bindgen extern "C" declarations (eei.rs). The host only
// understands raw pointers into the guest's own memory, so every call
// here stages its argument/result words into a small scratch buffer
// (wasmMem) before handing the host a pointer into it.
package wasmhost

import (
	"unsafe"

	"github.com/eth2030/ewasm-evm/internal/u256"
)

//go:wasmimport ethereum getAddress
func importGetAddress(resultOffset uint32)

//go:wasmimport ethereum storageLoad
func importStorageLoad(keyOffset, resultOffset uint32)

//go:wasmimport ethereum storageStore
func importStorageStore(keyOffset, valueOffset uint32)

//go:wasmimport ethereum finish
func importFinish(dataOffset, length uint32)

//go:wasmimport ethereum revert
func importRevert(dataOffset, length uint32)

// scratch holds two consecutive 32-byte slots: the key/address slot and the
// value/result slot, exactly the 64-byte wasm_mem trampoline buffer spec.md
// describes for SLOAD/SSTORE arguments.
var scratch [64]byte

func scratchPtr(slot int) uint32 {
	return uint32(uintptr(unsafe.Pointer(&scratch[slot*32])))
}

// Host is the real ewasm-backed implementation of hei.HEI. The zero value
// is ready to use; there is exactly one per guest instance.
type Host struct{}

// GetAddress implements hei.HEI.
func (Host) GetAddress() u256.Word {
	importGetAddress(scratchPtr(0))
	var b [32]byte
	copy(b[:], scratch[0:32])
	return u256.FromBytes(b)
}

// Sload implements hei.HEI.
func (Host) Sload(key u256.Word) u256.Word {
	kb := key.Bytes()
	copy(scratch[0:32], kb[:])
	importStorageLoad(scratchPtr(0), scratchPtr(1))
	var b [32]byte
	copy(b[:], scratch[32:64])
	return u256.FromBytes(b)
}

// Sstore implements hei.HEI.
func (Host) Sstore(key, val u256.Word) {
	kb := key.Bytes()
	vb := val.Bytes()
	copy(scratch[0:32], kb[:])
	copy(scratch[32:64], vb[:])
	importStorageStore(scratchPtr(0), scratchPtr(1))
}

// Finish implements hei.HEI.
func (Host) Finish(data []byte) {
	if len(data) == 0 {
		importFinish(0, 0)
		return
	}
	importFinish(uint32(uintptr(unsafe.Pointer(&data[0]))), uint32(len(data)))
}

// Revert implements hei.HEI.
func (Host) Revert(data []byte) {
	if len(data) == 0 {
		importRevert(0, 0)
		return
	}
	importRevert(uint32(uintptr(unsafe.Pointer(&data[0]))), uint32(len(data)))
}
