// Package hei defines the narrow Host Environment Interface contract the
// interpreter calls out through. It mirrors the original engine's
// eei_common.rs trait rather than the full ewasm EEI surface (eei.rs):
// get_address, finish, revert, sload and sstore are the only host
// operations the interpreter's opcode set needs.
package hei

import "github.com/eth2030/ewasm-evm/internal/u256"

// HEI is the host-facing contract the interpreter consults for the few
// opcodes that cross the guest/host boundary (ADDRESS, SLOAD, SSTORE) and
// for terminating a call (STOP/RETURN write through Finish, REVERT through
// Revert).
type HEI interface {
	// GetAddress returns the 20-byte address of the executing contract,
	// right-aligned into a 32-byte word the way ADDRESS pushes it.
	GetAddress() u256.Word

	// Finish signals successful termination with the given return data.
	Finish(data []byte)

	// Revert signals abnormal termination with the given return data.
	Revert(data []byte)

	// Sload reads the storage slot at key.
	Sload(key u256.Word) u256.Word

	// Sstore writes val to the storage slot at key.
	Sstore(key, val u256.Word)
}
