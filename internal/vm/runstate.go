package vm

import (
	"github.com/eth2030/ewasm-evm/internal/hei"
)

// RunState is the interpreter's owned execution state: everything a single
// call into runBytecode needs, bundled into one struct rather than inlined
// into Interpreter, mirroring the original engine's run_state.rs.
type RunState struct {
	Stack    *Stack
	Memory   *Memory
	Bytecode []byte
	PC       int
	HEI      hei.HEI

	// Scratch is a 64-byte two-slot buffer (key/address, value/result) kept
	// as part of RunState's shape. Nothing in this module reads or writes
	// it: the mock HEI needs no staging, and wasmhost.Host stages its
	// host-call words through its own package-level buffer.
	Scratch [64]byte
}

// NewRunState builds a RunState ready to execute bytecode against host.
func NewRunState(bytecode []byte, host hei.HEI) *RunState {
	return &RunState{
		Stack:    NewStack(),
		Memory:   NewMemory(),
		Bytecode: bytecode,
		HEI:      host,
	}
}
