// Package guest implements the two entry points a host loads this module
// for: runBytecode, which executes a program against a host environment,
// and humanizeBytecode, the diagnostic disassembler entry point. This file
// holds the portable, pointer-free versions used by tests and the CLI; the
// wasm-tagged export_wasm.go adapts them to the host's linear-memory ABI.
package guest

import (
	"github.com/eth2030/ewasm-evm/internal/disasm"
	"github.com/eth2030/ewasm-evm/internal/hei"
	"github.com/eth2030/ewasm-evm/internal/vm"
)

// RunBytecode executes bytecode against host and reports success the way
// the wasm export does: 1 on STOP/RETURN, 0 on any fault including REVERT.
// The host has already been told about RETURN/REVERT's data via Finish or
// Revert before this returns.
func RunBytecode(bytecode []byte, host hei.HEI, cfg vm.Config) int32 {
	rs := vm.NewRunState(bytecode, host)
	if err := vm.Execute(rs, cfg); err != nil {
		return 0
	}
	return 1
}

// HumanizeBytecode disassembles bytecode into its mnemonic string, the
// portable form of the humanizeBytecode export.
func HumanizeBytecode(bytecode []byte) (string, error) {
	return disasm.Parse(bytecode)
}
