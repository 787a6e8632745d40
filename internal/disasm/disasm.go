// Package disasm implements the interpreter's diagnostic disassembler, kept
// as its own package the way the original engine's parser.rs is a
// standalone OpcodeParser rather than a method bolted onto the
// interpreter.
package disasm

import (
	"fmt"
	"strings"

	"github.com/eth2030/ewasm-evm/internal/vm"
)

// Parse renders bytecode as a space-separated mnemonic string, with PUSH
// immediates rendered as a trailing 0x-prefixed hex literal, exactly the
// format the original engine's OpcodeParser produces.
func Parse(code []byte) (string, error) {
	var b strings.Builder
	pc := 0
	first := true
	for pc < len(code) {
		op := vm.OpCode(code[pc])
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(op.String())
		pc++
		if op.IsPush() {
			size := op.PushSize()
			end := pc + size
			if end > len(code) {
				end = len(code)
			}
			b.WriteString(fmt.Sprintf(" 0x%x", code[pc:end]))
			pc = pc + size
		}
	}
	return b.String(), nil
}
