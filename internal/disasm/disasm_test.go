package disasm

import (
	"testing"

	"github.com/eth2030/ewasm-evm/internal/vm"
)

func TestParseCanonicalProgram(t *testing.T) {
	code := []byte{
		byte(vm.PUSH1), 0x19,
		byte(vm.PUSH1), 0x1a,
		byte(vm.MUL),
		byte(vm.PUSH1), 0x00,
		byte(vm.MSTORE),
		byte(vm.PUSH1), 0x20,
		byte(vm.PUSH1), 0x00,
		byte(vm.RETURN),
	}
	got, err := Parse(code)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := "PUSH1 0x19 PUSH1 0x1a MUL PUSH1 0x00 MSTORE PUSH1 0x20 PUSH1 0x00 RETURN"
	if got != want {
		t.Fatalf("parse = %q, want %q", got, want)
	}
}

func TestParseTruncatedPush(t *testing.T) {
	code := []byte{byte(vm.PUSH32), 0x01, 0x02}
	got, err := Parse(code)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := "PUSH32 0x0102"
	if got != want {
		t.Fatalf("parse = %q, want %q", got, want)
	}
}
