package guest

import (
	"testing"

	"github.com/eth2030/ewasm-evm/internal/hei/mock"
	"github.com/eth2030/ewasm-evm/internal/vm"
)

func TestRunBytecodeSuccess(t *testing.T) {
	host := mock.New("guest-success")
	code := []byte{byte(vm.STOP)}
	if got := RunBytecode(code, host, vm.Config{}); got != 1 {
		t.Fatalf("RunBytecode = %d, want 1", got)
	}
}

func TestRunBytecodeFault(t *testing.T) {
	host := mock.New("guest-fault")
	code := []byte{byte(vm.ADD)} // underflow: nothing pushed
	if got := RunBytecode(code, host, vm.Config{}); got != 0 {
		t.Fatalf("RunBytecode = %d, want 0", got)
	}
}

func TestHumanizeBytecode(t *testing.T) {
	code := []byte{byte(vm.PUSH1), 0x01, byte(vm.STOP)}
	got, err := HumanizeBytecode(code)
	if err != nil {
		t.Fatalf("humanize: %v", err)
	}
	want := "PUSH1 0x01 STOP"
	if got != want {
		t.Fatalf("humanize = %q, want %q", got, want)
	}
}
