//go:build wasm

// This file adapts the portable guest entry points to the real ewasm
// host ABI: bytecode arrives as a (pointer, length) pair into this guest's
// own linear memory, and humanizeBytecode has no way to return a Go string
// directly, so it hands the result back through a host import instead --
// the same round-trip the original engine's wasm_bindgen boundary used.
package guest

import (
	"unsafe"

	"github.com/eth2030/ewasm-evm/internal/hei/wasmhost"
	"github.com/eth2030/ewasm-evm/internal/vm"
)

//go:wasmimport env humanizeBytecodeCaptureReturn
func importHumanizeBytecodeCaptureReturn(strOffset, strLen uint32)

func bytesFromWasm(ptr, length uint32) []byte {
	if length == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(uintptr(ptr))), length)
}

//go:wasmexport runBytecode
func runBytecodeExport(bytecodePtr, bytecodeLen uint32) int32 {
	code := bytesFromWasm(bytecodePtr, bytecodeLen)
	return RunBytecode(code, wasmhost.Host{}, vm.Config{})
}

//go:wasmexport humanizeBytecode
func humanizeBytecodeExport(bytecodePtr, bytecodeLen uint32) {
	code := bytesFromWasm(bytecodePtr, bytecodeLen)
	out, err := HumanizeBytecode(code)
	if err != nil {
		out = err.Error()
	}
	b := []byte(out)
	if len(b) == 0 {
		importHumanizeBytecodeCaptureReturn(0, 0)
		return
	}
	importHumanizeBytecodeCaptureReturn(uint32(uintptr(unsafe.Pointer(&b[0]))), uint32(len(b)))
}
