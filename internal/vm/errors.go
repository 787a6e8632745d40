package vm

import "errors"

// Sentinel errors the interpreter can return, matching the error taxonomy
// the host environment expects to unwind on: every one of these propagates
// straight out of Execute with no local recovery, the same way the
// teacher's core/vm package groups its Err* sentinels per file.
var (
	ErrOutOfGas       = errors.New("out of gas")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrStackOverflow  = errors.New("stack overflow")
	ErrInvalidJump    = errors.New("invalid jump destination")
	ErrInvalidOpCode  = errors.New("invalid opcode")
	ErrRevert         = errors.New("execution reverted")
	ErrOutOfRange     = errors.New("memory access out of range")
	ErrStop           = errors.New("stop")
	ErrInternal       = errors.New("internal vm error")
)
