package vm

import "github.com/eth2030/ewasm-evm/internal/u256"

// StepTracer is invoked once per executed instruction when Config.Tracer is
// set, mirroring the teacher's EVMLogger hook shape without pulling in its
// gas/refund fields (gas accounting is a host concern here, not the
// interpreter's).
type StepTracer func(pc int, op OpCode, stack []u256.Word, memLen int)

// Config controls interpreter behaviour, following the shape of the
// teacher's core/vm.Config (debug flag plus an attached tracer) trimmed to
// what this interpreter actually needs.
type Config struct {
	// Debug enables step-by-step structured log records.
	Debug bool
	// Tracer, if non-nil, is called after every executed instruction,
	// including one that halts or faults.
	Tracer StepTracer
	// MaxSteps bounds execution defensively against runaway bytecode in
	// the mock/test harness; zero means unbounded. The real ewasm host is
	// expected to enforce this via gas instead.
	MaxSteps int
}
