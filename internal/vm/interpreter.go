package vm

import (
	"fmt"

	"github.com/eth2030/ewasm-evm/internal/u256"
	ewasmlog "github.com/eth2030/ewasm-evm/log"
)

// executionFunc implements a single opcode against the shared run state.
// Gas is deliberately absent from this signature (and from Config): gas
// accounting is the host's concern per spec, and the interpreter never
// tracks it itself.
type executionFunc func(rs *RunState) error

// jumpTable dispatches opcodes to their handlers. This mirrors the
// teacher's [256]*operation JumpTable in shape (one slot per opcode) but
// drops every gas-related field, since nothing here computes gas.
var jumpTable = buildJumpTable()

func buildJumpTable() map[OpCode]executionFunc {
	t := map[OpCode]executionFunc{
		STOP: opStop,

		ADD:    opAdd,
		MUL:    opMul,
		SUB:    opSub,
		DIV:    opDiv,
		MOD:    opMod,
		ADDMOD: opAddMod,
		MULMOD: opMulMod,

		LT:     opLt,
		GT:     opGt,
		EQ:     opEq,
		ISZERO: opIsZero,
		AND:    opAnd,
		OR:     opOr,
		XOR:    opXor,
		NOT:    opNot,
		SHL:    opShl,
		SHR:    opShr,

		ADDRESS: opAddress,

		POP:      opPop,
		MLOAD:    opMload,
		MSTORE:   opMstore,
		MSTORE8:  opMstore8,
		SLOAD:    opSload,
		SSTORE:   opSstore,
		JUMP:     opJump,
		JUMPI:    opJumpi,
		PC:       opPc,
		MSIZE:    opMsize,
		JUMPDEST: opJumpdest,

		RETURN: opReturn,
		REVERT: opRevert,
	}
	for op := PUSH1; op <= PUSH32; op++ {
		t[op] = opPush
	}
	for op := DUP1; op <= DUP16; op++ {
		t[op] = opDup
	}
	for op := SWAP1; op <= SWAP16; op++ {
		t[op] = opSwap
	}
	return t
}

// haltSignal is returned by STOP/RETURN/REVERT handlers to unwind the
// execute loop without being mistaken for a fault. It is never returned to
// callers of Execute directly — Execute translates it into ErrRevert or nil
// as appropriate.
type haltSignal struct {
	reverted bool
}

func (haltSignal) Error() string { return "halt" }

var vmLog = ewasmlog.Default().Module("vm")

// Execute runs rs.Bytecode from rs.PC until it halts (STOP/RETURN/REVERT)
// or faults. It returns nil on STOP/RETURN, ErrRevert on REVERT (the host
// has already been notified via rs.HEI.Revert), and on fault another error
// from the taxonomy: either the sentinel itself or, for invalid opcodes,
// invalid jumps and the step bound, the sentinel wrapped with context (match
// those with errors.Is).
func Execute(rs *RunState, cfg Config) error {
	steps := 0
	for {
		if cfg.MaxSteps > 0 && steps >= cfg.MaxSteps {
			return fmt.Errorf("%w: exceeded %d steps", ErrInternal, cfg.MaxSteps)
		}
		steps++

		if rs.PC >= len(rs.Bytecode) {
			return nil // falling off the end of the code behaves like STOP
		}
		op := OpCode(rs.Bytecode[rs.PC])

		fn, ok := jumpTable[op]
		if !ok {
			return fmt.Errorf("%w: 0x%02x at pc %d", ErrInvalidOpCode, byte(op), rs.PC)
		}

		if cfg.Debug {
			vmLog.With("pc", rs.PC, "op", op.String(), "stackLen", rs.Stack.Len()).Debug("step")
			vmLog.Debug(DumpState(rs))
		}

		nextPC := rs.PC + 1
		if op.IsPush() {
			nextPC = rs.PC + 1 + op.PushSize()
		}

		err := fn(rs)
		if cfg.Tracer != nil {
			cfg.Tracer(rs.PC, op, rs.Stack.Data(), rs.Memory.Len())
		}
		if err != nil {
			if halt, ok := err.(haltSignal); ok {
				if halt.reverted {
					return ErrRevert
				}
				return nil
			}
			return err
		}

		switch op {
		case JUMP, JUMPI:
			// handlers already set rs.PC themselves.
		default:
			rs.PC = nextPC
		}
	}
}

// validJumpDests scans bytecode for JUMPDEST positions, skipping over PUSH
// immediate bytes so that data embedded after a PUSH is never mistaken for
// an opcode (and in particular never mistaken for a valid jump target).
func validJumpDests(bytecode []byte) map[int]bool {
	dests := make(map[int]bool)
	for pc := 0; pc < len(bytecode); {
		op := OpCode(bytecode[pc])
		if op == JUMPDEST {
			dests[pc] = true
		}
		if op.IsPush() {
			pc += 1 + op.PushSize()
		} else {
			pc++
		}
	}
	return dests
}

func (rs *RunState) checkJumpDest(dests map[int]bool, target int) error {
	if target < 0 || target >= len(rs.Bytecode) || !dests[target] {
		return fmt.Errorf("%w: target %d", ErrInvalidJump, target)
	}
	return nil
}

// --- termination ---

func opStop(rs *RunState) error {
	rs.HEI.Finish(nil)
	return haltSignal{}
}

func opReturn(rs *RunState) error {
	offset, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	size, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	data, err := readReturnRange(rs, offset, size)
	if err != nil {
		return err
	}
	rs.HEI.Finish(data)
	return haltSignal{}
}

func opRevert(rs *RunState) error {
	offset, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	size, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	data, err := readReturnRange(rs, offset, size)
	if err != nil {
		return err
	}
	rs.HEI.Revert(data)
	return haltSignal{reverted: true}
}

func readReturnRange(rs *RunState, offsetWord, sizeWord u256.Word) ([]byte, error) {
	sizeBytes := sizeWord.Bytes()
	if hasHighBits(sizeBytes[:24]) {
		return nil, ErrOutOfRange
	}
	size := beUint64(sizeBytes[24:])
	if size == 0 {
		return nil, nil
	}
	offBytes := offsetWord.Bytes()
	if hasHighBits(offBytes[:24]) {
		return nil, ErrOutOfRange
	}
	offset := beUint64(offBytes[24:])
	return rs.Memory.Load(offset, size)
}

func hasHighBits(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return true
		}
	}
	return false
}

func beUint64(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

// --- arithmetic ---

func binaryOp(rs *RunState, f func(a, b u256.Word) u256.Word) error {
	a, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	return rs.Stack.Push(f(a, b))
}

func opAdd(rs *RunState) error { return binaryOp(rs, u256.Word.Add) }
func opMul(rs *RunState) error { return binaryOp(rs, u256.Word.Mul) }
func opSub(rs *RunState) error { return binaryOp(rs, u256.Word.Sub) }
func opDiv(rs *RunState) error { return binaryOp(rs, u256.Word.Div) }
func opMod(rs *RunState) error { return binaryOp(rs, u256.Word.Mod) }

func opAddMod(rs *RunState) error {
	a, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	m, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	return rs.Stack.Push(a.AddMod(b, m))
}

func opMulMod(rs *RunState) error {
	a, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	m, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	return rs.Stack.Push(a.MulMod(b, m))
}

// --- comparison ---

func opLt(rs *RunState) error     { return binaryOp(rs, u256.Word.Lt) }
func opGt(rs *RunState) error     { return binaryOp(rs, u256.Word.Gt) }
func opEq(rs *RunState) error     { return binaryOp(rs, u256.Word.Eq) }
func opIsZero(rs *RunState) error {
	a, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	return rs.Stack.Push(u256.FromBool(a.IsZero()))
}

// --- bitwise ---

func opAnd(rs *RunState) error { return binaryOp(rs, u256.Word.And) }
func opOr(rs *RunState) error  { return binaryOp(rs, u256.Word.Or) }
func opXor(rs *RunState) error { return binaryOp(rs, u256.Word.Xor) }
func opNot(rs *RunState) error {
	a, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	return rs.Stack.Push(a.Not())
}

// SHL/SHR pop the shift amount first, then the value being shifted,
// matching the original engine's shl/shr handlers (interpreter.rs).
func opShl(rs *RunState) error {
	shift, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	val, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	return rs.Stack.Push(val.ShlWord(shift))
}

func opShr(rs *RunState) error {
	shift, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	val, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	return rs.Stack.Push(val.ShrWord(shift))
}

// --- stack manipulation ---

func opPop(rs *RunState) error {
	_, err := rs.Stack.Pop()
	return err
}

func opPush(rs *RunState) error {
	op := OpCode(rs.Bytecode[rs.PC])
	size := op.PushSize()
	start := rs.PC + 1
	var buf [32]byte
	for i := 0; i < size; i++ {
		if start+i < len(rs.Bytecode) {
			buf[32-size+i] = rs.Bytecode[start+i]
		}
	}
	return rs.Stack.Push(u256.FromBytes(buf))
}

func opDup(rs *RunState) error {
	op := OpCode(rs.Bytecode[rs.PC])
	return rs.Stack.Dup(op.DupPos())
}

func opSwap(rs *RunState) error {
	op := OpCode(rs.Bytecode[rs.PC])
	return rs.Stack.Swap(op.SwapPos())
}

// --- memory ---

func opMload(rs *RunState) error {
	offsetWord, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	offBytes := offsetWord.Bytes()
	if hasHighBits(offBytes[:24]) {
		return ErrOutOfRange
	}
	offset := beUint64(offBytes[24:])
	val, err := rs.Memory.Load32(offset)
	if err != nil {
		return err
	}
	return rs.Stack.Push(val)
}

func opMstore(rs *RunState) error {
	offsetWord, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	val, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	offBytes := offsetWord.Bytes()
	if hasHighBits(offBytes[:24]) {
		return ErrOutOfRange
	}
	offset := beUint64(offBytes[24:])
	return rs.Memory.Store32(offset, val)
}

func opMstore8(rs *RunState) error {
	offsetWord, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	val, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	offBytes := offsetWord.Bytes()
	if hasHighBits(offBytes[:24]) {
		return ErrOutOfRange
	}
	offset := beUint64(offBytes[24:])
	return rs.Memory.Store8(offset, val)
}

func opMsize(rs *RunState) error {
	return rs.Stack.Push(u256.FromUint64(uint64(rs.Memory.Len())))
}

// --- control flow ---

func opJump(rs *RunState) error {
	targetWord, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	dests := validJumpDests(rs.Bytecode)
	targetBytes := targetWord.Bytes()
	if hasHighBits(targetBytes[:24]) {
		return fmt.Errorf("%w: target overflow", ErrInvalidJump)
	}
	target := int(beUint64(targetBytes[24:]))
	if err := rs.checkJumpDest(dests, target); err != nil {
		return err
	}
	rs.PC = target
	return nil
}

// JUMPI pops the target first and the condition second, matching the
// original engine's pop order exactly (not the more natural-looking
// condition-first order).
func opJumpi(rs *RunState) error {
	targetWord, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	cond, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	if cond.IsZero() {
		rs.PC++
		return nil
	}
	dests := validJumpDests(rs.Bytecode)
	targetBytes := targetWord.Bytes()
	if hasHighBits(targetBytes[:24]) {
		return fmt.Errorf("%w: target overflow", ErrInvalidJump)
	}
	target := int(beUint64(targetBytes[24:]))
	if err := rs.checkJumpDest(dests, target); err != nil {
		return err
	}
	rs.PC = target
	return nil
}

func opJumpdest(rs *RunState) error { return nil }

func opPc(rs *RunState) error {
	return rs.Stack.Push(u256.FromUint64(uint64(rs.PC)))
}

// --- environment ---

func opAddress(rs *RunState) error {
	return rs.Stack.Push(rs.HEI.GetAddress())
}

func opSload(rs *RunState) error {
	key, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	return rs.Stack.Push(rs.HEI.Sload(key))
}

func opSstore(rs *RunState) error {
	key, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	val, err := rs.Stack.Pop()
	if err != nil {
		return err
	}
	rs.HEI.Sstore(key, val)
	return nil
}
