package u256

import "math/bits"

// wideAcc is a 320-bit accumulator (5 little-endian 64-bit limbs) used only
// as scratch space for long division: it needs headroom beyond 256 bits
// because the restoring-division remainder can transiently exceed the
// modulus before the final subtraction reduces it back below it.
type wideAcc [5]uint64

// shiftInBit shifts acc left by one bit, setting the new low bit to bit.
func (acc *wideAcc) shiftInBit(bit uint64) {
	carry := bit
	for i := 0; i < 5; i++ {
		next := acc[i] >> 63
		acc[i] = (acc[i] << 1) | carry
		carry = next
	}
}

// cmpWord compares acc against m zero-extended to 320 bits.
func (acc wideAcc) cmpWord(m Word) int {
	if acc[4] != 0 {
		return 1
	}
	for i := 3; i >= 0; i-- {
		if acc[i] != m.limbs[i] {
			if acc[i] < m.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// subWord subtracts m (zero-extended to 320 bits) from acc in place.
// Callers must ensure acc >= m.
func (acc *wideAcc) subWord(m Word) {
	var borrow uint64
	acc[0], borrow = bits.Sub64(acc[0], m.limbs[0], 0)
	acc[1], borrow = bits.Sub64(acc[1], m.limbs[1], borrow)
	acc[2], borrow = bits.Sub64(acc[2], m.limbs[2], borrow)
	acc[3], borrow = bits.Sub64(acc[3], m.limbs[3], borrow)
	acc[4] -= borrow
}

// toWord extracts the low 256 bits of acc.
func (acc wideAcc) toWord() Word {
	return Word{limbs: [4]uint64{acc[0], acc[1], acc[2], acc[3]}}
}
