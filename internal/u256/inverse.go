package u256

import "math/bits"

// MultInverse computes the multiplicative inverse of w modulo 2^256, or
// reports ok=false if none exists (any even w, since 2^256 and w would then
// share a factor of two). The original engine computes this by extending
// both operands to a wider width and running the same extended-GCD it uses
// for Signed.Egcd against M=2^256 — 2^256 itself does not fit in a 256-bit
// Word, so the computation needs that extra headroom, here a 320-bit
// extWord rather than the original's 9-limb extension.
func (w Word) MultInverse() (Word, bool) {
	if w.IsEven() {
		return Zero(), false
	}

	m := extSigned{mag: extTwoTo256(), negative: false}
	self := extSigned{mag: extFromWord(w), negative: false}

	_, d, v := extEgcd(m, self)
	if !v.mag.equalOne() || v.negative {
		return Zero(), false
	}

	if !d.negative && !d.mag.isZero() {
		return d.mag.toWord(), true
	}
	sum := d.add(m)
	return sum.mag.toWord(), true
}

// extWord is a 320-bit unsigned accumulator: five little-endian 64-bit
// limbs, wide enough to hold 2^256 itself plus the Bézout coefficients the
// extended GCD produces against it without truncation.
type extWord [5]uint64

func extZero() extWord { return extWord{} }

func extOne() extWord { var e extWord; e[0] = 1; return e }

// extTwoTo256 returns the value 2^256, which does not fit in a Word.
func extTwoTo256() extWord { var e extWord; e[4] = 1; return e }

func extFromWord(w Word) extWord {
	return extWord{w.limbs[0], w.limbs[1], w.limbs[2], w.limbs[3], 0}
}

// toWord truncates to the low 256 bits; callers only use this once they
// know the value fits (it is a Bézout coefficient bounded by 2^256).
func (e extWord) toWord() Word {
	return Word{limbs: [4]uint64{e[0], e[1], e[2], e[3]}}
}

func (e extWord) isZero() bool {
	return e[0] == 0 && e[1] == 0 && e[2] == 0 && e[3] == 0 && e[4] == 0
}

func (e extWord) equalOne() bool {
	return e[0] == 1 && e[1] == 0 && e[2] == 0 && e[3] == 0 && e[4] == 0
}

func (e extWord) isEven() bool { return e[0]&1 == 0 }
func (e extWord) isOdd() bool  { return !e.isEven() }

func (e extWord) cmp(o extWord) int {
	for i := 4; i >= 0; i-- {
		if e[i] != o[i] {
			if e[i] < o[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (e extWord) twosComplement() extWord {
	var out extWord
	for i := range e {
		out[i] = ^e[i]
	}
	return out
}

func (e extWord) add(o extWord) extWord {
	var out extWord
	var carry uint64
	for i := 0; i < 5; i++ {
		out[i], carry = bits.Add64(e[i], o[i], carry)
	}
	return out
}

// sub computes e-o mod 2^320 via the same flip/add/flip identity Word.Sub
// uses. When o <= e this is exact integer subtraction; when o > e the result
// wraps, and the sign-flipping branches of extSigned.add and extSigned.sub
// turn that wrapped value back into a magnitude with a further complement.
func (e extWord) sub(o extWord) extWord {
	return e.twosComplement().add(o).twosComplement()
}

func (e extWord) shr1() extWord {
	var out extWord
	for i := 0; i < 5; i++ {
		out[i] = e[i] >> 1
		if i+1 < 5 {
			out[i] |= (e[i+1] & 1) << 63
		}
	}
	return out
}

// extSigned is the widened analogue of Signed, used only by MultInverse.
type extSigned struct {
	mag      extWord
	negative bool
}

func (s extSigned) isZero() bool { return s.mag.isZero() }
func (s extSigned) isOdd() bool  { return s.mag.isOdd() }
func (s extSigned) isEven() bool { return s.mag.isEven() }
func (s extSigned) shr1() extSigned {
	return extSigned{mag: s.mag.shr1(), negative: s.negative}
}

func (s extSigned) add(o extSigned) extSigned {
	switch {
	case s.negative && !o.negative:
		if s.mag.cmp(o.mag) <= 0 {
			w := s.mag.twosComplement().add(o.mag).add(extOne())
			return extSigned{mag: w, negative: false}
		}
		return extSigned{mag: s.mag.sub(o.mag), negative: true}
	case !s.negative && o.negative:
		if o.mag.cmp(s.mag) <= 0 {
			return extSigned{mag: s.mag.sub(o.mag), negative: false}
		}
		w := s.mag.sub(o.mag).twosComplement().add(extOne())
		return extSigned{mag: w, negative: true}
	default:
		return extSigned{mag: s.mag.add(o.mag), negative: s.negative}
	}
}

func (s extSigned) sub(o extSigned) extSigned {
	switch {
	case s.negative && !o.negative:
		return extSigned{mag: s.mag.add(o.mag), negative: true}
	case !s.negative && o.negative:
		return extSigned{mag: s.mag.add(o.mag), negative: false}
	case s.negative && o.negative:
		if o.mag.cmp(s.mag) >= 0 {
			w := s.mag.sub(o.mag).sub(extOne()).twosComplement()
			return extSigned{mag: w, negative: false}
		}
		return extSigned{mag: s.mag.sub(o.mag), negative: true}
	default:
		if o.mag.cmp(s.mag) > 0 {
			w := s.mag.sub(o.mag).sub(extOne()).twosComplement()
			return extSigned{mag: w, negative: true}
		}
		return extSigned{mag: s.mag.sub(o.mag), negative: false}
	}
}

// extEgcd is extSigned's Stein's-algorithm twin of Egcd, run once by
// MultInverse against (2^256, w) where 2^256 needs the wider width.
func extEgcd(x, y extSigned) (c, d, v extSigned) {
	g := 0
	for x.isEven() && y.isEven() {
		x = x.shr1()
		y = y.shr1()
		g++
	}

	a := extSigned{mag: extOne()}
	b := extSigned{mag: extZero()}
	c = extSigned{mag: extZero()}
	d = extSigned{mag: extOne()}

	u := x
	vv := y
	for !u.isZero() {
		for u.isEven() {
			u = u.shr1()
			if a.isOdd() || b.isOdd() {
				a = a.add(y)
				b = b.sub(x)
			}
			a = a.shr1()
			b = b.shr1()
		}

		for vv.isEven() {
			vv = vv.shr1()
			if c.isOdd() || d.isOdd() {
				c = c.add(y)
				d = d.sub(x)
			}
			c = c.shr1()
			d = d.shr1()
		}

		if cmpSigned(u, vv) < 0 {
			vv = vv.sub(u)
			c = c.sub(a)
			d = d.sub(b)
		} else {
			u = u.sub(vv)
			a = a.sub(c)
			b = b.sub(d)
		}
	}

	return c, d, vv.shr1Undo(g)
}

func cmpSigned(s, o extSigned) int {
	switch {
	case s.negative && !o.negative:
		return 1
	case !s.negative && o.negative:
		return -1
	case !s.negative && !o.negative:
		return s.mag.cmp(o.mag)
	default:
		return -s.mag.cmp(o.mag)
	}
}

// shr1Undo folds the common power-of-two factor g back into v via a left
// shift of g bits, mirroring the original's "v << g" on the final result.
func (s extSigned) shr1Undo(g int) extSigned {
	mag := s.mag
	for i := 0; i < g; i++ {
		mag = extShl1(mag)
	}
	return extSigned{mag: mag, negative: s.negative}
}

func extShl1(e extWord) extWord {
	var out extWord
	var carry uint64
	for i := 0; i < 5; i++ {
		out[i] = (e[i] << 1) | carry
		carry = e[i] >> 63
	}
	return out
}
