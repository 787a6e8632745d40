package u256

// Signed is the interpreter's 256-bit signed companion to Word. It is not a
// two's-complement value: it stores a magnitude (Word) and a sign bit, and
// a negative Signed denotes -magnitude. Add and Sub keep that form by
// dispatching on the two signs; where a result crosses zero they flip the
// sign and renormalize the magnitude with a two's-complement step, the same
// case split the original engine's S256 uses. Egcd below relies on this
// arithmetic for its Bézout coefficients.
type Signed struct {
	word     Word
	negative bool
}

// FromWord builds a Signed from a magnitude and an explicit sign.
func FromWord(word Word, positive bool) Signed {
	return Signed{word: word, negative: !positive}
}

// SignedOne and SignedZero are the non-negative identities.
func SignedOne() Signed  { return Signed{word: One()} }
func SignedZero() Signed { return Signed{word: Zero()} }

// Magnitude returns the sign and backing magnitude, the inverse of FromWord.
func (s Signed) Magnitude() (negative bool, word Word) { return s.negative, s.word }

func (s Signed) IsZero() bool { return s.word.IsZero() }
func (s Signed) IsOdd() bool  { return s.word.IsOdd() }
func (s Signed) IsEven() bool { return s.word.IsEven() }

// Cmp orders Signed values taking the sign bit into account, mirroring the
// original's PartialOrd impl (note the inverted magnitude comparison when
// both operands are negative).
func (s Signed) Cmp(o Signed) int {
	switch {
	case s.negative && !o.negative:
		return 1
	case !s.negative && o.negative:
		return -1
	case !s.negative && !o.negative:
		return s.word.Cmp(o.word)
	default:
		return -s.word.Cmp(o.word)
	}
}

// Shr shifts the magnitude right by k bits; the sign is untouched, matching
// the original's ShrAssign which only ever shifts the inner word.
func (s Signed) Shr(k uint) Signed { return Signed{word: s.word.Shr(k), negative: s.negative} }

// Shl shifts the magnitude left by k bits; the sign is untouched.
func (s Signed) Shl(k uint) Signed { return Signed{word: s.word.Shl(k), negative: s.negative} }

// Add implements the sign-dispatched addition spec.md describes: four cases
// on (self.negative, rhs.negative), two of which flip sign and renormalize
// the magnitude via two's-complement plus one.
func (s Signed) Add(rhs Signed) Signed {
	switch {
	case s.negative && !rhs.negative:
		if s.word.Cmp(rhs.word) <= 0 {
			w := s.word.TwosComplement().Add(rhs.word).Add(One())
			return Signed{word: w, negative: false}
		}
		return Signed{word: s.word.Sub(rhs.word), negative: true}
	case !s.negative && rhs.negative:
		if rhs.word.Cmp(s.word) <= 0 {
			return Signed{word: s.word.Sub(rhs.word), negative: false}
		}
		w := s.word.Sub(rhs.word).TwosComplement().Add(One())
		return Signed{word: w, negative: true}
	default:
		return Signed{word: s.word.Add(rhs.word), negative: s.negative}
	}
}

// Sub implements the sign-dispatched subtraction spec.md describes.
func (s Signed) Sub(rhs Signed) Signed {
	switch {
	case s.negative && !rhs.negative:
		return Signed{word: s.word.Add(rhs.word), negative: true}
	case !s.negative && rhs.negative:
		return Signed{word: s.word.Add(rhs.word), negative: false}
	case s.negative && rhs.negative:
		if rhs.word.Cmp(s.word) >= 0 {
			w := s.word.Sub(rhs.word).Sub(One()).TwosComplement()
			return Signed{word: w, negative: false}
		}
		return Signed{word: s.word.Sub(rhs.word), negative: true}
	default: // !s.negative && !rhs.negative
		if rhs.word.Cmp(s.word) > 0 {
			w := s.word.Sub(rhs.word).Sub(One()).TwosComplement()
			return Signed{word: w, negative: true}
		}
		return Signed{word: s.word.Sub(rhs.word), negative: false}
	}
}

// Egcd computes the extended binary GCD (Stein's algorithm) of x and y,
// returning Bézout coefficients c, d and the shifted gcd v such that
// c*x + d*y = v (v already carries the common power-of-two factor folded
// back in via the final left shift), exactly as the original engine's
// S256::egcd.
func Egcd(x, y Signed) (c, d, v Signed) {
	g := 0
	for x.IsEven() && y.IsEven() {
		x = x.Shr(1)
		y = y.Shr(1)
		g++
	}

	a := SignedOne()
	b := SignedZero()
	c = SignedZero()
	d = SignedOne()

	u := x
	vv := y
	for !u.IsZero() {
		for u.IsEven() {
			u = u.Shr(1)
			if a.IsOdd() || b.IsOdd() {
				a = a.Add(y)
				b = b.Sub(x)
			}
			a = a.Shr(1)
			b = b.Shr(1)
		}

		for vv.IsEven() {
			vv = vv.Shr(1)
			if c.IsOdd() || d.IsOdd() {
				c = c.Add(y)
				d = d.Sub(x)
			}
			c = c.Shr(1)
			d = d.Shr(1)
		}

		if u.Cmp(vv) < 0 {
			vv = vv.Sub(u)
			c = c.Sub(a)
			d = d.Sub(b)
		} else {
			u = u.Sub(vv)
			a = a.Sub(c)
			b = b.Sub(d)
		}
	}

	return c, d, vv.Shl(uint(g))
}
