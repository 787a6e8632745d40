package u256

import (
	"testing"

	huint "github.com/holiman/uint256"
)

// These tests cross-check the hand-rolled Word engine against
// github.com/holiman/uint256 as an independent oracle. Production
// arithmetic never imports uint256 — only the test suite does, the same
// way a differential fuzzing harness pulls in a reference implementation
// without the code under test depending on it.

func toHoliman(w Word) *huint.Int {
	b := w.Bytes()
	var h huint.Int
	h.SetBytes(b[:])
	return &h
}

func fromHoliman(h *huint.Int) Word {
	b := h.Bytes32()
	return FromBytes(b)
}

func randomWords() []Word {
	return []Word{
		Zero(),
		One(),
		FromUint64(2),
		FromUint64(0xffffffff),
		FromUint64(0xffffffffffffffff),
		Zero().Sub(One()),          // 2^256-1
		One().Shl(128),             // 2^128
		One().Shl(255),             // 2^255
		FromUint64(123456789),
		FromUint64(987654321987654321),
	}
}

func TestDifferentialAdd(t *testing.T) {
	vals := randomWords()
	for _, a := range vals {
		for _, b := range vals {
			got := a.Add(b)
			want := fromHoliman(new(huint.Int).Add(toHoliman(a), toHoliman(b)))
			if !got.Equal(want) {
				t.Fatalf("Add(%s,%s) = %s, want %s", a, b, got, want)
			}
		}
	}
}

func TestDifferentialSub(t *testing.T) {
	vals := randomWords()
	for _, a := range vals {
		for _, b := range vals {
			got := a.Sub(b)
			want := fromHoliman(new(huint.Int).Sub(toHoliman(a), toHoliman(b)))
			if !got.Equal(want) {
				t.Fatalf("Sub(%s,%s) = %s, want %s", a, b, got, want)
			}
		}
	}
}

func TestDifferentialMul(t *testing.T) {
	vals := randomWords()
	for _, a := range vals {
		for _, b := range vals {
			got := a.Mul(b)
			want := fromHoliman(new(huint.Int).Mul(toHoliman(a), toHoliman(b)))
			if !got.Equal(want) {
				t.Fatalf("Mul(%s,%s) = %s, want %s", a, b, got, want)
			}
		}
	}
}

func TestDifferentialDivMod(t *testing.T) {
	vals := randomWords()
	for _, a := range vals {
		for _, b := range vals {
			gotQ := a.Div(b)
			gotR := a.Mod(b)
			var wantQ, wantR huint.Int
			if b.IsZero() {
				wantQ, wantR = huint.Int{}, huint.Int{}
			} else {
				wantQ.Div(toHoliman(a), toHoliman(b))
				wantR.Mod(toHoliman(a), toHoliman(b))
			}
			if !gotQ.Equal(fromHoliman(&wantQ)) {
				t.Fatalf("Div(%s,%s) = %s, want %s", a, b, gotQ, fromHoliman(&wantQ))
			}
			if !gotR.Equal(fromHoliman(&wantR)) {
				t.Fatalf("Mod(%s,%s) = %s, want %s", a, b, gotR, fromHoliman(&wantR))
			}
		}
	}
}

func TestDifferentialShifts(t *testing.T) {
	vals := randomWords()
	for _, a := range vals {
		for _, k := range []uint{0, 1, 7, 63, 64, 65, 128, 200, 255, 256, 300} {
			gotL := a.Shl(k)
			wantL := fromHoliman(new(huint.Int).Lsh(toHoliman(a), uint(k)))
			if !gotL.Equal(wantL) {
				t.Fatalf("Shl(%s,%d) = %s, want %s", a, k, gotL, wantL)
			}
			gotR := a.Shr(k)
			wantR := fromHoliman(new(huint.Int).Rsh(toHoliman(a), uint(k)))
			if !gotR.Equal(wantR) {
				t.Fatalf("Shr(%s,%d) = %s, want %s", a, k, gotR, wantR)
			}
		}
	}
}

func TestDifferentialBitwise(t *testing.T) {
	vals := randomWords()
	for _, a := range vals {
		for _, b := range vals {
			if got, want := a.And(b), fromHoliman(new(huint.Int).And(toHoliman(a), toHoliman(b))); !got.Equal(want) {
				t.Fatalf("And(%s,%s) = %s, want %s", a, b, got, want)
			}
			if got, want := a.Or(b), fromHoliman(new(huint.Int).Or(toHoliman(a), toHoliman(b))); !got.Equal(want) {
				t.Fatalf("Or(%s,%s) = %s, want %s", a, b, got, want)
			}
			if got, want := a.Xor(b), fromHoliman(new(huint.Int).Xor(toHoliman(a), toHoliman(b))); !got.Equal(want) {
				t.Fatalf("Xor(%s,%s) = %s, want %s", a, b, got, want)
			}
		}
	}
}
