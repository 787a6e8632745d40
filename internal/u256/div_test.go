package u256

import "testing"

func TestDivByZeroIsZero(t *testing.T) {
	a := FromUint64(42)
	if got := a.Div(Zero()); !got.IsZero() {
		t.Fatalf("42/0 should be 0 (EVM semantics), got %s", got)
	}
	if got := a.Mod(Zero()); !got.IsZero() {
		t.Fatalf("42%%0 should be 0 (EVM semantics), got %s", got)
	}
}

func TestDivLessThanDivisorIsZero(t *testing.T) {
	a := FromUint64(3)
	b := FromUint64(10)
	q, r := a.DivMod(b)
	if !q.IsZero() {
		t.Fatalf("3/10 quotient should be 0, got %s", q)
	}
	if !r.Equal(a) {
		t.Fatalf("3/10 remainder should be 3, got %s", r)
	}
}

func TestDivModExact(t *testing.T) {
	a := FromUint64(100)
	b := FromUint64(7)
	q, r := a.DivMod(b)
	if !q.Equal(FromUint64(14)) {
		t.Fatalf("100/7 quotient = %s, want 14", q)
	}
	if !r.Equal(FromUint64(2)) {
		t.Fatalf("100/7 remainder = %s, want 2", r)
	}
}

func TestAddModOverflowsPast256Bits(t *testing.T) {
	max := Zero().Sub(One())
	got := max.AddMod(max, FromUint64(7))
	// max = 2^256-1, so max+max = 2*(2^256-1) = 2^257-2, which mod 7 must be
	// computed against the true wide sum, not the wrapped-mod-2^256 one.
	// 2^257 mod 7 has period 3 (2^3=8=1 mod 7); 257 mod 3 = 2, so 2^257 mod 7 = 4,
	// and (2^257-2) mod 7 = 2.
	if !got.Equal(FromUint64(2)) {
		t.Fatalf("(2^256-1)+(2^256-1) mod 7 = %s, want 2", got)
	}
}

func TestAddModZeroModulus(t *testing.T) {
	a := FromUint64(5)
	if got := a.AddMod(a, Zero()); !got.IsZero() {
		t.Fatalf("addmod with zero modulus should be zero, got %s", got)
	}
}

func TestMulModOverflowsPast256Bits(t *testing.T) {
	max := Zero().Sub(One())
	got := max.MulMod(max, FromUint64(97))
	// (2^256-1)^2 mod 97, computed independently via modular arithmetic on
	// the residue of 2^256-1 mod 97: 2 has order 48 mod 97 and 256 mod 48 = 16,
	// so 2^256 = 2^16 = 65536 = 65536 - 675*97 = 61 (mod 97), r = 61-1 = 60,
	// and r^2 = 3600 = 37*97 + 11, so the result is 11.
	if !got.Equal(FromUint64(11)) {
		t.Fatalf("(2^256-1)^2 mod 97 = %s, want 11", got)
	}
}

func TestMulModZeroModulus(t *testing.T) {
	a := FromUint64(5)
	if got := a.MulMod(a, Zero()); !got.IsZero() {
		t.Fatalf("mulmod with zero modulus should be zero, got %s", got)
	}
}
