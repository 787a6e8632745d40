package u256

import "testing"

func TestMultInverseEvenHasNone(t *testing.T) {
	w := FromUint64(42)
	if _, ok := w.MultInverse(); ok {
		t.Fatalf("even values have no inverse mod 2^256")
	}
}

func TestMultInverseOneIsSelfInverse(t *testing.T) {
	inv, ok := One().MultInverse()
	if !ok {
		t.Fatalf("1 should have an inverse")
	}
	if !inv.Equal(One()) {
		t.Fatalf("1^-1 mod 2^256 should be 1, got %s", inv)
	}
}

// 2^255-1 squares to 2^510-2^256+1, which is 1 mod 2^256, so it is its own
// inverse — a self-checking vector that needs no independent computation.
func TestMultInverseSelfInverting(t *testing.T) {
	var b [32]byte
	b[0] = 0x7f
	for i := 1; i < 32; i++ {
		b[i] = 0xff
	}
	w := FromBytes(b)
	inv, ok := w.MultInverse()
	if !ok {
		t.Fatalf("0x7fff...ff should have an inverse")
	}
	if !inv.Equal(w) {
		t.Fatalf("0x7fff...ff should be its own inverse, got %s", inv)
	}
}

func TestMultInverseRoundTrip(t *testing.T) {
	w := FromUint64(12345)
	inv, ok := w.MultInverse()
	if !ok {
		t.Fatalf("odd value should have an inverse")
	}
	if got := w.Mul(inv); !got.Equal(One()) {
		t.Fatalf("w*w^-1 mod 2^256 = %s, want 1", got)
	}
}
