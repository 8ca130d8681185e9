package galois

import "testing"

func TestMul128ByZeroIsZero(t *testing.T) {
	var x [16]byte
	for i := range x {
		x[i] = byte(i + 1)
	}
	var zero [16]byte
	got := Mul128(x, zero)
	if got != ([16]byte{}) {
		t.Fatalf("Mul128(x, 0) = %x, want 0", got)
	}
}

func TestMul128Commutes(t *testing.T) {
	var x, y [16]byte
	for i := range x {
		x[i] = byte(i * 3)
		y[i] = byte(i*7 + 1)
	}
	a := Mul128(x, y)
	b := Mul128(y, x)
	if a != b {
		t.Fatalf("Mul128 not commutative: %x != %x", a, b)
	}
}

func TestDoubleChangesValueOverTwoSteps(t *testing.T) {
	var x [16]byte
	for i := range x {
		x[i] = byte(255 - i)
	}
	d1 := Double(x)
	d2 := Double(d1)
	if d1 == x {
		t.Fatal("Double(x) == x, want a changed value")
	}
	if d2 == d1 {
		t.Fatal("Double(Double(x)) == Double(x), want a changed value")
	}
}

func TestXorBlocksSelfInverse(t *testing.T) {
	var a, b, out [16]byte
	for i := range a {
		a[i] = byte(i)
		b[i] = byte(2 * i)
	}
	XorBlocks(&out, &a, &b)
	XorBlocks(&out, &out, &b)
	if out != a {
		t.Fatalf("XorBlocks round trip = %x, want %x", out, a)
	}
}
