package residue

import (
	"bytes"
	"testing"
)

func TestAppendTake(t *testing.T) {
	var b Buffer
	b.Append(1, 2, 3, 4, 5)
	if b.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", b.Len())
	}

	got := b.Take(2)
	if !bytes.Equal(got, []byte{1, 2}) {
		t.Fatalf("Take(2) = %v, want [1 2]", got)
	}
	if b.Len() != 3 {
		t.Fatalf("Len() after Take = %d, want 3", b.Len())
	}
	if !bytes.Equal(b.Bytes(), []byte{3, 4, 5}) {
		t.Fatalf("Bytes() = %v, want [3 4 5]", b.Bytes())
	}
}

func TestResetAndWipe(t *testing.T) {
	var b Buffer
	b.Append(9, 9, 9)
	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", b.Len())
	}

	b.Append(7, 7, 7)
	b.Wipe()
	if b.Len() != 0 {
		t.Fatalf("Len() after Wipe = %d, want 0", b.Len())
	}
}

func TestZeroExtend(t *testing.T) {
	dst := make([]byte, 5)
	ZeroExtend(dst, []byte{1, 2})
	if !bytes.Equal(dst, []byte{1, 2, 0, 0, 0}) {
		t.Fatalf("ZeroExtend = %v, want [1 2 0 0 0]", dst)
	}
}

func TestBitPad(t *testing.T) {
	dst := make([]byte, 5)
	BitPad(dst, []byte{1, 2})
	if !bytes.Equal(dst, []byte{1, 2, 0x80, 0, 0}) {
		t.Fatalf("BitPad = %v, want [1 2 0x80 0 0]", dst)
	}
}
