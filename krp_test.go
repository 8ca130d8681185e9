package belt

import (
	"bytes"
	"testing"
)

func TestKRPDeriveLengths(t *testing.T) {
	master := testKey32()
	level := make([]byte, 12)
	header := make([]byte, 16)

	for _, outLen := range []int{16, 24, 32} {
		derived, err := KRPDerive(master, level, header, outLen)
		if err != nil {
			t.Fatalf("outLen %d: KRPDerive error: %v", outLen, err)
		}
		if len(derived) != outLen {
			t.Fatalf("outLen %d: derived length = %d", outLen, len(derived))
		}
	}
}

func TestKRPDeriveDeterministic(t *testing.T) {
	master := testKey32()
	level := []byte("level-00-001")
	header := make([]byte, 16)
	for i := range header {
		header[i] = byte(i)
	}

	d1, err := KRPDerive(master, level, header, 32)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := KRPDerive(master, level, header, 32)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(d1, d2) {
		t.Fatalf("KRPDerive not deterministic: %x != %x", d1, d2)
	}
}

func TestKRPDeriveVariesWithLevel(t *testing.T) {
	master := testKey32()
	header := make([]byte, 16)

	level1 := []byte("level-00-001")
	level2 := []byte("level-00-002")

	d1, err := KRPDerive(master, level1, header, 32)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := KRPDerive(master, level2, header, 32)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(d1, d2) {
		t.Fatal("KRPDerive produced the same key for different level descriptors")
	}
}

func TestKRPDeriveRejectsBadSizes(t *testing.T) {
	master := testKey32()
	if _, err := KRPDerive(master, make([]byte, 11), make([]byte, 16), 32); err != ErrBadInput {
		t.Fatal("expected ErrBadInput for short level descriptor")
	}
	if _, err := KRPDerive(master, make([]byte, 12), make([]byte, 15), 32); err != ErrBadInput {
		t.Fatal("expected ErrBadInput for short header")
	}
	if _, err := KRPDerive(master, make([]byte, 12), make([]byte, 16), 20); err != ErrBadInput {
		t.Fatal("expected ErrBadInput for invalid outLen")
	}
}
