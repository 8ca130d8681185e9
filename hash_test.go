package belt

import (
	"bytes"
	"testing"
)

func TestHashDeterministic(t *testing.T) {
	msg := []byte("belt-hash determinism check")
	d1, err := Hash(msg)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := Hash(msg)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(d1, d2) {
		t.Fatalf("Hash not deterministic: %x != %x", d1, d2)
	}
	if len(d1) != 32 {
		t.Fatalf("digest length = %d, want 32", len(d1))
	}
}

func TestHashDiffersOnSingleBitChange(t *testing.T) {
	a := []byte("belt-hash avalanche check 0")
	b := append([]byte(nil), a...)
	b[len(b)-1] ^= 1

	da, err := Hash(a)
	if err != nil {
		t.Fatal(err)
	}
	db, err := Hash(b)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(da, db) {
		t.Fatal("single-bit input change produced identical digests")
	}
}

func TestHashEmptyInput(t *testing.T) {
	d, err := Hash(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(d) != 32 {
		t.Fatalf("digest length for empty input = %d, want 32", len(d))
	}
}

func TestHashVerify(t *testing.T) {
	msg := []byte("verify me")
	d, err := Hash(msg)
	if err != nil {
		t.Fatal(err)
	}

	ok, err := HashVerify(msg, d)
	if err != nil || !ok {
		t.Fatalf("HashVerify on correct digest = (%v, %v), want (true, nil)", ok, err)
	}

	bad := append([]byte(nil), d...)
	bad[0] ^= 1
	ok, err = HashVerify(msg, bad)
	if err != ErrBadHash || ok {
		t.Fatalf("HashVerify on wrong digest = (%v, %v), want (false, ErrBadHash)", ok, err)
	}
}

func TestHashIncrementalMatchesOneShot(t *testing.T) {
	msg := make([]byte, 130)
	for i := range msg {
		msg[i] = byte(i * 17)
	}

	want, err := Hash(msg)
	if err != nil {
		t.Fatal(err)
	}

	s := StartHash()
	chunkSizes := []int{1, 31, 32, 33, 1, 32}
	off := 0
	for _, n := range chunkSizes {
		end := off + n
		if end > len(msg) {
			end = len(msg)
		}
		if off >= end {
			continue
		}
		if err := s.StepH(msg[off:end]); err != nil {
			t.Fatal(err)
		}
		off = end
	}
	if off < len(msg) {
		if err := s.StepH(msg[off:]); err != nil {
			t.Fatal(err)
		}
	}

	got := make([]byte, 32)
	if err := s.StepG(got); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("incremental hash diverged from one-shot:\n got  %x\n want %x", got, want)
	}
}

func TestHashStepGReadIdempotent(t *testing.T) {
	s := StartHash()
	if err := s.StepH([]byte("first part ")); err != nil {
		t.Fatal(err)
	}

	mid := make([]byte, 32)
	if err := s.StepG(mid); err != nil {
		t.Fatal(err)
	}
	if err := s.StepH([]byte("second part")); err != nil {
		t.Fatal(err)
	}
	final := make([]byte, 32)
	if err := s.StepG(final); err != nil {
		t.Fatal(err)
	}

	want, err := Hash([]byte("first part second part"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(final, want) {
		t.Fatalf("StepG after interleaved StepH/StepG = %x, want %x", final, want)
	}
}
