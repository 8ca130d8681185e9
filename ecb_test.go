package belt

import (
	"bytes"
	"testing"
)

func TestECBRoundTrip(t *testing.T) {
	secret := testKey32()
	for _, n := range []int{16, 17, 31, 32, 33, 63, 64, 100} {
		plain := make([]byte, n)
		for i := range plain {
			plain[i] = byte(i)
		}

		ct, err := ECBEncr(plain, secret)
		if err != nil {
			t.Fatalf("len %d: ECBEncr error: %v", n, err)
		}
		if len(ct) != n {
			t.Fatalf("len %d: ciphertext length = %d, want %d", n, len(ct), n)
		}

		pt, err := ECBDecr(ct, secret)
		if err != nil {
			t.Fatalf("len %d: ECBDecr error: %v", n, err)
		}
		if !bytes.Equal(pt, plain) {
			t.Fatalf("len %d: round trip mismatch: got %x, want %x", n, pt, plain)
		}
	}
}

func TestECBRejectsShortInput(t *testing.T) {
	secret := testKey32()
	if _, err := ECBEncr(make([]byte, 15), secret); err != ErrBadInput {
		t.Fatalf("ECBEncr(15 bytes) = %v, want ErrBadInput", err)
	}
}

func TestECBIncrementalMatchesOneShot(t *testing.T) {
	secret := testKey32()
	plain := make([]byte, 97)
	for i := range plain {
		plain[i] = byte(i * 3)
	}

	oneShot, err := ECBEncr(plain, secret)
	if err != nil {
		t.Fatal(err)
	}

	xk, err := ExpandKey(secret)
	if err != nil {
		t.Fatal(err)
	}
	s := StartECB(xk)

	chunkSizes := []int{1, 5, 16, 20, 33, 22}
	var incremental []byte
	off := 0
	for _, n := range chunkSizes {
		end := off + n
		if end > len(plain) {
			end = len(plain)
		}
		part, err := s.StepE(plain[off:end])
		if err != nil {
			t.Fatal(err)
		}
		incremental = append(incremental, part...)
		off = end
	}
	if off < len(plain) {
		part, err := s.StepE(plain[off:])
		if err != nil {
			t.Fatal(err)
		}
		incremental = append(incremental, part...)
	}
	tail, err := s.FinalizeE()
	if err != nil {
		t.Fatal(err)
	}
	incremental = append(incremental, tail...)

	if !bytes.Equal(incremental, oneShot) {
		t.Fatalf("incremental encryption diverged from one-shot:\n got  %x\n want %x", incremental, oneShot)
	}
}

func TestECBByteAtATimeMatchesOneShot(t *testing.T) {
	secret := testKey32()
	plain := []byte("the quick brown fox jumps over the lazy dog!!!!")

	oneShot, err := ECBEncr(plain, secret)
	if err != nil {
		t.Fatal(err)
	}

	xk, err := ExpandKey(secret)
	if err != nil {
		t.Fatal(err)
	}
	s := StartECB(xk)

	var incremental []byte
	for _, b := range plain {
		part, err := s.StepE([]byte{b})
		if err != nil {
			t.Fatal(err)
		}
		incremental = append(incremental, part...)
	}
	tail, err := s.FinalizeE()
	if err != nil {
		t.Fatal(err)
	}
	incremental = append(incremental, tail...)

	if !bytes.Equal(incremental, oneShot) {
		t.Fatalf("byte-at-a-time encryption diverged from one-shot:\n got  %x\n want %x", incremental, oneShot)
	}
}
