package belt

import (
	"bytes"
	"testing"
)

func testIV() []byte {
	iv := make([]byte, 16)
	for i := range iv {
		iv[i] = byte(0xA0 + i)
	}
	return iv
}

func TestCBCRoundTrip(t *testing.T) {
	secret := testKey32()
	iv := testIV()
	for _, n := range []int{16, 17, 31, 32, 33, 65, 100} {
		plain := make([]byte, n)
		for i := range plain {
			plain[i] = byte(i)
		}

		ct, err := CBCEncr(plain, secret, iv)
		if err != nil {
			t.Fatalf("len %d: CBCEncr error: %v", n, err)
		}
		if len(ct) != n {
			t.Fatalf("len %d: ciphertext length = %d, want %d", n, len(ct), n)
		}

		pt, err := CBCDecr(ct, secret, iv)
		if err != nil {
			t.Fatalf("len %d: CBCDecr error: %v", n, err)
		}
		if !bytes.Equal(pt, plain) {
			t.Fatalf("len %d: round trip mismatch: got %x, want %x", n, pt, plain)
		}
	}
}

func TestCBCDifferentIVsDifferentCiphertext(t *testing.T) {
	secret := testKey32()
	plain := make([]byte, 32)

	iv1 := testIV()
	iv2 := testIV()
	iv2[0] ^= 1

	ct1, err := CBCEncr(plain, secret, iv1)
	if err != nil {
		t.Fatal(err)
	}
	ct2, err := CBCEncr(plain, secret, iv2)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(ct1, ct2) {
		t.Fatal("different IVs produced identical ciphertext")
	}
}

func TestCBCIncrementalMatchesOneShot(t *testing.T) {
	secret := testKey32()
	iv := testIV()
	plain := make([]byte, 90)
	for i := range plain {
		plain[i] = byte(i * 5)
	}

	oneShot, err := CBCEncr(plain, secret, iv)
	if err != nil {
		t.Fatal(err)
	}

	xk, err := ExpandKey(secret)
	if err != nil {
		t.Fatal(err)
	}
	s, err := StartCBC(xk, iv)
	if err != nil {
		t.Fatal(err)
	}

	var incremental []byte
	chunkSizes := []int{3, 13, 16, 32, 1}
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

func TestCBCRejectsShortInput(t *testing.T) {
	secret := testKey32()
	iv := testIV()
	if _, err := CBCEncr(make([]byte, 10), secret, iv); err != ErrBadInput {
		t.Fatalf("CBCEncr(10 bytes) = %v, want ErrBadInput", err)
	}
}

func TestCBCRejectsBadIV(t *testing.T) {
	xk, err := ExpandKey(testKey32())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := StartCBC(xk, make([]byte, 15)); err != ErrBadInput {
		t.Fatalf("StartCBC with 15-byte IV = %v, want ErrBadInput", err)
	}
}
