package belt

import (
	"bytes"
	"testing"
)

func TestDWPRoundTrip(t *testing.T) {
	secret := testKey32()
	iv := testIV()
	aad := []byte("associated data")
	for _, n := range []int{0, 1, 15, 16, 17, 63, 64} {
		plain := make([]byte, n)
		for i := range plain {
			plain[i] = byte(i)
		}

		wrapped, err := DWPWrap(plain, aad, secret, iv)
		if err != nil {
			t.Fatalf("len %d: DWPWrap error: %v", n, err)
		}
		if len(wrapped) != n+8 {
			t.Fatalf("len %d: wrapped length = %d, want %d", n, len(wrapped), n+8)
		}

		pt, err := DWPUnwrap(wrapped, aad, secret, iv)
		if err != nil {
			t.Fatalf("len %d: DWPUnwrap error: %v", n, err)
		}
		if !bytes.Equal(pt, plain) {
			t.Fatalf("len %d: round trip mismatch: got %x, want %x", n, pt, plain)
		}
	}
}

func TestDWPDetectsCiphertextTamper(t *testing.T) {
	secret := testKey32()
	iv := testIV()
	aad := []byte("aad")
	plain := []byte("sensitive payload")

	wrapped, err := DWPWrap(plain, aad, secret, iv)
	if err != nil {
		t.Fatal(err)
	}
	wrapped[0] ^= 1

	if _, err := DWPUnwrap(wrapped, aad, secret, iv); err != ErrBadMAC {
		t.Fatalf("DWPUnwrap on tampered ciphertext = %v, want ErrBadMAC", err)
	}
}

func TestDWPDetectsTagTamper(t *testing.T) {
	secret := testKey32()
	iv := testIV()
	aad := []byte("aad")
	plain := []byte("sensitive payload")

	wrapped, err := DWPWrap(plain, aad, secret, iv)
	if err != nil {
		t.Fatal(err)
	}
	wrapped[len(wrapped)-1] ^= 1

	if _, err := DWPUnwrap(wrapped, aad, secret, iv); err != ErrBadMAC {
		t.Fatalf("DWPUnwrap on tampered tag = %v, want ErrBadMAC", err)
	}
}

func TestDWPDetectsAADTamper(t *testing.T) {
	secret := testKey32()
	iv := testIV()
	plain := []byte("sensitive payload")

	wrapped, err := DWPWrap(plain, []byte("correct aad"), secret, iv)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := DWPUnwrap(wrapped, []byte("wrong aad!!"), secret, iv); err != ErrBadMAC {
		t.Fatalf("DWPUnwrap with wrong AAD = %v, want ErrBadMAC", err)
	}
}

func TestDWPDetectsIVTamper(t *testing.T) {
	secret := testKey32()
	iv := testIV()
	plain := []byte("sensitive payload")

	wrapped, err := DWPWrap(plain, nil, secret, iv)
	if err != nil {
		t.Fatal(err)
	}

	badIV := append([]byte(nil), iv...)
	badIV[0] ^= 1
	if _, err := DWPUnwrap(wrapped, nil, secret, badIV); err != ErrBadMAC {
		t.Fatalf("DWPUnwrap with tampered IV = %v, want ErrBadMAC", err)
	}
}

func TestDWPStepIForbiddenAfterStepE(t *testing.T) {
	xk, err := ExpandKey(testKey32())
	if err != nil {
		t.Fatal(err)
	}
	s, err := StartDWP(xk, testIV())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.StepE([]byte("go")); err != nil {
		t.Fatal(err)
	}
	if err := s.StepI([]byte("too late")); err != ErrBadInput {
		t.Fatalf("StepI after StepE = %v, want ErrBadInput", err)
	}
}
