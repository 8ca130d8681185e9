package belt

import (
	"bytes"
	"testing"
)

func TestMACVerifiesOwnTag(t *testing.T) {
	secret := testKey32()
	msg := []byte("authenticate this message")

	tag, err := MAC(msg, secret)
	if err != nil {
		t.Fatal(err)
	}
	if len(tag) != 8 {
		t.Fatalf("tag length = %d, want 8", len(tag))
	}

	ok, err := MACVerify(msg, secret, tag)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("MACVerify rejected a correctly computed tag")
	}
}

func TestMACDetectsTampering(t *testing.T) {
	secret := testKey32()
	msg := []byte("authenticate this message")

	tag, err := MAC(msg, secret)
	if err != nil {
		t.Fatal(err)
	}

	tampered := append([]byte(nil), msg...)
	tampered[0] ^= 1
	ok, err := MACVerify(tampered, secret, tag)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("MACVerify accepted a tag for a tampered message")
	}

	badTag := append([]byte(nil), tag...)
	badTag[0] ^= 1
	ok, err = MACVerify(msg, secret, badTag)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("MACVerify accepted a tampered tag")
	}
}

func TestMACStepGIsReadIdempotent(t *testing.T) {
	secret := testKey32()
	xk, err := ExpandKey(secret)
	if err != nil {
		t.Fatal(err)
	}
	s, err := StartMAC(xk)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.StepA([]byte("part one ")); err != nil {
		t.Fatal(err)
	}

	mid := make([]byte, 8)
	if err := s.StepG(mid); err != nil {
		t.Fatal(err)
	}
	mid2 := make([]byte, 8)
	if err := s.StepG(mid2); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(mid, mid2) {
		t.Fatalf("StepG not stable across repeated calls: %x != %x", mid, mid2)
	}

	if err := s.StepA([]byte("part two")); err != nil {
		t.Fatal(err)
	}
	final := make([]byte, 8)
	if err := s.StepG(final); err != nil {
		t.Fatal(err)
	}

	want, err := MAC([]byte("part one part two"), secret)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(final, want) {
		t.Fatalf("StepG after interleaved StepA/StepG = %x, want %x", final, want)
	}
}

func TestMACStepG2Truncates(t *testing.T) {
	secret := testKey32()
	xk, err := ExpandKey(secret)
	if err != nil {
		t.Fatal(err)
	}
	s, err := StartMAC(xk)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.StepA([]byte("truncate me")); err != nil {
		t.Fatal(err)
	}

	full := make([]byte, 8)
	if err := s.StepG(full); err != nil {
		t.Fatal(err)
	}
	short := make([]byte, 4)
	if err := s.StepG2(short, 4); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(short, full[:4]) {
		t.Fatalf("StepG2(4) = %x, want prefix of full tag %x", short, full)
	}
}

func TestMACEmptyMessage(t *testing.T) {
	secret := testKey32()
	tag, err := MAC(nil, secret)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := MACVerify(nil, secret, tag)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("MACVerify rejected the empty message's own tag")
	}
}
