// Copyright (c) 2026 the beltgo authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package belt

import (
	"encoding/binary"

	"github.com/stb34101/beltgo/src/consts"
	"github.com/stb34101/beltgo/src/counter"
	"github.com/stb34101/beltgo/src/galois"
	"github.com/stb34101/beltgo/src/residue"
)

// DWPState is the incremental state for belt-DWP (spec.md §4.4):
// CTR-mode encryption (reusing the same counter/keystream-residue shape
// as CTRState) combined with a GF(2^128) polynomial MAC over
// AAD||CT||bitlen(AAD)||bitlen(CT), the construction spec.md says is
// "the same as GCM" — so the MAC half is built directly on
// src/galois.Mul128, the GHASH-style multiply also used in the teacher's
// GMAC, generalized from the teacher's byte-sliced GF(2^8) field to the
// standard 128-bit one.
type DWPState struct {
	xk        *ExpandedKey
	ctr       counter.Counter
	keystream residue.Buffer

	r       [consts.BlockSize]byte
	authKey [consts.BlockSize]byte
	t       [consts.BlockSize]byte
	macRes  residue.Buffer

	aadBits uint64
	ctBits  uint64
	started bool // true once any StepE/StepD/StepA has run; forbids further StepI
}

// DWPKeep mirrors the other modes' Keep helpers.
func DWPKeep() int { return 4*consts.BlockSize + 2*consts.BlockSize + 24 }

// StartDWP initializes DWP state under xk with a 16-byte IV, deriving the
// GF(2^128) multiplier r from an encrypted zero block and a distinct
// authentication key from the encrypted IV, following the same reserved-
// counter-position convention GCM uses for its J0: the keystream counter
// is started at iv+1, never at iv itself, so E(iv) (authKey) is never
// also produced as a CTR keystream block. Deriving authKey from E(iv)
// while letting the keystream begin at iv would let an attacker who
// recovers one keystream block (any known plaintext/ciphertext pair for
// the first block) recover authKey directly and forge tags.
func StartDWP(xk *ExpandedKey, iv []byte) (*DWPState, error) {
	if len(iv) != counter.Size {
		return nil, ErrBadInput
	}

	var zero [consts.BlockSize]byte
	var r, authKey [consts.BlockSize]byte
	if err := EncryptBlock(r[:], zero[:], xk); err != nil {
		return nil, err
	}
	if err := EncryptBlock(authKey[:], iv, xk); err != nil {
		return nil, err
	}

	ctr := counter.New(iv)
	ctr.Increment()
	s := &DWPState{xk: xk, ctr: ctr, r: r, authKey: authKey}
	return s, nil
}

// StepI absorbs associated data into the MAC. It must precede any
// StepE/StepD/StepA call (spec.md §4.8's AEAD state machine).
func (s *DWPState) StepI(aad []byte) error {
	if s.started {
		return ErrBadInput
	}
	s.aadBits += uint64(len(aad)) * 8
	s.absorb(aad)
	return nil
}

// absorb folds data into the running polynomial MAC accumulator 16 bytes
// at a time, holding any incomplete tail in macRes until more data (or
// Finalize's zero-padding) completes it.
func (s *DWPState) absorb(data []byte) {
	s.macRes.Append(data...)
	for s.macRes.Len() >= consts.BlockSize {
		block := s.macRes.Take(consts.BlockSize)
		s.foldBlock(block)
	}
}

func (s *DWPState) foldBlock(block []byte) {
	var x [consts.BlockSize]byte
	copy(x[:], block)
	galois.XorBlocks(&x, &x, &s.t)
	s.t = galois.Mul128(x, s.r)
}

// StepE encrypts plaintext in CTR mode. The resulting ciphertext is not
// automatically absorbed into the MAC; callers pass it to StepA (spec.md
// §4.4 explicitly separates the two so StepA may run interleaved with, or
// after, several StepE calls).
func (s *DWPState) StepE(src []byte) ([]byte, error) {
	s.started = true
	return s.ctrXOR(src)
}

// StepD decrypts ciphertext in CTR mode. Like StepE, the ciphertext (not
// the recovered plaintext) must be passed to StepA by the caller.
func (s *DWPState) StepD(src []byte) ([]byte, error) {
	s.started = true
	return s.ctrXOR(src)
}

func (s *DWPState) ctrXOR(src []byte) ([]byte, error) {
	out := make([]byte, len(src))
	n := 0
	for n < len(src) {
		if s.keystream.Len() == 0 {
			ks := make([]byte, consts.BlockSize)
			if err := EncryptBlock(ks, s.ctr.Bytes[:], s.xk); err != nil {
				return nil, err
			}
			s.ctr.Increment()
			s.keystream.Append(ks...)
		}
		take := len(src) - n
		if take > s.keystream.Len() {
			take = s.keystream.Len()
		}
		ks := s.keystream.Take(take)
		for i := 0; i < take; i++ {
			out[n+i] = src[n+i] ^ ks[i]
		}
		n += take
	}
	return out, nil
}

// StepA absorbs ciphertext bytes into the MAC.
func (s *DWPState) StepA(ct []byte) error {
	s.started = true
	s.ctBits += uint64(len(ct)) * 8
	s.absorb(ct)
	return nil
}

// tag computes the final 64-bit authentication tag from a snapshot of
// the accumulator, without mutating state.
func (s *DWPState) tag() [consts.DWPTagSize]byte {
	t := s.t
	rem := s.macRes.Bytes()
	if len(rem) > 0 {
		var x [consts.BlockSize]byte
		copy(x[:], rem)
		galois.XorBlocks(&x, &x, &t)
		t = galois.Mul128(x, s.r)
	}

	var lenBlock [consts.BlockSize]byte
	binary.BigEndian.PutUint64(lenBlock[0:8], s.aadBits)
	binary.BigEndian.PutUint64(lenBlock[8:16], s.ctBits)
	galois.XorBlocks(&lenBlock, &lenBlock, &t)
	t = galois.Mul128(lenBlock, s.r)

	galois.XorBlocks(&t, &t, &s.authKey)

	var out [consts.DWPTagSize]byte
	copy(out[:], t[:consts.DWPTagSize])
	return out
}

// StepG writes the 8-byte authentication tag to out.
func (s *DWPState) StepG(out []byte) error {
	if len(out) < consts.DWPTagSize {
		return ErrBadInput
	}
	tg := s.tag()
	copy(out, tg[:])
	return nil
}

// Verify reports whether expected matches the computed tag, in constant
// time, returning ErrBadMAC on mismatch.
func (s *DWPState) Verify(expected []byte) error {
	if len(expected) != consts.DWPTagSize {
		return ErrBadInput
	}
	tg := s.tag()
	if !constantTimeEqual(tg[:], expected) {
		return ErrBadMAC
	}
	return nil
}

// Wipe zeroizes the state.
func (s *DWPState) Wipe() {
	s.keystream.Wipe()
	s.macRes.Wipe()
	WipeBytes(s.ctr.Bytes[:])
	WipeBytes(s.t[:])
	WipeBytes(s.r[:])
	WipeBytes(s.authKey[:])
	if s.xk != nil {
		s.xk.Wipe()
	}
}

// DWPWrap is the one-shot convenience form: encrypts plaintext under
// secret/iv with aad authenticated, returning ciphertext||tag.
func DWPWrap(plaintext, aad, secret, iv []byte) ([]byte, error) {
	xk, err := ExpandKey(secret)
	if err != nil {
		return nil, err
	}
	s, err := StartDWP(xk, iv)
	if err != nil {
		return nil, err
	}
	if err := s.StepI(aad); err != nil {
		return nil, err
	}
	ct, err := s.StepE(plaintext)
	if err != nil {
		return nil, err
	}
	if err := s.StepA(ct); err != nil {
		return nil, err
	}
	tag := make([]byte, consts.DWPTagSize)
	if err := s.StepG(tag); err != nil {
		return nil, err
	}
	return append(ct, tag...), nil
}

// DWPUnwrap is the one-shot convenience form: verifies and decrypts
// ciphertext||tag under secret/iv/aad, returning ErrBadMAC on failure.
func DWPUnwrap(wrapped, aad, secret, iv []byte) ([]byte, error) {
	if len(wrapped) < consts.DWPTagSize {
		return nil, ErrBadInput
	}
	ct := wrapped[:len(wrapped)-consts.DWPTagSize]
	tag := wrapped[len(wrapped)-consts.DWPTagSize:]

	xk, err := ExpandKey(secret)
	if err != nil {
		return nil, err
	}
	s, err := StartDWP(xk, iv)
	if err != nil {
		return nil, err
	}
	if err := s.StepI(aad); err != nil {
		return nil, err
	}
	pt, err := s.StepD(ct)
	if err != nil {
		return nil, err
	}
	if err := s.StepA(ct); err != nil {
		return nil, err
	}
	if err := s.Verify(tag); err != nil {
		return nil, err
	}
	return pt, nil
}
