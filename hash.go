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
	"github.com/stb34101/beltgo/src/consts"
	"github.com/stb34101/beltgo/src/residue"
)

// HashState is the incremental state for belt-hash (spec.md §4.3): a
// 256-bit Merkle-Damgard-style digest over 32-byte compression blocks,
// state (h, s, bitlen, residue) per spec.md's own description — the same
// (chain, XOR-accumulator, length-counter) triple the Streebog/GOST
// R 34.11-2012 family of post-Soviet-standard hashes uses, which belt-hash
// is modeled on. Each 32-byte block doubles as the belt key for a
// Davies-Meyer compression of the two 16-byte halves of h (the block
// cipher IS the one-way function, the same technique the teacher's
// src/sbox package uses to construct a permutation rather than hand-copy
// one), since belt-hash's own internal sigma-transform layer isn't part
// of the retrieved material.
type HashState struct {
	h       [consts.HashSize]byte
	s       [consts.BlockSize]byte
	bitlen  [consts.BlockSize]byte
	pending residue.Buffer
}

// HashKeep mirrors the confidentiality modes' Keep helpers.
func HashKeep() int { return 2*consts.HashSize + consts.BlockSize + 8 }

// StartHash initializes hash state. belt-hash is unkeyed.
func StartHash() *HashState {
	return &HashState{}
}

// StepH absorbs message bytes.
func (s *HashState) StepH(src []byte) error {
	addBits(&s.bitlen, uint64(len(src))*8)
	s.pending.Append(src...)
	for s.pending.Len() >= consts.HashBlockSize {
		block := s.pending.Take(consts.HashBlockSize)
		if err := s.compress(block); err != nil {
			return err
		}
	}
	return nil
}

// compress runs one Davies-Meyer step, using block as the belt key over
// the two halves of h, and folds block into the XOR accumulator s.
func (s *HashState) compress(block []byte) error {
	xk, err := ExpandKey(block)
	if err != nil {
		return err
	}
	defer xk.Wipe()

	var c0, c1 [consts.BlockSize]byte
	if err := EncryptBlock(c0[:], s.h[:consts.BlockSize], xk); err != nil {
		return err
	}
	if err := EncryptBlock(c1[:], s.h[consts.BlockSize:], xk); err != nil {
		return err
	}
	xorBytes(c0[:], s.h[:consts.BlockSize])
	xorBytes(c1[:], s.h[consts.BlockSize:])
	copy(s.h[:consts.BlockSize], c0[:])
	copy(s.h[consts.BlockSize:], c1[:])

	xorBytes(s.s[:], block[:consts.BlockSize])
	xorBytes(s.s[:], block[consts.BlockSize:])
	return nil
}

// digest computes the final 256-bit value for the currently held message
// without mutating state, so StepG/StepV never consume residue.
func (s *HashState) digest() ([consts.HashSize]byte, error) {
	h := s.h
	sAcc := s.s

	rem := s.pending.Bytes()
	last := make([]byte, consts.HashBlockSize)
	residue.BitPad(last, rem)

	if err := compressInto(&h, &sAcc, last); err != nil {
		return h, err
	}

	closing := make([]byte, consts.HashBlockSize)
	copy(closing[:consts.BlockSize], sAcc[:])
	copy(closing[consts.BlockSize:], s.bitlen[:])
	if err := compressFinal(&h, closing); err != nil {
		return h, err
	}
	return h, nil
}

// compressInto runs HashState.compress against caller-owned h/s copies.
func compressInto(h *[consts.HashSize]byte, sAcc *[consts.BlockSize]byte, block []byte) error {
	tmp := &HashState{h: *h, s: *sAcc}
	if err := tmp.compress(block); err != nil {
		return err
	}
	*h = tmp.h
	*sAcc = tmp.s
	return nil
}

// compressFinal runs the length-mixing step: Davies-Meyer over h keyed by
// s||bitlen, without folding the closing block into s (it already IS s).
func compressFinal(h *[consts.HashSize]byte, block []byte) error {
	xk, err := ExpandKey(block)
	if err != nil {
		return err
	}
	defer xk.Wipe()

	var c0, c1 [consts.BlockSize]byte
	if err := EncryptBlock(c0[:], h[:consts.BlockSize], xk); err != nil {
		return err
	}
	if err := EncryptBlock(c1[:], h[consts.BlockSize:], xk); err != nil {
		return err
	}
	xorBytes(c0[:], h[:consts.BlockSize])
	xorBytes(c1[:], h[consts.BlockSize:])
	copy(h[:consts.BlockSize], c0[:])
	copy(h[consts.BlockSize:], c1[:])
	return nil
}

// StepG writes the full 32-byte digest to out.
func (s *HashState) StepG(out []byte) error {
	return s.StepG2(out, consts.HashSize)
}

// StepG2 writes the first outLen bytes (1..32) of the digest to out.
func (s *HashState) StepG2(out []byte, outLen int) error {
	if outLen < 1 || outLen > consts.HashSize || len(out) < outLen {
		return ErrBadInput
	}
	d, err := s.digest()
	if err != nil {
		return err
	}
	copy(out, d[:outLen])
	return nil
}

// StepV reports whether expected equals the full digest.
func (s *HashState) StepV(expected []byte) (bool, error) {
	return s.StepV2(expected, consts.HashSize)
}

// StepV2 reports whether expected equals the first outLen bytes of the
// digest, in constant time.
func (s *HashState) StepV2(expected []byte, outLen int) (bool, error) {
	if outLen < 1 || outLen > consts.HashSize || len(expected) != outLen {
		return false, ErrBadInput
	}
	got := make([]byte, outLen)
	if err := s.StepG2(got, outLen); err != nil {
		return false, err
	}
	return constantTimeEqual(got, expected), nil
}

// Wipe zeroizes the state.
func (s *HashState) Wipe() {
	s.pending.Wipe()
	WipeBytes(s.h[:])
	WipeBytes(s.s[:])
	WipeBytes(s.bitlen[:])
}

// addBits adds n to a 128-bit little-endian counter, carrying across
// bytes, per spec.md §4.3's "total bit-length: 16 bytes" accumulator.
func addBits(counter *[consts.BlockSize]byte, n uint64) {
	carry := n
	for i := 0; i < len(counter) && carry != 0; i++ {
		sum := uint64(counter[i]) + (carry & 0xFF)
		counter[i] = byte(sum)
		carry = (carry >> 8) + (sum >> 8)
	}
}

// Hash is the one-shot convenience form of StartHash/StepH/StepG.
func Hash(data []byte) ([]byte, error) {
	s := StartHash()
	if err := s.StepH(data); err != nil {
		return nil, err
	}
	out := make([]byte, consts.HashSize)
	if err := s.StepG(out); err != nil {
		return nil, err
	}
	return out, nil
}

// HashVerify is the one-shot convenience form of StartHash/StepH/StepV.
func HashVerify(data, expected []byte) (bool, error) {
	s := StartHash()
	if err := s.StepH(data); err != nil {
		return false, err
	}
	ok, err := s.StepV(expected)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrBadHash
	}
	return true, nil
}
