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
	"github.com/stb34101/beltgo/src/galois"
	"github.com/stb34101/beltgo/src/residue"
)

// MACState is the incremental state for belt-MAC (spec.md §4.3): a
// CBC-MAC variant with a key-derived padding mask, grounded on the same
// doubling (galois.Double) used by CMAC over AES, generalized here to
// belt's 16-byte block.
//
// The chain only ever absorbs blocks known not to be the message's last
// one; the block that might be last is held in pending until either more
// data proves it isn't (and it is committed to the chain unmasked) or a
// Step* read (StepG/StepV and their …2 variants) computes the tag from a
// snapshot without touching chain/pending/total, satisfying the read-
// idempotence invariant of spec.md §4.3.
type MACState struct {
	xk      *ExpandedKey
	k1, k2  [consts.BlockSize]byte
	chain   [consts.BlockSize]byte
	pending residue.Buffer
	total   int
}

// MACKeep mirrors the confidentiality modes' Keep helpers.
func MACKeep() int { return 3*consts.BlockSize + 8 }

// StartMAC initializes MAC state under xk, deriving the two subkeys by
// doubling the encryption of an all-zero block.
func StartMAC(xk *ExpandedKey) (*MACState, error) {
	var zero, l [consts.BlockSize]byte
	if err := EncryptBlock(l[:], zero[:], xk); err != nil {
		return nil, err
	}
	s := &MACState{xk: xk}
	s.k1 = galois.Double(l)
	s.k2 = galois.Double(s.k1)
	return s, nil
}

// StepA absorbs message bytes.
func (s *MACState) StepA(src []byte) error {
	s.total += len(src)
	s.pending.Append(src...)
	for s.pending.Len() > consts.BlockSize {
		block := s.pending.Take(consts.BlockSize)
		if err := s.commit(block); err != nil {
			return err
		}
	}
	return nil
}

func (s *MACState) commit(block []byte) error {
	in := make([]byte, consts.BlockSize)
	copy(in, s.chain[:])
	xorBytes(in, block)
	return EncryptBlock(s.chain[:], in, s.xk)
}

// tagChain computes the final chain value for the currently held message
// without mutating state, so StepG/StepV never consume residue.
func (s *MACState) tagChain() ([consts.BlockSize]byte, error) {
	rem := s.pending.Bytes()
	last := make([]byte, consts.BlockSize)
	var mask [consts.BlockSize]byte
	if s.total > 0 && len(rem) == consts.BlockSize {
		copy(last, rem)
		mask = s.k1
	} else {
		residue.BitPad(last, rem)
		mask = s.k2
	}
	xorBytes(last, mask[:])
	xorBytes(last, s.chain[:])

	var out [consts.BlockSize]byte
	if err := EncryptBlock(out[:], last, s.xk); err != nil {
		return out, err
	}
	return out, nil
}

// StepG writes the full 8-byte tag to out.
func (s *MACState) StepG(out []byte) error {
	return s.StepG2(out, consts.MACTagSize)
}

// StepG2 writes the first outLen bytes (1..8) of the tag to out.
func (s *MACState) StepG2(out []byte, outLen int) error {
	if outLen < 1 || outLen > consts.MACTagSize || len(out) < outLen {
		return ErrBadInput
	}
	tc, err := s.tagChain()
	if err != nil {
		return err
	}
	copy(out, tc[:outLen])
	return nil
}

// StepV reports whether expected equals the full 8-byte tag, in constant
// time.
func (s *MACState) StepV(expected []byte) (bool, error) {
	return s.StepV2(expected, consts.MACTagSize)
}

// StepV2 reports whether expected equals the first outLen bytes of the
// tag, in constant time.
func (s *MACState) StepV2(expected []byte, outLen int) (bool, error) {
	if outLen < 1 || outLen > consts.MACTagSize || len(expected) != outLen {
		return false, ErrBadInput
	}
	got := make([]byte, outLen)
	if err := s.StepG2(got, outLen); err != nil {
		return false, err
	}
	return constantTimeEqual(got, expected), nil
}

// Wipe zeroizes the state.
func (s *MACState) Wipe() {
	s.pending.Wipe()
	WipeBytes(s.chain[:])
	WipeBytes(s.k1[:])
	WipeBytes(s.k2[:])
	if s.xk != nil {
		s.xk.Wipe()
	}
}

// MAC is the one-shot convenience form of StartMAC/StepA/StepG.
func MAC(data, secret []byte) ([]byte, error) {
	xk, err := ExpandKey(secret)
	if err != nil {
		return nil, err
	}
	s, err := StartMAC(xk)
	if err != nil {
		return nil, err
	}
	if err := s.StepA(data); err != nil {
		return nil, err
	}
	out := make([]byte, consts.MACTagSize)
	if err := s.StepG(out); err != nil {
		return nil, err
	}
	return out, nil
}

// MACVerify is the one-shot convenience form of StartMAC/StepA/StepV.
func MACVerify(data, secret, tag []byte) (bool, error) {
	xk, err := ExpandKey(secret)
	if err != nil {
		return false, err
	}
	s, err := StartMAC(xk)
	if err != nil {
		return false, err
	}
	if err := s.StepA(data); err != nil {
		return false, err
	}
	return s.StepV(tag)
}
