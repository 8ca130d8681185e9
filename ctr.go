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
	"github.com/stb34101/beltgo/src/counter"
	"github.com/stb34101/beltgo/src/residue"
)

// CTRState is the incremental state for belt-CTR (spec.md §4.2): a
// keystream generated by encrypting a 128-bit little-endian counter,
// XORed with data. Structured like CFBState (keystream residue retained
// across Step calls) but advances a counter instead of feeding ciphertext
// back into a register, grounded on the teacher's src/counter package
// generalized to the full-width counter spec.md describes.
type CTRState struct {
	xk        *ExpandedKey
	ctr       counter.Counter
	keystream residue.Buffer
}

// CTRKeep mirrors the other modes' Keep helpers.
func CTRKeep() int { return 2*consts.BlockSize + 8 }

// StartCTR initializes CTR state under xk with the given 16-byte IV.
func StartCTR(xk *ExpandedKey, iv []byte) (*CTRState, error) {
	if len(iv) != counter.Size {
		return nil, ErrBadInput
	}
	return &CTRState{xk: xk, ctr: counter.New(iv)}, nil
}

// StepE absorbs plaintext and returns the corresponding ciphertext.
func (s *CTRState) StepE(src []byte) ([]byte, error) { return s.step(src) }

// StepD absorbs ciphertext and returns the corresponding plaintext. CTR
// is its own inverse since both directions just XOR with the keystream.
func (s *CTRState) StepD(src []byte) ([]byte, error) { return s.step(src) }

func (s *CTRState) step(src []byte) ([]byte, error) {
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

// FinalizeE is a no-op: CTR, like CFB, never withholds output.
func (s *CTRState) FinalizeE() ([]byte, error) { return nil, nil }

// FinalizeD mirrors FinalizeE.
func (s *CTRState) FinalizeD() ([]byte, error) { return nil, nil }

// Wipe zeroizes the state.
func (s *CTRState) Wipe() {
	s.keystream.Wipe()
	WipeBytes(s.ctr.Bytes[:])
	if s.xk != nil {
		s.xk.Wipe()
	}
}

// CTREncr is the one-shot convenience form of StartCTR/StepE.
func CTREncr(plaintext, secret, iv []byte) ([]byte, error) {
	xk, err := ExpandKey(secret)
	if err != nil {
		return nil, err
	}
	s, err := StartCTR(xk, iv)
	if err != nil {
		return nil, err
	}
	return s.StepE(plaintext)
}

// CTRDecr is the one-shot convenience form of StartCTR/StepD.
func CTRDecr(ciphertext, secret, iv []byte) ([]byte, error) {
	xk, err := ExpandKey(secret)
	if err != nil {
		return nil, err
	}
	s, err := StartCTR(xk, iv)
	if err != nil {
		return nil, err
	}
	return s.StepD(ciphertext)
}
