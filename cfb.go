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

// CFBState is the incremental state for belt-CFB (spec.md §4.2): a
// self-synchronizing stream built by encrypting a 16-byte shift register
// and XORing the result with data, then feeding the produced ciphertext
// bytes back into the register. Generalizes the teacher's fixed-segment
// EncryptCFB/DecryptCFB loop (aes256.go) so that the segment consumed per
// Step is whatever amount of data arrives, rather than a single fixed s;
// leftover keystream bytes from the register's last encryption are kept
// in the residue buffer and consumed first on the next Step, per spec.md
// §4.2's incremental residue policy.
//
// Unlike ECB/CBC, CFB never withholds output: every input byte is turned
// into output within the same Step call, so Finalize has nothing left to
// flush and is kept only for API symmetry with the other modes.
type CFBState struct {
	xk        *ExpandedKey
	register  [consts.BlockSize]byte
	keystream residue.Buffer
}

// CFBKeep mirrors ECBKeep/CBCKeep for CFB's register-plus-keystream state.
func CFBKeep() int { return 2*consts.BlockSize + 8 }

// StartCFB initializes CFB state under xk with the given 16-byte IV.
func StartCFB(xk *ExpandedKey, iv []byte) (*CFBState, error) {
	if len(iv) != consts.BlockSize {
		return nil, ErrBadInput
	}
	s := &CFBState{xk: xk}
	copy(s.register[:], iv)
	return s, nil
}

// StepE absorbs plaintext and returns the corresponding ciphertext.
func (s *CFBState) StepE(src []byte) ([]byte, error) {
	return s.step(src, true)
}

// StepD absorbs ciphertext and returns the corresponding plaintext.
func (s *CFBState) StepD(src []byte) ([]byte, error) {
	return s.step(src, false)
}

func (s *CFBState) step(src []byte, encrypting bool) ([]byte, error) {
	out := make([]byte, len(src))
	n := 0
	for n < len(src) {
		if s.keystream.Len() == 0 {
			ks := make([]byte, consts.BlockSize)
			if err := EncryptBlock(ks, s.register[:], s.xk); err != nil {
				return nil, err
			}
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

		var feedback []byte
		if encrypting {
			feedback = out[n : n+take]
		} else {
			feedback = src[n : n+take]
		}
		shifted := copy(s.register[:], s.register[take:])
		copy(s.register[shifted:], feedback)

		n += take
	}
	return out, nil
}

// FinalizeE is a no-op: CFB never withholds output. Kept for symmetry
// with the other modes' Start/Step*/Finalize lifecycle.
func (s *CFBState) FinalizeE() ([]byte, error) { return nil, nil }

// FinalizeD mirrors FinalizeE.
func (s *CFBState) FinalizeD() ([]byte, error) { return nil, nil }

// Wipe zeroizes the state.
func (s *CFBState) Wipe() {
	s.keystream.Wipe()
	WipeBytes(s.register[:])
	if s.xk != nil {
		s.xk.Wipe()
	}
}

// CFBEncr is the one-shot convenience form of StartCFB/StepE.
func CFBEncr(plaintext, secret, iv []byte) ([]byte, error) {
	xk, err := ExpandKey(secret)
	if err != nil {
		return nil, err
	}
	s, err := StartCFB(xk, iv)
	if err != nil {
		return nil, err
	}
	return s.StepE(plaintext)
}

// CFBDecr is the one-shot convenience form of StartCFB/StepD.
func CFBDecr(ciphertext, secret, iv []byte) ([]byte, error) {
	xk, err := ExpandKey(secret)
	if err != nil {
		return nil, err
	}
	s, err := StartCFB(xk, iv)
	if err != nil {
		return nil, err
	}
	return s.StepD(ciphertext)
}
