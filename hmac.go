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

import "github.com/stb34101/beltgo/src/consts"

const hmacBlockSize = consts.HashBlockSize

// HMACState is the incremental state for belt-HMAC (STB 34.101.47,
// spec.md §4.7): the standard HMAC construction over belt-hash, with K'
// derived from the key (hashed down if longer than the block size, zero-
// padded otherwise) and the usual ipad/opad masks. The inner hash is fed
// ipad||K' at Start and message bytes at each StepA; StepG/StepG2/StepV/
// StepV2 read the inner digest via HashState's own non-mutating digest()
// and fold it into a fresh outer hash, so — matching §4.3's incrementality
// rule, which §4.7 says this API mirrors — reading the tag never
// disturbs state and further StepA calls continue the same running MAC.
type HMACState struct {
	kPrime [hmacBlockSize]byte
	inner  *HashState
}

// HMACKeep mirrors the other modes' Keep helpers.
func HMACKeep() int { return hmacBlockSize + HashKeep() }

// StartHMAC initializes HMAC state under key (any length).
func StartHMAC(key []byte) (*HMACState, error) {
	var kPrime [hmacBlockSize]byte
	if len(key) > hmacBlockSize {
		d, err := Hash(key)
		if err != nil {
			return nil, err
		}
		copy(kPrime[:], d)
	} else {
		copy(kPrime[:], key)
	}

	s := &HMACState{kPrime: kPrime, inner: StartHash()}
	ipad := padXor(kPrime, 0x36)
	if err := s.inner.StepH(ipad[:]); err != nil {
		return nil, err
	}
	return s, nil
}

// StepA absorbs message bytes.
func (s *HMACState) StepA(src []byte) error {
	return s.inner.StepH(src)
}

// StepG writes the full 32-byte tag to out.
func (s *HMACState) StepG(out []byte) error {
	return s.StepG2(out, consts.HashSize)
}

// StepG2 writes the first outLen bytes (1..32) of the tag to out.
func (s *HMACState) StepG2(out []byte, outLen int) error {
	if outLen < 1 || outLen > consts.HashSize || len(out) < outLen {
		return ErrBadInput
	}
	inner, err := s.inner.digest()
	if err != nil {
		return err
	}

	outer := StartHash()
	opad := padXor(s.kPrime, 0x5C)
	if err := outer.StepH(opad[:]); err != nil {
		return err
	}
	if err := outer.StepH(inner[:]); err != nil {
		return err
	}
	final, err := outer.digest()
	if err != nil {
		return err
	}
	copy(out, final[:outLen])
	return nil
}

// StepV reports whether expected equals the full tag.
func (s *HMACState) StepV(expected []byte) (bool, error) {
	return s.StepV2(expected, consts.HashSize)
}

// StepV2 reports whether expected equals the first outLen bytes of the
// tag, in constant time.
func (s *HMACState) StepV2(expected []byte, outLen int) (bool, error) {
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
func (s *HMACState) Wipe() {
	WipeBytes(s.kPrime[:])
	if s.inner != nil {
		s.inner.Wipe()
	}
}

func padXor(kPrime [hmacBlockSize]byte, b byte) [hmacBlockSize]byte {
	var out [hmacBlockSize]byte
	for i := range out {
		out[i] = kPrime[i] ^ b
	}
	return out
}

// HMACTag is the one-shot convenience form of StartHMAC/StepA/StepG.
func HMACTag(data, key []byte) ([]byte, error) {
	s, err := StartHMAC(key)
	if err != nil {
		return nil, err
	}
	if err := s.StepA(data); err != nil {
		return nil, err
	}
	out := make([]byte, consts.HashSize)
	if err := s.StepG(out); err != nil {
		return nil, err
	}
	return out, nil
}

// HMACVerify is the one-shot convenience form of StartHMAC/StepA/StepV.
func HMACVerify(data, key, tag []byte) (bool, error) {
	s, err := StartHMAC(key)
	if err != nil {
		return false, err
	}
	if err := s.StepA(data); err != nil {
		return false, err
	}
	ok, err := s.StepV(tag)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrBadMAC
	}
	return true, nil
}
