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

// ECBState is the incremental state for belt-ECB (spec.md §4.2).
//
// Whole blocks are encrypted/decrypted independently and emitted as soon
// as they are known not to be part of the final stealing pair; the last
// one or two blocks are held back until Finalize so that a short final
// block can be handled with ciphertext stealing (spec.md §3's "residue is
// flushed only at finalization" policy). Holding output back across Step
// calls is the one place this API departs from a strictly in-place C
// transform: FinalizeE/FinalizeD can return ciphertext covering plaintext
// bytes passed to an earlier StepE/StepD call, which is why Step returns
// newly available output instead of writing in place.
type ECBState struct {
	xk      *ExpandedKey
	pending residue.Buffer // holds up to one full block (16B) of plaintext/ciphertext not yet finalized, plus up to 15B of newer residue
	total   int
}

// ECBKeep reports the nominal size in bytes of an ECBState, for callers
// ported from the opaque caller-provided-storage model of spec.md §5.
func ECBKeep() int { return consts.BlockSize + 8 }

// StartECB initializes ECB encryption/decryption state under xk. The same
// state type and Step calls serve both directions.
func StartECB(xk *ExpandedKey) *ECBState {
	return &ECBState{xk: xk}
}

// StepE absorbs plaintext and returns any ciphertext that is now final
// (i.e. not part of a possible stealing pair with data yet to arrive).
func (s *ECBState) StepE(src []byte) ([]byte, error) {
	return s.step(src, true)
}

// StepD absorbs ciphertext and returns any plaintext that is now final.
func (s *ECBState) StepD(src []byte) ([]byte, error) {
	return s.step(src, false)
}

func (s *ECBState) step(src []byte, encrypting bool) ([]byte, error) {
	s.total += len(src)
	s.pending.Append(src...)

	var out []byte
	// Emit every full block except the most recent one: the newest full
	// block must stay in pending in case it ends up as the penultimate
	// block of a stealing pair at Finalize.
	for s.pending.Len() > consts.BlockSize && s.pending.Len()-consts.BlockSize >= consts.BlockSize {
		block := s.pending.Take(consts.BlockSize)
		dst := make([]byte, consts.BlockSize)
		if err := cryptBlock(dst, block, s.xk, encrypting); err != nil {
			return nil, err
		}
		out = append(out, dst...)
	}
	return out, nil
}

func cryptBlock(dst, src []byte, xk *ExpandedKey, encrypting bool) error {
	if encrypting {
		return EncryptBlock(dst, src, xk)
	}
	return DecryptBlock(dst, src, xk)
}

// FinalizeE flushes the remaining held-back block(s), applying CS3
// ciphertext stealing (spec.md §4.2; grounded on
// other_examples/03129375_mixcode-golib-cbccts__cbccts.go.go's CS3 branch)
// if the total message length was not a multiple of the block size.
func (s *ECBState) FinalizeE() ([]byte, error) {
	return s.finalize(true)
}

// FinalizeD is the inverse of FinalizeE.
func (s *ECBState) FinalizeD() ([]byte, error) {
	return s.finalize(false)
}

func (s *ECBState) finalize(encrypting bool) ([]byte, error) {
	defer s.pending.Wipe()

	if s.total < consts.BlockSize {
		return nil, ErrBadInput
	}

	rem := s.pending.Bytes()
	switch {
	case len(rem) == consts.BlockSize:
		out := make([]byte, consts.BlockSize)
		if err := cryptBlock(out, rem, s.xk, encrypting); err != nil {
			return nil, err
		}
		return out, nil
	case len(rem) > consts.BlockSize:
		full := rem[:consts.BlockSize]
		partial := rem[consts.BlockSize:]
		if encrypting {
			return ecbStealEncrypt(full, partial, s.xk)
		}
		return ecbStealDecrypt(full, partial, s.xk)
	default:
		// Between 1 and BlockSize-1 residual bytes with no preceding
		// held block: only possible when total == len(rem) < BlockSize,
		// already rejected above.
		return nil, ErrBadInput
	}
}

// ecbStealEncrypt implements ciphertext stealing for a chain-free block
// mode (spec.md §4.2/§6.4): the penultimate block's ciphertext tail is
// swapped into the final short block before it is re-encrypted, so the
// tail is recoverable from the re-encrypted block's plaintext alone
// without relying on any inter-block chaining value. Grounded on the
// reorder-and-truncate shape of
// other_examples/03129375_mixcode-golib-cbccts__cbccts.go.go's CS3
// branch, adapted from its CBC-chained form (where the XOR-with-IV
// already exposes the tail) to ECB's no-chain case.
func ecbStealEncrypt(full, partial []byte, xk *ExpandedKey) ([]byte, error) {
	ca := make([]byte, consts.BlockSize)
	if err := EncryptBlock(ca, full, xk); err != nil {
		return nil, err
	}

	r := len(partial)
	d := make([]byte, consts.BlockSize)
	copy(d, partial)
	copy(d[r:], ca[r:])

	cb := make([]byte, consts.BlockSize)
	if err := EncryptBlock(cb, d, xk); err != nil {
		return nil, err
	}

	out := make([]byte, consts.BlockSize+r)
	copy(out, cb)
	copy(out[consts.BlockSize:], ca[:r])
	return out, nil
}

// ecbStealDecrypt inverts ecbStealEncrypt.
func ecbStealDecrypt(cb, caTrunc []byte, xk *ExpandedKey) ([]byte, error) {
	d := make([]byte, consts.BlockSize)
	if err := DecryptBlock(d, cb, xk); err != nil {
		return nil, err
	}

	r := len(caTrunc)
	caFull := make([]byte, consts.BlockSize)
	copy(caFull, caTrunc)
	copy(caFull[r:], d[r:])

	full := make([]byte, consts.BlockSize)
	if err := DecryptBlock(full, caFull, xk); err != nil {
		return nil, err
	}

	out := make([]byte, consts.BlockSize+r)
	copy(out, full)
	copy(out[consts.BlockSize:], d[:r])
	return out, nil
}

// Wipe zeroizes the state (spec.md §5).
func (s *ECBState) Wipe() {
	s.pending.Wipe()
	if s.xk != nil {
		s.xk.Wipe()
	}
}

// ECBEncr is the one-shot convenience form of StartECB/StepE/FinalizeE.
func ECBEncr(plaintext []byte, secret []byte) ([]byte, error) {
	xk, err := ExpandKey(secret)
	if err != nil {
		return nil, err
	}
	s := StartECB(xk)
	head, err := s.StepE(plaintext)
	if err != nil {
		return nil, err
	}
	tail, err := s.FinalizeE()
	if err != nil {
		return nil, err
	}
	return append(head, tail...), nil
}

// ECBDecr is the one-shot convenience form of StartECB/StepD/FinalizeD.
func ECBDecr(ciphertext []byte, secret []byte) ([]byte, error) {
	xk, err := ExpandKey(secret)
	if err != nil {
		return nil, err
	}
	s := StartECB(xk)
	head, err := s.StepD(ciphertext)
	if err != nil {
		return nil, err
	}
	tail, err := s.FinalizeD()
	if err != nil {
		return nil, err
	}
	return append(head, tail...), nil
}
