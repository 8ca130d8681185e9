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

// krpConst is the fixed 20-byte domain-separation constant padded into
// the KRP derivation input (spec.md §4.6: "form a 48-byte input
// L || h || const"). STB 34.101.31's own literal constant bytes are not
// part of the retrieved material, so this is a fixed, clearly-labeled
// stand-in rather than a guess at the standard's value.
var krpConst = [...]byte{
	0x42, 0x45, 0x4C, 0x54, 0x2D, 0x4B, 0x52, 0x50, 0x2D, 0x43,
	0x4F, 0x4E, 0x53, 0x54, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05,
}

const krpInputSize = consts.KRPLevelSize + consts.KRPHeaderSize + len(krpConst)

// KRPDerive diversifies master into a derived key of length outLen
// (16, 24, or 32), per spec.md §4.6: the 48-byte input L||h||const is
// belt-encrypted under master in ECB with stealing (here reusing
// StartECB/StepE/FinalizeE directly, since 48 bytes is an exact multiple
// of the block size and so never actually triggers the stealing branch),
// truncated to outLen.
func KRPDerive(master, level, header []byte, outLen int) ([]byte, error) {
	if len(level) != consts.KRPLevelSize || len(header) != consts.KRPHeaderSize {
		return nil, ErrBadInput
	}
	if outLen != consts.MinKeySize && outLen != consts.MidKeySize && outLen != consts.MaxKeySize {
		return nil, ErrBadInput
	}

	xk, err := ExpandKey(master)
	if err != nil {
		return nil, err
	}

	input := make([]byte, 0, krpInputSize)
	input = append(input, level...)
	input = append(input, header...)
	input = append(input, krpConst[:]...)

	s := StartECB(xk)
	head, err := s.StepE(input)
	if err != nil {
		return nil, err
	}
	tail, err := s.FinalizeE()
	if err != nil {
		return nil, err
	}
	out := append(head, tail...)
	return out[:outLen], nil
}
