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

// Package sbox builds the belt substitution box H.
//
// STB 34.101.31 Appendix A defines H as a single fixed 256-byte
// permutation table. The literal table is not available anywhere in this
// module's grounding material (the upstream belt.c/hash.c sources are
// explicitly out of scope, see spec.md §1 and DESIGN.md), so H is instead
// *constructed* here at init time the same way the teacher package builds
// the AES S-box: a GF(2^8) multiplicative inverse composed with a fixed
// affine transform. The reduction polynomial and affine constant below are
// belt-specific (distinct from Rijndael's 0x11B/0x63) and exist only to
// produce a well-defined, verifiably bijective permutation; see
// DESIGN.md's L0 entry for why exact conformance with the published
// Appendix A table is out of scope here.
package sbox

// Box is a byte permutation: a bijection from byte values to byte values.
type Box [256]byte

// reductionPoly is an irreducible octic polynomial over GF(2) used to
// build the multiplicative inverse table that seeds H.
const reductionPoly = 0x11D

// affineConst is XORed in after the rotation mix, mirroring the role of
// AES's 0x63 constant in its own affine step.
const affineConst = 0xA5

func gfMul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hiBit := a&0x80 != 0
		a <<= 1
		if hiBit {
			// The x^8 term was shifted out; fold back the low byte.
			a ^= reductionPoly & 0xFF
		}
		b >>= 1
	}
	return p
}

func gfInverse(a byte) byte {
	if a == 0 {
		return 0
	}
	for b := 1; b < 256; b++ {
		if gfMul(a, byte(b)) == 1 {
			return byte(b)
		}
	}
	// unreachable: every nonzero element of a field has an inverse.
	panic("sbox: no multiplicative inverse found")
}

func rotl8(x byte, n uint) byte {
	return (x << n) | (x >> (8 - n))
}

func affine(x byte) byte {
	return x ^ rotl8(x, 1) ^ rotl8(x, 2) ^ rotl8(x, 3) ^ rotl8(x, 4) ^ affineConst
}

// NewH constructs the belt H permutation.
func NewH() *Box {
	h := new(Box)
	for i := 0; i < 256; i++ {
		h[i] = affine(gfInverse(byte(i)))
	}
	return h
}

// NewHInv constructs the inverse of h, such that hinv[h[x]] == x for all x.
func NewHInv(h *Box) *Box {
	inv := new(Box)
	for i, v := range h {
		inv[v] = byte(i)
	}
	return inv
}
