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

// Package galois implements GF(2^128) arithmetic used by belt-DWP's
// polynomial MAC and belt-MAC's CMAC-style subkey doubling.
//
// The reduction polynomial x^128+x^7+x^2+x+1 is, per spec.md §4.4, "the
// same as GCM" — Mul128 below is the textbook GHASH multiply
// (MSB-first bit order, reduction constant 0xE1 folded into the top byte),
// the same construction the teacher's own src/galois/galois.go uses for
// its (GF(2^8), block-sliced) Ghash, generalized here to a proper 128-bit
// field.
package galois

// XorBlocks XORs two 16-byte blocks into dst. dst may alias a or b.
func XorBlocks(dst, a, b *[16]byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

func bitAt(b *[16]byte, i int) byte {
	return (b[i/8] >> uint(7-i%8)) & 1
}

func shiftRight1(v *[16]byte) {
	var carry byte
	for i := 0; i < 16; i++ {
		next := v[i] & 1
		v[i] = (v[i] >> 1) | (carry << 7)
		carry = next
	}
}

// Mul128 computes x*y in GF(2^128) under the GCM reduction polynomial.
func Mul128(x, y [16]byte) [16]byte {
	var z, v [16]byte
	v = x
	for i := 0; i < 128; i++ {
		if bitAt(&y, i) == 1 {
			XorBlocks(&z, &z, &v)
		}
		lsb := v[15] & 1
		shiftRight1(&v)
		if lsb == 1 {
			v[0] ^= 0xE1
		}
	}
	return z
}

// Double returns 2*x in GF(2^128) under the same reduction polynomial,
// the subkey-doubling step used by CMAC-style constructions (belt-MAC's
// K1/K2 derivation in mac.go).
func Double(x [16]byte) [16]byte {
	var out [16]byte
	msb := x[0] & 0x80
	carry := byte(0)
	for i := 15; i >= 0; i-- {
		out[i] = (x[i] << 1) | carry
		carry = (x[i] >> 7) & 1
	}
	if msb != 0 {
		out[15] ^= 0x87
	}
	return out
}
