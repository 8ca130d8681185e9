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

import "crypto/subtle"

// xorBytes XORs src into dst in place, dst[i] ^= src[i] for i < min(len).
// Grounded on the teacher's src/galois/galois.go GxorBlocks, adapted to
// write in place rather than allocate a new slice per call.
func xorBytes(dst, src []byte) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] ^= src[i]
	}
}

// constantTimeEqual reports whether a and b are equal, in constant time
// with respect to their contents (spec.md §5's constant-time discipline
// for StepV/StepV2 and the ERR_BAD_MAC/ERR_BAD_KEYTOKEN decisions).
func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// WipeBytes sets every byte of b to 0x00, the shared zeroization helper
// the CBC, CFB, CTR, DWP, hash, HMAC and MAC Wipe methods use to clear
// their state buffers (spec.md §5).
// Grounded on the teacher's AES256.ClearKey (aes256.go), which zeroes its
// Key and expandedKey fields the same way; this generalizes that single
// hand-rolled loop into one helper every Wipe method here calls instead
// of repeating it per field.
func WipeBytes(b []byte) {
	for i := range b {
		b[i] = 0x00
	}
}
