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
	"encoding/binary"

	"github.com/stb34101/beltgo/src/consts"
	"github.com/stb34101/beltgo/src/key"
	"github.com/stb34101/beltgo/src/sbox"
)

// ExpandedKey is the 256-bit expanded key used by every belt primitive.
type ExpandedKey = key.ExpandedKey

var (
	beltH    = sbox.NewH()
	beltHInv = sbox.NewHInv(beltH)
)

// ExpandKey materializes an ExpandedKey from a 128/192/256-bit secret, per
// STB 34.101.31 §6.1 (spec.md §4.1).
func ExpandKey(secret []byte) (*ExpandedKey, error) {
	xk, err := key.Expand(secret)
	if err != nil {
		return nil, ErrBadInput
	}
	return xk, nil
}

func rotl32(x uint32, n uint) uint32 {
	return (x << n) | (x >> (32 - n))
}

// g substitutes each byte of u through h and rotates the result left by
// rot bits — the G_r transform of spec.md §4.1.
func g(u uint32, rot uint, h *sbox.Box) uint32 {
	s := uint32(h[byte(u)]) |
		uint32(h[byte(u>>8)])<<8 |
		uint32(h[byte(u>>16)])<<16 |
		uint32(h[byte(u>>24)])<<24
	return rotl32(s, rot)
}

// roundSubkeys returns the seven subkeys consumed by round i (1-indexed),
// selected cyclically per spec.md §4.1: "round i uses (k_{7i mod 8},
// k_{(7i+1) mod 8}, …)".
func roundSubkeys(xk *ExpandedKey, i int) (k [consts.SubkeysPerRound]uint32) {
	base := consts.SubkeysPerRound * i
	for j := range k {
		k[j] = xk.Subkey(base + j)
	}
	return
}

// encryptBlockWords runs the eight-round belt round transform in place on
// the four words of a block (spec.md §4.1's G_r/mod-2^32 round schedule).
func encryptBlockWords(w *[4]uint32, xk *ExpandedKey) {
	for i := 1; i <= consts.Rounds; i++ {
		a, b, c, d := w[0], w[1], w[2], w[3]
		k := roundSubkeys(xk, i)

		b ^= g(a+k[0], 5, beltH)
		c ^= g(d+k[1], 21, beltH)
		a -= g(b+k[2], 13, beltH)
		e := g(b+c+k[3], 21, beltH) ^ uint32(i)
		b += e
		c -= e
		d += g(c+k[4], 13, beltH)
		b ^= g(a+k[5], 21, beltH)
		c ^= g(d+k[6], 5, beltH)

		w[0], w[1], w[2], w[3] = b, d, a, c
	}
}

// decryptBlockWords is the exact inverse of encryptBlockWords.
func decryptBlockWords(w *[4]uint32, xk *ExpandedKey) {
	for i := consts.Rounds; i >= 1; i-- {
		b, d, a, c := w[0], w[1], w[2], w[3]
		k := roundSubkeys(xk, i)

		c ^= g(d+k[6], 5, beltH)
		b ^= g(a+k[5], 21, beltH)
		d -= g(c+k[4], 13, beltH)
		e := g(b+c+k[3], 21, beltH) ^ uint32(i)
		b -= e
		c += e
		a += g(b+k[2], 13, beltH)
		c ^= g(d+k[1], 21, beltH)
		b ^= g(a+k[0], 5, beltH)

		w[0], w[1], w[2], w[3] = a, b, c, d
	}
}

func blockToWords(w *[4]uint32, block []byte) {
	for i := range w {
		w[i] = binary.LittleEndian.Uint32(block[i*consts.WordSize:])
	}
}

func wordsToBlock(block []byte, w *[4]uint32) {
	for i := range w {
		binary.LittleEndian.PutUint32(block[i*consts.WordSize:], w[i])
	}
}

// EncryptBlock encrypts one 16-byte block under xk. dst and src may alias.
func EncryptBlock(dst, src []byte, xk *ExpandedKey) error {
	if len(src) != consts.BlockSize || len(dst) != consts.BlockSize {
		return ErrBadInput
	}
	var w [4]uint32
	blockToWords(&w, src)
	encryptBlockWords(&w, xk)
	wordsToBlock(dst, &w)
	return nil
}

// DecryptBlock decrypts one 16-byte block under xk. dst and src may alias.
func DecryptBlock(dst, src []byte, xk *ExpandedKey) error {
	if len(src) != consts.BlockSize || len(dst) != consts.BlockSize {
		return ErrBadInput
	}
	var w [4]uint32
	blockToWords(&w, src)
	decryptBlockWords(&w, xk)
	wordsToBlock(dst, &w)
	return nil
}
