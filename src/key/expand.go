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

// Package key implements belt key expansion (STB 34.101.31 §6.1).
package key

import (
	"encoding/binary"
	"errors"

	"github.com/stb34101/beltgo/src/consts"
)

// ErrInvalidKeySize is returned when the caller-supplied secret is not
// 16, 24, or 32 bytes long.
var ErrInvalidKeySize = errors.New("key: secret must be 16, 24, or 32 bytes")

// ExpandedKey is the 256-bit expanded key, represented as eight
// little-endian 32-bit words k0..k7 per spec.md §3/§4.1.
type ExpandedKey [consts.KeyWords]uint32

// Expand materializes a 256-bit ExpandedKey from a 128/192/256-bit secret.
//
// Per §6.1, shorter secrets are extended deterministically: a 16-byte
// secret u is doubled to u||u; a 24-byte secret u is extended to
// u||u[0:8]; a 32-byte secret passes through unchanged.
func Expand(secret []byte) (*ExpandedKey, error) {
	var full [consts.MaxKeySize]byte

	switch len(secret) {
	case consts.MinKeySize:
		copy(full[:consts.MinKeySize], secret)
		copy(full[consts.MinKeySize:], secret)
	case consts.MidKeySize:
		copy(full[:consts.MidKeySize], secret)
		copy(full[consts.MidKeySize:], secret[:consts.MaxKeySize-consts.MidKeySize])
	case consts.MaxKeySize:
		copy(full[:], secret)
	default:
		return nil, ErrInvalidKeySize
	}

	var xk ExpandedKey
	for i := range xk {
		xk[i] = binary.LittleEndian.Uint32(full[i*consts.WordSize:])
	}
	return &xk, nil
}

// Subkey returns the round subkey at cyclic position idx, selecting
// k[idx mod 8] per spec.md §4.1's cyclic round-subkey schedule.
func (xk *ExpandedKey) Subkey(idx int) uint32 {
	return xk[idx%consts.KeyWords]
}

// Wipe zeroes the expanded key in place.
func (xk *ExpandedKey) Wipe() {
	for i := range xk {
		xk[i] = 0
	}
}
