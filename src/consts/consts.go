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

// Package consts defines constant sizes used throughout the belt
// implementation.
package consts

const (
	// BlockSize is the size in bytes of a belt block.
	BlockSize = 16

	// WordSize is the size in bytes of a belt word.
	WordSize = 4

	// WordsPerBlock is the number of 32-bit words in a block.
	WordsPerBlock = BlockSize / WordSize

	// KeySize is the size in bytes of the expanded key (always 256 bits,
	// regardless of the 128/192/256-bit secret it was expanded from).
	KeySize = 32

	// KeyWords is the number of 32-bit words in an expanded key.
	KeyWords = KeySize / WordSize

	// Rounds is the number of belt block cipher rounds.
	Rounds = 8

	// SubkeysPerRound is the number of round subkeys consumed per round.
	SubkeysPerRound = 7

	// MinKeySize and MaxKeySize bound the caller-supplied secret length
	// accepted by ExpandKey (128/192/256 bits).
	MinKeySize = 16
	MidKeySize = 24
	MaxKeySize = 32

	// MACTagSize is the full belt-MAC tag size; StepG2 may truncate to
	// any length in [1, MACTagSize].
	MACTagSize = 8

	// HashSize is the belt-hash digest size; StepG2 may truncate to any
	// length in [1, HashSize]. belt-HMAC shares this bound.
	HashSize = 32

	// HashBlockSize is the size of one belt-hash compression input and
	// the block size used by belt-HMAC's ipad/opad construction.
	HashBlockSize = 32

	// DWPTagSize is the belt-DWP authentication tag size.
	DWPTagSize = 8

	// KWPMinSize is the minimum plaintext key length accepted by KWP.
	KWPMinSize = 16

	// KRPLevelSize is the size of the KRP level descriptor L.
	KRPLevelSize = 12

	// KRPHeaderSize is the size of the KRP header h.
	KRPHeaderSize = 16
)
