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

// KWPWrap wraps key together with an optional 16-byte header (spec.md
// §4.5): header, or sixteen zero bytes if header is nil, is appended to
// form a buffer of length >= 32, which WBL then transforms in place. The
// header round-trips as the transformed buffer's trailing 128 bits and is
// what Unwrap checks for integrity. key must be at least 16 bytes long and
// a multiple of 16 bytes, since WBL only accepts whole belt blocks; any
// other key length returns ErrBadInput.
func KWPWrap(key, header, secret []byte) ([]byte, error) {
	if len(key) < consts.KWPMinSize {
		return nil, ErrBadInput
	}
	hdr, err := normalizeHeader(header)
	if err != nil {
		return nil, err
	}
	xk, err := ExpandKey(secret)
	if err != nil {
		return nil, err
	}
	defer xk.Wipe()

	buf := make([]byte, len(key)+consts.BlockSize)
	copy(buf, key)
	copy(buf[len(key):], hdr)

	if err := wblTransform(buf, xk); err != nil {
		return nil, err
	}
	return buf, nil
}

// KWPUnwrap inverts KWPWrap and checks the trailing 128 bits against
// header (or against zero if header is nil), returning ErrBadKeyToken on
// mismatch without returning the unwrapped key (spec.md §7: a failed
// verification must not leak plaintext).
func KWPUnwrap(wrapped, header, secret []byte) ([]byte, error) {
	key, gotHdr, err := kwpUnwrap(wrapped, secret)
	if err != nil {
		return nil, err
	}
	hdr, err := normalizeHeader(header)
	if err != nil {
		return nil, err
	}
	if !constantTimeEqual(gotHdr, hdr) {
		return nil, ErrBadKeyToken
	}
	return key, nil
}

// KWPUnwrap2 inverts KWPWrap without checking the trailing header against
// an expected value, instead returning it to the caller — the StepD2
// shape spec.md's KWP surface exposes alongside the header-checking
// StepD.
func KWPUnwrap2(wrapped, secret []byte) (key, header []byte, err error) {
	return kwpUnwrap(wrapped, secret)
}

func kwpUnwrap(wrapped, secret []byte) (key, header []byte, err error) {
	if len(wrapped) < 2*consts.BlockSize || len(wrapped)%consts.BlockSize != 0 {
		return nil, nil, ErrBadInput
	}
	xk, err := ExpandKey(secret)
	if err != nil {
		return nil, nil, err
	}
	defer xk.Wipe()

	buf := make([]byte, len(wrapped))
	copy(buf, wrapped)
	if err := wblInverse(buf, xk); err != nil {
		return nil, nil, err
	}

	split := len(buf) - consts.BlockSize
	key = buf[:split]
	header = buf[split:]
	return key, header, nil
}

func normalizeHeader(header []byte) ([]byte, error) {
	if header == nil {
		return make([]byte, consts.BlockSize), nil
	}
	if len(header) != consts.BlockSize {
		return nil, ErrBadInput
	}
	return header, nil
}
