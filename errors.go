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

import "errors"

// Sentinel errors corresponding to spec.md §6's flat, observable error
// taxonomy. Library code always returns one of these (or nil); it never
// panics or wraps an unrelated error, mirroring the teacher's own flat
// errors.New style in aes256.go and src/key/expand.go.
var (
	// ErrBadInput is returned for a null/short buffer, a length below a
	// mode's minimum, or an invalid key length.
	ErrBadInput = errors.New("belt: bad input")

	// ErrBadMAC is returned when DWP or HMAC verification fails.
	ErrBadMAC = errors.New("belt: bad mac")

	// ErrBadKeyToken is returned when KWP unwrap's integrity check fails.
	ErrBadKeyToken = errors.New("belt: bad key token")

	// ErrBadHash is returned when hash verification fails.
	ErrBadHash = errors.New("belt: bad hash")
)
