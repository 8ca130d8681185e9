// Package residue implements the small partial-block accumulator shared
// by every mode's incremental state (spec.md §3). How many bytes it holds
// between Step calls is set by each mode: CFB/CTR/DWP keep fewer than 16,
// MAC up to 16, hash fewer than 32, and ECB/CBC up to 31 (a held-back
// block plus a partial one, for ciphertext stealing).
//
// It generalizes the teacher's src/padding/padding.go Pad/UnPad
// function-type idiom (a small, single-purpose byte-buffer helper) into a
// stateful accumulator, since the residue here is read and refilled across
// many incremental Step calls rather than applied once.
package residue

// Buffer is a growable byte accumulator. Each mode enforces its own
// capacity invariant (spec.md §3); Buffer itself has no fixed bound.
type Buffer struct {
	b []byte
}

// Len returns the number of bytes currently held.
func (r *Buffer) Len() int { return len(r.b) }

// Bytes returns the bytes currently held. The slice is only valid until
// the next call to Append, Take, Reset, or Wipe.
func (r *Buffer) Bytes() []byte { return r.b }

// Append appends src to the residue.
func (r *Buffer) Append(src ...byte) {
	r.b = append(r.b, src...)
}

// Take removes and returns the first n bytes, shifting any remainder down
// to the front of the buffer. It panics if n exceeds Len, the same
// contract as a slice re-slice out of range.
func (r *Buffer) Take(n int) []byte {
	out := make([]byte, n)
	copy(out, r.b[:n])
	remaining := copy(r.b, r.b[n:])
	r.b = r.b[:remaining]
	return out
}

// Reset empties the buffer without releasing its backing array.
func (r *Buffer) Reset() { r.b = r.b[:0] }

// Wipe zeroes the backing array (spec.md §5's zeroization guidance) and
// empties the buffer.
func (r *Buffer) Wipe() {
	full := r.b[:cap(r.b)]
	for i := range full {
		full[i] = 0
	}
	r.b = r.b[:0]
}

// ZeroExtend copies src into dst and zero-fills the remainder of dst.
// len(dst) must be >= len(src).
func ZeroExtend(dst, src []byte) {
	n := copy(dst, src)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// BitPad copies src into dst, appends a single 0x80 marker byte, and
// zero-fills the rest — the "10*" bit-padding belt-MAC and belt-hash use
// to disambiguate a short final block from a full one. len(dst) must be
// > len(src); mirrors the teacher's src/padding Pad function-type idiom
// (ZeroPadding/PKCS7Padding) generalized to a fixed-width destination.
func BitPad(dst, src []byte) {
	n := copy(dst, src)
	dst[n] = 0x80
	for i := n + 1; i < len(dst); i++ {
		dst[i] = 0
	}
}
