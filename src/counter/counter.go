// Package counter implements the 128-bit little-endian block counter used
// by belt-CTR and belt-DWP (spec.md §4.2: "Counter increments by 1 on each
// block (little-endian, 128-bit wrap)").
//
// This widens the teacher's src/counter/counter.go (a COUNTER_SIZE-byte
// big-endian tail counter nested after a fixed nonce) to a full 128-bit
// little-endian counter, per spec.md's own description rather than the
// teacher's AES-CTR/GCM convention.
package counter

// Size is the byte width of the counter block.
const Size = 16

// Counter is a 128-bit little-endian counter block.
type Counter struct {
	Bytes [Size]byte
}

// New returns a Counter initialized from a 16-byte IV. The IV is copied;
// the caller's buffer is not retained.
func New(iv []byte) Counter {
	var c Counter
	copy(c.Bytes[:], iv)
	return c
}

// Increment adds 1 to the counter, little-endian, wrapping at 2^128.
func (c *Counter) Increment() {
	for i := 0; i < Size; i++ {
		c.Bytes[i]++
		if c.Bytes[i] != 0 {
			return
		}
	}
}
