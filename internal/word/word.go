// Package word implements the 32-bit word operations SHA-256 is built from.
//
// Every function takes and returns uint32 so that rotation, shifting and
// complement can never see more or fewer than 32 bits.
package word

import "math/bits"

// Rotr rotates x right by n bits. Bits shifted out on the right reappear on
// the left.
func Rotr(x uint32, n int) uint32 { return bits.RotateLeft32(x, -n) }

// Shr shifts x right by n bits, filling with zeros. Bits shifted out are
// discarded.
func Shr(x uint32, n int) uint32 { return x >> uint(n) }

// Not is the bitwise complement of x within 32 bits.
func Not(x uint32) uint32 { return ^x }

// Add sums xs modulo 2^32.
func Add(xs ...uint32) (s uint32) {
	for _, x := range xs {
		s += x
	}
	return s
}

// Ch chooses, bit by bit, f where e is set and g where it is not.
func Ch(e, f, g uint32) uint32 { return (e & f) ^ (Not(e) & g) }

// Maj is the bitwise majority of a, b and c.
func Maj(a, b, c uint32) uint32 { return (a & b) ^ (a & c) ^ (b & c) }

// BigSigma0 is Σ0 from the compression rounds.
func BigSigma0(a uint32) uint32 { return Rotr(a, 2) ^ Rotr(a, 13) ^ Rotr(a, 22) }

// BigSigma1 is Σ1 from the compression rounds.
func BigSigma1(e uint32) uint32 { return Rotr(e, 6) ^ Rotr(e, 11) ^ Rotr(e, 25) }

// SmallSigma0 is σ0 from the message schedule.
func SmallSigma0(x uint32) uint32 { return Rotr(x, 7) ^ Rotr(x, 18) ^ Shr(x, 3) }

// SmallSigma1 is σ1 from the message schedule.
func SmallSigma1(x uint32) uint32 { return Rotr(x, 17) ^ Rotr(x, 19) ^ Shr(x, 10) }
