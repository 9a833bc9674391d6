// Package bitseq holds messages as explicit sequences of bits.
//
// Bits are numbered from the start of the sequence and are big-endian within
// each byte: bit 0 is the most significant bit of the first byte. Bits past
// Len in the last byte are always zero.
package bitseq

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/zeebo/sha256trace/internal/consts"
)

// Seq is an ordered sequence of bits.
type Seq struct {
	buf []byte
	n   uint64
}

// FromBytes returns the bits of b, 8 per byte, in input order. The bytes are
// copied.
func FromBytes(b []byte) *Seq {
	return &Seq{
		buf: append([]byte(nil), b...),
		n:   8 * uint64(len(b)),
	}
}

// FromWords returns the bits of ws, 32 per word, big-endian.
func FromWords(ws []uint32) *Seq {
	buf := make([]byte, 4*len(ws))
	for i, w := range ws {
		binary.BigEndian.PutUint32(buf[4*i:], w)
	}
	return &Seq{buf: buf, n: 8 * uint64(len(buf))}
}

// Len returns the number of bits in the sequence.
func (s *Seq) Len() uint64 { return s.n }

// Bit returns the i-th bit as 0 or 1.
func (s *Seq) Bit(i uint64) uint8 {
	if i >= s.n {
		panic(fmt.Sprintf("bitseq: bit %d out of range [0, %d)", i, s.n))
	}
	return s.buf[i/8] >> (7 - i%8) & 1
}

// AppendBit appends the low bit of b.
func (s *Seq) AppendBit(b uint8) {
	if s.n%8 == 0 {
		s.buf = append(s.buf, 0)
	}
	if b&1 != 0 {
		s.buf[s.n/8] |= 0x80 >> (s.n % 8)
	}
	s.n++
}

// AppendUint64 appends v as exactly 64 bits, most significant first.
func (s *Seq) AppendUint64(v uint64) {
	for i := 63; i >= 0; i-- {
		s.AppendBit(uint8(v >> uint(i)))
	}
}

// Blocks returns how many complete 512-bit blocks the sequence holds.
func (s *Seq) Blocks() int { return int(s.n / consts.BlockBits) }

// Block returns the i-th 512-bit block. The returned array aliases the
// sequence.
func (s *Seq) Block(i int) *[consts.BlockLen]byte {
	if i < 0 || i >= s.Blocks() {
		panic(fmt.Sprintf("bitseq: block %d out of range [0, %d)", i, s.Blocks()))
	}
	return (*[consts.BlockLen]byte)(s.buf[i*consts.BlockLen : (i+1)*consts.BlockLen])
}

// Bytes interprets the sequence as a big-endian unsigned integer and encodes
// it. With width <= 0 the encoding is minimal: leading zero bytes are dropped
// and zero encodes as no bytes at all. With width > 0 the result is exactly
// width bytes, padded on the left with zeros. Bytes panics if the integer
// needs more than width bytes.
//
// A sequence whose length is not a multiple of 8 is right aligned, so its
// last bit becomes the least significant bit of the last byte.
func (s *Seq) Bytes(width int) []byte {
	raw := s.buf
	if shift := s.n % 8; shift != 0 {
		raw = make([]byte, len(s.buf))
		for i := uint64(0); i < s.n; i++ {
			pos := s.n - 1 - i
			raw[uint64(len(raw))-1-pos/8] |= s.Bit(i) << (pos % 8)
		}
	}

	trimmed := raw
	for len(trimmed) > 0 && trimmed[0] == 0 {
		trimmed = trimmed[1:]
	}

	if width <= 0 {
		return append([]byte(nil), trimmed...)
	}
	if len(trimmed) > width {
		panic(fmt.Sprintf("bitseq: value needs %d bytes, width is %d", len(trimmed), width))
	}

	out := make([]byte, width)
	copy(out[width-len(trimmed):], trimmed)
	return out
}

// String renders the bits as 0 and 1 characters, a space between bytes.
func (s *Seq) String() string {
	var b strings.Builder
	b.Grow(int(s.n + s.n/8))
	for i := uint64(0); i < s.n; i++ {
		if i > 0 && i%8 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('0' + s.Bit(i))
	}
	return b.String()
}
