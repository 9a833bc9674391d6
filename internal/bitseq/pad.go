package bitseq

import "github.com/zeebo/sha256trace/internal/consts"

// PaddedLen returns the length in bits of a message of l bits after padding:
// the smallest multiple of 512 that fits l bits, the 1 bit, and the 64-bit
// length field.
func PaddedLen(l uint64) uint64 {
	const need = 1 + consts.LengthBits
	return (l + need + consts.BlockBits - 1) / consts.BlockBits * consts.BlockBits
}

// Pad returns a new sequence holding s followed by a single 1 bit, the fewest
// 0 bits that make the length 64 short of a multiple of 512, and the length of
// s in bits as a 64-bit big-endian integer. s is not modified.
func Pad(s *Seq) *Seq {
	l := s.n

	p := &Seq{
		buf: make([]byte, len(s.buf), PaddedLen(l)/8),
		n:   l,
	}
	copy(p.buf, s.buf)

	p.AppendBit(1)
	for (p.n+consts.LengthBits)%consts.BlockBits != 0 {
		p.AppendBit(0)
	}
	p.AppendUint64(l)

	return p
}
