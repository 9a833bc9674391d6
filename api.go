// Package sha256trace computes SHA-256 digests in a form where every
// intermediate value can be observed.
//
// The message is held as an explicit bit sequence, padded, split into
// 512-bit blocks, and each block is expanded and compressed with plain
// 32-bit words. A Tracer can be attached to watch each of those steps. The
// package favors clarity over speed and is not a replacement for
// crypto/sha256.
package sha256trace

import "github.com/zeebo/sha256trace/internal/consts"

// Size is the size of a SHA-256 digest in bytes.
const Size = consts.Size

// BlockSize is the size of a SHA-256 block in bytes.
const BlockSize = consts.BlockLen

// Sum256 returns the SHA-256 digest of data. It is safe to call from
// multiple goroutines.
func Sum256(data []byte) [Size]byte {
	var h hasher
	return h.sum(data)
}

// Digest returns the SHA-256 digest of data as a slice of Size bytes.
func Digest(data []byte) []byte {
	sum := Sum256(data)
	return sum[:]
}

// SumTrace returns the SHA-256 digest of data, reporting every intermediate
// value to t. A nil t behaves like Sum256.
func SumTrace(data []byte, t Tracer) [Size]byte {
	h := hasher{t: t}
	return h.sum(data)
}
