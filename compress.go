package sha256trace

import (
	"github.com/zeebo/sha256trace/internal/consts"
	"github.com/zeebo/sha256trace/internal/utils"
	"github.com/zeebo/sha256trace/internal/word"
)

// expand fills the message schedule for one block: the block's 16 words
// followed by 48 words derived from them.
func expand(block *[consts.BlockLen]byte, w *[consts.Rounds]uint32) {
	utils.BytesToWords(block, (*[16]uint32)(w[:16]))

	for i := 16; i < consts.Rounds; i++ {
		s0 := word.SmallSigma0(w[i-15])
		s1 := word.SmallSigma1(w[i-2])
		w[i] = word.Add(w[i-16], s0, w[i-7], s1)
	}
}

// compress runs the 64 rounds over one block's schedule and adds the result
// into state. When t is non-nil every round is reported to it as round blk.
func compress(state *[8]uint32, w *[consts.Rounds]uint32, t Tracer, blk int) {
	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for i := 0; i < consts.Rounds; i++ {
		s1 := word.BigSigma1(e)
		ch := word.Ch(e, f, g)
		temp1 := word.Add(h, s1, ch, consts.K[i], w[i])
		s0 := word.BigSigma0(a)
		maj := word.Maj(a, b, c)
		temp2 := word.Add(s0, maj)

		h, g, f, e = g, f, e, word.Add(d, temp1)
		d, c, b, a = c, b, a, word.Add(temp1, temp2)

		if t != nil {
			t.Round(blk, &Round{
				Index: i,
				K:     consts.K[i],
				W:     w[i],
				S1:    s1,
				Ch:    ch,
				Temp1: temp1,
				S0:    s0,
				Maj:   maj,
				Temp2: temp2,
				Vars:  [8]uint32{a, b, c, d, e, f, g, h},
			})
		}
	}

	state[0] = word.Add(state[0], a)
	state[1] = word.Add(state[1], b)
	state[2] = word.Add(state[2], c)
	state[3] = word.Add(state[3], d)
	state[4] = word.Add(state[4], e)
	state[5] = word.Add(state[5], f)
	state[6] = word.Add(state[6], g)
	state[7] = word.Add(state[7], h)
}
