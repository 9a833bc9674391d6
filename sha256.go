package sha256trace

import (
	"github.com/zeebo/sha256trace/internal/bitseq"
	"github.com/zeebo/sha256trace/internal/consts"
)

//
// hasher contains state for one sha256 computation
//

type hasher struct {
	state [8]uint32
	w     [consts.Rounds]uint32
	t     Tracer
}

func (a *hasher) sum(data []byte) (out [consts.Size]byte) {
	a.state = consts.IV

	msg := bitseq.FromBytes(data)
	padded := bitseq.Pad(msg)

	if a.t != nil {
		a.t.Message(msg.String(), msg.Len(), padded.Bytes(int(padded.Len()/8)))
	}

	for i := 0; i < padded.Blocks(); i++ {
		expand(padded.Block(i), &a.w)
		if a.t != nil {
			a.t.Schedule(i, &a.w)
		}

		compress(&a.state, &a.w, a.t, i)
		if a.t != nil {
			a.t.State(i, &a.state)
		}
	}

	a.assemble(&out)
	return out
}

//
// digest assembly
//

func (a *hasher) assemble(out *[consts.Size]byte) {
	copy(out[:], bitseq.FromWords(a.state[:]).Bytes(consts.Size))
}
