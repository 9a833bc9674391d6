package sha256trace

import "github.com/zeebo/sha256trace/internal/consts"

// Tracer observes the intermediate values of a digest computation. Pointers
// passed to a Tracer are only valid for the duration of the call.
type Tracer interface {
	// Message reports the input as text of 0 and 1 characters, its length
	// in bits, and the padded message.
	Message(bits string, length uint64, padded []byte)

	// Schedule reports the expanded message schedule of a block.
	Schedule(block int, w *[64]uint32)

	// Round reports one compression round of a block.
	Round(block int, r *Round)

	// State reports the hash state after a block has been added into it.
	State(block int, state *[8]uint32)
}

// Round holds the values computed in one compression round.
type Round struct {
	Index int
	K     uint32
	W     uint32

	S1    uint32
	Ch    uint32
	Temp1 uint32
	S0    uint32
	Maj   uint32
	Temp2 uint32

	// Vars holds the working variables a through h after the round.
	Vars [8]uint32
}

// BlockRecord is everything a Recorder saw for one block.
type BlockRecord struct {
	Schedule [consts.Rounds]uint32
	Rounds   [consts.Rounds]Round
	State    [8]uint32
}

// Recorder is a Tracer that keeps every reported value. A Recorder may be
// reused; each new message replaces the previous recording.
type Recorder struct {
	Bits   string
	Length uint64
	Padded []byte
	Blocks []BlockRecord
}

var _ Tracer = (*Recorder)(nil)

// Message implements Tracer.
func (r *Recorder) Message(bits string, length uint64, padded []byte) {
	r.Bits = bits
	r.Length = length
	r.Padded = append(r.Padded[:0], padded...)
	r.Blocks = make([]BlockRecord, len(padded)/consts.BlockLen)
}

// Schedule implements Tracer.
func (r *Recorder) Schedule(block int, w *[64]uint32) { r.Blocks[block].Schedule = *w }

// Round implements Tracer.
func (r *Recorder) Round(block int, rd *Round) { r.Blocks[block].Rounds[rd.Index] = *rd }

// State implements Tracer.
func (r *Recorder) State(block int, state *[8]uint32) { r.Blocks[block].State = *state }
