package main

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
	"github.com/zeebo/sha256trace"
	"github.com/zeebo/sha256trace/internal/consts"
)

type TraceCmd struct {
	Input  string `arg:"" optional:"" help:"File to trace; - or none reads stdin"`
	String bool   `name:"string" short:"s" help:"Treat the argument as literal text instead of a file name"`
	Rounds bool   `name:"rounds" short:"r" help:"Include all 64 compression rounds of every block"`
	Bits   bool   `name:"bits" short:"b" help:"Include the message as a bit string"`
	Style  string `name:"style" default:"unicode" enum:"unicode,ascii" env:"SHA256TRACE_STYLE" help:"Table style (unicode, ascii)"`
}

func (c *TraceCmd) Run(rc *runContext) error {
	var data []byte
	if c.String {
		data = []byte(c.Input)
	} else {
		var err error
		if data, err = rc.readInput(c.Input); err != nil {
			return err
		}
	}

	tt := &tableTracer{
		out:    rc.deps.out,
		style:  tableStyle(c.Style),
		rounds: c.Rounds,
		bits:   c.Bits,
	}
	sum := sha256trace.SumTrace(data, tt)
	rc.log.Debugf("traced %d blocks", tt.blocks)

	_, _ = fmt.Fprintf(rc.deps.out, "digest: %x\n", sum[:])
	return nil
}

func tableStyle(name string) tabulate.Style {
	if name == "ascii" {
		return tabulate.ASCII
	}
	return tabulate.UnicodeLight
}

// tableTracer renders each intermediate value as it is reported.
type tableTracer struct {
	out    io.Writer
	style  tabulate.Style
	rounds bool
	bits   bool

	blocks int
	round  *tabulate.Tabulate
}

var _ sha256trace.Tracer = (*tableTracer)(nil)

func (tt *tableTracer) Message(bits string, length uint64, padded []byte) {
	tt.blocks = len(padded) / consts.BlockLen

	_, _ = fmt.Fprintf(tt.out, "message: %d bits, padded to %d bits in %d block(s)\n",
		length, 8*len(padded), tt.blocks)
	if tt.bits {
		_, _ = fmt.Fprintf(tt.out, "bits: %s\n", bits)
	}

	tab := tabulate.New(tt.style)
	tab.Header("Block").SetAlign(tabulate.MR)
	tab.Header("Offset").SetAlign(tabulate.MR)
	tab.Header("Bytes").SetAlign(tabulate.ML)

	for off := 0; off < len(padded); off += 16 {
		row := tab.Row()
		row.Column(fmt.Sprint(off / consts.BlockLen))
		row.Column(fmt.Sprintf("%04x", off))
		row.Column(fmt.Sprintf("% x", padded[off:off+16]))
	}
	tab.Print(tt.out)
}

func (tt *tableTracer) Schedule(block int, w *[64]uint32) {
	_, _ = fmt.Fprintf(tt.out, "block %d: message schedule\n", block)

	tab := tabulate.New(tt.style)
	for col := 0; col < 4; col++ {
		tab.Header("t").SetAlign(tabulate.MR)
		tab.Header("W[t]").SetAlign(tabulate.ML)
	}
	for i := 0; i < 16; i++ {
		row := tab.Row()
		for col := 0; col < 4; col++ {
			t := col*16 + i
			row.Column(fmt.Sprint(t))
			row.Column(fmt.Sprintf("%08x", w[t]))
		}
	}
	tab.Print(tt.out)

	if tt.rounds {
		tt.round = tabulate.New(tt.style)
		for _, h := range []string{"t", "K", "W", "S1", "ch", "temp1", "S0", "maj", "temp2",
			"a", "b", "c", "d", "e", "f", "g", "h"} {
			align := tabulate.ML
			if h == "t" {
				align = tabulate.MR
			}
			tt.round.Header(h).SetAlign(align)
		}
	}
}

func (tt *tableTracer) Round(block int, r *sha256trace.Round) {
	if tt.round == nil {
		return
	}

	row := tt.round.Row()
	row.Column(fmt.Sprint(r.Index))
	for _, v := range []uint32{r.K, r.W, r.S1, r.Ch, r.Temp1, r.S0, r.Maj, r.Temp2} {
		row.Column(fmt.Sprintf("%08x", v))
	}
	for _, v := range r.Vars {
		row.Column(fmt.Sprintf("%08x", v))
	}
}

func (tt *tableTracer) State(block int, state *[8]uint32) {
	if tt.round != nil {
		_, _ = fmt.Fprintf(tt.out, "block %d: compression rounds\n", block)
		tt.round.Print(tt.out)
		tt.round = nil
	}

	_, _ = fmt.Fprintf(tt.out, "block %d: hash state\n", block)

	tab := tabulate.New(tt.style)
	for i := range state {
		tab.Header(fmt.Sprintf("H%d", i)).SetAlign(tabulate.ML)
	}
	row := tab.Row()
	for _, v := range state {
		row.Column(fmt.Sprintf("%08x", v))
	}
	tab.Print(tt.out)
}
