package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/zeebo/sha256trace"
	"github.com/zeebo/sha256trace/internal/bitseq"
	"github.com/zeebo/sha256trace/internal/consts"
)

type SumCmd struct {
	Files []string `arg:"" optional:"" help:"Files to hash; - or none reads stdin"`
}

func (c *SumCmd) Run(rc *runContext) error {
	files := c.Files
	if len(files) == 0 {
		files = []string{"-"}
	}

	for _, name := range files {
		data, err := rc.readInput(name)
		if err != nil {
			return err
		}
		rc.printSum(data, name)
	}
	return nil
}

type StringCmd struct {
	Text string `arg:"" optional:"" help:"Text to hash; omitted means the empty string"`
}

func (c *StringCmd) Run(rc *runContext) error {
	rc.printSum([]byte(c.Text), fmt.Sprintf("%q", c.Text))
	return nil
}

func (rc *runContext) printSum(data []byte, name string) {
	rc.log.Debugf("hashing %s: %d blocks", name, bitseq.PaddedLen(8*uint64(len(data)))/consts.BlockBits)
	sum := sha256trace.Sum256(data)
	_, _ = fmt.Fprintf(rc.deps.out, "%x  %s\n", sum[:], name)
}

type CheckCmd struct {
	File   string `arg:"" optional:"" help:"Checksum file; - or none reads stdin"`
	Strict bool   `name:"strict" help:"Fail on improperly formatted checksum lines"`
	Quiet  bool   `name:"quiet" help:"Do not print OK for each successfully verified file"`
}

// lineError reports a line of a checksum file that could not be parsed.
type lineError struct {
	line int
	text string
}

func (e *lineError) Error() string {
	return fmt.Sprintf("line %d: improperly formatted checksum line %q", e.line, e.text)
}

type checkEntry struct {
	sum  [sha256trace.Size]byte
	name string
}

// parseCheckLine parses "<hex>  <name>" or "<hex> *<name>".
func parseCheckLine(n int, line string) (checkEntry, error) {
	const hexLen = 2 * sha256trace.Size

	var entry checkEntry
	if len(line) < hexLen+3 {
		return entry, &lineError{line: n, text: line}
	}
	if sep := line[hexLen : hexLen+2]; sep != "  " && sep != " *" {
		return entry, &lineError{line: n, text: line}
	}
	if _, err := hex.Decode(entry.sum[:], []byte(line[:hexLen])); err != nil {
		return entry, errors.Wrapf(&lineError{line: n, text: line}, "decode digest")
	}
	entry.name = line[hexLen+2:]
	return entry, nil
}

func (c *CheckCmd) Run(rc *runContext) error {
	list, err := rc.readInput(c.File)
	if err != nil {
		return err
	}

	var total, failed, unreadable, malformed int

	scanner := bufio.NewScanner(bytes.NewReader(list))
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if line == "" {
			continue
		}

		entry, err := parseCheckLine(n, line)
		if err != nil {
			var le *lineError
			if !errors.As(err, &le) {
				return err
			}
			rc.log.Warnf("%v", err)
			malformed++
			continue
		}
		total++

		data, err := rc.readInput(entry.name)
		if err != nil {
			rc.log.Warnf("%v", err)
			unreadable++
			_, _ = fmt.Fprintf(rc.deps.out, "%s: FAILED open or read\n", entry.name)
			continue
		}

		if sha256trace.Sum256(data) != entry.sum {
			failed++
			_, _ = fmt.Fprintf(rc.deps.out, "%s: FAILED\n", entry.name)
			continue
		}
		if !c.Quiet {
			_, _ = fmt.Fprintf(rc.deps.out, "%s: OK\n", entry.name)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "scan checksum list")
	}

	switch {
	case total == 0:
		return errors.New("no properly formatted checksum lines found")
	case unreadable > 0:
		return errors.Errorf("%d listed file(s) could not be read", unreadable)
	case failed > 0:
		return errors.Errorf("%d of %d computed checksum(s) did NOT match", failed, total)
	case malformed > 0 && c.Strict:
		return errors.Errorf("%d line(s) are improperly formatted", malformed)
	}
	return nil
}
