package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeebo/assert"
)

const (
	emptySum = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	abcSum   = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
)

func runCLI(t *testing.T, stdin string, args ...string) (code int, out, errOut string) {
	t.Helper()

	var o, e bytes.Buffer
	code = run(args, commandDeps{
		readFile: os.ReadFile,
		stdin:    strings.NewReader(stdin),
		out:      &o,
		errOut:   &e,
	})
	return code, o.String(), e.String()
}

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestRunShowsHelp(t *testing.T) {
	code, out, errOut := runCLI(t, "", "--help")
	assert.Equal(t, code, 0)
	for _, cmd := range []string{"sum", "check", "string", "trace"} {
		if !strings.Contains(out, cmd) {
			t.Fatalf("expected help output to mention %s, got: %q", cmd, out)
		}
	}
	assert.Equal(t, errOut, "")
}

func TestRunRequiresCommand(t *testing.T) {
	code, _, errOut := runCLI(t, "")
	assert.Equal(t, code, 1)
	if !strings.Contains(errOut, "sha256trace --help") {
		t.Fatalf("unexpected stderr: %q", errOut)
	}
}

func TestRunRejectsLogLevel(t *testing.T) {
	code, _, errOut := runCLI(t, "", "--log-level", "loud", "string", "abc")
	assert.Equal(t, code, 1)
	if !strings.Contains(errOut, "log-level") {
		t.Fatalf("unexpected stderr: %q", errOut)
	}
}

func TestString(t *testing.T) {
	code, out, _ := runCLI(t, "", "string", "abc")
	assert.Equal(t, code, 0)
	assert.Equal(t, out, abcSum+"  \"abc\"\n")

	code, out, _ = runCLI(t, "", "string")
	assert.Equal(t, code, 0)
	assert.Equal(t, out, emptySum+"  \"\"\n")
}

func TestSumFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "abc")
	b := writeFile(t, dir, "b.txt", "")

	code, out, _ := runCLI(t, "", "sum", a, b)
	assert.Equal(t, code, 0)
	assert.Equal(t, out, abcSum+"  "+a+"\n"+emptySum+"  "+b+"\n")
}

func TestSumStdin(t *testing.T) {
	code, out, _ := runCLI(t, "abc", "sum")
	assert.Equal(t, code, 0)
	assert.Equal(t, out, abcSum+"  -\n")
}

func TestSumMissingFile(t *testing.T) {
	code, _, errOut := runCLI(t, "", "sum", filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, code, 1)
	if !strings.Contains(errOut, "Error: read ") {
		t.Fatalf("unexpected stderr: %q", errOut)
	}
}

func TestSumDebugLogging(t *testing.T) {
	code, _, errOut := runCLI(t, "abc", "--log-level", "debug", "sum")
	assert.Equal(t, code, 0)
	if !strings.Contains(errOut, "read 3 bytes from stdin") || !strings.Contains(errOut, "1 blocks") {
		t.Fatalf("expected debug logs, got: %q", errOut)
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "abc")
	b := writeFile(t, dir, "b.txt", "")

	list := writeFile(t, dir, "SHA256SUMS", ""+
		abcSum+"  "+a+"\n"+
		strings.ToUpper(emptySum)+" *"+b+"\n")

	code, out, _ := runCLI(t, "", "check", list)
	assert.Equal(t, code, 0)
	assert.Equal(t, out, a+": OK\n"+b+": OK\n")

	code, out, _ = runCLI(t, "", "check", "--quiet", list)
	assert.Equal(t, code, 0)
	assert.Equal(t, out, "")
}

func TestCheckMismatch(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "abd")

	code, out, errOut := runCLI(t, abcSum+"  "+a+"\n", "check")
	assert.Equal(t, code, 1)
	assert.Equal(t, out, a+": FAILED\n")
	if !strings.Contains(errOut, "1 of 1 computed checksum(s) did NOT match") {
		t.Fatalf("unexpected stderr: %q", errOut)
	}
}

func TestCheckUnreadable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	code, out, _ := runCLI(t, abcSum+"  "+missing+"\n", "check")
	assert.Equal(t, code, 1)
	assert.Equal(t, out, missing+": FAILED open or read\n")
}

func TestCheckMalformed(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "abc")

	list := "not a checksum line\n" +
		strings.Repeat("zz", 32) + "  " + a + "\n" +
		abcSum + "  " + a + "\n"

	code, out, errOut := runCLI(t, list, "check")
	assert.Equal(t, code, 0)
	assert.Equal(t, out, a+": OK\n")
	if !strings.Contains(errOut, "line 1: improperly formatted") || !strings.Contains(errOut, "line 2:") {
		t.Fatalf("expected warnings for malformed lines, got: %q", errOut)
	}

	code, _, _ = runCLI(t, list, "check", "--strict")
	assert.Equal(t, code, 1)

	code, _, errOut = runCLI(t, "garbage\n", "check")
	assert.Equal(t, code, 1)
	if !strings.Contains(errOut, "no properly formatted checksum lines found") {
		t.Fatalf("unexpected stderr: %q", errOut)
	}
}

func TestParseCheckLine(t *testing.T) {
	entry, err := parseCheckLine(1, abcSum+"  name with spaces")
	assert.NoError(t, err)
	assert.Equal(t, entry.name, "name with spaces")
	assert.Equal(t, entry.sum[0], byte(0xba))

	for _, line := range []string{
		"",
		abcSum,
		abcSum + " ",
		abcSum + "--name",
		abcSum[:63] + "g  name",
	} {
		_, err := parseCheckLine(7, line)
		assert.Error(t, err)
	}
}

func TestTrace(t *testing.T) {
	code, out, _ := runCLI(t, "", "trace", "--string", "abc")
	assert.Equal(t, code, 0)

	for _, want := range []string{
		"message: 24 bits, padded to 512 bits in 1 block(s)",
		"61 62 63 80",
		"block 0: message schedule",
		"61626380",
		"000f0000",
		"block 0: hash state",
		"ba7816bf",
		"digest: " + abcSum,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected trace output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "compression rounds") {
		t.Fatalf("rounds shown without --rounds:\n%s", out)
	}
}

func TestTraceRoundsAndBits(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in", strings.Repeat("a", 56))

	code, out, _ := runCLI(t, "", "trace", "--rounds", "--bits", "--style", "ascii", in)
	assert.Equal(t, code, 0)

	for _, want := range []string{
		"padded to 1024 bits in 2 block(s)",
		"bits: 01100001 01100001",
		"block 0: compression rounds",
		"block 1: compression rounds",
		"temp1",
		"428a2f98",
		"c67178f2",
		"block 1: hash state",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected trace output to contain %q, got:\n%s", want, out)
		}
	}
}
