package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pion/logging"
	"github.com/pkg/errors"
)

type CLI struct {
	LogLevel string `name:"log-level" default:"warn" enum:"error,warn,info,debug,trace" env:"SHA256TRACE_LOG_LEVEL" help:"Log verbosity written to stderr (error, warn, info, debug, trace)"`

	Sum    SumCmd    `cmd:"" help:"Print SHA-256 digests of files"`
	Check  CheckCmd  `cmd:"" help:"Verify digests listed in a sha256sum style file"`
	String StringCmd `cmd:"" help:"Print the SHA-256 digest of a literal string"`
	Trace  TraceCmd  `cmd:"" help:"Show every intermediate value of one digest"`
}

type kongExitCode int

type commandDeps struct {
	readFile func(name string) ([]byte, error)
	stdin    io.Reader
	out      io.Writer
	errOut   io.Writer
}

// runContext is bound into every command's Run method.
type runContext struct {
	log  logging.LeveledLogger
	deps commandDeps
}

func main() {
	os.Exit(run(os.Args[1:], defaultDeps()))
}

func defaultDeps() commandDeps {
	return commandDeps{
		readFile: os.ReadFile,
		stdin:    os.Stdin,
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
}

func run(args []string, deps commandDeps) (exitCode int) {
	if deps.out == nil {
		deps.out = os.Stdout
	}
	if deps.errOut == nil {
		deps.errOut = os.Stderr
	}
	if deps.stdin == nil {
		deps.stdin = os.Stdin
	}
	if deps.readFile == nil {
		deps.readFile = os.ReadFile
	}
	out, errOut := deps.out, deps.errOut

	cli := CLI{}
	parser, err := kong.New(
		&cli,
		kong.Name("sha256trace"),
		kong.Description("Compute SHA-256 digests and inspect how they are computed."),
		kong.Writers(out, errOut),
		kong.Exit(func(code int) {
			panic(kongExitCode(code))
		}),
	)
	if err != nil {
		_, _ = fmt.Fprintf(errOut, "Error: initialize command parser: %v\n", err)
		return 1
	}
	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}
		code, ok := recovered.(kongExitCode)
		if !ok {
			panic(recovered)
		}
		exitCode = int(code)
	}()

	ctx, err := parser.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		_, _ = fmt.Fprintln(errOut, "Hint: run `sha256trace --help`.")
		return 1
	}

	rc := &runContext{
		log:  newLogger(cli.LogLevel, errOut),
		deps: deps,
	}
	if err := ctx.Run(rc); err != nil {
		_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newLogger(level string, w io.Writer) logging.LeveledLogger {
	factory := logging.NewDefaultLoggerFactory()
	factory.Writer = w
	factory.DefaultLogLevel = parseLogLevel(level)
	return factory.NewLogger("sha256trace")
}

func parseLogLevel(level string) logging.LogLevel {
	switch strings.ToLower(level) {
	case "error":
		return logging.LogLevelError
	case "info":
		return logging.LogLevelInfo
	case "debug":
		return logging.LogLevelDebug
	case "trace":
		return logging.LogLevelTrace
	default:
		return logging.LogLevelWarn
	}
}

// readInput returns the contents of the named file, or of stdin for "" and
// "-".
func (rc *runContext) readInput(name string) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(rc.deps.stdin)
		if err != nil {
			return nil, errors.Wrap(err, "read stdin")
		}
		rc.log.Debugf("read %d bytes from stdin", len(data))
		return data, nil
	}

	data, err := rc.deps.readFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	rc.log.Debugf("read %d bytes from %s", len(data), name)
	return data, nil
}
