package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/brainluck/machine"
	"github.com/ezrec/brainluck/script"
	"github.com/ezrec/brainluck/translate"
)

var f = translate.From

var (
	ErrTickLimit     = errors.New(f("tick limit exceeded"))
	ErrProgramSource = errors.New(f("both --exec and a program file given"))
	ErrStdinConflict = errors.New(f("program and input cannot both be read from stdin"))
)

type options struct {
	exec        string
	input       string
	inputExpr   string
	output      string
	logFile     string
	lang        string
	skipUnknown bool
	verbose     bool
	maxTicks    int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "brainluck [flags] [program-file]",
		Short: "Run BrainLuck programs",
		Long: `Runs a BrainLuck program on a 2024 cell tape.

The program is taken from --exec, the program file, or stdin, in that
order. Input bytes come from --input and then --input-expr; if neither
is given and the program was not read from stdin, input is read from
stdin.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.exec, "exec", "e", "", "program text")
	flags.StringVarP(&opts.input, "input", "i", "", "input file, - for stdin")
	flags.StringVarP(&opts.inputExpr, "input-expr", "x", "", "input as a Starlark expression, such as '\"text\" + NUL'")
	flags.StringVarP(&opts.output, "output", "o", "-", "output file, - for stdout")
	flags.StringVar(&opts.logFile, "log", "", "also write a JSON log to this file")
	flags.StringVar(&opts.lang, "lang", "", "message language, as a BCP 47 tag")
	flags.BoolVar(&opts.skipUnknown, "skip-unknown", false, "skip unrecognized characters instead of terminating")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "trace every instruction")
	flags.IntVar(&opts.maxTicks, "max-ticks", 0, "stop after this many instructions, 0 for no limit")

	return cmd
}

// loadProgram reads the program text. fromStdin is set if stdin was
// consumed.
func loadProgram(opts *options, args []string, stdin io.Reader) (text string, fromStdin bool, err error) {
	switch {
	case len(opts.exec) != 0 && len(args) != 0:
		err = ErrProgramSource
	case len(opts.exec) != 0:
		text = opts.exec
	case len(args) != 0:
		var data []byte
		data, err = os.ReadFile(args[0])
		text = string(data)
	default:
		var data []byte
		data, err = io.ReadAll(stdin)
		text = string(data)
		fromStdin = true
	}

	return
}

// openInput builds the machine input stream. The returned close function
// must be called when done.
func openInput(opts *options, stdin io.Reader, stdinUsed bool) (input io.Reader, closer func() error, err error) {
	closer = func() error { return nil }

	var readers []io.Reader

	switch opts.input {
	case "":
		if len(opts.inputExpr) == 0 && !stdinUsed {
			readers = append(readers, stdin)
		}
	case "-":
		if stdinUsed {
			err = ErrStdinConflict
			return
		}
		readers = append(readers, stdin)
	default:
		var inf *os.File
		inf, err = os.Open(opts.input)
		if err != nil {
			return
		}
		closer = inf.Close
		readers = append(readers, inf)
	}

	if len(opts.inputExpr) != 0 {
		var data []byte
		data, err = script.Eval(opts.inputExpr)
		if err != nil {
			closer()
			return
		}
		readers = append(readers, bytes.NewReader(data))
	}

	input = io.MultiReader(readers...)
	return
}

// flushReader flushes pending output before it waits on input, so that
// interactive prompts are visible.
type flushReader struct {
	*bufio.Reader
	out *bufio.Writer
}

func (fr flushReader) ReadByte() (byte, error) {
	if fr.Reader.Buffered() == 0 {
		err := fr.out.Flush()
		if err != nil {
			return 0, err
		}
	}
	return fr.Reader.ReadByte()
}

func run(ctx context.Context, opts *options, args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) (err error) {
	if len(opts.lang) != 0 {
		err = translate.SetLanguage(opts.lang)
		if err != nil {
			return
		}
	}

	logger, logClose, err := newLogger(stderr, opts.logFile, opts.verbose)
	if err != nil {
		return
	}
	defer logClose()

	// Machine tracing uses the log package; route it through slog.
	prior, priorWriter, priorFlags := slog.Default(), log.Writer(), log.Flags()
	slog.SetDefault(logger)
	defer func() {
		slog.SetDefault(prior)
		log.SetOutput(priorWriter)
		log.SetFlags(priorFlags)
	}()

	text, stdinUsed, err := loadProgram(opts, args, stdin)
	if err != nil {
		return
	}

	input, inClose, err := openInput(opts, stdin, stdinUsed)
	if err != nil {
		return
	}
	defer inClose()

	if opts.output != "-" {
		var ouf *os.File
		ouf, err = os.Create(opts.output)
		if err != nil {
			return
		}
		defer func() {
			cerr := ouf.Close()
			if err == nil {
				err = cerr
			}
		}()
		stdout = ouf
	}

	out := bufio.NewWriter(stdout)
	defer func() {
		ferr := out.Flush()
		if err == nil {
			err = ferr
		}
	}()

	m := machine.NewMachine(machine.Compile(text), flushReader{Reader: bufio.NewReader(input), out: out}, out)
	m.Verbose = opts.verbose
	if opts.skipUnknown {
		m.Policy = machine.POLICY_SKIP
	}

	m.Reset()

	logger.Debug("start", "length", len(text), "policy", m.Policy.String())

	err = tick(ctx, m, opts.maxTicks)
	if err != nil {
		logger.Debug("failed", "state", m.String())
		return
	}

	logger.Debug("finished", "ticks", m.Ticks, "ip", m.Ip)

	return
}

// tick runs the machine until done, cancelled, or out of ticks.
// The limit only applies when another instruction would execute.
func tick(ctx context.Context, m *machine.Machine, limit int) (err error) {
	for done := false; !done; {
		err = ctx.Err()
		if err != nil {
			return
		}

		if limit > 0 && m.Ticks >= limit && m.Program.At(m.Ip).Valid() {
			err = &machine.ErrRuntime{Ip: m.Ip, Op: m.Program.At(m.Ip), Err: ErrTickLimit}
			return
		}

		done, err = m.Tick()
		if err != nil {
			return
		}
	}

	return
}
