// Package app implements the lvloops command line: argument parsing, input
// decoding and dispatch to the library packages. main only wires the
// environment, the logger and the process exit code.
package app

import (
	"flag"
	"io"
	"strconv"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvloops/internal/config"
	"github.com/katalvlaran/lvloops/internal/render"
	"github.com/katalvlaran/lvloops/matrix"
	"github.com/katalvlaran/lvloops/permutation"
	"github.com/katalvlaran/lvloops/sequence"
	"github.com/katalvlaran/lvloops/sorting"
)

var (
	// ErrUsage is returned for unknown commands and malformed arguments.
	ErrUsage = errors.New("usage error")

	// ErrTooLarge is returned when a matrix exceeds Config.MaxSize.
	ErrTooLarge = errors.New("matrix exceeds configured maximum size")
)

// Usage is printed for -h and on usage errors.
const Usage = `usage: lvloops <command> [arguments]

commands:
  spiral <size>                     clockwise spiral matrix 1..size²
  rotate [-turns N] <matrix>        rotate a YAML matrix, e.g. '[[1,2],[3,4]]'
  sort <n1> <n2> ...                ascending quicksort
  nearest <n>                       next larger number with the same digits
  balance <n1> <n2> ...             index where left and right sums match
  shuffle <string> <iterations>     move odd-position characters to the end

environment:
  LVLOOPS_LOG_LEVEL   debug|info|warn|error (info)
  LVLOOPS_FORMAT      auto|text|yaml|pretty (auto)
  LVLOOPS_MAX_SIZE    largest matrix side accepted (512)
`

// App runs one command per Run call. It holds no state between calls.
type App struct {
	cfg config.Config
	log *zap.Logger
	out io.Writer
}

// New returns an App writing results to out. A nil log is replaced by a
// nop logger.
func New(cfg config.Config, log *zap.Logger, out io.Writer) *App {
	if log == nil {
		log = zap.NewNop()
	}

	return &App{cfg: cfg, log: log, out: out}
}

// Run executes args (without the program name) and writes the result.
func (a *App) Run(args []string) error {
	if len(args) == 0 {
		return errors.Wrap(ErrUsage, "missing command")
	}
	cmd, rest := args[0], args[1:]
	a.log.Debug("run", zap.String("command", cmd), zap.Strings("args", rest))

	var (
		res render.Result
		err error
	)
	switch cmd {
	case "spiral":
		res, err = a.spiral(rest)
	case "rotate":
		res, err = a.rotate(rest)
	case "sort":
		res, err = a.sort(rest)
	case "nearest":
		res, err = a.nearest(rest)
	case "balance":
		res, err = a.balance(rest)
	case "shuffle":
		res, err = a.shuffle(rest)
	default:
		return errors.Wrapf(ErrUsage, "unknown command %q", cmd)
	}
	if err != nil {
		return errors.Wrap(err, cmd)
	}
	res.Command = cmd

	return render.Write(a.out, a.cfg.Format, res)
}

func (a *App) spiral(args []string) (render.Result, error) {
	if len(args) != 1 {
		return render.Result{}, errors.Wrap(ErrUsage, "want <size>")
	}
	size, err := strconv.Atoi(args[0])
	if err != nil {
		return render.Result{}, errors.Wrapf(ErrUsage, "size %q", args[0])
	}
	if size > a.cfg.MaxSize {
		return render.Result{}, errors.Wrapf(ErrTooLarge, "%d > %d", size, a.cfg.MaxSize)
	}
	rows, err := matrix.SpiralRows(size, matrix.WithLogger(a.log))
	if err != nil {
		return render.Result{}, err
	}

	return render.Result{Input: size, Output: rows}, nil
}

func (a *App) rotate(args []string) (render.Result, error) {
	fs := flag.NewFlagSet("rotate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	turns := fs.Int("turns", 1, "quarter turns, negative for counter-clockwise")
	if err := fs.Parse(args); err != nil {
		return render.Result{}, errors.Wrap(ErrUsage, err.Error())
	}
	if fs.NArg() != 1 {
		return render.Result{}, errors.Wrap(ErrUsage, "want <matrix>")
	}

	var rows [][]int
	if err := yaml.Unmarshal([]byte(fs.Arg(0)), &rows); err != nil {
		return render.Result{}, errors.Wrap(ErrUsage, "matrix is not a YAML list of integer lists")
	}
	if len(rows) > a.cfg.MaxSize {
		return render.Result{}, errors.Wrapf(ErrTooLarge, "%d > %d", len(rows), a.cfg.MaxSize)
	}
	input, err := matrix.FromRows(rows)
	if err != nil {
		return render.Result{}, err
	}
	if _, err := matrix.RotateRowsBy(rows, *turns, matrix.WithLogger(a.log)); err != nil {
		return render.Result{}, err
	}

	return render.Result{Input: input.Rows(), Output: rows}, nil
}

func (a *App) sort(args []string) (render.Result, error) {
	seq := make([]float64, len(args))
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return render.Result{}, errors.Wrapf(ErrUsage, "number %q", s)
		}
		seq[i] = f
	}
	input := append([]float64(nil), seq...)
	if _, err := sorting.Float64s(seq, sorting.WithLogger(a.log)); err != nil {
		return render.Result{}, err
	}

	return render.Result{Input: input, Output: seq}, nil
}

func (a *App) nearest(args []string) (render.Result, error) {
	if len(args) != 1 {
		return render.Result{}, errors.Wrap(ErrUsage, "want <n>")
	}
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return render.Result{}, errors.Wrapf(ErrUsage, "number %q", args[0])
	}
	next, err := permutation.NextLarger(n, permutation.WithLogger(a.log))
	if err != nil {
		return render.Result{}, err
	}

	return render.Result{Input: n, Output: next}, nil
}

func (a *App) balance(args []string) (render.Result, error) {
	seq := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return render.Result{}, errors.Wrapf(ErrUsage, "number %q", s)
		}
		seq[i] = v
	}

	return render.Result{Input: seq, Output: sequence.BalanceIndex(seq)}, nil
}

func (a *App) shuffle(args []string) (render.Result, error) {
	if len(args) != 2 {
		return render.Result{}, errors.Wrap(ErrUsage, "want <string> <iterations>")
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return render.Result{}, errors.Wrapf(ErrUsage, "iterations %q", args[1])
	}
	out, err := sequence.Shuffle(args[0], n)
	if err != nil {
		return render.Result{}, err
	}

	return render.Result{Input: args[0], Output: out}, nil
}
