// Package render writes CLI results as plain text, YAML or Go syntax.
package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/kr/pretty"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvloops/internal/config"
)

// ErrUnknownFormat is returned for a format outside text, yaml, pretty, auto.
var ErrUnknownFormat = errors.New("render: unknown format")

// Result is one command outcome.
type Result struct {
	Command string `yaml:"command"`
	Input   any    `yaml:"input"`
	Output  any    `yaml:"output"`
}

// Resolve turns FormatAuto into a concrete format: pretty when w is a
// terminal, text otherwise. Other formats are returned unchanged.
func Resolve(format string, w io.Writer) string {
	if format != config.FormatAuto {
		return format
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return config.FormatPretty
	}

	return config.FormatText
}

// Write encodes r to w in the given format. FormatAuto is resolved against w.
func Write(w io.Writer, format string, r Result) error {
	switch Resolve(format, w) {
	case config.FormatText:
		if _, err := io.WriteString(w, Text(r.Output)); err != nil {
			return errors.Wrap(err, "write text")
		}
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, "close yaml encoder")
		}
	case config.FormatPretty:
		if _, err := pretty.Fprintf(w, "%# v\n", r); err != nil {
			return errors.Wrap(err, "write pretty")
		}
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}

	return nil
}

// Text renders v as whitespace-separated values: matrices one row per
// line, sequences on one line, anything else via fmt.
func Text(v any) string {
	var sb strings.Builder
	switch x := v.(type) {
	case [][]int:
		for _, row := range x {
			sb.WriteString(joinInts(row))
			sb.WriteByte('\n')
		}
	case []int:
		sb.WriteString(joinInts(x))
		sb.WriteByte('\n')
	case []float64:
		parts := make([]string, len(x))
		for i, f := range x {
			parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		sb.WriteString(strings.Join(parts, " "))
		sb.WriteByte('\n')
	default:
		fmt.Fprintln(&sb, x)
	}

	return sb.String()
}

func joinInts(row []int) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
