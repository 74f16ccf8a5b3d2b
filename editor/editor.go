// SPDX-License-Identifier: MIT

// Package editor implements the interactive element editor: a prompt loop
// that asks for a row index, a column index and a value, and writes the value
// into a matrix through its bounds-checked Set.
//
// Protocol (one session):
//
//	Enter row index (0-R) or S to finish: <row>
//	Enter column index (0-C) or S to finish: <col>
//	Enter value: <v>
//
// Either index equal to the sentinel S ends the session, as does end of
// input. An index outside the matrix prints "Index out of range." and the
// loop continues without writing. Unparsable tokens are reported and the
// same prompt is repeated.
package editor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/densemat/matrix"
)

// DefaultSentinel terminates a session when typed as a row or column index.
const DefaultSentinel = -1

const (
	msgOutOfRange = "Index out of range."
	msgValue      = "Enter value: "
)

// Option configures an Editor.
type Option func(*Editor)

// WithSentinel sets the index value that ends the session.
func WithSentinel(s int) Option {
	return func(e *Editor) { e.sentinel = s }
}

// WithLogger routes diagnostics (rejected writes, bad tokens) to l.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// Stats summarizes a finished session.
type Stats struct {
	Written  int // successful Set calls
	Rejected int // out-of-range indices or values refused by the numeric policy
	Invalid  int // tokens that did not parse
}

// Editor drives one matrix through the prompt loop.
type Editor struct {
	m        matrix.Matrix
	in       *bufio.Scanner
	out      io.Writer
	sentinel int
	log      *slog.Logger
}

// New returns an Editor reading whitespace-separated tokens from in and
// writing prompts to out.
func New(m matrix.Matrix, in io.Reader, out io.Writer, opts ...Option) *Editor {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	e := &Editor{
		m:        m,
		in:       sc,
		out:      out,
		sentinel: DefaultSentinel,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	return e
}

// errDone marks a normal end of session (sentinel or end of input).
var errDone = errors.New("editor: done")

// Run executes the loop until the sentinel, end of input, or ctx is done.
// The returned error is nil for a normal finish; ctx.Err() on cancellation;
// otherwise a read or write failure.
func (e *Editor) Run(ctx context.Context) (Stats, error) {
	var st Stats
	if err := matrix.ValidateNotNil(e.m); err != nil {
		return st, fmt.Errorf("editor: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return st, err
		}

		row, err := e.readIndex(&st, "row", e.m.Rows())
		if err != nil {
			return st, finish(err)
		}
		col, err := e.readIndex(&st, "column", e.m.Cols())
		if err != nil {
			return st, finish(err)
		}

		// Check through At: the same bounds check Set uses, before asking for a value.
		if _, err = e.m.At(row, col); err != nil {
			st.Rejected++
			e.log.Debug("index rejected", slog.Int("row", row), slog.Int("col", col), slog.Any("error", err))
			if err = e.println(msgOutOfRange); err != nil {
				return st, err
			}
			continue
		}

		v, err := e.readValue(&st)
		if err != nil {
			return st, finish(err)
		}
		if err = e.m.Set(row, col, v); err != nil {
			st.Rejected++
			e.log.Debug("value rejected", slog.Int("row", row), slog.Int("col", col), slog.Any("error", err))
			if err = e.println(fmt.Sprintf("Value rejected: %v", err)); err != nil {
				return st, err
			}
			continue
		}
		st.Written++
	}
}

func finish(err error) error {
	if errors.Is(err, errDone) {
		return nil
	}

	return err
}

// readIndex prompts until an integer arrives. The sentinel yields errDone.
func (e *Editor) readIndex(st *Stats, what string, n int) (int, error) {
	prompt := fmt.Sprintf("Enter %s index (0-%d) or %d to finish: ", what, n-1, e.sentinel)
	if n == 0 {
		prompt = fmt.Sprintf("Enter %s index (no valid %s index) or %d to finish: ", what, what, e.sentinel)
	}
	for {
		tok, err := e.ask(prompt)
		if err != nil {
			return 0, err
		}
		idx, perr := strconv.Atoi(tok)
		if perr != nil {
			st.Invalid++
			e.log.Debug("bad index token", slog.String("token", tok))
			if err = e.println(fmt.Sprintf("Invalid index %q.", tok)); err != nil {
				return 0, err
			}
			continue
		}
		if idx == e.sentinel {
			return 0, errDone
		}

		return idx, nil
	}
}

// readValue prompts until a float arrives.
func (e *Editor) readValue(st *Stats) (float64, error) {
	for {
		tok, err := e.ask(msgValue)
		if err != nil {
			return 0, err
		}
		v, perr := strconv.ParseFloat(tok, 64)
		if perr != nil {
			st.Invalid++
			e.log.Debug("bad value token", slog.String("token", tok))
			if err = e.println(fmt.Sprintf("Invalid value %q.", tok)); err != nil {
				return 0, err
			}
			continue
		}

		return v, nil
	}
}

// ask writes prompt and returns the next token; end of input yields errDone.
func (e *Editor) ask(prompt string) (string, error) {
	if _, err := io.WriteString(e.out, prompt); err != nil {
		return "", err
	}
	if !e.in.Scan() {
		if err := e.in.Err(); err != nil {
			return "", fmt.Errorf("editor: read: %w", err)
		}
		return "", errDone
	}

	return e.in.Text(), nil
}

func (e *Editor) println(s string) error {
	_, err := fmt.Fprintln(e.out, s)

	return err
}
