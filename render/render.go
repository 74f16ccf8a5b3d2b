// SPDX-License-Identifier: MIT

// Package render prints matrices as text: one bracketed line per row,
// elements separated by a single space, each formatted with the shortest
// decimal that round-trips to the same float64 ("%g" semantics):
//
//	[90 70]
//	[200 150]
//
// The package only reads matrices; it never mutates them.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/densemat/matrix"
)

const (
	rowOpen  = "["
	rowClose = "]\n"

	// DefaultSeparator separates elements within a row.
	DefaultSeparator = " "

	// DefaultPrecision selects the shortest round-trip representation.
	DefaultPrecision = -1
)

// Option configures rendering.
type Option func(*Options)

// Options holds the resolved rendering settings.
type Options struct {
	sep       string
	precision int
}

// WithSeparator replaces the element separator.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.sep = sep }
}

// WithPrecision limits the number of significant digits ('g' verb).
// A negative precision means shortest round-trip digits.
func WithPrecision(p int) Option {
	return func(o *Options) { o.precision = p }
}

func gatherOptions(user ...Option) Options {
	o := Options{sep: DefaultSeparator, precision: DefaultPrecision}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// FormatFloat renders a single value the way Fprint does by default.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', DefaultPrecision, 64)
}

// Fprint writes m to w. The first write error aborts rendering and is returned.
// A nil matrix yields matrix.ErrNilMatrix.
func Fprint(w io.Writer, m matrix.Matrix, opts ...Option) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	text, err := format(m, gatherOptions(opts...))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	_, err = io.WriteString(w, text)

	return err
}

// Sprint returns the rendering of m, or "" when m cannot be read.
func Sprint(m matrix.Matrix, opts ...Option) string {
	if matrix.ValidateNotNil(m) != nil {
		return ""
	}
	text, err := format(m, gatherOptions(opts...))
	if err != nil {
		return ""
	}

	return text
}

// format builds the full text. *Dense is walked through its read-only Do
// visitor; any other Matrix falls back to At in the same i→j order.
func format(m matrix.Matrix, o Options) (string, error) {
	var b strings.Builder
	rows, cols := m.Rows(), m.Cols()
	if cols == 0 {
		for i := 0; i < rows; i++ {
			b.WriteString(rowOpen)
			b.WriteString(rowClose)
		}
		return b.String(), nil
	}

	cell := func(i, j int, v float64) bool {
		if j == 0 {
			b.WriteString(rowOpen)
		} else {
			b.WriteString(o.sep)
		}
		b.WriteString(strconv.FormatFloat(v, 'g', o.precision, 64))
		if j == cols-1 {
			b.WriteString(rowClose)
		}
		return true
	}

	if d, ok := m.(*matrix.Dense); ok {
		d.Do(cell)
		return b.String(), nil
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return "", err
			}
			cell(i, j, v)
		}
	}

	return b.String(), nil
}
