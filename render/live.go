// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uilive"

	"github.com/katalvlaran/densemat/matrix"
)

// Live redraws labelled matrices in place on a terminal. Each Stage replaces
// the previous one; Final clears the live region and prints a block that
// stays on screen.
//
// Live is not safe for concurrent use.
type Live struct {
	w    *uilive.Writer
	opts Options
}

// NewLive returns a Live writing to out.
func NewLive(out io.Writer, opts ...Option) *Live {
	w := uilive.New()
	w.Out = out

	return &Live{w: w, opts: gatherOptions(opts...)}
}

// Stage replaces the live region with "label:" followed by m.
func (l *Live) Stage(label string, m matrix.Matrix) error {
	text, err := l.block(label, m)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(l.w, text); err != nil {
		return err
	}

	return l.w.Flush()
}

// Final clears the live region and writes "label:" followed by m permanently.
func (l *Live) Final(label string, m matrix.Matrix) error {
	text, err := l.block(label, m)
	if err != nil {
		return err
	}
	// one write: bypass clears the live lines on every call
	_, err = io.WriteString(l.w.Bypass(), text)

	return err
}

func (l *Live) block(label string, m matrix.Matrix) (string, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return "", fmt.Errorf("render: %s: %w", label, err)
	}
	body, err := format(m, l.opts)
	if err != nil {
		return "", fmt.Errorf("render: %s: %w", label, err)
	}
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(":\n")
	b.WriteString(body)

	return b.String(), nil
}
