// SPDX-License-Identifier: MIT

// Command densemat evaluates the demonstration expression D = A + (3·B)·Cᵗ
// or, in edit mode, runs an interactive element editor over a fresh matrix.
//
// Configuration comes from the environment:
//
//	DENSEMAT_MODE       demo | edit            (default demo)
//	DENSEMAT_ROWS       edit matrix rows       (default 2)
//	DENSEMAT_COLS       edit matrix columns    (default 2)
//	DENSEMAT_SENTINEL   index ending the edit  (default -1)
//	DENSEMAT_LIVE       redraw demo stages     (default false)
//	DENSEMAT_LOG_LEVEL  slog level             (default info)
//
// Logs go to stderr as JSON; matrices go to stdout.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/densemat/editor"
	"github.com/katalvlaran/densemat/matrix"
	"github.com/katalvlaran/densemat/render"
)

const (
	modeDemo = "demo"
	modeEdit = "edit"

	resultLabel = "Result"
)

type config struct {
	Mode     string `env:"DENSEMAT_MODE"      envDefault:"demo"`
	Rows     int    `env:"DENSEMAT_ROWS"      envDefault:"2"`
	Cols     int    `env:"DENSEMAT_COLS"      envDefault:"2"`
	Sentinel int    `env:"DENSEMAT_SENTINEL"  envDefault:"-1"`
	Live     bool   `env:"DENSEMAT_LIVE"      envDefault:"false"`
	LogLevel string `env:"DENSEMAT_LOG_LEVEL" envDefault:"info"`
}

func main() {
	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load configuration : %s", err.Error())
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		log.Fatalf("failed to parse log level: %s", err.Error())
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg, os.Stdin, os.Stdout, logger)
	stop()
	if err != nil {
		logger.Error("densemat failed", slog.String("mode", cfg.Mode), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, in io.Reader, out io.Writer, logger *slog.Logger) error {
	switch cfg.Mode {
	case modeDemo:
		return runDemo(out, cfg.Live)
	case modeEdit:
		return runEdit(ctx, cfg, in, out, logger)
	default:
		return fmt.Errorf("unknown mode %q (want %s or %s)", cfg.Mode, modeDemo, modeEdit)
	}
}

// demoOperands returns A (2x2), B (2x3) and C (2x3).
func demoOperands() (a, b, c *matrix.Dense, err error) {
	if a, err = matrix.NewDense(2, 2); err != nil {
		return nil, nil, nil, err
	}
	if b, err = matrix.NewDense(2, 3); err != nil {
		return nil, nil, nil, err
	}
	if c, err = matrix.NewDense(2, 3); err != nil {
		return nil, nil, nil, err
	}

	fill := []struct {
		m    *matrix.Dense
		vals [][]float64
	}{
		{a, [][]float64{{6, 4}, {8, 3}}},
		{b, [][]float64{{1, 2, 3}, {4, 5, 6}}},
		{c, [][]float64{{2, 4, 6}, {1, 3, 5}}},
	}
	for _, f := range fill {
		for i, row := range f.vals {
			for j, v := range row {
				if err = f.m.Set(i, j, v); err != nil {
					return nil, nil, nil, err
				}
			}
		}
	}

	return a, b, c, nil
}

func runDemo(out io.Writer, live bool) error {
	a, b, c, err := demoOperands()
	if err != nil {
		return err
	}

	if !live {
		d, err := matrix.AddScaledProduct(a, b, c, 3)
		if err != nil {
			return err
		}
		if _, err = io.WriteString(out, resultLabel+":\n"); err != nil {
			return err
		}
		return render.Fprint(out, d)
	}

	// Same arithmetic as AddScaledProduct, one stage at a time.
	lv := render.NewLive(out)
	scaled, err := matrix.Scale(b, 3)
	if err != nil {
		return err
	}
	if err = lv.Stage("3·B", scaled); err != nil {
		return err
	}
	ct, err := matrix.Transpose(c)
	if err != nil {
		return err
	}
	if err = lv.Stage("Cᵗ", ct); err != nil {
		return err
	}
	prod, err := matrix.Mul(scaled, ct)
	if err != nil {
		return err
	}
	if err = lv.Stage("(3·B)·Cᵗ", prod); err != nil {
		return err
	}
	d, err := matrix.Add(a, prod)
	if err != nil {
		return err
	}

	return lv.Final(resultLabel, d)
}

func runEdit(ctx context.Context, cfg config, in io.Reader, out io.Writer, logger *slog.Logger) error {
	m, err := matrix.NewDense(cfg.Rows, cfg.Cols)
	if err != nil {
		return err
	}

	st, err := editor.New(m, in, out,
		editor.WithSentinel(cfg.Sentinel),
		editor.WithLogger(logger),
	).Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("edit session finished",
		slog.Int("written", st.Written),
		slog.Int("rejected", st.Rejected),
		slog.Int("invalid", st.Invalid),
	)

	if _, err = io.WriteString(out, "\n"+resultLabel+":\n"); err != nil {
		return err
	}

	return render.Fprint(out, m)
}
