// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Notes:
//   - Numeric policy is per-instance: it is fixed when a Dense is created and
//     carried by Clone. Kernel results are allocated with the default policy.
//   - The default policy lets NaN/±Inf through Set unchanged (IEEE-754
//     semantics); enable WithValidateNaNInf for finite-only ingestion.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = false

	// MaxElements bounds rows*cols for a single Dense (128 GiB of float64).
	// Requests above it fail with ErrAllocation instead of crashing the
	// runtime allocator.
	MaxElements = 1 << 34
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// ValidateNaNInf reports whether finite-only validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithValidateNaNInf toggles strict finite-value validation.
// When enabled, Set rejects NaN and ±Inf with ErrNaNInf and leaves the
// element untouched.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithValidateNaNInf(enabled bool) Option {
	return func(o *Options) { o.validateNaNInf = enabled }
}

// NewOptions resolves opts over the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters in order over the defaults.
// Nil setters are skipped so callers can build option slices conditionally.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
