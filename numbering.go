package numbering

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/numbering/pattern"
)

// Sentinel errors for scheme dispatch.
var (
	// ErrEmptyNumbering is returned when applying a zero-value
	// Numbering that holds neither a pattern nor a callable.
	ErrEmptyNumbering = errors.New("numbering: empty numbering value")

	// ErrUnsupportedScheme is returned by Format for scheme types it
	// cannot coerce into a Numbering.
	ErrUnsupportedScheme = errors.New("numbering: unsupported scheme type")
)

// Func is the callable scheme capability: it receives the counter
// numbers as positional arguments and produces an arbitrary value.
// The facade forwards the numbers untouched and relays any failure
// unwrapped; the callable's concurrency and error behavior belong
// entirely to its provider.
type Func func(ctx context.Context, numbers ...uint64) (any, error)

// Numbering is a numbering scheme: either a compiled pattern or an
// external callable. It is an immutable value; Apply is a pure read
// and Trimmed returns a new value.
type Numbering struct {
	pat *pattern.Pattern
	fn  Func
}

// FromPattern wraps a compiled pattern as a scheme.
func FromPattern(p pattern.Pattern) Numbering {
	return Numbering{pat: &p}
}

// FromFunc wraps an external callable as a scheme.
func FromFunc(fn Func) Numbering {
	return Numbering{fn: fn}
}

// Parse compiles a pattern string into a scheme. Fails with
// pattern.ErrInvalidPattern when text has no counting symbol.
func Parse(text string) (Numbering, error) {
	p, err := pattern.Parse(text)
	if err != nil {
		return Numbering{}, err
	}

	return FromPattern(p), nil
}

// Apply renders numbers through the scheme. Pattern schemes return a
// string and never fail; callable schemes return whatever the callable
// produces, errors passed through unchanged. ctx is handed to the
// callable only — pattern formatting is pure and cannot block.
func (n Numbering) Apply(ctx context.Context, numbers ...uint64) (any, error) {
	switch {
	case n.pat != nil:
		return n.pat.Apply(numbers...), nil
	case n.fn != nil:
		return n.fn(ctx, numbers...)
	}

	return nil, ErrEmptyNumbering
}

// Trimmed returns the scheme with its pattern trimmed (first prefix
// and suffix suppressed on application). Callable schemes have no
// trimming concept and are returned unchanged.
func (n Numbering) Trimmed() Numbering {
	if n.pat != nil {
		p := n.pat.Trimmed()

		return Numbering{pat: &p}
	}

	return n
}

// Pattern returns the underlying pattern, if this is a pattern scheme.
func (n Numbering) Pattern() (pattern.Pattern, bool) {
	if n.pat == nil {
		return pattern.Pattern{}, false
	}

	return *n.pat, true
}

// Callable returns the underlying callable, if this is a callable
// scheme.
func (n Numbering) Callable() (Func, bool) {
	return n.fn, n.fn != nil
}

// Format is the evaluator-facing entry point: it coerces scheme into a
// Numbering and applies it to numbers.
//
// Accepted scheme types: Numbering, pattern.Pattern, Func (or a bare
// function of the same signature), and string (a pattern, parsed at
// call time; a parse failure surfaces as pattern.ErrInvalidPattern).
// Anything else fails with ErrUnsupportedScheme.
func Format(ctx context.Context, scheme any, numbers ...uint64) (any, error) {
	switch s := scheme.(type) {
	case Numbering:
		return s.Apply(ctx, numbers...)
	case pattern.Pattern:
		return s.Apply(numbers...), nil
	case Func:
		return s(ctx, numbers...)
	case func(context.Context, ...uint64) (any, error):
		return s(ctx, numbers...)
	case string:
		p, err := pattern.Parse(s)
		if err != nil {
			return nil, err
		}

		return p.Apply(numbers...), nil
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupportedScheme, scheme)
}
