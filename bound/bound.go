// Package bound describes sub-ranges of a sequence and resolves them into
// half-open [lo, hi) index windows.
package bound

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is the sentinel behind every *Error.
var ErrOutOfBounds = errors.New("range out of bounds")

// Error reports a window that does not fit a sequence of length Len.
type Error struct {
	Lo, Hi, Len int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: window [%d, %d) for length %d", ErrOutOfBounds, e.Lo, e.Hi, e.Len)
}

func (e *Error) Unwrap() error {
	return ErrOutOfBounds
}

type Kind uint8

const (
	Unbounded Kind = iota
	Included
	Excluded
)

func (k Kind) String() string {
	switch k {
	case Included:
		return "Included"
	case Excluded:
		return "Excluded"
	}
	return "Unbounded"
}

// Bound is one end of a Range. The zero value is unbounded.
type Bound struct {
	Kind  Kind
	Index int
}

func Inclusive(i int) Bound { return Bound{Kind: Included, Index: i} }

func Exclusive(i int) Bound { return Bound{Kind: Excluded, Index: i} }

// Range is a window of a sequence. The zero value covers the whole sequence.
type Range struct {
	Start Bound
	End   Bound
}

// Full is the `..` range.
func Full() Range { return Range{} }

// Span is the `lo..hi` range.
func Span(lo, hi int) Range { return Range{Start: Inclusive(lo), End: Exclusive(hi)} }

// SpanInclusive is the `lo..=hi` range.
func SpanInclusive(lo, hi int) Range { return Range{Start: Inclusive(lo), End: Inclusive(hi)} }

// From is the `lo..` range.
func From(lo int) Range { return Range{Start: Inclusive(lo)} }

// To is the `..hi` range.
func To(hi int) Range { return Range{End: Exclusive(hi)} }

// ToInclusive is the `..=hi` range.
func ToInclusive(hi int) Range { return Range{End: Inclusive(hi)} }

func (r Range) indices(n int) (lo, hi int) {
	switch r.Start.Kind {
	case Included:
		lo = r.Start.Index
	case Excluded:
		lo = r.Start.Index + 1
	default:
		lo = 0
	}

	switch r.End.Kind {
	case Included:
		hi = r.End.Index + 1
	case Excluded:
		hi = r.End.Index
	default:
		hi = n
	}
	return lo, hi
}

// Validate reports whether r fits a sequence of length n.
// It returns a *Error when either resolved end lies outside [0, n].
// lo > hi is accepted and yields an empty search.
func (r Range) Validate(n int) error {
	_, _, err := r.resolve(n)
	return err
}

// Resolve converts r into a concrete window against a sequence of length n.
// It panics with a *Error when Validate would fail.
func (r Range) Resolve(n int) (lo, hi int) {
	lo, hi, err := r.resolve(n)
	if err != nil {
		panic(err)
	}
	return lo, hi
}

func (r Range) resolve(n int) (int, int, error) {
	lo, hi := r.indices(n)
	if hi > n || lo > n || lo < 0 || hi < 0 {
		return 0, 0, &Error{Lo: lo, Hi: hi, Len: n}
	}
	return lo, hi, nil
}

func (r Range) String() string {
	var s string
	switch r.Start.Kind {
	case Included:
		s = fmt.Sprint(r.Start.Index)
	case Excluded:
		s = fmt.Sprint(r.Start.Index + 1)
	}
	switch r.End.Kind {
	case Included:
		return s + "..=" + fmt.Sprint(r.End.Index)
	case Excluded:
		return s + ".." + fmt.Sprint(r.End.Index)
	}
	return s + ".."
}
