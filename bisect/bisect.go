// Package bisect finds insertion points in sorted slices and inserts values
// there without breaking the order.
//
// Every search runs on a half-open window [lo, hi) of the slice, given by a
// bound.Range. A window that does not fit the slice is a programming error
// and panics with a *bound.Error before any element is probed.
//
// The Func variants take a probe that reports where an element sits relative
// to the target: order.Less when the element sorts before it, order.Greater
// when after, order.Equal otherwise.
package bisect

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/yuya-isaka/bisection/bound"
	"github.com/yuya-isaka/bisection/order"
)

// Bias decides where a target lands among elements equal to it.
type Bias uint8

const (
	// BiasLeft lands before the leftmost equal element.
	BiasLeft Bias = iota
	// BiasRight lands after the rightmost equal element.
	BiasRight
)

func (b Bias) String() string {
	if b == BiasLeft {
		return "left"
	}
	return "right"
}

// ParseBias accepts "left" or "right" in any case.
func ParseBias(s string) (Bias, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return BiasLeft, nil
	case "right":
		return BiasRight, nil
	}
	return 0, fmt.Errorf("invalid bias %q: want left or right", s)
}

// narrows reports whether the probe result at mid moves the upper bound down.
func (b Bias) narrows(o order.Ordering) bool {
	if b == BiasRight {
		return o == order.Greater
	}
	return o != order.Less
}

// Search is the loop behind every entry point of this package.
// It returns the first index in the resolved window whose probe result
// narrows under b, or hi if there is none.
func Search[S ~[]E, E any](s S, r bound.Range, b Bias, probe func(E) order.Ordering) int {
	lo, hi := r.Resolve(len(s))
	for lo < hi {
		mid := lo + (hi-lo)/2
		if b.narrows(probe(s[mid])) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

func natural[E constraints.Ordered](x E) func(E) order.Ordering {
	return func(e E) order.Ordering {
		return order.Compare(e, x)
	}
}

// Right returns the index i such that every element of s[:i] is <= x and
// every element of s[i:] is > x.
func Right[S ~[]E, E constraints.Ordered](s S, x E) int {
	return Search(s, bound.Full(), BiasRight, natural(x))
}

// Bisect is Right.
func Bisect[S ~[]E, E constraints.Ordered](s S, x E) int {
	return Right(s, x)
}

// RightIn is Right restricted to the window r.
func RightIn[S ~[]E, E constraints.Ordered](s S, x E, r bound.Range) int {
	return Search(s, r, BiasRight, natural(x))
}

// RightFunc returns the index i such that probe yields Less or Equal for
// every element of s[:i] and Greater for every element of s[i:].
func RightFunc[S ~[]E, E any](s S, probe func(E) order.Ordering) int {
	return Search(s, bound.Full(), BiasRight, probe)
}

func RightInFunc[S ~[]E, E any](s S, r bound.Range, probe func(E) order.Ordering) int {
	return Search(s, r, BiasRight, probe)
}

// Left returns the index i such that every element of s[:i] is < x and
// every element of s[i:] is >= x.
func Left[S ~[]E, E constraints.Ordered](s S, x E) int {
	return Search(s, bound.Full(), BiasLeft, natural(x))
}

// LeftIn is Left restricted to the window r.
func LeftIn[S ~[]E, E constraints.Ordered](s S, x E, r bound.Range) int {
	return Search(s, r, BiasLeft, natural(x))
}

// LeftFunc returns the index i such that probe yields Less for every element
// of s[:i] and Equal or Greater for every element of s[i:].
func LeftFunc[S ~[]E, E any](s S, probe func(E) order.Ordering) int {
	return Search(s, bound.Full(), BiasLeft, probe)
}

func LeftInFunc[S ~[]E, E any](s S, r bound.Range, probe func(E) order.Ordering) int {
	return Search(s, r, BiasLeft, probe)
}
