package bisect

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/yuya-isaka/bisection/bound"
	"github.com/yuya-isaka/bisection/order"
)

// The Insort functions follow append: the returned slice must be kept.
// Elements at and after the insertion point are shifted one place right,
// in the same backing array when it has room.

// InsortRight inserts x after the rightmost element equal to it.
func InsortRight[S ~[]E, E constraints.Ordered](s S, x E) S {
	return slices.Insert(s, Right(s, x), x)
}

// Insort is InsortRight.
func Insort[S ~[]E, E constraints.Ordered](s S, x E) S {
	return InsortRight(s, x)
}

func InsortRightIn[S ~[]E, E constraints.Ordered](s S, x E, r bound.Range) S {
	return slices.Insert(s, RightIn(s, x, r), x)
}

// InsortRightFunc inserts x after the rightmost element e with cmp(e, x) == Equal.
func InsortRightFunc[S ~[]E, E any](s S, x E, cmp func(e, x E) order.Ordering) S {
	return InsortRightInFunc(s, x, bound.Full(), cmp)
}

func InsortRightInFunc[S ~[]E, E any](s S, x E, r bound.Range, cmp func(e, x E) order.Ordering) S {
	return slices.Insert(s, RightInFunc(s, r, order.Target(x, cmp)), x)
}

// InsortLeft inserts x before the leftmost element equal to it.
func InsortLeft[S ~[]E, E constraints.Ordered](s S, x E) S {
	return slices.Insert(s, Left(s, x), x)
}

func InsortLeftIn[S ~[]E, E constraints.Ordered](s S, x E, r bound.Range) S {
	return slices.Insert(s, LeftIn(s, x, r), x)
}

// InsortLeftFunc inserts x before the leftmost element e with cmp(e, x) == Equal.
func InsortLeftFunc[S ~[]E, E any](s S, x E, cmp func(e, x E) order.Ordering) S {
	return InsortLeftInFunc(s, x, bound.Full(), cmp)
}

func InsortLeftInFunc[S ~[]E, E any](s S, x E, r bound.Range, cmp func(e, x E) order.Ordering) S {
	return slices.Insert(s, LeftInFunc(s, r, order.Target(x, cmp)), x)
}
