package order

import "golang.org/x/exp/constraints"

// Ordering is the result of a three-way comparison.
// Only Less, Equal and Greater satisfy it.
type Ordering interface {
	orderProtected()
	String() string
}

type order int

func (o order) orderProtected() {}

func (o order) String() string {
	switch o {
	case Less:
		return "Less"
	case Greater:
		return "Greater"
	}
	return "Equal"
}

const (
	Less    order = -1
	Equal   order = 0
	Greater order = 1
)

// FromInt maps a cmp.Compare style result onto an Ordering.
func FromInt(c int) Ordering {
	if c < 0 {
		return Less
	}
	if c > 0 {
		return Greater
	}
	return Equal
}

// Reverse flips Less and Greater.
func Reverse(o Ordering) Ordering {
	switch o {
	case Less:
		return Greater
	case Greater:
		return Less
	}
	return Equal
}

// Compare orders a against b using only <.
// Values that are unordered with each other (NaN) compare Equal.
func Compare[T constraints.Ordered](a, b T) Ordering {
	if a < b {
		return Less
	}
	if b < a {
		return Greater
	}
	return Equal
}

// By builds a comparator that orders elements by a derived key.
func By[E any, K constraints.Ordered](key func(E) K) func(a, b E) Ordering {
	return func(a, b E) Ordering {
		return Compare(key(a), key(b))
	}
}

// Target captures x and returns a probe telling where an element sits relative to it.
func Target[E any](x E, cmp func(a, b E) Ordering) func(E) Ordering {
	return func(e E) Ordering {
		return cmp(e, x)
	}
}

func CompareBytes(a, b []byte) Ordering {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return Less
		}
		if a[i] > b[i] {
			return Greater
		}
	}

	// the shared prefix is equal, the shorter one sorts first
	if len(a) < len(b) {
		return Less
	}
	if len(a) > len(b) {
		return Greater
	}

	return Equal
}
