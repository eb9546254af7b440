package bound

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads the textual forms "..", "a..", "..b", "..=b", "a..b" and "a..=b".
// Surrounding whitespace is ignored.
func Parse(s string) (Range, error) {
	text := strings.TrimSpace(s)
	i := strings.Index(text, "..")
	if i < 0 {
		return Range{}, fmt.Errorf("invalid range %q: missing \"..\"", s)
	}

	var r Range
	if start := text[:i]; start != "" {
		lo, err := parseIndex(start)
		if err != nil {
			return Range{}, fmt.Errorf("invalid range %q: start: %w", s, err)
		}
		r.Start = Inclusive(lo)
	}

	end := text[i+2:]
	inclusive := strings.HasPrefix(end, "=")
	if inclusive {
		end = end[1:]
		if end == "" {
			return Range{}, fmt.Errorf("invalid range %q: \"..=\" needs an end", s)
		}
	}
	if end != "" {
		hi, err := parseIndex(end)
		if err != nil {
			return Range{}, fmt.Errorf("invalid range %q: end: %w", s, err)
		}
		if inclusive {
			r.End = Inclusive(hi)
		} else {
			r.End = Exclusive(hi)
		}
	}
	return r, nil
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, fmt.Errorf("negative index %d", i)
	}
	return i, nil
}
