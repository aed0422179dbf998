// Package idrange parses inclusive identifier ranges and normalizes them into
// a sorted, coalesced set that answers membership queries in logarithmic time.
package idrange

import (
	"strconv"
	"strings"
	"unicode"
)

// Range is an inclusive range of identifiers. Start <= End always holds for
// ranges produced by this package.
type Range struct {
	Start, End uint64
}

// Len returns the number of identifiers in r. It wraps to 0 for the range
// covering every uint64.
func (r Range) Len() uint64 {
	return r.End - r.Start + 1
}

// Contains reports whether x lies in r.
func (r Range) Contains(x uint64) bool {
	return r.Start <= x && x <= r.End
}

func (r Range) String() string {
	return strconv.FormatUint(r.Start, 10) + "-" + strconv.FormatUint(r.End, 10)
}

// Parse reads comma-separated "start-end" tokens. Whitespace anywhere in text
// is ignored, so a token may be wrapped across lines. Tokens that are empty,
// lack the separator, hold anything but base-10 digits, or have start > end
// are skipped.
func Parse(text string) []Range {
	text = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	var ranges []Range
	for _, token := range strings.Split(text, ",") {
		if r, ok := parseToken(token); ok {
			ranges = append(ranges, r)
		}
	}
	return ranges
}

// ParseLines reads one "start-end" token per line. Blank lines and malformed
// tokens are skipped, same as Parse.
func ParseLines(text string) []Range {
	var ranges []Range
	for _, line := range strings.Split(text, "\n") {
		if r, ok := parseToken(strings.TrimSpace(line)); ok {
			ranges = append(ranges, r)
		}
	}
	return ranges
}

func parseToken(token string) (r Range, ok bool) {
	if token == "" {
		return
	}
	low, high, found := strings.Cut(token, "-")
	if !found {
		return
	}
	start, err := strconv.ParseUint(low, 10, 64)
	if err != nil {
		return
	}
	end, err := strconv.ParseUint(high, 10, 64)
	if err != nil || start > end {
		return
	}
	return Range{start, end}, true
}
