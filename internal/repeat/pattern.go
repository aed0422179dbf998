// Package repeat finds identifiers whose decimal form is a digit pattern
// repeated, and sums those that fall inside an idrange.Set.
package repeat

import "strconv"

// IsDouble reports whether s is some non-empty string written twice,
// e.g. "11", "6464", "123123".
func IsDouble(s string) bool {
	n := len(s)
	if n == 0 || n%2 != 0 {
		return false
	}
	return s[:n/2] == s[n/2:]
}

// IsRepeated reports whether s is some non-empty prefix written two or more
// times with nothing left over, e.g. "111", "1212121212", "12341234".
func IsRepeated(s string) bool {
	n := len(s)
	for p := 1; p <= n/2; p++ {
		if n%p != 0 {
			continue
		}
		if repeats(s, p) {
			return true
		}
	}
	return false
}

// repeats reports whether every block of length p in s equals s[:p].
func repeats(s string, p int) bool {
	pattern := s[:p]
	for i := p; i < len(s); i += p {
		if s[i:i+p] != pattern {
			return false
		}
	}
	return true
}

// DoubleNumber is IsDouble applied to n in base 10.
func DoubleNumber(n uint64) bool {
	return IsDouble(strconv.FormatUint(n, 10))
}

// RepeatedNumber is IsRepeated applied to n in base 10.
func RepeatedNumber(n uint64) bool {
	var buf [20]byte
	return IsRepeated(string(strconv.AppendUint(buf[:0], n, 10)))
}
