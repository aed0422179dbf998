package idrange

import (
	"fmt"
	"sort"
)

// Set is a sorted sequence of ranges in which any two neighbors a, b satisfy
// b.Start > a.End+1. The zero value is the empty set. A Set is never modified
// after Merge returns it.
type Set struct {
	ranges []Range
}

// Merge sorts raw by start and coalesces ranges that overlap or touch.
// raw itself is left untouched.
func Merge(raw []Range) Set {
	if len(raw) == 0 {
		return Set{}
	}

	sorted := make([]Range, len(raw))
	copy(sorted, raw)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	merged := make([]Range, 0, len(sorted))
	cur := sorted[0]
	for _, r := range sorted[1:] {
		// r.Start-cur.End == 1 is the adjacency test without computing
		// cur.End+1, which overflows at math.MaxUint64.
		if r.Start <= cur.End || r.Start-cur.End == 1 {
			if r.End > cur.End {
				cur.End = r.End
			}
			continue
		}
		merged = append(merged, cur)
		cur = r
	}
	merged = append(merged, cur)

	return Set{merged}
}

// MergeText is Merge(Parse(text)).
func MergeText(text string) Set {
	return Merge(Parse(text))
}

// Len returns the number of ranges in s.
func (s Set) Len() int {
	return len(s.ranges)
}

// Ranges returns a copy of the ranges in s.
func (s Set) Ranges() []Range {
	if len(s.ranges) == 0 {
		return nil
	}
	return append([]Range(nil), s.ranges...)
}

// At returns the i-th range of s.
func (s Set) At(i int) Range {
	return s.ranges[i]
}

// Max returns the largest identifier in s.
func (s Set) Max() (max uint64, ok bool) {
	if len(s.ranges) == 0 {
		return 0, false
	}
	return s.ranges[len(s.ranges)-1].End, true
}

// Count returns the number of distinct identifiers covered by s.
func (s Set) Count() uint64 {
	var n uint64
	for _, r := range s.ranges {
		n += r.Len()
	}
	return n
}

// Contains reports whether some range of s holds x.
func (s Set) Contains(x uint64) bool {
	lo, hi := 0, len(s.ranges)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		r := s.ranges[mid]
		switch {
		case x < r.Start:
			hi = mid
		case x > r.End:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}

// Next returns the first range of s that ends at or after x. x lies in s
// exactly when ok is true and r.Start <= x.
func (s Set) Next(x uint64) (r Range, ok bool) {
	i := sort.Search(len(s.ranges), func(i int) bool { return s.ranges[i].End >= x })
	if i == len(s.ranges) {
		return Range{}, false
	}
	return s.ranges[i], true
}

// Filter returns the identifiers of ids that s contains, in their original
// order.
func (s Set) Filter(ids []uint64) []uint64 {
	var fresh []uint64
	for _, id := range ids {
		if s.Contains(id) {
			fresh = append(fresh, id)
		}
	}
	return fresh
}

// Equal reports whether s and t cover the same identifiers.
func (s Set) Equal(t Set) bool {
	if len(s.ranges) != len(t.ranges) {
		return false
	}
	for i := range s.ranges {
		if s.ranges[i] != t.ranges[i] {
			return false
		}
	}
	return true
}

func (s Set) String() string {
	return fmt.Sprint(s.ranges)
}
