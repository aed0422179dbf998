package repeat

import "github.com/b97tsk/idscan/internal/idrange"

// SumDoubles returns the sum of every identifier in set whose decimal form
// is a pattern written exactly twice.
//
// Instead of visiting each identifier it generates the doubles themselves:
// a double of 2k digits is h*10^k + h for a k-digit half h, and doubles grow
// with h. At most about sqrt(max) candidates are formed, each checked with a
// binary search; a candidate that lands between ranges moves h straight to
// the first half whose double reaches the next range.
func SumDoubles(set idrange.Set) uint64 {
	var sum uint64
	eachDouble(set, func(v uint64) { sum += v })
	return sum
}

// Doubles returns the identifiers SumDoubles adds up, in ascending order.
func Doubles(set idrange.Set) []uint64 {
	var doubles []uint64
	eachDouble(set, func(v uint64) { doubles = append(doubles, v) })
	return doubles
}

func eachDouble(set idrange.Set, f func(uint64)) {
	max, ok := set.Max()
	if !ok {
		return
	}

	width := digits(max)
	low := uint64(1)
	for half := 1; 2*half <= width; half++ {
		high := low * 10
		mul := high + 1
		// h*mul <= max exactly when h <= max/mul; the division keeps the
		// product from ever overflowing.
		limit := max / mul
		for h := low; h < high && h <= limit; {
			v := h * mul
			r, ok := set.Next(v)
			if !ok {
				// Longer doubles are larger still.
				return
			}
			if r.Start <= v {
				f(v)
				h++
				continue
			}
			h = r.Start / mul
			if r.Start%mul != 0 {
				h++
			}
		}
		low = high
	}
}

// digits returns the number of decimal digits in n.
func digits(n uint64) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// SumRepeated returns the sum of every identifier in set whose decimal form
// is a pattern written two or more times. It tests every identifier the set
// covers, so the caller must keep set.Count() small enough to scan.
func SumRepeated(set idrange.Set) uint64 {
	var sum uint64
	for i := 0; i < set.Len(); i++ {
		sum += sumRepeatedIn(set.At(i))
	}
	return sum
}

func sumRepeatedIn(r idrange.Range) uint64 {
	var sum uint64
	for x := r.Start; ; x++ {
		if RepeatedNumber(x) {
			sum += x
		}
		if x == r.End {
			return sum
		}
	}
}
