package ivnum

// Partition splits x into n equal-width (finite x) covering subintervals
// in ascending order, used by the MaxCID contractor (spec §4.4) and the
// PARTITION slicing strategy (spec §4.6). Returns a single-element slice
// containing x unchanged if x is empty, a singleton, already canonical,
// unbounded, or n < 2.
func Partition(x Interval, n int) []Interval {
	if x.IsEmpty() || x.IsSingleton() || x.IsCanonical() || !x.IsFinite() || n < 2 {
		return []Interval{x}
	}
	w := x.Width() / float64(n)
	out := make([]Interval, 0, n)
	lo := x.Lo()
	for i := 0; i < n; i++ {
		hi := x.Lo() + w*float64(i+1)
		if i == n-1 {
			hi = x.Hi()
		}
		out = append(out, New(lo, hi))
		lo = hi
	}
	return out
}
