package testutil

// FixedRand replays Values in order, wrapping around. Empty Values yields 0.5.
type FixedRand struct {
	Values []float64
	next   int
}

func (r *FixedRand) Float64() float64 {
	if len(r.Values) == 0 {
		return 0.5
	}
	v := r.Values[r.next%len(r.Values)]
	r.next++
	return v
}
