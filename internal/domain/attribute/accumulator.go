package attribute

// Accumulator sums sets in place. It is the mutable counterpart of Merge for
// hot loops; the Set it hands out is a snapshot and never changes afterwards.
type Accumulator struct {
	values map[Key]float64
}

// NewAccumulator creates an empty accumulator
func NewAccumulator() *Accumulator {
	return &Accumulator{values: make(map[Key]float64)}
}

// Add folds s into the running total
func (a *Accumulator) Add(s Set) {
	for k, v := range s.values {
		a.values[k] += v
	}
}

// Set returns a snapshot of the running total
func (a *Accumulator) Set() Set {
	return Of(a.values)
}
