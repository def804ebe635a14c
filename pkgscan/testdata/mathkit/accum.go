package mathkit

// Accum accumulates a running total.
type Accum struct {
	// Total is the current sum.
	Total int
}

// NewAccum returns an empty accumulator.
func NewAccum() *Accum { return &Accum{} }

// Add folds x into the running total.
func (a *Accum) Add(x int) { a.Total += x }
