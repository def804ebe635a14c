// Package mathkit provides small arithmetic helpers.
//
// It exists to exercise source scanning end to end.
package mathkit

// MaxIter bounds the iterative helpers.
const MaxIter = 64

var (
	// Verbose toggles chatty output.
	Verbose = false

	limit = 10
)

// Sum adds the inputs.
//
// It ignores overflow entirely.
func Sum(xs ...int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func helper() int { return limit }
