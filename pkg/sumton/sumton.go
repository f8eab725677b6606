// Package sumton sums the integers 1..n three ways: a loop, recursion and
// the closed formula n(n+1)/2. All three return 0 for n <= 0.
package sumton

import "fmt"

const (
	// MaxN is the largest n whose sum fits in an int64.
	MaxN int64 = 1<<32 - 1

	// MaxRecursiveN bounds the recursion depth Compare is willing to use.
	MaxRecursiveN int64 = 1_000_000
)

// Loop runs in O(n) time and O(1) space.
func Loop(n int64) int64 {
	var sum int64
	for i := int64(1); i <= n; i++ {
		sum += i
	}
	return sum
}

// Recursive runs in O(n) time and uses one stack frame per term.
func Recursive(n int64) int64 {
	if n <= 0 {
		return 0
	}
	return n + Recursive(n-1)
}

// Formula runs in O(1). The even factor is halved first so the
// intermediate product does not overflow for any n <= MaxN.
func Formula(n int64) int64 {
	if n <= 0 {
		return 0
	}
	if n%2 == 0 {
		return (n / 2) * (n + 1)
	}
	return n * ((n + 1) / 2)
}

// Result holds the three sums for one n.
type Result struct {
	N         int64
	Loop      int64
	Recursive int64
	Formula   int64

	// RecursiveSkipped is set when N exceeds MaxRecursiveN.
	RecursiveSkipped bool
}

// Compare computes every variant for n.
func Compare(n int64) (Result, error) {
	if n > MaxN {
		return Result{}, fmt.Errorf("n=%d overflows int64, max is %d", n, MaxN)
	}

	result := Result{
		N:       n,
		Loop:    Loop(n),
		Formula: Formula(n),
	}
	if n > MaxRecursiveN {
		result.RecursiveSkipped = true
	} else {
		result.Recursive = Recursive(n)
	}
	return result, nil
}

// Agree reports whether every computed variant produced the same sum.
func (r Result) Agree() bool {
	if r.Loop != r.Formula {
		return false
	}
	return r.RecursiveSkipped || r.Recursive == r.Formula
}
