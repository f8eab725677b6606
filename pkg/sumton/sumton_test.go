package sumton_test

import (
	"math"
	"testing"

	"catalog/pkg/sumton"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariants(t *testing.T) {
	tests := []struct {
		n    int64
		want int64
	}{
		{-3, 0},
		{0, 0},
		{1, 1},
		{5, 15},
		{100, 5050},
		{1000, 500500},
		{10000, 50005000},
		{100000, 5000050000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sumton.Loop(tt.n), "loop n=%d", tt.n)
		assert.Equal(t, tt.want, sumton.Recursive(tt.n), "recursive n=%d", tt.n)
		assert.Equal(t, tt.want, sumton.Formula(tt.n), "formula n=%d", tt.n)
	}
}

func TestFormula_LargestN(t *testing.T) {
	assert.Equal(t, int64(math.MaxInt64-(1<<31)+1), sumton.Formula(sumton.MaxN))
	assert.Positive(t, sumton.Formula(sumton.MaxN-1))
}

func TestCompare(t *testing.T) {
	result, err := sumton.Compare(100)
	require.NoError(t, err)
	assert.Equal(t, sumton.Result{N: 100, Loop: 5050, Recursive: 5050, Formula: 5050}, result)
	assert.True(t, result.Agree())

	result, err = sumton.Compare(sumton.MaxRecursiveN + 1)
	require.NoError(t, err)
	assert.True(t, result.RecursiveSkipped)
	assert.Zero(t, result.Recursive)
	assert.Equal(t, result.Formula, result.Loop)
	assert.True(t, result.Agree())

	_, err = sumton.Compare(sumton.MaxN + 1)
	assert.Error(t, err)
}
