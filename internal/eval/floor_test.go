package eval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leonardinius/goarith/internal/eval"
)

func TestFloorDiv(t *testing.T) {
	testcases := []struct {
		a, b, q int64
	}{
		{7, 3, 2},
		{-7, 3, -3},
		{7, -3, -3},
		{-7, -3, 2},
		{6, 3, 2},
		{-6, 3, -2},
		{0, 5, 0},
		{1, 2, 0},
		{-1, 2, -1},
		{math.MaxInt64, 1, math.MaxInt64},
		{math.MinInt64, 2, math.MinInt64 / 2},
		{math.MinInt64 + 1, -1, math.MaxInt64},
	}

	for _, tc := range testcases {
		assert.Equal(t, tc.q, eval.FloorDiv(tc.a, tc.b), "%d // %d", tc.a, tc.b)
	}
}

func TestFloorDivOtherIntegers(t *testing.T) {
	assert.Equal(t, -3, eval.FloorDiv(-7, 3))
	assert.Equal(t, int8(-43), eval.FloorDiv(int8(-127), int8(3)))
	assert.Equal(t, uint(2), eval.FloorDiv(uint(7), uint(3)))
}
