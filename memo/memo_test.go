package memo_test

import (
	"testing"

	"github.com/half-applied/deferred_go/arith"
	"github.com/half-applied/deferred_go/deferred"
	"github.com/half-applied/deferred_go/memo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinary_CachesSuccess(t *testing.T) {
	count := 0
	fn := memo.Binary(func(a, b int) deferred.Outcome[int, string] {
		count++
		return deferred.Success[int, string](a + b)
	}, 2)

	assert.Equal(t, 5, fn(2, 3).Value())
	assert.Equal(t, 5, fn(2, 3).Value()) // cached
	assert.Equal(t, 1, count)
}

func TestBinary_CachesFailure(t *testing.T) {
	count := 0
	divide := memo.Binary(func(a, b float64) deferred.Outcome[float64, error] {
		count++
		return deferred.RunPromise(arith.Divide(a, b)).Await()
	}, 2)

	out := divide(1, 0)
	require.True(t, out.Failed())
	out = divide(1, 0) // cached, including the failure
	require.True(t, out.Failed())
	assert.Equal(t, arith.ErrDivideByZero, out.Failure())
	assert.Equal(t, 1, count)
}

func TestBinary_DistinctOperandPairs(t *testing.T) {
	count := 0
	fn := memo.Binary(func(a, b int) deferred.Outcome[int, string] {
		count++
		return deferred.Success[int, string](a * b)
	}, 4)

	assert.Equal(t, 6, fn(2, 3).Value())
	assert.Equal(t, 6, fn(3, 2).Value()) // operand order matters
	assert.Equal(t, 2, count)
}

func TestBinary_OperandsRenderingAroundSeparator(t *testing.T) {
	count := 0
	join := memo.Binary(func(a, b string) deferred.Outcome[string, error] {
		count++
		return deferred.Success[string, error](a + "+" + b)
	}, 4)

	// both pairs render identically as "a|b|c"; they must stay distinct
	assert.Equal(t, "a|b+c", join("a|b", "c").Value())
	assert.Equal(t, "a+b|c", join("a", "b|c").Value())
	assert.Equal(t, 2, count)

	assert.Equal(t, "a|b+c", join("a|b", "c").Value()) // cached, per pair
	assert.Equal(t, 2, count)
}

func TestBinary_RotationBoundsTheTable(t *testing.T) {
	count := 0
	fn := memo.Binary(func(a, b int) deferred.Outcome[int, string] {
		count++
		return deferred.Success[int, string](a + b)
	}, 1)

	fn(1, 1) // stored in active
	fn(2, 2) // rotates; (1,1) moves to stale
	assert.Equal(t, 2, count)

	fn(1, 1) // still served from the stale map
	assert.Equal(t, 2, count)

	fn(3, 3) // rotates again; (1,1) dropped
	fn(1, 1) // recomputed
	assert.Equal(t, 4, count)
}
