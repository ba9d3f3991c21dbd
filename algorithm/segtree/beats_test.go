package segtree

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/algo/xerrors"
)

func TestBeatsChmin(t *testing.T) {
	b := NewBeatsFrom([]int64{5, 3, 8, 2, 7})

	b.Chmin(0, 5, 6)
	assert.Equal(t, []int64{5, 3, 6, 2, 6}, b.ToSlice())
	assert.Equal(t, int64(22), b.Sum(0, 5))

	b.Chmax(0, 5, 4)
	assert.Equal(t, []int64{5, 4, 6, 4, 6}, b.ToSlice())
	assert.Equal(t, int64(25), b.Sum(0, 5))

	b.Add(1, 4, 1)
	assert.Equal(t, []int64{5, 5, 7, 5, 6}, b.ToSlice())
	assert.Equal(t, int64(28), b.Sum(0, 5))

	assert.Equal(t, int64(5), b.Min(0, 5))
	assert.Equal(t, int64(7), b.Max(0, 5))
	require.NoError(t, b.CheckInvariants())
}

func TestBeatsCrossingBounds(t *testing.T) {
	b := NewBeatsFrom([]int64{1, 9, 4, 6})
	b.Chmax(0, 4, 5)
	b.Chmin(0, 4, 3)
	assert.Equal(t, []int64{3, 3, 3, 3}, b.ToSlice())
	assert.Equal(t, int64(12), b.Sum(0, 4))
	require.NoError(t, b.CheckInvariants())
}

func TestBeatsEmpty(t *testing.T) {
	b := NewBeatsFrom([]int64{2, 4})
	assert.Equal(t, int64(0), b.Sum(1, 1))
	assert.Equal(t, int64(math.MaxInt64), b.Min(1, 1))
	assert.Equal(t, int64(math.MinInt64), b.Max(1, 1))

	z := NewBeats(0)
	assert.Equal(t, 0, z.Len())
	assert.Equal(t, int64(0), z.Sum(0, 0))
	require.NoError(t, z.CheckInvariants())

	assert.Panics(t, func() { b.Chmin(0, 3, 1) })
	assert.Panics(t, func() { b.Set(0, math.MinInt64) })
}

func TestBeatsSetGet(t *testing.T) {
	b := NewBeats(6)
	b.Add(0, 6, 3)
	b.Set(2, -4)
	b.Chmin(1, 5, 1)
	assert.Equal(t, int64(1), b.Get(1))
	assert.Equal(t, int64(-4), b.Get(2))
	assert.Equal(t, int64(3), b.Get(5))
	assert.Equal(t, int64(3+1-4+1+1+3), b.Sum(0, 6))
	require.NoError(t, b.CheckInvariants())
}

func TestBeatsRandomAgainstNaive(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))
	for round := 0; round < 30; round++ {
		n := 1 + r.IntN(50)
		naive := make([]int64, n)
		for i := range naive {
			naive[i] = r.Int64N(100) - 50
		}
		b := NewBeatsFrom(naive)

		for q := 0; q < 300; q++ {
			l, rr := randRange(r, n)
			v := r.Int64N(100) - 50
			switch r.IntN(6) {
			case 0:
				b.Chmin(l, rr, v)
				for i := l; i < rr; i++ {
					naive[i] = min(naive[i], v)
				}
			case 1:
				b.Chmax(l, rr, v)
				for i := l; i < rr; i++ {
					naive[i] = max(naive[i], v)
				}
			case 2:
				b.Add(l, rr, v/4)
				for i := l; i < rr; i++ {
					naive[i] += v / 4
				}
			case 3:
				i := r.IntN(n)
				b.Set(i, v)
				naive[i] = v
			default:
				var s int64
				lo, hi := int64(math.MaxInt64), int64(math.MinInt64)
				for i := l; i < rr; i++ {
					s += naive[i]
					lo = min(lo, naive[i])
					hi = max(hi, naive[i])
				}
				require.Equal(t, s, b.Sum(l, rr), "sum [%d,%d)", l, rr)
				require.Equal(t, lo, b.Min(l, rr), "min [%d,%d)", l, rr)
				require.Equal(t, hi, b.Max(l, rr), "max [%d,%d)", l, rr)
			}
			require.NoError(t, b.CheckInvariants(), "round %d op %d", round, q)
		}
		require.Equal(t, naive, b.ToSlice())
	}
}

func TestCheckInvariantsDetectsCorruption(t *testing.T) {
	b := NewBeatsFrom([]int64{1, 2, 3, 4})
	b.d[1].sum++
	err := b.CheckInvariants()
	require.ErrorIs(t, err, xerrors.ErrInvariantViolated)

	c := NewBeatsFrom([]int64{1, 2})
	c.d[1].max2 = c.d[1].max1
	require.ErrorIs(t, c.CheckInvariants(), xerrors.ErrInvariantViolated)
}
