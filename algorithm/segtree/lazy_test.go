package segtree

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/algo/algorithm/algebra"
	"github.com/wyfcoding/algo/xerrors"
)

func TestLazySumAdd(t *testing.T) {
	st := NewRangeAddRangeSum([]int64{1, 2, 3, 4, 5})
	st.Add(1, 4, 10)

	assert.Equal(t, []int64{1, 12, 13, 14, 5}, st.ToSlice())
	assert.Equal(t, int64(45), st.Sum(0, 5))
	assert.Equal(t, int64(27), st.Sum(2, 4))
	assert.Equal(t, int64(45), st.AllSum())
	assert.Equal(t, int64(0), st.Sum(3, 3))
}

func TestAffineComposition(t *testing.T) {
	st := NewRangeAffineRangeSum(make([]int64, 4))
	st.Affine(0, 4, 2, 1)
	assert.Equal(t, []int64{1, 1, 1, 1}, st.ToSlice())
	st.Affine(1, 3, 3, 2)
	assert.Equal(t, []int64{1, 5, 5, 1}, st.ToSlice())
	assert.Equal(t, int64(12), st.Sum(0, 4))
}

func TestMaxRightPrefixSum(t *testing.T) {
	st := NewRangeAddRangeSum([]int64{1, 2, 3, 4, 5})
	assert.Equal(t, 3, st.MaxRight(0, func(s int64) bool { return s <= 6 }))
	assert.Equal(t, 5, st.MaxRight(0, func(s int64) bool { return s <= 100 }))
	assert.Equal(t, 0, st.MaxRight(0, func(s int64) bool { return s <= 0 }))
	assert.Equal(t, 5, st.MaxRight(5, func(s int64) bool { return s <= 0 }))
	assert.Equal(t, 3, st.MinLeft(5, func(s int64) bool { return s <= 9 }))
	assert.Equal(t, 0, st.MinLeft(0, func(s int64) bool { return s <= 0 }))
}

func TestLazyPanics(t *testing.T) {
	st := NewRangeAddRangeSum([]int64{1, 2, 3})

	cases := []struct {
		name string
		fn   func()
		want *xerrors.Error
	}{
		{"get negative", func() { st.Get(-1) }, xerrors.ErrIndexOutOfRange},
		{"get past end", func() { st.Get(3) }, xerrors.ErrIndexOutOfRange},
		{"reversed range", func() { st.Sum(2, 1) }, xerrors.ErrInvalidRange},
		{"range past end", func() { st.Add(0, 4, 1) }, xerrors.ErrInvalidRange},
		{"pred fails on identity", func() { st.MaxRight(0, func(int64) bool { return false }) }, xerrors.ErrPredicateIdentity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, tc.want), "got %v", err)
			}()
			tc.fn()
		})
	}
}

func TestEmptyLazy(t *testing.T) {
	st := NewRangeAddRangeSum(nil)
	assert.Equal(t, 0, st.Len())
	assert.Equal(t, int64(0), st.Sum(0, 0))
	assert.Equal(t, 0, st.MaxRight(0, func(int64) bool { return true }))
	assert.Empty(t, st.ToSlice())

	mn := NewRangeAddRangeMin([]int64{4})
	mn.Add(0, 1, -2)
	assert.Equal(t, algebra.Fin(2), mn.Min(0, 1))
	assert.Equal(t, algebra.Inf(), mn.Min(1, 1))
}

func randRange(r *rand.Rand, n int) (int, int) {
	l := r.IntN(n + 1)
	rr := r.IntN(n + 1)
	if l > rr {
		l, rr = rr, l
	}
	return l, rr
}

func TestRandomAddSumMinMax(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 20; round++ {
		n := 1 + r.IntN(40)
		naive := make([]int64, n)
		for i := range naive {
			naive[i] = r.Int64N(200) - 100
		}
		sum := NewRangeAddRangeSum(naive)
		mn := NewRangeAddRangeMin(naive)
		mx := NewRangeAddRangeMax(naive)

		for q := 0; q < 200; q++ {
			l, rr := randRange(r, n)
			switch r.IntN(4) {
			case 0:
				v := r.Int64N(50) - 25
				sum.Add(l, rr, v)
				mn.Add(l, rr, v)
				mx.Add(l, rr, v)
				for i := l; i < rr; i++ {
					naive[i] += v
				}
			case 1:
				i := r.IntN(n)
				v := r.Int64N(200) - 100
				sum.Set(i, v)
				mn.Set(i, v)
				mx.Set(i, v)
				naive[i] = v
			default:
				var s int64
				lo, hi := algebra.Inf(), algebra.NegInf()
				for i := l; i < rr; i++ {
					s += naive[i]
					lo = algebra.MinExt(lo, algebra.Fin(naive[i]))
					hi = algebra.MaxNegExt(hi, algebra.NegFin(naive[i]))
				}
				require.Equal(t, s, sum.Sum(l, rr), "sum [%d,%d)", l, rr)
				require.Equal(t, lo, mn.Min(l, rr), "min [%d,%d)", l, rr)
				require.Equal(t, hi, mx.Max(l, rr), "max [%d,%d)", l, rr)
			}
		}
		require.Equal(t, naive, sum.ToSlice())
		for i := range naive {
			require.Equal(t, naive[i], mn.Get(i))
			require.Equal(t, naive[i], mx.Get(i))
		}
	}
}

func TestRandomAffineVariants(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for round := 0; round < 20; round++ {
		n := 1 + r.IntN(30)
		naive := make([]int64, n)
		for i := range naive {
			naive[i] = r.Int64N(20) - 10
		}
		sum := NewRangeAffineRangeSum(naive)
		sq := NewRangeAffineRangeSumOfSquares(naive)
		mm := NewRangeAffineRangeMinMax(naive)

		for q := 0; q < 100; q++ {
			l, rr := randRange(r, n)
			if r.IntN(2) == 0 {
				// 系数保持很小，避免最值在回绕后失去顺序。
				a, b := r.Int64N(5)-2, r.Int64N(7)-3
				sum.Affine(l, rr, a, b)
				sq.Affine(l, rr, a, b)
				mm.Affine(l, rr, a, b)
				big := false
				for i := l; i < rr; i++ {
					naive[i] = a*naive[i] + b
					big = big || naive[i] > 1<<20 || naive[i] < -(1<<20)
				}
				if big {
					sum.Affine(0, n, 0, 1)
					sq.Affine(0, n, 0, 1)
					mm.Affine(0, n, 0, 1)
					for i := range naive {
						naive[i] = 1
					}
				}
				continue
			}
			var s, s2 int64
			lo, hi := algebra.Inf(), algebra.NegInf()
			for i := l; i < rr; i++ {
				s += naive[i]
				s2 += naive[i] * naive[i]
				lo = algebra.MinExt(lo, algebra.Fin(naive[i]))
				hi = algebra.MaxNegExt(hi, algebra.NegFin(naive[i]))
			}
			require.Equal(t, s, sum.Sum(l, rr))
			require.Equal(t, s, sq.Sum(l, rr))
			require.Equal(t, s2, sq.SumOfSquares(l, rr))
			require.Equal(t, lo, mm.Min(l, rr))
			require.Equal(t, hi, mm.Max(l, rr))
		}
	}
}

func TestRandomUpdateXorMult(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	n := 33
	ints := make([]int64, n)
	words := make([]uint64, n)
	for i := range ints {
		ints[i] = r.Int64N(5) - 2
		words[i] = r.Uint64()
	}
	upd := NewRangeUpdateRangeSum(ints)
	mult := NewRangeMultRangeProd(ints)
	uxor := NewRangeUpdateRangeXor(words)
	xx := NewRangeXorRangeXor(words)
	naiveUpd := append([]int64(nil), ints...)
	naiveMult := append([]int64(nil), ints...)
	naiveUX := append([]uint64(nil), words...)
	naiveXX := append([]uint64(nil), words...)

	for q := 0; q < 500; q++ {
		l, rr := randRange(r, n)
		switch r.IntN(3) {
		case 0:
			v := r.Int64N(9) - 4
			w := r.Uint64()
			upd.Update(l, rr, v)
			mult.Mult(l, rr, v)
			uxor.Update(l, rr, w)
			xx.Xor(l, rr, w)
			for i := l; i < rr; i++ {
				naiveUpd[i] = v
				naiveMult[i] *= v
				naiveUX[i] = w
				naiveXX[i] ^= w
			}
		default:
			var s int64
			p := int64(1)
			var ux, x uint64
			for i := l; i < rr; i++ {
				s += naiveUpd[i]
				p *= naiveMult[i]
				ux ^= naiveUX[i]
				x ^= naiveXX[i]
			}
			require.Equal(t, s, upd.Sum(l, rr))
			require.Equal(t, p, mult.Prod(l, rr))
			require.Equal(t, ux, uxor.Xor(l, rr))
			require.Equal(t, x, xx.XorSum(l, rr))
		}
	}
	for i := 0; i < n; i++ {
		require.Equal(t, naiveUpd[i], upd.Get(i))
		require.Equal(t, naiveMult[i], mult.Get(i))
		require.Equal(t, naiveUX[i], uxor.Get(i))
		require.Equal(t, naiveXX[i], xx.Get(i))
	}
}

func TestRandomPolynomialAdd(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	n := 25
	naive := make([]int64, n)
	lin := NewRangeLinearAddRangeSum(naive)
	quad := NewRangeQuadraticAddRangeSum(naive)
	naiveQ := make([]int64, n)

	for q := 0; q < 300; q++ {
		l, rr := randRange(r, n)
		o := r.IntN(n)
		a, b, c := r.Int64N(11)-5, r.Int64N(11)-5, r.Int64N(11)-5
		if r.IntN(2) == 0 {
			lin.LinearAdd(l, rr, o, a, b)
			quad.QuadraticAdd(l, rr, o, a, b, c)
			for p := l; p < rr; p++ {
				d := int64(p - o)
				naive[p] += a*d + b
				naiveQ[p] += a*d*d + b*d + c
			}
			continue
		}
		var s, sq int64
		for p := l; p < rr; p++ {
			s += naive[p]
			sq += naiveQ[p]
		}
		require.Equal(t, s, lin.Sum(l, rr))
		require.Equal(t, sq, quad.Sum(l, rr))
	}
	for p := 0; p < n; p++ {
		require.Equal(t, naive[p], lin.Get(p))
		require.Equal(t, naiveQ[p], quad.Get(p))
	}
}

func TestTwoSeqAffine(t *testing.T) {
	_, err := NewTwoSeqAffineRangeSum([]int64{1}, nil)
	require.ErrorIs(t, err, xerrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "len(xs)=1, len(ys)=0")

	xs := []int64{1, 2, 3, 4}
	ys := []int64{5, 6, 7, 8}
	st, err := NewTwoSeqAffineRangeSum(xs, ys)
	require.NoError(t, err)
	assert.Equal(t, int64(5+12+21+32), st.SumXY(0, 4))

	st.Affine(1, 3, 2, 1, -1, 3)
	// x: 1 5 7 4，y: 5 -3 -4 8
	assert.Equal(t, int64(5-15-28+32), st.SumXY(0, 4))
	assert.Equal(t, int64(17), st.SumX(0, 4))
	assert.Equal(t, int64(6), st.SumY(0, 4))
	x, y := st.Get(2)
	assert.Equal(t, int64(7), x)
	assert.Equal(t, int64(-4), y)
}

func TestRandomClampAdd(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 10))
	for round := 0; round < 20; round++ {
		n := 1 + r.IntN(30)
		naive := make([]int64, n)
		for i := range naive {
			naive[i] = r.Int64N(100) - 50
		}
		st := NewRangeClampAddRangeMinMax(naive)
		for q := 0; q < 200; q++ {
			l, rr := randRange(r, n)
			v := r.Int64N(100) - 50
			switch r.IntN(4) {
			case 0:
				st.Chmin(l, rr, v)
				for i := l; i < rr; i++ {
					naive[i] = min(naive[i], v)
				}
			case 1:
				st.Chmax(l, rr, v)
				for i := l; i < rr; i++ {
					naive[i] = max(naive[i], v)
				}
			case 2:
				st.Add(l, rr, v/5)
				for i := l; i < rr; i++ {
					naive[i] += v / 5
				}
			default:
				lo, hi := algebra.Inf(), algebra.NegInf()
				for i := l; i < rr; i++ {
					lo = algebra.MinExt(lo, algebra.Fin(naive[i]))
					hi = algebra.MaxNegExt(hi, algebra.NegFin(naive[i]))
				}
				require.Equal(t, lo, st.Min(l, rr))
				require.Equal(t, hi, st.Max(l, rr))
			}
		}
		for i := range naive {
			require.Equal(t, naive[i], st.Get(i))
		}
	}
}

func TestRandomMaxRightMinLeft(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	n := 37
	xs := make([]int64, n)
	for i := range xs {
		xs[i] = r.Int64N(10)
	}
	st := NewRangeAddRangeSum(xs)
	for q := 0; q < 300; q++ {
		if q%3 == 0 {
			l, rr := randRange(r, n)
			v := r.Int64N(5)
			st.Add(l, rr, v)
			for i := l; i < rr; i++ {
				xs[i] += v
			}
		}
		limit := r.Int64N(120)
		pred := func(s int64) bool { return s <= limit }

		l := r.IntN(n + 1)
		got := st.MaxRight(l, pred)
		require.True(t, pred(st.Sum(l, got)))
		if got < n {
			require.False(t, pred(st.Sum(l, got+1)))
		}

		rr := r.IntN(n + 1)
		gotL := st.MinLeft(rr, pred)
		require.True(t, pred(st.Sum(gotL, rr)))
		if gotL > 0 {
			require.False(t, pred(st.Sum(gotL-1, rr)))
		}
	}
}

// checkActionLaws 在样本上验证作用幺半群律与分配律，作用之间的相等性通过作用结果比较。
func checkActionLaws[S comparable, F any, M algebra.MapMonoid[S, F]](t *testing.T, m M, xs []S, fs []F) {
	t.Helper()
	id := m.IdentityMap()
	for _, x := range xs {
		require.Equal(t, x, m.Mapping(id, x), "mapping(id, x)")
	}
	for _, f := range fs {
		for _, x := range xs {
			require.Equal(t, m.Mapping(f, x), m.Mapping(m.Composition(id, f), x), "compose(id, f)")
			require.Equal(t, m.Mapping(f, x), m.Mapping(m.Composition(f, id), x), "compose(f, id)")
			for _, y := range xs {
				require.Equal(t, m.Mapping(f, m.Op(x, y)), m.Op(m.Mapping(f, x), m.Mapping(f, y)), "distributivity")
			}
		}
		for _, g := range fs {
			for _, x := range xs {
				require.Equal(t, m.Mapping(f, m.Mapping(g, x)), m.Mapping(m.Composition(f, g), x), "mapping(compose(f, g))")
			}
			for _, h := range fs {
				left := m.Composition(m.Composition(f, g), h)
				right := m.Composition(f, m.Composition(g, h))
				for _, x := range xs {
					require.Equal(t, m.Mapping(left, x), m.Mapping(right, x), "associativity")
				}
			}
		}
	}
}

func TestActionMonoidLaws(t *testing.T) {
	sums := []SumLen{{}, {Sum: 3, Len: 1}, {Sum: -7, Len: 4}}
	checkActionLaws[SumLen, int64](t, AddSum{}, sums, []int64{0, 5, -2})
	checkActionLaws[SumLen, Affine](t, AffineSum{}, sums, []Affine{{1, 0}, {2, 1}, {-3, 4}, {0, 7}})
	checkActionLaws[SumLen, Update[int64]](t, UpdateSum{}, sums, []Update[int64]{{}, Assign[int64](4), Assign[int64](-1)})

	checkActionLaws[algebra.ExtInt, int64](t, AddMin{}, []algebra.ExtInt{algebra.Inf(), algebra.Fin(2), algebra.Fin(-9)}, []int64{0, 3, -4})
	checkActionLaws[algebra.NegExtInt, int64](t, AddMax{}, []algebra.NegExtInt{algebra.NegInf(), algebra.NegFin(2)}, []int64{0, 3, -4})

	checkActionLaws[SumSq, Affine](t, AffineSumSq{},
		[]SumSq{{}, {Sum: 2, SumSq: 4, Len: 1}, {Sum: -1, SumSq: 5, Len: 2}},
		[]Affine{{1, 0}, {2, -1}, {-1, 3}})

	minmax := []MinMax{emptyMinMax(), pointMinMax(4), {Min: algebra.Fin(-3), Max: algebra.NegFin(8)}}
	checkActionLaws[MinMax, Affine](t, AffineMinMax{}, minmax, []Affine{{1, 0}, {-2, 1}, {0, 5}, {3, -2}})
	checkActionLaws[MinMax, Clamp](t, ClampMinMax{}, minmax,
		[]Clamp{ClampIdentity, ChminOf(2), ChmaxOf(5), AddOf(-3), {Lb: 0, Ub: 3, Add: 1}, {Lb: 6, Ub: 6, Add: -6}})

	xors := []XorLen{{}, {Xor: 5, Len: 1}, {Xor: 9, Len: 2}}
	checkActionLaws[XorLen, uint64](t, XorXor{}, xors, []uint64{0, 3, 12})
	checkActionLaws[XorLen, Update[uint64]](t, UpdateXor{}, xors, []Update[uint64]{{}, Assign[uint64](6)})

	checkActionLaws[ProdLen, int64](t, MultProd{}, []ProdLen{{Prod: 1}, {Prod: 3, Len: 1}, {Prod: -4, Len: 3}}, []int64{1, 2, -1, 0})

	checkActionLaws[LinearSum, Linear](t, LinearAddSum{},
		[]LinearSum{{}, {Sum: 1, SumIdx: 2, Len: 1}, {Sum: 4, SumIdx: 7, Len: 2}},
		[]Linear{{}, {A: 2, B: -1}, {A: -3, B: 5}})
	checkActionLaws[QuadSum, Quadratic](t, QuadraticAddSum{},
		[]QuadSum{{}, {Sum: 1, SumIdx: 3, SumIdx2: 9, Len: 1}},
		[]Quadratic{{}, {A: 1, B: 2, C: 3}, {A: -2, C: 1}})
	checkActionLaws[XYSum, TwoAffine](t, TwoSeqAffineSum{},
		[]XYSum{{}, {XY: 6, X: 2, Y: 3, Len: 1}, {XY: -1, X: 4, Y: 1, Len: 2}},
		[]TwoAffine{{A: 1, C: 1}, {A: 2, B: 1, C: -1, D: 3}, {A: 0, B: 2, C: 3, D: 0}})
}

func TestClampComposition(t *testing.T) {
	// chmax 与 chmin 交叉时区间塌缩到同一个值。
	f := composeClamp(ChminOf(3), ChmaxOf(10))
	assert.Equal(t, Clamp{Lb: 3, Ub: 3}, f)
	for _, x := range []int64{-100, 0, 3, 50} {
		assert.Equal(t, int64(3), f.Apply(x))
	}

	g := composeClamp(ChminOf(5), AddOf(2))
	assert.Equal(t, int64(5), g.Apply(10))
	assert.Equal(t, int64(2), g.Apply(0))
	assert.Equal(t, ClampIdentity, composeClamp(ClampIdentity, ClampIdentity))
}
