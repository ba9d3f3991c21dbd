package algebra

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/algo/xerrors"
)

func checkMonoidLaws[S comparable, M Monoid[S]](t *testing.T, m M, xs []S) {
	t.Helper()
	e := m.Identity()
	for _, a := range xs {
		assert.Equal(t, a, m.Op(e, a), "left identity")
		assert.Equal(t, a, m.Op(a, e), "right identity")
		for _, b := range xs {
			for _, c := range xs {
				assert.Equal(t, m.Op(m.Op(a, b), c), m.Op(a, m.Op(b, c)), "associativity")
			}
		}
	}
}

func TestMonoidLaws(t *testing.T) {
	checkMonoidLaws[int64](t, Additive[int64]{}, []int64{-3, 0, 7, 11})
	checkMonoidLaws[int64](t, Multiplicative[int64]{}, []int64{-2, 1, 3, 5})
	checkMonoidLaws[uint64](t, BitXor[uint64]{}, []uint64{0, 1, 6, 0xff})
	checkMonoidLaws[uint32](t, BitOr[uint32]{}, []uint32{0, 1, 6, 0xf0})
	checkMonoidLaws[uint8](t, BitAnd[uint8]{}, []uint8{0, 1, 6, 0xff})
	checkMonoidLaws[int](t, Min[int]{E: math.MaxInt}, []int{-5, 0, 3})
	checkMonoidLaws[int](t, Max[int]{E: math.MinInt}, []int{-5, 0, 3})
	checkMonoidLaws[ExtInt](t, ExtIntMin{}, []ExtInt{Fin(-2), Fin(0), Fin(9), Inf()})
	checkMonoidLaws[ExtInt](t, ExtIntAdditive{}, []ExtInt{Fin(-2), Fin(0), Fin(9), Inf()})
	checkMonoidLaws[NegExtInt](t, NegExtIntMax{}, []NegExtInt{NegFin(-2), NegFin(4), NegInf()})
	checkMonoidLaws[NegExtInt](t, NegExtIntAdditive{}, []NegExtInt{NegFin(-2), NegFin(4), NegInf()})
}

func TestExtInt(t *testing.T) {
	assert.True(t, Inf().IsInf())
	assert.True(t, ExtInt{}.IsFin())
	assert.Equal(t, Fin(0), ExtInt{})

	assert.Equal(t, Fin(5), Fin(2).Add(Fin(3)))
	assert.Equal(t, Inf(), Fin(2).Add(Inf()))
	assert.Equal(t, Inf(), Inf().AddInt(-100))
	assert.Equal(t, Fin(12), Fin(4).Times(3))
	assert.Equal(t, Fin(0), Inf().Times(0))
	assert.Equal(t, Inf(), Inf().Times(2))
	assert.PanicsWithError(t, xerrors.Derive(xerrors.ErrValueOutOfDomain, "Times(-1) requires a non-negative multiplier").Error(), func() { Fin(1).Times(-1) })

	assert.True(t, Fin(math.MaxInt64).Less(Inf()))
	assert.Equal(t, 0, Inf().Cmp(Inf()))
	assert.Equal(t, Fin(-1), MinExt(Fin(-1), Inf()))
	assert.Equal(t, Inf(), MaxExt(Fin(-1), Inf()))

	assert.Equal(t, int64(7), Fin(7).Value())
	assert.Equal(t, int64(-1), Inf().ValueOr(-1))
	assert.PanicsWithError(t, xerrors.Derive(xerrors.ErrValueOutOfDomain, "Value called on +∞").Error(), func() { Inf().Value() })
	assert.Equal(t, "+∞", Inf().String())
	assert.Equal(t, "-42", Fin(-42).String())
}

func TestNegExtInt(t *testing.T) {
	assert.True(t, NegInf().IsNegInf())
	assert.True(t, NegInf().Less(NegFin(math.MinInt64)))
	assert.Equal(t, NegInf(), NegFin(3).Add(NegInf()))
	assert.Equal(t, NegFin(3), MaxNegExt(NegInf(), NegFin(3)))
	assert.Equal(t, NegInf(), MinNegExt(NegInf(), NegFin(3)))
	assert.Equal(t, NegFin(0), NegInf().Times(0))
	assert.Equal(t, "-∞", NegInf().String())
	assert.PanicsWithError(t, xerrors.Derive(xerrors.ErrValueOutOfDomain, "Value called on -∞").Error(), func() { NegInf().Value() })
	assert.Panics(t, func() { NegFin(2).Times(-3) })
}

func TestPowAndFold(t *testing.T) {
	assert.Equal(t, int64(30), Pow[int64](Additive[int64]{}, 3, 10))
	assert.Equal(t, int64(0), Pow[int64](Additive[int64]{}, 3, 0))
	assert.Equal(t, int64(243), Pow[int64](Multiplicative[int64]{}, 3, 5))
	assert.Equal(t, uint64(5), Pow[uint64](BitXor[uint64]{}, 5, 7))
	assert.Equal(t, int64(10), Fold[int64](Additive[int64]{}, []int64{1, 2, 3, 4}))
	assert.Equal(t, Inf(), Fold[ExtInt](ExtIntMin{}, nil))
}

func TestGroups(t *testing.T) {
	g := AdditiveGroup[int64]{}
	assert.Equal(t, int64(0), g.Add(g.Neg(5), 5))
	assert.Equal(t, int64(-2), g.Sub(3, 5))

	x := XorGroup[uint64]{}
	assert.Equal(t, uint64(0), x.Add(x.Neg(9), 9))

	d := DecimalAdditive{}
	a := decimal.RequireFromString("0.1")
	b := decimal.RequireFromString("0.2")
	require.True(t, d.Add(a, b).Equal(decimal.RequireFromString("0.3")))
	require.True(t, d.Sub(d.Add(a, b), b).Equal(a))
	require.True(t, d.Add(a, d.Neg(a)).Equal(d.Zero()))
}
