package segtree

import (
	"github.com/wyfcoding/algo/algorithm/algebra"
	"github.com/wyfcoding/algo/xerrors"
)

// Affine 仿射作用 x -> A*x + B。
type Affine struct {
	A int64
	B int64
}

// AffineIdentity 恒等仿射作用。
var AffineIdentity = Affine{A: 1}

// composeAffine 返回先 g 后 f 的作用：f(g(x)) = f.A*(g.A*x+g.B)+f.B。
func composeAffine(f, g Affine) Affine {
	return Affine{A: f.A * g.A, B: f.A*g.B + f.B}
}

// AffineSum 区间仿射、区间和。
type AffineSum struct{}

func (AffineSum) Identity() SumLen { return SumLen{} }
func (AffineSum) Op(a, b SumLen) SumLen {
	return SumLen{Sum: a.Sum + b.Sum, Len: a.Len + b.Len}
}
func (AffineSum) IdentityMap() Affine { return AffineIdentity }
func (AffineSum) Mapping(f Affine, x SumLen) SumLen {
	return SumLen{Sum: f.A*x.Sum + f.B*x.Len, Len: x.Len}
}
func (AffineSum) Composition(f, g Affine) Affine { return composeAffine(f, g) }

// RangeAffineRangeSum 支持区间仿射与区间求和。
type RangeAffineRangeSum struct {
	t *LazySegTree[SumLen, Affine, AffineSum]
}

// NewRangeAffineRangeSum 以 xs 为初始序列构建。
func NewRangeAffineRangeSum(xs []int64) *RangeAffineRangeSum {
	return &RangeAffineRangeSum{t: NewLazyFrom[SumLen, Affine](AffineSum{}, sumLeaves(xs))}
}

// Len 返回序列长度。
func (s *RangeAffineRangeSum) Len() int { return s.t.Len() }

// Affine 把 [l, r) 中每个元素 x 替换为 a*x + b。
func (s *RangeAffineRangeSum) Affine(l, r int, a, b int64) {
	s.t.ApplyRange(l, r, Affine{A: a, B: b})
}

// Sum 返回 [l, r) 的和。
func (s *RangeAffineRangeSum) Sum(l, r int) int64 { return s.t.Prod(l, r).Sum }

// Get 返回第 i 个元素。
func (s *RangeAffineRangeSum) Get(i int) int64 { return s.t.Get(i).Sum }

// Set 把第 i 个元素替换为 x。
func (s *RangeAffineRangeSum) Set(i int, x int64) { s.t.Set(i, SumLen{Sum: x, Len: 1}) }

// ToSlice 返回当前序列的副本。
func (s *RangeAffineRangeSum) ToSlice() []int64 {
	leaves := s.t.ToSlice()
	out := make([]int64, len(leaves))
	for i, x := range leaves {
		out[i] = x.Sum
	}
	return out
}

// SumSq 区间和、区间平方和与区间长度。
type SumSq struct {
	Sum   int64
	SumSq int64
	Len   int64
}

// AffineSumSq 区间仿射、区间平方和，利用 (a*x+b)^2 = a^2*x^2 + 2ab*x + b^2。
type AffineSumSq struct{}

func (AffineSumSq) Identity() SumSq { return SumSq{} }
func (AffineSumSq) Op(a, b SumSq) SumSq {
	return SumSq{Sum: a.Sum + b.Sum, SumSq: a.SumSq + b.SumSq, Len: a.Len + b.Len}
}
func (AffineSumSq) IdentityMap() Affine { return AffineIdentity }
func (AffineSumSq) Mapping(f Affine, x SumSq) SumSq {
	return SumSq{
		Sum:   f.A*x.Sum + f.B*x.Len,
		SumSq: f.A*f.A*x.SumSq + 2*f.A*f.B*x.Sum + f.B*f.B*x.Len,
		Len:   x.Len,
	}
}
func (AffineSumSq) Composition(f, g Affine) Affine { return composeAffine(f, g) }

// RangeAffineRangeSumOfSquares 支持区间仿射与区间平方和。
type RangeAffineRangeSumOfSquares struct {
	t *LazySegTree[SumSq, Affine, AffineSumSq]
}

// NewRangeAffineRangeSumOfSquares 以 xs 为初始序列构建。
func NewRangeAffineRangeSumOfSquares(xs []int64) *RangeAffineRangeSumOfSquares {
	leaves := make([]SumSq, len(xs))
	for i, x := range xs {
		leaves[i] = SumSq{Sum: x, SumSq: x * x, Len: 1}
	}
	return &RangeAffineRangeSumOfSquares{t: NewLazyFrom[SumSq, Affine](AffineSumSq{}, leaves)}
}

// Len 返回序列长度。
func (s *RangeAffineRangeSumOfSquares) Len() int { return s.t.Len() }

// Affine 把 [l, r) 中每个元素 x 替换为 a*x + b。
func (s *RangeAffineRangeSumOfSquares) Affine(l, r int, a, b int64) {
	s.t.ApplyRange(l, r, Affine{A: a, B: b})
}

// Sum 返回 [l, r) 的和。
func (s *RangeAffineRangeSumOfSquares) Sum(l, r int) int64 { return s.t.Prod(l, r).Sum }

// SumOfSquares 返回 [l, r) 中元素平方之和。
func (s *RangeAffineRangeSumOfSquares) SumOfSquares(l, r int) int64 { return s.t.Prod(l, r).SumSq }

// Get 返回第 i 个元素。
func (s *RangeAffineRangeSumOfSquares) Get(i int) int64 { return s.t.Get(i).Sum }

// MinMax 区间最小值与最大值，空区间为 (+∞, -∞)。
type MinMax struct {
	Min algebra.ExtInt
	Max algebra.NegExtInt
}

func (x MinMax) empty() bool { return x.Min.IsInf() }

func emptyMinMax() MinMax { return MinMax{Min: algebra.Inf(), Max: algebra.NegInf()} }

func opMinMax(a, b MinMax) MinMax {
	return MinMax{Min: algebra.MinExt(a.Min, b.Min), Max: algebra.MaxNegExt(a.Max, b.Max)}
}

func pointMinMax(x int64) MinMax { return MinMax{Min: algebra.Fin(x), Max: algebra.NegFin(x)} }

// AffineMinMax 区间仿射、区间最值。斜率为负时最小值与最大值互换角色。
type AffineMinMax struct{}

func (AffineMinMax) Identity() MinMax      { return emptyMinMax() }
func (AffineMinMax) Op(a, b MinMax) MinMax { return opMinMax(a, b) }
func (AffineMinMax) IdentityMap() Affine   { return AffineIdentity }
func (AffineMinMax) Mapping(f Affine, x MinMax) MinMax {
	if x.empty() {
		return x
	}
	lo, hi := x.Min.Value(), x.Max.Value()
	if f.A < 0 {
		lo, hi = hi, lo
	}
	return MinMax{Min: algebra.Fin(f.A*lo + f.B), Max: algebra.NegFin(f.A*hi + f.B)}
}
func (AffineMinMax) Composition(f, g Affine) Affine { return composeAffine(f, g) }

// RangeAffineRangeMinMax 支持区间仿射与区间最值。
type RangeAffineRangeMinMax struct {
	t *LazySegTree[MinMax, Affine, AffineMinMax]
}

// NewRangeAffineRangeMinMax 以 xs 为初始序列构建。
func NewRangeAffineRangeMinMax(xs []int64) *RangeAffineRangeMinMax {
	leaves := make([]MinMax, len(xs))
	for i, x := range xs {
		leaves[i] = pointMinMax(x)
	}
	return &RangeAffineRangeMinMax{t: NewLazyFrom[MinMax, Affine](AffineMinMax{}, leaves)}
}

// Len 返回序列长度。
func (s *RangeAffineRangeMinMax) Len() int { return s.t.Len() }

// Affine 把 [l, r) 中每个元素 x 替换为 a*x + b，a 为负时最小值与最大值互换。
func (s *RangeAffineRangeMinMax) Affine(l, r int, a, b int64) {
	s.t.ApplyRange(l, r, Affine{A: a, B: b})
}

// Min 返回 [l, r) 的最小值，空区间返回 +∞。
func (s *RangeAffineRangeMinMax) Min(l, r int) algebra.ExtInt { return s.t.Prod(l, r).Min }

// Max 返回 [l, r) 的最大值，空区间返回 -∞。
func (s *RangeAffineRangeMinMax) Max(l, r int) algebra.NegExtInt { return s.t.Prod(l, r).Max }

// Get 返回第 i 个元素。
func (s *RangeAffineRangeMinMax) Get(i int) int64 { return s.t.Get(i).Min.Value() }

// XYSum 两条平行序列 x, y 上的 Σxy, Σx, Σy 与区间长度。
type XYSum struct {
	XY  int64
	X   int64
	Y   int64
	Len int64
}

// TwoAffine 同时作用于两条序列：x -> A*x + B，y -> C*y + D。
type TwoAffine struct {
	A, B int64
	C, D int64
}

// TwoSeqAffineSum 双序列仿射、区间 Σxy。
//
//	Σ(Ax+B)(Cy+D) = AC·Σxy + AD·Σx + BC·Σy + BD·len
type TwoSeqAffineSum struct{}

func (TwoSeqAffineSum) Identity() XYSum { return XYSum{} }
func (TwoSeqAffineSum) Op(a, b XYSum) XYSum {
	return XYSum{XY: a.XY + b.XY, X: a.X + b.X, Y: a.Y + b.Y, Len: a.Len + b.Len}
}
func (TwoSeqAffineSum) IdentityMap() TwoAffine { return TwoAffine{A: 1, C: 1} }
func (TwoSeqAffineSum) Mapping(f TwoAffine, s XYSum) XYSum {
	return XYSum{
		XY:  f.A*f.C*s.XY + f.A*f.D*s.X + f.B*f.C*s.Y + f.B*f.D*s.Len,
		X:   f.A*s.X + f.B*s.Len,
		Y:   f.C*s.Y + f.D*s.Len,
		Len: s.Len,
	}
}
func (TwoSeqAffineSum) Composition(f, g TwoAffine) TwoAffine {
	return TwoAffine{
		A: f.A * g.A, B: f.A*g.B + f.B,
		C: f.C * g.C, D: f.C*g.D + f.D,
	}
}

// TwoSeqAffineRangeSum 在两条等长序列上支持区间仿射与区间 Σxy。
type TwoSeqAffineRangeSum struct {
	t *LazySegTree[XYSum, TwoAffine, TwoSeqAffineSum]
}

// NewTwoSeqAffineRangeSum 以 xs, ys 构建，两者长度不一致时返回 ErrInvalidInput。
func NewTwoSeqAffineRangeSum(xs, ys []int64) (*TwoSeqAffineRangeSum, error) {
	if len(xs) != len(ys) {
		return nil, xerrors.Derive(xerrors.ErrInvalidInput, "len(xs)=%d, len(ys)=%d", len(xs), len(ys))
	}
	leaves := make([]XYSum, len(xs))
	for i := range xs {
		leaves[i] = XYSum{XY: xs[i] * ys[i], X: xs[i], Y: ys[i], Len: 1}
	}
	return &TwoSeqAffineRangeSum{t: NewLazyFrom[XYSum, TwoAffine](TwoSeqAffineSum{}, leaves)}, nil
}

// Len 返回序列长度。
func (s *TwoSeqAffineRangeSum) Len() int { return s.t.Len() }

// Affine 对 [l, r) 执行 x -> a*x + b，y -> c*y + d。
func (s *TwoSeqAffineRangeSum) Affine(l, r int, a, b, c, d int64) {
	s.t.ApplyRange(l, r, TwoAffine{A: a, B: b, C: c, D: d})
}

// SumXY 返回 [l, r) 上 x_i*y_i 的和。
func (s *TwoSeqAffineRangeSum) SumXY(l, r int) int64 { return s.t.Prod(l, r).XY }

// SumX 返回 [l, r) 上 x 的和。
func (s *TwoSeqAffineRangeSum) SumX(l, r int) int64 { return s.t.Prod(l, r).X }

// SumY 返回 [l, r) 上 y 的和。
func (s *TwoSeqAffineRangeSum) SumY(l, r int) int64 { return s.t.Prod(l, r).Y }

// Get 返回第 i 个位置上的 (x, y)。
func (s *TwoSeqAffineRangeSum) Get(i int) (x, y int64) {
	v := s.t.Get(i)
	return v.X, v.Y
}
