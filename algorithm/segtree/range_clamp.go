package segtree

import (
	"math"

	"github.com/wyfcoding/algo/algorithm/algebra"
)

// Clamp 截断加作用 x -> min(max(x, Lb), Ub) + Add，约定 Lb <= Ub。
// math.MinInt64 / math.MaxInt64 表示无下界 / 无上界。
type Clamp struct {
	Lb  int64
	Ub  int64
	Add int64
}

// ClampIdentity 恒等截断加作用。
var ClampIdentity = Clamp{Lb: math.MinInt64, Ub: math.MaxInt64}

// ChminOf 返回 x -> min(x, ub)。
func ChminOf(ub int64) Clamp { return Clamp{Lb: math.MinInt64, Ub: ub} }

// ChmaxOf 返回 x -> max(x, lb)。
func ChmaxOf(lb int64) Clamp { return Clamp{Lb: lb, Ub: math.MaxInt64} }

// AddOf 返回 x -> x + v。
func AddOf(v int64) Clamp { return Clamp{Lb: math.MinInt64, Ub: math.MaxInt64, Add: v} }

// Apply 对单个值求作用结果。
func (c Clamp) Apply(x int64) int64 {
	return min(max(x, c.Lb), c.Ub) + c.Add
}

// shiftBound 平移有限边界，无穷边界保持不变。
func shiftBound(b, d int64) int64 {
	if b == math.MinInt64 || b == math.MaxInt64 {
		return b
	}
	return b + d
}

func clampValue(x, lo, hi int64) int64 { return min(max(x, lo), hi) }

// composeClamp 返回先 g 后 f 的作用。
// f 的上下界先平移到 g 加法之前的坐标系，再用它们截断 g 的上下界；
// 截断是单调的，所以结果仍满足 Lb <= Ub，两界交叉时会塌缩到同一个值。
func composeClamp(f, g Clamp) Clamp {
	lo := shiftBound(f.Lb, -g.Add)
	hi := shiftBound(f.Ub, -g.Add)
	return Clamp{
		Lb:  clampValue(g.Lb, lo, hi),
		Ub:  clampValue(g.Ub, lo, hi),
		Add: f.Add + g.Add,
	}
}

// ClampMinMax 区间 chmin / chmax / 加、区间最值。
// 截断加作用单调不减，所以只需作用到最小值与最大值上。
type ClampMinMax struct{}

func (ClampMinMax) Identity() MinMax      { return emptyMinMax() }
func (ClampMinMax) Op(a, b MinMax) MinMax { return opMinMax(a, b) }
func (ClampMinMax) IdentityMap() Clamp    { return ClampIdentity }
func (ClampMinMax) Mapping(f Clamp, x MinMax) MinMax {
	if x.empty() {
		return x
	}
	return MinMax{Min: algebra.Fin(f.Apply(x.Min.Value())), Max: algebra.NegFin(f.Apply(x.Max.Value()))}
}
func (ClampMinMax) Composition(f, g Clamp) Clamp { return composeClamp(f, g) }

// RangeClampAddRangeMinMax 支持区间 chmin、chmax、加与区间最值。
type RangeClampAddRangeMinMax struct {
	t *LazySegTree[MinMax, Clamp, ClampMinMax]
}

// NewRangeClampAddRangeMinMax 以 xs 为初始序列构建。
func NewRangeClampAddRangeMinMax(xs []int64) *RangeClampAddRangeMinMax {
	leaves := make([]MinMax, len(xs))
	for i, x := range xs {
		leaves[i] = pointMinMax(x)
	}
	return &RangeClampAddRangeMinMax{t: NewLazyFrom[MinMax, Clamp](ClampMinMax{}, leaves)}
}

// Len 返回序列长度。
func (s *RangeClampAddRangeMinMax) Len() int { return s.t.Len() }

// Chmin 对 [l, r) 执行 x -> min(x, ub)。
func (s *RangeClampAddRangeMinMax) Chmin(l, r int, ub int64) { s.t.ApplyRange(l, r, ChminOf(ub)) }

// Chmax 对 [l, r) 执行 x -> max(x, lb)。
func (s *RangeClampAddRangeMinMax) Chmax(l, r int, lb int64) { s.t.ApplyRange(l, r, ChmaxOf(lb)) }

// Add 对 [l, r) 中每个元素加 v。
func (s *RangeClampAddRangeMinMax) Add(l, r int, v int64) { s.t.ApplyRange(l, r, AddOf(v)) }

// Min 返回 [l, r) 的最小值，空区间返回 +∞。
func (s *RangeClampAddRangeMinMax) Min(l, r int) algebra.ExtInt { return s.t.Prod(l, r).Min }

// Max 返回 [l, r) 的最大值，空区间返回 -∞。
func (s *RangeClampAddRangeMinMax) Max(l, r int) algebra.NegExtInt { return s.t.Prod(l, r).Max }

// Get 返回第 i 个元素。
func (s *RangeClampAddRangeMinMax) Get(i int) int64 { return s.t.Get(i).Min.Value() }
