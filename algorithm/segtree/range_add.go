package segtree

import (
	"github.com/wyfcoding/algo/algorithm/algebra"
)

// SumLen 区间和与区间长度。长度参与作用计算，例如区间加 v 使和增加 v*Len。
type SumLen struct {
	Sum int64
	Len int64
}

// AddSum 区间加、区间和。
type AddSum struct{}

func (AddSum) Identity() SumLen      { return SumLen{} }
func (AddSum) Op(a, b SumLen) SumLen { return SumLen{Sum: a.Sum + b.Sum, Len: a.Len + b.Len} }
func (AddSum) IdentityMap() int64    { return 0 }
func (AddSum) Mapping(f int64, x SumLen) SumLen {
	return SumLen{Sum: x.Sum + f*x.Len, Len: x.Len}
}
func (AddSum) Composition(f, g int64) int64 { return f + g }

// AddMin 区间加、区间最小值，空区间的最小值为 +∞。
type AddMin struct{}

func (AddMin) Identity() algebra.ExtInt                         { return algebra.Inf() }
func (AddMin) Op(a, b algebra.ExtInt) algebra.ExtInt            { return algebra.MinExt(a, b) }
func (AddMin) IdentityMap() int64                               { return 0 }
func (AddMin) Mapping(f int64, x algebra.ExtInt) algebra.ExtInt { return x.AddInt(f) }
func (AddMin) Composition(f, g int64) int64                     { return f + g }

// AddMax 区间加、区间最大值，空区间的最大值为 -∞。
type AddMax struct{}

func (AddMax) Identity() algebra.NegExtInt                            { return algebra.NegInf() }
func (AddMax) Op(a, b algebra.NegExtInt) algebra.NegExtInt            { return algebra.MaxNegExt(a, b) }
func (AddMax) IdentityMap() int64                                     { return 0 }
func (AddMax) Mapping(f int64, x algebra.NegExtInt) algebra.NegExtInt { return x.AddInt(f) }
func (AddMax) Composition(f, g int64) int64                           { return f + g }

func sumLeaves(xs []int64) []SumLen {
	leaves := make([]SumLen, len(xs))
	for i, x := range xs {
		leaves[i] = SumLen{Sum: x, Len: 1}
	}
	return leaves
}

// RangeAddRangeSum 支持区间加与区间求和。
type RangeAddRangeSum struct {
	t *LazySegTree[SumLen, int64, AddSum]
}

// NewRangeAddRangeSum 以 xs 为初始序列构建。
func NewRangeAddRangeSum(xs []int64) *RangeAddRangeSum {
	return &RangeAddRangeSum{t: NewLazyFrom[SumLen, int64](AddSum{}, sumLeaves(xs))}
}

// Len 返回序列长度。
func (s *RangeAddRangeSum) Len() int { return s.t.Len() }

// Add 对 [l, r) 中每个元素加 x。
func (s *RangeAddRangeSum) Add(l, r int, x int64) { s.t.ApplyRange(l, r, x) }

// Sum 返回 [l, r) 的和。
func (s *RangeAddRangeSum) Sum(l, r int) int64 { return s.t.Prod(l, r).Sum }

// AllSum 返回整个序列的和，O(1)。
func (s *RangeAddRangeSum) AllSum() int64 { return s.t.AllProd().Sum }

// Get 返回第 i 个元素。
func (s *RangeAddRangeSum) Get(i int) int64 { return s.t.Get(i).Sum }

// Set 把第 i 个元素替换为 x。
func (s *RangeAddRangeSum) Set(i int, x int64) { s.t.Set(i, SumLen{Sum: x, Len: 1}) }

// MaxRight 返回最大的 r，使得 pred(Sum(l, r)) 为真，pred(0) 必须为真。
func (s *RangeAddRangeSum) MaxRight(l int, pred func(sum int64) bool) int {
	return s.t.MaxRight(l, func(x SumLen) bool { return pred(x.Sum) })
}

// MinLeft 返回最小的 l，使得 pred(Sum(l, r)) 为真，pred(0) 必须为真。
func (s *RangeAddRangeSum) MinLeft(r int, pred func(sum int64) bool) int {
	return s.t.MinLeft(r, func(x SumLen) bool { return pred(x.Sum) })
}

// ToSlice 返回当前序列的副本。
func (s *RangeAddRangeSum) ToSlice() []int64 {
	leaves := s.t.ToSlice()
	out := make([]int64, len(leaves))
	for i, x := range leaves {
		out[i] = x.Sum
	}
	return out
}

// RangeAddRangeMin 支持区间加与区间最小值。
type RangeAddRangeMin struct {
	t *LazySegTree[algebra.ExtInt, int64, AddMin]
}

// NewRangeAddRangeMin 以 xs 为初始序列构建。
func NewRangeAddRangeMin(xs []int64) *RangeAddRangeMin {
	leaves := make([]algebra.ExtInt, len(xs))
	for i, x := range xs {
		leaves[i] = algebra.Fin(x)
	}
	return &RangeAddRangeMin{t: NewLazyFrom[algebra.ExtInt, int64](AddMin{}, leaves)}
}

// Len 返回序列长度。
func (s *RangeAddRangeMin) Len() int { return s.t.Len() }

// Add 对 [l, r) 中每个元素加 x。
func (s *RangeAddRangeMin) Add(l, r int, x int64) { s.t.ApplyRange(l, r, x) }

// Min 返回 [l, r) 的最小值，空区间返回 +∞。
func (s *RangeAddRangeMin) Min(l, r int) algebra.ExtInt { return s.t.Prod(l, r) }

// Get 返回第 i 个元素。
func (s *RangeAddRangeMin) Get(i int) int64 { return s.t.Get(i).Value() }

// Set 把第 i 个元素替换为 x。
func (s *RangeAddRangeMin) Set(i int, x int64) { s.t.Set(i, algebra.Fin(x)) }

// RangeAddRangeMax 支持区间加与区间最大值。
type RangeAddRangeMax struct {
	t *LazySegTree[algebra.NegExtInt, int64, AddMax]
}

// NewRangeAddRangeMax 以 xs 为初始序列构建。
func NewRangeAddRangeMax(xs []int64) *RangeAddRangeMax {
	leaves := make([]algebra.NegExtInt, len(xs))
	for i, x := range xs {
		leaves[i] = algebra.NegFin(x)
	}
	return &RangeAddRangeMax{t: NewLazyFrom[algebra.NegExtInt, int64](AddMax{}, leaves)}
}

// Len 返回序列长度。
func (s *RangeAddRangeMax) Len() int { return s.t.Len() }

// Add 对 [l, r) 中每个元素加 x。
func (s *RangeAddRangeMax) Add(l, r int, x int64) { s.t.ApplyRange(l, r, x) }

// Max 返回 [l, r) 的最大值，空区间返回 -∞。
func (s *RangeAddRangeMax) Max(l, r int) algebra.NegExtInt { return s.t.Prod(l, r) }

// Get 返回第 i 个元素。
func (s *RangeAddRangeMax) Get(i int) int64 { return s.t.Get(i).Value() }

// Set 把第 i 个元素替换为 x。
func (s *RangeAddRangeMax) Set(i int, x int64) { s.t.Set(i, algebra.NegFin(x)) }
