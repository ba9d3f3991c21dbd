package segtree

import (
	"github.com/wyfcoding/algo/algorithm/algebra"
)

// LazyBeats 作用允许失败的懒标记线段树，即 Segment Tree Beats 的抽象形式。
//
// 区间作用落到完全覆盖的节点上时，若 Mapping 的结果满足 M.Fails，就把刚复合进去的
// 懒标记下推到两个子节点，再由子节点重算该节点，失败的子节点继续向下处理。
// 叶子上的 Mapping 必须总是成功，否则叶子会保留失败值。
//
// 复杂度取决于 Fails 为真的频率，对区间 chmin 一类的作用为均摊 O(log^2 n)。
type LazyBeats[S, F any, M algebra.MapMonoidBeats[S, F]] struct {
	*LazySegTree[S, F, M]
}

// NewLazyBeats 创建长度为 n、所有元素为单位元的 LazyBeats。
func NewLazyBeats[S, F any, M algebra.MapMonoidBeats[S, F]](m M, n int) *LazyBeats[S, F, M] {
	t := NewLazy[S, F](m, n)
	t.fails = m.Fails
	return &LazyBeats[S, F, M]{LazySegTree: t}
}

// NewLazyBeatsFrom 以 xs 为初始叶子构建，O(n)。
func NewLazyBeatsFrom[S, F any, M algebra.MapMonoidBeats[S, F]](m M, xs []S) *LazyBeats[S, F, M] {
	t := NewLazyFrom[S, F](m, xs)
	t.fails = m.Fails
	return &LazyBeats[S, F, M]{LazySegTree: t}
}

// ChminSumState 区间 chmin / 区间和的聚合值。
// Max 与 Max2 是严格最大值与严格次大值，不存在时为 math.MinInt64。
type ChminSumState struct {
	Sum    int64
	Len    int64
	Max    int64
	Max2   int64
	MaxCnt int64
	failed bool
}

// ChminSum 以 chmin 上界为作用的 MapMonoidBeats。
// 上界不低于最大值时不变，严格高于次大值时只改写最大值，否则失败并交给子节点。
type ChminSum struct{}

func (ChminSum) Identity() ChminSumState { return ChminSumState{Max: negInf, Max2: negInf} }

func (ChminSum) Op(a, b ChminSumState) ChminSumState {
	if a.failed || b.failed {
		return ChminSumState{failed: true}
	}
	s := ChminSumState{Sum: a.Sum + b.Sum, Len: a.Len + b.Len}
	switch {
	case a.Max > b.Max:
		s.Max, s.MaxCnt, s.Max2 = a.Max, a.MaxCnt, max(a.Max2, b.Max)
	case a.Max < b.Max:
		s.Max, s.MaxCnt, s.Max2 = b.Max, b.MaxCnt, max(a.Max, b.Max2)
	default:
		s.Max, s.MaxCnt, s.Max2 = a.Max, a.MaxCnt+b.MaxCnt, max(a.Max2, b.Max2)
	}
	return s
}

func (ChminSum) IdentityMap() int64 { return posInf }

func (ChminSum) Mapping(ub int64, x ChminSumState) ChminSumState {
	switch {
	case x.failed, x.Len == 0, ub >= x.Max:
		return x
	case ub > x.Max2:
		x.Sum -= (x.Max - ub) * x.MaxCnt
		x.Max = ub
		return x
	default:
		return ChminSumState{failed: true}
	}
}

func (ChminSum) Composition(f, g int64) int64 { return min(f, g) }

func (ChminSum) Fails(x ChminSumState) bool { return x.failed }

// RangeChminRangeSum 支持区间 chmin 与区间和/最大值查询，建立在 LazyBeats 之上。
// 与 Beats 相比只支持 chmin 一种更新，但状态更小。
type RangeChminRangeSum struct {
	t *LazyBeats[ChminSumState, int64, ChminSum]
}

func chminLeaf(x int64) ChminSumState {
	checkValue(x)
	return ChminSumState{Sum: x, Len: 1, Max: x, Max2: negInf, MaxCnt: 1}
}

// NewRangeChminRangeSum 以 xs 为初始序列构建，取值规则同 Beats。
func NewRangeChminRangeSum(xs []int64) *RangeChminRangeSum {
	leaves := make([]ChminSumState, len(xs))
	for i, x := range xs {
		leaves[i] = chminLeaf(x)
	}
	return &RangeChminRangeSum{t: NewLazyBeatsFrom[ChminSumState, int64](ChminSum{}, leaves)}
}

// Len 返回序列长度。
func (s *RangeChminRangeSum) Len() int { return s.t.Len() }

// Chmin 把 [l, r) 中每个元素 a_i 替换为 min(a_i, ub)。
func (s *RangeChminRangeSum) Chmin(l, r int, ub int64) {
	checkValue(ub)
	s.t.ApplyRange(l, r, ub)
}

// Sum 返回 [l, r) 的和。
func (s *RangeChminRangeSum) Sum(l, r int) int64 { return s.t.Prod(l, r).Sum }

// Max 返回 [l, r) 的最大值，空区间返回 math.MinInt64。
func (s *RangeChminRangeSum) Max(l, r int) int64 { return s.t.Prod(l, r).Max }

// Get 返回第 i 个元素。
func (s *RangeChminRangeSum) Get(i int) int64 { return s.t.Get(i).Sum }

// Set 把第 i 个元素替换为 x。
func (s *RangeChminRangeSum) Set(i int, x int64) { s.t.Set(i, chminLeaf(x)) }

// ToSlice 返回当前序列的副本。
func (s *RangeChminRangeSum) ToSlice() []int64 {
	leaves := s.t.ToSlice()
	out := make([]int64, len(leaves))
	for i, x := range leaves {
		out[i] = x.Sum
	}
	return out
}
