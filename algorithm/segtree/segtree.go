package segtree

import (
	"math"
	"math/bits"

	"github.com/wyfcoding/algo/algorithm/algebra"
	"github.com/wyfcoding/algo/xerrors"
)

// SegTree (线段树) 是一种树状数据结构，用于高效地处理序列的区间查询和单点更新操作。
// 每个节点代表序列的一个区间，根节点代表整个序列，叶子节点代表单个元素，
// 节点值是其区间内元素按从左到右顺序的幺半群积。
// 单点更新与区间查询的时间复杂度均为 O(log N)。
type SegTree[S any, M algebra.Monoid[S]] struct {
	m    M
	tree []S // 存储线段树的节点值，下标 1 为根，[size, 2*size) 为叶子。
	n    int // 原始序列的逻辑大小。
	size int // 不小于 n 的最小 2 的幂。
}

// NewSegTree 创建长度为 n、元素全为单位元的线段树。
func NewSegTree[S any, M algebra.Monoid[S]](m M, n int) *SegTree[S, M] {
	xs := make([]S, n)
	for i := range xs {
		xs[i] = m.Identity()
	}
	return NewSegTreeFrom[S](m, xs)
}

// NewSegTreeFrom 以 xs 为叶子自底向上构建线段树，O(n)。
func NewSegTreeFrom[S any, M algebra.Monoid[S]](m M, xs []S) *SegTree[S, M] {
	n := len(xs)
	size := 1
	if n > 1 {
		size = 1 << bits.Len(uint(n-1))
	}
	st := &SegTree[S, M]{m: m, tree: make([]S, 2*size), n: n, size: size}
	for i := range st.tree {
		st.tree[i] = m.Identity()
	}
	copy(st.tree[size:], xs)
	// 自底向上计算每个内部节点，节点值是左右子节点值的聚合。
	for i := size - 1; i >= 1; i-- {
		st.tree[i] = m.Op(st.tree[2*i], st.tree[2*i+1])
	}
	return st
}

// Len 返回序列长度。
func (st *SegTree[S, M]) Len() int { return st.n }

// Set 单点更新第 idx 个元素，并沿叶子到根的路径重新计算聚合值。
func (st *SegTree[S, M]) Set(idx int, val S) {
	if idx < 0 || idx >= st.n {
		panic(xerrors.IndexOutOfRange(idx, st.n))
	}
	node := idx + st.size
	st.tree[node] = val
	for node >>= 1; node >= 1; node >>= 1 {
		st.tree[node] = st.m.Op(st.tree[2*node], st.tree[2*node+1])
	}
}

// Get 返回第 idx 个元素。
func (st *SegTree[S, M]) Get(idx int) S {
	if idx < 0 || idx >= st.n {
		panic(xerrors.IndexOutOfRange(idx, st.n))
	}
	return st.tree[idx+st.size]
}

// Prod 区间查询 [left, right) 的幺半群积。
// 左右两侧分别累积，保证非交换幺半群的运算顺序。
func (st *SegTree[S, M]) Prod(left, right int) S {
	if left < 0 || left > right || right > st.n {
		panic(xerrors.InvalidRange(left, right, st.n))
	}
	sml, smr := st.m.Identity(), st.m.Identity()
	left += st.size
	right += st.size
	for left < right {
		if left&1 == 1 {
			sml = st.m.Op(sml, st.tree[left])
			left++
		}
		if right&1 == 1 {
			right--
			smr = st.m.Op(st.tree[right], smr)
		}
		left >>= 1
		right >>= 1
	}
	return st.m.Op(sml, smr)
}

// AllProd 返回整个序列的积。
func (st *SegTree[S, M]) AllProd() S { return st.tree[1] }

// MaxRight 返回最大的 r，使得 pred(Prod(l, r)) 为真，pred(单位元) 必须为真。
func (st *SegTree[S, M]) MaxRight(l int, pred func(S) bool) int {
	if l < 0 || l > st.n {
		panic(xerrors.IndexOutOfRange(l, st.n+1))
	}
	if !pred(st.m.Identity()) {
		panic(xerrors.Derive(xerrors.ErrPredicateIdentity, "MaxRight(%d)", l))
	}
	if l == st.n {
		return st.n
	}
	l += st.size
	sm := st.m.Identity()
	for {
		for l%2 == 0 {
			l >>= 1
		}
		if !pred(st.m.Op(sm, st.tree[l])) {
			// 沿谓词边界向下，每层至多前进一步。
			for l < st.size {
				l <<= 1
				if next := st.m.Op(sm, st.tree[l]); pred(next) {
					sm = next
					l++
				}
			}
			return l - st.size
		}
		sm = st.m.Op(sm, st.tree[l])
		l++
		if l&-l == l {
			break
		}
	}
	return st.n
}

// MinLeft 返回最小的 l，使得 pred(Prod(l, r)) 为真，pred(单位元) 必须为真。
func (st *SegTree[S, M]) MinLeft(r int, pred func(S) bool) int {
	if r < 0 || r > st.n {
		panic(xerrors.IndexOutOfRange(r, st.n+1))
	}
	if !pred(st.m.Identity()) {
		panic(xerrors.Derive(xerrors.ErrPredicateIdentity, "MinLeft(%d)", r))
	}
	if r == 0 {
		return 0
	}
	r += st.size
	sm := st.m.Identity()
	for {
		r--
		for r > 1 && r%2 == 1 {
			r >>= 1
		}
		if !pred(st.m.Op(st.tree[r], sm)) {
			for r < st.size {
				r = 2*r + 1
				if next := st.m.Op(st.tree[r], sm); pred(next) {
					sm = next
					r--
				}
			}
			return r + 1 - st.size
		}
		sm = st.m.Op(st.tree[r], sm)
		if r&-r == r {
			break
		}
	}
	return 0
}

// NewRangeSum 创建区间求和的 int64 线段树。
// 在实际应用中，例如查询某段时间内的总销量。
func NewRangeSum(xs []int64) *SegTree[int64, algebra.Additive[int64]] {
	return NewSegTreeFrom[int64](algebra.Additive[int64]{}, xs)
}

// NewRangeMin 创建区间最小值的 int64 线段树，空区间返回 math.MaxInt64。
func NewRangeMin(xs []int64) *SegTree[int64, algebra.Min[int64]] {
	return NewSegTreeFrom[int64](algebra.Min[int64]{E: math.MaxInt64}, xs)
}

// NewRangeMax 创建区间最大值的 int64 线段树，空区间返回 math.MinInt64。
func NewRangeMax(xs []int64) *SegTree[int64, algebra.Max[int64]] {
	return NewSegTreeFrom[int64](algebra.Max[int64]{E: math.MinInt64}, xs)
}
