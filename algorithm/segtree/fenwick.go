package segtree

import (
	"github.com/wyfcoding/algo/algorithm/algebra"
	"github.com/wyfcoding/algo/xerrors"
)

// Fenwick (树状数组) 在可换群上支持单点增量与前缀和查询，均为 O(log N)。
// 区间和通过两个前缀和之差得到，因此要求群结构而不仅是幺半群。
type Fenwick[S any, G algebra.AbGroup[S]] struct {
	g    G
	tree []S // 1-indexed，tree[i] 覆盖 (i - lowbit(i), i]。
	n    int
}

// NewFenwick 创建长度为 n、元素全为零元的树状数组。
func NewFenwick[S any, G algebra.AbGroup[S]](g G, n int) *Fenwick[S, G] {
	tree := make([]S, n+1)
	for i := range tree {
		tree[i] = g.Zero()
	}
	return &Fenwick[S, G]{g: g, tree: tree, n: n}
}

// NewFenwickFrom 以 xs 为初始值在 O(n) 内构建。
func NewFenwickFrom[S any, G algebra.AbGroup[S]](g G, xs []S) *Fenwick[S, G] {
	ft := NewFenwick[S](g, len(xs))
	for i, x := range xs {
		ft.tree[i+1] = g.Add(ft.tree[i+1], x)
		// 把当前节点的值直接贡献给它的父节点。
		if j := (i + 1) + ((i + 1) & -(i + 1)); j <= ft.n {
			ft.tree[j] = g.Add(ft.tree[j], ft.tree[i+1])
		}
	}
	return ft
}

// Len 返回序列长度。
func (ft *Fenwick[S, G]) Len() int { return ft.n }

// Add 把 delta 加到第 idx 个元素上。
func (ft *Fenwick[S, G]) Add(idx int, delta S) {
	if idx < 0 || idx >= ft.n {
		panic(xerrors.IndexOutOfRange(idx, ft.n))
	}
	// 转换为 1-indexed，向上遍历所有覆盖 idx 的节点。
	for idx++; idx <= ft.n; idx += idx & -idx {
		ft.tree[idx] = ft.g.Add(ft.tree[idx], delta)
	}
}

// PrefixSum 返回 [0, r) 的和。
func (ft *Fenwick[S, G]) PrefixSum(r int) S {
	if r < 0 || r > ft.n {
		panic(xerrors.InvalidRange(0, r, ft.n))
	}
	sum := ft.g.Zero()
	for ; r > 0; r -= r & -r {
		sum = ft.g.Add(sum, ft.tree[r])
	}
	return sum
}

// Sum 返回 [l, r) 的和：Sum[l, r) = PrefixSum(r) - PrefixSum(l)。
func (ft *Fenwick[S, G]) Sum(l, r int) S {
	if l < 0 || l > r || r > ft.n {
		panic(xerrors.InvalidRange(l, r, ft.n))
	}
	return ft.g.Sub(ft.PrefixSum(r), ft.PrefixSum(l))
}
