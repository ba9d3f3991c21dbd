// Package segtree 提供线段树家族：普通线段树、懒标记线段树、对偶线段树、Segment Tree Beats 与树状数组。
//
// 算法原理.
// 懒标记线段树把长度为 n 的序列补齐到 2 的幂 size，用 2*size 个聚合格子与 size 个懒标记格子
// 表示一棵完全二叉树。区间作用时，完全覆盖的节点只更新自身聚合值并把作用复合进懒标记，
// 部分覆盖的节点先下推懒标记再递归。正确性依赖作用对幺半群运算的分配律。
//
// 复杂度分析.
// - 构建 O(n)，单点读写、区间查询、区间作用、MaxRight / MinLeft 均为 O(log n)。
// - 空间 O(n)。
//
// 所有区间均为半开区间 [l, r)。越界下标与非法区间属于调用方错误，直接 panic。
// 结构体不是并发安全的。
package segtree

import (
	"log/slog"
	"math/bits"
	"time"

	"github.com/wyfcoding/algo/algorithm/algebra"
	"github.com/wyfcoding/algo/xerrors"
)

// LazySegTree 懒标记线段树。
type LazySegTree[S, F any, M algebra.MapMonoid[S, F]] struct {
	m    M
	d    []S // 聚合值，下标 1 为根，[size, 2*size) 为叶子。
	lz   []F // 懒标记，仅内部节点持有。
	n    int
	size int
	log  int
	// fails 非空时，作用后聚合值失败的内部节点会下推并由子节点重算，见 LazyBeats。
	fails func(S) bool
}

// NewLazy 创建长度为 n、所有元素为单位元的懒标记线段树。
func NewLazy[S, F any, M algebra.MapMonoid[S, F]](m M, n int) *LazySegTree[S, F, M] {
	xs := make([]S, n)
	for i := range xs {
		xs[i] = m.Identity()
	}
	return NewLazyFrom[S, F](m, xs)
}

// NewLazyFrom 以 xs 为初始叶子构建懒标记线段树，O(n)。
func NewLazyFrom[S, F any, M algebra.MapMonoid[S, F]](m M, xs []S) *LazySegTree[S, F, M] {
	start := time.Now()
	n := len(xs)
	log := 0
	if n > 1 {
		log = bits.Len(uint(n - 1))
	}
	size := 1 << log

	t := &LazySegTree[S, F, M]{
		m:    m,
		d:    make([]S, 2*size),
		lz:   make([]F, size),
		n:    n,
		size: size,
		log:  log,
	}
	e := m.Identity()
	for i := range t.d {
		t.d[i] = e
	}
	id := m.IdentityMap()
	for i := range t.lz {
		t.lz[i] = id
	}
	copy(t.d[size:], xs)
	for i := size - 1; i >= 1; i-- {
		t.update(i)
	}

	slog.Debug("lazy segtree built", "n", n, "size", size, "duration", time.Since(start))
	return t
}

// Len 返回序列长度。
func (t *LazySegTree[S, F, M]) Len() int {
	return t.n
}

// Set 把第 p 个元素替换为 x。
func (t *LazySegTree[S, F, M]) Set(p int, x S) {
	t.checkIndex(p)
	p += t.size
	for i := t.log; i >= 1; i-- {
		t.push(p >> i)
	}
	t.d[p] = x
	for i := 1; i <= t.log; i++ {
		t.update(p >> i)
	}
}

// Get 返回第 p 个元素在所有懒标记作用后的值。
func (t *LazySegTree[S, F, M]) Get(p int) S {
	t.checkIndex(p)
	p += t.size
	for i := t.log; i >= 1; i-- {
		t.push(p >> i)
	}
	return t.d[p]
}

// Prod 按从左到右的顺序计算 [l, r) 的幺半群积，空区间返回单位元。
func (t *LazySegTree[S, F, M]) Prod(l, r int) S {
	t.checkRange(l, r)
	if l == r {
		return t.m.Identity()
	}
	l += t.size
	r += t.size
	t.pushBoundary(l, r)

	sml, smr := t.m.Identity(), t.m.Identity()
	for l < r {
		if l&1 == 1 {
			sml = t.m.Op(sml, t.d[l])
			l++
		}
		if r&1 == 1 {
			r--
			smr = t.m.Op(t.d[r], smr)
		}
		l >>= 1
		r >>= 1
	}
	return t.m.Op(sml, smr)
}

// AllProd 返回整个序列的积，O(1)。
func (t *LazySegTree[S, F, M]) AllProd() S {
	return t.d[1]
}

// ApplyPoint 把作用 f 施加到第 p 个元素上。
func (t *LazySegTree[S, F, M]) ApplyPoint(p int, f F) {
	t.checkIndex(p)
	p += t.size
	for i := t.log; i >= 1; i-- {
		t.push(p >> i)
	}
	t.d[p] = t.m.Mapping(f, t.d[p])
	for i := 1; i <= t.log; i++ {
		t.update(p >> i)
	}
}

// ApplyRange 把作用 f 施加到 [l, r) 的每个元素上。
func (t *LazySegTree[S, F, M]) ApplyRange(l, r int, f F) {
	t.checkRange(l, r)
	if l == r {
		return
	}
	l += t.size
	r += t.size
	t.pushBoundary(l, r)

	for l2, r2 := l, r; l2 < r2; l2, r2 = l2>>1, r2>>1 {
		if l2&1 == 1 {
			t.allApply(l2, f)
			l2++
		}
		if r2&1 == 1 {
			r2--
			t.allApply(r2, f)
		}
	}

	for i := 1; i <= t.log; i++ {
		if (l>>i)<<i != l {
			t.update(l >> i)
		}
		if (r>>i)<<i != r {
			t.update((r - 1) >> i)
		}
	}
}

// MaxRight 返回最大的 r ∈ [l, n]，使得 pred(Prod(l, r)) 为真。
// pred 必须满足 pred(单位元) 为真，且沿前缀单调（一旦为假之后恒为假）。
func (t *LazySegTree[S, F, M]) MaxRight(l int, pred func(S) bool) int {
	if l < 0 || l > t.n {
		panic(xerrors.IndexOutOfRange(l, t.n+1))
	}
	if !pred(t.m.Identity()) {
		panic(xerrors.Derive(xerrors.ErrPredicateIdentity, "MaxRight(%d)", l))
	}
	if l == t.n {
		return t.n
	}
	l += t.size
	for i := t.log; i >= 1; i-- {
		t.push(l >> i)
	}
	sm := t.m.Identity()
	for {
		for l%2 == 0 {
			l >>= 1
		}
		if !pred(t.m.Op(sm, t.d[l])) {
			for l < t.size {
				t.push(l)
				l <<= 1
				if next := t.m.Op(sm, t.d[l]); pred(next) {
					sm = next
					l++
				}
			}
			return l - t.size
		}
		sm = t.m.Op(sm, t.d[l])
		l++
		if l&-l == l {
			break
		}
	}
	return t.n
}

// MinLeft 返回最小的 l ∈ [0, r]，使得 pred(Prod(l, r)) 为真，要求与 MaxRight 对称。
func (t *LazySegTree[S, F, M]) MinLeft(r int, pred func(S) bool) int {
	if r < 0 || r > t.n {
		panic(xerrors.IndexOutOfRange(r, t.n+1))
	}
	if !pred(t.m.Identity()) {
		panic(xerrors.Derive(xerrors.ErrPredicateIdentity, "MinLeft(%d)", r))
	}
	if r == 0 {
		return 0
	}
	r += t.size
	for i := t.log; i >= 1; i-- {
		t.push((r - 1) >> i)
	}
	sm := t.m.Identity()
	for {
		r--
		for r > 1 && r%2 == 1 {
			r >>= 1
		}
		if !pred(t.m.Op(t.d[r], sm)) {
			for r < t.size {
				t.push(r)
				r = 2*r + 1
				if next := t.m.Op(t.d[r], sm); pred(next) {
					sm = next
					r--
				}
			}
			return r + 1 - t.size
		}
		sm = t.m.Op(t.d[r], sm)
		if r&-r == r {
			break
		}
	}
	return 0
}

// ToSlice 返回当前所有叶子的值，O(n)。
func (t *LazySegTree[S, F, M]) ToSlice() []S {
	for k := 1; k < t.size; k++ {
		t.push(k)
	}
	out := make([]S, t.n)
	copy(out, t.d[t.size:t.size+t.n])
	return out
}

// pushBoundary 下推 [l, r) 两侧边界路径上的懒标记，l 与 r 已偏移到叶子层。
func (t *LazySegTree[S, F, M]) pushBoundary(l, r int) {
	for i := t.log; i >= 1; i-- {
		if (l>>i)<<i != l {
			t.push(l >> i)
		}
		if (r>>i)<<i != r {
			t.push((r - 1) >> i)
		}
	}
}

func (t *LazySegTree[S, F, M]) update(k int) {
	t.d[k] = t.m.Op(t.d[2*k], t.d[2*k+1])
}

func (t *LazySegTree[S, F, M]) allApply(k int, f F) {
	t.d[k] = t.m.Mapping(f, t.d[k])
	if k < t.size {
		t.lz[k] = t.m.Composition(f, t.lz[k])
		if t.fails != nil && t.fails(t.d[k]) {
			t.push(k)
			t.update(k)
		}
	}
}

// push 把节点 k 的懒标记下推到两个子节点，之后 k 的懒标记恢复为恒等作用。
func (t *LazySegTree[S, F, M]) push(k int) {
	t.allApply(2*k, t.lz[k])
	t.allApply(2*k+1, t.lz[k])
	t.lz[k] = t.m.IdentityMap()
}

func (t *LazySegTree[S, F, M]) checkIndex(p int) {
	if p < 0 || p >= t.n {
		panic(xerrors.IndexOutOfRange(p, t.n))
	}
}

func (t *LazySegTree[S, F, M]) checkRange(l, r int) {
	if l < 0 || l > r || r > t.n {
		panic(xerrors.InvalidRange(l, r, t.n))
	}
}
