package segtree

import (
	"log/slog"
	"math/bits"
	"time"

	"github.com/wyfcoding/algo/algorithm/algebra"
	"github.com/wyfcoding/algo/xerrors"
)

// DualSegTree 对偶线段树：区间作用、单点读取。
//
// 只在内部节点上保存懒标记，元素本身不需要构成幺半群，作用也不必可交换。
// 区间作用前先下推两侧边界路径上的标记，保证同一元素上的作用按调用顺序复合。
// 区间作用与单点读写均为 O(log n)。
type DualSegTree[S, F any, A algebra.Action[S, F]] struct {
	a    A
	d    []S // 长度为 size，[n, size) 为补齐位置。
	lz   []F // 下标 1 为根。
	n    int
	size int
	log  int
}

// NewDual 以 xs 为初始序列构建对偶线段树。
func NewDual[S, F any, A algebra.Action[S, F]](a A, xs []S) *DualSegTree[S, F, A] {
	start := time.Now()
	n := len(xs)
	log := 0
	if n > 1 {
		log = bits.Len(uint(n - 1))
	}
	size := 1 << log

	t := &DualSegTree[S, F, A]{
		a:    a,
		d:    make([]S, size),
		lz:   make([]F, size),
		n:    n,
		size: size,
		log:  log,
	}
	copy(t.d, xs)
	id := a.IdentityMap()
	for i := range t.lz {
		t.lz[i] = id
	}

	slog.Debug("dual segtree built", "n", n, "size", size, "duration", time.Since(start))
	return t
}

// Len 返回序列长度。
func (t *DualSegTree[S, F, A]) Len() int { return t.n }

// Get 返回第 p 个元素在所有作用后的值。
func (t *DualSegTree[S, F, A]) Get(p int) S {
	t.checkIndex(p)
	t.pushPath(p)
	return t.d[p]
}

// Set 把第 p 个元素替换为 x，之前的作用不再影响它。
func (t *DualSegTree[S, F, A]) Set(p int, x S) {
	t.checkIndex(p)
	t.pushPath(p)
	t.d[p] = x
}

// ApplyPoint 把作用 f 施加到第 p 个元素上。
func (t *DualSegTree[S, F, A]) ApplyPoint(p int, f F) {
	t.checkIndex(p)
	t.pushPath(p)
	t.d[p] = t.a.Mapping(f, t.d[p])
}

// ApplyRange 把作用 f 施加到 [l, r) 的每个元素上。
func (t *DualSegTree[S, F, A]) ApplyRange(l, r int, f F) {
	if l < 0 || l > r || r > t.n {
		panic(xerrors.InvalidRange(l, r, t.n))
	}
	if l == r {
		return
	}
	l += t.size
	r += t.size
	for i := t.log; i >= 1; i-- {
		if (l>>i)<<i != l {
			t.push(l >> i)
		}
		if (r>>i)<<i != r {
			t.push((r - 1) >> i)
		}
	}
	for l < r {
		if l&1 == 1 {
			t.allApply(l, f)
			l++
		}
		if r&1 == 1 {
			r--
			t.allApply(r, f)
		}
		l >>= 1
		r >>= 1
	}
}

// ToSlice 下推全部标记并返回序列的副本，O(n)。
func (t *DualSegTree[S, F, A]) ToSlice() []S {
	for k := 1; k < t.size; k++ {
		t.push(k)
	}
	return append([]S(nil), t.d[:t.n]...)
}

func (t *DualSegTree[S, F, A]) pushPath(p int) {
	p += t.size
	for i := t.log; i >= 1; i-- {
		t.push(p >> i)
	}
}

func (t *DualSegTree[S, F, A]) allApply(k int, f F) {
	if k < t.size {
		t.lz[k] = t.a.Composition(f, t.lz[k])
		return
	}
	t.d[k-t.size] = t.a.Mapping(f, t.d[k-t.size])
}

func (t *DualSegTree[S, F, A]) push(k int) {
	t.allApply(2*k, t.lz[k])
	t.allApply(2*k+1, t.lz[k])
	t.lz[k] = t.a.IdentityMap()
}

func (t *DualSegTree[S, F, A]) checkIndex(p int) {
	if p < 0 || p >= t.n {
		panic(xerrors.IndexOutOfRange(p, t.n))
	}
}

// AffinePoint 仿射作用在单个 int64 上，供 RangeAffinePointGet 使用。
type AffinePoint struct{}

func (AffinePoint) IdentityMap() Affine             { return AffineIdentity }
func (AffinePoint) Mapping(f Affine, x int64) int64 { return f.A*x + f.B }
func (AffinePoint) Composition(f, g Affine) Affine  { return composeAffine(f, g) }

// RangeAffinePointGet 支持区间仿射与单点查询。
type RangeAffinePointGet struct {
	t *DualSegTree[int64, Affine, AffinePoint]
}

// NewRangeAffinePointGet 以 xs 为初始序列构建。
func NewRangeAffinePointGet(xs []int64) *RangeAffinePointGet {
	return &RangeAffinePointGet{t: NewDual[int64, Affine](AffinePoint{}, xs)}
}

// Len 返回序列长度。
func (s *RangeAffinePointGet) Len() int { return s.t.Len() }

// Affine 把 [l, r) 中每个元素 x 替换为 a*x + b。
func (s *RangeAffinePointGet) Affine(l, r int, a, b int64) {
	s.t.ApplyRange(l, r, Affine{A: a, B: b})
}

// Get 返回第 i 个元素。
func (s *RangeAffinePointGet) Get(i int) int64 { return s.t.Get(i) }

// Set 把第 i 个元素替换为 x。
func (s *RangeAffinePointGet) Set(i int, x int64) { s.t.Set(i, x) }

// ToSlice 返回当前序列的副本。
func (s *RangeAffinePointGet) ToSlice() []int64 { return s.t.ToSlice() }
