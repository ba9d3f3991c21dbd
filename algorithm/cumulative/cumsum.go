// Package cumulative 提供前缀和与差分 (imos 法) 的一维、二维实现。
//
// 所有区间均为左闭右开。前缀和在构造后只读；imos 结构先累积差分，
// 再调用 Summation 一次性还原为各点的值。
package cumulative

import (
	"github.com/wyfcoding/algo/algorithm/algebra"
	"github.com/wyfcoding/algo/xerrors"
)

// CumSum 一维前缀和，值域为可换群 G。
type CumSum[S any, G algebra.AbGroup[S]] struct {
	g      G
	cumsum []S // cumsum[i] = xs[0] + ... + xs[i-1]
}

// NewCumSum 构建 xs 的前缀和，O(n)。
func NewCumSum[S any, G algebra.AbGroup[S]](g G, xs []S) *CumSum[S, G] {
	c := make([]S, len(xs)+1)
	c[0] = g.Zero()
	for i, x := range xs {
		c[i+1] = g.Add(c[i], x)
	}
	return &CumSum[S, G]{g: g, cumsum: c}
}

// Len 返回原序列长度。
func (c *CumSum[S, G]) Len() int { return len(c.cumsum) - 1 }

// RangeSum 返回 xs[l..r) 之和。
func (c *CumSum[S, G]) RangeSum(l, r int) S {
	checkRange(l, r, c.Len())
	return c.g.Sub(c.cumsum[r], c.cumsum[l])
}

// PrefixSum 返回 [0, r) 的和。
func (c *CumSum[S, G]) PrefixSum(r int) S { return c.RangeSum(0, r) }
// SuffixSum 返回 [l, n) 的和。
func (c *CumSum[S, G]) SuffixSum(l int) S { return c.RangeSum(l, c.Len()) }

// MaxRight 返回使 pred(RangeSum(l, r)) 成立的最大 r。
// pred 必须单调：对 l <= r' <= r，pred(RangeSum(l, r)) 成立蕴含 pred(RangeSum(l, r')) 成立，
// 例如元素非负时的 "和不超过 k"。pred(零元) 不成立时 panic。
func (c *CumSum[S, G]) MaxRight(l int, pred func(S) bool) int {
	n := c.Len()
	checkRange(l, l, n)
	if !pred(c.g.Zero()) {
		panic(xerrors.Derive(xerrors.ErrPredicateIdentity, "MaxRight(%d)", l))
	}
	if pred(c.RangeSum(l, n)) {
		return n
	}
	ok, ng := l, n
	for ng-ok > 1 {
		mid := ok + (ng-ok)/2
		if pred(c.RangeSum(l, mid)) {
			ok = mid
		} else {
			ng = mid
		}
	}
	return ok
}

// MinLeft 返回使 pred(RangeSum(l, r)) 成立的最小 l，单调性要求与 MaxRight 对称。
func (c *CumSum[S, G]) MinLeft(r int, pred func(S) bool) int {
	checkRange(r, r, c.Len())
	if !pred(c.g.Zero()) {
		panic(xerrors.Derive(xerrors.ErrPredicateIdentity, "MinLeft(%d)", r))
	}
	if pred(c.RangeSum(0, r)) {
		return 0
	}
	ok, ng := r, 0
	for ok-ng > 1 {
		mid := ng + (ok-ng)/2
		if pred(c.RangeSum(mid, r)) {
			ok = mid
		} else {
			ng = mid
		}
	}
	return ok
}

// CumSum2D 二维前缀和。
type CumSum2D[S any, G algebra.AbGroup[S]] struct {
	g      G
	cumsum [][]S // (h+1) x (w+1)
	h, w   int
}

// NewCumSum2D 由矩形二维切片构造，行长度不一致时返回 ErrInvalidShape。
func NewCumSum2D[S any, G algebra.AbGroup[S]](g G, xss [][]S) (*CumSum2D[S, G], error) {
	h, w := len(xss), 0
	if h > 0 {
		w = len(xss[0])
	}
	for y, row := range xss {
		if len(row) != w {
			return nil, xerrors.Derive(xerrors.ErrInvalidShape, "row %d has %d columns, want %d", y, len(row), w)
		}
	}

	c := make([][]S, h+1)
	for y := range c {
		c[y] = make([]S, w+1)
		for x := range c[y] {
			c[y][x] = g.Zero()
		}
	}
	for y := range h {
		for x := range w {
			// c[y+1][x+1] = c[y][x+1] + c[y+1][x] - c[y][x] + xss[y][x]
			c[y+1][x+1] = g.Add(g.Sub(g.Add(c[y][x+1], c[y+1][x]), c[y][x]), xss[y][x])
		}
	}
	return &CumSum2D[S, G]{g: g, cumsum: c, h: h, w: w}, nil
}

// H 和 W 返回原网格的行数与列数。
func (c *CumSum2D[S, G]) H() int { return c.h }
func (c *CumSum2D[S, G]) W() int { return c.w }

// RectSum 返回 [y1, y2) x [x1, x2) 内的和。
func (c *CumSum2D[S, G]) RectSum(y1, y2, x1, x2 int) S {
	checkRange(y1, y2, c.h)
	checkRange(x1, x2, c.w)
	g, s := c.g, c.cumsum
	return g.Add(g.Sub(g.Sub(s[y2][x2], s[y1][x2]), s[y2][x1]), s[y1][x1])
}

func checkRange(l, r, n int) {
	if l < 0 || l > r || r > n {
		panic(xerrors.InvalidRange(l, r, n))
	}
}
