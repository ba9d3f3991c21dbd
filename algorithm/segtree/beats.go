package segtree

import (
	"log/slog"
	"math"
	"math/bits"
	"time"

	"github.com/wyfcoding/algo/xerrors"
)

const (
	negInf int64 = math.MinInt64
	posInf int64 = math.MaxInt64
)

// beatsNode 记录区间的和、长度、严格最大/次大值及最大值个数、严格最小/次小值及最小值个数，
// 以及尚未下推的加法标记。chmin / chmax 的待下推上下界不单独存储：
// 子节点的最大值超出父节点 max1 的部分即为待下推的 chmin，最小值同理。
type beatsNode struct {
	sum    int64
	len    int64
	max1   int64
	max2   int64
	maxCnt int64
	min1   int64
	min2   int64
	minCnt int64
	add    int64
}

func identityNode() beatsNode {
	return beatsNode{max1: negInf, max2: negInf, min1: posInf, min2: posInf}
}

func leafNode(x int64) beatsNode {
	return beatsNode{sum: x, len: 1, max1: x, max2: negInf, maxCnt: 1, min1: x, min2: posInf, minCnt: 1}
}

// mergeNodes 合并左右两个子区间的汇总，结果不带加法标记。
func mergeNodes(l, r beatsNode) beatsNode {
	n := beatsNode{sum: l.sum + r.sum, len: l.len + r.len}

	switch {
	case l.max1 > r.max1:
		n.max1, n.maxCnt, n.max2 = l.max1, l.maxCnt, max(l.max2, r.max1)
	case l.max1 < r.max1:
		n.max1, n.maxCnt, n.max2 = r.max1, r.maxCnt, max(l.max1, r.max2)
	default:
		n.max1, n.maxCnt, n.max2 = l.max1, l.maxCnt+r.maxCnt, max(l.max2, r.max2)
	}

	switch {
	case l.min1 < r.min1:
		n.min1, n.minCnt, n.min2 = l.min1, l.minCnt, min(l.min2, r.min1)
	case l.min1 > r.min1:
		n.min1, n.minCnt, n.min2 = r.min1, r.minCnt, min(l.min1, r.min2)
	default:
		n.min1, n.minCnt, n.min2 = l.min1, l.minCnt+r.minCnt, min(l.min2, r.min2)
	}
	return n
}

// Beats 支持区间 chmin、区间 chmax、区间加与区间和/最值查询的 Segment Tree Beats。
//
// 每次操作在节点入口判断"跳过 / 打标记 / 继续递归"：
//
//	chmin(ub): ub >= max1 跳过；max2 < ub 打标记
//	chmax(lb): lb <= min1 跳过；lb < min2 打标记
//	add(v):    总是打标记
//
// chmax 的打标记条件取严格的 lb < min2，比允许 lb <= min2 的常见写法更窄：
// lb == min2 时最小值与次小值会合并，这里不在标记中处理合并，而是继续递归到子节点。
// chmin 同理取 max2 < ub。结果相同，只是少数节点多递归一层。
//
// 均摊复杂度 O((N+Q) log^2 N)。元素取值必须严格位于 math.MinInt64 与 math.MaxInt64 之间，
// 这两个值被用作 -∞ / +∞ 哨兵；和的溢出不做检查。
type Beats struct {
	d    []beatsNode
	n    int
	size int
	log  int
}

// NewBeats 创建长度为 n、元素全为 0 的 Beats。
func NewBeats(n int) *Beats {
	return NewBeatsFrom(make([]int64, n))
}

// NewBeatsFrom 以 xs 为初始序列构建，O(n)。
func NewBeatsFrom(xs []int64) *Beats {
	start := time.Now()
	n := len(xs)
	log := 0
	if n > 1 {
		log = bits.Len(uint(n - 1))
	}
	size := 1 << log

	b := &Beats{d: make([]beatsNode, 2*size), n: n, size: size, log: log}
	for i := range b.d {
		b.d[i] = identityNode()
	}
	for i, x := range xs {
		checkValue(x)
		b.d[size+i] = leafNode(x)
	}
	for k := size - 1; k >= 1; k-- {
		b.update(k)
	}

	slog.Debug("segment tree beats built", "n", n, "size", size, "duration", time.Since(start))
	return b
}

// Len 返回序列长度。
func (b *Beats) Len() int { return b.n }

// Get 返回第 i 个元素。
func (b *Beats) Get(i int) int64 {
	b.checkIndex(i)
	p := i + b.size
	for s := b.log; s >= 1; s-- {
		b.push(p >> s)
	}
	return b.d[p].sum
}

// Set 把第 i 个元素替换为 x。
func (b *Beats) Set(i int, x int64) {
	b.checkIndex(i)
	checkValue(x)
	p := i + b.size
	for s := b.log; s >= 1; s-- {
		b.push(p >> s)
	}
	b.d[p] = leafNode(x)
	for s := 1; s <= b.log; s++ {
		b.update(p >> s)
	}
}

// Chmin 对 [l, r) 中每个元素执行 x = min(x, ub)。
func (b *Beats) Chmin(l, r int, ub int64) {
	b.checkRange(l, r)
	checkValue(ub)
	b.chmin(1, 0, b.size, l, r, ub)
}

// Chmax 对 [l, r) 中每个元素执行 x = max(x, lb)。
func (b *Beats) Chmax(l, r int, lb int64) {
	b.checkRange(l, r)
	checkValue(lb)
	b.chmax(1, 0, b.size, l, r, lb)
}

// Add 对 [l, r) 中每个元素加 v。
func (b *Beats) Add(l, r int, v int64) {
	b.checkRange(l, r)
	b.add(1, 0, b.size, l, r, v)
}

// Sum 返回 [l, r) 的和，空区间为 0。
func (b *Beats) Sum(l, r int) int64 {
	b.checkRange(l, r)
	return b.query(1, 0, b.size, l, r).sum
}

// Min 返回 [l, r) 的最小值，空区间返回 math.MaxInt64。
func (b *Beats) Min(l, r int) int64 {
	b.checkRange(l, r)
	return b.query(1, 0, b.size, l, r).min1
}

// Max 返回 [l, r) 的最大值，空区间返回 math.MinInt64。
func (b *Beats) Max(l, r int) int64 {
	b.checkRange(l, r)
	return b.query(1, 0, b.size, l, r).max1
}

// ToSlice 返回当前序列，O(n)。
func (b *Beats) ToSlice() []int64 {
	for k := 1; k < b.size; k++ {
		b.push(k)
	}
	out := make([]int64, b.n)
	for i := range out {
		out[i] = b.d[b.size+i].sum
	}
	return out
}

func (b *Beats) chmin(k, nl, nr, l, r int, x int64) {
	if r <= nl || nr <= l || b.d[k].max1 <= x {
		return
	}
	if l <= nl && nr <= r && b.d[k].max2 < x {
		b.d[k].applyChmin(x)
		return
	}
	b.push(k)
	mid := (nl + nr) / 2
	b.chmin(2*k, nl, mid, l, r, x)
	b.chmin(2*k+1, mid, nr, l, r, x)
	b.update(k)
}

func (b *Beats) chmax(k, nl, nr, l, r int, x int64) {
	if r <= nl || nr <= l || x <= b.d[k].min1 {
		return
	}
	if l <= nl && nr <= r && x < b.d[k].min2 {
		b.d[k].applyChmax(x)
		return
	}
	b.push(k)
	mid := (nl + nr) / 2
	b.chmax(2*k, nl, mid, l, r, x)
	b.chmax(2*k+1, mid, nr, l, r, x)
	b.update(k)
}

func (b *Beats) add(k, nl, nr, l, r int, v int64) {
	if r <= nl || nr <= l {
		return
	}
	if l <= nl && nr <= r {
		b.d[k].applyAdd(v)
		return
	}
	b.push(k)
	mid := (nl + nr) / 2
	b.add(2*k, nl, mid, l, r, v)
	b.add(2*k+1, mid, nr, l, r, v)
	b.update(k)
}

func (b *Beats) query(k, nl, nr, l, r int) beatsNode {
	if r <= nl || nr <= l {
		return identityNode()
	}
	if l <= nl && nr <= r {
		return b.d[k]
	}
	b.push(k)
	mid := (nl + nr) / 2
	return mergeNodes(b.query(2*k, nl, mid, l, r), b.query(2*k+1, mid, nr, l, r))
}

func (b *Beats) update(k int) {
	b.d[k] = mergeNodes(b.d[2*k], b.d[2*k+1])
}

// push 按"加法、chmin、chmax"的顺序把节点 k 的待定作用下推到子节点。
func (b *Beats) push(k int) {
	p := &b.d[k]
	for _, c := range [2]int{2 * k, 2*k + 1} {
		child := &b.d[c]
		if p.add != 0 {
			child.applyAdd(p.add)
		}
		if child.max1 > p.max1 {
			child.applyChmin(p.max1)
		}
		if child.min1 < p.min1 {
			child.applyChmax(p.min1)
		}
	}
	p.add = 0
}

func (n *beatsNode) applyAdd(v int64) {
	if n.len == 0 {
		return
	}
	n.sum += v * n.len
	n.max1 += v
	if n.max2 != negInf {
		n.max2 += v
	}
	n.min1 += v
	if n.min2 != posInf {
		n.min2 += v
	}
	n.add += v
}

// applyChmin 要求 max2 < x < max1：所有等于 max1 的元素变为 x。
func (n *beatsNode) applyChmin(x int64) {
	n.sum += (x - n.max1) * n.maxCnt
	switch {
	case n.min1 == n.max1:
		n.min1 = x
	case n.min2 == n.max1:
		n.min2 = x
	}
	n.max1 = x
}

// applyChmax 要求 min1 < x < min2：所有等于 min1 的元素变为 x。
func (n *beatsNode) applyChmax(x int64) {
	n.sum += (x - n.min1) * n.minCnt
	switch {
	case n.max1 == n.min1:
		n.max1 = x
	case n.max2 == n.min1:
		n.max2 = x
	}
	n.min1 = x
}

// CheckInvariants 检查每个节点的汇总是否自洽，并在副本上下推全部标记后
// 逐节点与子节点的合并结果比对。仅用于测试与自检。
func (b *Beats) CheckInvariants() error {
	for k := 1; k < 2*b.size; k++ {
		if err := checkNode(k, b.d[k]); err != nil {
			return err
		}
	}

	c := &Beats{d: make([]beatsNode, len(b.d)), n: b.n, size: b.size, log: b.log}
	copy(c.d, b.d)
	for k := 1; k < c.size; k++ {
		c.push(k)
	}
	for k := c.size - 1; k >= 1; k-- {
		want := mergeNodes(c.d[2*k], c.d[2*k+1])
		got := c.d[k]
		got.add = 0
		if got != want {
			return xerrors.Derive(xerrors.ErrInvariantViolated, "node %d: stored %+v, children give %+v", k, got, want)
		}
	}
	return nil
}

func checkNode(k int, n beatsNode) error {
	if n.len == 0 {
		if n.sum != 0 || n.max1 != negInf || n.min1 != posInf {
			return xerrors.Derive(xerrors.ErrInvariantViolated, "node %d: empty node is not identity: %+v", k, n)
		}
		return nil
	}
	switch {
	case n.min1 > n.max1:
		return xerrors.Derive(xerrors.ErrInvariantViolated, "node %d: min1 %d > max1 %d", k, n.min1, n.max1)
	case n.max2 >= n.max1:
		return xerrors.Derive(xerrors.ErrInvariantViolated, "node %d: max2 %d >= max1 %d", k, n.max2, n.max1)
	case n.min2 <= n.min1:
		return xerrors.Derive(xerrors.ErrInvariantViolated, "node %d: min2 %d <= min1 %d", k, n.min2, n.min1)
	case n.maxCnt < 1 || n.maxCnt > n.len || n.minCnt < 1 || n.minCnt > n.len:
		return xerrors.Derive(xerrors.ErrInvariantViolated, "node %d: counts %d/%d out of [1, %d]", k, n.maxCnt, n.minCnt, n.len)
	}
	if n.min1 == n.max1 {
		if n.maxCnt != n.len || n.minCnt != n.len || n.max2 != negInf || n.min2 != posInf {
			return xerrors.Derive(xerrors.ErrInvariantViolated, "node %d: uniform node is inconsistent: %+v", k, n)
		}
	} else if n.maxCnt+n.minCnt > n.len {
		return xerrors.Derive(xerrors.ErrInvariantViolated, "node %d: maxCnt+minCnt %d > len %d", k, n.maxCnt+n.minCnt, n.len)
	}
	return nil
}

func checkValue(x int64) {
	if x == negInf || x == posInf {
		panic(xerrors.Derive(xerrors.ErrValueOutOfDomain, "value %d", x))
	}
}

func (b *Beats) checkIndex(i int) {
	if i < 0 || i >= b.n {
		panic(xerrors.IndexOutOfRange(i, b.n))
	}
}

func (b *Beats) checkRange(l, r int) {
	if l < 0 || l > r || r > b.n {
		panic(xerrors.InvalidRange(l, r, b.n))
	}
}
