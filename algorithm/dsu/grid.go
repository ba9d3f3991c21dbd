package dsu

import (
	"github.com/wyfcoding/algo/algorithm/grid"
	"github.com/wyfcoding/algo/xerrors"
)

// GridDsu 以 h*w 网格坐标为元素的并查集，坐标按行优先编码为 y*w + x。
type GridDsu struct {
	dsu  *Dsu
	h, w int
}

// NewGrid 创建 h 行 w 列、每个格子自成一组的并查集。
func NewGrid(h, w int) *GridDsu {
	return &GridDsu{dsu: New(h * w), h: h, w: w}
}

// H 返回行数。
func (d *GridDsu) H() int { return d.h }
// W 返回列数。
func (d *GridDsu) W() int { return d.w }

// Encode 把坐标编码为下标，越界 panic。
func (d *GridDsu) Encode(p grid.Pos) int {
	if !p.InBounds(d.h, d.w) {
		panic(xerrors.Derive(xerrors.ErrIndexOutOfRange, "pos (%d, %d) outside %dx%d", p.Y, p.X, d.h, d.w))
	}
	return p.Y*d.w + p.X
}

// Decode 把下标还原为坐标。
func (d *GridDsu) Decode(i int) grid.Pos {
	d.dsu.check(i)
	return grid.Pos{Y: i / d.w, X: i % d.w}
}

// Merge 合并两个格子所在的集合。
func (d *GridDsu) Merge(a, b grid.Pos) (leader, absorbed grid.Pos, merged bool) {
	l, r, ok := d.dsu.Merge(d.Encode(a), d.Encode(b))
	return d.Decode(l), d.Decode(r), ok
}

// Same 判断两个格子是否同组。
func (d *GridDsu) Same(a, b grid.Pos) bool { return d.dsu.Same(d.Encode(a), d.Encode(b)) }

// Leader 返回格子所在集合的代表格子。
func (d *GridDsu) Leader(a grid.Pos) grid.Pos { return d.Decode(d.dsu.Leader(d.Encode(a))) }

// Size 返回格子所在集合的大小。
func (d *GridDsu) Size(a grid.Pos) int { return d.dsu.Size(d.Encode(a)) }

// CountGroup 返回集合个数。
func (d *GridDsu) CountGroup() int { return d.dsu.CountGroup() }

// MergeNeighbors 把 p 与网格内被 accept 接受的四邻域合并，返回实际发生的合并次数。
func (d *GridDsu) MergeNeighbors(p grid.Pos, accept func(a, b grid.Pos) bool) int {
	merged := 0
	for _, q := range p.Neighbors4(d.h, d.w) {
		if !accept(p, q) {
			continue
		}
		if _, _, ok := d.Merge(p, q); ok {
			merged++
		}
	}
	return merged
}

// Groups 返回所有连通块，块内按行优先顺序排列。
func (d *GridDsu) Groups() [][]grid.Pos {
	idx := d.dsu.Groups()
	out := make([][]grid.Pos, len(idx))
	for i, g := range idx {
		out[i] = make([]grid.Pos, len(g))
		for j, v := range g {
			out[i][j] = d.Decode(v)
		}
	}
	return out
}
