// Package grid 提供二维网格上的坐标与容器。坐标以 (Y, X) 表示，Y 为行、X 为列。
package grid

import (
	"github.com/wyfcoding/algo/xerrors"
)

// Pos 网格坐标。
type Pos struct {
	Y int
	X int
}

// Dir4 上下左右四个方向。
var Dir4 = [4]Pos{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Dir8 含对角线的八个方向。
var Dir8 = [8]Pos{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}

// Add 返回 p + q。
func (p Pos) Add(q Pos) Pos { return Pos{Y: p.Y + q.Y, X: p.X + q.X} }
// Sub 返回 p - q。
func (p Pos) Sub(q Pos) Pos { return Pos{Y: p.Y - q.Y, X: p.X - q.X} }

// InBounds 判断坐标是否位于 h 行 w 列的网格内。
func (p Pos) InBounds(h, w int) bool {
	return 0 <= p.Y && p.Y < h && 0 <= p.X && p.X < w
}

// Neighbors4 返回网格内的四邻域坐标。
func (p Pos) Neighbors4(h, w int) []Pos {
	out := make([]Pos, 0, 4)
	for _, d := range Dir4 {
		if q := p.Add(d); q.InBounds(h, w) {
			out = append(out, q)
		}
	}
	return out
}

// Neighbors8 返回网格内的八邻域坐标。
func (p Pos) Neighbors8(h, w int) []Pos {
	out := make([]Pos, 0, 8)
	for _, d := range Dir8 {
		if q := p.Add(d); q.InBounds(h, w) {
			out = append(out, q)
		}
	}
	return out
}

// Grid 按行优先存储的 h*w 网格。
type Grid[T any] struct {
	cells []T
	h, w  int
}

// NewGrid 创建所有格子为零值的网格。
func NewGrid[T any](h, w int) *Grid[T] {
	if h < 0 || w < 0 {
		panic(xerrors.Derive(xerrors.ErrInvalidShape, "grid %dx%d", h, w))
	}
	return &Grid[T]{cells: make([]T, h*w), h: h, w: w}
}

// FromRows 以行切片构建网格，行长度不一致时返回 ErrInvalidShape。
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	g := NewGrid[T](h, w)
	for y, row := range rows {
		if len(row) != w {
			return nil, xerrors.Derive(xerrors.ErrInvalidShape, "row %d has %d cells, want %d", y, len(row), w)
		}
		copy(g.cells[y*w:], row)
	}
	return g, nil
}

// H 返回行数。
func (g *Grid[T]) H() int { return g.h }
// W 返回列数。
func (g *Grid[T]) W() int { return g.w }

// InBounds 判断 p 是否在网格内。
func (g *Grid[T]) InBounds(p Pos) bool { return p.InBounds(g.h, g.w) }

// At 返回 p 处的值，越界 panic。
func (g *Grid[T]) At(p Pos) T {
	return g.cells[g.index(p)]
}

// Set 设置 p 处的值，越界 panic。
func (g *Grid[T]) Set(p Pos, v T) {
	g.cells[g.index(p)] = v
}

func (g *Grid[T]) index(p Pos) int {
	if !g.InBounds(p) {
		panic(xerrors.Derive(xerrors.ErrIndexOutOfRange, "pos (%d, %d) outside %dx%d", p.Y, p.X, g.h, g.w))
	}
	return p.Y*g.w + p.X
}
