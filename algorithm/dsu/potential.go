package dsu

import (
	"github.com/wyfcoding/algo/algorithm/algebra"
	"github.com/wyfcoding/algo/xerrors"
)

// MergeResult 带势并查集的合并结果。
type MergeResult int

const (
	// Merged 两个集合被合并。
	Merged MergeResult = iota
	// Unchanged 已在同一集合且势能差与约束一致。
	Unchanged
	// Contradiction 已在同一集合但势能差与约束矛盾，结构不变。
	Contradiction
)

func (r MergeResult) String() string {
	switch r {
	case Merged:
		return "merged"
	case Unchanged:
		return "unchanged"
	case Contradiction:
		return "contradiction"
	}
	return "unknown"
}

// PotentialDsu 带势能差的并查集：每个元素 x 有势能 p(x)，
// 约束以 p(b) - p(a) = d 的形式加入，任意两个同集合元素的势能差都可以查询。
// 势能取值于可换群 G，S 需要可比较以检测矛盾。
type PotentialDsu[S comparable, G algebra.AbGroup[S]] struct {
	g      G
	parent []int
	size   []int
	pot    []S // pot[x] = p(x) - p(parent[x])
	groups int
	path   []int
}

// NewPotential 创建 n 个势能为零的单元素集合。
func NewPotential[S comparable, G algebra.AbGroup[S]](g G, n int) *PotentialDsu[S, G] {
	d := &PotentialDsu[S, G]{
		g:      g,
		parent: make([]int, n),
		size:   make([]int, n),
		pot:    make([]S, n),
		groups: n,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
		d.pot[i] = g.Zero()
	}
	return d
}

// Len 返回元素个数。
func (d *PotentialDsu[S, G]) Len() int { return len(d.parent) }

// Leader 返回代表元，并把路径上每个节点直接挂到根上，同时把势能改写为相对根的值。
func (d *PotentialDsu[S, G]) Leader(a int) int {
	if a < 0 || a >= len(d.parent) {
		panic(xerrors.IndexOutOfRange(a, len(d.parent)))
	}
	root := a
	for d.parent[root] != root {
		root = d.parent[root]
	}
	path := d.path[:0]
	for v := a; v != root && d.parent[v] != root; v = d.parent[v] {
		path = append(path, v)
	}
	// 从靠近根的一端开始，父节点的势能已是相对根的值。
	for i := len(path) - 1; i >= 0; i-- {
		v := path[i]
		d.pot[v] = d.g.Add(d.pot[v], d.pot[d.parent[v]])
		d.parent[v] = root
	}
	d.path = path
	return root
}

// potential 返回 p(a) - p(leader(a))。
func (d *PotentialDsu[S, G]) potential(a int) S {
	if d.Leader(a) == a {
		return d.g.Zero()
	}
	return d.pot[a]
}

// Merge 加入约束 p(b) - p(a) = diff。
func (d *PotentialDsu[S, G]) Merge(a, b int, diff S) MergeResult {
	ra, rb := d.Leader(a), d.Leader(b)
	pa, pb := d.potential(a), d.potential(b)
	if ra == rb {
		if d.g.Sub(pb, pa) == diff {
			return Unchanged
		}
		return Contradiction
	}
	// p(rb) - p(ra) = diff + p(a) - p(b)，其中 p(a)、p(b) 相对各自的根。
	w := d.g.Sub(d.g.Add(diff, pa), pb)
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
		w = d.g.Neg(w)
	}
	d.parent[rb] = ra
	d.pot[rb] = w
	d.size[ra] += d.size[rb]
	d.groups--
	return Merged
}

// Diff 返回 p(b) - p(a)，不在同一集合时 ok 为 false。
func (d *PotentialDsu[S, G]) Diff(a, b int) (diff S, ok bool) {
	if d.Leader(a) != d.Leader(b) {
		return d.g.Zero(), false
	}
	return d.g.Sub(d.potential(b), d.potential(a)), true
}

// Same 判断 a 与 b 是否同组。
func (d *PotentialDsu[S, G]) Same(a, b int) bool { return d.Leader(a) == d.Leader(b) }

// Size 返回 a 所在集合的大小。
func (d *PotentialDsu[S, G]) Size(a int) int { return d.size[d.Leader(a)] }

// CountGroup 返回集合个数。
func (d *PotentialDsu[S, G]) CountGroup() int { return d.groups }

// Groups 返回所有集合，规则同 Dsu.Groups。
func (d *PotentialDsu[S, G]) Groups() [][]int { return groupsOf(d.Len(), d.Leader) }
