// Package dsu 提供并查集 (Disjoint Set Union) 及其变体。
//
// 算法原理.
// 每个集合是一棵以代表元 (leader) 为根的树。合并时把较小的树挂到较大的树下 (按大小合并)，
// 查找时把路径上的节点直接挂到根上 (路径压缩)，两者结合使单次操作的均摊复杂度为 O(α(n))。
//
// 变体.
// - KeyedDsu: 以任意可比较的键代替 0..n-1 下标。
// - GridDsu: 以二维网格坐标为元素。
// - EnumerableDsu: 为每个代表元维护显式成员列表。
// - LeaderDsu: 用有序集合维护当前所有代表元。
// - MonoidDsu: 为每个集合维护幺半群聚合值。
// - PotentialDsu: 带势能差 (带权) 的并查集。
// - RollbackDsu: 不做路径压缩、支持撤销的并查集。
//
// 下标越界属于调用方错误，直接 panic。所有结构都不是并发安全的。
package dsu

import (
	"github.com/wyfcoding/algo/xerrors"
)

// Dsu 按大小合并、路径压缩的并查集。
type Dsu struct {
	// parentOrSize[x] < 0 表示 x 是根，集合大小为 -parentOrSize[x]；否则为父节点下标。
	parentOrSize []int
	groups       int
}

// New 创建 n 个单元素集合。
func New(n int) *Dsu {
	p := make([]int, n)
	for i := range p {
		p[i] = -1
	}
	return &Dsu{parentOrSize: p, groups: n}
}

// Len 返回元素个数。
func (d *Dsu) Len() int { return len(d.parentOrSize) }

// Merge 合并 a 与 b 所在的集合。
// 返回合并后的代表元 leader 与被吸收的原代表元 absorbed；已在同一集合时 merged 为 false。
func (d *Dsu) Merge(a, b int) (leader, absorbed int, merged bool) {
	x, y := d.Leader(a), d.Leader(b)
	if x == y {
		return x, y, false
	}
	if -d.parentOrSize[x] < -d.parentOrSize[y] {
		x, y = y, x
	}
	d.parentOrSize[x] += d.parentOrSize[y]
	d.parentOrSize[y] = x
	d.groups--
	return x, y, true
}

// Same 判断 a 与 b 是否在同一集合。
func (d *Dsu) Same(a, b int) bool {
	return d.Leader(a) == d.Leader(b)
}

// Leader 返回 a 所在集合的代表元，并压缩查找路径。
func (d *Dsu) Leader(a int) int {
	d.check(a)
	root := a
	for d.parentOrSize[root] >= 0 {
		root = d.parentOrSize[root]
	}
	for a != root {
		next := d.parentOrSize[a]
		d.parentOrSize[a] = root
		a = next
	}
	return root
}

// Size 返回 a 所在集合的大小。
func (d *Dsu) Size(a int) int {
	return -d.parentOrSize[d.Leader(a)]
}

// CountGroup 返回集合个数。
func (d *Dsu) CountGroup() int { return d.groups }

// Groups 返回所有集合，每个集合内部升序，集合之间按最小元素升序，O(n)。
func (d *Dsu) Groups() [][]int {
	return groupsOf(d.Len(), d.Leader)
}

func (d *Dsu) check(a int) {
	if a < 0 || a >= len(d.parentOrSize) {
		panic(xerrors.IndexOutOfRange(a, len(d.parentOrSize)))
	}
}

// groupsOf 按 leader 把 0..n-1 分组，分组顺序为各组最小元素的升序。
func groupsOf(n int, leader func(int) int) [][]int {
	slot := make(map[int]int)
	var out [][]int
	for i := 0; i < n; i++ {
		l := leader(i)
		k, ok := slot[l]
		if !ok {
			k = len(out)
			slot[l] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], i)
	}
	return out
}
