package dsu

import (
	"github.com/google/btree"

	"github.com/wyfcoding/algo/algorithm/algebra"
)

// EnumerableDsu 为每个代表元维护显式成员列表。
// 合并时把小集合的成员追加到大集合 (启发式合并)，每个元素至多被移动 O(log n) 次。
type EnumerableDsu struct {
	dsu     *Dsu
	members [][]int
}

// NewEnumerable 创建 n 个单元素集合。
func NewEnumerable(n int) *EnumerableDsu {
	members := make([][]int, n)
	for i := range members {
		members[i] = []int{i}
	}
	return &EnumerableDsu{dsu: New(n), members: members}
}

// Len 返回元素个数。
func (d *EnumerableDsu) Len() int { return d.dsu.Len() }

// Merge 合并两个集合，把较小集合的成员表并入较大者。
func (d *EnumerableDsu) Merge(a, b int) (leader, absorbed int, merged bool) {
	leader, absorbed, merged = d.dsu.Merge(a, b)
	if merged {
		d.members[leader] = append(d.members[leader], d.members[absorbed]...)
		d.members[absorbed] = nil
	}
	return leader, absorbed, merged
}

// Members 返回 a 所在集合的所有成员 (无序副本)，O(size)。
func (d *EnumerableDsu) Members(a int) []int {
	return append([]int(nil), d.members[d.dsu.Leader(a)]...)
}

func (d *EnumerableDsu) Same(a, b int) bool { return d.dsu.Same(a, b) }
func (d *EnumerableDsu) Leader(a int) int   { return d.dsu.Leader(a) }
func (d *EnumerableDsu) Size(a int) int     { return d.dsu.Size(a) }
func (d *EnumerableDsu) CountGroup() int    { return d.dsu.CountGroup() }
func (d *EnumerableDsu) Groups() [][]int    { return d.dsu.Groups() }

// LeaderDsu 用 B 树维护当前所有代表元的有序集合。
type LeaderDsu struct {
	dsu     *Dsu
	leaders *btree.BTreeG[int]
}

// NewLeader 创建 n 个单元素集合，所有元素都是代表元。
func NewLeader(n int) *LeaderDsu {
	leaders := btree.NewOrderedG[int](32)
	for i := 0; i < n; i++ {
		leaders.ReplaceOrInsert(i)
	}
	return &LeaderDsu{dsu: New(n), leaders: leaders}
}

// Len 返回元素个数。
func (d *LeaderDsu) Len() int { return d.dsu.Len() }

// Merge 合并两个集合，并从代表元集合中删除被吸收的一方。
func (d *LeaderDsu) Merge(a, b int) (leader, absorbed int, merged bool) {
	leader, absorbed, merged = d.dsu.Merge(a, b)
	if merged {
		d.leaders.Delete(absorbed)
	}
	return leader, absorbed, merged
}

// Leaders 按升序返回所有代表元，O(k)。
func (d *LeaderDsu) Leaders() []int {
	out := make([]int, 0, d.leaders.Len())
	d.leaders.Ascend(func(x int) bool {
		out = append(out, x)
		return true
	})
	return out
}

// MinLeader 返回最小的代表元，集合为空时 ok 为 false。
func (d *LeaderDsu) MinLeader() (leader int, ok bool) {
	return d.leaders.Min()
}

// LeadersFrom 按升序返回所有不小于 x 的代表元。
func (d *LeaderDsu) LeadersFrom(x int) []int {
	var out []int
	d.leaders.AscendGreaterOrEqual(x, func(v int) bool {
		out = append(out, v)
		return true
	})
	return out
}

func (d *LeaderDsu) Same(a, b int) bool { return d.dsu.Same(a, b) }
func (d *LeaderDsu) Leader(a int) int   { return d.dsu.Leader(a) }
func (d *LeaderDsu) Size(a int) int     { return d.dsu.Size(a) }
func (d *LeaderDsu) CountGroup() int    { return d.dsu.CountGroup() }
func (d *LeaderDsu) Groups() [][]int    { return d.dsu.Groups() }

// MonoidDsu 为每个集合维护一个幺半群聚合值，合并时按 (代表元, 被吸收者) 的顺序相乘。
// 非交换幺半群下聚合顺序取决于合并方向，调用方应使用可交换幺半群。
type MonoidDsu[S any, M algebra.Monoid[S]] struct {
	dsu  *Dsu
	m    M
	prod []S
}

// NewMonoid 以 xs 为各元素的初始值创建单元素集合。
func NewMonoid[S any, M algebra.Monoid[S]](m M, xs []S) *MonoidDsu[S, M] {
	return &MonoidDsu[S, M]{dsu: New(len(xs)), m: m, prod: append([]S(nil), xs...)}
}

// Merge 合并两个集合，代表元的聚合值变为 Op(代表元, 被吸收者)。
func (d *MonoidDsu[S, M]) Merge(a, b int) (leader, absorbed int, merged bool) {
	leader, absorbed, merged = d.dsu.Merge(a, b)
	if merged {
		d.prod[leader] = d.m.Op(d.prod[leader], d.prod[absorbed])
	}
	return leader, absorbed, merged
}

// Prod 返回 a 所在集合的聚合值。
func (d *MonoidDsu[S, M]) Prod(a int) S { return d.prod[d.dsu.Leader(a)] }

// Apply 把 x 乘进 a 所在集合的聚合值。
func (d *MonoidDsu[S, M]) Apply(a int, x S) {
	l := d.dsu.Leader(a)
	d.prod[l] = d.m.Op(d.prod[l], x)
}

func (d *MonoidDsu[S, M]) Len() int           { return d.dsu.Len() }
func (d *MonoidDsu[S, M]) Same(a, b int) bool { return d.dsu.Same(a, b) }
func (d *MonoidDsu[S, M]) Leader(a int) int   { return d.dsu.Leader(a) }
func (d *MonoidDsu[S, M]) Size(a int) int     { return d.dsu.Size(a) }
func (d *MonoidDsu[S, M]) CountGroup() int    { return d.dsu.CountGroup() }
func (d *MonoidDsu[S, M]) Groups() [][]int    { return d.dsu.Groups() }
