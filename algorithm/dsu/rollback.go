package dsu

import (
	"github.com/wyfcoding/algo/xerrors"
)

type rollbackEntry struct {
	leader   int
	absorbed int
	size     int // 合并前 leader 的 parentOrSize
}

// RollbackDsu 可撤销的并查集。只按大小合并、不做路径压缩，
// 因此查找为 O(log n)，每次合并只修改两个格子，可以按快照整体撤销。
type RollbackDsu struct {
	parentOrSize []int
	history      []rollbackEntry
	groups       int
}

// NewRollback 创建 n 个单元素集合。
func NewRollback(n int) *RollbackDsu {
	p := make([]int, n)
	for i := range p {
		p[i] = -1
	}
	return &RollbackDsu{parentOrSize: p, groups: n}
}

// Len 返回元素个数。
func (d *RollbackDsu) Len() int { return len(d.parentOrSize) }

// Leader 返回 a 所在集合的代表元，不做路径压缩，O(log n)。
func (d *RollbackDsu) Leader(a int) int {
	if a < 0 || a >= len(d.parentOrSize) {
		panic(xerrors.IndexOutOfRange(a, len(d.parentOrSize)))
	}
	for d.parentOrSize[a] >= 0 {
		a = d.parentOrSize[a]
	}
	return a
}

// Merge 合并 a 与 b 所在集合并记录历史，语义同 Dsu.Merge。
func (d *RollbackDsu) Merge(a, b int) (leader, absorbed int, merged bool) {
	x, y := d.Leader(a), d.Leader(b)
	if x == y {
		return x, y, false
	}
	if -d.parentOrSize[x] < -d.parentOrSize[y] {
		x, y = y, x
	}
	d.history = append(d.history, rollbackEntry{leader: x, absorbed: y, size: d.parentOrSize[x]})
	d.parentOrSize[x] += d.parentOrSize[y]
	d.parentOrSize[y] = x
	d.groups--
	return x, y, true
}

// Snapshot 返回当前状态的快照编号。
func (d *RollbackDsu) Snapshot() int { return len(d.history) }

// Rollback 撤销快照之后的所有合并。快照编号大于当前历史长度时 panic。
func (d *RollbackDsu) Rollback(snapshot int) {
	if snapshot < 0 || snapshot > len(d.history) {
		panic(xerrors.Derive(xerrors.ErrInvalidRange, "snapshot %d, history %d", snapshot, len(d.history)))
	}
	for len(d.history) > snapshot {
		e := d.history[len(d.history)-1]
		d.history = d.history[:len(d.history)-1]
		d.parentOrSize[e.absorbed] = d.parentOrSize[e.leader] - e.size
		d.parentOrSize[e.leader] = e.size
		d.groups++
	}
}

func (d *RollbackDsu) Same(a, b int) bool { return d.Leader(a) == d.Leader(b) }
func (d *RollbackDsu) Size(a int) int     { return -d.parentOrSize[d.Leader(a)] }
func (d *RollbackDsu) CountGroup() int    { return d.groups }
func (d *RollbackDsu) Groups() [][]int    { return groupsOf(d.Len(), d.Leader) }
