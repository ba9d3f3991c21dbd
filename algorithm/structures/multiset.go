package structures

import (
	"cmp"

	"github.com/google/btree"
)

type multisetEntry[T cmp.Ordered] struct {
	val T
	cnt int
}

// Multiset 基于 B 树的有序多重集合，相同的值只占一个节点并记录重复次数。
type Multiset[T cmp.Ordered] struct {
	tree *btree.BTreeG[multisetEntry[T]]
	n    int
}

// NewMultiset 创建空的多重集合。
func NewMultiset[T cmp.Ordered]() *Multiset[T] {
	return &Multiset[T]{
		tree: btree.NewG(32, func(a, b multisetEntry[T]) bool { return a.val < b.val }),
	}
}

// Insert 插入一份 x。
func (s *Multiset[T]) Insert(x T) {
	e, _ := s.tree.Get(multisetEntry[T]{val: x})
	s.tree.ReplaceOrInsert(multisetEntry[T]{val: x, cnt: e.cnt + 1})
	s.n++
}

// Remove 删除一个 x，x 不存在时返回 false。
func (s *Multiset[T]) Remove(x T) bool {
	e, ok := s.tree.Get(multisetEntry[T]{val: x})
	if !ok {
		return false
	}
	if e.cnt == 1 {
		s.tree.Delete(e)
	} else {
		e.cnt--
		s.tree.ReplaceOrInsert(e)
	}
	s.n--
	return true
}

// RemoveAll 删除所有 x，x 不存在时返回 false。
func (s *Multiset[T]) RemoveAll(x T) bool {
	e, ok := s.tree.Delete(multisetEntry[T]{val: x})
	if ok {
		s.n -= e.cnt
	}
	return ok
}

// Count 返回 x 的份数。
func (s *Multiset[T]) Count(x T) int {
	e, _ := s.tree.Get(multisetEntry[T]{val: x})
	return e.cnt
}

// Contains 判断 x 是否至少出现一次。
func (s *Multiset[T]) Contains(x T) bool { return s.Count(x) > 0 }

// Len 返回元素总数（计重复）。
func (s *Multiset[T]) Len() int { return s.n }

// DistinctLen 返回不同值的个数。
func (s *Multiset[T]) DistinctLen() int { return s.tree.Len() }

// Min 返回最小元素，集合为空时 ok 为 false。
func (s *Multiset[T]) Min() (T, bool) {
	e, ok := s.tree.Min()
	return e.val, ok
}

// Max 返回最大元素，集合为空时 ok 为 false。
func (s *Multiset[T]) Max() (T, bool) {
	e, ok := s.tree.Max()
	return e.val, ok
}

// Ceil 返回不小于 x 的最小元素。
func (s *Multiset[T]) Ceil(x T) (v T, ok bool) {
	s.tree.AscendGreaterOrEqual(multisetEntry[T]{val: x}, func(e multisetEntry[T]) bool {
		v, ok = e.val, true
		return false
	})
	return v, ok
}

// Floor 返回不大于 x 的最大元素。
func (s *Multiset[T]) Floor(x T) (v T, ok bool) {
	s.tree.DescendLessOrEqual(multisetEntry[T]{val: x}, func(e multisetEntry[T]) bool {
		v, ok = e.val, true
		return false
	})
	return v, ok
}

// Ascend 按升序遍历每个不同的值及其重复次数，f 返回 false 时停止。
func (s *Multiset[T]) Ascend(f func(x T, count int) bool) {
	s.tree.Ascend(func(e multisetEntry[T]) bool { return f(e.val, e.cnt) })
}
