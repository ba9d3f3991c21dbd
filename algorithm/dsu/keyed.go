package dsu

import (
	"github.com/wyfcoding/algo/xerrors"
)

// KeyedDsu 以可比较的键为元素的并查集，内部通过键与 0..n-1 的双射委托给 Dsu。
type KeyedDsu[K comparable] struct {
	dsu   *Dsu
	keys  []K
	index map[K]int
}

// NewKeyed 以 keys 为元素创建并查集，键重复时返回 ErrDuplicateKey。
func NewKeyed[K comparable](keys []K) (*KeyedDsu[K], error) {
	index := make(map[K]int, len(keys))
	for i, k := range keys {
		if _, ok := index[k]; ok {
			return nil, xerrors.Derive(xerrors.ErrDuplicateKey, "key %v at positions %d and %d", k, index[k], i)
		}
		index[k] = i
	}
	return &KeyedDsu[K]{
		dsu:   New(len(keys)),
		keys:  append([]K(nil), keys...),
		index: index,
	}, nil
}

// Len 返回键的个数。
func (d *KeyedDsu[K]) Len() int { return len(d.keys) }

// Index 返回键对应的下标，未注册的键 panic。
func (d *KeyedDsu[K]) Index(k K) int {
	i, ok := d.index[k]
	if !ok {
		panic(xerrors.KeyNotFound(k))
	}
	return i
}

// Key 返回下标对应的键。
func (d *KeyedDsu[K]) Key(i int) K {
	d.dsu.check(i)
	return d.keys[i]
}

// Merge 合并两个键所在的集合。
func (d *KeyedDsu[K]) Merge(a, b K) (leader, absorbed K, merged bool) {
	l, r, ok := d.dsu.Merge(d.Index(a), d.Index(b))
	return d.keys[l], d.keys[r], ok
}

// Same 判断两个键是否同组。
func (d *KeyedDsu[K]) Same(a, b K) bool { return d.dsu.Same(d.Index(a), d.Index(b)) }

// Leader 返回键所在集合的代表键。
func (d *KeyedDsu[K]) Leader(a K) K { return d.keys[d.dsu.Leader(d.Index(a))] }

// Size 返回键所在集合的大小。
func (d *KeyedDsu[K]) Size(a K) int { return d.dsu.Size(d.Index(a)) }

// CountGroup 返回集合个数。
func (d *KeyedDsu[K]) CountGroup() int { return d.dsu.CountGroup() }

// Groups 返回所有集合，顺序与键在构造时的顺序一致。
func (d *KeyedDsu[K]) Groups() [][]K {
	idx := d.dsu.Groups()
	out := make([][]K, len(idx))
	for i, g := range idx {
		out[i] = make([]K, len(g))
		for j, v := range g {
			out[i][j] = d.keys[v]
		}
	}
	return out
}
