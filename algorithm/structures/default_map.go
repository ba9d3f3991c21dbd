package structures

import (
	"maps"
	"slices"
)

// DefaultMap 带默认值工厂的映射。Get 对缺失的键返回默认值但不插入，Entry 会插入。
type DefaultMap[K comparable, V any] struct {
	data       map[K]V
	newDefault func() V
}

// NewDefaultMap 创建以 newDefault 生成缺省值的映射。
func NewDefaultMap[K comparable, V any](newDefault func() V) *DefaultMap[K, V] {
	return &DefaultMap[K, V]{data: make(map[K]V), newDefault: newDefault}
}

// Get 返回 k 对应的值，不存在时返回新的缺省值但不插入。
func (m *DefaultMap[K, V]) Get(k K) V {
	if v, ok := m.data[k]; ok {
		return v
	}
	return m.newDefault()
}

// Entry 返回 k 的值，缺失时先插入默认值。
func (m *DefaultMap[K, V]) Entry(k K) V {
	v, ok := m.data[k]
	if !ok {
		v = m.newDefault()
		m.data[k] = v
	}
	return v
}

// Update 以 f(当前值) 覆盖 k 的值，缺失时以默认值为当前值。
func (m *DefaultMap[K, V]) Update(k K, f func(V) V) {
	m.data[k] = f(m.Get(k))
}

// Set 写入 k 对应的值。
func (m *DefaultMap[K, V]) Set(k K, v V) { m.data[k] = v }

// Delete 删除 k。
func (m *DefaultMap[K, V]) Delete(k K) { delete(m.data, k) }

// Contains 判断 k 是否存在。
func (m *DefaultMap[K, V]) Contains(k K) bool {
	_, ok := m.data[k]
	return ok
}

// Len 返回键的个数。
func (m *DefaultMap[K, V]) Len() int { return len(m.data) }

// Keys 返回所有键，顺序不固定。
func (m *DefaultMap[K, V]) Keys() []K { return slices.Collect(maps.Keys(m.data)) }
