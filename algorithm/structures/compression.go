package structures

import (
	"cmp"
	"slices"

	"github.com/wyfcoding/algo/xerrors"
)

// CoordinateCompression 把一组值按升序映射到 0..k-1，k 为不同值的个数。
type CoordinateCompression[T cmp.Ordered] struct {
	space []T // 升序且去重
}

// NewCoordinateCompression 对 xs 去重排序后建立压缩表。
func NewCoordinateCompression[T cmp.Ordered](xs []T) *CoordinateCompression[T] {
	space := slices.Clone(xs)
	slices.Sort(space)
	return &CoordinateCompression[T]{space: slices.Compact(space)}
}

// Len 返回不同值的个数。
func (c *CoordinateCompression[T]) Len() int { return len(c.space) }

// Compress 返回 x 的编号，x 不在值域中时 panic。
func (c *CoordinateCompression[T]) Compress(x T) int {
	i, ok := c.TryCompress(x)
	if !ok {
		panic(xerrors.KeyNotFound(x))
	}
	return i
}

// TryCompress 返回 x 的编号，x 不在表中时 ok 为 false。
func (c *CoordinateCompression[T]) TryCompress(x T) (int, bool) {
	return slices.BinarySearch(c.space, x)
}

// CompressFloor 返回值不超过 x 的最大编号，不存在时返回 -1。
func (c *CoordinateCompression[T]) CompressFloor(x T) int {
	i, ok := slices.BinarySearch(c.space, x)
	if ok {
		return i
	}
	return i - 1
}

// CompressCeil 返回值不小于 x 的最小编号，不存在时返回 Len()。
func (c *CoordinateCompression[T]) CompressCeil(x T) int {
	i, _ := slices.BinarySearch(c.space, x)
	return i
}

// CompressSlice 逐个压缩 xs，遇到不在表中的值会 panic。
func (c *CoordinateCompression[T]) CompressSlice(xs []T) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = c.Compress(x)
	}
	return out
}

// Decompress 返回编号 i 对应的原值。
func (c *CoordinateCompression[T]) Decompress(i int) T {
	if i < 0 || i >= len(c.space) {
		panic(xerrors.IndexOutOfRange(i, len(c.space)))
	}
	return c.space[i]
}
