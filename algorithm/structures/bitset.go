package structures

import (
	"github.com/Workiva/go-datastructures/bitarray"

	"github.com/wyfcoding/algo/xerrors"
)

// Bitset 容量固定为 n 的位集合，元素为 0..n-1。
type Bitset struct {
	bits bitarray.BitArray
	n    int
}

// NewBitset 创建容量为 n、所有位为 0 的位集。
func NewBitset(n int) *Bitset {
	return &Bitset{bits: bitarray.NewBitArray(uint64(n)), n: n}
}

// Len 返回容量。
func (b *Bitset) Len() int { return b.n }

// Set 把第 i 位置 1。
func (b *Bitset) Set(i int) {
	b.check(i)
	_ = b.bits.SetBit(uint64(i))
}

// Clear 把第 i 位置 0。
func (b *Bitset) Clear(i int) {
	b.check(i)
	_ = b.bits.ClearBit(uint64(i))
}

// Test 返回第 i 位是否为 1。
func (b *Bitset) Test(i int) bool {
	b.check(i)
	ok, _ := b.bits.GetBit(uint64(i))
	return ok
}

// Ones 按升序返回所有置位的下标。
func (b *Bitset) Ones() []int {
	nums := b.bits.ToNums()
	out := make([]int, len(nums))
	for i, x := range nums {
		out[i] = int(x)
	}
	return out
}

// Count 返回为 1 的位数。
func (b *Bitset) Count() int { return len(b.bits.ToNums()) }

// Union 返回并集，容量取两者较大值。
func (b *Bitset) Union(o *Bitset) *Bitset {
	return &Bitset{bits: b.bits.Or(o.bits), n: max(b.n, o.n)}
}

// Intersect 返回交集，容量取两者较小值。
func (b *Bitset) Intersect(o *Bitset) *Bitset {
	return &Bitset{bits: b.bits.And(o.bits), n: min(b.n, o.n)}
}

func (b *Bitset) check(i int) {
	if i < 0 || i >= b.n {
		panic(xerrors.IndexOutOfRange(i, b.n))
	}
}
