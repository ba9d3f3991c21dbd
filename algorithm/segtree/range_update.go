package segtree

import (
	"github.com/wyfcoding/algo/algorithm/algebra"
)

// Update 赋值作用：Ok 为 false 时是恒等作用，否则把区间内所有元素替换为 Val。
// 复合时较新的赋值覆盖较旧的赋值。
type Update[T any] struct {
	Val T
	Ok  bool
}

// Assign 构造一个赋值作用。
func Assign[T any](v T) Update[T] { return Update[T]{Val: v, Ok: true} }

func composeUpdate[T any](f, g Update[T]) Update[T] {
	if f.Ok {
		return f
	}
	return g
}

// UpdateSum 区间赋值、区间和。
type UpdateSum struct{}

func (UpdateSum) Identity() SumLen { return SumLen{} }
func (UpdateSum) Op(a, b SumLen) SumLen {
	return SumLen{Sum: a.Sum + b.Sum, Len: a.Len + b.Len}
}
func (UpdateSum) IdentityMap() Update[int64] { return Update[int64]{} }
func (UpdateSum) Mapping(f Update[int64], x SumLen) SumLen {
	if !f.Ok {
		return x
	}
	return SumLen{Sum: f.Val * x.Len, Len: x.Len}
}
func (UpdateSum) Composition(f, g Update[int64]) Update[int64] { return composeUpdate(f, g) }

// RangeUpdateRangeSum 支持区间赋值与区间求和。
type RangeUpdateRangeSum struct {
	t *LazySegTree[SumLen, Update[int64], UpdateSum]
}

// NewRangeUpdateRangeSum 以 xs 为初始序列构建。
func NewRangeUpdateRangeSum(xs []int64) *RangeUpdateRangeSum {
	return &RangeUpdateRangeSum{t: NewLazyFrom[SumLen, Update[int64]](UpdateSum{}, sumLeaves(xs))}
}

// Len 返回序列长度。
func (s *RangeUpdateRangeSum) Len() int { return s.t.Len() }

// Update 把 [l, r) 中每个元素赋值为 x。
func (s *RangeUpdateRangeSum) Update(l, r int, x int64) { s.t.ApplyRange(l, r, Assign(x)) }

// Sum 返回 [l, r) 的和。
func (s *RangeUpdateRangeSum) Sum(l, r int) int64 { return s.t.Prod(l, r).Sum }

// Get 返回第 i 个元素。
func (s *RangeUpdateRangeSum) Get(i int) int64 { return s.t.Get(i).Sum }

// Set 把第 i 个元素替换为 x。
func (s *RangeUpdateRangeSum) Set(i int, x int64) { s.t.Set(i, SumLen{Sum: x, Len: 1}) }

// XorLen 区间异或和与区间长度。
type XorLen struct {
	Xor uint64
	Len int64
}

func opXorLen(a, b XorLen) XorLen { return XorLen{Xor: a.Xor ^ b.Xor, Len: a.Len + b.Len} }

func xorLeaves(xs []uint64) []XorLen {
	leaves := make([]XorLen, len(xs))
	for i, x := range xs {
		leaves[i] = XorLen{Xor: x, Len: 1}
	}
	return leaves
}

// UpdateXor 区间赋值、区间异或和。长度为偶数的区间赋值后异或和为 0。
type UpdateXor struct{}

func (UpdateXor) Identity() XorLen            { return XorLen{} }
func (UpdateXor) Op(a, b XorLen) XorLen       { return opXorLen(a, b) }
func (UpdateXor) IdentityMap() Update[uint64] { return Update[uint64]{} }
func (UpdateXor) Mapping(f Update[uint64], x XorLen) XorLen {
	if !f.Ok {
		return x
	}
	if x.Len%2 == 1 {
		return XorLen{Xor: f.Val, Len: x.Len}
	}
	return XorLen{Len: x.Len}
}
func (UpdateXor) Composition(f, g Update[uint64]) Update[uint64] { return composeUpdate(f, g) }

// RangeUpdateRangeXor 支持区间赋值与区间异或和。
type RangeUpdateRangeXor struct {
	t *LazySegTree[XorLen, Update[uint64], UpdateXor]
}

// NewRangeUpdateRangeXor 以 xs 为初始序列构建。
func NewRangeUpdateRangeXor(xs []uint64) *RangeUpdateRangeXor {
	return &RangeUpdateRangeXor{t: NewLazyFrom[XorLen, Update[uint64]](UpdateXor{}, xorLeaves(xs))}
}

// Len 返回序列长度。
func (s *RangeUpdateRangeXor) Len() int { return s.t.Len() }

// Update 把 [l, r) 中每个元素赋值为 x。
func (s *RangeUpdateRangeXor) Update(l, r int, x uint64) { s.t.ApplyRange(l, r, Assign(x)) }

// Xor 返回 [l, r) 的异或和。
func (s *RangeUpdateRangeXor) Xor(l, r int) uint64 { return s.t.Prod(l, r).Xor }

// Get 返回第 i 个元素。
func (s *RangeUpdateRangeXor) Get(i int) uint64 { return s.t.Get(i).Xor }

// XorXor 区间异或、区间异或和。
type XorXor struct{}

func (XorXor) Identity() XorLen      { return XorLen{} }
func (XorXor) Op(a, b XorLen) XorLen { return opXorLen(a, b) }
func (XorXor) IdentityMap() uint64   { return 0 }
func (XorXor) Mapping(f uint64, x XorLen) XorLen {
	if x.Len%2 == 1 {
		return XorLen{Xor: x.Xor ^ f, Len: x.Len}
	}
	return x
}
func (XorXor) Composition(f, g uint64) uint64 { return f ^ g }

// RangeXorRangeXor 支持区间异或与区间异或和。
type RangeXorRangeXor struct {
	t *LazySegTree[XorLen, uint64, XorXor]
}

// NewRangeXorRangeXor 以 xs 为初始序列构建。
func NewRangeXorRangeXor(xs []uint64) *RangeXorRangeXor {
	return &RangeXorRangeXor{t: NewLazyFrom[XorLen, uint64](XorXor{}, xorLeaves(xs))}
}

// Len 返回序列长度。
func (s *RangeXorRangeXor) Len() int { return s.t.Len() }

// Xor 把 [l, r) 中每个元素异或上 x。
func (s *RangeXorRangeXor) Xor(l, r int, x uint64) { s.t.ApplyRange(l, r, x) }

// XorSum 返回 [l, r) 的异或和。
func (s *RangeXorRangeXor) XorSum(l, r int) uint64 { return s.t.Prod(l, r).Xor }

// Get 返回第 i 个元素。
func (s *RangeXorRangeXor) Get(i int) uint64 { return s.t.Get(i).Xor }

// ProdLen 区间积与区间长度。
type ProdLen struct {
	Prod int64
	Len  int64
}

// MultProd 区间乘、区间积：区间每个元素乘 x 后积变为 Prod * x^Len。
type MultProd struct{}

func (MultProd) Identity() ProdLen { return ProdLen{Prod: 1} }
func (MultProd) Op(a, b ProdLen) ProdLen {
	return ProdLen{Prod: a.Prod * b.Prod, Len: a.Len + b.Len}
}
func (MultProd) IdentityMap() int64 { return 1 }
func (MultProd) Mapping(f int64, x ProdLen) ProdLen {
	return ProdLen{Prod: x.Prod * algebra.Pow(algebra.Multiplicative[int64]{}, f, uint64(x.Len)), Len: x.Len}
}
func (MultProd) Composition(f, g int64) int64 { return f * g }

// RangeMultRangeProd 支持区间乘与区间积。
type RangeMultRangeProd struct {
	t *LazySegTree[ProdLen, int64, MultProd]
}

// NewRangeMultRangeProd 以 xs 为初始序列构建。
func NewRangeMultRangeProd(xs []int64) *RangeMultRangeProd {
	leaves := make([]ProdLen, len(xs))
	for i, x := range xs {
		leaves[i] = ProdLen{Prod: x, Len: 1}
	}
	return &RangeMultRangeProd{t: NewLazyFrom[ProdLen, int64](MultProd{}, leaves)}
}

// Len 返回序列长度。
func (s *RangeMultRangeProd) Len() int { return s.t.Len() }

// Mult 把 [l, r) 中每个元素乘以 x。
func (s *RangeMultRangeProd) Mult(l, r int, x int64) { s.t.ApplyRange(l, r, x) }

// Prod 返回 [l, r) 的积，空区间返回 1。
func (s *RangeMultRangeProd) Prod(l, r int) int64 { return s.t.Prod(l, r).Prod }

// Get 返回第 i 个元素。
func (s *RangeMultRangeProd) Get(i int) int64 { return s.t.Get(i).Prod }
