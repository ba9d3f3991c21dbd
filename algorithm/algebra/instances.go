package algebra

import (
	"cmp"

	"github.com/shopspring/decimal"
)

// Integer 有符号与无符号整数。
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number 整数与浮点数。
type Number interface {
	Integer | ~float32 | ~float64
}

// Additive 加法幺半群。
type Additive[T Number] struct{}

func (Additive[T]) Identity() T { return 0 }
func (Additive[T]) Op(a, b T) T { return a + b }

// Multiplicative 乘法幺半群。
type Multiplicative[T Number] struct{}

func (Multiplicative[T]) Identity() T { return 1 }
func (Multiplicative[T]) Op(a, b T) T { return a * b }

// BitXor 异或幺半群。
type BitXor[T Integer] struct{}

func (BitXor[T]) Identity() T { return 0 }
func (BitXor[T]) Op(a, b T) T { return a ^ b }

// BitOr 按位或幺半群。
type BitOr[T Integer] struct{}

func (BitOr[T]) Identity() T { return 0 }
func (BitOr[T]) Op(a, b T) T { return a | b }

// BitAnd 按位与幺半群，单位元为全 1。
type BitAnd[T Integer] struct{}

func (BitAnd[T]) Identity() T { return ^T(0) }
func (BitAnd[T]) Op(a, b T) T { return a & b }

// Min 取小幺半群，单位元由 E 给出，通常取类型的最大值。
type Min[T cmp.Ordered] struct{ E T }

func (m Min[T]) Identity() T { return m.E }
func (Min[T]) Op(a, b T) T   { return min(a, b) }

// Max 取大幺半群，单位元由 E 给出，通常取类型的最小值。
type Max[T cmp.Ordered] struct{ E T }

func (m Max[T]) Identity() T { return m.E }
func (Max[T]) Op(a, b T) T   { return max(a, b) }

// AdditiveGroup 加法可换群。
type AdditiveGroup[T Number] struct{}

func (AdditiveGroup[T]) Zero() T      { return 0 }
func (AdditiveGroup[T]) Add(a, b T) T { return a + b }
func (AdditiveGroup[T]) Neg(a T) T    { return -a }
func (AdditiveGroup[T]) Sub(a, b T) T { return a - b }

// XorGroup 异或可换群，每个元素都是自身的逆元。
type XorGroup[T Integer] struct{}

func (XorGroup[T]) Zero() T      { return 0 }
func (XorGroup[T]) Add(a, b T) T { return a ^ b }
func (XorGroup[T]) Neg(a T) T    { return a }
func (XorGroup[T]) Sub(a, b T) T { return a ^ b }

// DecimalAdditive 十进制定点数的加法可换群，金额类前缀和不会丢失精度。
type DecimalAdditive struct{}

func (DecimalAdditive) Zero() decimal.Decimal                    { return decimal.Zero }
func (DecimalAdditive) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }
func (DecimalAdditive) Neg(a decimal.Decimal) decimal.Decimal    { return a.Neg() }
func (DecimalAdditive) Sub(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }
