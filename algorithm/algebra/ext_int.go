package algebra

import (
	"strconv"

	"github.com/wyfcoding/algo/xerrors"
)

// ExtInt 是添加了 +∞ 的 int64，零值为 Fin(0)。
// 加法在 +∞ 处饱和；两个有限值相加的溢出不做检查，由调用方保证取值范围。
type ExtInt struct {
	v   int64
	inf bool
}

// Inf 返回 +∞。
func Inf() ExtInt { return ExtInt{inf: true} }

// Fin 返回有限值 x。
func Fin(x int64) ExtInt { return ExtInt{v: x} }

// IsInf 是否为 +∞。
func (a ExtInt) IsInf() bool { return a.inf }

// IsFin 是否为有限值。
func (a ExtInt) IsFin() bool { return !a.inf }

// Value 返回有限值，对 +∞ 调用会 panic。
func (a ExtInt) Value() int64 {
	if a.inf {
		panic(xerrors.Derive(xerrors.ErrValueOutOfDomain, "Value called on +∞"))
	}
	return a.v
}

// ValueOr 有限时返回其值，否则返回 def。
func (a ExtInt) ValueOr(def int64) int64 {
	if a.inf {
		return def
	}
	return a.v
}

// Add 饱和加法。
func (a ExtInt) Add(b ExtInt) ExtInt {
	if a.inf || b.inf {
		return Inf()
	}
	return Fin(a.v + b.v)
}

// AddInt 加上一个有限整数。
func (a ExtInt) AddInt(x int64) ExtInt {
	if a.inf {
		return a
	}
	return Fin(a.v + x)
}

// Times 计算 a 的 t 倍，t 必须非负；t == 0 时结果为 Fin(0)。
func (a ExtInt) Times(t int64) ExtInt {
	switch {
	case t < 0:
		panic(xerrors.Derive(xerrors.ErrValueOutOfDomain, "Times(%d) requires a non-negative multiplier", t))
	case t == 0:
		return Fin(0)
	case a.inf:
		return a
	default:
		return Fin(a.v * t)
	}
}

// Cmp 比较，+∞ 大于任何有限值。
func (a ExtInt) Cmp(b ExtInt) int {
	switch {
	case a.inf && b.inf:
		return 0
	case a.inf:
		return 1
	case b.inf:
		return -1
	case a.v < b.v:
		return -1
	case a.v > b.v:
		return 1
	}
	return 0
}

// Less 返回 a < b。
func (a ExtInt) Less(b ExtInt) bool { return a.Cmp(b) < 0 }

func (a ExtInt) String() string {
	if a.inf {
		return "+∞"
	}
	return strconv.FormatInt(a.v, 10)
}

// MinExt 返回较小者。
func MinExt(a, b ExtInt) ExtInt {
	if b.Less(a) {
		return b
	}
	return a
}

// MaxExt 返回较大者。
func MaxExt(a, b ExtInt) ExtInt {
	if a.Less(b) {
		return b
	}
	return a
}

// NegExtInt 是添加了 -∞ 的 int64，零值为 NegFin(0)。
type NegExtInt struct {
	v      int64
	negInf bool
}

// NegInf 返回 -∞。
func NegInf() NegExtInt { return NegExtInt{negInf: true} }

// NegFin 返回有限值 x。
func NegFin(x int64) NegExtInt { return NegExtInt{v: x} }

// IsNegInf 是否为 -∞。
func (a NegExtInt) IsNegInf() bool { return a.negInf }

// IsFin 是否为有限值。
func (a NegExtInt) IsFin() bool { return !a.negInf }

// Value 返回有限值，对 -∞ 调用会 panic。
func (a NegExtInt) Value() int64 {
	if a.negInf {
		panic(xerrors.Derive(xerrors.ErrValueOutOfDomain, "Value called on -∞"))
	}
	return a.v
}

// ValueOr 有限时返回其值，否则返回 def。
func (a NegExtInt) ValueOr(def int64) int64 {
	if a.negInf {
		return def
	}
	return a.v
}

// Add 饱和加法，任一侧为 -∞ 时结果为 -∞。
func (a NegExtInt) Add(b NegExtInt) NegExtInt {
	if a.negInf || b.negInf {
		return NegInf()
	}
	return NegFin(a.v + b.v)
}

// AddInt 加上一个有限整数。
func (a NegExtInt) AddInt(x int64) NegExtInt {
	if a.negInf {
		return a
	}
	return NegFin(a.v + x)
}

// Times 计算 a 的 t 倍，t 必须非负。
func (a NegExtInt) Times(t int64) NegExtInt {
	switch {
	case t < 0:
		panic(xerrors.Derive(xerrors.ErrValueOutOfDomain, "Times(%d) requires a non-negative multiplier", t))
	case t == 0:
		return NegFin(0)
	case a.negInf:
		return a
	default:
		return NegFin(a.v * t)
	}
}

// Cmp 比较，-∞ 小于任何有限值。
func (a NegExtInt) Cmp(b NegExtInt) int {
	switch {
	case a.negInf && b.negInf:
		return 0
	case a.negInf:
		return -1
	case b.negInf:
		return 1
	case a.v < b.v:
		return -1
	case a.v > b.v:
		return 1
	}
	return 0
}

// Less 返回 a < b。
func (a NegExtInt) Less(b NegExtInt) bool { return a.Cmp(b) < 0 }

func (a NegExtInt) String() string {
	if a.negInf {
		return "-∞"
	}
	return strconv.FormatInt(a.v, 10)
}

// MinNegExt 返回较小者。
func MinNegExt(a, b NegExtInt) NegExtInt {
	if b.Less(a) {
		return b
	}
	return a
}

// MaxNegExt 返回较大者。
func MaxNegExt(a, b NegExtInt) NegExtInt {
	if a.Less(b) {
		return b
	}
	return a
}

// ExtIntMin 以 +∞ 为单位元的取小幺半群。
type ExtIntMin struct{}

func (ExtIntMin) Identity() ExtInt      { return Inf() }
func (ExtIntMin) Op(a, b ExtInt) ExtInt { return MinExt(a, b) }

// ExtIntAdditive 以 0 为单位元的饱和加法幺半群。
type ExtIntAdditive struct{}

func (ExtIntAdditive) Identity() ExtInt      { return Fin(0) }
func (ExtIntAdditive) Op(a, b ExtInt) ExtInt { return a.Add(b) }

// NegExtIntMax 以 -∞ 为单位元的取大幺半群。
type NegExtIntMax struct{}

func (NegExtIntMax) Identity() NegExtInt         { return NegInf() }
func (NegExtIntMax) Op(a, b NegExtInt) NegExtInt { return MaxNegExt(a, b) }

// NegExtIntAdditive 以 0 为单位元的饱和加法幺半群。
type NegExtIntAdditive struct{}

func (NegExtIntAdditive) Identity() NegExtInt         { return NegFin(0) }
func (NegExtIntAdditive) Op(a, b NegExtInt) NegExtInt { return a.Add(b) }
