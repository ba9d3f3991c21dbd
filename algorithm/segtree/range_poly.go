package segtree

// LinearSum 区间和、下标和与区间长度。下标和只与区间位置有关，不受作用影响。
type LinearSum struct {
	Sum    int64
	SumIdx int64
	Len    int64
}

// Linear 作用：位置 p 上的元素加上 A*p + B。
type Linear struct {
	A int64
	B int64
}

// LinearAddSum 区间加一次函数、区间和。
type LinearAddSum struct{}

func (LinearAddSum) Identity() LinearSum { return LinearSum{} }
func (LinearAddSum) Op(a, b LinearSum) LinearSum {
	return LinearSum{Sum: a.Sum + b.Sum, SumIdx: a.SumIdx + b.SumIdx, Len: a.Len + b.Len}
}
func (LinearAddSum) IdentityMap() Linear { return Linear{} }
func (LinearAddSum) Mapping(f Linear, x LinearSum) LinearSum {
	x.Sum += f.A*x.SumIdx + f.B*x.Len
	return x
}
func (LinearAddSum) Composition(f, g Linear) Linear {
	return Linear{A: f.A + g.A, B: f.B + g.B}
}

// RangeLinearAddRangeSum 支持在区间上叠加一次函数与区间求和。
type RangeLinearAddRangeSum struct {
	t *LazySegTree[LinearSum, Linear, LinearAddSum]
}

// NewRangeLinearAddRangeSum 以 xs 为初始序列构建。
func NewRangeLinearAddRangeSum(xs []int64) *RangeLinearAddRangeSum {
	leaves := make([]LinearSum, len(xs))
	for i, x := range xs {
		leaves[i] = LinearSum{Sum: x, SumIdx: int64(i), Len: 1}
	}
	return &RangeLinearAddRangeSum{t: NewLazyFrom[LinearSum, Linear](LinearAddSum{}, leaves)}
}

// Len 返回序列长度。
func (s *RangeLinearAddRangeSum) Len() int { return s.t.Len() }

// LinearAdd 对 p ∈ [l, r) 的元素加上 a*(p-origin) + b。
func (s *RangeLinearAddRangeSum) LinearAdd(l, r, origin int, a, b int64) {
	o := int64(origin)
	s.t.ApplyRange(l, r, Linear{A: a, B: b - a*o})
}

// Sum 返回 [l, r) 的和。
func (s *RangeLinearAddRangeSum) Sum(l, r int) int64 { return s.t.Prod(l, r).Sum }

// Get 返回第 i 个元素。
func (s *RangeLinearAddRangeSum) Get(i int) int64 { return s.t.Get(i).Sum }

// QuadSum 区间和、下标和、下标平方和与区间长度。
type QuadSum struct {
	Sum     int64
	SumIdx  int64
	SumIdx2 int64
	Len     int64
}

// Quadratic 作用：位置 p 上的元素加上 A*p^2 + B*p + C。
type Quadratic struct {
	A, B, C int64
}

// QuadraticAddSum 区间加二次函数、区间和。
type QuadraticAddSum struct{}

func (QuadraticAddSum) Identity() QuadSum { return QuadSum{} }
func (QuadraticAddSum) Op(a, b QuadSum) QuadSum {
	return QuadSum{
		Sum:     a.Sum + b.Sum,
		SumIdx:  a.SumIdx + b.SumIdx,
		SumIdx2: a.SumIdx2 + b.SumIdx2,
		Len:     a.Len + b.Len,
	}
}
func (QuadraticAddSum) IdentityMap() Quadratic { return Quadratic{} }
func (QuadraticAddSum) Mapping(f Quadratic, x QuadSum) QuadSum {
	x.Sum += f.A*x.SumIdx2 + f.B*x.SumIdx + f.C*x.Len
	return x
}
func (QuadraticAddSum) Composition(f, g Quadratic) Quadratic {
	return Quadratic{A: f.A + g.A, B: f.B + g.B, C: f.C + g.C}
}

// RangeQuadraticAddRangeSum 支持在区间上叠加二次函数与区间求和。
type RangeQuadraticAddRangeSum struct {
	t *LazySegTree[QuadSum, Quadratic, QuadraticAddSum]
}

// NewRangeQuadraticAddRangeSum 以 xs 为初始序列构建。
func NewRangeQuadraticAddRangeSum(xs []int64) *RangeQuadraticAddRangeSum {
	leaves := make([]QuadSum, len(xs))
	for i, x := range xs {
		p := int64(i)
		leaves[i] = QuadSum{Sum: x, SumIdx: p, SumIdx2: p * p, Len: 1}
	}
	return &RangeQuadraticAddRangeSum{t: NewLazyFrom[QuadSum, Quadratic](QuadraticAddSum{}, leaves)}
}

// Len 返回序列长度。
func (s *RangeQuadraticAddRangeSum) Len() int { return s.t.Len() }

// QuadraticAdd 对 p ∈ [l, r) 的元素加上 a*(p-o)^2 + b*(p-o) + c。
// 展开为 a*p^2 + (b-2ao)*p + (ao^2 - bo + c)。
func (s *RangeQuadraticAddRangeSum) QuadraticAdd(l, r, origin int, a, b, c int64) {
	o := int64(origin)
	s.t.ApplyRange(l, r, Quadratic{A: a, B: b - 2*a*o, C: a*o*o - b*o + c})
}

// Sum 返回 [l, r) 的和。
func (s *RangeQuadraticAddRangeSum) Sum(l, r int) int64 { return s.t.Prod(l, r).Sum }

// Get 返回第 i 个元素。
func (s *RangeQuadraticAddRangeSum) Get(i int) int64 { return s.t.Get(i).Sum }
