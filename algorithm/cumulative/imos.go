package cumulative

import (
	"github.com/wyfcoding/algo/algorithm/algebra"
	"github.com/wyfcoding/algo/xerrors"
)

// Imos1D 定义在整数区间 [begin, end) 上的一维差分数组。
type Imos1D struct {
	raw        []int64
	begin, end int64
}

// NewImos1D 创建覆盖 [begin, end) 的一维差分数组。
func NewImos1D(begin, end int64) *Imos1D {
	if begin > end {
		panic(xerrors.Derive(xerrors.ErrInvalidRange, "imos range [%d, %d)", begin, end))
	}
	return &Imos1D{raw: make([]int64, end-begin), begin: begin, end: end}
}

// Len 返回区间长度 end - begin。
func (m *Imos1D) Len() int { return len(m.raw) }

func (m *Imos1D) index(i int64) int {
	if i < m.begin || i >= m.end {
		panic(xerrors.Derive(xerrors.ErrIndexOutOfRange, "index %d outside [%d, %d)", i, m.begin, m.end))
	}
	return int(i - m.begin)
}

// Add 直接对第 i 个位置的原始值加 v，不经过差分。
func (m *Imos1D) Add(i, v int64) { m.raw[m.index(i)] += v }

// Get 返回第 i 个位置的当前值，Summation 之前是差分值。
func (m *Imos1D) Get(i int64) int64 { return m.raw[m.index(i)] }

// RangeAdd 在差分上登记 [l, r) 加 v：l 处加 v，r < end 时 r 处减 v。
func (m *Imos1D) RangeAdd(l, r, v int64) {
	if l < m.begin || l > r || r > m.end {
		panic(xerrors.Derive(xerrors.ErrInvalidRange, "range [%d, %d) outside [%d, %d)", l, r, m.begin, m.end))
	}
	if l == r {
		return
	}
	m.raw[l-m.begin] += v
	if r < m.end {
		m.raw[r-m.begin] -= v
	}
}

// Summation 原地求前缀和，把差分还原为各点的值。
func (m *Imos1D) Summation() {
	for i := 1; i < len(m.raw); i++ {
		m.raw[i] += m.raw[i-1]
	}
}

// Difference 是 Summation 的逆运算。
func (m *Imos1D) Difference() {
	for i := len(m.raw) - 1; i > 0; i-- {
		m.raw[i] -= m.raw[i-1]
	}
}

// ToSlice 返回内部数组的副本。
func (m *Imos1D) ToSlice() []int64 { return append([]int64(nil), m.raw...) }

// Imos2D 定义在 [yBegin, yEnd) x [xBegin, xEnd) 上的二维差分数组。
type Imos2D struct {
	raw          [][]int64
	yBegin, yEnd int64
	xBegin, xEnd int64
}

// NewImos2D 创建覆盖 [yBegin, yEnd) x [xBegin, xEnd) 的二维差分数组。
func NewImos2D(yBegin, yEnd, xBegin, xEnd int64) *Imos2D {
	if yBegin > yEnd || xBegin > xEnd {
		panic(xerrors.Derive(xerrors.ErrInvalidRange, "imos rect [%d, %d) x [%d, %d)", yBegin, yEnd, xBegin, xEnd))
	}
	raw := make([][]int64, yEnd-yBegin)
	for y := range raw {
		raw[y] = make([]int64, xEnd-xBegin)
	}
	return &Imos2D{raw: raw, yBegin: yBegin, yEnd: yEnd, xBegin: xBegin, xEnd: xEnd}
}

// H 和 W 返回网格的行数与列数。
func (m *Imos2D) H() int { return int(m.yEnd - m.yBegin) }
func (m *Imos2D) W() int { return int(m.xEnd - m.xBegin) }

func (m *Imos2D) index(y, x int64) (int, int) {
	if y < m.yBegin || y >= m.yEnd || x < m.xBegin || x >= m.xEnd {
		panic(xerrors.Derive(xerrors.ErrIndexOutOfRange, "point (%d, %d) outside [%d, %d) x [%d, %d)",
			y, x, m.yBegin, m.yEnd, m.xBegin, m.xEnd))
	}
	return int(y - m.yBegin), int(x - m.xBegin)
}

// Add 直接对 (y, x) 的原始值加 v。
func (m *Imos2D) Add(y, x, v int64) {
	i, j := m.index(y, x)
	m.raw[i][j] += v
}

// Get 返回 (y, x) 的当前值。
func (m *Imos2D) Get(y, x int64) int64 {
	i, j := m.index(y, x)
	return m.raw[i][j]
}

// RectAdd 在差分上登记矩形 [y1, y2) x [x1, x2) 加 v，落在边界外的角省略。
func (m *Imos2D) RectAdd(y1, y2, x1, x2, v int64) {
	if y1 < m.yBegin || y1 > y2 || y2 > m.yEnd || x1 < m.xBegin || x1 > x2 || x2 > m.xEnd {
		panic(xerrors.Derive(xerrors.ErrInvalidRange, "rect [%d, %d) x [%d, %d) outside [%d, %d) x [%d, %d)",
			y1, y2, x1, x2, m.yBegin, m.yEnd, m.xBegin, m.xEnd))
	}
	if y1 == y2 || x1 == x2 {
		return
	}
	m.Add(y1, x1, v)
	if x2 < m.xEnd {
		m.Add(y1, x2, -v)
	}
	if y2 < m.yEnd {
		m.Add(y2, x1, -v)
		if x2 < m.xEnd {
			m.Add(y2, x2, v)
		}
	}
}

// SummationX 沿 x 方向（每一行内）求前缀和。
func (m *Imos2D) SummationX() {
	for _, row := range m.raw {
		for x := 1; x < len(row); x++ {
			row[x] += row[x-1]
		}
	}
}

// SummationY 沿 y 方向（每一列内）求前缀和。
func (m *Imos2D) SummationY() {
	for y := 1; y < len(m.raw); y++ {
		for x := range m.raw[y] {
			m.raw[y][x] += m.raw[y-1][x]
		}
	}
}

// Summation 先横向再纵向求前缀和。
func (m *Imos2D) Summation() {
	m.SummationX()
	m.SummationY()
}

// ToSlice 返回内部二维数组的深拷贝。
func (m *Imos2D) ToSlice() [][]int64 {
	out := make([][]int64, len(m.raw))
	for y, row := range m.raw {
		out[y] = append([]int64(nil), row...)
	}
	return out
}

// RangeAddImos 值域为可换群的区间加差分，下标为 0..n-1。
type RangeAddImos[S any, G algebra.AbGroup[S]] struct {
	g    G
	diff []S // 长度 n+1
}

// NewRangeAddImos 创建长度为 n、元素全为零元的差分数组。
func NewRangeAddImos[S any, G algebra.AbGroup[S]](g G, n int) *RangeAddImos[S, G] {
	diff := make([]S, n+1)
	for i := range diff {
		diff[i] = g.Zero()
	}
	return &RangeAddImos[S, G]{g: g, diff: diff}
}

// Len 返回序列长度。
func (m *RangeAddImos[S, G]) Len() int { return len(m.diff) - 1 }

// RangeAdd 给 [l, r) 内每个元素加 x。
func (m *RangeAddImos[S, G]) RangeAdd(l, r int, x S) {
	checkRange(l, r, m.Len())
	m.diff[l] = m.g.Add(m.diff[l], x)
	m.diff[r] = m.g.Sub(m.diff[r], x)
}

// Add 对第 p 个元素加 x。
func (m *RangeAddImos[S, G]) Add(p int, x S) {
	if p < 0 || p >= m.Len() {
		panic(xerrors.IndexOutOfRange(p, m.Len()))
	}
	m.RangeAdd(p, p+1, x)
}

// ToSlice 返回各点当前的值，不修改内部状态。
func (m *RangeAddImos[S, G]) ToSlice() []S {
	out := make([]S, m.Len())
	acc := m.g.Zero()
	for i := range out {
		acc = m.g.Add(acc, m.diff[i])
		out[i] = acc
	}
	return out
}
