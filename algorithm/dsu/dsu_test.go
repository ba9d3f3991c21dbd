package dsu

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/algo/algorithm/algebra"
	"github.com/wyfcoding/algo/algorithm/grid"
	"github.com/wyfcoding/algo/xerrors"
)

func TestDsuEquivalence(t *testing.T) {
	d := New(7)
	d.Merge(0, 1)
	d.Merge(2, 3)
	d.Merge(0, 2)
	d.Merge(4, 5)

	if got := d.CountGroup(); got != 3 {
		t.Errorf("CountGroup() = %d, want 3", got)
	}
	if !d.Same(0, 3) {
		t.Errorf("Same(0, 3) = false, want true")
	}
	if d.Same(3, 4) {
		t.Errorf("Same(3, 4) = true, want false")
	}
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {4, 5}, {6}}, d.Groups())
	assert.Equal(t, 4, d.Size(3))

	leader, absorbed, merged := d.Merge(1, 3)
	assert.False(t, merged)
	assert.Equal(t, leader, absorbed)
	assert.Equal(t, d.Leader(0), leader)
}

func TestDsuMergeReportsLeader(t *testing.T) {
	d := New(4)
	d.Merge(0, 1)
	leader, absorbed, merged := d.Merge(2, 0)
	require.True(t, merged)
	assert.Equal(t, d.Leader(0), leader)
	assert.Equal(t, 2, absorbed)
	assert.Equal(t, 3, d.Size(2))
	assert.Panics(t, func() { d.Leader(4) })
}

// naivePartition 以标签数组表示划分，用于随机比对。
type naivePartition []int

func newNaive(n int) naivePartition {
	p := make(naivePartition, n)
	for i := range p {
		p[i] = i
	}
	return p
}

func (p naivePartition) merge(a, b int) {
	from, to := p[b], p[a]
	for i := range p {
		if p[i] == from {
			p[i] = to
		}
	}
}

func (p naivePartition) classes() int {
	seen := make(map[int]bool)
	for _, l := range p {
		seen[l] = true
	}
	return len(seen)
}

func TestDsuRandomLaws(t *testing.T) {
	r := rand.New(rand.NewPCG(21, 22))
	n := 60
	d := New(n)
	e := NewEnumerable(n)
	l := NewLeader(n)
	rb := NewRollback(n)
	naive := newNaive(n)

	for q := 0; q < 200; q++ {
		a, b := r.IntN(n), r.IntN(n)
		d.Merge(a, b)
		e.Merge(a, b)
		l.Merge(a, b)
		rb.Merge(a, b)
		naive.merge(a, b)
		require.True(t, d.Same(a, b))

		x, y := r.IntN(n), r.IntN(n)
		want := naive[x] == naive[y]
		require.Equal(t, want, d.Same(x, y))
		require.Equal(t, want, e.Same(x, y))
		require.Equal(t, want, l.Same(x, y))
		require.Equal(t, want, rb.Same(x, y))
		require.Equal(t, naive.classes(), d.CountGroup())
		require.Equal(t, d.CountGroup(), l.CountGroup())
		require.Equal(t, d.CountGroup(), rb.CountGroup())
	}

	// 自反、对称、传递。
	for a := 0; a < n; a++ {
		require.True(t, d.Same(a, a))
		for b := 0; b < n; b++ {
			require.Equal(t, d.Same(a, b), d.Same(b, a))
		}
	}
	for _, g := range d.Groups() {
		for _, v := range g {
			require.True(t, d.Same(g[0], v))
		}
		members := e.Members(g[0])
		slices.Sort(members)
		require.Equal(t, g, members)
		require.Equal(t, len(g), d.Size(g[len(g)-1]))
	}

	leaders := l.Leaders()
	require.Len(t, leaders, l.CountGroup())
	require.True(t, slices.IsSorted(leaders))
	for _, x := range leaders {
		require.Equal(t, x, l.Leader(x))
	}
	minLeader, ok := l.MinLeader()
	require.True(t, ok)
	require.Equal(t, leaders[0], minLeader)
}

func TestLeaderDsu(t *testing.T) {
	l := NewLeader(6)
	l.Merge(0, 1)
	l.Merge(4, 5)
	from := l.LeadersFrom(2)
	assert.Equal(t, []int{2, 3}, from[:2])
	assert.Len(t, l.Leaders(), 4)

	_, ok := NewLeader(0).MinLeader()
	assert.False(t, ok)
}

func TestKeyedDsu(t *testing.T) {
	_, err := NewKeyed([]string{"a", "b", "a"})
	require.ErrorIs(t, err, xerrors.ErrDuplicateKey)

	d, err := NewKeyed([]string{"tokyo", "osaka", "kyoto", "nara"})
	require.NoError(t, err)
	d.Merge("osaka", "kyoto")
	_, _, merged := d.Merge("kyoto", "nara")
	assert.True(t, merged)
	assert.True(t, d.Same("osaka", "nara"))
	assert.False(t, d.Same("tokyo", "nara"))
	assert.Equal(t, 3, d.Size("kyoto"))
	assert.Equal(t, 2, d.CountGroup())
	assert.Equal(t, [][]string{{"tokyo"}, {"osaka", "kyoto", "nara"}}, d.Groups())
	assert.Equal(t, 2, d.Index("kyoto"))
	assert.Equal(t, "nara", d.Key(3))
	assert.Contains(t, []string{"osaka", "kyoto", "nara"}, d.Leader("nara"))

	assert.PanicsWithError(t, xerrors.KeyNotFound("sapporo").Error(), func() { d.Same("sapporo", "tokyo") })
}

func TestGridDsu(t *testing.T) {
	rows := []string{
		"##.",
		".#.",
		"..#",
	}
	g := NewGrid(3, 3)
	for y := range rows {
		for x := range rows[y] {
			g.MergeNeighbors(grid.Pos{Y: y, X: x}, func(a, b grid.Pos) bool {
				return rows[a.Y][a.X] == '#' && rows[b.Y][b.X] == '#'
			})
		}
	}
	assert.True(t, g.Same(grid.Pos{Y: 0, X: 0}, grid.Pos{Y: 1, X: 1}))
	assert.False(t, g.Same(grid.Pos{Y: 1, X: 1}, grid.Pos{Y: 2, X: 2}))
	assert.Equal(t, 3, g.Size(grid.Pos{Y: 0, X: 1}))
	assert.Equal(t, 7, g.CountGroup())
	assert.Equal(t, grid.Pos{Y: 2, X: 1}, g.Decode(g.Encode(grid.Pos{Y: 2, X: 1})))
	assert.Equal(t, []grid.Pos{{Y: 0, X: 0}, {Y: 0, X: 1}, {Y: 1, X: 1}}, g.Groups()[0])
	assert.Panics(t, func() { g.Encode(grid.Pos{Y: 3, X: 0}) })
}

func TestMonoidDsu(t *testing.T) {
	d := NewMonoid[int64](algebra.Additive[int64]{}, []int64{1, 2, 3, 4})
	d.Merge(0, 1)
	d.Merge(2, 3)
	assert.Equal(t, int64(3), d.Prod(1))
	assert.Equal(t, int64(7), d.Prod(2))
	d.Merge(1, 3)
	assert.Equal(t, int64(10), d.Prod(0))
	d.Apply(2, 5)
	assert.Equal(t, int64(15), d.Prod(3))
	assert.Equal(t, 1, d.CountGroup())
}

func TestPotentialDsu(t *testing.T) {
	d := NewPotential[int64](algebra.AdditiveGroup[int64]{}, 5)
	assert.Equal(t, Merged, d.Merge(0, 1, 3))  // p1 - p0 = 3
	assert.Equal(t, Merged, d.Merge(1, 2, -5)) // p2 - p1 = -5
	assert.Equal(t, Merged, d.Merge(3, 2, 4))  // p2 - p3 = 4

	diff, ok := d.Diff(0, 3)
	require.True(t, ok)
	assert.Equal(t, int64(-6), diff)

	assert.Equal(t, Unchanged, d.Merge(0, 2, -2))
	assert.Equal(t, Contradiction, d.Merge(0, 2, 1))
	assert.Equal(t, "contradiction", Contradiction.String())

	_, ok = d.Diff(0, 4)
	assert.False(t, ok)
	assert.Equal(t, 2, d.CountGroup())
	assert.Equal(t, 4, d.Size(2))

	x := NewPotential[uint64](algebra.XorGroup[uint64]{}, 3)
	x.Merge(0, 1, 5)
	x.Merge(1, 2, 6)
	got, ok := x.Diff(0, 2)
	require.True(t, ok)
	assert.Equal(t, uint64(3), got)
}

func TestPotentialDsuRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(23, 24))
	n := 40
	hidden := make([]int64, n)
	for i := range hidden {
		hidden[i] = r.Int64N(1000)
	}
	d := NewPotential[int64](algebra.AdditiveGroup[int64]{}, n)
	for q := 0; q < 300; q++ {
		a, b := r.IntN(n), r.IntN(n)
		res := d.Merge(a, b, hidden[b]-hidden[a])
		require.NotEqual(t, Contradiction, res)
		x, y := r.IntN(n), r.IntN(n)
		if diff, ok := d.Diff(x, y); ok {
			require.Equal(t, hidden[y]-hidden[x], diff)
		}
	}
}

func TestRollbackDsu(t *testing.T) {
	d := NewRollback(5)
	d.Merge(0, 1)
	s := d.Snapshot()
	d.Merge(2, 3)
	d.Merge(1, 3)
	assert.Equal(t, 4, d.Size(0))
	assert.Equal(t, 2, d.CountGroup())

	d.Rollback(s)
	assert.Equal(t, 4, d.CountGroup())
	assert.False(t, d.Same(0, 2))
	assert.False(t, d.Same(2, 3))
	assert.True(t, d.Same(0, 1))
	assert.Equal(t, 2, d.Size(1))
	assert.Equal(t, [][]int{{0, 1}, {2}, {3}, {4}}, d.Groups())

	d.Rollback(0)
	assert.Equal(t, 5, d.CountGroup())
	assert.Panics(t, func() { d.Rollback(1) })
}
