package verify

import (
	"context"
	"math/rand/v2"
	"slices"

	"github.com/wyfcoding/algo/algorithm/algebra"
	"github.com/wyfcoding/algo/algorithm/dsu"
	"github.com/wyfcoding/algo/algorithm/graph"
	"github.com/wyfcoding/algo/algorithm/segtree"
	"github.com/wyfcoding/algo/algorithm/structures"
	"github.com/wyfcoding/algo/config"
)

func expectEqual[T comparable](what string, got, want T) error {
	if got != want {
		return failf("%s = %v, want %v", what, got, want)
	}
	return nil
}

func expectSlice[T comparable](what string, got, want []T) error {
	if !slices.Equal(got, want) {
		return failf("%s = %v, want %v", what, got, want)
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func lazySumAdd(context.Context, config.CheckConfig) error {
	st := segtree.NewRangeAddRangeSum([]int64{1, 2, 3, 4, 5})
	st.Add(1, 4, 10)
	return firstErr(
		expectSlice("leaves", st.ToSlice(), []int64{1, 12, 13, 14, 5}),
		expectEqual("sum[0,5)", st.Sum(0, 5), 45),
		expectEqual("sum[2,4)", st.Sum(2, 4), 27),
	)
}

func beatsChmin(context.Context, config.CheckConfig) error {
	b := segtree.NewBeatsFrom([]int64{5, 3, 8, 2, 7})
	b.Chmin(0, 5, 6)
	if err := firstErr(
		expectSlice("after chmin", b.ToSlice(), []int64{5, 3, 6, 2, 6}),
		expectEqual("sum after chmin", b.Sum(0, 5), 22),
	); err != nil {
		return err
	}
	b.Chmax(0, 5, 4)
	if err := firstErr(
		expectSlice("after chmax", b.ToSlice(), []int64{5, 4, 6, 4, 6}),
		expectEqual("sum after chmax", b.Sum(0, 5), 25),
	); err != nil {
		return err
	}
	b.Add(1, 4, 1)
	return firstErr(
		expectSlice("after add", b.ToSlice(), []int64{5, 5, 7, 5, 6}),
		expectEqual("sum after add", b.Sum(0, 5), 28),
		b.CheckInvariants(),
	)
}

func affineComposition(context.Context, config.CheckConfig) error {
	st := segtree.NewRangeAffineRangeSum(make([]int64, 4))
	st.Affine(0, 4, 2, 1)
	if err := expectSlice("after affine(2, 1)", st.ToSlice(), []int64{1, 1, 1, 1}); err != nil {
		return err
	}
	st.Affine(1, 3, 3, 2)
	return firstErr(
		expectSlice("after affine(3, 2)", st.ToSlice(), []int64{1, 5, 5, 1}),
		expectEqual("sum[0,4)", st.Sum(0, 4), 12),
	)
}

func maxRightPrefix(context.Context, config.CheckConfig) error {
	st := segtree.NewRangeAddRangeSum([]int64{1, 2, 3, 4, 5})
	return expectEqual("max_right(0, s <= 6)", st.MaxRight(0, func(s int64) bool { return s <= 6 }), 3)
}

func dsuEquivalence(context.Context, config.CheckConfig) error {
	d := dsu.New(7)
	d.Merge(0, 1)
	d.Merge(2, 3)
	d.Merge(0, 2)
	d.Merge(4, 5)
	return firstErr(
		expectEqual("count_group", d.CountGroup(), 3),
		expectEqual("same(0, 3)", d.Same(0, 3), true),
		expectEqual("same(3, 4)", d.Same(3, 4), false),
	)
}

// treeDiameter 在压缩编号后的树上比较两次 BFS 的结果与全源最短路的最大值。
func treeDiameter(context.Context, config.CheckConfig) error {
	type edge struct {
		u, v int
		w    int64
	}
	edges := []edge{{0, 1, 5}, {1, 2, 3}, {1, 4, 2}, {2, 6, 5}, {4, 7, 4}}
	ids := make([]int, 0, 2*len(edges))
	for _, e := range edges {
		ids = append(ids, e.u, e.v)
	}
	cc := structures.NewCoordinateCompression(ids)
	n := cc.Len()

	g := graph.NewWeightedGraph(n)
	for _, e := range edges {
		g.AddUndirectedEdge(cc.Compress(e.u), cc.Compress(e.v), e.w)
	}
	length, path, err := graph.TreeDiameter(g)
	if err != nil {
		return err
	}

	// Floyd-Warshall，-1 表示不可达。
	dist := make([][]int64, n)
	for i := range dist {
		dist[i] = make([]int64, n)
		for j := range dist[i] {
			dist[i][j] = -1
		}
		dist[i][i] = 0
		for _, e := range g.Neighbors(i) {
			dist[i][e.To] = e.Weight
		}
	}
	for k := range n {
		for i := range n {
			for j := range n {
				if dist[i][k] >= 0 && dist[k][j] >= 0 && (dist[i][j] < 0 || dist[i][k]+dist[k][j] < dist[i][j]) {
					dist[i][j] = dist[i][k] + dist[k][j]
				}
			}
		}
	}
	var want int64
	for i := range n {
		want = max(want, slices.Max(dist[i]))
	}

	return firstErr(
		expectEqual("diameter", length, want),
		expectEqual("diameter", length, 14),
		expectEqual("endpoint distance", dist[path[0]][path[len(path)-1]], length),
	)
}

func lazyRandom(ctx context.Context, cfg config.CheckConfig) error {
	r := rand.New(rand.NewPCG(cfg.Seed, 1))
	for round := 0; round < cfg.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := 1 + r.IntN(cfg.MaxLen)
		naive := make([]int64, n)
		for i := range naive {
			naive[i] = r.Int64N(2_000_001) - 1_000_000
		}
		st := segtree.NewRangeAddRangeSum(naive)

		for op := 0; op < cfg.Ops; op++ {
			l := r.IntN(n + 1)
			rr := l + r.IntN(n-l+1)
			if r.IntN(2) == 0 {
				x := r.Int64N(2001) - 1000
				st.Add(l, rr, x)
				for i := l; i < rr; i++ {
					naive[i] += x
				}
				continue
			}
			var want int64
			for i := l; i < rr; i++ {
				want += naive[i]
			}
			if got := st.Sum(l, rr); got != want {
				return failf("round %d op %d: sum[%d,%d) = %d, want %d", round, op, l, rr, got, want)
			}
		}
		if err := expectSlice("leaves", st.ToSlice(), naive); err != nil {
			return err
		}
	}
	return nil
}

func beatsRandom(ctx context.Context, cfg config.CheckConfig) error {
	r := rand.New(rand.NewPCG(cfg.Seed, 2))
	for round := 0; round < cfg.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := 1 + r.IntN(cfg.MaxLen)
		naive := make([]int64, n)
		for i := range naive {
			naive[i] = r.Int64N(201) - 100
		}
		b := segtree.NewBeatsFrom(naive)

		for op := 0; op < cfg.Ops; op++ {
			l := r.IntN(n + 1)
			rr := l + r.IntN(n-l+1)
			x := r.Int64N(201) - 100
			switch r.IntN(4) {
			case 0:
				b.Chmin(l, rr, x)
				for i := l; i < rr; i++ {
					naive[i] = min(naive[i], x)
				}
			case 1:
				b.Chmax(l, rr, x)
				for i := l; i < rr; i++ {
					naive[i] = max(naive[i], x)
				}
			case 2:
				b.Add(l, rr, x)
				for i := l; i < rr; i++ {
					naive[i] += x
				}
			default:
				var want int64
				for i := l; i < rr; i++ {
					want += naive[i]
				}
				if got := b.Sum(l, rr); got != want {
					return failf("round %d op %d: sum[%d,%d) = %d, want %d", round, op, l, rr, got, want)
				}
			}
			if err := b.CheckInvariants(); err != nil {
				return err
			}
		}
		if err := expectSlice("leaves", b.ToSlice(), naive); err != nil {
			return err
		}
	}
	return nil
}

func affineSumLaws(_ context.Context, cfg config.CheckConfig) error {
	r := rand.New(rand.NewPCG(cfg.Seed, 3))
	xs := []segtree.SumLen{{}}
	fs := []segtree.Affine{segtree.AffineIdentity}
	for range 5 {
		xs = append(xs, segtree.SumLen{Sum: r.Int64N(2001) - 1000, Len: 1 + r.Int64N(8)})
		fs = append(fs, segtree.Affine{A: r.Int64N(21) - 10, B: r.Int64N(21) - 10})
	}
	return firstErr(
		MonoidLaws[segtree.SumLen](segtree.AffineSum{}, xs),
		ActionLaws[segtree.SumLen, segtree.Affine](segtree.AffineSum{}, xs, fs),
		MonoidLaws[int64](algebra.Additive[int64]{}, []int64{0, 1, -7, 1 << 40}),
	)
}

func clampLaws(_ context.Context, cfg config.CheckConfig) error {
	r := rand.New(rand.NewPCG(cfg.Seed, 4))
	xs := []segtree.MinMax{segtree.ClampMinMax{}.Identity()}
	fs := []segtree.Clamp{segtree.ClampIdentity}
	for range 4 {
		lo := r.Int64N(2001) - 1000
		hi := lo + r.Int64N(500)
		xs = append(xs, segtree.MinMax{Min: algebra.Fin(lo), Max: algebra.NegFin(hi)})
		x := r.Int64N(2001) - 1000
		fs = append(fs, segtree.ChminOf(x), segtree.ChmaxOf(x), segtree.AddOf(r.Int64N(201)-100))
	}
	return firstErr(
		MonoidLaws[segtree.MinMax](segtree.ClampMinMax{}, xs),
		ActionLaws[segtree.MinMax, segtree.Clamp](segtree.ClampMinMax{}, xs, fs),
	)
}

// chminBeatsAgree 让抽象 LazyBeats 与手写 Beats 执行同一串 chmin，要求两者处处一致。
func chminBeatsAgree(ctx context.Context, cfg config.CheckConfig) error {
	r := rand.New(rand.NewPCG(cfg.Seed, 5))
	for round := 0; round < cfg.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := 1 + r.IntN(cfg.MaxLen)
		xs := make([]int64, n)
		for i := range xs {
			xs[i] = r.Int64N(201) - 100
		}
		abstract := segtree.NewRangeChminRangeSum(xs)
		concrete := segtree.NewBeatsFrom(xs)

		for op := 0; op < cfg.Ops; op++ {
			l := r.IntN(n + 1)
			rr := l + r.IntN(n-l+1)
			x := r.Int64N(201) - 100
			abstract.Chmin(l, rr, x)
			concrete.Chmin(l, rr, x)
			if got, want := abstract.Sum(0, n), concrete.Sum(0, n); got != want {
				return failf("round %d op %d: sum = %d, want %d", round, op, got, want)
			}
			if got, want := abstract.Max(l, rr), concrete.Max(l, rr); got != want {
				return failf("round %d op %d: max[%d,%d) = %d, want %d", round, op, l, rr, got, want)
			}
		}
		if err := expectSlice("leaves", abstract.ToSlice(), concrete.ToSlice()); err != nil {
			return err
		}
	}
	return nil
}

// dualAffineAgree 对偶线段树与懒标记线段树执行同一串区间仿射，逐点比较。
func dualAffineAgree(ctx context.Context, cfg config.CheckConfig) error {
	r := rand.New(rand.NewPCG(cfg.Seed, 6))
	for round := 0; round < cfg.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := 1 + r.IntN(cfg.MaxLen)
		xs := make([]int64, n)
		for i := range xs {
			xs[i] = r.Int64N(21) - 10
		}
		dual := segtree.NewRangeAffinePointGet(xs)
		lazy := segtree.NewRangeAffineRangeSum(xs)

		for op := 0; op < cfg.Ops; op++ {
			l := r.IntN(n + 1)
			rr := l + r.IntN(n-l+1)
			a, b := r.Int64N(5)-2, r.Int64N(11)-5
			dual.Affine(l, rr, a, b)
			lazy.Affine(l, rr, a, b)
			i := r.IntN(n)
			if got, want := dual.Get(i), lazy.Get(i); got != want {
				return failf("round %d op %d: a[%d] = %d, want %d", round, op, i, got, want)
			}
		}
		if err := expectSlice("leaves", dual.ToSlice(), lazy.ToSlice()); err != nil {
			return err
		}
	}
	return nil
}
