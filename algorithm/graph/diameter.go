package graph

import (
	"log/slog"
	"slices"
	"time"

	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/wyfcoding/algo/xerrors"
)

// Edge 带权出边。
type Edge struct {
	To     int
	Weight int64
}

// WeightedGraph 带 int64 边权的邻接表。
type WeightedGraph struct {
	adj  [][]Edge
	arcs int
}

// NewWeightedGraph 创建 n 个顶点、没有边的带权图。
func NewWeightedGraph(n int) *WeightedGraph {
	return &WeightedGraph{adj: make([][]Edge, n)}
}

// Len 返回顶点数。
func (g *WeightedGraph) Len() int { return len(g.adj) }

// AddEdge 添加一条 u -> v 的有向边。
func (g *WeightedGraph) AddEdge(u, v int, w int64) {
	g.check(u)
	g.check(v)
	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: w})
	g.arcs++
}

// AddUndirectedEdge 添加一条无向边，存为两条方向相反的弧。
func (g *WeightedGraph) AddUndirectedEdge(u, v int, w int64) {
	g.AddEdge(u, v, w)
	g.AddEdge(v, u, w)
}

// Neighbors 返回 v 的出边，调用方不得修改。
func (g *WeightedGraph) Neighbors(v int) []Edge {
	g.check(v)
	return g.adj[v]
}

func (g *WeightedGraph) check(v int) {
	if v < 0 || v >= len(g.adj) {
		panic(xerrors.IndexOutOfRange(v, len(g.adj)))
	}
}

// TreeDiameter 用两次 BFS 求带权树的直径，返回长度与端点 u..v 的路径。
// 第一次从顶点 0 出发找到最远点 u，第二次从 u 出发找到最远点 v。距离相同时取编号最小的顶点。
//
// 图必须是以无向边给出的树：存在负权边返回 ErrNegativeWeight，
// 弧数不等于 2(n-1)、存在自环、某条弧 u -> v 缺少同权的 v -> u，或不连通时返回 ErrNotATree。
func TreeDiameter(g *WeightedGraph) (int64, []int, error) {
	n := g.Len()
	switch n {
	case 0:
		return 0, nil, nil
	case 1:
		return 0, []int{0}, nil
	}

	for u := range g.adj {
		for _, e := range g.adj[u] {
			if e.Weight < 0 {
				return 0, nil, xerrors.Derive(xerrors.ErrNegativeWeight, "edge %d -> %d has weight %d", u, e.To, e.Weight)
			}
		}
	}
	if g.arcs != 2*(n-1) {
		return 0, nil, xerrors.Derive(xerrors.ErrNotATree, "%d arcs on %d vertices", g.arcs, n)
	}
	if err := g.checkSymmetric(); err != nil {
		return 0, nil, err
	}

	start := time.Now()
	dist, _, reached := g.bfs(0)
	if reached != n {
		return 0, nil, xerrors.Derive(xerrors.ErrNotATree, "only %d of %d vertices reachable from 0", reached, n)
	}
	u := farthest(dist)
	dist, parent, _ := g.bfs(u)
	v := farthest(dist)

	path := []int{v}
	for x := v; x != u; {
		x = parent[x]
		path = append(path, x)
	}
	slices.Reverse(path)

	slog.Debug("tree diameter computed", "n", n, "length", dist[v], "duration", time.Since(start))
	return dist[v], path, nil
}

// checkSymmetric 要求每条弧 u -> v 都有一条同权的 v -> u 与之配对，且没有自环。
func (g *WeightedGraph) checkSymmetric() error {
	balance := make(map[[3]int64]int)
	for u := range g.adj {
		for _, e := range g.adj[u] {
			v := e.To
			if u == v {
				return xerrors.Derive(xerrors.ErrNotATree, "self loop on %d", u)
			}
			key := [3]int64{int64(min(u, v)), int64(max(u, v)), e.Weight}
			if u < v {
				balance[key]++
			} else {
				balance[key]--
			}
		}
	}
	for key, c := range balance {
		if c != 0 {
			return xerrors.Derive(xerrors.ErrNotATree, "arcs between %d and %d (weight %d) are not paired", key[0], key[1], key[2])
		}
	}
	return nil
}

// bfs 在树上从 s 出发求距离与父节点，未到达的顶点距离为 -1。
func (g *WeightedGraph) bfs(s int) (dist []int64, parent []int, reached int) {
	n := g.Len()
	dist = make([]int64, n)
	parent = make([]int, n)
	for i := range dist {
		dist[i] = -1
		parent[i] = -1
	}
	dist[s] = 0

	queue := arrayqueue.New()
	queue.Enqueue(s)
	for !queue.Empty() {
		x, _ := queue.Dequeue()
		u := x.(int)
		reached++
		for _, e := range g.adj[u] {
			if dist[e.To] >= 0 {
				continue
			}
			dist[e.To] = dist[u] + e.Weight
			parent[e.To] = u
			queue.Enqueue(e.To)
		}
	}
	return dist, parent, reached
}

func farthest(dist []int64) int {
	best := 0
	for v, d := range dist {
		if d > dist[best] {
			best = v
		}
	}
	return best
}
