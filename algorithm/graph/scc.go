package graph

import (
	"log/slog"
	"slices"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

// SCCGraph 强连通分量分解的结果。
type SCCGraph struct {
	// Components 按逆拓扑序排列的分量，分量内顶点升序。
	Components [][]int
	// ComponentOf[v] 是顶点 v 所在分量在 Components 中的下标。
	ComponentOf []int
	// DAG 分量之间的缩点图，已去掉重边与自环。
	DAG *Graph
}

// SCC 计算强连通分量并构建缩点图。
func SCC(g *Graph) *SCCGraph {
	start := time.Now()
	comps := NewTarjanSCC(g).Run()
	of := make([]int, g.Len())
	for id, c := range comps {
		slices.Sort(c)
		for _, v := range c {
			of[v] = id
		}
	}

	dag := NewGraph(len(comps))
	seen := mapset.NewThreadUnsafeSet[[2]int]()
	for u := range g.Len() {
		for _, v := range g.adj[u] {
			cu, cv := of[u], of[v]
			if cu == cv {
				continue
			}
			if seen.Add([2]int{cu, cv}) {
				dag.AddEdge(cu, cv)
			}
		}
	}

	slog.Debug("scc decomposition computed", "n", g.Len(), "components", len(comps), "duration", time.Since(start))
	return &SCCGraph{Components: comps, ComponentOf: of, DAG: dag}
}

// Len 返回分量个数。
func (s *SCCGraph) Len() int { return len(s.Components) }

// Topological 按拓扑序返回分量（源点所在分量在前）。
func (s *SCCGraph) Topological() [][]int {
	out := slices.Clone(s.Components)
	slices.Reverse(out)
	return out
}
