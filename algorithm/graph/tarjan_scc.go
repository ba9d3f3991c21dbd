// Package graph 提供有向图与带权树上的基础算法。
//
// 包含的算法.
// - Tarjan 强连通分量：单次深度优先搜索，用 indices 与 lowlink 两个数组识别所有分量，
//   结果按拓扑序排列。这里用显式栈代替递归，避免长链图把调用栈撑爆。
// - Kahn 拓扑排序：反复取出入度为零的顶点，取不完说明图中有环。
// - 树的直径：两次 BFS，第一次找最远点，第二次从它出发求出直径与路径。
// - 最近公共祖先：基于倍增表，预处理后每次询问 O(log V)。
//
// 复杂度分析.
// - SCC、拓扑排序与直径: 时间 O(V + E)，空间 O(V)。
// - LCA: 预处理 O(V log V)，询问 O(log V)。
package graph

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/wyfcoding/algo/xerrors"
)

// Graph 定义了一个基于邻接表的有向图，顶点为 0..n-1。
type Graph struct {
	adj   [][]int // 邻接表
	nodes int     // 顶点总数
}

// NewGraph 创建一个新的有向图实例.
func NewGraph(nodes int) *Graph {
	return &Graph{
		nodes: nodes,
		adj:   make([][]int, nodes),
	}
}

// AddEdge 向图中添加一条从 u 到 v 的有向边，允许重边与自环。
func (g *Graph) AddEdge(u, v int) {
	g.check(u)
	g.check(v)
	g.adj[u] = append(g.adj[u], v)
}

// Len 返回顶点数。
func (g *Graph) Len() int { return g.nodes }

// Neighbors 返回 v 的出边终点，调用方不应修改返回的切片。
func (g *Graph) Neighbors(v int) []int {
	g.check(v)
	return g.adj[v]
}

func (g *Graph) check(v int) {
	if v < 0 || v >= g.nodes {
		panic(xerrors.IndexOutOfRange(v, g.nodes))
	}
}

// TarjanSCC 封装了计算强连通分量的状态。
type TarjanSCC struct {
	graph   *Graph
	stack   []int   // 当前尚未归入分量的顶点。
	indices []int   // 节点的发现次序。
	lowlink []int   // 节点通过回边能到达的最小次序。
	sccs    [][]int // 最终识别出的强连通分量列表。
	onStack []bool  // 快速判断节点是否在栈中。
	index   int     // 当前 DFS 遍历的次序计数。
}

// NewTarjanSCC 初始化 Tarjan 算法执行器。
func NewTarjanSCC(g *Graph) *TarjanSCC {
	return &TarjanSCC{
		graph:   g,
		indices: make([]int, g.nodes),
		lowlink: make([]int, g.nodes),
		onStack: make([]bool, g.nodes),
		index:   -1,
	}
}

// Run 执行算法并返回所有的强连通分量，按逆拓扑序排列（汇点所在分量在前）。
func (t *TarjanSCC) Run() [][]int {
	for i := range t.indices {
		t.indices[i] = -1
	}

	for i := range t.graph.nodes {
		if t.indices[i] == -1 {
			t.strongConnect(i)
		}
	}
	return t.sccs
}

// frame DFS 中的一层：顶点与下一条待检查的出边。
type frame struct {
	v, next int
}

func (t *TarjanSCC) visit(v int) {
	t.index++
	t.indices[v] = t.index
	t.lowlink[v] = t.index
	t.stack = append(t.stack, v)
	t.onStack[v] = true
}

// strongConnect 从 root 出发做非递归 DFS。
func (t *TarjanSCC) strongConnect(root int) {
	frames := arraystack.New()
	t.visit(root)
	frames.Push(&frame{v: root})

	for !frames.Empty() {
		top, _ := frames.Peek()
		f := top.(*frame)

		if f.next < len(t.graph.adj[f.v]) {
			w := t.graph.adj[f.v][f.next]
			f.next++
			if t.indices[w] == -1 {
				// 邻居未被访问，压入新的一层。
				t.visit(w)
				frames.Push(&frame{v: w})
			} else if t.onStack[w] {
				// 邻居在栈中，说明构成环。
				t.lowlink[f.v] = min(t.lowlink[f.v], t.indices[w])
			}
			continue
		}

		frames.Pop()
		if parent, ok := frames.Peek(); ok {
			p := parent.(*frame)
			t.lowlink[p.v] = min(t.lowlink[p.v], t.lowlink[f.v])
		}

		// 如果 lowlink 等于发现次序，说明 f.v 是一个强连通分量的根节点。
		if t.lowlink[f.v] == t.indices[f.v] {
			var scc []int
			for {
				w := t.stack[len(t.stack)-1]
				t.stack = t.stack[:len(t.stack)-1]
				t.onStack[w] = false
				scc = append(scc, w)
				if w == f.v {
					break
				}
			}
			t.sccs = append(t.sccs, scc)
		}
	}
}
