package graph

import (
	"math/bits"

	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/wyfcoding/algo/xerrors"
)

// TreeLCA 实现了基于倍增（Binary Lifting）算法的最近公共祖先查询。
// 预处理复杂度 O(N log N)，单次查询复杂度 O(log N)。
type TreeLCA struct {
	up    []int // up[v*logN+i] 为 v 的第 2^i 个祖先，不存在时为 -1
	depth []int
	logN  int
}

// NewTreeLCA 以 root 为根构建 LCA 查询实例。g 的边按无向边理解，
// 从 root 出发必须能到达所有顶点，否则返回 ErrNotATree。
func NewTreeLCA(g *Graph, root int) (*TreeLCA, error) {
	g.check(root)
	n := g.Len()

	// 计算最大跳数的对数.
	logN := max(1, bits.Len(uint(n)))

	lca := &TreeLCA{
		up:    make([]int, n*logN),
		depth: make([]int, n),
		logN:  logN,
	}
	for i := range lca.up {
		lca.up[i] = -1
	}
	for i := range lca.depth {
		lca.depth[i] = -1
	}

	if reached := lca.bfs(root, g); reached != n {
		return nil, xerrors.Derive(xerrors.ErrNotATree, "only %d of %d vertices reachable from %d", reached, n, root)
	}

	// 构建倍增表核心逻辑.
	for i := 1; i < logN; i++ {
		for v := range n {
			mid := lca.up[v*logN+i-1]
			if mid != -1 {
				lca.up[v*logN+i] = lca.up[mid*logN+i-1]
			}
		}
	}

	return lca, nil
}

func (lca *TreeLCA) bfs(root int, g *Graph) int {
	reached := 0
	lca.depth[root] = 0
	queue := arrayqueue.New()
	queue.Enqueue(root)
	for !queue.Empty() {
		x, _ := queue.Dequeue()
		v := x.(int)
		reached++
		for _, u := range g.adj[v] {
			if lca.depth[u] >= 0 {
				continue
			}
			lca.depth[u] = lca.depth[v] + 1
			lca.up[u*lca.logN] = v
			queue.Enqueue(u)
		}
	}
	return reached
}

// Depth 返回 v 到根的边数。
func (lca *TreeLCA) Depth(v int) int {
	lca.check(v)
	return lca.depth[v]
}

// LCA 查询两个节点的最近公共祖先。
func (lca *TreeLCA) LCA(u, v int) int {
	lca.check(u)
	lca.check(v)
	if lca.depth[u] < lca.depth[v] {
		u, v = v, u
	}

	// 1. 将 u 提升到与 v 同一深度。
	diff := lca.depth[u] - lca.depth[v]
	for i := range lca.logN {
		if diff>>i&1 == 1 {
			u = lca.up[u*lca.logN+i]
		}
	}

	if u == v {
		return u
	}

	// 2. 同时提升 u 和 v，直到它们的父节点相同。
	for i := lca.logN - 1; i >= 0; i-- {
		idxU := u*lca.logN + i
		idxV := v*lca.logN + i
		if lca.up[idxU] != lca.up[idxV] {
			u = lca.up[idxU]
			v = lca.up[idxV]
		}
	}

	return lca.up[u*lca.logN]
}

// Distance 计算两个节点之间的距离（边数）。
func (lca *TreeLCA) Distance(u, v int) int {
	w := lca.LCA(u, v)
	return lca.depth[u] + lca.depth[v] - 2*lca.depth[w]
}

// IsOnPath 判断 a 是否在 u 到 v 的简单路径上。
func (lca *TreeLCA) IsOnPath(u, v, a int) bool {
	return lca.Distance(u, a)+lca.Distance(a, v) == lca.Distance(u, v)
}

func (lca *TreeLCA) check(v int) {
	if v < 0 || v >= len(lca.depth) {
		panic(xerrors.IndexOutOfRange(v, len(lca.depth)))
	}
}
