package graph

import (
	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/wyfcoding/algo/xerrors"
)

// TopoSort 用 Kahn 算法求拓扑序。入度为零的顶点按编号从小到大入队。
// 图中有环时返回已排出的部分序列，以及包装 ErrGraphHasCycle 的错误。
func TopoSort(g *Graph) ([]int, error) {
	n := g.Len()
	indeg := make([]int, n)
	for u := range n {
		for _, v := range g.adj[u] {
			indeg[v]++
		}
	}

	queue := arrayqueue.New()
	for v := range n {
		if indeg[v] == 0 {
			queue.Enqueue(v)
		}
	}

	order := make([]int, 0, n)
	for !queue.Empty() {
		x, _ := queue.Dequeue()
		u := x.(int)
		order = append(order, u)
		for _, v := range g.adj[u] {
			indeg[v]--
			if indeg[v] == 0 {
				queue.Enqueue(v)
			}
		}
	}

	if len(order) < n {
		return order, xerrors.Derive(xerrors.ErrGraphHasCycle, "sorted %d of %d vertices", len(order), n)
	}
	return order, nil
}
