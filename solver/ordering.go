package solver

import (
	"sort"

	"github.com/katalvlaran/latfield/linsys"
)

// rcmOrder computes a reverse Cuthill–McKee permutation of a symmetric
// sparse matrix: a breadth-first ordering from low-degree seeds,
// visiting neighbors by increasing degree, reversed at the end. The
// result concentrates the factor's fill near the diagonal.
//
// perm[new] = old. Disconnected components are ordered one after
// another, each from its own minimum-degree seed.
// Complexity: O(n + nnz·log deg).
func rcmOrder(m *linsys.CSR) []int {
	n, _ := m.Dims()
	perm := make([]int, 0, n)
	visited := make([]bool, n)

	degree := make([]int, n)
	for i := 0; i < n; i++ {
		cols, _ := m.Row(i)
		degree[i] = len(cols)
	}

	// Stable seed selection: lowest degree first, index as tiebreak.
	seeds := make([]int, n)
	for i := range seeds {
		seeds[i] = i
	}
	sort.Slice(seeds, func(a, b int) bool {
		if degree[seeds[a]] != degree[seeds[b]] {
			return degree[seeds[a]] < degree[seeds[b]]
		}
		return seeds[a] < seeds[b]
	})

	queue := make([]int, 0, n)
	for _, seed := range seeds {
		if visited[seed] {
			continue
		}
		visited[seed] = true
		queue = append(queue[:0], seed)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			perm = append(perm, v)

			cols, _ := m.Row(v)
			frontier := make([]int, 0, len(cols))
			for _, c := range cols {
				if c != v && !visited[c] {
					visited[c] = true
					frontier = append(frontier, c)
				}
			}
			sort.Slice(frontier, func(a, b int) bool {
				if degree[frontier[a]] != degree[frontier[b]] {
					return degree[frontier[a]] < degree[frontier[b]]
				}
				return frontier[a] < frontier[b]
			})
			queue = append(queue, frontier...)
		}
	}

	// Reverse for RCM.
	for i, j := 0, len(perm)-1; i < j; i, j = i+1, j-1 {
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
