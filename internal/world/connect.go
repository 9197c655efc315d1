package world

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// maxExtraConnections bounds the loop corridors added on top of the MST.
const maxExtraConnections = 2

// Edge is a weighted link between two rooms, identified by index.
type Edge struct {
	From, To int
	Distance int
}

// BuildEdges returns one edge per room pair, sorted by ascending center
// distance. Ties keep pair order.
func BuildEdges(rooms []Room) []Edge {
	edges := make([]Edge, 0, len(rooms)*(len(rooms)-1)/2)
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			edges = append(edges, Edge{
				From:     i,
				To:       j,
				Distance: rooms[i].Center().Manhattan(rooms[j].Center()),
			})
		}
	}

	slices.SortStableFunc(edges, func(a, b Edge) int {
		return a.Distance - b.Distance
	})
	return edges
}

// MinimumSpanningTree runs Kruskal over pre-sorted edges and returns the
// indices of the kept edges in the order they were accepted.
func MinimumSpanningTree(edges []Edge, nodeCount int) []int {
	parent := make([]int, nodeCount)
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}

	kept := make([]int, 0, max(nodeCount-1, 0))
	for i, e := range edges {
		if len(kept) == nodeCount-1 {
			break
		}
		rootFrom, rootTo := find(e.From), find(e.To)
		if rootFrom != rootTo {
			parent[rootFrom] = rootTo
			kept = append(kept, i)
		}
	}
	return kept
}

// ConnectRooms carves corridors along the minimum spanning tree of room
// centers, then up to two extra corridors sampled from the full edge list to
// create loops. A sampled edge may repeat; repeats are carved again (a no-op)
// or skipped if they belong to the tree.
func ConnectRooms(grid *Grid, rng Rand, rooms []Room) (ConnectStats, error) {
	var stats ConnectStats
	if len(rooms) < 2 {
		return stats, nil
	}

	edges := BuildEdges(rooms)
	tree := MinimumSpanningTree(edges, len(rooms))

	inTree := mapset.New[int]()
	for _, idx := range tree {
		inTree.Put(idx)
		e := edges[idx]
		if err := carveCorridor(grid, rng, rooms[e.From], rooms[e.To]); err != nil {
			return stats, err
		}
	}
	stats.TreeEdges = len(tree)

	extras := min(maxExtraConnections, len(edges)-len(tree))
	for i := 0; i < extras; i++ {
		idx := rng.Intn(len(edges))
		if inTree.Has(idx) {
			continue
		}
		e := edges[idx]
		if err := carveCorridor(grid, rng, rooms[e.From], rooms[e.To]); err != nil {
			return stats, err
		}
		stats.ExtraEdges++
	}

	return stats, nil
}

// ConnectStats summarizes the corridors carved by ConnectRooms.
type ConnectStats struct {
	TreeEdges  int
	ExtraEdges int
}
