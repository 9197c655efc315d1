package world

// neighborOffsets lists the 4-directional steps used by the flood fill.
var neighborOffsets = [4]Point{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}

// FindComponents groups floor cells into 4-connected components. Components
// are returned in row-major discovery order; cells within a component are in
// flood-fill visit order.
func FindComponents(grid *Grid) [][]Point {
	visited := make([]bool, grid.width*grid.height)
	var components [][]Point

	for y := 0; y < grid.height; y++ {
		for x := 0; x < grid.width; x++ {
			if visited[y*grid.width+x] || !grid.IsFloor(x, y) {
				continue
			}
			components = append(components, floodFill(grid, Point{X: x, Y: y}, visited))
		}
	}
	return components
}

// floodFill collects every floor cell reachable from start using an explicit
// stack, marking each one visited.
func floodFill(grid *Grid, start Point, visited []bool) []Point {
	var component []Point
	stack := []Point{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !grid.IsFloor(current.X, current.Y) || visited[current.Y*grid.width+current.X] {
			continue
		}
		visited[current.Y*grid.width+current.X] = true
		component = append(component, current)

		for _, d := range neighborOffsets {
			stack = append(stack, Point{X: current.X + d.X, Y: current.Y + d.Y})
		}
	}
	return component
}

// RepairConnectivity chains disjoint floor components together by carving a
// path between a random cell of each component and one of the next. Linking
// every consecutive pair merges all of them, so the grid is not rescanned.
// It returns the number of components found before the repair.
func RepairConnectivity(grid *Grid, rng Rand) (int, error) {
	components := FindComponents(grid)

	for i := 0; i < len(components)-1; i++ {
		from := components[i][rng.Intn(len(components[i]))]
		to := components[i+1][rng.Intn(len(components[i+1]))]
		if err := CarvePath(grid, rng, from, to); err != nil {
			return len(components), err
		}
	}
	return len(components), nil
}
