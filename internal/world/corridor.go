package world

// carveCorridor joins two room centers with an L-shaped corridor.
func carveCorridor(grid *Grid, rng Rand, room1, room2 Room) error {
	return CarveBent(grid, rng, room1.Center(), room2.Center())
}

// CarveBent carves an L-shaped corridor from one point to another. A coin flip
// decides whether the horizontal or the vertical leg comes first.
func CarveBent(grid *Grid, rng Rand, from, to Point) error {
	var err error
	if coinFlip(rng) {
		err = carveHorizontalTunnel(grid, from.X, to.X, from.Y)
		if err == nil {
			err = carveVerticalTunnel(grid, from.Y, to.Y, to.X)
		}
	} else {
		err = carveVerticalTunnel(grid, from.Y, to.Y, from.X)
		if err == nil {
			err = carveHorizontalTunnel(grid, from.X, to.X, to.Y)
		}
	}
	if err != nil {
		return err
	}

	return grid.Set(to.X, to.Y, TileFloor)
}

// CarvePath walks from one point to another one step at a time, preferring
// the x axis on a coin flip while both axes still differ. Each step shortens
// the distance to the target, so the walk always terminates.
func CarvePath(grid *Grid, rng Rand, from, to Point) error {
	x, y := from.X, from.Y

	for x != to.X || y != to.Y {
		if err := grid.Set(x, y, TileFloor); err != nil {
			return err
		}

		if x != to.X && (y == to.Y || coinFlip(rng)) {
			x += step(x, to.X)
		} else {
			y += step(y, to.Y)
		}
	}

	return grid.Set(x, y, TileFloor)
}

// carveHorizontalTunnel carves a horizontal tunnel, both ends inclusive.
func carveHorizontalTunnel(grid *Grid, x1, x2, y int) error {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if err := grid.Set(x, y, TileFloor); err != nil {
			return err
		}
	}
	return nil
}

// carveVerticalTunnel carves a vertical tunnel, both ends inclusive.
func carveVerticalTunnel(grid *Grid, y1, y2, x int) error {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if err := grid.Set(x, y, TileFloor); err != nil {
			return err
		}
	}
	return nil
}

func step(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}
