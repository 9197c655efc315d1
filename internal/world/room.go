package world

// Room represents a rectangular room in the dungeon.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
}

// Center returns the center cell of the room.
func (r Room) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if the rooms overlap once both are grown by padding
// cells on their right and bottom edges. A padding of zero is a plain overlap test.
func (r Room) Intersects(other Room, padding int) bool {
	return r.X < other.X+other.Width+padding &&
		r.X+r.Width+padding > other.X &&
		r.Y < other.Y+other.Height+padding &&
		r.Y+r.Height+padding > other.Y
}

// carveRoom sets every cell covered by the room to floor.
func carveRoom(grid *Grid, room Room) error {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if err := grid.Set(x, y, TileFloor); err != nil {
				return err
			}
		}
	}
	return nil
}
