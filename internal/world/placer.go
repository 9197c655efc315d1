package world

import "fmt"

const (
	// Room size ranges (inclusive).
	minRoomWidth  = 4
	maxRoomWidth  = 7
	minRoomHeight = 4
	maxRoomHeight = 6

	// roomBorder keeps rooms off the outer edge of the grid.
	roomBorder = 2
	// roomPadding is the gap enforced between any two rooms.
	roomPadding = 2

	maxPlacementAttempts = 50
)

// PlaceStats summarizes a PlaceRooms run.
type PlaceStats struct {
	// Target is the room count drawn from [minCount, maxCount].
	Target int
}

// PlaceRooms rejection-samples between minCount and maxCount rooms into the
// grid and carves each accepted room immediately. A room whose attempts are
// all rejected is skipped, so fewer rooms than stats.Target may be returned.
func PlaceRooms(grid *Grid, rng Rand, minCount, maxCount int) ([]Room, PlaceStats, error) {
	var stats PlaceStats
	if minCount < 0 || minCount > maxCount {
		return nil, stats, fmt.Errorf("%w: room count range [%d,%d]", ErrInvalidConfig, minCount, maxCount)
	}

	target := minCount + rng.Intn(maxCount-minCount+1)
	stats.Target = target
	rooms := make([]Room, 0, target)

	for i := 0; i < target; i++ {
		room, ok := findRoom(grid, rng, rooms)
		if !ok {
			continue
		}
		if err := carveRoom(grid, room); err != nil {
			return rooms, stats, err
		}
		rooms = append(rooms, room)
	}

	return rooms, stats, nil
}

// findRoom draws candidates until one clears every existing room.
func findRoom(grid *Grid, rng Rand, existing []Room) (Room, bool) {
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		w := minRoomWidth + rng.Intn(maxRoomWidth-minRoomWidth+1)
		h := minRoomHeight + rng.Intn(maxRoomHeight-minRoomHeight+1)

		// Positions keep a border on the left/top and room for padding on the right/bottom.
		spanX := grid.Width() - w - 2*roomBorder
		spanY := grid.Height() - h - 2*roomBorder
		if spanX <= 0 || spanY <= 0 {
			continue
		}

		candidate := Room{
			X:      roomBorder + rng.Intn(spanX),
			Y:      roomBorder + rng.Intn(spanY),
			Width:  w,
			Height: h,
		}
		if !overlapsAny(candidate, existing) {
			return candidate, true
		}
	}
	return Room{}, false
}

func overlapsAny(room Room, existing []Room) bool {
	for _, other := range existing {
		if room.Intersects(other, roomPadding) {
			return true
		}
	}
	return false
}
