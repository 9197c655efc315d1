package world

import (
	"errors"
	"math/rand"
	"testing"
)

func TestPlaceRoomsScripted(t *testing.T) {
	g, err := NewGrid(30, 18)
	if err != nil {
		t.Fatal(err)
	}

	// count, width, height, x, y
	rng := newScriptedRand(t, 0, 0, 0, 3, 1)
	rooms, stats, err := PlaceRooms(g, rng, 1, 1)
	if err != nil {
		t.Fatalf("PlaceRooms() error: %v", err)
	}
	rng.assertConsumed()

	if stats.Target != 1 {
		t.Errorf("stats.Target = %d, want 1", stats.Target)
	}

	want := Room{X: 5, Y: 3, Width: 4, Height: 4}
	if len(rooms) != 1 || rooms[0] != want {
		t.Fatalf("PlaceRooms() = %+v, want [%+v]", rooms, want)
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if got := g.IsFloor(x, y); got != want.Contains(x, y) {
				t.Errorf("IsFloor(%d,%d) = %v, want %v", x, y, got, want.Contains(x, y))
			}
		}
	}
}

func TestPlaceRoomsRejectsOverlap(t *testing.T) {
	g, err := NewGrid(30, 18)
	if err != nil {
		t.Fatal(err)
	}

	rng := newScriptedRand(t,
		0,          // two rooms
		0, 0, 3, 1, // room 0 at (5,3) 4x4
		0, 0, 4, 2, // candidate at (6,4) overlaps, rejected
		0, 0, 9, 1, // candidate at (11,3): gap of 2, accepted
	)
	rooms, _, err := PlaceRooms(g, rng, 2, 2)
	if err != nil {
		t.Fatalf("PlaceRooms() error: %v", err)
	}
	rng.assertConsumed()

	if len(rooms) != 2 {
		t.Fatalf("PlaceRooms() placed %d rooms, want 2", len(rooms))
	}
	if want := (Room{X: 11, Y: 3, Width: 4, Height: 4}); rooms[1] != want {
		t.Errorf("second room = %+v, want %+v", rooms[1], want)
	}
}

func TestPlaceRoomsInvariants(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		g, err := NewGrid(DefaultWidth, DefaultHeight)
		if err != nil {
			t.Fatal(err)
		}
		rng := rand.New(rand.NewSource(seed))

		rooms, stats, err := PlaceRooms(g, rng, 4, 5)
		if err != nil {
			t.Fatalf("seed %d: PlaceRooms() error: %v", seed, err)
		}
		if stats.Target < 4 || stats.Target > 5 {
			t.Errorf("seed %d: target %d outside [4,5]", seed, stats.Target)
		}
		if len(rooms) > stats.Target {
			t.Errorf("seed %d: placed %d rooms, want at most %d", seed, len(rooms), stats.Target)
		}

		for i, r := range rooms {
			if r.Width < minRoomWidth || r.Width > maxRoomWidth || r.Height < minRoomHeight || r.Height > maxRoomHeight {
				t.Errorf("seed %d: room %d has size %dx%d", seed, i, r.Width, r.Height)
			}
			if r.X < roomBorder || r.Y < roomBorder ||
				r.X+r.Width+roomBorder > g.Width() || r.Y+r.Height+roomBorder > g.Height() {
				t.Errorf("seed %d: room %d %+v breaks the border", seed, i, r)
			}
			for j := i + 1; j < len(rooms); j++ {
				if r.Intersects(rooms[j], roomPadding) {
					t.Errorf("seed %d: rooms %d and %d intersect with padding: %+v %+v", seed, i, j, r, rooms[j])
				}
			}
		}
	}
}

func TestPlaceRoomsTooSmall(t *testing.T) {
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}

	rooms, _, err := PlaceRooms(g, rand.New(rand.NewSource(7)), 4, 5)
	if err != nil {
		t.Fatalf("PlaceRooms() on 3x3 error: %v", err)
	}
	if len(rooms) != 0 {
		t.Errorf("PlaceRooms() on 3x3 placed %d rooms, want 0", len(rooms))
	}
	if cells := g.FloorCells(); len(cells) != 0 {
		t.Errorf("3x3 grid has %d floor cells, want 0", len(cells))
	}
}

func TestPlaceRoomsInvalidRange(t *testing.T) {
	g, err := NewGrid(30, 18)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		min, max int
	}{
		{5, 4},
		{-1, 3},
	}
	for _, tt := range tests {
		_, _, err := PlaceRooms(g, rand.New(rand.NewSource(1)), tt.min, tt.max)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("PlaceRooms(%d, %d) error = %v, want ErrInvalidConfig", tt.min, tt.max, err)
		}
	}
}
