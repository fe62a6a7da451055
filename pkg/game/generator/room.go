package generator

import (
	"dungeongen/pkg/engine/world"
)

// Room is the set of tiles placed by one successful placement attempt, in
// the order the expansion produced them.
type Room struct {
	Tiles []world.Tile
}

// Len returns the number of tiles in the room
func (r Room) Len() int {
	return len(r.Tiles)
}

// Contains returns true if t was part of the room when it was placed
func (r Room) Contains(t world.Tile) bool {
	for _, rt := range r.Tiles {
		if rt == t {
			return true
		}
	}
	return false
}

// Bounds returns the top-left and bottom-right corners of the room.
// Both are the zero Tile for an empty room.
func (r Room) Bounds() (topLeft, bottomRight world.Tile) {
	if len(r.Tiles) == 0 {
		return world.Tile{}, world.Tile{}
	}
	topLeft, bottomRight = r.Tiles[0], r.Tiles[0]
	for _, t := range r.Tiles[1:] {
		topLeft.Row = min(topLeft.Row, t.Row)
		topLeft.Col = min(topLeft.Col, t.Col)
		bottomRight.Row = max(bottomRight.Row, t.Row)
		bottomRight.Col = max(bottomRight.Col, t.Col)
	}
	return topLeft, bottomRight
}

// Corridor records one connection made between consecutive rooms.
type Corridor struct {
	// From is the index of the newly placed room, To the room placed before it.
	From, To int
	Path     TileConnection
	// Carved lists the tiles the connector occupied, in walking order.
	// Tiles that were already occupied are included.
	Carved []world.Tile
}
