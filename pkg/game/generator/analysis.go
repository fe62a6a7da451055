package generator

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"dungeongen/pkg/engine/world"
)

// Summary describes the outcome of a generation run
type Summary struct {
	RoomsRequested int
	RoomsPlaced    int
	RoomTiles      int
	CorridorTiles  int
	OccupiedTiles  int
	// Connected is true when every room can reach the room placed before it
	// through occupied tiles.
	Connected bool
}

// Analyze summarises l. requested is the room count the run was asked for.
func Analyze(l *Layout, requested int) Summary {
	roomTiles := 0
	for _, room := range l.rooms {
		roomTiles += room.Len()
	}
	return Summary{
		RoomsRequested: requested,
		RoomsPlaced:    len(l.rooms),
		RoomTiles:      roomTiles,
		CorridorTiles:  len(l.CorridorTiles()),
		OccupiedTiles:  l.grid.OccupiedCount(),
		Connected:      l.ConsecutiveRoomsConnected(),
	}
}

// ConsecutiveRoomsConnected checks that each room reaches its predecessor
// over occupied tiles
func (l *Layout) ConsecutiveRoomsConnected() bool {
	for i := 1; i < len(l.rooms); i++ {
		if !Reachable(l.grid, l.rooms[i].Tiles[0], l.rooms[i-1].Tiles[0]) {
			return false
		}
	}
	return true
}

// Reachable reports whether a 4-connected path of occupied tiles joins from and to
func Reachable(grid *world.Grid, from, to world.Tile) bool {
	if !grid.IsOccupied(from) || !grid.IsOccupied(to) {
		return false
	}

	visited := mapset.New[world.Tile]()
	pending := queue.New[world.Tile]()
	pending.Enqueue(from)
	visited.Put(from)

	for !pending.Empty() {
		current := pending.Dequeue()
		if current == to {
			return true
		}
		for _, n := range grid.Neighbors(current) {
			if grid.IsOccupied(n) && !visited.Has(n) {
				visited.Put(n)
				pending.Enqueue(n)
			}
		}
	}
	return false
}
