package projector

import (
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
)

// Projection is the flat output: every occupied tile, rooms and corridors alike.
type Projection struct {
	Floors []Vec3
	Walls  []WallSpawnPoint
}

// RoomProjection holds one room's floors and walls.
type RoomProjection struct {
	Floors []Vec3
	Walls  []WallSpawnPoint
}

// SeparatedProjection keeps each room apart from the shared corridor output.
type SeparatedProjection struct {
	Rooms          []RoomProjection
	CorridorFloors []Vec3
	CorridorWalls  []WallSpawnPoint
}

// FloorCount returns the number of floor positions across rooms and corridors
func (p SeparatedProjection) FloorCount() int {
	n := len(p.CorridorFloors)
	for _, r := range p.Rooms {
		n += len(r.Floors)
	}
	return n
}

// WallCount returns the number of wall spawn points across rooms and corridors
func (p SeparatedProjection) WallCount() int {
	n := len(p.CorridorWalls)
	for _, r := range p.Rooms {
		n += len(r.Walls)
	}
	return n
}

// Flat projects every occupied tile in row-major order
func Flat(grid *world.Grid, tileSize float64) Projection {
	var p Projection
	grid.ForEachTile(func(t world.Tile, occupied bool) {
		if !occupied {
			return
		}
		p.Floors = append(p.Floors, TileCenter(t, tileSize))
		p.Walls = append(p.Walls, WallsAround(grid, t, tileSize)...)
	})
	return p
}

// Separated projects each room in placement order, then every occupied tile
// outside all rooms' placed tiles into the corridor output in row-major order.
func Separated(l *generator.Layout, tileSize float64) SeparatedProjection {
	grid := l.Grid()
	roomTiles := l.RoomTileSet()

	p := SeparatedProjection{
		Rooms: make([]RoomProjection, 0, len(l.Rooms())),
	}
	for _, room := range l.Rooms() {
		var rp RoomProjection
		for _, t := range room.Tiles {
			rp.Floors = append(rp.Floors, TileCenter(t, tileSize))
			rp.Walls = append(rp.Walls, WallsAround(grid, t, tileSize)...)
		}
		p.Rooms = append(p.Rooms, rp)
	}

	grid.ForEachTile(func(t world.Tile, occupied bool) {
		if !occupied || roomTiles.Has(t) {
			return
		}
		p.CorridorFloors = append(p.CorridorFloors, TileCenter(t, tileSize))
		p.CorridorWalls = append(p.CorridorWalls, WallsAround(grid, t, tileSize)...)
	})
	return p
}
