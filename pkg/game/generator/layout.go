package generator

import (
	"github.com/zyedidia/generic/mapset"

	"dungeongen/pkg/engine/rng"
	"dungeongen/pkg/engine/world"
)

// Layout owns the occupancy grid and the rooms placed on it during one
// generation run. It is not safe for concurrent use.
type Layout struct {
	grid      *world.Grid
	rooms     []Room
	corridors []Corridor

	minRoomSize int
	maxRoomSize int
	maxAttempts int

	src rng.Source
}

// NewLayout creates an empty layout sized and tuned from cfg, drawing random
// numbers from src. cfg.RoomCount, cfg.TileSize and cfg.Seed are not used here.
func NewLayout(cfg Config, src rng.Source) *Layout {
	l := &Layout{
		grid: world.NewGrid(cfg.Rows, cfg.Columns),
		src:  src,
	}
	l.SetRoomSize(cfg.MinRoomSize, cfg.MaxRoomSize)
	l.SetMaxAttempts(cfg.MaxAttemptsPerRoom)
	return l
}

// Generate runs a full pass for cfg with a source seeded from cfg.Seed.
func Generate(cfg Config) *Layout {
	l := NewLayout(cfg, rng.New(cfg.Seed))
	l.PlaceRooms(cfg.RoomCount)
	return l
}

// SetRoomSize sets the inclusive uniform room size range
func (l *Layout) SetRoomSize(minSize, maxSize int) {
	l.minRoomSize = minSize
	l.maxRoomSize = maxSize
}

// SetMaxAttempts sets how many random tries each room gets before it is skipped
func (l *Layout) SetMaxAttempts(n int) {
	l.maxAttempts = n
}

// Reset clears rooms and corridors and rebuilds the grid at the given size.
func (l *Layout) Reset(rows, cols int) {
	l.grid.Build(rows, cols)
	l.rooms = nil
	l.corridors = nil
}

// IsValid returns false when the grid dimensions are not positive.
// An invalid layout never places anything.
func (l *Layout) IsValid() bool {
	return l.grid.IsValid()
}

// Grid returns the occupancy grid
func (l *Layout) Grid() *world.Grid {
	return l.grid
}

// Rooms returns the placed rooms in placement order
func (l *Layout) Rooms() []Room {
	return l.rooms
}

// Corridors returns one entry per connection made, in placement order
func (l *Layout) Corridors() []Corridor {
	return l.corridors
}

// PlaceRooms starts a fresh run and tries to place target rooms, connecting
// each room to the one placed before it as soon as it lands. It returns the
// number of rooms placed. A room that does not fit within the attempt budget
// is skipped, so the result may be lower than target; that is not an error.
//
// Each attempt draws, in order: the room size, the anchor row, the anchor
// column. A run is reproducible from the source's seed.
func (l *Layout) PlaceRooms(target int) int {
	l.Reset(l.grid.Rows(), l.grid.Cols())

	if !l.IsValid() || !validRoomSize(l.minRoomSize, l.maxRoomSize) {
		return 0
	}

	for i := 0; i < target; i++ {
		for attempt := 0; attempt < l.maxAttempts; attempt++ {
			size := l.src.IntRange(l.minRoomSize, l.maxRoomSize)
			anchor := world.Tile{
				Row: l.src.IntRange(0, l.grid.Rows()-1),
				Col: l.src.IntRange(0, l.grid.Cols()-1),
			}

			tiles, ok := fitRoom(l.grid, anchor, size)
			if !ok {
				continue
			}

			for _, t := range tiles {
				l.grid.Occupy(t)
			}
			l.storeRoom(Room{Tiles: tiles})
			break
		}
	}

	return len(l.rooms)
}

// storeRoom appends room and connects it to its predecessor
func (l *Layout) storeRoom(room Room) {
	l.rooms = append(l.rooms, room)
	if len(l.rooms) < 2 {
		return
	}

	from := len(l.rooms) - 1
	to := from - 1
	path, carved := connect(l.grid, l.rooms[from], l.rooms[to])
	l.corridors = append(l.corridors, Corridor{
		From:   from,
		To:     to,
		Path:   path,
		Carved: carved,
	})
}

// RoomTileSet returns every tile that belonged to a room at placement time.
// Corridor tiles are never added, even when they touch a room.
func (l *Layout) RoomTileSet() mapset.Set[world.Tile] {
	set := mapset.New[world.Tile]()
	for _, room := range l.rooms {
		for _, t := range room.Tiles {
			set.Put(t)
		}
	}
	return set
}

// CorridorTiles returns the occupied tiles that are not part of any room,
// in row-major order.
func (l *Layout) CorridorTiles() []world.Tile {
	roomTiles := l.RoomTileSet()
	var tiles []world.Tile
	l.grid.ForEachTile(func(t world.Tile, occupied bool) {
		if occupied && !roomTiles.Has(t) {
			tiles = append(tiles, t)
		}
	})
	return tiles
}

// RoomIndex maps each room tile to the index of the room that placed it
func (l *Layout) RoomIndex() map[world.Tile]int {
	index := make(map[world.Tile]int)
	for i, room := range l.rooms {
		for _, t := range room.Tiles {
			index[t] = i
		}
	}
	return index
}
