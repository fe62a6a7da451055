package generator

import (
	"dungeongen/pkg/engine/world"
)

// expansion grows a size x size block of tiles from an anchor.
type expansion struct {
	name   string
	expand func(anchor world.Tile, size int) []world.Tile
}

// expansions are tried in this order; the first block that fits wins.
//
// Every shape starts on the anchor row and skips the anchor column. The
// lower-left shape produces the same block as upper-right. Placement results
// depend on this exact arithmetic, so do not tidy it up.
var expansions = []expansion{
	{"upper-right", func(a world.Tile, size int) []world.Tile { return sweep(a, size, -1, -1) }},
	{"lower-right", func(a world.Tile, size int) []world.Tile { return sweep(a, size, 1, 1) }},
	{"upper-left", func(a world.Tile, size int) []world.Tile { return sweep(a, size, 1, -1) }},
	{"lower-left", func(a world.Tile, size int) []world.Tile { return sweep(a, size, -1, -1) }},
}

// sweep walks size rows from the anchor row in rowStep, and for each row
// size columns starting one step past the anchor column in colStep.
func sweep(anchor world.Tile, size, rowStep, colStep int) []world.Tile {
	tiles := make([]world.Tile, 0, size*size)
	for i := 0; i < size; i++ {
		row := anchor.Row + i*rowStep
		for j := 1; j <= size; j++ {
			tiles = append(tiles, world.Tile{Row: row, Col: anchor.Col + j*colStep})
		}
	}
	return tiles
}

// fitRoom returns the first expansion of size around anchor whose tiles are
// all in-map and free. An occupied anchor never fits.
func fitRoom(grid *world.Grid, anchor world.Tile, size int) ([]world.Tile, bool) {
	if grid.IsOccupied(anchor) {
		return nil, false
	}
	for _, e := range expansions {
		tiles := e.expand(anchor, size)
		if grid.AreFree(tiles) {
			return tiles, true
		}
	}
	return nil, false
}
