// Package world provides the occupancy grid primitives the dungeon layout is
// built on. Tiles are plain comparable values usable as map keys.
package world

import "fmt"

// Tile is one cell of the grid, addressed by row and column.
type Tile struct {
	Row int
	Col int
}

// T is shorthand for building a Tile.
func T(row, col int) Tile {
	return Tile{Row: row, Col: col}
}

// Step returns the tile adjacent to t in the given direction.
// The result may lie outside any grid.
func (t Tile) Step(dir Direction) Tile {
	dr, dc := dir.Delta()
	return Tile{Row: t.Row + dr, Col: t.Col + dc}
}

// String returns the tile as "[row,col]"
func (t Tile) String() string {
	return fmt.Sprintf("[%d,%d]", t.Row, t.Col)
}

// ManhattanDistance returns |Δrow| + |Δcol| between a and b.
func ManhattanDistance(a, b Tile) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
