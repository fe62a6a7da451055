package world

import (
	"strings"
)

// Grid is a fixed-size occupancy matrix. A true cell is used by a room or a
// corridor; a false cell is open space.
type Grid struct {
	cells [][]bool
	rows  int
	cols  int
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Build resets every cell to unoccupied and fixes the dimensions.
// Non-positive dimensions leave the grid empty and invalid; no cell is ever
// in-map on such a grid.
func (g *Grid) Build(rows, cols int) {
	g.rows = rows
	g.cols = cols
	g.cells = nil

	if !g.IsValid() {
		return
	}

	g.cells = make([][]bool, rows)
	for row := 0; row < rows; row++ {
		g.cells[row] = make([]bool, cols)
	}
}

// IsValid returns true when the grid has positive dimensions
func (g *Grid) IsValid() bool {
	return g.rows > 0 && g.cols > 0
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsInMap checks if a tile is within [0, rows) x [0, cols)
func (g *Grid) IsInMap(t Tile) bool {
	return g.IsValid() && t.Row >= 0 && t.Row < g.rows && t.Col >= 0 && t.Col < g.cols
}

// IsOccupied returns the occupancy of t. Off-grid tiles count as open space.
func (g *Grid) IsOccupied(t Tile) bool {
	if !g.IsInMap(t) {
		return false
	}
	return g.cells[t.Row][t.Col]
}

// Occupy marks t as used. Occupying an occupied tile changes nothing.
// Returns false if t is out of the map.
func (g *Grid) Occupy(t Tile) bool {
	if !g.IsInMap(t) {
		return false
	}
	g.cells[t.Row][t.Col] = true
	return true
}

// AreFree reports whether every tile is in-map and unoccupied.
func (g *Grid) AreFree(tiles []Tile) bool {
	for _, t := range tiles {
		if !g.IsInMap(t) || g.IsOccupied(t) {
			return false
		}
	}
	return true
}

// Neighbor returns the tile next to t in dir and whether it is in-map.
// It also returns false when t itself is off the map.
func (g *Grid) Neighbor(t Tile, dir Direction) (Tile, bool) {
	if !g.IsInMap(t) {
		return Tile{}, false
	}
	n := t.Step(dir)
	return n, g.IsInMap(n)
}

// Neighbors returns the in-map tiles adjacent to t, in NeighborOrder.
func (g *Grid) Neighbors(t Tile) []Tile {
	neighbors := make([]Tile, 0, len(NeighborOrder))
	for _, dir := range NeighborOrder {
		n := t.Step(dir)
		if g.IsInMap(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// ForEachTile calls fn for every tile in row-major order
func (g *Grid) ForEachTile(fn func(t Tile, occupied bool)) {
	for row := 0; row < len(g.cells); row++ {
		for col := 0; col < len(g.cells[row]); col++ {
			fn(Tile{Row: row, Col: col}, g.cells[row][col])
		}
	}
}

// OccupiedTiles returns all occupied tiles in row-major order
func (g *Grid) OccupiedTiles() []Tile {
	var tiles []Tile
	g.ForEachTile(func(t Tile, occupied bool) {
		if occupied {
			tiles = append(tiles, t)
		}
	})
	return tiles
}

// OccupiedCount returns the number of occupied tiles
func (g *Grid) OccupiedCount() int {
	n := 0
	g.ForEachTile(func(_ Tile, occupied bool) {
		if occupied {
			n++
		}
	})
	return n
}

// String renders the grid one row per line, cells as 0/1 joined by " - ".
func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < len(g.cells); row++ {
		for col, occupied := range g.cells[row] {
			if col > 0 {
				b.WriteString(" - ")
			}
			if occupied {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
