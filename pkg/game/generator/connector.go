package generator

import (
	"math"

	"dungeongen/pkg/engine/world"
)

// TileConnection is a candidate corridor between two tiles.
type TileConnection struct {
	Start world.Tile
	End   world.Tile
}

// Length returns the Manhattan distance between Start and End
func (c TileConnection) Length() int {
	return world.ManhattanDistance(c.Start, c.End)
}

// closestConnection returns the shortest tile pair between a and b.
// The room with more tiles is the outer loop (a on a tie), and the first
// pair found at the minimum length wins. Start always comes from the outer room.
func closestConnection(a, b Room) TileConnection {
	outer, inner := a.Tiles, b.Tiles
	if len(b.Tiles) > len(a.Tiles) {
		outer, inner = b.Tiles, a.Tiles
	}

	best := TileConnection{}
	bestLength := math.MaxInt
	for _, start := range outer {
		for _, end := range inner {
			c := TileConnection{Start: start, End: end}
			if l := c.Length(); l < bestLength {
				best = c
				bestLength = l
			}
		}
	}
	return best
}

// carve walks greedily from path.Start towards path.End, occupying each step,
// and stops once the pivot is adjacent to End. Each step takes the neighbor
// closest to End; ties go to the earlier neighbor in world.NeighborOrder.
// Already occupied tiles are walked through, not around.
func carve(grid *world.Grid, path TileConnection) []world.Tile {
	var carved []world.Tile

	pivot := path.Start
	for world.ManhattanDistance(pivot, path.End) > 1 {
		closest := pivot
		closestDistance := math.MaxInt
		for _, n := range grid.Neighbors(pivot) {
			if d := world.ManhattanDistance(n, path.End); d < closestDistance {
				closest = n
				closestDistance = d
			}
		}
		if closest == pivot {
			// No in-map neighbor; only possible on a 1x1 grid.
			break
		}

		grid.Occupy(closest)
		carved = append(carved, closest)
		pivot = closest
	}
	return carved
}

// connect links room a (just placed) to room b (placed before it) and returns
// the path used and the tiles carved. Both rooms must be non-empty.
func connect(grid *world.Grid, a, b Room) (TileConnection, []world.Tile) {
	if a.Len() == 0 || b.Len() == 0 {
		return TileConnection{}, nil
	}
	path := closestConnection(a, b)
	return path, carve(grid, path)
}
