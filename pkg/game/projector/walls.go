// Package projector turns a finished layout into world-space placement data:
// floor positions and wall spawn points for an external spawning layer.
package projector

import (
	"dungeongen/pkg/engine/world"
)

// Vec3 is a world-space position. X follows grid rows, Y follows columns,
// Z is always zero for generated data.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// WallSpawnPoint is where a wall goes and which way it runs.
type WallSpawnPoint struct {
	Location Vec3
	// FacingX is true for walls crossed when moving along the row axis
	// (up and down walls) and false for left and right walls.
	FacingX bool
}

// TileCenter returns the world position of the center of t
func TileCenter(t world.Tile, tileSize float64) Vec3 {
	return Vec3{X: float64(t.Row) * tileSize, Y: float64(t.Col) * tileSize}
}

// WallsAround returns a wall for each side of t whose neighbor is open or off
// the grid, in up, right, down, left order. The grid is not modified.
func WallsAround(grid *world.Grid, t world.Tile, tileSize float64) []WallSpawnPoint {
	center := TileCenter(t, tileSize)
	half := tileSize / 2

	var walls []WallSpawnPoint
	for _, dir := range world.AllDirections() {
		n, inMap := grid.Neighbor(t, dir)
		if inMap && grid.IsOccupied(n) {
			continue
		}
		dr, dc := dir.Delta()
		walls = append(walls, WallSpawnPoint{
			Location: center.Add(Vec3{X: float64(dr) * half, Y: float64(dc) * half}),
			FacingX:  dir.AlongRows(),
		})
	}
	return walls
}
