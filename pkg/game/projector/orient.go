package projector

// WallYaw is the rotation applied to a wall mesh that does not match the
// spawn point's facing.
const WallYaw = -90.0

// OrientWall returns the yaw in degrees and the location offset for placing a
// wall mesh at p. meshFacingX says whether the mesh faces the X axis out of
// the box; pivotOffset corrects meshes whose pivot is not centered.
//
// An X-facing point with a Y-facing mesh is rotated and shifted along Y by the
// pivot's X magnitude. A Y-facing point with an X-facing mesh is only rotated.
// Matching orientations keep the pivot offset as is.
func OrientWall(meshFacingX bool, p WallSpawnPoint, pivotOffset Vec3) (yaw float64, offset Vec3) {
	switch {
	case !meshFacingX && p.FacingX:
		x := pivotOffset.X
		if x < 0 {
			x = -x
		}
		return WallYaw, Vec3{Y: x}
	case meshFacingX && !p.FacingX:
		return WallYaw, Vec3{}
	default:
		return 0, pivotOffset
	}
}

// WallPlacement is a wall ready to spawn.
type WallPlacement struct {
	Location Vec3
	Yaw      float64
}

// PlaceWalls applies OrientWall to each point
func PlaceWalls(points []WallSpawnPoint, meshFacingX bool, pivotOffset Vec3) []WallPlacement {
	placements := make([]WallPlacement, 0, len(points))
	for _, p := range points {
		yaw, offset := OrientWall(meshFacingX, p, pivotOffset)
		placements = append(placements, WallPlacement{Location: p.Location.Add(offset), Yaw: yaw})
	}
	return placements
}

// OffsetFloors shifts floor positions by a mesh pivot offset
func OffsetFloors(floors []Vec3, pivotOffset Vec3) []Vec3 {
	shifted := make([]Vec3, len(floors))
	for i, f := range floors {
		shifted[i] = f.Add(pivotOffset)
	}
	return shifted
}
