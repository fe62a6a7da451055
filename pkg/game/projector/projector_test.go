package projector

import (
	"sort"
	"testing"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
)

// fixedSource replays a list of draws
type fixedSource struct {
	draws []int
}

func (s *fixedSource) IntRange(min, max int) int {
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v
}

// twoRoomLayout places two 2x2 rooms on a 5x5 grid joined by one corridor tile at [2,1]
func twoRoomLayout() *generator.Layout {
	cfg := generator.Config{Rows: 5, Columns: 5, MinRoomSize: 2, MaxRoomSize: 2, MaxAttemptsPerRoom: 10}
	l := generator.NewLayout(cfg, &fixedSource{draws: []int{2, 1, 2, 2, 4, 2}})
	l.PlaceRooms(2)
	return l
}

func TestWallsAround_IsolatedTile(t *testing.T) {
	g := world.NewGrid(3, 3)
	g.Occupy(world.T(1, 1))
	walls := WallsAround(g, world.T(1, 1), 10)
	want := []WallSpawnPoint{
		{Location: Vec3{X: 5, Y: 10}, FacingX: true},
		{Location: Vec3{X: 10, Y: 15}, FacingX: false},
		{Location: Vec3{X: 15, Y: 10}, FacingX: true},
		{Location: Vec3{X: 10, Y: 5}, FacingX: false},
	}
	if len(walls) != len(want) {
		t.Fatalf("WallsAround(isolated) returned %d walls, want 4", len(walls))
	}
	for i := range want {
		if walls[i] != want[i] {
			t.Errorf("wall %d = %+v, want %+v", i, walls[i], want[i])
		}
	}
}

func TestWallsAround_GridEdgeCountsAsOpen(t *testing.T) {
	g := world.NewGrid(1, 1)
	g.Occupy(world.T(0, 0))
	if n := len(WallsAround(g, world.T(0, 0), 1)); n != 4 {
		t.Errorf("WallsAround(single-cell grid) = %d walls, want 4", n)
	}
}

func TestWallsAround_OccupiedNeighborsSuppressWalls(t *testing.T) {
	g := world.NewGrid(3, 3)
	g.Occupy(world.T(1, 1))
	g.Occupy(world.T(0, 1))
	g.Occupy(world.T(1, 2))
	walls := WallsAround(g, world.T(1, 1), 2)
	if len(walls) != 2 {
		t.Fatalf("WallsAround = %d walls, want 2", len(walls))
	}
	if walls[0] != (WallSpawnPoint{Location: Vec3{X: 3, Y: 2}, FacingX: true}) {
		t.Errorf("first wall = %+v, want down wall", walls[0])
	}
	if walls[1] != (WallSpawnPoint{Location: Vec3{X: 2, Y: 1}, FacingX: false}) {
		t.Errorf("second wall = %+v, want left wall", walls[1])
	}
}

func TestFlat_TwoRooms(t *testing.T) {
	l := twoRoomLayout()
	p := Flat(l.Grid(), 100)
	if len(p.Floors) != 9 {
		t.Errorf("len(Floors) = %d, want 9", len(p.Floors))
	}
	if p.Floors[0] != (Vec3{}) {
		t.Errorf("Floors[0] = %+v, want origin", p.Floors[0])
	}
	if p.Floors[4] != (Vec3{X: 200, Y: 100}) {
		t.Errorf("Floors[4] = %+v, want corridor tile [2,1]", p.Floors[4])
	}
	// The combined outline is 2 wide and 5 tall, with side notches at [2,0] and [2,2].
	if len(p.Walls) != 16 {
		t.Errorf("len(Walls) = %d, want 16", len(p.Walls))
	}
}

func TestSeparated_TwoRooms(t *testing.T) {
	l := twoRoomLayout()
	p := Separated(l, 100)

	if len(p.Rooms) != 2 {
		t.Fatalf("len(Rooms) = %d, want 2", len(p.Rooms))
	}
	for i, r := range p.Rooms {
		if len(r.Floors) != 4 {
			t.Errorf("room %d has %d floors, want 4", i, len(r.Floors))
		}
	}
	// First floor follows the room's placement order, starting at the anchor row.
	if p.Rooms[0].Floors[0] != (Vec3{X: 100, Y: 100}) {
		t.Errorf("room 0 first floor = %+v, want [1,1]", p.Rooms[0].Floors[0])
	}
	if len(p.CorridorFloors) != 1 || p.CorridorFloors[0] != (Vec3{X: 200, Y: 100}) {
		t.Errorf("CorridorFloors = %+v, want single tile [2,1]", p.CorridorFloors)
	}
	if len(p.CorridorWalls) != 2 {
		t.Errorf("len(CorridorWalls) = %d, want 2", len(p.CorridorWalls))
	}
}

func TestSeparated_EmptyLayout(t *testing.T) {
	l := generator.Generate(generator.Config{Rows: 4, Columns: 4, RoomCount: 0, MinRoomSize: 1, MaxRoomSize: 1, MaxAttemptsPerRoom: 1, TileSize: 1})
	p := Separated(l, 1)
	if len(p.Rooms) != 0 || len(p.CorridorFloors) != 0 || len(p.CorridorWalls) != 0 {
		t.Errorf("Separated(empty) = %+v, want empty", p)
	}
}

func sortedVecs(v []Vec3) []Vec3 {
	out := append([]Vec3(nil), v...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

func TestFlatAndSeparated_SameTotals(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		cfg := generator.Config{Rows: 25, Columns: 25, RoomCount: 6, MinRoomSize: 2, MaxRoomSize: 4, MaxAttemptsPerRoom: 300, TileSize: 50, Seed: seed}
		l := generator.Generate(cfg)

		flat := Flat(l.Grid(), cfg.TileSize)
		sep := Separated(l, cfg.TileSize)

		if sep.FloorCount() != len(flat.Floors) {
			t.Errorf("seed %d: separated floors %d != flat floors %d", seed, sep.FloorCount(), len(flat.Floors))
		}
		if sep.WallCount() != len(flat.Walls) {
			t.Errorf("seed %d: separated walls %d != flat walls %d", seed, sep.WallCount(), len(flat.Walls))
		}

		var union []Vec3
		for _, r := range sep.Rooms {
			union = append(union, r.Floors...)
		}
		union = append(union, sep.CorridorFloors...)
		a, b := sortedVecs(union), sortedVecs(flat.Floors)
		if len(a) != len(b) {
			continue
		}
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("seed %d: floor sets differ at %d: %+v vs %+v", seed, i, a[i], b[i])
				break
			}
		}
	}
}

func TestOrientWall(t *testing.T) {
	pivot := Vec3{X: -20, Y: 5, Z: 1}
	xPoint := WallSpawnPoint{FacingX: true}
	yPoint := WallSpawnPoint{FacingX: false}

	yaw, off := OrientWall(false, xPoint, pivot)
	if yaw != WallYaw || off != (Vec3{Y: 20}) {
		t.Errorf("OrientWall(Y mesh, X point) = %v, %+v; want %v, {Y:20}", yaw, off, WallYaw)
	}
	yaw, off = OrientWall(true, yPoint, pivot)
	if yaw != WallYaw || off != (Vec3{}) {
		t.Errorf("OrientWall(X mesh, Y point) = %v, %+v; want %v, zero", yaw, off, WallYaw)
	}
	yaw, off = OrientWall(true, xPoint, pivot)
	if yaw != 0 || off != pivot {
		t.Errorf("OrientWall(X mesh, X point) = %v, %+v; want 0, %+v", yaw, off, pivot)
	}
	yaw, off = OrientWall(false, yPoint, pivot)
	if yaw != 0 || off != pivot {
		t.Errorf("OrientWall(Y mesh, Y point) = %v, %+v; want 0, %+v", yaw, off, pivot)
	}
}

func TestPlaceWallsAndOffsetFloors(t *testing.T) {
	points := []WallSpawnPoint{{Location: Vec3{X: 50}, FacingX: true}}
	placed := PlaceWalls(points, true, Vec3{Z: 10})
	if len(placed) != 1 || placed[0].Location != (Vec3{X: 50, Z: 10}) || placed[0].Yaw != 0 {
		t.Errorf("PlaceWalls = %+v", placed)
	}
	floors := OffsetFloors([]Vec3{{X: 1}, {Y: 2}}, Vec3{X: -1})
	if floors[0] != (Vec3{}) || floors[1] != (Vec3{X: -1, Y: 2}) {
		t.Errorf("OffsetFloors = %+v", floors)
	}
}
