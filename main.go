package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"dungeongen/pkg/engine/rng"
	"dungeongen/pkg/game/devtools"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/projector"
	"dungeongen/pkg/game/renderer"
	"dungeongen/pkg/game/renderer/tui"
)

// Projection modes selectable with -mode
const (
	ModeFlat  = "flat"
	ModeRooms = "rooms"
)

func main() {
	cfg := generator.DefaultConfig()

	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "grid rows")
	flag.IntVar(&cfg.Columns, "cols", cfg.Columns, "grid columns")
	flag.IntVar(&cfg.RoomCount, "rooms", cfg.RoomCount, "number of rooms to try to place")
	flag.IntVar(&cfg.MinRoomSize, "min", cfg.MinRoomSize, "minimum room side length")
	flag.IntVar(&cfg.MaxRoomSize, "max", cfg.MaxRoomSize, "maximum room side length")
	flag.IntVar(&cfg.MaxAttemptsPerRoom, "attempts", cfg.MaxAttemptsPerRoom, "placement attempts per room")
	flag.Float64Var(&cfg.TileSize, "tile", cfg.TileSize, "world size of one tile")
	flag.Int64Var(&cfg.Seed, "seed", 0, "random seed (0 derives one from the clock)")
	mode := flag.String("mode", ModeFlat, "projection mode: flat or rooms")
	meshFacingX := flag.Bool("wallx", true, "wall mesh faces the X axis")
	dumpPath := flag.String("dump", "", "write a layout dump to this file")
	lang := flag.String("lang", renderer.DefaultLanguage, "output language")
	useColor := flag.Bool("color", true, "colour output")
	flag.Parse()

	if err := run(os.Stdout, cfg, *mode, *meshFacingX, *dumpPath, *lang, *useColor); err != nil {
		fmt.Fprintln(os.Stderr, renderer.StyleText(err.Error(), renderer.StyleDenied))
		os.Exit(1)
	}
}

func run(w io.Writer, cfg generator.Config, mode string, meshFacingX bool, dumpPath, lang string, useColor bool) error {
	if err := renderer.SetLanguage(lang); err != nil {
		return err
	}
	tui.SetColor(useColor)
	renderer.SetRenderer(tui.New())

	if mode != ModeFlat && mode != ModeRooms {
		return fmt.Errorf("unknown mode %q, want %s or %s", mode, ModeFlat, ModeRooms)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", renderer.T("INVALID_CONFIG"), err)
	}

	var src *rng.Seeded
	if cfg.Seed == 0 {
		src = rng.NewFromClock()
		cfg.Seed = src.Seed()
	} else {
		src = rng.New(cfg.Seed)
	}

	layout := generator.NewLayout(cfg, src)
	layout.PlaceRooms(cfg.RoomCount)

	fmt.Fprintln(w, renderer.StyleText(renderer.T("SEED", cfg.Seed), renderer.StyleSubtle))
	renderer.Current.RenderLayout(w, layout)
	fmt.Fprintln(w)
	renderer.Current.RenderSummary(w, generator.Analyze(layout, cfg.RoomCount))
	fmt.Fprintln(w)

	printProjection(w, layout, cfg.TileSize, mode, meshFacingX)

	if dumpPath != "" {
		written, err := devtools.DumpLayoutToFile(dumpPath, layout, cfg)
		if err != nil {
			return fmt.Errorf("dump layout: %w", err)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, renderer.T("DUMP_WRITTEN", written))
	}
	return nil
}

// printProjection reports floor and wall counts for the chosen mode
func printProjection(w io.Writer, l *generator.Layout, tileSize float64, mode string, meshFacingX bool) {
	var walls []projector.WallSpawnPoint

	if mode == ModeRooms {
		p := projector.Separated(l, tileSize)
		fmt.Fprint(w, renderer.FormatText("HEAD{PROJECTION_ROOMS}\n"))
		for i, room := range p.Rooms {
			fmt.Fprintln(w, "- "+renderer.T("ROOM_ENTRY", i, len(room.Floors), len(room.Walls)))
			walls = append(walls, room.Walls...)
		}
		fmt.Fprintln(w, "- "+renderer.T("CORRIDOR_ENTRY", len(p.CorridorFloors), len(p.CorridorWalls)))
		fmt.Fprintln(w, "- "+renderer.T("FLOORS", p.FloorCount()))
		fmt.Fprintln(w, "- "+renderer.T("WALLS", p.WallCount()))
		walls = append(walls, p.CorridorWalls...)
	} else {
		p := projector.Flat(l.Grid(), tileSize)
		fmt.Fprint(w, renderer.FormatText("HEAD{PROJECTION_FLAT}\n"))
		fmt.Fprintln(w, "- "+renderer.T("FLOORS", len(p.Floors)))
		fmt.Fprintln(w, "- "+renderer.T("WALLS", len(p.Walls)))
		walls = p.Walls
	}

	rotated := 0
	for _, placement := range projector.PlaceWalls(walls, meshFacingX, projector.Vec3{}) {
		if placement.Yaw != 0 {
			rotated++
		}
	}
	fmt.Fprintln(w, "- "+renderer.T("WALLS_ROTATED", rotated))
}
