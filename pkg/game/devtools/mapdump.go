// Package devtools provides developer tools for inspecting generated layouts.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
)

// DefaultDumpFilename is where DumpLayoutToFile writes when no path is given
const DefaultDumpFilename = "layout.txt"

// roomSymbols label rooms in the symbol map; indices past the end wrap.
const roomSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// TileSymbol returns the symbol for t: '#' open, '+' corridor, or a letter for
// the room that placed it.
func TileSymbol(grid *world.Grid, roomIndex map[world.Tile]int, t world.Tile) rune {
	if !grid.IsOccupied(t) {
		return '#'
	}
	i, ok := roomIndex[t]
	if !ok {
		return '+'
	}
	return rune(roomSymbols[i%len(roomSymbols)])
}

// writeSymbolMap writes the layout one row per line using TileSymbol
func writeSymbolMap(w io.Writer, l *generator.Layout) {
	grid := l.Grid()
	index := l.RoomIndex()
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			fmt.Fprintf(w, "%c", TileSymbol(grid, index, world.T(row, col)))
		}
		fmt.Fprintln(w)
	}
}

// DumpLayout writes a sectioned, human-readable dump of l: metadata, legend,
// symbol map, raw occupancy, rooms and corridors.
func DumpLayout(w io.Writer, l *generator.Layout, cfg generator.Config) {
	grid := l.Grid()
	summary := generator.Analyze(l, cfg.RoomCount)

	fmt.Fprintln(w, "=== LAYOUT DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", cfg.Seed)
	fmt.Fprintf(w, "grid_rows: %d\n", grid.Rows())
	fmt.Fprintf(w, "grid_cols: %d\n", grid.Cols())
	fmt.Fprintf(w, "valid: %v\n", l.IsValid())
	fmt.Fprintf(w, "room_size: %d..%d\n", cfg.MinRoomSize, cfg.MaxRoomSize)
	fmt.Fprintf(w, "max_attempts_per_room: %d\n", cfg.MaxAttemptsPerRoom)
	fmt.Fprintf(w, "tile_size: %v\n", cfg.TileSize)
	fmt.Fprintf(w, "rooms_requested: %d\n", summary.RoomsRequested)
	fmt.Fprintf(w, "rooms_placed: %d\n", summary.RoomsPlaced)
	fmt.Fprintf(w, "room_tiles: %d\n", summary.RoomTiles)
	fmt.Fprintf(w, "corridor_tiles: %d\n", summary.CorridorTiles)
	fmt.Fprintf(w, "occupied_tiles: %d\n", summary.OccupiedTiles)
	fmt.Fprintf(w, "consecutive_rooms_connected: %v\n", summary.Connected)
	fmt.Fprintln(w, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "# = open  + = corridor  A..Z a..z = room in placement order (wraps)")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	writeSymbolMap(w, l)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Occupancy (1 = occupied) ---")
	fmt.Fprint(w, grid.String())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Rooms:")
	for i, room := range l.Rooms() {
		tl, br := room.Bounds()
		fmt.Fprintf(w, "  index: %d symbol: %c tiles: %d top_left: %d,%d bottom_right: %d,%d\n",
			i, roomSymbols[i%len(roomSymbols)], room.Len(), tl.Row, tl.Col, br.Row, br.Col)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Corridors:")
	for _, c := range l.Corridors() {
		fmt.Fprintf(w, "  from_room: %d to_room: %d start: %d,%d end: %d,%d length: %d carved: %d\n",
			c.From, c.To, c.Path.Start.Row, c.Path.Start.Col, c.Path.End.Row, c.Path.End.Col, c.Path.Length(), len(c.Carved))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "=== END LAYOUT DUMP ===")
}

// DumpLayoutToFile writes DumpLayout to path (DefaultDumpFilename if empty)
// and returns the absolute path written.
func DumpLayoutToFile(path string, l *generator.Layout, cfg generator.Config) (string, error) {
	if path == "" {
		path = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create dump file: %w", err)
	}
	defer f.Close()

	DumpLayout(f, l, cfg)

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
