package tui

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gookit/color"

	"dungeongen/pkg/engine/terminal"
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
)

// Map icons
const (
	IconRoom     = "■"
	IconCorridor = "░"
	IconWall     = "▒"
	IconVoid     = " "
)

// CellWidth is the number of terminal columns each grid cell takes
const CellWidth = 2

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorHeading  color.Style
	colorLabel    color.Style
	colorValue    color.Style
	colorCorridor color.Style
	colorWall     color.Style
	colorDenied   color.Style
	colorSubtle   color.Style
	roomPalette   []color.Style

	// width overrides terminal probing when positive
	width int

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// SetWidth fixes the output width in terminal columns. Zero probes the terminal.
func (t *TUIRenderer) SetWidth(width int) {
	t.width = width
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorHeading = color.Style{color.FgMagenta, color.OpBold}
	t.colorLabel = color.Style{color.FgBlue}
	t.colorValue = color.Style{color.FgGreen, color.OpBold}
	t.colorCorridor = color.Style{color.FgYellow}
	t.colorWall = color.Style{color.FgGray}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	// Neighbouring rooms get different colours so overlapping outlines stay readable
	t.roomPalette = []color.Style{
		{color.FgCyan, color.OpBold},
		{color.FgGreen, color.OpBold},
		{color.FgMagenta, color.OpBold},
		{color.FgBlue, color.OpBold},
		{color.FgLightRed, color.OpBold},
	}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// SetColor turns ANSI colour output on or off for every renderer
func SetColor(enabled bool) {
	color.Enable = enabled
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleHeading:
		return t.colorHeading.Sprint(text)
	case renderer.StyleLabel:
		return t.colorLabel.Sprint(text)
	case renderer.StyleValue:
		return t.colorValue.Sprint(text)
	case renderer.StyleCorridor:
		return t.colorCorridor.Sprint(text)
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		val := "blat"

		switch function {
		case "GT":
			val = renderer.T(operand)
		case "HEAD":
			val = t.colorHeading.Sprint(renderer.T(operand))
		case "VALUE":
			val = t.colorValue.Sprint(operand)
		case "DENIED":
			val = t.colorDenied.Sprint(operand)
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// visibleColumns returns how many grid columns fit in the output width
func (t *TUIRenderer) visibleColumns(cols int) int {
	width := t.width
	if width <= 0 {
		width = terminal.Width()
	}
	return terminal.ColumnsThatFit(width, cols, CellWidth)
}

// RenderLayout draws the layout, one grid row per line, cropped to the
// output width.
func (t *TUIRenderer) RenderLayout(w io.Writer, l *generator.Layout) {
	grid := l.Grid()

	fmt.Fprint(w, t.FormatText("HEAD{LAYOUT_TITLE}\n"))
	fmt.Fprintln(w, renderer.T("GRID_SIZE", grid.Rows(), grid.Cols()))
	fmt.Fprintln(w)

	if !l.IsValid() {
		fmt.Fprintln(w, t.colorDenied.Sprint(renderer.T("INVALID_GRID")))
		return
	}

	index := l.RoomIndex()
	cols := t.visibleColumns(grid.Cols())

	for row := 0; row < grid.Rows(); row++ {
		var b strings.Builder
		for col := 0; col < cols; col++ {
			b.WriteString(t.renderTile(grid, index, world.T(row, col)))
			b.WriteString(" ")
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}

	if cols < grid.Cols() {
		fmt.Fprintln(w, t.colorSubtle.Sprint(renderer.T("COLUMNS_SHOWN", cols, grid.Cols())))
	}
	fmt.Fprintln(w)
	t.renderLegend(w)
}

// renderTile returns the string representation of a tile
func (t *TUIRenderer) renderTile(grid *world.Grid, index map[world.Tile]int, tile world.Tile) string {
	if grid.IsOccupied(tile) {
		if i, ok := index[tile]; ok {
			return t.roomPalette[i%len(t.roomPalette)].Sprint(IconRoom)
		}
		return t.colorCorridor.Sprint(IconCorridor)
	}

	// Open tiles next to anything occupied render as walls
	if hasOccupiedNeighbor(grid, tile) {
		return t.colorWall.Sprint(IconWall)
	}
	return IconVoid
}

// hasOccupiedNeighbor checks if any 4-connected neighbour of tile is occupied
func hasOccupiedNeighbor(grid *world.Grid, tile world.Tile) bool {
	for _, n := range grid.Neighbors(tile) {
		if grid.IsOccupied(n) {
			return true
		}
	}
	return false
}

func (t *TUIRenderer) renderLegend(w io.Writer) {
	fmt.Fprintf(w, "%s: %s %s  %s %s  %s %s\n",
		t.colorLabel.Sprint(renderer.T("LEGEND")),
		t.roomPalette[0].Sprint(IconRoom), renderer.T("LEGEND_ROOM"),
		t.colorCorridor.Sprint(IconCorridor), renderer.T("LEGEND_CORRIDOR"),
		t.colorWall.Sprint(IconWall), renderer.T("LEGEND_WALL"))
}

// RenderSummary writes the run summary, one labelled count per line
func (t *TUIRenderer) RenderSummary(w io.Writer, s generator.Summary) {
	fmt.Fprint(w, t.FormatText("HEAD{SUMMARY}\n"))

	connected := t.colorValue.Sprint(renderer.T("YES"))
	if !s.Connected {
		connected = t.colorDenied.Sprint(renderer.T("NO"))
	}

	fmt.Fprintln(w, "- "+renderer.T("ROOMS_PLACED", s.RoomsPlaced, s.RoomsRequested))
	fmt.Fprintln(w, "- "+renderer.T("ROOM_TILES", s.RoomTiles))
	fmt.Fprintln(w, "- "+renderer.T("CORRIDOR_TILES", s.CorridorTiles))
	fmt.Fprintln(w, "- "+renderer.T("OCCUPIED_TILES", s.OccupiedTiles))
	fmt.Fprintln(w, "- "+renderer.T("CONNECTED", connected))
}
