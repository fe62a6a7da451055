package renderer

import (
	"io"

	"dungeongen/pkg/game/generator"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleHeading
	StyleLabel
	StyleValue
	StyleCorridor
	StyleWall
	StyleDenied
	StyleSubtle
)

// Renderer defines the interface for layout rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, markup)
	Init()

	// RenderLayout draws the occupancy map of l to w
	RenderLayout(w io.Writer, l *generator.Layout)

	// RenderSummary writes the outcome of a generation run to w
	RenderSummary(w io.Writer, s generator.Summary)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets and initializes the active renderer
func SetRenderer(r Renderer) {
	Current = r
	if Current != nil {
		Current.Init()
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return msg
}
