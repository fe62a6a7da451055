// Package generator lays out rectangular rooms on an occupancy grid and links
// each new room to the previous one with a carved corridor.
package generator

import (
	"errors"
	"fmt"
)

// Config errors
var (
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	ErrInvalidRoomSize   = errors.New("room size range is invalid")
	ErrInvalidTileSize   = errors.New("tile size must be positive")
	ErrNegativeCount     = errors.New("counts must not be negative")
)

// Config holds everything a generation run needs.
type Config struct {
	Rows    int
	Columns int

	// RoomCount is how many rooms to attempt. Fewer may be placed.
	RoomCount int
	// Room sizes are uniform (a size of 3 is a 3x3 room), inclusive on both ends.
	MinRoomSize int
	MaxRoomSize int
	// MaxAttemptsPerRoom bounds the random tries before a room is skipped.
	MaxAttemptsPerRoom int

	// TileSize is the world-space width of one grid cell.
	TileSize float64

	// Seed for the random source. Used for reproducible layouts.
	Seed int64
}

// DefaultConfig returns the stock generator settings
func DefaultConfig() Config {
	return Config{
		Rows:               50,
		Columns:            50,
		RoomCount:          15,
		MinRoomSize:        5,
		MaxRoomSize:        7,
		MaxAttemptsPerRoom: 1500,
		TileSize:           100,
	}
}

// Validate reports the first problem with the configuration, if any
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Rows, c.Columns)
	}
	if c.RoomCount < 0 || c.MaxAttemptsPerRoom < 0 {
		return fmt.Errorf("%w: rooms=%d attempts=%d", ErrNegativeCount, c.RoomCount, c.MaxAttemptsPerRoom)
	}
	if !validRoomSize(c.MinRoomSize, c.MaxRoomSize) {
		return fmt.Errorf("%w: min=%d max=%d", ErrInvalidRoomSize, c.MinRoomSize, c.MaxRoomSize)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidTileSize, c.TileSize)
	}
	return nil
}

func validRoomSize(min, max int) bool {
	return min >= 1 && min <= max
}
