package world

// Direction represents a cardinal direction on the grid.
// Up decreases the row, Left decreases the column.
type Direction int

// Direction constants
const (
	Up Direction = iota
	Right
	Down
	Left
)

// AllDirections returns the directions in clockwise order starting at Up.
// Wall derivation emits walls in this order.
func AllDirections() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// NeighborOrder is the order in which Grid.Neighbors reports adjacent tiles.
// Corridor carving breaks distance ties by this order, so it must not change.
var NeighborOrder = [4]Direction{Up, Right, Left, Down}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	default:
		return d
	}
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 0
	}
}

// AlongRows reports whether moving in d changes the row index.
// Walls crossed this way are the "facing X" walls.
func (d Direction) AlongRows() bool {
	return d == Up || d == Down
}
