package config

// Direction is the way a character faces.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	DirectionCount // Must be last - used for array sizing
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Directions lists every facing in array order.
var Directions = [DirectionCount]Direction{Up, Down, Left, Right}
