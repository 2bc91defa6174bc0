package world

import "strings"

// Direction is one of the 8 compass offsets around a cell
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Directions lists all 8 neighbour directions in clockwise order starting at North
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// directionDelta holds row/col offsets indexed by Direction
var directionDelta = [8]struct{ dRow, dCol int }{
	North:     {-1, 0},
	NorthEast: {-1, 1},
	East:      {0, 1},
	SouthEast: {1, 1},
	South:     {1, 0},
	SouthWest: {1, -1},
	West:      {0, -1},
	NorthWest: {-1, -1},
}

var directionNames = [8]string{"n", "ne", "e", "se", "s", "sw", "w", "nw"}

// Delta returns the row and column offset of the direction
func (d Direction) Delta() (dRow, dCol int) {
	o := directionDelta[d&7]
	return o.dRow, o.dCol
}

// Opposite returns the direction pointing the other way
func (d Direction) Opposite() Direction {
	return (d + 4) & 7
}

func (d Direction) String() string {
	return directionNames[d&7]
}

// ParseDirection resolves short ("ne") or long ("north_east", "northeast") names
func ParseDirection(name string) (Direction, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("_", "", "-", "", " ", "").Replace(n)
	switch n {
	case "n", "north", "up":
		return North, true
	case "ne", "northeast":
		return NorthEast, true
	case "e", "east", "right":
		return East, true
	case "se", "southeast":
		return SouthEast, true
	case "s", "south", "down":
		return South, true
	case "sw", "southwest":
		return SouthWest, true
	case "w", "west", "left":
		return West, true
	case "nw", "northwest":
		return NorthWest, true
	}
	return 0, false
}
