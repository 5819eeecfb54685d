package core

import "fmt"

// Vec2 is a position in world pixels.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Point returns the position truncated to whole pixels.
func (v Vec2) Point() Point { return Point{X: int(v.X), Y: int(v.Y)} }

func (v Vec2) String() string { return fmt.Sprintf("(%g,%g)", v.X, v.Y) }

// Point is an integer pixel coordinate.
type Point struct {
	X int
	Y int
}

// Vec returns the point as a Vec2.
func (p Point) Vec() Vec2 { return Vec2{X: float64(p.X), Y: float64(p.Y)} }

// Rect is an axis-aligned bounding box in whole pixels.
type Rect struct {
	X, Y int
	W, H int
}

// RectAt builds the bounding box of an entity at pos.
func RectAt(pos Vec2, w, h int) Rect {
	return Rect{X: int(pos.X), Y: int(pos.Y), W: w, H: h}
}

// Overlaps reports whether the two boxes share interior area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Direction is a snake heading.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool { return d <= Right }

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
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}
