package layout

import "fmt"

// TextStyle collects the text attributes that affect layout.
type TextStyle struct {
	Size float32 // font size in points
}

// Point is a position or displacement in layout space, in points.
// Y grows downwards.
type Point struct {
	X, Y float32
}

// Add returns the vector sum of two points.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the vector difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y)
}
