package element

import "fmt"

type Point struct {
	X, Y float64
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func Pt(x, y float64) Point {
	return Point{x, y}
}

//----------

// Axis aligned box: origin plus size.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Origin() Point {
	return Point{r.X, r.Y}
}

func (r Rect) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// Inclusive on all edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Square of the given side centered on p.
func SquareAt(p Point, side float64) Rect {
	return Rect{p.X - side/2, p.Y - side/2, side, side}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}
