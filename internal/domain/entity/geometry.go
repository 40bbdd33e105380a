package entity

// Point is a pointer position in screen coordinates (terminal cells).
type Point struct {
	X, Y float64
}

// Rect is a container's bounding box in screen coordinates.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Left+r.Width &&
		p.Y >= r.Top && p.Y < r.Top+r.Height
}
