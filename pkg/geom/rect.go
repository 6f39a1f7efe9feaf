// Package geom provides small geometric value objects.
package geom

import "fmt"

// Rect is a rectangle described by its width and height.
type Rect struct {
	Width, Height float64
}

// NewRect creates a rectangle with the given width and height.
func NewRect(width, height float64) *Rect {
	return &Rect{
		Width:  width,
		Height: height,
	}
}

// Area returns width * height, computed on each call.
func (r *Rect) Area() float64 {
	return r.Width * r.Height
}

// Perimeter returns the total edge length.
func (r *Rect) Perimeter() float64 {
	return 2 * (r.Width + r.Height)
}

// IsEmpty reports whether the rectangle encloses no area.
func (r *Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Scale returns a copy scaled by factor in both dimensions.
func (r *Rect) Scale(factor float64) *Rect {
	return &Rect{Width: r.Width * factor, Height: r.Height * factor}
}

func (r *Rect) String() string {
	return fmt.Sprintf("Rect(width=%.2f, height=%.2f)", r.Width, r.Height)
}
