package curve

import (
	"math"
)

// Circle is a full circle. Its perimeter is a closed circular arc, see
// [Circle.Arc].
type Circle struct {
	Center Point
	Radius float64
}

// Arc returns the full counter-clockwise arc starting at angle zero.
func (c Circle) Arc() Arc {
	return Arc{
		Center:     c.Center,
		Radii:      Vec(c.Radius, c.Radius),
		StartAngle: 0,
		SweepAngle: 2 * math.Pi,
	}
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}

// Perimeter returns the circumference 2π|r|.
func (c Circle) Perimeter() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

// Nearest returns the squared distance between pt and the circle, as well as
// the angle of the nearest point on the circle. A point at the center is
// equally far from every point; angle zero is reported for it.
func (c Circle) Nearest(pt Point) (distSq, angle float64) {
	v := pt.Sub(c.Center)
	d := v.Hypot() - math.Abs(c.Radius)
	if v.Hypot2() == 0 {
		return d * d, 0
	}
	angle = v.Angle()
	if c.Radius < 0 {
		angle += math.Pi
	}
	return d * d, AngleNorm(angle)
}
