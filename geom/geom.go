// Package geom holds the small amount of planar geometry the button and its
// spinner need. Units are abstract points; the renderer decides how points
// map onto terminal cells.
package geom

import "math"

type Point struct {
	X, Y float64
}

type Size struct {
	W, H float64
}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Arc is a circular arc path. Angles are in radians with 0 pointing right;
// -π/2 is 12 o'clock. Clockwise is in screen space (y grows downward).
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
}

// Sweep returns the signed angular extent travelled from start to end
func (a Arc) Sweep() float64 {
	return a.EndAngle - a.StartAngle
}

// Length returns the arc length
func (a Arc) Length() float64 {
	return math.Abs(a.Sweep()) * a.Radius
}

// PointAt returns the point at the given fraction (0..1) along the arc.
func (a Arc) PointAt(fraction float64) Point {
	angle := a.StartAngle + a.Sweep()*fraction
	return Point{
		X: a.Center.X + a.Radius*math.Cos(angle),
		Y: a.Center.Y + a.Radius*math.Sin(angle),
	}
}
