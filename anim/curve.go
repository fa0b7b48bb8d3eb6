// Package anim provides the timing primitives behind the transition button:
// bezier timing curves, time-driven animations and a keyed animation layer.
package anim

import "math"

// Curve is a cubic-bezier timing function anchored at (0,0) and (1,1)
type Curve struct {
	X1, Y1, X2, Y2 float64
}

var (
	Linear        = Curve{0, 0, 1, 1}
	EaseInEaseOut = Curve{0.42, 0, 0.58, 1}
	// SpringGo decelerates hard at the end after a slight pull back
	SpringGo = Curve{0.45, -0.36, 0.44, 0.92}
	// ExpandCurve stays nearly flat and then accelerates sharply
	ExpandCurve = Curve{0.95, 0.02, 1, 0.05}
)

const curveEpsilon = 1e-6

// Ease maps linear progress t in [0,1] to eased progress.
// Inputs outside [0,1] are clamped.
func (c Curve) Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if c == Linear {
		return t
	}
	return c.sampleY(c.solveX(t))
}

func (c Curve) coefficients(p1, p2 float64) (a, b, k float64) {
	k = 3 * p1
	b = 3*(p2-p1) - k
	a = 1 - k - b
	return a, b, k
}

func (c Curve) sampleX(s float64) float64 {
	a, b, k := c.coefficients(c.X1, c.X2)
	return ((a*s+b)*s + k) * s
}

func (c Curve) sampleY(s float64) float64 {
	a, b, k := c.coefficients(c.Y1, c.Y2)
	return ((a*s+b)*s + k) * s
}

func (c Curve) sampleDerivativeX(s float64) float64 {
	a, b, k := c.coefficients(c.X1, c.X2)
	return (3*a*s+2*b)*s + k
}

// solveX finds the curve parameter whose x equals the given progress.
// Newton first, bisection when the slope is too flat to trust.
func (c Curve) solveX(x float64) float64 {
	s := x
	for i := 0; i < 8; i++ {
		dx := c.sampleX(s) - x
		if math.Abs(dx) < curveEpsilon {
			return s
		}
		d := c.sampleDerivativeX(s)
		if math.Abs(d) < curveEpsilon {
			break
		}
		s -= dx / d
	}

	lo, hi := 0.0, 1.0
	s = x
	for lo < hi {
		v := c.sampleX(s)
		if math.Abs(v-x) < curveEpsilon {
			return s
		}
		if x > v {
			lo = s
		} else {
			hi = s
		}
		next := (hi-lo)/2 + lo
		if next == s {
			break
		}
		s = next
	}
	return s
}
