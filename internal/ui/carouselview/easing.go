package carouselview

import "math"

// Ease matches CSS ease, the default timing of a track transition.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// Linear returns progress unchanged.
func Linear(t float64) float64 {
	return clampUnit(t)
}

// CubicBezier returns an easing function matching CSS cubic-bezier().
// The curve runs from (0,0) to (1,1) through control points (x1,y1) and
// (x2,y2).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// Newton-Raphson for u with x(u) = t
		u := t
		for range 8 {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezier(y1, y2, clampUnit(u))
			}
			dx := bezierSlope(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// bisection when Newton stalls
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 16 {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) / 2
		}
		return bezier(y1, y2, u)
	}
}

func bezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	return min(max(v, 0), 1)
}
