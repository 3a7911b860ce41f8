package math

import "math"

// Pi as float32, for angle math without repeated casts.
const Pi = float32(math.Pi)

// Clamp limits v to the range [min, max].
func Clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Lerp returns the linear interpolation between a and b at t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// MoveToward moves v toward target by at most step, without overshooting.
// Used for steering intent integration and natural speed decay.
func MoveToward(v, target, step float32) float32 {
	if v < target {
		v += step
		if v > target {
			return target
		}
		return v
	}
	if v > target {
		v -= step
		if v < target {
			return target
		}
	}
	return v
}

// WrapAngle wraps an angle in radians to the range (-Pi, Pi].
func WrapAngle(a float32) float32 {
	for a > Pi {
		a -= 2 * Pi
	}
	for a <= -Pi {
		a += 2 * Pi
	}
	return a
}

// Sin returns the sine of a float32 angle.
func Sin(a float32) float32 {
	return float32(math.Sin(float64(a)))
}

// Cos returns the cosine of a float32 angle.
func Cos(a float32) float32 {
	return float32(math.Cos(float64(a)))
}

// Atan2 returns the arc tangent of y/x for float32 operands.
func Atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

// Abs returns the absolute value of a float32.
func Abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
