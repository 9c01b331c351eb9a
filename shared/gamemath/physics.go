package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps speed to [-limit, limit].
func ClampSpeed(speed, limit float64) float64 {
	if speed > limit {
		return limit
	}
	if speed < -limit {
		return -limit
	}
	return speed
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Signum returns -1 when v has its sign bit set and 1 otherwise, so +0 maps
// to 1 and -0 to -1.
func Signum(v float64) float64 {
	if math.Signbit(v) {
		return -1
	}
	return 1
}
