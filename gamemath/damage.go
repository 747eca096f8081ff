package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Clamp01 clamps a fraction to [0,1].
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ClampPercent clamps a percentage to [0,100].
func ClampPercent(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ResistanceMultiplier converts a percentage resistance into the damage
// multiplier it leaves behind.
func ResistanceMultiplier(resistPct float32) float32 {
	return 1 - ClampPercent(resistPct)/100
}

// ComposeReductions stacks fractional reductions multiplicatively and
// returns the surviving damage multiplier. Reductions never add; two 50%
// layers leave 25% of the damage, not zero.
func ComposeReductions(fracs ...float32) float32 {
	m := float32(1)
	for _, f := range fracs {
		m *= 1 - Clamp01(f)
	}
	return m
}

// AreaFalloff returns the damage multiplier for a target at the given
// distance from an area attack's center. Falloff is linear from full damage
// at the center down to the floor fraction at the edge; beyond the radius
// the attack misses entirely.
func AreaFalloff(distance, radius, floor float32) float32 {
	if radius <= 0 {
		return 1
	}
	if distance < 0 {
		distance = 0
	}
	if distance > radius {
		return 0
	}
	floor = Clamp01(floor)
	return floor + (1-floor)*(1-distance/radius)
}

// Distance returns the euclidean distance between two points.
func Distance(a, b dmath.Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
