package gamemath

import (
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

func TestResistanceMultiplier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		resist float32
		want   float32
	}{
		{0, 1},
		{50, 0.5},
		{100, 0},
		{150, 0},
		{-20, 1},
	}
	for _, tt := range tests {
		if got := ResistanceMultiplier(tt.resist); got != tt.want {
			t.Errorf("ResistanceMultiplier(%v) = %v, want %v", tt.resist, got, tt.want)
		}
	}
}

func TestComposeReductions(t *testing.T) {
	t.Parallel()

	// Two 50% layers leave a quarter of the damage.
	if got := ComposeReductions(0.5, 0.5); got != 0.25 {
		t.Errorf("ComposeReductions(0.5, 0.5) = %v, want 0.25", got)
	}
	// A full layer zeroes it regardless of the others.
	if got := ComposeReductions(0.2, 1.0); got != 0 {
		t.Errorf("ComposeReductions(0.2, 1.0) = %v, want 0", got)
	}
	// Out-of-range fractions clamp instead of flipping sign.
	if got := ComposeReductions(3.0); got != 0 {
		t.Errorf("ComposeReductions(3.0) = %v, want 0", got)
	}
	if got := ComposeReductions(-1.0); got != 1 {
		t.Errorf("ComposeReductions(-1.0) = %v, want 1", got)
	}
	if got := ComposeReductions(); got != 1 {
		t.Errorf("ComposeReductions() = %v, want 1", got)
	}
}

func TestAreaFalloff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                    string
		distance, radius, floor float32
		want                    float32
	}{
		{"center", 0, 5, 0.2, 1},
		{"edge hits floor", 5, 5, 0.2, 0.2},
		{"midpoint", 2.5, 5, 0.2, 0.6},
		{"beyond radius misses", 5.01, 5, 0.2, 0},
		{"zero radius means point attack", 3, 0, 0.2, 1},
		{"negative distance treated as center", -1, 5, 0.2, 1},
		{"floor one is flat", 4, 5, 1, 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := AreaFalloff(tt.distance, tt.radius, tt.floor)
			if diff := got - tt.want; diff > 1e-6 || diff < -1e-6 {
				t.Fatalf("AreaFalloff(%v, %v, %v) = %v, want %v",
					tt.distance, tt.radius, tt.floor, got, tt.want)
			}
		})
	}
}

func TestAreaFalloffMonotonicInDistance(t *testing.T) {
	t.Parallel()

	prev := float32(2)
	for d := float32(0); d <= 5; d += 0.5 {
		got := AreaFalloff(d, 5, 0.2)
		if got > prev {
			t.Fatalf("falloff increased with distance at %v: %v > %v", d, got, prev)
		}
		prev = got
	}
}

func TestDistance(t *testing.T) {
	t.Parallel()

	got := Distance(dmath.Vec2{X: 0, Y: 0}, dmath.Vec2{X: 3, Y: 4})
	if got != 5 {
		t.Fatalf("Distance = %v, want 5", got)
	}
	if d := Distance(dmath.Vec2{X: 1, Y: 1}, dmath.Vec2{X: 1, Y: 1}); d != 0 {
		t.Fatalf("Distance of identical points = %v, want 0", d)
	}
}
