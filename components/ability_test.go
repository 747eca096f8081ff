package components

import (
	"testing"

	"github.com/sunstone-games/rushcore/config"
)

func testAbility(duration, cooldown float64) AbilityData {
	return NewAbility(config.AbilityConfig{
		Kind:     config.AbilityDash,
		Duration: duration,
		Cooldown: cooldown,
	})
}

// timerState snapshots the comparable state machine fields.
func timerState(a *AbilityData) [4]float64 {
	active := 0.0
	if a.Active {
		active = 1
	}
	return [4]float64{a.Remaining, a.CooldownRemaining, active, a.Duration}
}

// checkAvailability asserts the availability invariant after every call:
// available exactly when inactive with no cooldown left.
func checkAvailability(t *testing.T, a *AbilityData) {
	t.Helper()
	want := !a.Active && a.CooldownRemaining <= 0
	if a.Available() != want {
		t.Fatalf("availability invariant broken: active=%v cooldown=%v available=%v",
			a.Active, a.CooldownRemaining, a.Available())
	}
}

func TestAbilityLifecycle(t *testing.T) {
	t.Parallel()

	a := testAbility(2.0, 5.0)
	if !a.Available() {
		t.Fatal("fresh ability should be available")
	}

	if !a.Activate() {
		t.Fatal("activation of an available ability must succeed")
	}
	checkAvailability(t, &a)
	if !a.Active || a.Remaining != 2.0 {
		t.Fatalf("after activation: active=%v remaining=%v", a.Active, a.Remaining)
	}

	// Full duration elapses in one tick: transition to cooldown.
	if !a.Update(2.0) {
		t.Fatal("expiry must report a transition")
	}
	checkAvailability(t, &a)
	if a.Active {
		t.Fatal("ability still active after expiry")
	}
	if a.CooldownRemaining != 5.0 {
		t.Fatalf("cooldown = %v, want 5.0", a.CooldownRemaining)
	}

	// Cooldown elapses: back to available.
	if !a.Update(5.0) {
		t.Fatal("cooldown completion must report a transition")
	}
	checkAvailability(t, &a)
	if a.CooldownRemaining != 0 || !a.Available() {
		t.Fatalf("after cooldown: remaining=%v available=%v", a.CooldownRemaining, a.Available())
	}
}

func TestAbilityActivateWhileUnavailableIsNoop(t *testing.T) {
	t.Parallel()

	a := testAbility(2.0, 5.0)
	a.Activate()
	a.Update(0.5)
	before := timerState(&a)

	if a.Activate() {
		t.Fatal("activation must fail while active")
	}
	if timerState(&a) != before {
		t.Fatalf("failed activation mutated state: %+v -> %+v", before, timerState(&a))
	}

	a.Update(1.5) // expires into cooldown
	before = timerState(&a)
	if a.Activate() {
		t.Fatal("activation must fail during cooldown")
	}
	if timerState(&a) != before {
		t.Fatalf("failed activation mutated state: %+v -> %+v", before, timerState(&a))
	}
}

func TestAbilityExpiryBeatsSameTickActivation(t *testing.T) {
	t.Parallel()

	// Zero cooldown so only the expiry itself can make the request fail.
	a := testAbility(1.0, 0)
	a.Activate()

	// The expiry tick: remaining and dt cancel exactly.
	if !a.Update(1.0) {
		t.Fatal("exact cancellation must deactivate")
	}
	if a.Active {
		t.Fatal("ability must be inactive after exact expiry")
	}

	// A request issued the following tick succeeds.
	if !a.Activate() {
		t.Fatal("re-issued activation must succeed with zero cooldown")
	}
}

func TestAbilityDeactivateIdempotent(t *testing.T) {
	t.Parallel()

	a := testAbility(3.0, 4.0)
	a.Activate()
	a.Deactivate()
	first := timerState(&a)
	a.Deactivate()
	if timerState(&a) != first {
		t.Fatalf("second Deactivate changed state: %+v -> %+v", first, timerState(&a))
	}
	if a.Active || a.Remaining != 0 || a.CooldownRemaining != 4.0 {
		t.Fatalf("after deactivate: %+v", a)
	}
}

func TestAbilityCooldownMonotonic(t *testing.T) {
	t.Parallel()

	a := testAbility(1.0, 3.0)
	a.Activate()
	a.Update(1.0)

	prev := a.CooldownRemaining
	for _, dt := range []float64{0, 0.5, 0.1, 1.7, 2.0, 0.3} {
		a.Update(dt)
		if a.CooldownRemaining > prev {
			t.Fatalf("cooldown increased: %v -> %v", prev, a.CooldownRemaining)
		}
		if a.CooldownRemaining < 0 {
			t.Fatalf("cooldown went negative: %v", a.CooldownRemaining)
		}
		prev = a.CooldownRemaining
	}
}

func TestAbilityUpdateReportsTransitions(t *testing.T) {
	t.Parallel()

	a := testAbility(1.0, 2.0)
	if a.Update(0.5) {
		t.Fatal("idle update must not report a transition")
	}
	a.Activate()
	if a.Update(0.4) {
		t.Fatal("mid-duration update must not report a transition")
	}
	if !a.Update(0.6) {
		t.Fatal("expiry must report a transition")
	}
	if a.Update(1.0) {
		t.Fatal("mid-cooldown update must not report a transition")
	}
	if !a.Update(1.5) {
		t.Fatal("cooldown crossing zero must report a transition")
	}
	if a.Update(1.0) {
		t.Fatal("idle update after cooldown must not report a transition")
	}
}

func TestAbilityImmunityGrants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind    config.AbilityKind
		blocks  config.DamageType
		ignores config.DamageType
	}{
		{config.AbilityFireproofBody, config.DamageFire, config.DamageIce},
		{config.AbilityAirBubble, config.DamageWater, config.DamageFire},
		{config.AbilityControlledGlitch, config.DamageDigital, config.DamagePhysical},
	}
	for _, tt := range tests {
		a := NewAbility(config.AbilityConfig{Kind: tt.kind, Duration: 1, Cooldown: 1})
		if a.GrantsImmunity(tt.blocks) {
			t.Fatalf("%s: inactive ability must not grant immunity", tt.kind)
		}
		a.Activate()
		if !a.GrantsImmunity(tt.blocks) {
			t.Fatalf("%s: active ability must grant %s immunity", tt.kind, tt.blocks)
		}
		if a.GrantsImmunity(tt.ignores) {
			t.Fatalf("%s: must not grant %s immunity", tt.kind, tt.ignores)
		}
	}
}

func TestNatureCallAllyCapacity(t *testing.T) {
	t.Parallel()

	a := NewAbility(config.AbilityConfig{Kind: config.AbilityNatureCall, Duration: 5, Cooldown: 10, MaxAllies: 2})
	if !a.AddAlly(1) || !a.AddAlly(2) {
		t.Fatal("allies within capacity must be accepted")
	}
	if a.AddAlly(3) {
		t.Fatal("ally past capacity must be refused")
	}
	a.RemoveAlly(1)
	if !a.AddAlly(3) {
		t.Fatal("freed slot must be reusable")
	}
}
