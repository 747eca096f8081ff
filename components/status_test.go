package components

import (
	"testing"

	"github.com/sunstone-games/rushcore/config"
)

func TestStatusStackCap(t *testing.T) {
	t.Parallel()

	var s ActiveStatusData
	for i := 0; i < config.Combat.StatusMaxStacks; i++ {
		if !s.Add(StatusInstance{Effect: config.StatusBurn, Remaining: 3}) {
			t.Fatalf("stack %d refused below cap", i)
		}
	}
	if s.Add(StatusInstance{Effect: config.StatusBurn, Remaining: 3}) {
		t.Fatal("stack above cap must be refused")
	}
	// The cap is per effect; a different status still fits.
	if !s.Add(StatusInstance{Effect: config.StatusPoison, Remaining: 3}) {
		t.Fatal("different effect must not share the burn cap")
	}
	if !s.Has(config.StatusBurn) || !s.Has(config.StatusPoison) {
		t.Fatal("Has must see both effects")
	}
	if s.Has(config.StatusFreeze) {
		t.Fatal("Has must not report absent effects")
	}
}

func TestStatusControlLocked(t *testing.T) {
	t.Parallel()

	var s ActiveStatusData
	s.Add(StatusInstance{Effect: config.StatusBurn, Remaining: 3})
	if s.ControlLocked() {
		t.Fatal("burn is not a control lock")
	}
	s.Add(StatusInstance{Effect: config.StatusFreeze, Remaining: 1})
	if !s.ControlLocked() {
		t.Fatal("freeze must control-lock")
	}
}

func TestStatusEffectClassification(t *testing.T) {
	t.Parallel()

	damaging := []config.StatusEffect{
		config.StatusBurn, config.StatusPoison, config.StatusCorrupt, config.StatusDrown,
	}
	for _, e := range damaging {
		if !e.IsDamaging() {
			t.Errorf("%v must be damaging", e)
		}
		if e.IsControlLock() {
			t.Errorf("%v must not control-lock", e)
		}
	}

	locking := []config.StatusEffect{
		config.StatusFreeze, config.StatusParalyze, config.StatusStun, config.StatusConfuse,
	}
	for _, e := range locking {
		if !e.IsControlLock() {
			t.Errorf("%v must control-lock", e)
		}
		if e.IsDamaging() {
			t.Errorf("%v must not be damaging", e)
		}
	}

	// Every damaging status deals a concrete damage type and has tick
	// damage configured.
	for _, e := range damaging {
		if e.DoTDamageType() == config.DamagePhysical && e != config.StatusNone {
			// Burn is fire, poison is poison, corrupt is digital, drown is
			// water; none of them fall back to physical.
			t.Errorf("%v has no dedicated damage type", e)
		}
		if config.Combat.StatusTickDamage[e] <= 0 {
			t.Errorf("%v has no tick damage configured", e)
		}
	}
}
