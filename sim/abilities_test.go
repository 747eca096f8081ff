package sim

import (
	"testing"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/sunstone-games/rushcore/components"
	"github.com/sunstone-games/rushcore/config"
	"github.com/sunstone-games/rushcore/events"
)

func TestHeatAuraPulsesEnemiesInRange(t *testing.T) {
	t.Parallel()

	s := New(1)
	ember := mustSpawnCharacter(t, s, config.KindEmber, dmath.Vec2{X: 0})
	inRange := mustSpawnBoss(t, s, "glitch_warden", dmath.Vec2{X: 2})
	outRange := mustSpawnBoss(t, s, "junkyard_colossus", dmath.Vec2{X: 10})

	pulses := map[donburi.Entity]int{}
	events.DamageReceived.Subscribe(s.World(), func(w donburi.World, ev events.DamageReceivedData) {
		// Aura pulses hit for exactly 6 against the warden; burn ticks,
		// if the status roll lands, come in at a different amount.
		if ev.DamageType == config.DamageFire && ev.Amount == 6 {
			pulses[ev.Target]++
		}
	})

	// The aura runs 4s and pulses every 0.5s; the expiry step does not
	// pulse, so seven rings come out.
	s.RequestActivation(ember.Entity())
	for i := 0; i < 10; i++ {
		s.Step(step)
	}

	if got := pulses[inRange.Entity()]; got != 7 {
		t.Fatalf("pulses on in-range enemy = %d, want 7", got)
	}
	if got := pulses[outRange.Entity()]; got != 0 {
		t.Fatalf("pulses on out-of-range enemy = %d, want 0", got)
	}
	if components.Ability.Get(ember).Active {
		t.Fatal("aura must be off after its duration")
	}
}

func TestDashDodgesPhysicalWhileActive(t *testing.T) {
	t.Parallel()

	s := New(1)
	hero := mustSpawnCharacter(t, s, config.KindDart, dmath.Vec2{})

	dodged, received := 0, 0
	events.DamageBlocked.Subscribe(s.World(), func(w donburi.World, ev events.DamageBlockedData) {
		if ev.Reason == config.BlockDodge {
			dodged++
		}
	})
	events.DamageReceived.Subscribe(s.World(), func(w donburi.World, ev events.DamageReceivedData) {
		received++
	})

	hit := func(dt config.DamageType) components.AttackIntentData {
		return components.AttackIntentData{
			Target:     hero.Entity(),
			BaseDamage: 5,
			DamageType: dt,
		}
	}

	// While the penetrating dash runs, physical hits slip past but
	// elemental ones still land.
	s.RequestActivation(hero.Entity())
	s.SubmitAttack(hit(config.DamagePhysical))
	s.SubmitAttack(hit(config.DamageIce))
	s.Step(step)

	if dodged != 1 {
		t.Fatalf("dodged = %d, want the physical hit dodged", dodged)
	}
	if received != 1 {
		t.Fatalf("received = %d, want the ice hit landed", received)
	}

	// After the dash ends, physical hits land again.
	for i := 0; i < 3; i++ {
		s.Step(step)
	}
	s.SubmitAttack(hit(config.DamagePhysical))
	s.Step(step)
	if dodged != 1 || received != 2 {
		t.Fatalf("post-dash dodged=%d received=%d, want 1/2", dodged, received)
	}
}

func TestGlitchGrantsTeleportAndInvulnerability(t *testing.T) {
	t.Parallel()

	s := New(1)
	pixel := mustSpawnCharacter(t, s, config.KindPixel, dmath.Vec2{X: 3, Y: 1})

	blocked := map[config.BlockReason]int{}
	events.DamageBlocked.Subscribe(s.World(), func(w donburi.World, ev events.DamageBlockedData) {
		blocked[ev.Reason]++
	})
	received := 0
	events.DamageReceived.Subscribe(s.World(), func(w donburi.World, ev events.DamageReceivedData) {
		received++
	})

	s.RequestActivation(pixel.Entity())
	s.SubmitAttack(components.AttackIntentData{
		Target:     pixel.Entity(),
		BaseDamage: 5,
		DamageType: config.DamagePhysical,
	})
	s.Step(step)

	ability := components.Ability.Get(pixel)
	want := dmath.Vec2{X: 8, Y: 1}
	if ability.TeleportTarget != want {
		t.Fatalf("teleport target = %+v, want %+v", ability.TeleportTarget, want)
	}
	// The hit arrived inside the 0.75s glitch window.
	if blocked[config.BlockInvulnerability] != 1 {
		t.Fatalf("blocked = %v, want one invulnerability block", blocked)
	}

	// The window has closed but the glitch still runs: digital damage is
	// ignored outright, physical lands.
	s.Step(step)
	s.SubmitAttack(components.AttackIntentData{
		Target:     pixel.Entity(),
		BaseDamage: 5,
		DamageType: config.DamageDigital,
	})
	s.SubmitAttack(components.AttackIntentData{
		Target:     pixel.Entity(),
		BaseDamage: 5,
		DamageType: config.DamagePhysical,
	})
	s.Step(step)

	if blocked[config.BlockImmunity] != 1 {
		t.Fatalf("blocked = %v, want one immunity block", blocked)
	}
	if received != 1 {
		t.Fatalf("received = %d, want the physical hit landed", received)
	}
}

func TestFireproofBlocksBurnApplication(t *testing.T) {
	t.Parallel()

	s := New(1)
	cinder := mustSpawnCharacter(t, s, config.KindCinder, dmath.Vec2{})

	applied := 0
	events.StatusApplied.Subscribe(s.World(), func(w donburi.World, ev events.StatusAppliedData) {
		applied++
	})

	// An earth hit with a guaranteed burn rider: the active fireproof body
	// takes the impact damage but refuses the status.
	s.RequestActivation(cinder.Entity())
	s.SubmitAttack(components.AttackIntentData{
		Target:       cinder.Entity(),
		BaseDamage:   10,
		DamageType:   config.DamageEarth,
		Status:       config.StatusBurn,
		StatusChance: 1,
	})
	s.Step(step)

	if applied != 0 {
		t.Fatalf("status applied = %d, want burn refused", applied)
	}
	if components.ActiveStatus.Get(cinder).Has(config.StatusBurn) {
		t.Fatal("burn must not be present")
	}
}

func TestNatureCallRequestsAlliesUpToCapacity(t *testing.T) {
	t.Parallel()

	s := New(1)
	fern := mustSpawnCharacter(t, s, config.KindFern, dmath.Vec2{})

	var slots []int
	events.AllySummonRequested.Subscribe(s.World(), func(w donburi.World, ev events.AllySummonRequestedData) {
		slots = append(slots, ev.Slots)
	})

	s.RequestActivation(fern.Entity())
	s.Step(step)
	if len(slots) != 1 || slots[0] != 3 {
		t.Fatalf("summon requests = %v, want one request for 3 slots", slots)
	}

	ability := components.Ability.Get(fern)
	for i := 0; i < 3; i++ {
		if !ability.AddAlly(donburi.Entity(100 + i)) {
			t.Fatalf("AddAlly %d refused below capacity", i)
		}
	}
	if ability.AddAlly(donburi.Entity(200)) {
		t.Fatal("AddAlly above capacity must refuse")
	}
}

func TestControlLockPreventsActivation(t *testing.T) {
	t.Parallel()

	s := New(1)
	hero := mustSpawnCharacter(t, s, config.KindDart, dmath.Vec2{})

	status := components.ActiveStatus.Get(hero)
	status.Add(components.StatusInstance{
		Effect:    config.StatusStun,
		Remaining: 5,
	})

	activated := 0
	events.AbilityActivated.Subscribe(s.World(), func(w donburi.World, ev events.AbilityActivatedData) {
		activated++
	})

	s.RequestActivation(hero.Entity())
	s.Step(step)
	if activated != 0 {
		t.Fatal("stunned character must not activate")
	}
}
