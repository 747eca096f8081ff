package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sunstone-games/rushcore/components"
	"github.com/sunstone-games/rushcore/config"
	"github.com/sunstone-games/rushcore/events"
	"github.com/sunstone-games/rushcore/gamemath"
	"github.com/sunstone-games/rushcore/tags"
)

// UpdateAbilities advances every ability state machine by the current step's
// dt, emits expiry events, and runs the active-ability side behavior (heat
// aura pulses, glitch invulnerability).
func UpdateAbilities(e *ecs.ECS) {
	clock := MustClock(e)

	for entry := range components.Ability.Iter(e.World) {
		if entry.HasComponent(components.Death) {
			continue
		}
		ability := components.Ability.Get(entry)
		wasActive := ability.Active

		ability.Update(clock.Dt)

		if wasActive && !ability.Active {
			events.AbilityExpired.Publish(e.World, events.AbilityExpiredData{
				Entity: entry.Entity(),
				Kind:   ability.Kind,
			})
		}

		if ability.Active && ability.Kind == config.AbilityHeatAura {
			updateHeatAura(e, entry, ability, clock)
		}
	}

	for entry := range components.Invulnerable.Iter(e.World) {
		inv := components.Invulnerable.Get(entry)
		inv.Remaining -= clock.Dt
		if inv.Remaining <= 0 {
			donburi.Remove[components.InvulnerableData](entry, components.Invulnerable)
		}
	}
}

// TryActivate attempts to activate an entity's ability. Control-locked and
// dying entities cannot activate; an unavailable ability is a quiet refusal.
// On success the activation event is published and kind-specific effects
// (teleport window, ally summon request) kick in.
func TryActivate(e *ecs.ECS, entry *donburi.Entry) bool {
	if entry.HasComponent(components.Death) {
		return false
	}
	if entry.HasComponent(components.ActiveStatus) {
		if components.ActiveStatus.Get(entry).ControlLocked() {
			return false
		}
	}
	ability := components.Ability.Get(entry)
	if !ability.Activate() {
		return false
	}

	pos := components.Position.Get(entry)

	switch ability.Kind {
	case config.AbilityControlledGlitch:
		// Teleport target is forward along the lane; the host moves the
		// entity, the core only records the destination.
		ability.TeleportTarget = pos.Vec2
		ability.TeleportTarget.X += ability.TeleportDistance
		if ability.InvulnTime > 0 {
			donburi.Add(entry, components.Invulnerable, &components.InvulnerableData{
				Remaining: ability.InvulnTime,
			})
		}
	case config.AbilityNatureCall:
		slots := ability.MaxAllies - len(ability.Allies)
		if slots > 0 {
			events.AllySummonRequested.Publish(e.World, events.AllySummonRequestedData{
				Summoner: entry.Entity(),
				Position: pos.Vec2,
				Slots:    slots,
			})
		}
	}

	events.AbilityActivated.Publish(e.World, events.AbilityActivatedData{
		Entity:   entry.Entity(),
		Kind:     ability.Kind,
		Position: pos.Vec2,
		Duration: ability.Duration,
	})
	return true
}

// updateHeatAura emits a ring of fire intents against enemies inside the
// aura radius each time the pulse timer wraps. Aura damage goes through the
// regular intent pipeline so resistances and armor apply normally.
func updateHeatAura(e *ecs.ECS, owner *donburi.Entry, ability *components.AbilityData, clock *components.ClockData) {
	ability.PulseTimer -= clock.Dt
	if ability.PulseTimer > 0 {
		return
	}
	ability.PulseTimer = ability.PulseInterval

	SpawnAuraPulse(e, owner, ability)
}

// SpawnAuraPulse creates one AOE fire intent per enemy in aura range.
func SpawnAuraPulse(e *ecs.ECS, owner *donburi.Entry, ability *components.AbilityData) {
	clock := MustClock(e)
	origin := components.Position.Get(owner)

	tags.Enemy.Each(e.World, func(target *donburi.Entry) {
		if target.HasComponent(components.Death) {
			return
		}
		targetPos := components.Position.Get(target)
		if gamemath.Distance(origin.Vec2, targetPos.Vec2) > ability.Radius {
			return
		}
		SpawnIntent(e, components.AttackIntentData{
			Seq:        clock.NextSeq(),
			Source:     owner.Entity(),
			Target:     target.Entity(),
			BaseDamage: ability.PulseDamage,
			DamageType: config.DamageFire,
			Pattern:    config.PatternAOE,
			AreaEffect: true,
			AreaRadius: float32(ability.Radius),
			// Aura pulses hit anywhere inside the radius at full strength.
			AreaFalloff:  1,
			Status:       config.StatusBurn,
			StatusChance: 0.2,
		})
	})
}

// MustClock returns the clock singleton. The simulation driver creates it
// before any system runs.
func MustClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		panic("simulation clock entity missing")
	}
	return components.Clock.Get(entry)
}

// MustRandom returns the seeded random source singleton.
func MustRandom(e *ecs.ECS) *components.RandomData {
	entry, ok := components.Random.First(e.World)
	if !ok {
		panic("simulation random entity missing")
	}
	return components.Random.Get(entry)
}
