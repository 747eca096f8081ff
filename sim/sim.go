package sim

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	devents "github.com/yohamta/donburi/features/events"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/sunstone-games/rushcore/components"
	"github.com/sunstone-games/rushcore/config"
	"github.com/sunstone-games/rushcore/events"
	"github.com/sunstone-games/rushcore/systems"
	"github.com/sunstone-games/rushcore/systems/factory"
)

// Simulation drives the gameplay core. It owns the world, advances every
// state machine exactly once per Step, and drains the event bus at the step
// boundary so an event from tick t becomes visible before tick t+1, never
// mid-tick.
//
// Inbound stimuli (ability activation requests, attack intents) are queued
// and applied at the start of the next Step, in submission order.
type Simulation struct {
	ecs *ecs.ECS

	pendingActivations []donburi.Entity
	pendingIntents     []components.AttackIntentData
}

// New creates an empty simulation with a seeded random source. The same seed
// and the same inbound sequence replay to the identical event stream.
func New(seed int64) *Simulation {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e, seed)

	// Fixed system order: ability timers first so availability is settled,
	// then boss machines (may emit intents), statuses (may emit DoT ticks),
	// then combat resolution over everything emitted, then deaths.
	e.AddSystem(systems.UpdateAbilities)
	e.AddSystem(systems.UpdateBosses)
	e.AddSystem(systems.UpdateStatusEffects)
	e.AddSystem(systems.UpdateCombat)
	e.AddSystem(systems.UpdateDeaths)

	return &Simulation{ecs: e}
}

// ECS exposes the underlying store for spawning and queries.
func (s *Simulation) ECS() *ecs.ECS { return s.ecs }

// World exposes the entity store, mainly for event subscriptions.
func (s *Simulation) World() donburi.World { return s.ecs.World }

// RequestActivation queues an ability activation for the entity. Applied at
// the start of the next Step; an ability that expires during that same step
// rejects the request, and the caller has to re-issue it.
func (s *Simulation) RequestActivation(entity donburi.Entity) {
	s.pendingActivations = append(s.pendingActivations, entity)
}

// SubmitAttack queues a raw attack intent. Sequence numbers are assigned on
// application, so submission order is resolution order.
func (s *Simulation) SubmitAttack(intent components.AttackIntentData) {
	s.pendingIntents = append(s.pendingIntents, intent)
}

// SubmitBasicAttack builds a direct-pattern intent from the attacker's
// combat profile and queues it.
func (s *Simulation) SubmitBasicAttack(source, target donburi.Entity) {
	if !s.ecs.World.Valid(source) {
		return
	}
	entry := s.ecs.World.Entry(source)
	if !entry.HasComponent(components.Combat) {
		return
	}
	combat := components.Combat.Get(entry)
	s.SubmitAttack(components.AttackIntentData{
		Source:     source,
		Target:     target,
		BaseDamage: combat.CurrentDamage,
		DamageType: config.DamagePhysical,
		Pattern:    config.PatternDirect,
		CanCrit:    true,
	})
}

// Step advances the simulation by dt seconds.
func (s *Simulation) Step(dt float64) {
	clock := systems.MustClock(s.ecs)
	clock.Dt = dt
	clock.Tick++

	for _, entity := range s.pendingActivations {
		if !s.ecs.World.Valid(entity) {
			continue
		}
		entry := s.ecs.World.Entry(entity)
		if entry.HasComponent(components.Ability) {
			systems.TryActivate(s.ecs, entry)
		}
	}
	s.pendingActivations = s.pendingActivations[:0]

	for _, intent := range s.pendingIntents {
		intent.Seq = clock.NextSeq()
		systems.SpawnIntent(s.ecs, intent)
	}
	s.pendingIntents = s.pendingIntents[:0]

	s.ecs.Update()

	devents.ProcessAllEvents(s.ecs.World)
}

// CollectFragment credits a fragment pickup to a living runner and announces
// it. The host decides what a fragment type is worth; the core only reports
// the absorption.
func (s *Simulation) CollectFragment(entity donburi.Entity, fragmentType, amount int) bool {
	if !s.ecs.World.Valid(entity) {
		return false
	}
	entry := s.ecs.World.Entry(entity)
	if entry.HasComponent(components.Death) {
		return false
	}
	events.FragmentCollected.Publish(s.ecs.World, events.FragmentCollectedData{
		Entity:       entity,
		FragmentType: fragmentType,
		Amount:       amount,
	})
	return true
}

// SpawnCharacter creates a playable character at a lane position.
func (s *Simulation) SpawnCharacter(kind config.CharacterKind, tier config.Tier, pos dmath.Vec2) (*donburi.Entry, error) {
	return factory.CreateCharacter(s.ecs, kind, tier, pos)
}

// SpawnBoss creates a boss encounter, initially inactive.
func (s *Simulation) SpawnBoss(name string, tier config.Tier, pos dmath.Vec2) (*donburi.Entry, error) {
	return factory.CreateBoss(s.ecs, name, tier, pos)
}

// ActivateBoss opens a spawned encounter.
func (s *Simulation) ActivateBoss(entry *donburi.Entry) {
	systems.ActivateBoss(s.ecs, entry)
}

// SpawnMinion fulfils a minion spawn request against the owning boss's cap.
func (s *Simulation) SpawnMinion(owner *donburi.Entry, pos dmath.Vec2) (*donburi.Entry, bool) {
	return factory.CreateMinion(s.ecs, owner, pos)
}
