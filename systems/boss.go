package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sunstone-games/rushcore/components"
	"github.com/sunstone-games/rushcore/config"
	"github.com/sunstone-games/rushcore/events"
	"github.com/sunstone-games/rushcore/gamemath"
	"github.com/sunstone-games/rushcore/tags"
)

// UpdateBosses runs every boss encounter state machine: phase transitions
// against the current health fraction, enrage, the special-ability
// countdown, and minion spawn gating. Health changes themselves come out of
// the combat system; this system only reads their result.
func UpdateBosses(e *ecs.ECS) {
	clock := MustClock(e)

	for entry := range components.Boss.Iter(e.World) {
		if entry.HasComponent(components.Death) {
			continue
		}
		boss := components.Boss.Get(entry)
		if !boss.Activated {
			continue
		}
		health := components.Health.Get(entry)

		// Phase predicate is evaluated once per tick, so a single hit can
		// advance at most one phase even when it crosses two thresholds.
		if boss.ShouldTransition(health.Current, health.Max) {
			phase := boss.AdvancePhase()
			if phase.InvulnTime > 0 {
				donburi.Add(entry, components.Invulnerable, &components.InvulnerableData{
					Remaining: phase.InvulnTime,
				})
			}
			events.PhaseTransition.Publish(e.World, events.PhaseTransitionData{
				Boss:         entry.Entity(),
				NewPhase:     boss.Phase,
				Invulnerable: phase.InvulnTime > 0,
			})
		}

		if boss.ShouldEnrage(health.Fraction()) {
			boss.StartEnrage()
			events.BossEnraged.Publish(e.World, events.BossEnragedData{Boss: entry.Entity()})
		}
		boss.UpdateEnrage(clock.Dt)

		updateBossSpecial(e, entry, boss, health, clock)
		updateMinionGate(e, entry, boss, clock)
	}
}

// ActivateBoss opens the encounter. The trigger itself (proximity, scripted
// cutscene end) belongs to the host; the core just flips the machine on.
func ActivateBoss(e *ecs.ECS, entry *donburi.Entry) {
	boss := components.Boss.Get(entry)
	if boss.Activated {
		return
	}
	boss.Activated = true
	events.PhaseTransition.Publish(e.World, events.PhaseTransitionData{
		Boss:     entry.Entity(),
		NewPhase: 0,
	})
}

func updateBossSpecial(e *ecs.ECS, entry *donburi.Entry, boss *components.BossData, health *components.HealthData, clock *components.ClockData) {
	cfg := boss.Config
	if cfg.SpecialCooldown <= 0 {
		return
	}
	if boss.SpecialRemaining > 0 {
		boss.SpecialRemaining -= clock.Dt
		if boss.SpecialRemaining > 0 {
			return
		}
		boss.SpecialRemaining = 0
	}

	target, dist := nearestCharacter(e, entry)
	triggered := false
	if target != nil && cfg.SpecialTriggerRange > 0 && dist <= cfg.SpecialTriggerRange {
		triggered = true
	}
	if cfg.SpecialHealthTrigger > 0 && health.Fraction() <= cfg.SpecialHealthTrigger {
		triggered = true
	}
	if !triggered || target == nil {
		return
	}

	boss.SpecialRemaining = cfg.SpecialCooldown
	events.BossSpecialTriggered.Publish(e.World, events.BossSpecialTriggeredData{
		Boss:   entry.Entity(),
		Target: target.Entity(),
	})
	spawnTunedIntent(e, entry.Entity(), target.Entity(), cfg.Special, clock)
}

func updateMinionGate(e *ecs.ECS, entry *donburi.Entry, boss *components.BossData, clock *components.ClockData) {
	if boss.MinionRemaining > 0 {
		boss.MinionRemaining -= clock.Dt
		if boss.MinionRemaining < 0 {
			boss.MinionRemaining = 0
		}
	}
	if !boss.CanSpawnMinion() {
		return
	}
	boss.MinionRemaining = boss.Config.MinionSpawnCooldown
	pos := components.Position.Get(entry)
	events.MinionSpawnRequested.Publish(e.World, events.MinionSpawnRequestedData{
		Boss:     entry.Entity(),
		Position: pos.Vec2,
	})
}

// spawnTunedIntent converts an authored attack shape into a live intent.
func spawnTunedIntent(e *ecs.ECS, source, target donburi.Entity, t config.AttackTuning, clock *components.ClockData) {
	SpawnIntent(e, components.AttackIntentData{
		Seq:            clock.NextSeq(),
		Source:         source,
		Target:         target,
		BaseDamage:     t.BaseDamage,
		DamageType:     t.DamageType,
		Pattern:        t.Pattern,
		AreaEffect:     t.AreaEffect,
		AreaRadius:     t.AreaRadius,
		AreaFalloff:    t.AreaFalloff,
		Status:         t.Status,
		StatusChance:   t.StatusChance,
		StatusDuration: t.StatusDuration,
		CanCrit:        true,
	})
}

// nearestCharacter finds the closest living playable character.
func nearestCharacter(e *ecs.ECS, from *donburi.Entry) (*donburi.Entry, float64) {
	origin := components.Position.Get(from)
	var best *donburi.Entry
	bestDist := math.MaxFloat64

	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Death) {
			return
		}
		d := gamemath.Distance(origin.Vec2, components.Position.Get(entry).Vec2)
		if d < bestDist {
			bestDist = d
			best = entry
		}
	})
	return best, bestDist
}
