package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sunstone-games/rushcore/components"
	"github.com/sunstone-games/rushcore/config"
	"github.com/sunstone-games/rushcore/events"
)

// UpdateStatusEffects ages every active status instance, deals periodic
// damage for the damaging ones, and expires instances whose time ran out.
// DoT ticks are submitted as DoT-pattern intents so resistances, armor and
// death handling work exactly like any other hit.
func UpdateStatusEffects(e *ecs.ECS) {
	clock := MustClock(e)

	for entry := range components.ActiveStatus.Iter(e.World) {
		if entry.HasComponent(components.Death) {
			continue
		}
		status := components.ActiveStatus.Get(entry)
		kept := status.Instances[:0]

		for i := range status.Instances {
			inst := &status.Instances[i]
			inst.Remaining -= clock.Dt

			if inst.Effect.IsDamaging() {
				inst.TickTimer -= clock.Dt
				if inst.TickTimer <= 0 {
					inst.TickTimer += config.Combat.StatusTickInterval
					spawnDoTTick(e, entry, inst, clock)
				}
			}

			if inst.Remaining <= 0 {
				events.StatusExpired.Publish(e.World, events.StatusExpiredData{
					Target: entry.Entity(),
					Effect: inst.Effect,
				})
				continue
			}
			kept = append(kept, *inst)
		}
		status.Instances = kept
	}
}

func spawnDoTTick(e *ecs.ECS, target *donburi.Entry, inst *components.StatusInstance, clock *components.ClockData) {
	damage := config.Combat.StatusTickDamage[inst.Effect]
	if damage <= 0 {
		return
	}
	SpawnIntent(e, components.AttackIntentData{
		Seq:        clock.NextSeq(),
		Source:     inst.Source,
		Target:     target.Entity(),
		BaseDamage: damage,
		DamageType: inst.Effect.DoTDamageType(),
		Pattern:    config.PatternDoT,
	})
}
