package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sunstone-games/rushcore/components"
)

// UpdateDeaths ages dying entities and removes them once their linger timer
// runs out. A dead minion hands its slot back to the owning boss, and a dead
// summoner's allies are forgotten by its ability payload.
func UpdateDeaths(e *ecs.ECS) {
	clock := MustClock(e)

	components.Death.Each(e.World, func(entry *donburi.Entry) {
		death := components.Death.Get(entry)
		death.Timer -= clock.Dt
		if death.Timer > 0 {
			return
		}

		if entry.HasComponent(components.Minion) {
			releaseMinionSlot(e, entry)
		}
		forgetAlly(e, entry.Entity())

		e.World.Remove(entry.Entity())
	})
}

func releaseMinionSlot(e *ecs.ECS, entry *donburi.Entry) {
	minion := components.Minion.Get(entry)
	if !e.World.Valid(minion.Owner) {
		return
	}
	owner := e.World.Entry(minion.Owner)
	if !owner.HasComponent(components.Boss) {
		return
	}
	boss := components.Boss.Get(owner)
	if boss.MinionCount > 0 {
		boss.MinionCount--
	}
}

func forgetAlly(e *ecs.ECS, dead donburi.Entity) {
	for entry := range components.Ability.Iter(e.World) {
		components.Ability.Get(entry).RemoveAlly(dead)
	}
}
