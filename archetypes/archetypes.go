package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sunstone-games/rushcore/components"
	cfg "github.com/sunstone-games/rushcore/config"
	"github.com/sunstone-games/rushcore/tags"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Position,
		components.Health,
		components.Shield,
		components.Combat,
		components.Defense,
		components.Ability,
		components.ActiveStatus,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Position,
		components.Health,
		components.Combat,
		components.Defense,
		components.ActiveStatus,
	)
	Boss = newArchetype(
		tags.Enemy,
		tags.Boss,
		components.Boss,
		components.Position,
		components.Health,
		components.Combat,
		components.Defense,
		components.ActiveStatus,
	)
	MidBoss = newArchetype(
		tags.Enemy,
		tags.Boss,
		tags.MidBoss,
		components.Boss,
		components.Position,
		components.Health,
		components.Combat,
		components.Defense,
		components.ActiveStatus,
	)
	Minion = newArchetype(
		tags.Enemy,
		tags.Minion,
		components.Minion,
		components.Position,
		components.Health,
		components.Combat,
		components.Defense,
		components.ActiveStatus,
	)
	AttackIntent = newArchetype(
		tags.AttackIntent,
		components.AttackIntent,
	)
	Clock = newArchetype(
		components.Clock,
		components.Random,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(e *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	entry := e.World.Entry(e.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return entry
}
