package factory

import (
	"log"
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/sunstone-games/rushcore/archetypes"
	"github.com/sunstone-games/rushcore/components"
	"github.com/sunstone-games/rushcore/config"
)

// CreateClock spawns the clock and random-source singletons. Must run before
// any system update.
func CreateClock(e *ecs.ECS, seed int64) *donburi.Entry {
	entry := archetypes.Clock.Spawn(e)
	components.Clock.SetValue(entry, components.ClockData{})
	components.Random.SetValue(entry, components.RandomData{
		Rand: rand.New(rand.NewSource(seed)),
	})
	return entry
}

// CreateCharacter spawns a playable character from a tuning preset. Invalid
// presets are fatal to the spawn: the entity is not created and the reason
// is logged, per the configuration error policy.
func CreateCharacter(e *ecs.ECS, kind config.CharacterKind, tier config.Tier, pos dmath.Vec2) (*donburi.Entry, error) {
	cfg := config.CharacterTuning(kind, tier)
	if err := cfg.Validate(); err != nil {
		log.Printf("refusing to spawn character %s: %v", cfg.Name, err)
		return nil, err
	}

	entry := archetypes.Character.Spawn(e)
	components.Character.SetValue(entry, components.CharacterData{Kind: cfg.Kind, Name: cfg.Name})
	components.Position.SetValue(entry, components.PositionData{Vec2: pos})
	components.Health.SetValue(entry, components.HealthData{Current: cfg.MaxHealth, Max: cfg.MaxHealth})
	components.Shield.SetValue(entry, components.ShieldData{Current: cfg.MaxShield, Max: cfg.MaxShield})
	components.Combat.SetValue(entry, components.NewCombat(cfg.Combat))
	components.Defense.SetValue(entry, components.NewDefense(cfg.Defense))
	components.Ability.SetValue(entry, components.NewAbility(cfg.Ability))
	if cfg.Armor != nil {
		armor := components.NewArmor(*cfg.Armor)
		donburi.Add(entry, components.Armor, &armor)
	}
	return entry, nil
}

// CreateBoss spawns a boss or mid-boss from a named preset. The encounter
// starts inactive; the host activates it via systems.ActivateBoss.
func CreateBoss(e *ecs.ECS, name string, tier config.Tier, pos dmath.Vec2) (*donburi.Entry, error) {
	cfg := config.BossTuning(name, tier)
	if err := cfg.Validate(); err != nil {
		log.Printf("refusing to spawn boss %s: %v", name, err)
		return nil, err
	}

	arch := archetypes.Boss
	if cfg.MidBoss {
		arch = archetypes.MidBoss
	}
	entry := arch.Spawn(e)
	components.Boss.SetValue(entry, components.NewBoss(cfg))
	components.Position.SetValue(entry, components.PositionData{Vec2: pos})
	components.Health.SetValue(entry, components.HealthData{Current: cfg.MaxHealth, Max: cfg.MaxHealth})
	components.Combat.SetValue(entry, components.NewCombat(cfg.Combat))
	components.Defense.SetValue(entry, components.NewDefense(cfg.Defense))
	if cfg.Armor != nil {
		armor := components.NewArmor(*cfg.Armor)
		donburi.Add(entry, components.Armor, &armor)
	}
	if len(cfg.Immunities) > 0 {
		donburi.Add(entry, components.Immunity, &components.ImmunityData{
			Types: append([]config.DamageType(nil), cfg.Immunities...),
		})
	}
	return entry, nil
}

// CreateMinion spawns a boss minion and charges it against the owner's
// minion count. Callers should have checked CanSpawnMinion; the count cap is
// enforced here regardless.
func CreateMinion(e *ecs.ECS, owner *donburi.Entry, pos dmath.Vec2) (*donburi.Entry, bool) {
	boss := components.Boss.Get(owner)
	if boss.MinionCount >= boss.Config.MinionMax {
		return nil, false
	}
	boss.MinionCount++

	entry := archetypes.Minion.Spawn(e)
	components.Minion.SetValue(entry, components.MinionData{Owner: owner.Entity()})
	components.Position.SetValue(entry, components.PositionData{Vec2: pos})
	components.Health.SetValue(entry, components.HealthData{
		Current: boss.Config.MinionHealth,
		Max:     boss.Config.MinionHealth,
	})
	components.Combat.SetValue(entry, components.CombatData{
		BaseDamage:         boss.Config.Combat.BaseDamage * 0.25,
		CurrentDamage:      boss.Config.Combat.BaseDamage * 0.25,
		CriticalMultiplier: 1,
		AttackRange:        1,
	})
	components.Defense.SetValue(entry, components.DefenseData{})
	return entry, true
}
