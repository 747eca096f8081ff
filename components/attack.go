package components

import (
	"github.com/yohamta/donburi"

	"github.com/sunstone-games/rushcore/config"
)

// AttackIntentData describes a potential damage-causing interaction between
// two entities. Intents are spawned as transient entities, resolved exactly
// once by the combat system in submission order, and removed the same tick.
type AttackIntentData struct {
	// Seq orders intents within a tick. Assigned from the clock at spawn;
	// resolution happens in ascending Seq order so replays are stable
	// regardless of storage iteration order.
	Seq uint64

	Source donburi.Entity
	Target donburi.Entity

	BaseDamage float32
	DamageType config.DamageType
	Pattern    config.AttackPattern

	AreaEffect  bool
	AreaRadius  float32
	AreaFalloff float32 // damage fraction at the area edge, [0,1]

	Status         config.StatusEffect
	StatusChance   float32 // [0,1]
	StatusDuration float64

	// Environment-sourced hits; they pick up the matching armor reduction.
	Hazard bool
	Fall   bool

	// Critical rolls use the attacker's combat profile; DoT ticks and hazard
	// hits never crit.
	CanCrit bool
}

var AttackIntent = donburi.NewComponentType[AttackIntentData]()
