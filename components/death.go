package components

import (
	"github.com/yohamta/donburi"

	"github.com/sunstone-games/rushcore/config"
)

// DeathData marks an entity whose health reached zero. The entity lingers
// for Timer seconds so collaborators can react to the Death event, then the
// death system removes it from the world.
type DeathData struct {
	Timer      float64
	Killer     donburi.Entity
	DamageType config.DamageType
}

var Death = donburi.NewComponentType[DeathData]()

// InvulnerableData is a timed window during which the damage pipeline blocks
// every intent. Shared by boss phase-entry windows and the controlled-glitch
// activation window; the pipeline re-checks it on every resolve call.
type InvulnerableData struct {
	Remaining float64
}

var Invulnerable = donburi.NewComponentType[InvulnerableData]()
