package events

import (
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/sunstone-games/rushcore/config"
)

// Outbound simulation events. Systems publish during a tick; the simulation
// driver drains the bus once per step, so an event from tick t is seen by
// collaborators before tick t+1 and never mid-tick.

type AbilityActivatedData struct {
	Entity   donburi.Entity
	Kind     config.AbilityKind
	Position dmath.Vec2
	Duration float64
}

type AbilityExpiredData struct {
	Entity donburi.Entity
	Kind   config.AbilityKind
}

type DamageBlockedData struct {
	Target donburi.Entity
	Source donburi.Entity
	Reason config.BlockReason
}

type DamageReceivedData struct {
	Target          donburi.Entity
	Source          donburi.Entity
	Amount          float32
	RemainingHealth float32
	RemainingShield float32
	Critical        bool
	DamageType      config.DamageType
}

type DeathData struct {
	Entity     donburi.Entity
	Killer     donburi.Entity
	DamageType config.DamageType
	Position   dmath.Vec2
}

type PhaseTransitionData struct {
	Boss         donburi.Entity
	NewPhase     int
	Invulnerable bool
}

type BossEnragedData struct {
	Boss donburi.Entity
}

type BossSpecialTriggeredData struct {
	Boss   donburi.Entity
	Target donburi.Entity
}

type MinionSpawnRequestedData struct {
	Boss     donburi.Entity
	Position dmath.Vec2
}

type AllySummonRequestedData struct {
	Summoner donburi.Entity
	Position dmath.Vec2
	Slots    int // remaining ally capacity at request time
}

type StatusAppliedData struct {
	Target   donburi.Entity
	Source   donburi.Entity
	Effect   config.StatusEffect
	Duration float64
}

type StatusExpiredData struct {
	Target donburi.Entity
	Effect config.StatusEffect
}

// FragmentCollectedData reports a pickup absorbed by a runner. FragmentType
// is an int index into the fragment catalog.
type FragmentCollectedData struct {
	Entity       donburi.Entity
	FragmentType int
	Amount       int
}

var (
	AbilityActivated     = devents.NewEventType[AbilityActivatedData]()
	AbilityExpired       = devents.NewEventType[AbilityExpiredData]()
	DamageBlocked        = devents.NewEventType[DamageBlockedData]()
	DamageReceived       = devents.NewEventType[DamageReceivedData]()
	Death                = devents.NewEventType[DeathData]()
	PhaseTransition      = devents.NewEventType[PhaseTransitionData]()
	BossEnraged          = devents.NewEventType[BossEnragedData]()
	BossSpecialTriggered = devents.NewEventType[BossSpecialTriggeredData]()
	MinionSpawnRequested = devents.NewEventType[MinionSpawnRequestedData]()
	AllySummonRequested  = devents.NewEventType[AllySummonRequestedData]()
	StatusApplied        = devents.NewEventType[StatusAppliedData]()
	StatusExpired        = devents.NewEventType[StatusExpiredData]()
	FragmentCollected    = devents.NewEventType[FragmentCollectedData]()
)
