package components

import (
	"github.com/yohamta/donburi"

	"github.com/sunstone-games/rushcore/config"
)

// StatusInstance is one applied stack of a status effect.
type StatusInstance struct {
	Effect    config.StatusEffect
	Remaining float64
	TickTimer float64
	Source    donburi.Entity
}

// ActiveStatusData holds every status instance currently affecting an
// entity. Instances of the same effect stack independently, each with its
// own expiry and tick timer.
type ActiveStatusData struct {
	Instances []StatusInstance
}

var ActiveStatus = donburi.NewComponentType[ActiveStatusData]()

// Add appends a stack, refusing past the configured stack cap for that
// effect. Reports whether the stack was applied.
func (s *ActiveStatusData) Add(inst StatusInstance) bool {
	count := 0
	for _, other := range s.Instances {
		if other.Effect == inst.Effect {
			count++
		}
	}
	if count >= config.Combat.StatusMaxStacks {
		return false
	}
	s.Instances = append(s.Instances, inst)
	return true
}

// Has reports whether at least one stack of the effect is active.
func (s *ActiveStatusData) Has(e config.StatusEffect) bool {
	for _, inst := range s.Instances {
		if inst.Effect == e {
			return true
		}
	}
	return false
}

// ControlLocked reports whether any active status prevents the entity from
// acting (ability activation is gated on this).
func (s *ActiveStatusData) ControlLocked() bool {
	for _, inst := range s.Instances {
		if inst.Effect.IsControlLock() {
			return true
		}
	}
	return false
}
