package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/sunstone-games/rushcore/config"
)

// AbilityData is the timed activation/cooldown state machine for a character
// ability, plus the immutable per-character payload for the ability kind.
// The payload never influences the timer transitions.
type AbilityData struct {
	Kind config.AbilityKind

	Duration          float64
	Remaining         float64
	Cooldown          float64
	CooldownRemaining float64
	Active            bool

	// Dash
	SpeedMultiplier float64
	Penetration     bool

	// HeatAura
	Radius        float64
	PulseDamage   float32
	PulseInterval float64
	PulseTimer    float64

	// NatureCall: summoned allies, capacity bounded by MaxAllies.
	MaxAllies int
	Allies    []donburi.Entity

	// ControlledGlitch
	TeleportDistance float64
	TeleportTarget   dmath.Vec2
	InvulnTime       float64
}

var Ability = donburi.NewComponentType[AbilityData]()

// NewAbility builds ability state from a tuning preset. The ability starts
// idle and available.
func NewAbility(cfg config.AbilityConfig) AbilityData {
	return AbilityData{
		Kind:             cfg.Kind,
		Duration:         cfg.Duration,
		Cooldown:         cfg.Cooldown,
		SpeedMultiplier:  cfg.SpeedMultiplier,
		Penetration:      cfg.Penetration,
		Radius:           cfg.Radius,
		PulseDamage:      cfg.PulseDamage,
		PulseInterval:    cfg.PulseInterval,
		MaxAllies:        cfg.MaxAllies,
		TeleportDistance: cfg.TeleportDistance,
		InvulnTime:       cfg.InvulnTime,
	}
}

// Available reports whether the ability can be activated right now.
func (a *AbilityData) Available() bool {
	return !a.Active && a.CooldownRemaining <= 0
}

// Activate starts the ability if it is available. It reports whether
// activation happened; an unavailable ability is left untouched, which is a
// normal outcome and not an error.
func (a *AbilityData) Activate() bool {
	if !a.Available() {
		return false
	}
	a.Active = true
	a.Remaining = a.Duration
	a.PulseTimer = 0
	return true
}

// Deactivate ends the ability and starts the cooldown. Safe to call at any
// time, including on an inactive ability; calling it twice is the same as
// calling it once.
func (a *AbilityData) Deactivate() {
	a.Active = false
	a.Remaining = 0
	a.CooldownRemaining = a.Cooldown
}

// Update advances the timers by dt and reports whether a state transition
// happened this tick. Expiry during a tick wins over any activation request
// made in the same tick; requests racing an expiry must be re-issued.
func (a *AbilityData) Update(dt float64) bool {
	if a.Active {
		a.Remaining -= dt
		if a.Remaining <= 0 {
			a.Deactivate()
			return true
		}
		return false
	}
	if a.CooldownRemaining > 0 {
		a.CooldownRemaining -= dt
		if a.CooldownRemaining <= 0 {
			a.CooldownRemaining = 0
			return true
		}
		return false
	}
	return false
}

// AddAlly records a summoned ally, refusing past capacity.
func (a *AbilityData) AddAlly(e donburi.Entity) bool {
	if len(a.Allies) >= a.MaxAllies {
		return false
	}
	a.Allies = append(a.Allies, e)
	return true
}

// RemoveAlly forgets an ally that left the world.
func (a *AbilityData) RemoveAlly(e donburi.Entity) {
	for i, other := range a.Allies {
		if other == e {
			a.Allies = append(a.Allies[:i], a.Allies[i+1:]...)
			return
		}
	}
}

// GrantsImmunity reports whether the ability, while active, fully negates a
// damage type.
func (a *AbilityData) GrantsImmunity(t config.DamageType) bool {
	if !a.Active {
		return false
	}
	switch a.Kind {
	case config.AbilityFireproofBody:
		return t == config.DamageFire
	case config.AbilityAirBubble:
		return t == config.DamageWater
	case config.AbilityControlledGlitch:
		return t == config.DamageDigital
	}
	return false
}

// BlocksStatus reports whether the ability, while active, prevents a status
// effect from being applied.
func (a *AbilityData) BlocksStatus(s config.StatusEffect) bool {
	if !a.Active {
		return false
	}
	switch a.Kind {
	case config.AbilityAirBubble:
		return s == config.StatusDrown
	case config.AbilityFireproofBody:
		return s == config.StatusBurn
	}
	return false
}
