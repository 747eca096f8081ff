package config

import (
	"errors"
	"fmt"
)

// Validation errors. A failed validation is fatal to that entity's spawn;
// factories log and refuse to create the entity rather than simulate it with
// broken tuning.
var (
	ErrThresholdOrder    = errors.New("phase thresholds must be strictly descending")
	ErrThresholdRange    = errors.New("phase thresholds must be in (0,1]")
	ErrNegativeDuration  = errors.New("durations and cooldowns must be non-negative")
	ErrNonPositiveHealth = errors.New("max health must be positive")
	ErrCritMultiplier    = errors.New("critical multiplier must be at least 1")
)

// Validate checks a character preset. Out-of-range fractions are not errors
// here; they are clamped at the pipeline boundary. Structural problems that
// would make the state machines misbehave are rejected.
func (c CharacterConfig) Validate() error {
	if c.MaxHealth <= 0 {
		return fmt.Errorf("character %s: %w", c.Name, ErrNonPositiveHealth)
	}
	if c.Ability.Duration < 0 || c.Ability.Cooldown < 0 {
		return fmt.Errorf("character %s ability: %w", c.Name, ErrNegativeDuration)
	}
	if c.Combat.CriticalMultiplier < 1 {
		return fmt.Errorf("character %s combat: %w", c.Name, ErrCritMultiplier)
	}
	if c.Ability.Kind == AbilityNatureCall && c.Ability.MaxAllies <= 0 {
		return fmt.Errorf("character %s: nature call requires max_allies > 0", c.Name)
	}
	return nil
}

// Validate checks a boss preset, in particular the phase threshold ordering.
func (b BossConfig) Validate() error {
	if b.MaxHealth <= 0 {
		return fmt.Errorf("boss %s: %w", b.Name, ErrNonPositiveHealth)
	}
	if b.Combat.CriticalMultiplier < 1 {
		return fmt.Errorf("boss %s combat: %w", b.Name, ErrCritMultiplier)
	}
	prev := float32(1.0)
	for i, p := range b.Phases {
		if p.Threshold <= 0 || p.Threshold > 1 {
			return fmt.Errorf("boss %s phase %d: %w", b.Name, i, ErrThresholdRange)
		}
		if p.Threshold >= prev {
			return fmt.Errorf("boss %s phase %d: %w", b.Name, i, ErrThresholdOrder)
		}
		if p.InvulnTime < 0 {
			return fmt.Errorf("boss %s phase %d: %w", b.Name, i, ErrNegativeDuration)
		}
		prev = p.Threshold
	}
	if b.SpecialCooldown < 0 || b.MinionSpawnCooldown < 0 || b.EnrageRampTime < 0 {
		return fmt.Errorf("boss %s: %w", b.Name, ErrNegativeDuration)
	}
	if b.EnrageThreshold < 0 || b.EnrageThreshold > 1 {
		return fmt.Errorf("boss %s: enrage threshold must be in [0,1]", b.Name)
	}
	if b.MinionMax < 0 {
		return fmt.Errorf("boss %s: minion_max must be non-negative", b.Name)
	}
	return nil
}
