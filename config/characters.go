package config

// CombatTuning contains the offensive attribute profile for an entity.
type CombatTuning struct {
	BaseDamage         float32 `yaml:"base_damage"`
	CriticalChance     float32 `yaml:"critical_chance"`     // percent [0,100]
	CriticalMultiplier float32 `yaml:"critical_multiplier"` // >= 1
	AttackRange        float32 `yaml:"attack_range"`
}

// DefenseTuning contains the defensive attribute profile for an entity.
// Resistances are percentage damage reduction per category.
type DefenseTuning struct {
	BaseDefense         float32 `yaml:"base_defense"`
	PhysicalResistance  float32 `yaml:"physical_resistance"`
	ElementalResistance float32 `yaml:"elemental_resistance"`
	EnergyResistance    float32 `yaml:"energy_resistance"`
}

// ArmorTuning is an optional second reduction layer composed multiplicatively
// with defense resistances. All values are fractions in [0,1].
type ArmorTuning struct {
	Physical               float32 `yaml:"physical"`
	EnemySource            float32 `yaml:"enemy_source"`
	Hazard                 float32 `yaml:"hazard"`
	Fall                   float32 `yaml:"fall"`
	StatusEffectResistance float32 `yaml:"status_effect_resistance"`
}

// AbilityConfig contains the timer tuning plus the ability-specific payload
// for one character ability. Payload fields not used by a kind stay zero.
type AbilityConfig struct {
	Kind     AbilityKind `yaml:"kind"`
	Duration float64     `yaml:"duration"`
	Cooldown float64     `yaml:"cooldown"`

	// Dash
	SpeedMultiplier float64 `yaml:"speed_multiplier,omitempty"`
	Penetration     bool    `yaml:"penetration,omitempty"`

	// HeatAura
	Radius        float64 `yaml:"radius,omitempty"`
	PulseDamage   float32 `yaml:"pulse_damage,omitempty"`
	PulseInterval float64 `yaml:"pulse_interval,omitempty"`

	// NatureCall
	MaxAllies int `yaml:"max_allies,omitempty"`

	// ControlledGlitch
	TeleportDistance float64 `yaml:"teleport_distance,omitempty"`
	InvulnTime       float64 `yaml:"invuln_time,omitempty"`
}

// CharacterConfig is the full tuning preset for one playable character.
type CharacterConfig struct {
	Kind      CharacterKind `yaml:"kind"`
	Name      string        `yaml:"name"`
	MaxHealth float32       `yaml:"max_health"`
	MaxShield float32       `yaml:"max_shield"`
	Combat    CombatTuning  `yaml:"combat"`
	Defense   DefenseTuning `yaml:"defense"`
	Armor     *ArmorTuning  `yaml:"armor,omitempty"`
	Ability   AbilityConfig `yaml:"ability"`
}

// CharacterTuning returns the named preset for a playable character. The
// returned value is a copy; callers may mutate it freely.
func CharacterTuning(kind CharacterKind, tier Tier) CharacterConfig {
	c := baseCharacter(kind)
	switch tier {
	case TierAdvanced:
		c.MaxHealth *= 1.25
		c.Combat.BaseDamage *= 1.2
		c.Combat.CriticalChance += 5
		c.Ability.Cooldown *= 0.85
	case TierMaster:
		c.MaxHealth *= 1.5
		c.MaxShield += 25
		c.Combat.BaseDamage *= 1.45
		c.Combat.CriticalChance += 10
		c.Combat.CriticalMultiplier += 0.25
		c.Ability.Cooldown *= 0.7
		c.Ability.Duration *= 1.2
	}
	return c
}

func baseCharacter(kind CharacterKind) CharacterConfig {
	switch kind {
	case KindDart:
		return CharacterConfig{
			Kind:      KindDart,
			Name:      "Dart",
			MaxHealth: 100,
			Combat:    CombatTuning{BaseDamage: 12, CriticalChance: 10, CriticalMultiplier: 1.5, AttackRange: 1.5},
			Defense:   DefenseTuning{BaseDefense: 5, PhysicalResistance: 10},
			Ability: AbilityConfig{
				Kind:            AbilityDash,
				Duration:        1.5,
				Cooldown:        6.0,
				SpeedMultiplier: 2.2,
				Penetration:     true,
			},
		}
	case KindEmber:
		return CharacterConfig{
			Kind:      KindEmber,
			Name:      "Ember",
			MaxHealth: 110,
			Combat:    CombatTuning{BaseDamage: 10, CriticalChance: 8, CriticalMultiplier: 1.5, AttackRange: 1.2},
			Defense:   DefenseTuning{BaseDefense: 6, ElementalResistance: 20},
			Armor:     &ArmorTuning{Hazard: 0.15, StatusEffectResistance: 0.1},
			Ability: AbilityConfig{
				Kind:          AbilityHeatAura,
				Duration:      4.0,
				Cooldown:      10.0,
				Radius:        3.0,
				PulseDamage:   6,
				PulseInterval: 0.5,
			},
		}
	case KindCoral:
		return CharacterConfig{
			Kind:      KindCoral,
			Name:      "Coral",
			MaxHealth: 95,
			MaxShield: 20,
			Combat:    CombatTuning{BaseDamage: 9, CriticalChance: 12, CriticalMultiplier: 1.6, AttackRange: 1.4},
			Defense:   DefenseTuning{BaseDefense: 4, ElementalResistance: 15},
			Ability: AbilityConfig{
				Kind:     AbilityAirBubble,
				Duration: 6.0,
				Cooldown: 12.0,
				Radius:   1.5,
			},
		}
	case KindFern:
		return CharacterConfig{
			Kind:      KindFern,
			Name:      "Fern",
			MaxHealth: 105,
			Combat:    CombatTuning{BaseDamage: 8, CriticalChance: 6, CriticalMultiplier: 1.4, AttackRange: 1.3},
			Defense:   DefenseTuning{BaseDefense: 7, PhysicalResistance: 5, ElementalResistance: 10},
			Ability: AbilityConfig{
				Kind:      AbilityNatureCall,
				Duration:  8.0,
				Cooldown:  18.0,
				MaxAllies: 3,
			},
		}
	case KindCinder:
		return CharacterConfig{
			Kind:      KindCinder,
			Name:      "Cinder",
			MaxHealth: 130,
			Combat:    CombatTuning{BaseDamage: 14, CriticalChance: 5, CriticalMultiplier: 1.5, AttackRange: 1.1},
			Defense:   DefenseTuning{BaseDefense: 10, PhysicalResistance: 15, ElementalResistance: 25},
			Armor:     &ArmorTuning{Physical: 0.1, Hazard: 0.25, StatusEffectResistance: 0.2},
			Ability: AbilityConfig{
				Kind:     AbilityFireproofBody,
				Duration: 5.0,
				Cooldown: 14.0,
			},
		}
	case KindPixel:
		return CharacterConfig{
			Kind:      KindPixel,
			Name:      "Pixel",
			MaxHealth: 90,
			MaxShield: 15,
			Combat:    CombatTuning{BaseDamage: 11, CriticalChance: 15, CriticalMultiplier: 1.7, AttackRange: 1.6},
			Defense:   DefenseTuning{BaseDefense: 3, EnergyResistance: 30},
			Ability: AbilityConfig{
				Kind:             AbilityControlledGlitch,
				Duration:         2.0,
				Cooldown:         9.0,
				TeleportDistance: 5.0,
				InvulnTime:       0.75,
			},
		}
	}
	// Unknown kinds fall back to Dart so a bad save never crashes the sim.
	c := baseCharacter(KindDart)
	c.Kind = kind
	return c
}
