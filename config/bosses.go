package config

// AttackTuning describes the shape of an attack an entity emits, used by
// boss specials and minion hits.
type AttackTuning struct {
	BaseDamage     float32       `yaml:"base_damage"`
	DamageType     DamageType    `yaml:"damage_type"`
	Pattern        AttackPattern `yaml:"pattern"`
	AreaEffect     bool          `yaml:"area_effect,omitempty"`
	AreaRadius     float32       `yaml:"area_radius,omitempty"`
	AreaFalloff    float32       `yaml:"area_falloff,omitempty"` // damage fraction at the edge, [0,1]
	Status         StatusEffect  `yaml:"status,omitempty"`
	StatusChance   float32       `yaml:"status_chance,omitempty"` // [0,1]
	StatusDuration float64       `yaml:"status_duration,omitempty"`
}

// BossPhaseConfig is one stage of a boss encounter. Threshold is the health
// fraction at which the phase is entered; phases are authored in strictly
// descending threshold order.
type BossPhaseConfig struct {
	Threshold  float32 `yaml:"threshold"`
	InvulnTime float64 `yaml:"invuln_time,omitempty"` // invulnerability window on entry
	DamageMult float32 `yaml:"damage_mult,omitempty"` // outgoing damage multiplier, 0 means 1
}

// BossConfig is the full tuning preset for a boss or mid-boss.
type BossConfig struct {
	Name      string        `yaml:"name"`
	MidBoss   bool          `yaml:"mid_boss"`
	MaxHealth float32       `yaml:"max_health"`
	Combat    CombatTuning  `yaml:"combat"`
	Defense   DefenseTuning `yaml:"defense"`
	Armor     *ArmorTuning  `yaml:"armor,omitempty"`

	// Damage types the boss ignores outright.
	Immunities []DamageType `yaml:"immunities,omitempty"`

	// Phase 0 has no threshold entry; Phases[i] is the entry condition for
	// phase i+1. Empty means a single-phase encounter.
	Phases []BossPhaseConfig `yaml:"phases"`

	// Enrage (mid-boss only). Zero threshold disables.
	EnrageThreshold  float32 `yaml:"enrage_threshold,omitempty"`
	EnrageDamageMult float32 `yaml:"enrage_damage_mult,omitempty"`
	EnrageSpeedMult  float32 `yaml:"enrage_speed_mult,omitempty"`
	EnrageRampTime   float64 `yaml:"enrage_ramp_time,omitempty"`

	// Special ability. Fires when the cooldown reaches zero and either a
	// target is within trigger range or own health is below the trigger
	// fraction.
	SpecialCooldown      float64      `yaml:"special_cooldown,omitempty"`
	SpecialTriggerRange  float64      `yaml:"special_trigger_range,omitempty"`
	SpecialHealthTrigger float32      `yaml:"special_health_trigger,omitempty"`
	Special              AttackTuning `yaml:"special,omitempty"`

	// Minion spawning.
	MinionMax           int     `yaml:"minion_max,omitempty"`
	MinionSpawnCooldown float64 `yaml:"minion_spawn_cooldown,omitempty"`
	MinionHealth        float32 `yaml:"minion_health,omitempty"`
}

// BossTuning returns the named boss preset scaled for a tier. Unknown names
// return the zero config; callers must validate before spawning.
func BossTuning(name string, tier Tier) BossConfig {
	b := baseBoss(name)
	switch tier {
	case TierAdvanced:
		b.MaxHealth *= 1.3
		b.Combat.BaseDamage *= 1.2
		b.SpecialCooldown *= 0.85
	case TierMaster:
		b.MaxHealth *= 1.75
		b.Combat.BaseDamage *= 1.5
		b.SpecialCooldown *= 0.7
		b.MinionSpawnCooldown *= 0.75
	}
	return b
}

func baseBoss(name string) BossConfig {
	switch name {
	case "junkyard_colossus":
		return BossConfig{
			Name:      "junkyard_colossus",
			MaxHealth: 1200,
			Combat:    CombatTuning{BaseDamage: 30, CriticalChance: 5, CriticalMultiplier: 1.5, AttackRange: 3},
			Defense:   DefenseTuning{BaseDefense: 20, PhysicalResistance: 30, ElementalResistance: 10},
			Armor:     &ArmorTuning{Physical: 0.2, StatusEffectResistance: 0.3},
			Phases: []BossPhaseConfig{
				{Threshold: 0.7, InvulnTime: 2.0},
				{Threshold: 0.4, InvulnTime: 2.0, DamageMult: 1.25},
				{Threshold: 0.1, InvulnTime: 3.0, DamageMult: 1.5},
			},
			SpecialCooldown:      12.0,
			SpecialTriggerRange:  6.0,
			SpecialHealthTrigger: 0.5,
			Special: AttackTuning{
				BaseDamage:     45,
				DamageType:     DamageEarth,
				Pattern:        PatternSpecial,
				AreaEffect:     true,
				AreaRadius:     5,
				AreaFalloff:    0.2,
				Status:         StatusStun,
				StatusChance:   0.35,
				StatusDuration: 1.5,
			},
			MinionMax:           4,
			MinionSpawnCooldown: 8.0,
			MinionHealth:        40,
		}
	case "glitch_warden":
		return BossConfig{
			Name:       "glitch_warden",
			MidBoss:    true,
			MaxHealth:  450,
			Combat:     CombatTuning{BaseDamage: 18, CriticalChance: 10, CriticalMultiplier: 1.6, AttackRange: 4},
			Defense:    DefenseTuning{BaseDefense: 8, EnergyResistance: 40},
			Immunities: []DamageType{DamageDigital},
			Phases: []BossPhaseConfig{
				{Threshold: 0.5, InvulnTime: 1.0, DamageMult: 1.2},
			},
			EnrageThreshold:      0.3,
			EnrageDamageMult:     1.6,
			EnrageSpeedMult:      1.4,
			EnrageRampTime:       1.5,
			SpecialCooldown:      9.0,
			SpecialTriggerRange:  5.0,
			SpecialHealthTrigger: 0.6,
			Special: AttackTuning{
				BaseDamage:     22,
				DamageType:     DamageDigital,
				Pattern:        PatternBurst,
				Status:         StatusCorrupt,
				StatusChance:   0.5,
				StatusDuration: 4.0,
			},
			MinionMax:           2,
			MinionSpawnCooldown: 12.0,
			MinionHealth:        25,
		}
	}
	return BossConfig{Name: name}
}
