package config

// DamageType identifies what kind of damage an attack carries. The type
// decides which resistance on the defender applies.
type DamageType uint8

const (
	DamagePhysical DamageType = iota
	DamageFire
	DamageIce
	DamageElectric
	DamagePoison
	DamageDigital
	DamageWater
	DamageEarth
	DamageWind
)

// DamageCategory groups damage types for resistance lookup.
type DamageCategory uint8

const (
	CategoryPhysical DamageCategory = iota
	CategoryElemental
	CategoryEnergy
)

// Category maps a damage type onto the defender's resistance category.
func (d DamageType) Category() DamageCategory {
	switch d {
	case DamagePhysical, DamageEarth:
		return CategoryPhysical
	case DamageFire, DamageIce, DamageWater, DamageWind, DamagePoison:
		return CategoryElemental
	default: // Electric, Digital
		return CategoryEnergy
	}
}

func (d DamageType) String() string {
	if int(d) < len(damageTypeNames) {
		return damageTypeNames[d]
	}
	return "Unknown"
}

// AttackPattern describes how an attacker's hit is shaped.
type AttackPattern uint8

const (
	PatternDirect AttackPattern = iota
	PatternSweep
	PatternBurst
	PatternCharge
	PatternProjectile
	PatternAOE
	PatternSummon
	PatternDoT
	PatternTeleport
	PatternSpecial
)

// StatusEffect identifies a lingering effect an attack may impart.
type StatusEffect uint8

const (
	StatusNone StatusEffect = iota
	StatusBurn
	StatusFreeze
	StatusParalyze
	StatusPoison
	StatusCorrupt
	StatusDrown
	StatusStun
	StatusConfuse
)

func (s StatusEffect) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "Unknown"
}

// IsDamaging reports whether the effect deals periodic damage while active.
func (s StatusEffect) IsDamaging() bool {
	switch s {
	case StatusBurn, StatusPoison, StatusCorrupt, StatusDrown:
		return true
	}
	return false
}

// IsControlLock reports whether the effect prevents the victim from acting.
func (s StatusEffect) IsControlLock() bool {
	switch s {
	case StatusFreeze, StatusParalyze, StatusStun, StatusConfuse:
		return true
	}
	return false
}

// DoTDamageType maps a damaging status onto the damage type of its ticks.
func (s StatusEffect) DoTDamageType() DamageType {
	switch s {
	case StatusBurn:
		return DamageFire
	case StatusPoison:
		return DamagePoison
	case StatusCorrupt:
		return DamageDigital
	case StatusDrown:
		return DamageWater
	}
	return DamagePhysical
}

// BlockReason explains why an attack was fully negated.
type BlockReason uint8

const (
	BlockInvulnerability BlockReason = iota
	BlockImmunity
	BlockShield
	BlockDodge
	BlockParry
	BlockAbility
)

func (b BlockReason) String() string {
	names := [...]string{"Invulnerability", "Immunity", "Shield", "Dodge", "Parry", "AbilityBlock"}
	if int(b) < len(names) {
		return names[b]
	}
	return "Unknown"
}

// AbilityKind identifies one of the six character abilities.
type AbilityKind uint8

const (
	AbilityNone AbilityKind = iota
	AbilityDash
	AbilityHeatAura
	AbilityAirBubble
	AbilityNatureCall
	AbilityFireproofBody
	AbilityControlledGlitch
)

func (a AbilityKind) String() string {
	if int(a) < len(abilityNames) {
		return abilityNames[a]
	}
	return "Unknown"
}

// CharacterKind identifies a playable character.
type CharacterKind uint8

const (
	KindDart CharacterKind = iota // dash
	KindEmber                     // heat aura
	KindCoral                     // air bubble
	KindFern                      // nature call
	KindCinder                    // fireproof body
	KindPixel                     // controlled glitch
)

func (k CharacterKind) String() string {
	if int(k) < len(characterNames) {
		return characterNames[k]
	}
	return "Unknown"
}

// PlayableKinds lists every playable character.
var PlayableKinds = []CharacterKind{KindDart, KindEmber, KindCoral, KindFern, KindCinder, KindPixel}

// Tier selects a tuning preset for a character or boss.
type Tier uint8

const (
	TierDefault Tier = iota
	TierAdvanced
	TierMaster
)

func (t Tier) String() string {
	if int(t) < len(tierNames) {
		return tierNames[t]
	}
	return "Unknown"
}

// CombatRules contains combat system constants shared by all entities.
type CombatRules struct {
	// How long a dead entity lingers before removal (seconds).
	DeathLinger float64

	// Periodic damage dealt by damaging statuses, per tick interval.
	StatusTickInterval float64
	StatusTickDamage   map[StatusEffect]float32

	// Default duration for statuses whose intent carried none.
	StatusDefaultDuration float64

	// Maximum number of stacked instances of one status on one entity.
	StatusMaxStacks int
}

// Global configuration instances
var Combat CombatRules
var Characters map[CharacterKind]CharacterConfig
var Bosses map[string]BossConfig

func init() {
	Combat = CombatRules{
		DeathLinger:        1.0,
		StatusTickInterval: 0.5,
		StatusTickDamage: map[StatusEffect]float32{
			StatusBurn:    4,
			StatusPoison:  3,
			StatusCorrupt: 5,
			StatusDrown:   2,
		},
		StatusDefaultDuration: 3.0,
		StatusMaxStacks:       5,
	}

	Characters = make(map[CharacterKind]CharacterConfig, len(PlayableKinds))
	for _, kind := range PlayableKinds {
		Characters[kind] = CharacterTuning(kind, TierDefault)
	}

	Bosses = map[string]BossConfig{
		"junkyard_colossus": BossTuning("junkyard_colossus", TierDefault),
		"glitch_warden":     BossTuning("glitch_warden", TierDefault),
	}
}
