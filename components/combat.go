package components

import (
	"github.com/yohamta/donburi"

	"github.com/sunstone-games/rushcore/config"
)

// CombatData is the offensive attribute profile of an attacking entity.
// Current values drift from base under power-ups and enrage; base values
// never change after spawn.
type CombatData struct {
	BaseDamage         float32
	CurrentDamage      float32
	CriticalChance     float32 // percent [0,100]
	CriticalMultiplier float32 // >= 1
	AttackRange        float32
}

// DefenseData is the defensive attribute profile. Resistances are percentage
// damage reduction, applied per damage category.
type DefenseData struct {
	BaseDefense         float32
	CurrentDefense      float32
	PhysicalResistance  float32
	ElementalResistance float32
	EnergyResistance    float32
}

// ResistanceFor returns the percentage resistance applying to a damage type.
func (d *DefenseData) ResistanceFor(t config.DamageType) float32 {
	switch t.Category() {
	case config.CategoryPhysical:
		return d.PhysicalResistance
	case config.CategoryElemental:
		return d.ElementalResistance
	default:
		return d.EnergyResistance
	}
}

// ArmorData is an optional second reduction layer. Reductions are fractions
// in [0,1] and compose multiplicatively with defense resistances.
type ArmorData struct {
	Physical               float32
	EnemySource            float32
	Hazard                 float32
	Fall                   float32
	StatusEffectResistance float32
}

// ImmunityData lists damage types an entity permanently ignores, independent
// of any ability-granted immunity.
type ImmunityData struct {
	Types []config.DamageType
}

func (im *ImmunityData) Has(t config.DamageType) bool {
	for _, other := range im.Types {
		if other == t {
			return true
		}
	}
	return false
}

var Combat = donburi.NewComponentType[CombatData]()
var Defense = donburi.NewComponentType[DefenseData]()
var Armor = donburi.NewComponentType[ArmorData]()
var Immunity = donburi.NewComponentType[ImmunityData]()

func NewCombat(t config.CombatTuning) CombatData {
	return CombatData{
		BaseDamage:         t.BaseDamage,
		CurrentDamage:      t.BaseDamage,
		CriticalChance:     t.CriticalChance,
		CriticalMultiplier: t.CriticalMultiplier,
		AttackRange:        t.AttackRange,
	}
}

func NewDefense(t config.DefenseTuning) DefenseData {
	return DefenseData{
		BaseDefense:         t.BaseDefense,
		CurrentDefense:      t.BaseDefense,
		PhysicalResistance:  t.PhysicalResistance,
		ElementalResistance: t.ElementalResistance,
		EnergyResistance:    t.EnergyResistance,
	}
}

func NewArmor(t config.ArmorTuning) ArmorData {
	return ArmorData{
		Physical:               t.Physical,
		EnemySource:            t.EnemySource,
		Hazard:                 t.Hazard,
		Fall:                   t.Fall,
		StatusEffectResistance: t.StatusEffectResistance,
	}
}
