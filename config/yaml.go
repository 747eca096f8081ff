package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tuning files spell enums by name ("fire", "heat_aura"); raw numbers are
// accepted too so generated files round-trip.

func unmarshalEnum(value *yaml.Node, names []string, what string) (uint8, error) {
	var n int
	if err := value.Decode(&n); err == nil {
		if n < 0 || n >= len(names) {
			return 0, fmt.Errorf("unknown %s %d", what, n)
		}
		return uint8(n), nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return 0, fmt.Errorf("%s: %w", what, err)
	}
	want := strings.ReplaceAll(strings.ToLower(s), "_", "")
	for i, name := range names {
		if strings.ToLower(name) == want {
			return uint8(i), nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", what, s)
}

var damageTypeNames = []string{"Physical", "Fire", "Ice", "Electric", "Poison", "Digital", "Water", "Earth", "Wind"}

func (d *DamageType) UnmarshalYAML(value *yaml.Node) error {
	v, err := unmarshalEnum(value, damageTypeNames, "damage type")
	if err != nil {
		return err
	}
	*d = DamageType(v)
	return nil
}

var patternNames = []string{"Direct", "Sweep", "Burst", "Charge", "Projectile", "AOE", "Summon", "DoT", "Teleport", "Special"}

func (p *AttackPattern) UnmarshalYAML(value *yaml.Node) error {
	v, err := unmarshalEnum(value, patternNames, "attack pattern")
	if err != nil {
		return err
	}
	*p = AttackPattern(v)
	return nil
}

var statusNames = []string{"None", "Burn", "Freeze", "Paralyze", "Poison", "Corrupt", "Drown", "Stun", "Confuse"}

func (s *StatusEffect) UnmarshalYAML(value *yaml.Node) error {
	v, err := unmarshalEnum(value, statusNames, "status effect")
	if err != nil {
		return err
	}
	*s = StatusEffect(v)
	return nil
}

var abilityNames = []string{"None", "Dash", "HeatAura", "AirBubble", "NatureCall", "FireproofBody", "ControlledGlitch"}

func (a *AbilityKind) UnmarshalYAML(value *yaml.Node) error {
	v, err := unmarshalEnum(value, abilityNames, "ability kind")
	if err != nil {
		return err
	}
	*a = AbilityKind(v)
	return nil
}

var characterNames = []string{"Dart", "Ember", "Coral", "Fern", "Cinder", "Pixel"}

func (k *CharacterKind) UnmarshalYAML(value *yaml.Node) error {
	v, err := unmarshalEnum(value, characterNames, "character kind")
	if err != nil {
		return err
	}
	*k = CharacterKind(v)
	return nil
}

var tierNames = []string{"Default", "Advanced", "Master"}

func (t *Tier) UnmarshalYAML(value *yaml.Node) error {
	v, err := unmarshalEnum(value, tierNames, "tier")
	if err != nil {
		return err
	}
	*t = Tier(v)
	return nil
}
