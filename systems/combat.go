package systems

import (
	"sort"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sunstone-games/rushcore/components"
	"github.com/sunstone-games/rushcore/config"
	"github.com/sunstone-games/rushcore/events"
	"github.com/sunstone-games/rushcore/gamemath"
	"github.com/sunstone-games/rushcore/tags"
)

// OutcomeKind discriminates the three mutually exclusive damage outcomes.
type OutcomeKind uint8

const (
	OutcomeBlocked OutcomeKind = iota
	OutcomeReceived
	OutcomeDeath
)

// Outcome is the result of resolving one attack intent.
type Outcome struct {
	Kind            OutcomeKind
	Reason          config.BlockReason
	Amount          float32
	RemainingHealth float32
	RemainingShield float32
	Critical        bool

	// StatusTriggered reports that the independent status roll succeeded;
	// the status subsystem applies the effect as a side channel, it is not
	// part of the outcome proper.
	StatusTriggered bool
}

// ResolveInput is the immutable snapshot Resolve works on. Profiles may be
// nil: a missing defense means zero resistance, a missing armor means no
// second reduction layer.
type ResolveInput struct {
	Intent  components.AttackIntentData
	Defense *components.DefenseData
	Armor   *components.ArmorData

	Health float32
	Shield float32

	Invulnerable bool
	Immune       bool
	Dodge        bool

	// Attacker state. DamageMult of zero is treated as 1.
	SourceIsEnemy  bool
	DamageMult     float32
	CritChance     float32
	CritMultiplier float32

	// Distance from attack origin, used only by area intents.
	Distance float32

	// Pre-drawn rolls. CritRoll is in [0,100), StatusRoll in [0,1).
	CritRoll   float32
	StatusRoll float32
}

// Resolve converts a raw attack intent into a final damage outcome. It is a
// pure function: all randomness enters through the pre-drawn rolls, all
// state through the snapshot. Damage never goes negative and neither do the
// resulting health and shield values.
func Resolve(in ResolveInput) Outcome {
	switch {
	case in.Invulnerable:
		return Outcome{Kind: OutcomeBlocked, Reason: config.BlockInvulnerability}
	case in.Immune:
		return Outcome{Kind: OutcomeBlocked, Reason: config.BlockImmunity}
	case in.Dodge:
		return Outcome{Kind: OutcomeBlocked, Reason: config.BlockDodge}
	}

	damage := in.Intent.BaseDamage
	if damage < 0 {
		damage = 0
	}
	if in.DamageMult > 0 {
		damage *= in.DamageMult
	}

	// Category resistance from the defense profile.
	if in.Defense != nil {
		damage *= gamemath.ResistanceMultiplier(in.Defense.ResistanceFor(in.Intent.DamageType))
	}

	// Armor layers compose multiplicatively with the resistance above and
	// with each other.
	statusResist := float32(0)
	if in.Armor != nil {
		var fracs []float32
		if in.Intent.DamageType.Category() == config.CategoryPhysical {
			fracs = append(fracs, in.Armor.Physical)
		}
		if in.SourceIsEnemy {
			fracs = append(fracs, in.Armor.EnemySource)
		}
		if in.Intent.Hazard {
			fracs = append(fracs, in.Armor.Hazard)
		}
		if in.Intent.Fall {
			fracs = append(fracs, in.Armor.Fall)
		}
		damage *= gamemath.ComposeReductions(fracs...)
		statusResist = gamemath.Clamp01(in.Armor.StatusEffectResistance)
	}

	if in.Intent.AreaEffect {
		damage *= gamemath.AreaFalloff(in.Distance, in.Intent.AreaRadius, in.Intent.AreaFalloff)
	}

	critical := false
	if in.Intent.CanCrit && in.CritChance > 0 && in.CritRoll < gamemath.ClampPercent(in.CritChance) {
		mult := in.CritMultiplier
		if mult < 1 {
			mult = 1
		}
		damage *= mult
		critical = true
	}

	// Shield absorbs first, health takes the remainder.
	shield := in.Shield
	health := in.Health
	absorbed := damage
	if absorbed > shield {
		absorbed = shield
	}
	shield -= absorbed
	health -= damage - absorbed
	if health < 0 {
		health = 0
	}

	statusTriggered := in.Intent.Status != config.StatusNone &&
		in.StatusRoll < in.Intent.StatusChance*(1-statusResist)

	out := Outcome{
		Amount:          damage,
		RemainingHealth: health,
		RemainingShield: shield,
		Critical:        critical,
		StatusTriggered: statusTriggered,
	}
	if health <= 0 {
		out.Kind = OutcomeDeath
	} else {
		out.Kind = OutcomeReceived
	}
	return out
}

// UpdateCombat drains every pending attack intent in submission order and
// applies the outcomes. Intents against one target see the health and shield
// left behind by earlier intents in the same tick; there is no snapshot
// isolation, which keeps replays deterministic.
func UpdateCombat(e *ecs.ECS) {
	rng := MustRandom(e)

	type pending struct {
		entry *donburi.Entry
		data  components.AttackIntentData
	}
	var batch []pending
	for entry := range components.AttackIntent.Iter(e.World) {
		batch = append(batch, pending{entry: entry, data: *components.AttackIntent.Get(entry)})
	}
	sort.Slice(batch, func(i, j int) bool { return batch[i].data.Seq < batch[j].data.Seq })

	for _, p := range batch {
		resolveIntent(e, p.data, rng)
		e.World.Remove(p.entry.Entity())
	}
}

func resolveIntent(e *ecs.ECS, intent components.AttackIntentData, rng *components.RandomData) {
	if !e.World.Valid(intent.Target) {
		return
	}
	target := e.World.Entry(intent.Target)
	if target.HasComponent(components.Death) {
		return
	}

	in := ResolveInput{Intent: intent}

	health := components.Health.Get(target)
	in.Health = health.Current
	var shield *components.ShieldData
	if target.HasComponent(components.Shield) {
		shield = components.Shield.Get(target)
		in.Shield = shield.Current
	}
	if target.HasComponent(components.Defense) {
		in.Defense = components.Defense.Get(target)
	}
	if target.HasComponent(components.Armor) {
		in.Armor = components.Armor.Get(target)
	}

	in.Invulnerable = target.HasComponent(components.Invulnerable)
	in.Immune = isImmune(target, intent.DamageType)
	in.Dodge = dodges(target, intent)

	var source *donburi.Entry
	if e.World.Valid(intent.Source) {
		source = e.World.Entry(intent.Source)
	}
	if source != nil {
		in.SourceIsEnemy = source.HasComponent(tags.Enemy) || source.HasComponent(tags.Boss)
		if source.HasComponent(components.Boss) {
			in.DamageMult = components.Boss.Get(source).DamageMult()
		}
		if intent.CanCrit && source.HasComponent(components.Combat) {
			combat := components.Combat.Get(source)
			in.CritChance = combat.CriticalChance
			in.CritMultiplier = combat.CriticalMultiplier
			in.CritRoll = rng.Rand.Float32() * 100
		}
		if intent.AreaEffect && source.HasComponent(components.Position) {
			in.Distance = float32(gamemath.Distance(
				components.Position.Get(source).Vec2,
				components.Position.Get(target).Vec2,
			))
		}
	}
	if intent.Status != config.StatusNone {
		in.StatusRoll = rng.Rand.Float32()
	}

	out := Resolve(in)
	applyOutcome(e, target, intent, out)
}

func applyOutcome(e *ecs.ECS, target *donburi.Entry, intent components.AttackIntentData, out Outcome) {
	switch out.Kind {
	case OutcomeBlocked:
		events.DamageBlocked.Publish(e.World, events.DamageBlockedData{
			Target: target.Entity(),
			Source: intent.Source,
			Reason: out.Reason,
		})
		return

	case OutcomeReceived:
		writeVitals(target, out)
		events.DamageReceived.Publish(e.World, events.DamageReceivedData{
			Target:          target.Entity(),
			Source:          intent.Source,
			Amount:          out.Amount,
			RemainingHealth: out.RemainingHealth,
			RemainingShield: out.RemainingShield,
			Critical:        out.Critical,
			DamageType:      intent.DamageType,
		})

	case OutcomeDeath:
		writeVitals(target, out)
		startDeathSequence(e, target, intent)
	}

	if out.StatusTriggered {
		applyStatus(e, target, intent)
	}
}

func writeVitals(target *donburi.Entry, out Outcome) {
	components.Health.Get(target).Current = out.RemainingHealth
	if target.HasComponent(components.Shield) {
		components.Shield.Get(target).Current = out.RemainingShield
	}
}

func startDeathSequence(e *ecs.ECS, target *donburi.Entry, intent components.AttackIntentData) {
	if target.HasComponent(components.Death) {
		return
	}
	donburi.Add(target, components.Death, &components.DeathData{
		Timer:      config.Combat.DeathLinger,
		Killer:     intent.Source,
		DamageType: intent.DamageType,
	})

	// The dying entity's ability shuts off immediately; Deactivate is safe
	// no matter what state the machine is in.
	if target.HasComponent(components.Ability) {
		components.Ability.Get(target).Deactivate()
	}

	pos := components.Position.Get(target)
	events.Death.Publish(e.World, events.DeathData{
		Entity:     target.Entity(),
		Killer:     intent.Source,
		DamageType: intent.DamageType,
		Position:   pos.Vec2,
	})
}

func applyStatus(e *ecs.ECS, target *donburi.Entry, intent components.AttackIntentData) {
	if target.HasComponent(components.Ability) {
		if components.Ability.Get(target).BlocksStatus(intent.Status) {
			return
		}
	}
	if !target.HasComponent(components.ActiveStatus) {
		return
	}
	duration := intent.StatusDuration
	if duration <= 0 {
		duration = config.Combat.StatusDefaultDuration
	}
	status := components.ActiveStatus.Get(target)
	if !status.Add(components.StatusInstance{
		Effect:    intent.Status,
		Remaining: duration,
		TickTimer: config.Combat.StatusTickInterval,
		Source:    intent.Source,
	}) {
		return
	}
	events.StatusApplied.Publish(e.World, events.StatusAppliedData{
		Target:   target.Entity(),
		Source:   intent.Source,
		Effect:   intent.Status,
		Duration: duration,
	})
}

// isImmune folds static immunities with ability-granted ones.
func isImmune(target *donburi.Entry, t config.DamageType) bool {
	if target.HasComponent(components.Immunity) && components.Immunity.Get(target).Has(t) {
		return true
	}
	if target.HasComponent(components.Ability) && components.Ability.Get(target).GrantsImmunity(t) {
		return true
	}
	return false
}

// dodges reports whether an active penetrating dash slips a physical hit.
func dodges(target *donburi.Entry, intent components.AttackIntentData) bool {
	if !target.HasComponent(components.Ability) {
		return false
	}
	ability := components.Ability.Get(target)
	return ability.Active &&
		ability.Kind == config.AbilityDash &&
		ability.Penetration &&
		intent.DamageType.Category() == config.CategoryPhysical
}
