package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"

	"github.com/sunstone-games/rushcore/config"
)

// BossData is the phase state machine for a boss or mid-boss encounter.
// Phase transitions are driven purely by health fraction; how the health got
// there is not its concern.
type BossData struct {
	Config config.BossConfig

	// Phase index. Phase count is len(Config.Phases)+1: phase 0 is the
	// opening state, Config.Phases[i] is the entry condition for phase i+1.
	Phase     int
	Activated bool

	// Enrage is irreversible. The outgoing damage/speed multipliers ramp in
	// over the configured window instead of snapping.
	Enraged     bool
	enrageRamp  *gween.Tween
	enrageLevel float32 // 0 before enrage, 1 once the ramp finished

	SpecialRemaining float64

	MinionCount     int
	MinionRemaining float64 // spawn cooldown countdown
}

var Boss = donburi.NewComponentType[BossData]()

// NewBoss builds boss state from a validated preset. The special ability
// starts on full cooldown so an encounter never opens with it.
func NewBoss(cfg config.BossConfig) BossData {
	return BossData{
		Config:           cfg,
		SpecialRemaining: cfg.SpecialCooldown,
	}
}

// TotalPhases returns the phase count of the encounter.
func (b *BossData) TotalPhases() int {
	return len(b.Config.Phases) + 1
}

// ShouldTransition reports whether the boss should advance one phase given
// its current health. Evaluated once per tick; a single large hit therefore
// advances at most one phase per tick even when it crosses two thresholds.
func (b *BossData) ShouldTransition(current, max float32) bool {
	if !b.Activated || b.Phase >= len(b.Config.Phases) {
		return false
	}
	if max <= 0 {
		return false
	}
	return current/max <= b.Config.Phases[b.Phase].Threshold
}

// AdvancePhase moves to the next phase and returns its config. Phase index
// never regresses and never passes the terminal phase.
func (b *BossData) AdvancePhase() config.BossPhaseConfig {
	phase := b.Config.Phases[b.Phase]
	b.Phase++
	return phase
}

// PhaseDamageMult returns the outgoing damage multiplier of the current
// phase. Phase 0 and phases authored without a multiplier use 1.
func (b *BossData) PhaseDamageMult() float32 {
	if b.Phase == 0 || b.Phase > len(b.Config.Phases) {
		return 1
	}
	if m := b.Config.Phases[b.Phase-1].DamageMult; m > 0 {
		return m
	}
	return 1
}

// ShouldEnrage reports whether enrage triggers at the given health fraction.
func (b *BossData) ShouldEnrage(healthFrac float32) bool {
	if b.Enraged || !b.Config.MidBoss || b.Config.EnrageThreshold <= 0 {
		return false
	}
	return healthFrac <= b.Config.EnrageThreshold
}

// StartEnrage flips the irreversible enrage flag and starts the multiplier
// ramp. A zero ramp time takes effect immediately.
func (b *BossData) StartEnrage() {
	b.Enraged = true
	if b.Config.EnrageRampTime <= 0 {
		b.enrageLevel = 1
		return
	}
	b.enrageRamp = gween.New(0, 1, float32(b.Config.EnrageRampTime), ease.Linear)
}

// UpdateEnrage advances the ramp by dt.
func (b *BossData) UpdateEnrage(dt float64) {
	if b.enrageRamp == nil {
		return
	}
	value, finished := b.enrageRamp.Update(float32(dt))
	b.enrageLevel = value
	if finished {
		b.enrageRamp = nil
	}
}

// DamageMult is the total outgoing damage multiplier: phase bonus composed
// with the enrage ramp.
func (b *BossData) DamageMult() float32 {
	m := b.PhaseDamageMult()
	if b.Enraged && b.Config.EnrageDamageMult > 1 {
		m *= 1 + (b.Config.EnrageDamageMult-1)*b.enrageLevel
	}
	return m
}

// SpeedMult is the current movement speed multiplier from enrage.
func (b *BossData) SpeedMult() float32 {
	if b.Enraged && b.Config.EnrageSpeedMult > 1 {
		return 1 + (b.Config.EnrageSpeedMult-1)*b.enrageLevel
	}
	return 1
}

// CanSpawnMinion reports whether the minion gate is open: below the cap and
// off cooldown. The actual spawn is an external collaborator; the boss only
// requests it.
func (b *BossData) CanSpawnMinion() bool {
	if !b.Activated || b.Config.MinionMax <= 0 {
		return false
	}
	return b.MinionCount < b.Config.MinionMax && b.MinionRemaining <= 0
}
