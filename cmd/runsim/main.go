package main

import (
	"flag"
	"log"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/sunstone-games/rushcore/components"
	"github.com/sunstone-games/rushcore/config"
	"github.com/sunstone-games/rushcore/events"
	"github.com/sunstone-games/rushcore/sim"
)

// runsim drives a scripted encounter through the gameplay core and logs the
// emitted events. Useful for eyeballing tuning changes without the game
// client; pair with -tuning and -watch to iterate on preset files.
func main() {
	seed := flag.Int64("seed", 1, "Random seed (same seed replays the same encounter)")
	ticks := flag.Int("ticks", 600, "Number of simulation steps to run")
	dt := flag.Float64("dt", 1.0/60.0, "Seconds per step")
	tuning := flag.String("tuning", "", "Directory of YAML tuning overrides")
	watch := flag.Bool("watch", false, "Watch the tuning directory and log changes")
	character := flag.String("character", "Ember", "Playable character to field")
	boss := flag.String("boss", "glitch_warden", "Boss preset to fight")
	flag.Parse()

	if *tuning != "" {
		for _, err := range config.LoadDir(*tuning) {
			log.Printf("tuning: %v", err)
		}
		if *watch {
			w, err := config.Watch(*tuning)
			if err != nil {
				log.Fatalf("watch %s: %v", *tuning, err)
			}
			defer w.Close()
			go func() {
				for path := range w.Events {
					log.Printf("tuning changed: %s", path)
					for _, err := range config.LoadDir(*tuning) {
						log.Printf("tuning: %v", err)
					}
				}
			}()
		}
	}

	s := sim.New(*seed)
	subscribeLoggers(s.World())

	kind := characterByName(*character)
	runner, err := s.SpawnCharacter(kind, config.TierDefault, dmath.Vec2{X: 0, Y: 0})
	if err != nil {
		log.Fatalf("spawn character: %v", err)
	}
	bossEntry, err := s.SpawnBoss(*boss, config.TierDefault, dmath.Vec2{X: 4, Y: 0})
	if err != nil {
		log.Fatalf("spawn boss: %v", err)
	}
	s.ActivateBoss(bossEntry)

	// Spawn requests come back as events; grant them next to the boss.
	events.MinionSpawnRequested.Subscribe(s.World(), func(w donburi.World, ev events.MinionSpawnRequestedData) {
		if !w.Valid(ev.Boss) {
			return
		}
		pos := ev.Position
		pos.X += 1
		s.SpawnMinion(w.Entry(ev.Boss), pos)
	})

	log.Printf("encounter: %s vs %s, seed %d", kind, *boss, *seed)
	for i := 0; i < *ticks; i++ {
		// Simple script: attack every half second, pop the ability as soon
		// as it is available.
		if i%30 == 0 && s.World().Valid(runner.Entity()) && s.World().Valid(bossEntry.Entity()) {
			s.SubmitBasicAttack(runner.Entity(), bossEntry.Entity())
		}
		if s.World().Valid(runner.Entity()) {
			if components.Ability.Get(runner).Available() {
				s.RequestActivation(runner.Entity())
			}
		}
		// Scatter some pickups along the run.
		if i%90 == 45 {
			s.CollectFragment(runner.Entity(), i/90%3, 1)
		}
		s.Step(*dt)

		if !s.World().Valid(bossEntry.Entity()) {
			log.Printf("boss down after %d ticks", i+1)
			return
		}
		if !s.World().Valid(runner.Entity()) {
			log.Printf("runner down after %d ticks", i+1)
			return
		}
	}
	log.Printf("encounter timed out after %d ticks", *ticks)
}

func subscribeLoggers(w donburi.World) {
	events.AbilityActivated.Subscribe(w, func(_ donburi.World, ev events.AbilityActivatedData) {
		log.Printf("ability %s activated for %.1fs", ev.Kind, ev.Duration)
	})
	events.DamageReceived.Subscribe(w, func(_ donburi.World, ev events.DamageReceivedData) {
		crit := ""
		if ev.Critical {
			crit = " (crit)"
		}
		log.Printf("hit for %.1f %s%s, %.1f hp left", ev.Amount, ev.DamageType, crit, ev.RemainingHealth)
	})
	events.DamageBlocked.Subscribe(w, func(_ donburi.World, ev events.DamageBlockedData) {
		log.Printf("attack blocked: %s", ev.Reason)
	})
	events.PhaseTransition.Subscribe(w, func(_ donburi.World, ev events.PhaseTransitionData) {
		log.Printf("boss entered phase %d (invulnerable: %v)", ev.NewPhase, ev.Invulnerable)
	})
	events.BossEnraged.Subscribe(w, func(_ donburi.World, ev events.BossEnragedData) {
		log.Printf("boss enraged")
	})
	events.BossSpecialTriggered.Subscribe(w, func(_ donburi.World, ev events.BossSpecialTriggeredData) {
		log.Printf("boss special fired")
	})
	events.StatusApplied.Subscribe(w, func(_ donburi.World, ev events.StatusAppliedData) {
		log.Printf("status %s applied for %.1fs", ev.Effect, ev.Duration)
	})
	events.Death.Subscribe(w, func(_ donburi.World, ev events.DeathData) {
		log.Printf("death by %s", ev.DamageType)
	})
	events.FragmentCollected.Subscribe(w, func(_ donburi.World, ev events.FragmentCollectedData) {
		log.Printf("fragment type %d collected (x%d)", ev.FragmentType, ev.Amount)
	})
}

func characterByName(name string) config.CharacterKind {
	for _, kind := range config.PlayableKinds {
		if kind.String() == name {
			return kind
		}
	}
	log.Printf("unknown character %q, using Dart", name)
	return config.KindDart
}
