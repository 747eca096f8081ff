package sim

import (
	"log"
	"time"
)

// Loop drives a Simulation in real time at a fixed tick rate. Headless
// hosts that want wall-clock pacing (soak tests, the runsim tool) use this;
// everything else calls Step directly.
type Loop struct {
	sim      *Simulation
	tickRate int
	stopChan chan struct{}
}

func NewLoop(sim *Simulation, tickRate int) *Loop {
	return &Loop{
		sim:      sim,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks, stepping the simulation until Stop is called.
func (l *Loop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	dt := 1.0 / float64(l.tickRate)
	log.Printf("simulation loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			log.Println("simulation loop stopped")
			return
		case <-ticker.C:
			l.sim.Step(dt)
		}
	}
}

func (l *Loop) Stop() {
	close(l.stopChan)
}
