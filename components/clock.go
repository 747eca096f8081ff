package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// ClockData is the per-world simulation clock singleton. Systems read the
// current step's dt from here instead of receiving it as an argument.
type ClockData struct {
	Dt   float64
	Tick uint64

	seq uint64
}

// NextSeq hands out the next intent sequence number. Sequence numbers order
// attack intents within a tick for deterministic replay.
func (c *ClockData) NextSeq() uint64 {
	c.seq++
	return c.seq
}

// RandomData is the seeded random source singleton. All rolls (crit, status)
// draw from it so a replay with the same seed and inputs is identical.
type RandomData struct {
	Rand *rand.Rand
}

var Clock = donburi.NewComponentType[ClockData]()
var Random = donburi.NewComponentType[RandomData]()
