package components

import (
	"github.com/yohamta/donburi"

	"github.com/sunstone-games/rushcore/config"
)

type CharacterData struct {
	Kind config.CharacterKind
	Name string
}

// MinionData marks a boss-spawned minion and remembers its owner so the
// owner's minion count drops when the minion dies.
type MinionData struct {
	Owner donburi.Entity
}

var Character = donburi.NewComponentType[CharacterData]()
var Minion = donburi.NewComponentType[MinionData]()
