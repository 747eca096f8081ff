package tags

import "github.com/yohamta/donburi"

var (
	Character    = donburi.NewTag().SetName("Character")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Boss         = donburi.NewTag().SetName("Boss")
	MidBoss      = donburi.NewTag().SetName("MidBoss")
	Minion       = donburi.NewTag().SetName("Minion")
	AttackIntent = donburi.NewTag().SetName("AttackIntent")
)
