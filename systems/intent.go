package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sunstone-games/rushcore/archetypes"
	"github.com/sunstone-games/rushcore/components"
)

// SpawnIntent reifies an attack intent as a transient entity. The combat
// system resolves and removes it on the next UpdateCombat pass; intents
// never live past the tick they are processed in.
func SpawnIntent(e *ecs.ECS, data components.AttackIntentData) *donburi.Entry {
	entry := archetypes.AttackIntent.Spawn(e)
	components.AttackIntent.SetValue(entry, data)
	return entry
}
