package config

import "github.com/yohamta/donburi/ecs"

// ECS layer for all simulation entities. The core has no render layers.
const Default ecs.LayerID = 0
