package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PositionData is the entity's location in the running lane, supplied by the
// host simulation and read here only for area falloff and range checks.
type PositionData struct {
	dmath.Vec2
}

var Position = donburi.NewComponentType[PositionData]()
