package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float32
	Max     float32
}

// Fraction returns current health as a fraction of max, used by boss phase
// and enrage predicates.
func (h *HealthData) Fraction() float32 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

type ShieldData struct {
	Current float32
	Max     float32
}

var Health = donburi.NewComponentType[HealthData]()
var Shield = donburi.NewComponentType[ShieldData]()
