package planning

import (
	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/pkg/utils"
)

// AssignLegIDs returns a copy of legs where every leg without an ID gets
// one generated from its waypoints
func AssignLegIDs(legs []flightplan.Leg) []flightplan.Leg {
	out := make([]flightplan.Leg, len(legs))
	for i, leg := range legs {
		if leg.ID == "" {
			leg.ID = utils.GenerateLegID(leg.From, leg.To)
		}
		out[i] = leg
	}
	return out
}
