package flightplan

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
)

// Plan is a named, saved route: an ordered list of legs and the settings
// used to compute it. Editing operations return errors for unknown legs;
// the fuel computation itself lives in ComputePlan.
type Plan struct {
	id        string
	name      string
	legs      []Leg
	settings  Settings
	createdAt time.Time
	updatedAt time.Time
	clock     shared.Clock
}

// NewPlan creates an empty plan
func NewPlan(id, name string, settings Settings, clock shared.Clock) (*Plan, error) {
	if strings.TrimSpace(id) == "" {
		return nil, shared.NewValidationError("id", "plan id cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("name", "plan name cannot be empty")
	}
	if err := ValidateSettings(settings); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}
	now := clock.Now()
	return &Plan{
		id:        id,
		name:      name,
		settings:  settings,
		createdAt: now,
		updatedAt: now,
		clock:     clock,
	}, nil
}

// ReconstructPlan rebuilds a plan from storage without validation
func ReconstructPlan(id, name string, legs []Leg, settings Settings, createdAt, updatedAt time.Time) *Plan {
	return &Plan{
		id:        id,
		name:      name,
		legs:      slices.Clone(legs),
		settings:  settings,
		createdAt: createdAt,
		updatedAt: updatedAt,
		clock:     shared.NewRealClock(),
	}
}

// ID returns the plan identifier
func (p *Plan) ID() string {
	return p.id
}

func (p *Plan) Name() string {
	return p.name
}

func (p *Plan) Settings() Settings {
	return p.settings
}

func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Plan) UpdatedAt() time.Time {
	return p.updatedAt
}

// Legs returns a copy of the legs in route order
func (p *Plan) Legs() []Leg {
	return slices.Clone(p.legs)
}

// TotalDistanceNM is the sum of all leg distances
func (p *Plan) TotalDistanceNM() float64 {
	var total float64
	for _, l := range p.legs {
		total += l.DistanceNM
	}
	return total
}

// AddLeg appends leg to the route
func (p *Plan) AddLeg(leg Leg) error {
	if leg.ID == "" {
		return shared.NewValidationError("id", "leg id cannot be empty")
	}
	if p.indexOf(leg.ID) >= 0 {
		return shared.NewValidationError("id", fmt.Sprintf("duplicate leg id %s", leg.ID))
	}
	if err := ValidateLeg(leg); err != nil {
		return err
	}
	p.legs = append(p.legs, leg)
	p.touch()
	return nil
}

// UpdateLeg replaces the leg with the same ID
func (p *Plan) UpdateLeg(leg Leg) error {
	i := p.indexOf(leg.ID)
	if i < 0 {
		return shared.NewLegNotFoundError(leg.ID)
	}
	if err := ValidateLeg(leg); err != nil {
		return err
	}
	p.legs[i] = leg
	p.touch()
	return nil
}

// RemoveLeg deletes the leg with the given ID
func (p *Plan) RemoveLeg(legID string) error {
	i := p.indexOf(legID)
	if i < 0 {
		return shared.NewLegNotFoundError(legID)
	}
	p.legs = slices.Delete(p.legs, i, i+1)
	p.touch()
	return nil
}

// ReorderLegs puts the legs in the order of ids. ids must name every leg of
// the plan exactly once; the plan is left unchanged otherwise.
func (p *Plan) ReorderLegs(ids []string) error {
	if len(ids) != len(p.legs) {
		return shared.NewValidationError("order",
			fmt.Sprintf("order names %d legs, plan has %d", len(ids), len(p.legs)))
	}

	seen := make(map[string]bool, len(ids))
	reordered := make([]Leg, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			return shared.NewValidationError("order", fmt.Sprintf("duplicate leg id %s", id))
		}
		seen[id] = true

		i := p.indexOf(id)
		if i < 0 {
			return shared.NewLegNotFoundError(id)
		}
		reordered = append(reordered, p.legs[i])
	}

	p.legs = reordered
	p.touch()
	return nil
}

// ApplySettings replaces the plan settings
func (p *Plan) ApplySettings(settings Settings) error {
	if err := ValidateSettings(settings); err != nil {
		return err
	}
	p.settings = settings
	p.touch()
	return nil
}

// Reset removes all legs and restores the default settings
func (p *Plan) Reset() {
	p.legs = nil
	p.settings = DefaultSettings()
	p.touch()
}

// Compute runs ComputePlan over the plan's legs and settings
func (p *Plan) Compute(ds *performance.Dataset) PlanResult {
	return ComputePlan(p.legs, p.settings, ds)
}

func (p *Plan) indexOf(legID string) int {
	return slices.IndexFunc(p.legs, func(l Leg) bool { return l.ID == legID })
}

func (p *Plan) touch() {
	if p.clock != nil {
		p.updatedAt = p.clock.Now()
	}
}

func (p *Plan) String() string {
	return fmt.Sprintf("Plan(%s, %q, %d legs)", p.id, p.name, len(p.legs))
}
