package persistence

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gorm.io/gorm"

	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
)

// GormPlanRepository implements flightplan.PlanRepository using GORM
type GormPlanRepository struct {
	db *gorm.DB
}

// NewGormPlanRepository creates a new GORM plan repository
func NewGormPlanRepository(db *gorm.DB) *GormPlanRepository {
	return &GormPlanRepository{db: db}
}

// Save upserts the plan and replaces its legs
func (r *GormPlanRepository) Save(ctx context.Context, plan *flightplan.Plan) error {
	model, err := planToModel(plan)
	if err != nil {
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		legs := model.Legs
		model.Legs = nil

		if err := tx.Save(model).Error; err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}
		if err := tx.Where("plan_id = ?", model.ID).Delete(&LegModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear plan legs: %w", err)
		}
		if len(legs) > 0 {
			if err := tx.Create(&legs).Error; err != nil {
				return fmt.Errorf("failed to save plan legs: %w", err)
			}
		}
		return nil
	})
}

// FindByID retrieves a plan by ID
func (r *GormPlanRepository) FindByID(ctx context.Context, id string) (*flightplan.Plan, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByName retrieves a plan by its unique name
func (r *GormPlanRepository) FindByName(ctx context.Context, name string) (*flightplan.Plan, error) {
	return r.findOne(ctx, "name = ?", name)
}

func (r *GormPlanRepository) findOne(ctx context.Context, query string, arg string) (*flightplan.Plan, error) {
	var model PlanModel
	result := r.db.WithContext(ctx).
		Preload("Legs", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where(query, arg).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewPlanNotFoundError(arg)
		}
		return nil, fmt.Errorf("failed to find plan: %w", result.Error)
	}

	return modelToPlan(&model)
}

// List retrieves every plan, oldest first
func (r *GormPlanRepository) List(ctx context.Context) ([]*flightplan.Plan, error) {
	var models []PlanModel
	result := r.db.WithContext(ctx).
		Preload("Legs", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("created_at ASC").
		Order("name ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list plans: %w", result.Error)
	}

	plans := make([]*flightplan.Plan, 0, len(models))
	for i := range models {
		plan, err := modelToPlan(&models[i])
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	return plans, nil
}

// Delete removes a plan and its legs
func (r *GormPlanRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", id).Delete(&LegModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete plan legs: %w", err)
		}
		result := tx.Where("id = ?", id).Delete(&PlanModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete plan: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.NewPlanNotFoundError(id)
		}
		return nil
	})
}

func planToModel(plan *flightplan.Plan) (*PlanModel, error) {
	settings, err := encodeSettings(plan.Settings())
	if err != nil {
		return nil, err
	}

	legs := plan.Legs()
	legModels := make([]LegModel, len(legs))
	for i, leg := range legs {
		legModels[i] = LegModel{
			PlanID:             plan.ID(),
			ID:                 leg.ID,
			Position:           i,
			FromWaypoint:       leg.From,
			ToWaypoint:         leg.To,
			DistanceNM:         leg.DistanceNM,
			PlannedAltitudeFt:  leg.PlannedAltitudeFt,
			PlannedTimeMin:     leg.PlannedTimeMin,
			CruiseRPM:          leg.CruiseRPM,
			CruiseManifoldInHg: leg.CruiseManifoldInHg,
			TempBand:           string(leg.TempBand),
		}
	}

	return &PlanModel{
		ID:        plan.ID(),
		Name:      plan.Name(),
		Settings:  settings,
		Legs:      legModels,
		CreatedAt: plan.CreatedAt(),
		UpdatedAt: plan.UpdatedAt(),
	}, nil
}

func modelToPlan(model *PlanModel) (*flightplan.Plan, error) {
	settings, err := decodeSettings(model.Settings)
	if err != nil {
		return nil, fmt.Errorf("invalid settings for plan %s: %w", model.ID, err)
	}

	legs := make([]flightplan.Leg, len(model.Legs))
	for i, lm := range model.Legs {
		legs[i] = flightplan.Leg{
			ID:                 lm.ID,
			From:               lm.FromWaypoint,
			To:                 lm.ToWaypoint,
			DistanceNM:         lm.DistanceNM,
			PlannedAltitudeFt:  lm.PlannedAltitudeFt,
			PlannedTimeMin:     lm.PlannedTimeMin,
			CruiseRPM:          lm.CruiseRPM,
			CruiseManifoldInHg: lm.CruiseManifoldInHg,
			TempBand:           performance.TempBand(lm.TempBand),
		}
	}

	return flightplan.ReconstructPlan(model.ID, model.Name, legs, settings, model.CreatedAt, model.UpdatedAt), nil
}

// Settings are stored as a msgpack blob keyed by their JSON names so new
// optional fields need no migration.
func encodeSettings(settings flightplan.Settings) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(settings); err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeSettings(data []byte) (flightplan.Settings, error) {
	var settings flightplan.Settings
	if len(data) == 0 {
		return flightplan.DefaultSettings(), nil
	}
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	if err := dec.Decode(&settings); err != nil {
		return settings, fmt.Errorf("failed to decode settings: %w", err)
	}
	return settings, nil
}
