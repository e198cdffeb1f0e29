package persistence

import (
	"time"
)

// PlanModel represents the plans table
type PlanModel struct {
	ID        string     `gorm:"column:id;primaryKey;not null"`
	Name      string     `gorm:"column:name;uniqueIndex;not null"`
	Settings  []byte     `gorm:"column:settings"` // msgpack-encoded flightplan.Settings
	Legs      []LegModel `gorm:"foreignKey:PlanID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time  `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt time.Time  `gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

func (PlanModel) TableName() string {
	return "plans"
}

// LegModel represents the plan_legs table. Position keeps the route order.
type LegModel struct {
	PlanID             string   `gorm:"column:plan_id;primaryKey;not null"`
	ID                 string   `gorm:"column:id;primaryKey;not null"`
	Position           int      `gorm:"column:position;not null"`
	FromWaypoint       string   `gorm:"column:from_waypoint"`
	ToWaypoint         string   `gorm:"column:to_waypoint"`
	DistanceNM         float64  `gorm:"column:distance_nm;not null;default:0"`
	PlannedAltitudeFt  *float64 `gorm:"column:planned_altitude_ft"`
	PlannedTimeMin     *float64 `gorm:"column:planned_time_min"`
	CruiseRPM          *float64 `gorm:"column:cruise_rpm"`
	CruiseManifoldInHg *float64 `gorm:"column:cruise_manifold_inhg"`
	TempBand           string   `gorm:"column:temp_band"`
}

func (LegModel) TableName() string {
	return "plan_legs"
}
