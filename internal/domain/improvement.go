package domain

import "time"

// ImprovementPlan is the root of the accreditation-improvement hierarchy.
// Deleting a plan cascades to its factors.
type ImprovementPlan struct {
	ID          string
	Name        string `validate:"required"`
	Year        int
	Responsible string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ImprovementFactor belongs to a plan. Deleting a factor does NOT cascade
// to its activities; orphaned activities are tolerated by lookups.
type ImprovementFactor struct {
	ID        string
	PlanID    string `validate:"required"`
	Number    int
	Name      string `validate:"required"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ImprovementActivity belongs to a factor. The persisted column is named
// factor_id; historical records stored the owning factor's id in a field
// called planId, which this rewrite renames without changing semantics.
type ImprovementActivity struct {
	ID          string
	FactorID    string `validate:"required"`
	Description string `validate:"required"`
	Responsible string
	Deadline    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
