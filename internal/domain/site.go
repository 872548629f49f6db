package domain

import "time"

// PracticumSite is a practicum placement location. ProfessorID is a weak
// reference resolved at render time.
type PracticumSite struct {
	ID          string
	CompanyName string `validate:"required"`
	Department  string
	ContactName string
	ProfessorID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
