package domain

import "time"

// Group is a named student cohort. AdvisorID is a weak reference to a
// Professor: it is resolved by lookup at render time and may dangle after
// the professor is deleted.
type Group struct {
	ID          string
	Name        string `validate:"required"`
	Date        time.Time
	Description string
	Features    string
	AdvisorID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
