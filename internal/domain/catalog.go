package domain

import "time"

// Faculty is a top-level academic unit.
type Faculty struct {
	ID        string
	Name      string `validate:"required"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Program belongs to a faculty, referenced by id string equality.
type Program struct {
	ID        string
	FacultyID string `validate:"required"`
	Name      string `validate:"required"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subject belongs to a program.
type Subject struct {
	ID        string
	ProgramID string `validate:"required"`
	Name      string `validate:"required"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CatalogItem is an entry in one of the simple reference catalogs
// (activity types, delivery forms, verification means, PDI actions,
// improvement actions).
type CatalogItem struct {
	ID        string
	Kind      CatalogKind `validate:"required"`
	Name      string      `validate:"required"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
