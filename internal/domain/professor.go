package domain

import "time"

// Professor is a faculty member record. Photo holds a data-URL string
// produced by the upload helper; CV and Profile are free text.
// Gender and Sex are kept as two separate fields, matching the persisted
// records this system manages.
type Professor struct {
	ID             string
	Name           string `validate:"required"`
	Email          string `validate:"omitempty,email"`
	Photo          string
	Identification string `validate:"required"`
	Phone          string
	Role           string
	Specialty      string
	CV             string
	Profile        string
	Gender         string
	Sex            string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
