package domain

import "time"

// Acta is a recorded meeting/minutes document tied to a cohort group and
// an advisor. LinkedDocID weakly references a Documento.
type Acta struct {
	ID          string
	Group       string `validate:"required"`
	AdvisorName string
	Date        time.Time
	LinkedDocID string
	Logros      string
	Acuerdos    string
	Sintesis    string
	PDFUrl      string
	Photo1      string
	Photo2      string
	Type        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Documento is an independent catalog entry describing a document category.
type Documento struct {
	ID        string
	Title     string `validate:"required"`
	Type      string
	Date      time.Time
	Purpose   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
