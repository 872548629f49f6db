package domain

import "time"

// PlanEntry is one activity row inside a work plan block. Docencia entries
// carry a subject reference and literal weekly hours; entries in every
// other block are generic activities described by text.
type PlanEntry struct {
	ID          string
	Block       PlanBlock
	SubjectID   string
	GroupName   string
	Description string
	Hours       int
}

// GeneralInfo is the header section of a work plan.
type GeneralInfo struct {
	FacultyID       string
	ProgramID       string
	VinculationType VinculationType
	Dedication      int
}

// BlockHours is the per-block derived hour cache of a work plan. It is
// recomputed from the entries on every save and never trusted as input.
type BlockHours struct {
	Docencia      int
	ApoyoDocencia int
	TrabajosGrado int
	Investigacion int
	PDI           int
	Gestion       int
	Total         int
}

// WorkPlan is a professor's declared hour allocation for a period.
type WorkPlan struct {
	ID              string
	ProfessorID     string `validate:"required"`
	Period          string `validate:"required"`
	Year            int    `validate:"required,min=2000"`
	Status          WorkPlanStatus
	GeneralInfo     GeneralInfo
	Entries         []PlanEntry
	CalculatedHours BlockHours
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// GenericEntryHours is the hour weight of one activity entry in any block
// other than docencia.
const GenericEntryHours = 2

// ComputeHours derives the per-block and total hours from the plan's
// entries. Docencia sums the literal subject hours; every other block
// contributes GenericEntryHours per entry.
func (p *WorkPlan) ComputeHours() BlockHours {
	var h BlockHours
	for _, e := range p.Entries {
		switch e.Block {
		case BlockDocencia:
			h.Docencia += e.Hours
		case BlockApoyoDocencia:
			h.ApoyoDocencia += GenericEntryHours
		case BlockTrabajosGrado:
			h.TrabajosGrado += GenericEntryHours
		case BlockInvestigacion:
			h.Investigacion += GenericEntryHours
		case BlockPDI:
			h.PDI += GenericEntryHours
		case BlockGestion:
			h.Gestion += GenericEntryHours
		}
	}
	h.Total = h.Docencia + h.ApoyoDocencia + h.TrabajosGrado +
		h.Investigacion + h.PDI + h.Gestion
	return h
}

// EntriesIn returns the plan's entries belonging to the given block,
// in stored order.
func (p *WorkPlan) EntriesIn(block PlanBlock) []PlanEntry {
	var out []PlanEntry
	for _, e := range p.Entries {
		if e.Block == block {
			out = append(out, e)
		}
	}
	return out
}

// Editable reports whether the plan may still be modified.
// Signed plans are read-only.
func (p *WorkPlan) Editable() bool {
	return p.Status != PlanSigned
}
