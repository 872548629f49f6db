package testutil

import (
	"time"

	"github.com/dfrestrepo/claustro/internal/domain"
	"github.com/google/uuid"
)

// Professor options
type ProfessorOption func(*domain.Professor)

func WithEmail(email string) ProfessorOption {
	return func(p *domain.Professor) { p.Email = email }
}

func WithSpecialty(s string) ProfessorOption {
	return func(p *domain.Professor) { p.Specialty = s }
}

func NewTestProfessor(name string, opts ...ProfessorOption) *domain.Professor {
	now := time.Now().UTC()
	p := &domain.Professor{
		ID:             domain.NewID(domain.PrefixProfessor),
		Name:           name,
		Identification: uuid.New().String()[:8],
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Group options
type GroupOption func(*domain.Group)

func WithAdvisor(advisorID string) GroupOption {
	return func(g *domain.Group) { g.AdvisorID = advisorID }
}

func NewTestGroup(name string, opts ...GroupOption) *domain.Group {
	now := time.Now().UTC()
	g := &domain.Group{
		ID:        domain.NewID(domain.PrefixGroup),
		Name:      name,
		Date:      now.Truncate(24 * time.Hour),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func NewTestDocumento(title string) *domain.Documento {
	now := time.Now().UTC()
	return &domain.Documento{
		ID:        domain.NewID(domain.PrefixDocumento),
		Title:     title,
		Type:      "formato",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestActa(group string) *domain.Acta {
	now := time.Now().UTC()
	return &domain.Acta{
		ID:        domain.NewID(domain.PrefixActa),
		Group:     group,
		Type:      "seguimiento",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestSite(company string) *domain.PracticumSite {
	now := time.Now().UTC()
	return &domain.PracticumSite{
		ID:          domain.NewID(domain.PrefixSite),
		CompanyName: company,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// WorkPlan options
type WorkPlanOption func(*domain.WorkPlan)

func WithStatus(s domain.WorkPlanStatus) WorkPlanOption {
	return func(p *domain.WorkPlan) { p.Status = s }
}

func WithEntries(entries ...domain.PlanEntry) WorkPlanOption {
	return func(p *domain.WorkPlan) {
		for i := range entries {
			if entries[i].ID == "" {
				entries[i].ID = uuid.New().String()
			}
		}
		p.Entries = entries
	}
}

func NewTestWorkPlan(professorID string, opts ...WorkPlanOption) *domain.WorkPlan {
	now := time.Now().UTC()
	p := &domain.WorkPlan{
		ID:          domain.NewID(domain.PrefixWorkPlan),
		ProfessorID: professorID,
		Period:      "2024-2",
		Year:        2024,
		Status:      domain.PlanDraft,
		GeneralInfo: domain.GeneralInfo{
			VinculationType: domain.VinculationPlanta,
			Dedication:      domain.VinculationPlanta.DefaultDedication(),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewTestImprovementPlan(name string) *domain.ImprovementPlan {
	now := time.Now().UTC()
	return &domain.ImprovementPlan{
		ID:        domain.NewID(domain.PrefixImprovement),
		Name:      name,
		Year:      now.Year(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestFactor(planID, name string) *domain.ImprovementFactor {
	now := time.Now().UTC()
	return &domain.ImprovementFactor{
		ID:        domain.NewID(domain.PrefixFactor),
		PlanID:    planID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestActivity(factorID, description string) *domain.ImprovementActivity {
	now := time.Now().UTC()
	return &domain.ImprovementActivity{
		ID:          domain.NewID(domain.PrefixActivity),
		FactorID:    factorID,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func NewTestFaculty(name string) *domain.Faculty {
	now := time.Now().UTC()
	return &domain.Faculty{
		ID:        domain.NewID(domain.PrefixFaculty),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestProgram(facultyID, name string) *domain.Program {
	now := time.Now().UTC()
	return &domain.Program{
		ID:        domain.NewID(domain.PrefixProgram),
		FacultyID: facultyID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestSubject(programID, name string) *domain.Subject {
	now := time.Now().UTC()
	return &domain.Subject{
		ID:        domain.NewID(domain.PrefixSubject),
		ProgramID: programID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestCatalogItem(kind domain.CatalogKind, name string) *domain.CatalogItem {
	now := time.Now().UTC()
	return &domain.CatalogItem{
		ID:        domain.NewID(domain.CatalogPrefixes[kind]),
		Kind:      kind,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestUser(username string, role domain.Role) *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		Username:  username,
		Password:  uuid.New().String()[:12],
		Role:      role,
		Name:      username,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
