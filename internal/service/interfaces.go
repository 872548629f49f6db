package service

import (
	"context"

	"github.com/dfrestrepo/claustro/internal/domain"
)

// AuthService guards the application behind a credential check.
// Login failures never reveal whether the username or the password
// was wrong.
type AuthService interface {
	Login(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
}

type ProfessorService interface {
	Create(ctx context.Context, p *domain.Professor) error
	GetByID(ctx context.Context, id string) (*domain.Professor, error)
	List(ctx context.Context) ([]*domain.Professor, error)
	Update(ctx context.Context, p *domain.Professor) error
	Delete(ctx context.Context, id string) error
}

type GroupService interface {
	Create(ctx context.Context, g *domain.Group) error
	GetByID(ctx context.Context, id string) (*domain.Group, error)
	List(ctx context.Context) ([]*domain.Group, error)
	Update(ctx context.Context, g *domain.Group) error
	Delete(ctx context.Context, id string) error
}

type ActaService interface {
	Create(ctx context.Context, a *domain.Acta) error
	GetByID(ctx context.Context, id string) (*domain.Acta, error)
	List(ctx context.Context) ([]*domain.Acta, error)
	Update(ctx context.Context, a *domain.Acta) error
	Delete(ctx context.Context, id string) error
}

type DocumentoService interface {
	Create(ctx context.Context, d *domain.Documento) error
	GetByID(ctx context.Context, id string) (*domain.Documento, error)
	List(ctx context.Context) ([]*domain.Documento, error)
	Update(ctx context.Context, d *domain.Documento) error
	Delete(ctx context.Context, id string) error
}

type SiteService interface {
	Create(ctx context.Context, s *domain.PracticumSite) error
	GetByID(ctx context.Context, id string) (*domain.PracticumSite, error)
	List(ctx context.Context) ([]*domain.PracticumSite, error)
	Update(ctx context.Context, s *domain.PracticumSite) error
	Delete(ctx context.Context, id string) error
}

// WorkPlanService persists plans with their entries. Every save recomputes
// the derived block hours from the entries; caller-supplied totals are
// discarded. Signed plans reject modification.
type WorkPlanService interface {
	Create(ctx context.Context, p *domain.WorkPlan) error
	GetByID(ctx context.Context, id string) (*domain.WorkPlan, error)
	List(ctx context.Context) ([]*domain.WorkPlan, error)
	ListByProfessor(ctx context.Context, professorID string) ([]*domain.WorkPlan, error)
	Update(ctx context.Context, p *domain.WorkPlan) error
	SetStatus(ctx context.Context, id string, status domain.WorkPlanStatus) error
	Delete(ctx context.Context, id string) error
}

// ImprovementService manages the plan > factor > activity hierarchy.
// Deleting a plan takes its factors with it; deleting a factor leaves
// its activities in place.
type ImprovementService interface {
	CreatePlan(ctx context.Context, p *domain.ImprovementPlan) error
	ListPlans(ctx context.Context) ([]*domain.ImprovementPlan, error)
	UpdatePlan(ctx context.Context, p *domain.ImprovementPlan) error
	DeletePlan(ctx context.Context, id string) error

	CreateFactor(ctx context.Context, f *domain.ImprovementFactor) error
	ListFactors(ctx context.Context, planID string) ([]*domain.ImprovementFactor, error)
	UpdateFactor(ctx context.Context, f *domain.ImprovementFactor) error
	DeleteFactor(ctx context.Context, id string) error

	CreateActivity(ctx context.Context, a *domain.ImprovementActivity) error
	ListActivities(ctx context.Context, factorID string) ([]*domain.ImprovementActivity, error)
	ListAllActivities(ctx context.Context) ([]*domain.ImprovementActivity, error)
	UpdateActivity(ctx context.Context, a *domain.ImprovementActivity) error
	DeleteActivity(ctx context.Context, id string) error
}

// CatalogService manages the academic reference data: faculties, their
// programs, program subjects, and the simple name catalogs.
type CatalogService interface {
	CreateFaculty(ctx context.Context, f *domain.Faculty) error
	ListFaculties(ctx context.Context) ([]*domain.Faculty, error)
	UpdateFaculty(ctx context.Context, f *domain.Faculty) error
	DeleteFaculty(ctx context.Context, id string) error

	CreateProgram(ctx context.Context, p *domain.Program) error
	ListPrograms(ctx context.Context) ([]*domain.Program, error)
	ListProgramsByFaculty(ctx context.Context, facultyID string) ([]*domain.Program, error)
	UpdateProgram(ctx context.Context, p *domain.Program) error
	DeleteProgram(ctx context.Context, id string) error

	CreateSubject(ctx context.Context, s *domain.Subject) error
	ListSubjects(ctx context.Context) ([]*domain.Subject, error)
	ListSubjectsByProgram(ctx context.Context, programID string) ([]*domain.Subject, error)
	UpdateSubject(ctx context.Context, s *domain.Subject) error
	DeleteSubject(ctx context.Context, id string) error

	CreateItem(ctx context.Context, c *domain.CatalogItem) error
	ListItems(ctx context.Context, kind domain.CatalogKind) ([]*domain.CatalogItem, error)
	UpdateItem(ctx context.Context, c *domain.CatalogItem) error
	DeleteItem(ctx context.Context, id string) error
}
