package repository

import (
	"context"

	"github.com/dfrestrepo/claustro/internal/domain"
)

type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Upsert(ctx context.Context, u *domain.User) error
	UpdatePassword(ctx context.Context, username, password string) error
}

type ProfessorRepo interface {
	Create(ctx context.Context, p *domain.Professor) error
	GetByID(ctx context.Context, id string) (*domain.Professor, error)
	List(ctx context.Context) ([]*domain.Professor, error)
	Update(ctx context.Context, p *domain.Professor) error
	Delete(ctx context.Context, id string) error
}

type GroupRepo interface {
	Create(ctx context.Context, g *domain.Group) error
	GetByID(ctx context.Context, id string) (*domain.Group, error)
	List(ctx context.Context) ([]*domain.Group, error)
	Update(ctx context.Context, g *domain.Group) error
	Delete(ctx context.Context, id string) error
}

type ActaRepo interface {
	Create(ctx context.Context, a *domain.Acta) error
	GetByID(ctx context.Context, id string) (*domain.Acta, error)
	List(ctx context.Context) ([]*domain.Acta, error)
	Update(ctx context.Context, a *domain.Acta) error
	Delete(ctx context.Context, id string) error
}

type DocumentoRepo interface {
	Create(ctx context.Context, d *domain.Documento) error
	GetByID(ctx context.Context, id string) (*domain.Documento, error)
	List(ctx context.Context) ([]*domain.Documento, error)
	Update(ctx context.Context, d *domain.Documento) error
	Delete(ctx context.Context, id string) error
}

type SiteRepo interface {
	Create(ctx context.Context, s *domain.PracticumSite) error
	GetByID(ctx context.Context, id string) (*domain.PracticumSite, error)
	List(ctx context.Context) ([]*domain.PracticumSite, error)
	Update(ctx context.Context, s *domain.PracticumSite) error
	Delete(ctx context.Context, id string) error
}

// WorkPlanRepo persists plans together with their block entries.
// Save replaces the entry set wholesale; callers run it inside a
// unit of work so a failure leaves no partial state.
type WorkPlanRepo interface {
	Create(ctx context.Context, p *domain.WorkPlan) error
	GetByID(ctx context.Context, id string) (*domain.WorkPlan, error)
	List(ctx context.Context) ([]*domain.WorkPlan, error)
	ListByProfessor(ctx context.Context, professorID string) ([]*domain.WorkPlan, error)
	Update(ctx context.Context, p *domain.WorkPlan) error
	Delete(ctx context.Context, id string) error
}

type ImprovementPlanRepo interface {
	Create(ctx context.Context, p *domain.ImprovementPlan) error
	GetByID(ctx context.Context, id string) (*domain.ImprovementPlan, error)
	List(ctx context.Context) ([]*domain.ImprovementPlan, error)
	Update(ctx context.Context, p *domain.ImprovementPlan) error
	Delete(ctx context.Context, id string) error
}

type FactorRepo interface {
	Create(ctx context.Context, f *domain.ImprovementFactor) error
	GetByID(ctx context.Context, id string) (*domain.ImprovementFactor, error)
	ListByPlan(ctx context.Context, planID string) ([]*domain.ImprovementFactor, error)
	Update(ctx context.Context, f *domain.ImprovementFactor) error
	Delete(ctx context.Context, id string) error
}

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.ImprovementActivity) error
	GetByID(ctx context.Context, id string) (*domain.ImprovementActivity, error)
	ListByFactor(ctx context.Context, factorID string) ([]*domain.ImprovementActivity, error)
	List(ctx context.Context) ([]*domain.ImprovementActivity, error)
	Update(ctx context.Context, a *domain.ImprovementActivity) error
	Delete(ctx context.Context, id string) error
}

type FacultyRepo interface {
	Create(ctx context.Context, f *domain.Faculty) error
	GetByID(ctx context.Context, id string) (*domain.Faculty, error)
	List(ctx context.Context) ([]*domain.Faculty, error)
	Update(ctx context.Context, f *domain.Faculty) error
	Delete(ctx context.Context, id string) error
}

type ProgramRepo interface {
	Create(ctx context.Context, p *domain.Program) error
	GetByID(ctx context.Context, id string) (*domain.Program, error)
	List(ctx context.Context) ([]*domain.Program, error)
	ListByFaculty(ctx context.Context, facultyID string) ([]*domain.Program, error)
	Update(ctx context.Context, p *domain.Program) error
	Delete(ctx context.Context, id string) error
}

type SubjectRepo interface {
	Create(ctx context.Context, s *domain.Subject) error
	GetByID(ctx context.Context, id string) (*domain.Subject, error)
	List(ctx context.Context) ([]*domain.Subject, error)
	ListByProgram(ctx context.Context, programID string) ([]*domain.Subject, error)
	Update(ctx context.Context, s *domain.Subject) error
	Delete(ctx context.Context, id string) error
}

type CatalogItemRepo interface {
	Create(ctx context.Context, c *domain.CatalogItem) error
	GetByID(ctx context.Context, id string) (*domain.CatalogItem, error)
	ListByKind(ctx context.Context, kind domain.CatalogKind) ([]*domain.CatalogItem, error)
	Update(ctx context.Context, c *domain.CatalogItem) error
	Delete(ctx context.Context, id string) error
}
