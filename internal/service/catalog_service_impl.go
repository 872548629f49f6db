package service

import (
	"context"
	"time"

	"github.com/dfrestrepo/claustro/internal/domain"
	"github.com/dfrestrepo/claustro/internal/repository"
)

type catalogService struct {
	faculties repository.FacultyRepo
	programs  repository.ProgramRepo
	subjects  repository.SubjectRepo
	items     repository.CatalogItemRepo
}

func NewCatalogService(
	faculties repository.FacultyRepo,
	programs repository.ProgramRepo,
	subjects repository.SubjectRepo,
	items repository.CatalogItemRepo,
) CatalogService {
	return &catalogService{
		faculties: faculties,
		programs:  programs,
		subjects:  subjects,
		items:     items,
	}
}

func (s *catalogService) CreateFaculty(ctx context.Context, f *domain.Faculty) error {
	if err := checkStruct("faculty", f); err != nil {
		return err
	}
	if f.ID == "" {
		f.ID = domain.NewID(domain.PrefixFaculty)
	}
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now
	return s.faculties.Create(ctx, f)
}

func (s *catalogService) ListFaculties(ctx context.Context) ([]*domain.Faculty, error) {
	return s.faculties.List(ctx)
}

func (s *catalogService) UpdateFaculty(ctx context.Context, f *domain.Faculty) error {
	if err := checkStruct("faculty", f); err != nil {
		return err
	}
	f.UpdatedAt = time.Now().UTC()
	return s.faculties.Update(ctx, f)
}

// DeleteFaculty leaves the faculty's programs in place; they keep the
// stale faculty id.
func (s *catalogService) DeleteFaculty(ctx context.Context, id string) error {
	return s.faculties.Delete(ctx, id)
}

func (s *catalogService) CreateProgram(ctx context.Context, p *domain.Program) error {
	if err := checkStruct("program", p); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = domain.NewID(domain.PrefixProgram)
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.programs.Create(ctx, p)
}

func (s *catalogService) ListPrograms(ctx context.Context) ([]*domain.Program, error) {
	return s.programs.List(ctx)
}

func (s *catalogService) ListProgramsByFaculty(ctx context.Context, facultyID string) ([]*domain.Program, error) {
	return s.programs.ListByFaculty(ctx, facultyID)
}

func (s *catalogService) UpdateProgram(ctx context.Context, p *domain.Program) error {
	if err := checkStruct("program", p); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.programs.Update(ctx, p)
}

func (s *catalogService) DeleteProgram(ctx context.Context, id string) error {
	return s.programs.Delete(ctx, id)
}

func (s *catalogService) CreateSubject(ctx context.Context, sub *domain.Subject) error {
	if err := checkStruct("subject", sub); err != nil {
		return err
	}
	if sub.ID == "" {
		sub.ID = domain.NewID(domain.PrefixSubject)
	}
	now := time.Now().UTC()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	return s.subjects.Create(ctx, sub)
}

func (s *catalogService) ListSubjects(ctx context.Context) ([]*domain.Subject, error) {
	return s.subjects.List(ctx)
}

func (s *catalogService) ListSubjectsByProgram(ctx context.Context, programID string) ([]*domain.Subject, error) {
	return s.subjects.ListByProgram(ctx, programID)
}

func (s *catalogService) UpdateSubject(ctx context.Context, sub *domain.Subject) error {
	if err := checkStruct("subject", sub); err != nil {
		return err
	}
	sub.UpdatedAt = time.Now().UTC()
	return s.subjects.Update(ctx, sub)
}

func (s *catalogService) DeleteSubject(ctx context.Context, id string) error {
	return s.subjects.Delete(ctx, id)
}

func (s *catalogService) CreateItem(ctx context.Context, c *domain.CatalogItem) error {
	if err := checkStruct("catalog item", c); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = domain.NewID(domain.CatalogPrefixes[c.Kind])
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.items.Create(ctx, c)
}

func (s *catalogService) ListItems(ctx context.Context, kind domain.CatalogKind) ([]*domain.CatalogItem, error) {
	return s.items.ListByKind(ctx, kind)
}

func (s *catalogService) UpdateItem(ctx context.Context, c *domain.CatalogItem) error {
	if err := checkStruct("catalog item", c); err != nil {
		return err
	}
	c.UpdatedAt = time.Now().UTC()
	return s.items.Update(ctx, c)
}

func (s *catalogService) DeleteItem(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}
