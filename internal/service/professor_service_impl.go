package service

import (
	"context"
	"time"

	"github.com/dfrestrepo/claustro/internal/domain"
	"github.com/dfrestrepo/claustro/internal/repository"
)

type professorService struct {
	professors repository.ProfessorRepo
}

func NewProfessorService(professors repository.ProfessorRepo) ProfessorService {
	return &professorService{professors: professors}
}

func (s *professorService) Create(ctx context.Context, p *domain.Professor) error {
	if err := checkStruct("professor", p); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = domain.NewID(domain.PrefixProfessor)
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.professors.Create(ctx, p)
}

func (s *professorService) GetByID(ctx context.Context, id string) (*domain.Professor, error) {
	return s.professors.GetByID(ctx, id)
}

func (s *professorService) List(ctx context.Context) ([]*domain.Professor, error) {
	return s.professors.List(ctx)
}

func (s *professorService) Update(ctx context.Context, p *domain.Professor) error {
	if err := checkStruct("professor", p); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.professors.Update(ctx, p)
}

// Delete removes the professor only. Groups, sites, and plans that point
// at the id keep their reference and render a placeholder from then on.
func (s *professorService) Delete(ctx context.Context, id string) error {
	return s.professors.Delete(ctx, id)
}
