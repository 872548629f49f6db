package service

import (
	"context"
	"time"

	"github.com/dfrestrepo/claustro/internal/domain"
	"github.com/dfrestrepo/claustro/internal/repository"
)

type groupService struct {
	groups repository.GroupRepo
}

func NewGroupService(groups repository.GroupRepo) GroupService {
	return &groupService{groups: groups}
}

func (s *groupService) Create(ctx context.Context, g *domain.Group) error {
	if err := checkStruct("group", g); err != nil {
		return err
	}
	if g.ID == "" {
		g.ID = domain.NewID(domain.PrefixGroup)
	}
	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now
	return s.groups.Create(ctx, g)
}

func (s *groupService) GetByID(ctx context.Context, id string) (*domain.Group, error) {
	return s.groups.GetByID(ctx, id)
}

func (s *groupService) List(ctx context.Context) ([]*domain.Group, error) {
	return s.groups.List(ctx)
}

func (s *groupService) Update(ctx context.Context, g *domain.Group) error {
	if err := checkStruct("group", g); err != nil {
		return err
	}
	g.UpdatedAt = time.Now().UTC()
	return s.groups.Update(ctx, g)
}

func (s *groupService) Delete(ctx context.Context, id string) error {
	return s.groups.Delete(ctx, id)
}
