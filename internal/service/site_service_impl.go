package service

import (
	"context"
	"time"

	"github.com/dfrestrepo/claustro/internal/domain"
	"github.com/dfrestrepo/claustro/internal/repository"
)

type siteService struct {
	sites repository.SiteRepo
}

func NewSiteService(sites repository.SiteRepo) SiteService {
	return &siteService{sites: sites}
}

func (s *siteService) Create(ctx context.Context, site *domain.PracticumSite) error {
	if err := checkStruct("practicum site", site); err != nil {
		return err
	}
	if site.ID == "" {
		site.ID = domain.NewID(domain.PrefixSite)
	}
	now := time.Now().UTC()
	site.CreatedAt = now
	site.UpdatedAt = now
	return s.sites.Create(ctx, site)
}

func (s *siteService) GetByID(ctx context.Context, id string) (*domain.PracticumSite, error) {
	return s.sites.GetByID(ctx, id)
}

func (s *siteService) List(ctx context.Context) ([]*domain.PracticumSite, error) {
	return s.sites.List(ctx)
}

func (s *siteService) Update(ctx context.Context, site *domain.PracticumSite) error {
	if err := checkStruct("practicum site", site); err != nil {
		return err
	}
	site.UpdatedAt = time.Now().UTC()
	return s.sites.Update(ctx, site)
}

func (s *siteService) Delete(ctx context.Context, id string) error {
	return s.sites.Delete(ctx, id)
}
