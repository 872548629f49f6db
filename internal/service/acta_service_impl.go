package service

import (
	"context"
	"time"

	"github.com/dfrestrepo/claustro/internal/domain"
	"github.com/dfrestrepo/claustro/internal/repository"
)

type actaService struct {
	actas repository.ActaRepo
}

func NewActaService(actas repository.ActaRepo) ActaService {
	return &actaService{actas: actas}
}

func (s *actaService) Create(ctx context.Context, a *domain.Acta) error {
	if err := checkStruct("acta", a); err != nil {
		return err
	}
	if a.ID == "" {
		a.ID = domain.NewID(domain.PrefixActa)
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.actas.Create(ctx, a)
}

func (s *actaService) GetByID(ctx context.Context, id string) (*domain.Acta, error) {
	return s.actas.GetByID(ctx, id)
}

func (s *actaService) List(ctx context.Context) ([]*domain.Acta, error) {
	return s.actas.List(ctx)
}

func (s *actaService) Update(ctx context.Context, a *domain.Acta) error {
	if err := checkStruct("acta", a); err != nil {
		return err
	}
	a.UpdatedAt = time.Now().UTC()
	return s.actas.Update(ctx, a)
}

func (s *actaService) Delete(ctx context.Context, id string) error {
	return s.actas.Delete(ctx, id)
}

type documentoService struct {
	documentos repository.DocumentoRepo
}

func NewDocumentoService(documentos repository.DocumentoRepo) DocumentoService {
	return &documentoService{documentos: documentos}
}

func (s *documentoService) Create(ctx context.Context, d *domain.Documento) error {
	if err := checkStruct("documento", d); err != nil {
		return err
	}
	if d.ID == "" {
		d.ID = domain.NewID(domain.PrefixDocumento)
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	return s.documentos.Create(ctx, d)
}

func (s *documentoService) GetByID(ctx context.Context, id string) (*domain.Documento, error) {
	return s.documentos.GetByID(ctx, id)
}

func (s *documentoService) List(ctx context.Context) ([]*domain.Documento, error) {
	return s.documentos.List(ctx)
}

func (s *documentoService) Update(ctx context.Context, d *domain.Documento) error {
	if err := checkStruct("documento", d); err != nil {
		return err
	}
	d.UpdatedAt = time.Now().UTC()
	return s.documentos.Update(ctx, d)
}

// Delete removes the documento. Actas that linked it keep the stale id
// and show "N/A" when the link no longer resolves.
func (s *documentoService) Delete(ctx context.Context, id string) error {
	return s.documentos.Delete(ctx, id)
}
