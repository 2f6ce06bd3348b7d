package service

import (
	"context"
	"errors"

	"github.com/ecosort/backend/internal/model"
	"github.com/ecosort/backend/internal/repository"
	"gorm.io/gorm"
)

type ValuableMaterialService interface {
	List(ctx context.Context) ([]model.ValuableMaterial, error)
	Get(ctx context.Context, id string) (*model.ValuableMaterial, error)
}

type valuableMaterialService struct {
	repo repository.ValuableMaterialRepository
}

func NewValuableMaterialService(repo repository.ValuableMaterialRepository) ValuableMaterialService {
	return &valuableMaterialService{repo: repo}
}

func (s *valuableMaterialService) List(ctx context.Context) ([]model.ValuableMaterial, error) {
	return s.repo.List(ctx)
}

func (s *valuableMaterialService) Get(ctx context.Context, id string) (*model.ValuableMaterial, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}
