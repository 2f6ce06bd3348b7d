package repository

import (
	"context"

	"github.com/ecosort/backend/internal/model"
	"gorm.io/gorm"
)

type ValuableMaterialRepository interface {
	Create(ctx context.Context, m *model.ValuableMaterial) error
	FindByID(ctx context.Context, id string) (*model.ValuableMaterial, error)
	List(ctx context.Context) ([]model.ValuableMaterial, error)
}

type valuableMaterialRepository struct {
	db *gorm.DB
}

func NewValuableMaterialRepository(db *gorm.DB) ValuableMaterialRepository {
	return &valuableMaterialRepository{db: db}
}

func (r *valuableMaterialRepository) Create(ctx context.Context, m *model.ValuableMaterial) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *valuableMaterialRepository) FindByID(ctx context.Context, id string) (*model.ValuableMaterial, error) {
	var m model.ValuableMaterial
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *valuableMaterialRepository) List(ctx context.Context) ([]model.ValuableMaterial, error) {
	var list []model.ValuableMaterial
	if err := r.db.WithContext(ctx).
		Order("FIELD(value_level, 'HIGH', 'MEDIUM', 'LOW')").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
