package repository

import (
	"context"

	"github.com/ecosort/backend/internal/model"
	"gorm.io/gorm"
)

type ScrapPriceRepository interface {
	Create(ctx context.Context, p *model.ScrapPrice) error
	FindByID(ctx context.Context, id string) (*model.ScrapPrice, error)
	List(ctx context.Context) ([]model.ScrapPrice, error)
	Update(ctx context.Context, p *model.ScrapPrice) error
}

type scrapPriceRepository struct {
	db *gorm.DB
}

func NewScrapPriceRepository(db *gorm.DB) ScrapPriceRepository {
	return &scrapPriceRepository{db: db}
}

func (r *scrapPriceRepository) Create(ctx context.Context, p *model.ScrapPrice) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *scrapPriceRepository) FindByID(ctx context.Context, id string) (*model.ScrapPrice, error) {
	var p model.ScrapPrice
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *scrapPriceRepository) List(ctx context.Context) ([]model.ScrapPrice, error) {
	var list []model.ScrapPrice
	if err := r.db.WithContext(ctx).
		Order("material_name ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *scrapPriceRepository) Update(ctx context.Context, p *model.ScrapPrice) error {
	return r.db.WithContext(ctx).Save(p).Error
}
