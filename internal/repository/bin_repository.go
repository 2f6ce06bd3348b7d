package repository

import (
	"context"

	"github.com/ecosort/backend/internal/model"
	"gorm.io/gorm"
)

type BinFilter struct {
	Type   model.WasteCategory
	IsFull *bool
}

type BinStatusCount struct {
	Type   model.WasteCategory
	IsFull bool
	Count  int64
}

type BinRepository interface {
	Create(ctx context.Context, b *model.Bin) error
	FindByID(ctx context.Context, id string) (*model.Bin, error)
	List(ctx context.Context, f BinFilter) ([]model.Bin, error)
	Update(ctx context.Context, b *model.Bin) error
	Count(ctx context.Context) (int64, error)
	CountFull(ctx context.Context) (int64, error)
	StatusCounts(ctx context.Context) ([]BinStatusCount, error)
}

type binRepository struct {
	db *gorm.DB
}

func NewBinRepository(db *gorm.DB) BinRepository {
	return &binRepository{db: db}
}

func (r *binRepository) Create(ctx context.Context, b *model.Bin) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *binRepository) FindByID(ctx context.Context, id string) (*model.Bin, error) {
	var b model.Bin
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *binRepository) List(ctx context.Context, f BinFilter) ([]model.Bin, error) {
	q := r.db.WithContext(ctx)
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.IsFull != nil {
		q = q.Where("is_full = ?", *f.IsFull)
	}
	var bins []model.Bin
	if err := q.Order("name ASC").Find(&bins).Error; err != nil {
		return nil, err
	}
	return bins, nil
}

func (r *binRepository) Update(ctx context.Context, b *model.Bin) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *binRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Bin{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *binRepository) CountFull(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Bin{}).
		Where("is_full = ?", true).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *binRepository) StatusCounts(ctx context.Context) ([]BinStatusCount, error) {
	var rows []BinStatusCount
	if err := r.db.WithContext(ctx).Model(&model.Bin{}).
		Select("type, is_full, COUNT(*) AS count").
		Group("type, is_full").
		Order("type ASC, is_full ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
