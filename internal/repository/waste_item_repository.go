package repository

import (
	"context"

	"github.com/ecosort/backend/internal/model"
	"gorm.io/gorm"
)

type CategoryCount struct {
	Category model.WasteCategory
	Count    int64
}

type WasteItemRepository interface {
	Create(ctx context.Context, item *model.WasteItem) error
	FindByID(ctx context.Context, id string) (*model.WasteItem, error)
	List(ctx context.Context, limit, offset int, search string, category model.WasteCategory) ([]model.WasteItem, int64, error)
	Search(ctx context.Context, query string, limit int) ([]model.WasteItem, error)
	CountByCategory(ctx context.Context) ([]CategoryCount, error)
	Count(ctx context.Context) (int64, error)
}

type wasteItemRepository struct {
	db *gorm.DB
}

func NewWasteItemRepository(db *gorm.DB) WasteItemRepository {
	return &wasteItemRepository{db: db}
}

func (r *wasteItemRepository) Create(ctx context.Context, item *model.WasteItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *wasteItemRepository) FindByID(ctx context.Context, id string) (*model.WasteItem, error) {
	var item model.WasteItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *wasteItemRepository) listQuery(ctx context.Context, search string, category model.WasteCategory) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.WasteItem{})
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	return q
}

func (r *wasteItemRepository) List(ctx context.Context, limit, offset int, search string, category model.WasteCategory) ([]model.WasteItem, int64, error) {
	var total int64
	if err := r.listQuery(ctx, search, category).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []model.WasteItem
	if err := r.listQuery(ctx, search, category).
		Order("category ASC, name ASC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *wasteItemRepository) Search(ctx context.Context, query string, limit int) ([]model.WasteItem, error) {
	var items []model.WasteItem
	pattern := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Where("name LIKE ? OR disposal_instructions LIKE ?", pattern, pattern).
		Order("name ASC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *wasteItemRepository) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	var rows []CategoryCount
	if err := r.db.WithContext(ctx).Model(&model.WasteItem{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("category ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *wasteItemRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.WasteItem{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
