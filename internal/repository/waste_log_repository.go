package repository

import (
	"context"
	"time"

	"github.com/ecosort/backend/internal/model"
	"gorm.io/gorm"
)

type WasteLogFilter struct {
	Category model.WasteCategory
	Since    *time.Time
	Until    *time.Time
	Limit    int
	Offset   int
}

type CategoryUsage struct {
	Category model.WasteCategory
	Quantity int64
	Points   int64
	Logs     int64
}

type DailyUsage struct {
	Day      string
	Quantity int64
	Points   int64
	Logs     int64
}

type ItemActivity struct {
	WasteItemID string
	Name        string
	Category    model.WasteCategory
	Logs        int64
}

type WasteLogRepository interface {
	// CreateWithAward inserts the log and credits the user's points inside a
	// single transaction, returning the user's new balance. Both writes commit
	// together or not at all.
	CreateWithAward(ctx context.Context, entry *model.WasteLog) (int, error)
	// DeleteWithRefund removes the log and debits the points it awarded inside
	// a single transaction.
	DeleteWithRefund(ctx context.Context, entry *model.WasteLog) error
	FindByIDForUser(ctx context.Context, id, userID string) (*model.WasteLog, error)
	ListByUser(ctx context.Context, userID string, f WasteLogFilter) ([]model.WasteLog, int64, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	CountByItem(ctx context.Context, itemID string) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]model.WasteLog, error)
	UsageByCategory(ctx context.Context, userID string, since time.Time) ([]CategoryUsage, error)
	UsageByDay(ctx context.Context, userID string, since time.Time) ([]DailyUsage, error)
	CountBetween(ctx context.Context, from, to time.Time) (int64, error)
	SumPointsBetween(ctx context.Context, from, to time.Time) (int64, error)
	ItemActivityBetween(ctx context.Context, from, to time.Time) ([]ItemActivity, error)
}

type wasteLogRepository struct {
	db *gorm.DB
}

func NewWasteLogRepository(db *gorm.DB) WasteLogRepository {
	return &wasteLogRepository{db: db}
}

func (r *wasteLogRepository) CreateWithAward(ctx context.Context, entry *model.WasteLog) (int, error) {
	var balance int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		res := tx.Model(&model.User{}).
			Where("id = ?", entry.UserID).
			Update("points", gorm.Expr("points + ?", entry.Points))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&model.User{}).
			Select("points").
			Where("id = ?", entry.UserID).
			Scan(&balance).Error
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (r *wasteLogRepository) DeleteWithRefund(ctx context.Context, entry *model.WasteLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", entry.ID, entry.UserID).
			Delete(&model.WasteLog{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&model.User{}).
			Where("id = ?", entry.UserID).
			Update("points", gorm.Expr("points - ?", entry.Points)).Error
	})
}

func (r *wasteLogRepository) FindByIDForUser(ctx context.Context, id, userID string) (*model.WasteLog, error) {
	var entry model.WasteLog
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *wasteLogRepository) listQuery(ctx context.Context, userID string, f WasteLogFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.WasteLog{}).Where("waste_logs.user_id = ?", userID)
	if f.Category != "" {
		q = q.Joins("JOIN waste_items ON waste_items.id = waste_logs.waste_item_id").
			Where("waste_items.category = ?", f.Category)
	}
	if f.Since != nil {
		q = q.Where("waste_logs.created_at >= ?", *f.Since)
	}
	if f.Until != nil {
		q = q.Where("waste_logs.created_at <= ?", *f.Until)
	}
	return q
}

func (r *wasteLogRepository) ListByUser(ctx context.Context, userID string, f WasteLogFilter) ([]model.WasteLog, int64, error) {
	var total int64
	if err := r.listQuery(ctx, userID, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.WasteLog
	if err := r.listQuery(ctx, userID, f).
		Order("waste_logs.created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *wasteLogRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.WasteLog{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *wasteLogRepository) CountByItem(ctx context.Context, itemID string) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.WasteLog{}).
		Where("waste_item_id = ?", itemID).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *wasteLogRepository) ListRecent(ctx context.Context, limit int) ([]model.WasteLog, error) {
	var list []model.WasteLog
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *wasteLogRepository) UsageByCategory(ctx context.Context, userID string, since time.Time) ([]CategoryUsage, error) {
	var rows []CategoryUsage
	if err := r.db.WithContext(ctx).Model(&model.WasteLog{}).
		Select("waste_items.category AS category, SUM(waste_logs.quantity) AS quantity, SUM(waste_logs.points) AS points, COUNT(*) AS logs").
		Joins("JOIN waste_items ON waste_items.id = waste_logs.waste_item_id").
		Where("waste_logs.user_id = ? AND waste_logs.created_at >= ?", userID, since).
		Group("waste_items.category").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *wasteLogRepository) UsageByDay(ctx context.Context, userID string, since time.Time) ([]DailyUsage, error) {
	var rows []DailyUsage
	if err := r.db.WithContext(ctx).Model(&model.WasteLog{}).
		Select("DATE_FORMAT(created_at, '%Y-%m-%d') AS day, SUM(quantity) AS quantity, SUM(points) AS points, COUNT(*) AS logs").
		Where("user_id = ? AND created_at >= ?", userID, since).
		Group("day").
		Order("day DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *wasteLogRepository) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.WasteLog{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *wasteLogRepository) SumPointsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var sum int64
	if err := r.db.WithContext(ctx).Model(&model.WasteLog{}).
		Select("COALESCE(SUM(points), 0)").
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&sum).Error; err != nil {
		return 0, err
	}
	return sum, nil
}

func (r *wasteLogRepository) ItemActivityBetween(ctx context.Context, from, to time.Time) ([]ItemActivity, error) {
	var rows []ItemActivity
	if err := r.db.WithContext(ctx).Model(&model.WasteLog{}).
		Select("waste_logs.waste_item_id AS waste_item_id, waste_items.name AS name, waste_items.category AS category, COUNT(*) AS logs").
		Joins("JOIN waste_items ON waste_items.id = waste_logs.waste_item_id").
		Where("waste_logs.created_at >= ? AND waste_logs.created_at < ?", from, to).
		Group("waste_logs.waste_item_id, waste_items.name, waste_items.category").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
