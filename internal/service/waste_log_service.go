package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecosort/backend/internal/model"
	"github.com/ecosort/backend/internal/repository"
	"gorm.io/gorm"
)

const (
	defaultQuantity = 1
	maxQuantity     = 100

	// reversalWindow bounds how long after creation a log may still be
	// deleted with a refund.
	reversalWindow = 24 * time.Hour
)

// LogResult is returned from a successful create operation.
type LogResult struct {
	Entry        *model.WasteLog
	Item         *model.WasteItem
	NewBalance   int
	PointsEarned int
}

// LogWithItem pairs a log with its catalog item for list responses.
type LogWithItem struct {
	Entry model.WasteLog
	Item  *model.WasteItem
}

// PeriodStats summarizes a user's logging activity over a period.
type PeriodStats struct {
	Days       int
	ByCategory []repository.CategoryUsage
	ByDay      []repository.DailyUsage
}

type WasteLogService interface {
	// Log records a disposal event: it verifies the catalog item, freezes the
	// awarded points into the entry, and commits the entry together with the
	// balance credit.
	Log(ctx context.Context, userID, itemID string, quantity int, area string) (*LogResult, error)
	// Delete removes one of the user's own logs and refunds exactly the
	// points the entry awarded, provided the reversal window has not passed.
	// Entries belonging to other users surface as not found.
	Delete(ctx context.Context, entryID, userID string) (int, error)
	GetForUser(ctx context.Context, entryID, userID string) (*LogWithItem, error)
	ListForUser(ctx context.Context, userID string, f repository.WasteLogFilter) ([]LogWithItem, int64, error)
	Stats(ctx context.Context, userID string, days int) (*PeriodStats, error)
}

type wasteLogService struct {
	logRepo  repository.WasteLogRepository
	itemRepo repository.WasteItemRepository
}

func NewWasteLogService(logRepo repository.WasteLogRepository, itemRepo repository.WasteItemRepository) WasteLogService {
	return &wasteLogService{logRepo: logRepo, itemRepo: itemRepo}
}

func (s *wasteLogService) Log(ctx context.Context, userID, itemID string, quantity int, area string) (*LogResult, error) {
	if userID == "" {
		return nil, errors.New("user is required")
	}
	if quantity == 0 {
		quantity = defaultQuantity
	}
	if quantity < 1 || quantity > maxQuantity {
		return nil, fmt.Errorf("quantity must be between 1 and %d", maxQuantity)
	}
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	entry := &model.WasteLog{
		UserID:      userID,
		WasteItemID: item.ID,
		Quantity:    quantity,
		Area:        area,
		// Captured once here; deletion refunds this exact amount no matter
		// what happens to the catalog item afterwards.
		Points: item.Points * quantity,
	}
	balance, err := s.logRepo.CreateWithAward(ctx, entry)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("record waste log: %w", err)
	}
	return &LogResult{
		Entry:        entry,
		Item:         item,
		NewBalance:   balance,
		PointsEarned: entry.Points,
	}, nil
}

func (s *wasteLogService) Delete(ctx context.Context, entryID, userID string) (int, error) {
	entry, err := s.logRepo.FindByIDForUser(ctx, entryID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	if !Reversible(entry.CreatedAt, time.Now()) {
		return 0, ErrReversalWindowExpired
	}
	if err := s.logRepo.DeleteWithRefund(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("delete waste log: %w", err)
	}
	return entry.Points, nil
}

// Reversible reports whether a log created at the given time may still be
// deleted with a refund as of now.
func Reversible(createdAt, now time.Time) bool {
	return now.Sub(createdAt) <= reversalWindow
}

func (s *wasteLogService) GetForUser(ctx context.Context, entryID, userID string) (*LogWithItem, error) {
	entry, err := s.logRepo.FindByIDForUser(ctx, entryID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	item, _ := s.itemRepo.FindByID(ctx, entry.WasteItemID)
	return &LogWithItem{Entry: *entry, Item: item}, nil
}

func (s *wasteLogService) ListForUser(ctx context.Context, userID string, f repository.WasteLogFilter) ([]LogWithItem, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	entries, total, err := s.logRepo.ListByUser(ctx, userID, f)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]LogWithItem, 0, len(entries))
	for _, e := range entries {
		item, _ := s.itemRepo.FindByID(ctx, e.WasteItemID)
		resp = append(resp, LogWithItem{Entry: e, Item: item})
	}
	return resp, total, nil
}

func (s *wasteLogService) Stats(ctx context.Context, userID string, days int) (*PeriodStats, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)
	byCategory, err := s.logRepo.UsageByCategory(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	byDay, err := s.logRepo.UsageByDay(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	return &PeriodStats{Days: days, ByCategory: byCategory, ByDay: byDay}, nil
}
