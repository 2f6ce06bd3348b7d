package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WasteLog records one disposal event. Points holds the amount credited to the
// user at creation time (base points x quantity). It is captured once and never
// recomputed, so deleting the log can refund exactly what was awarded even if
// the catalog item's point value changes later.
type WasteLog struct {
	ID          string    `gorm:"primaryKey;size:36"`
	UserID      string    `gorm:"size:36;not null;index"`
	WasteItemID string    `gorm:"size:36;not null;index"`
	Quantity    int       `gorm:"not null;default:1"`
	Points      int       `gorm:"not null"`
	Area        string    `gorm:"size:100"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}

func (WasteLog) TableName() string {
	return "waste_logs"
}

func (w *WasteLog) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
