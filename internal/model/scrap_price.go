package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScrapPrice struct {
	ID           string    `gorm:"primaryKey;size:36"`
	MaterialName string    `gorm:"size:120;uniqueIndex;not null"`
	PricePerKg   float64   `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (ScrapPrice) TableName() string {
	return "scrap_prices"
}

func (s *ScrapPrice) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
