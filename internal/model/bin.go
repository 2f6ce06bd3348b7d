package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bin is a physical waste bin at a fixed WGS84 location. IsFull only moves
// from false to true through the report-full endpoint; emptying happens
// outside this system.
type Bin struct {
	ID        string        `gorm:"primaryKey;size:36"`
	Name      string        `gorm:"size:120;not null"`
	Latitude  float64       `gorm:"not null"`
	Longitude float64       `gorm:"not null"`
	Type      WasteCategory `gorm:"size:32;not null;index"`
	Capacity  int           `gorm:"not null"`
	IsFull    bool          `gorm:"not null;default:false"`
	CreatedAt time.Time     `gorm:"autoCreateTime"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime"`
}

func (Bin) TableName() string {
	return "bins"
}

func (b *Bin) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
