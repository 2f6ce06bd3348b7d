package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ValueLevel string

const (
	ValueLevelHigh   ValueLevel = "HIGH"
	ValueLevelMedium ValueLevel = "MEDIUM"
	ValueLevelLow    ValueLevel = "LOW"
)

type ValuableMaterial struct {
	ID          string     `gorm:"primaryKey;size:36"`
	Name        string     `gorm:"size:120;not null"`
	Description string     `gorm:"type:text;not null"`
	ImageURL    string     `gorm:"size:512"`
	ValueLevel  ValueLevel `gorm:"size:16;not null"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (ValuableMaterial) TableName() string {
	return "valuable_materials"
}

func (v *ValuableMaterial) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
