package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WasteCategory string

const (
	CategoryWet        WasteCategory = "WET"
	CategoryDry        WasteCategory = "DRY"
	CategoryEWaste     WasteCategory = "E_WASTE"
	CategoryHazardous  WasteCategory = "HAZARDOUS"
	CategoryRecyclable WasteCategory = "RECYCLABLE"
)

// ValidCategory reports whether s is one of the known waste categories.
func ValidCategory(s string) bool {
	switch WasteCategory(s) {
	case CategoryWet, CategoryDry, CategoryEWaste, CategoryHazardous, CategoryRecyclable:
		return true
	}
	return false
}

// DisplayName returns a human readable label for the category.
func (c WasteCategory) DisplayName() string {
	switch c {
	case CategoryWet:
		return "Wet Waste"
	case CategoryDry:
		return "Dry Waste"
	case CategoryEWaste:
		return "Electronic Waste"
	case CategoryHazardous:
		return "Hazardous Waste"
	case CategoryRecyclable:
		return "Recyclable Waste"
	}
	return string(c)
}

// WasteItem is a catalog entry describing how a kind of waste should be
// disposed of and how many points logging one unit of it is worth.
type WasteItem struct {
	ID                   string        `gorm:"primaryKey;size:36"`
	Name                 string        `gorm:"size:120;not null;index"`
	Category             WasteCategory `gorm:"size:32;not null;index"`
	BinType              WasteCategory `gorm:"size:32;not null"`
	DisposalInstructions string        `gorm:"type:text;not null"`
	Points               int           `gorm:"not null"`
	CreatedAt            time.Time     `gorm:"autoCreateTime"`
	UpdatedAt            time.Time     `gorm:"autoUpdateTime"`
}

func (WasteItem) TableName() string {
	return "waste_items"
}

func (w *WasteItem) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
