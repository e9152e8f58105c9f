package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a catalog item. Price is in whole YER. Category references a
// CategoryItem id (top-level or child); SubCategory is a free secondary tag
// outside the category hierarchy (e.g. a flower color).
type Product struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	NameAR        string    `gorm:"not null" json:"name_ar"`
	NameEN        string    `gorm:"not null" json:"name_en"`
	DescriptionAR string    `json:"description_ar,omitempty"`
	DescriptionEN string    `json:"description_en,omitempty"`
	Category      string    `gorm:"index" json:"category"`
	SubCategory   string    `json:"sub_category,omitempty"`
	Price         int       `gorm:"not null" json:"price"`
	Stock         int       `gorm:"not null" json:"stock"`
	ImageURL      string    `json:"image_url"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
