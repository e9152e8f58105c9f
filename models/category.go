package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryItem is a catalog section. A category with a ParentID is a child
// of a top-level category; the taxonomy is one level deep.
type CategoryItem struct {
	ID            string `gorm:"primaryKey" json:"id"`
	NameAR        string `gorm:"not null" json:"name_ar"`
	NameEN        string `gorm:"not null" json:"name_en"`
	DescriptionAR string `json:"description_ar,omitempty"`
	DescriptionEN string `json:"description_en,omitempty"`
	ParentID      string `gorm:"index" json:"parentId,omitempty"`
	Icon          string `json:"icon,omitempty"`
	Color         string `json:"color,omitempty"`
}

func (c *CategoryItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

const (
	DefaultIcon  = "Layers"
	DefaultColor = "bg-pink-500"
)

var knownIcons = map[string]bool{
	"Flower": true, "Gift": true, "Heart": true, "Star": true,
	"Palette": true, "Layers": true, "Box": true,
}

var knownColors = map[string]bool{
	"bg-pink-500": true, "bg-purple-600": true, "bg-orange-500": true,
	"bg-blue-500": true, "bg-red-500": true, "bg-green-600": true,
}

// ResolveIcon maps a symbolic icon tag to a known one, defaulting to a
// generic symbol for unknown or empty tags. It never fails.
func ResolveIcon(name string) string {
	if knownIcons[name] {
		return name
	}
	return DefaultIcon
}

// ResolveColor maps a symbolic color tag to a known one, same contract as
// ResolveIcon.
func ResolveColor(tag string) string {
	if knownColors[tag] {
		return tag
	}
	return DefaultColor
}
