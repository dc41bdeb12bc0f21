package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID          string         `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name        string         `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Slug        string         `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	Image       string         `gorm:"size:500" json:"image"`
	Color       string         `gorm:"size:30" json:"color"`
	Products    []Product      `gorm:"many2many:product_categories;" json:"products,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
