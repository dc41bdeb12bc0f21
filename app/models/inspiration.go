package models

import (
	"time"

	"gorm.io/gorm"
)

// Inspiration is an inspiração gallery entry.
type Inspiration struct {
	ID          string         `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Image       string         `gorm:"size:500;not null" json:"image"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
