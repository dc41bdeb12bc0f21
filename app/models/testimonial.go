package models

import (
	"time"

	"gorm.io/gorm"
)

// Testimonial is a customer depoimento shown on the storefront.
type Testimonial struct {
	ID        string         `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name      string         `gorm:"size:120;not null" json:"name"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	Rating    int            `gorm:"not null;default:5" json:"rating"`
	Photo     string         `gorm:"size:500" json:"photo"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
