package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductImage struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string `gorm:"size:36;index" json:"product_id"`
	Path      string `gorm:"size:500;not null" json:"path"`
	Position  int    `gorm:"default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (pi *ProductImage) BeforeCreate(tx *gorm.DB) (err error) {
	if pi.ID == "" {
		pi.ID = uuid.New().String()
	}
	return
}
