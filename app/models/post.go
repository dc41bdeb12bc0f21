package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

type Post struct {
	ID          string         `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Slug        string         `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Summary     string         `gorm:"size:500" json:"summary"`
	Body        string         `gorm:"type:longtext" json:"body"`
	Image       string         `gorm:"size:500" json:"image"`
	Author      string         `gorm:"size:120" json:"author"`
	Status      string         `gorm:"size:20;default:'draft';index" json:"status"`
	PublishedAt *time.Time     `json:"published_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
