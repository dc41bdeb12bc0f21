package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteConfigID pins the configuracoes table to a single row.
const SiteConfigID = "site-config"

type SiteConfig struct {
	ID            string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Phone         string    `gorm:"size:30" json:"phone"`
	WhatsAppPhone string    `gorm:"size:30" json:"whatsapp_phone"`
	Email         string    `gorm:"size:120" json:"email"`
	Address       string    `gorm:"size:255" json:"address"`
	FooterText    string    `gorm:"type:text" json:"footer_text"`
	LogoURL       string    `gorm:"size:500" json:"logo_url"`
	LogoDarkURL   string    `gorm:"size:500" json:"logo_dark_url"`
	Banners       []Banner  `gorm:"foreignKey:SiteConfigID" json:"banners"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Banner is one hero-carousel slide. Optional image variants fall back to the
// desktop image at the boundary instead of being null-coalesced per caller.
type Banner struct {
	ID           string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	SiteConfigID string    `gorm:"size:36;index" json:"-"`
	DesktopImage string    `gorm:"size:500;not null" json:"desktop_image"`
	TabletImage  string    `gorm:"size:500" json:"tablet_image"`
	MobileImage  string    `gorm:"size:500" json:"mobile_image"`
	Link         string    `gorm:"size:500" json:"link"`
	Position     int       `gorm:"default:0" json:"position"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (b *Banner) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}

// ApplyDefaults fills the optional image variants from the desktop image.
func (b *Banner) ApplyDefaults() {
	if b.TabletImage == "" {
		b.TabletImage = b.DesktopImage
	}
	if b.MobileImage == "" {
		b.MobileImage = b.DesktopImage
	}
}
