package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Modality is the pricing/fulfillment channel of a product: bought from the
// factory (lower price, longer lead time) or from ready-delivery stock.
type Modality string

const (
	ModalityFabrica       Modality = "fabrica"
	ModalityProntaEntrega Modality = "pronta_entrega"
)

func (m Modality) Valid() bool {
	return m == ModalityFabrica || m == ModalityProntaEntrega
}

// Label returns the display form used in customer-facing messages.
func (m Modality) Label() string {
	switch m {
	case ModalityFabrica:
		return "Fábrica"
	case ModalityProntaEntrega:
		return "Pronta Entrega"
	default:
		return string(m)
	}
}

type Product struct {
	ID                 string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name               string          `gorm:"size:255;not null" json:"name"`
	Slug               string          `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	ShortDescription   string          `gorm:"size:500" json:"short_description"`
	Description        string          `gorm:"type:text" json:"description"`
	Unit               string          `gorm:"size:50" json:"unit"`
	PriceFabrica       decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price_fabrica"`
	PriceProntaEntrega decimal.Decimal `gorm:"type:decimal(16,2);default:0.00" json:"price_pronta_entrega"`
	FabricaAvailable   bool            `gorm:"default:true" json:"fabrica_available"`
	ProntaAvailable    bool            `gorm:"default:false" json:"pronta_available"`
	DiscountPercent    decimal.Decimal `gorm:"type:decimal(10,2);default:0.00" json:"discount_percent"`
	Featured           bool            `gorm:"default:false;index" json:"featured"`
	Categories         []Category      `gorm:"many2many:product_categories;" json:"categories,omitempty"`
	ProductImages      []ProductImage  `json:"product_images,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	DeletedAt          gorm.DeletedAt  `gorm:"index" json:"-"`
}

// PriceFor resolves the unit price charged under a modality.
func (p *Product) PriceFor(m Modality) decimal.Decimal {
	if m == ModalityProntaEntrega {
		return p.PriceProntaEntrega
	}
	return p.PriceFabrica
}

// AvailableFor reports whether the product can be quoted under a modality.
func (p *Product) AvailableFor(m Modality) bool {
	if m == ModalityProntaEntrega {
		return p.ProntaAvailable
	}
	return p.FabricaAvailable
}

type ProductCategory struct {
	ProductID  string `gorm:"size:36;primaryKey"`
	CategoryID string `gorm:"size:36;primaryKey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
