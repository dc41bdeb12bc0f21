package migrations

import (
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Post{},
		&models.Testimonial{},
		&models.Inspiration{},
		&models.SiteConfig{},
		&models.Banner{},
	)
}
