package seeders

import (
	"log"
	"time"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/db/fakers"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const productsPerCategory = 4

// DBSeed populates a development database with categories, products and
// storefront content. Categories are upserted by slug so the seed can run
// more than once without duplicating them.
func DBSeed(db *gorm.DB) error {
	categories := fakers.CategoryFakers()
	for _, category := range categories {
		if err := db.Where("slug = ?", category.Slug).FirstOrCreate(category).Error; err != nil {
			return err
		}
	}
	log.Printf("Seeder: %d categorias prontas", len(categories))

	for _, category := range categories {
		for i := 0; i < productsPerCategory; i++ {
			if err := db.Create(fakers.ProductFaker(category)).Error; err != nil {
				return err
			}
		}
	}
	log.Printf("Seeder: %d produtos criados", len(categories)*productsPerCategory)

	for i := 0; i < 5; i++ {
		if err := db.Create(fakers.PostFaker()).Error; err != nil {
			return err
		}
		if err := db.Create(fakers.TestimonialFaker()).Error; err != nil {
			return err
		}
		if err := db.Create(fakers.InspirationFaker()).Error; err != nil {
			return err
		}
	}
	log.Println("Seeder: posts, depoimentos e inspirações criados")

	return seedSiteConfig(db)
}

func seedSiteConfig(db *gorm.DB) error {
	config := models.SiteConfig{
		ID:            models.SiteConfigID,
		Phone:         "(11) 4000-0000",
		WhatsAppPhone: "5511999990000",
		Email:         "contato@ecolar.com.br",
		Address:       "Av. das Construções, 1200 - São Paulo, SP",
		FooterText:    "Ecolar Materiais de Construção - tudo para sua obra.",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&config).Error
}
