package repositories

import (
	"context"
	"errors"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/models"
	"gorm.io/gorm"
)

type SiteConfigRepositoryImpl interface {
	GetOrCreate(ctx context.Context) (*models.SiteConfig, error)
	Update(ctx context.Context, config *models.SiteConfig, banners []models.Banner) error
}

type siteConfigRepository struct {
	db *gorm.DB
}

func NewSiteConfigRepository(db *gorm.DB) SiteConfigRepositoryImpl {
	return &siteConfigRepository{db: db}
}

// GetOrCreate returns the singleton configuracoes row, creating an empty one
// on first access.
func (r *siteConfigRepository) GetOrCreate(ctx context.Context) (*models.SiteConfig, error) {
	var config models.SiteConfig
	err := r.db.WithContext(ctx).
		Preload("Banners", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&config, "id = ?", models.SiteConfigID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		config = models.SiteConfig{ID: models.SiteConfigID}
		if createErr := r.db.WithContext(ctx).Create(&config).Error; createErr != nil {
			return nil, createErr
		}
	}
	return &config, nil
}

// Update saves the singleton row and replaces its banner list wholesale,
// keeping banner ordering authoritative in one place.
func (r *siteConfigRepository) Update(ctx context.Context, config *models.SiteConfig, banners []models.Banner) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Banners").Save(config).Error; err != nil {
			return err
		}
		if err := tx.Where("site_config_id = ?", config.ID).Delete(&models.Banner{}).Error; err != nil {
			return err
		}
		for i := range banners {
			banners[i].SiteConfigID = config.ID
			banners[i].Position = i
			banners[i].ApplyDefaults()
		}
		if len(banners) > 0 {
			if err := tx.Create(&banners).Error; err != nil {
				return err
			}
		}
		config.Banners = banners
		return nil
	})
}
