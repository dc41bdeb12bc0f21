package repositories

import (
	"context"
	"errors"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/models"
	"gorm.io/gorm"
)

type InspirationRepositoryImpl interface {
	Create(ctx context.Context, inspiration *models.Inspiration) error
	GetByID(ctx context.Context, id string) (*models.Inspiration, error)
	GetAll(ctx context.Context) ([]models.Inspiration, error)
	Update(ctx context.Context, inspiration *models.Inspiration) error
	Delete(ctx context.Context, id string) error
}

type inspirationRepository struct {
	db *gorm.DB
}

func NewInspirationRepository(db *gorm.DB) InspirationRepositoryImpl {
	return &inspirationRepository{db: db}
}

func (r *inspirationRepository) Create(ctx context.Context, inspiration *models.Inspiration) error {
	return r.db.WithContext(ctx).Create(inspiration).Error
}

func (r *inspirationRepository) GetByID(ctx context.Context, id string) (*models.Inspiration, error) {
	var inspiration models.Inspiration
	err := r.db.WithContext(ctx).First(&inspiration, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inspiration, nil
}

func (r *inspirationRepository) GetAll(ctx context.Context) ([]models.Inspiration, error) {
	var inspirations []models.Inspiration
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&inspirations).Error
	return inspirations, err
}

func (r *inspirationRepository) Update(ctx context.Context, inspiration *models.Inspiration) error {
	return r.db.WithContext(ctx).Save(inspiration).Error
}

func (r *inspirationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Inspiration{}, "id = ?", id).Error
}
