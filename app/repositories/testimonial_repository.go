package repositories

import (
	"context"
	"errors"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/models"
	"gorm.io/gorm"
)

type TestimonialRepositoryImpl interface {
	Create(ctx context.Context, testimonial *models.Testimonial) error
	GetByID(ctx context.Context, id string) (*models.Testimonial, error)
	GetAll(ctx context.Context) ([]models.Testimonial, error)
	Update(ctx context.Context, testimonial *models.Testimonial) error
	Delete(ctx context.Context, id string) error
}

type testimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) TestimonialRepositoryImpl {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) error {
	return r.db.WithContext(ctx).Create(testimonial).Error
}

func (r *testimonialRepository) GetByID(ctx context.Context, id string) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := r.db.WithContext(ctx).First(&testimonial, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &testimonial, nil
}

func (r *testimonialRepository) GetAll(ctx context.Context) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&testimonials).Error
	return testimonials, err
}

func (r *testimonialRepository) Update(ctx context.Context, testimonial *models.Testimonial) error {
	return r.db.WithContext(ctx).Save(testimonial).Error
}

func (r *testimonialRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Testimonial{}, "id = ?", id).Error
}
