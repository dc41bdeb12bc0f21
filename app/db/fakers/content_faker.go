package fakers

import (
	"math/rand"
	"time"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

func PostFaker() *models.Post {
	title := faker.Sentence()
	id := uuid.New().String()
	now := time.Now()

	return &models.Post{
		ID:          id,
		Title:       title,
		Slug:        slug.Make(title) + "-" + id[:8],
		Summary:     faker.Sentence(),
		Body:        faker.Paragraph(),
		Image:       "/images/posts/placeholder.jpg",
		Author:      faker.Name(),
		Status:      models.PostStatusPublished,
		PublishedAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestimonialFaker() *models.Testimonial {
	return &models.Testimonial{
		ID:        uuid.New().String(),
		Name:      faker.Name(),
		Body:      faker.Paragraph(),
		Rating:    rand.Intn(2) + 4,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func InspirationFaker() *models.Inspiration {
	return &models.Inspiration{
		ID:          uuid.New().String(),
		Title:       faker.Sentence(),
		Description: faker.Sentence(),
		Image:       "/images/inspiracoes/placeholder.jpg",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}
