package fakers

import (
	"time"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type categorySeed struct {
	name  string
	color string
}

var categorySeeds = []categorySeed{
	{"Cimentos e Argamassas", "#7c6f5a"},
	{"Blocos e Tijolos", "#b04a2f"},
	{"Agregados", "#8d8d8d"},
	{"Telhas e Coberturas", "#a33e2a"},
	{"Pisos e Revestimentos", "#4a6b8a"},
	{"Hidráulica", "#2a7fa3"},
	{"Tintas e Acabamentos", "#4f8a4a"},
}

func CategoryFakers() []*models.Category {
	categories := make([]*models.Category, 0, len(categorySeeds))
	for _, seed := range categorySeeds {
		categories = append(categories, &models.Category{
			ID:          uuid.New().String(),
			Name:        seed.name,
			Slug:        slug.Make(seed.name),
			Description: faker.Sentence(),
			Color:       seed.color,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		})
	}
	return categories
}
