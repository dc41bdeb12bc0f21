package fakers

import (
	"math/rand"
	"time"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

var productNames = []string{
	"Cimento CP-II 50kg",
	"Argamassa AC-III 20kg",
	"Tijolo Baiano 9 Furos",
	"Bloco de Concreto 14x19x39",
	"Areia Média Lavada m³",
	"Brita 1 m³",
	"Telha Cerâmica Portuguesa",
	"Piso Porcelanato Polido 60x60",
	"Vergalhão CA-50 10mm",
	"Tubo PVC Esgoto 100mm",
	"Tinta Acrílica Fosca 18L",
	"Massa Corrida PVA 25kg",
}

var productUnits = []string{"saco", "unidade", "m³", "m²", "barra", "lata"}

func ProductFaker(category *models.Category) *models.Product {
	name := productNames[rand.Intn(len(productNames))]
	productID := uuid.New().String()

	imagePaths := []string{
		"/images/produtos/placeholder-1.jpg",
		"/images/produtos/placeholder-2.jpg",
		"/images/produtos/placeholder-3.jpg",
	}

	numImages := rand.Intn(3) + 1
	productImages := make([]models.ProductImage, numImages)
	for i := 0; i < numImages; i++ {
		productImages[i] = models.ProductImage{
			ID:        uuid.New().String(),
			ProductID: productID,
			Path:      imagePaths[rand.Intn(len(imagePaths))],
			Position:  i,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
	}

	priceFabrica := fakePrice(15, 400)

	product := &models.Product{
		ID:                 productID,
		Name:               name,
		Slug:               slug.Make(name) + "-" + productID[:8],
		ShortDescription:   faker.Sentence(),
		Description:        faker.Paragraph(),
		Unit:               productUnits[rand.Intn(len(productUnits))],
		PriceFabrica:       priceFabrica,
		PriceProntaEntrega: priceFabrica.Mul(decimal.NewFromFloat(1.15)).Round(2),
		FabricaAvailable:   true,
		ProntaAvailable:    rand.Intn(2) == 0,
		DiscountPercent:    decimal.NewFromInt(int64(rand.Intn(3) * 5)),
		Featured:           rand.Intn(4) == 0,
		Categories:         []models.Category{*category},
		ProductImages:      productImages,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	return product
}

func fakePrice(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(min + rand.Float64()*(max-min)).Round(2)
}
