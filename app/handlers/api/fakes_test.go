package api

import (
	"context"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/models"
)

type fakeProductRepo struct {
	products    map[string]*models.Product
	createCalls int
	deleteCalls []string
}

func newFakeProductRepo(products ...*models.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[string]*models.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeProductRepo) GetAll(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) GetPaginated(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	all, _ := f.GetAll(ctx)
	return all, int64(len(all)), nil
}

func (f *fakeProductRepo) GetByCategorySlugPaginated(ctx context.Context, slug string, limit, offset int) ([]models.Product, int64, error) {
	var out []models.Product
	for _, p := range f.products {
		for _, c := range p.Categories {
			if c.Slug == slug {
				out = append(out, *p)
				break
			}
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Product, int64, error) {
	all, _ := f.GetAll(ctx)
	return all, int64(len(all)), nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	for _, p := range f.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if p.Featured {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	f.createCalls++
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *models.Product, categories []models.Category, images []models.ProductImage) error {
	product.Categories = categories
	product.ProductImages = images
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	f.deleteCalls = append(f.deleteCalls, id)
	delete(f.products, id)
	return nil
}

type fakeCategoryRepo struct {
	categories    map[string]*models.Category
	productCounts map[string]int64
	deleteCalls   []string
}

func newFakeCategoryRepo(categories ...*models.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{
		categories:    make(map[string]*models.Category),
		productCounts: make(map[string]int64),
	}
	for _, c := range categories {
		repo.categories[c.ID] = c
	}
	return repo
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	return f.categories[id], nil
}

func (f *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Category, error) {
	var out []models.Category
	for _, id := range ids {
		if c, ok := f.categories[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *models.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	f.deleteCalls = append(f.deleteCalls, id)
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) CountProducts(ctx context.Context, categoryID string) (int64, error) {
	return f.productCounts[categoryID], nil
}

type fakeSiteConfigRepo struct {
	config *models.SiteConfig
}

func (f *fakeSiteConfigRepo) GetOrCreate(ctx context.Context) (*models.SiteConfig, error) {
	if f.config == nil {
		f.config = &models.SiteConfig{ID: models.SiteConfigID}
	}
	return f.config, nil
}

func (f *fakeSiteConfigRepo) Update(ctx context.Context, config *models.SiteConfig, banners []models.Banner) error {
	config.Banners = banners
	f.config = config
	return nil
}
