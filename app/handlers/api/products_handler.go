package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/helpers"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/models"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	render       *render.Render
	validator    *validator.Validate
}

func NewProductHandler(productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, rnd *render.Render) *ProductHandler {
	return &ProductHandler{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		render:       rnd,
		validator:    validator.New(),
	}
}

type ProductPayload struct {
	Name               string          `json:"name" validate:"required,min=2,max=255"`
	ShortDescription   string          `json:"short_description" validate:"max=500"`
	Description        string          `json:"description"`
	Unit               string          `json:"unit" validate:"max=50"`
	PriceFabrica       decimal.Decimal `json:"price_fabrica"`
	PriceProntaEntrega decimal.Decimal `json:"price_pronta_entrega"`
	FabricaAvailable   *bool           `json:"fabrica_available"`
	ProntaAvailable    *bool           `json:"pronta_available"`
	DiscountPercent    decimal.Decimal `json:"discount_percent"`
	Featured           bool            `json:"featured"`
	CategoryIDs        []string        `json:"category_ids" validate:"required,min=1"`
	Images             []string        `json:"images"`
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	keyword := query.Get("q")
	categorySlug := query.Get("categoria")
	pageRaw := query.Get("page")

	if query.Get("destaques") != "" {
		_, perPage := parsePagination("", query.Get("per_page"))
		products, err := h.productRepo.GetFeatured(r.Context(), perPage)
		if err != nil {
			log.Printf("ProductHandler.List: falha ao listar destaques: %v", err)
			internalError(h.render, w)
			return
		}
		respondOK(h.render, w, http.StatusOK, products)
		return
	}

	if keyword == "" && categorySlug == "" && pageRaw == "" {
		products, err := h.productRepo.GetAll(r.Context())
		if err != nil {
			log.Printf("ProductHandler.List: falha ao listar produtos: %v", err)
			internalError(h.render, w)
			return
		}
		respondOK(h.render, w, http.StatusOK, products)
		return
	}

	page, perPage := parsePagination(query.Get("page"), query.Get("per_page"))
	offset := (page - 1) * perPage

	var (
		products []models.Product
		total    int64
		err      error
	)
	switch {
	case keyword != "":
		products, total, err = h.productRepo.SearchPaginated(r.Context(), keyword, perPage, offset)
	case categorySlug != "":
		products, total, err = h.productRepo.GetByCategorySlugPaginated(r.Context(), categorySlug, perPage, offset)
	default:
		products, total, err = h.productRepo.GetPaginated(r.Context(), perPage, offset)
	}
	if err != nil {
		log.Printf("ProductHandler.List: falha na consulta paginada: %v", err)
		internalError(h.render, w)
		return
	}
	respondPaged(h.render, w, products, total, page, perPage)
}

// Get looks the product up by id, falling back to slug so storefront URLs
// resolve directly.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["id"]

	var (
		product *models.Product
		err     error
	)
	if _, parseErr := uuid.Parse(key); parseErr == nil {
		product, err = h.productRepo.GetByID(r.Context(), key)
	} else {
		product, err = h.productRepo.GetBySlug(r.Context(), key)
	}
	if err != nil {
		log.Printf("ProductHandler.Get: falha ao buscar produto %s: %v", key, err)
		internalError(h.render, w)
		return
	}
	if product == nil {
		notFound(h.render, w, "produto não encontrado")
		return
	}
	respondOK(h.render, w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload ProductPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(h.render, w, "corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Struct(&payload); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		badRequest(h.render, w, "dados inválidos", helpers.FormatValidationErrors(validationErrors))
		return
	}
	if payload.PriceFabrica.LessThanOrEqual(decimal.Zero) {
		badRequest(h.render, w, "price_fabrica deve ser maior que zero", nil)
		return
	}

	categories, ok := h.resolveCategories(w, r, payload.CategoryIDs)
	if !ok {
		return
	}

	productID := uuid.New().String()
	product := &models.Product{
		ID:                 productID,
		Name:               payload.Name,
		Slug:               helpers.GenerateSlug(payload.Name) + "-" + productID[:8],
		ShortDescription:   payload.ShortDescription,
		Description:        payload.Description,
		Unit:               payload.Unit,
		PriceFabrica:       payload.PriceFabrica,
		PriceProntaEntrega: payload.PriceProntaEntrega,
		FabricaAvailable:   boolOrDefault(payload.FabricaAvailable, true),
		ProntaAvailable:    boolOrDefault(payload.ProntaAvailable, false),
		DiscountPercent:    payload.DiscountPercent,
		Featured:           payload.Featured,
		Categories:         categories,
		ProductImages:      imageModels(productID, payload.Images),
	}

	if err := h.productRepo.Create(r.Context(), product); err != nil {
		log.Printf("ProductHandler.Create: falha ao criar produto %q: %v", payload.Name, err)
		internalError(h.render, w)
		return
	}

	created, err := h.productRepo.GetByID(r.Context(), product.ID)
	if err != nil || created == nil {
		log.Printf("ProductHandler.Create: falha ao recarregar produto %s: %v", product.ID, err)
		respondOK(h.render, w, http.StatusCreated, product)
		return
	}
	respondOK(h.render, w, http.StatusCreated, created)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(h.render, w, r)
	if !ok {
		return
	}

	var payload ProductPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(h.render, w, "corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Struct(&payload); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		badRequest(h.render, w, "dados inválidos", helpers.FormatValidationErrors(validationErrors))
		return
	}
	if payload.PriceFabrica.LessThanOrEqual(decimal.Zero) {
		badRequest(h.render, w, "price_fabrica deve ser maior que zero", nil)
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("ProductHandler.Update: falha ao buscar produto %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	if product == nil {
		notFound(h.render, w, "produto não encontrado")
		return
	}

	categories, ok := h.resolveCategories(w, r, payload.CategoryIDs)
	if !ok {
		return
	}

	product.Name = payload.Name
	product.ShortDescription = payload.ShortDescription
	product.Description = payload.Description
	product.Unit = payload.Unit
	product.PriceFabrica = payload.PriceFabrica
	product.PriceProntaEntrega = payload.PriceProntaEntrega
	product.FabricaAvailable = boolOrDefault(payload.FabricaAvailable, product.FabricaAvailable)
	product.ProntaAvailable = boolOrDefault(payload.ProntaAvailable, product.ProntaAvailable)
	product.DiscountPercent = payload.DiscountPercent
	product.Featured = payload.Featured
	product.Categories = nil
	product.ProductImages = nil

	if err := h.productRepo.Update(r.Context(), product, categories, imageModels(product.ID, payload.Images)); err != nil {
		log.Printf("ProductHandler.Update: falha ao atualizar produto %s: %v", id, err)
		internalError(h.render, w)
		return
	}

	updated, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil || updated == nil {
		log.Printf("ProductHandler.Update: falha ao recarregar produto %s: %v", id, err)
		respondOK(h.render, w, http.StatusOK, product)
		return
	}
	respondOK(h.render, w, http.StatusOK, updated)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(h.render, w, r)
	if !ok {
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("ProductHandler.Delete: falha ao buscar produto %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	if product == nil {
		notFound(h.render, w, "produto não encontrado")
		return
	}

	if err := h.productRepo.Delete(r.Context(), id); err != nil {
		log.Printf("ProductHandler.Delete: falha ao remover produto %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	respondOK(h.render, w, http.StatusOK, map[string]string{"id": id, "status": "deleted"})
}

func (h *ProductHandler) resolveCategories(w http.ResponseWriter, r *http.Request, ids []string) ([]models.Category, bool) {
	categories, err := h.categoryRepo.GetByIDs(r.Context(), ids)
	if err != nil {
		log.Printf("ProductHandler: falha ao buscar categorias %v: %v", ids, err)
		internalError(h.render, w)
		return nil, false
	}
	if len(categories) != len(ids) {
		badRequest(h.render, w, "uma ou mais categorias não existem", nil)
		return nil, false
	}
	return categories, true
}

func imageModels(productID string, paths []string) []models.ProductImage {
	images := make([]models.ProductImage, 0, len(paths))
	for i, path := range paths {
		if path == "" {
			continue
		}
		images = append(images, models.ProductImage{
			ID:        uuid.New().String(),
			ProductID: productID,
			Path:      path,
			Position:  i,
		})
	}
	return images
}

func boolOrDefault(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func parseID(rnd *render.Render, w http.ResponseWriter, r *http.Request) (string, bool) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		badRequest(rnd, w, "id inválido", nil)
		return "", false
	}
	return id, true
}

func parsePagination(pageRaw, perPageRaw string) (int, int) {
	page := 1
	if p, err := strconv.Atoi(pageRaw); err == nil && p > 0 {
		page = p
	}
	perPage := 12
	if pp, err := strconv.Atoi(perPageRaw); err == nil && pp > 0 && pp <= 100 {
		perPage = pp
	}
	return page, perPage
}
