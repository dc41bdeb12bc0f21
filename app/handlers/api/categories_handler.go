package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/helpers"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/models"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	categoryRepo repositories.CategoryRepositoryImpl
	render       *render.Render
	validator    *validator.Validate
}

func NewCategoryHandler(categoryRepo repositories.CategoryRepositoryImpl, rnd *render.Render) *CategoryHandler {
	return &CategoryHandler{
		categoryRepo: categoryRepo,
		render:       rnd,
		validator:    validator.New(),
	}
}

type CategoryPayload struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description"`
	Image       string `json:"image" validate:"max=500"`
	Color       string `json:"color" validate:"max=30"`
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("CategoryHandler.List: falha ao listar categorias: %v", err)
		internalError(h.render, w)
		return
	}
	respondOK(h.render, w, http.StatusOK, categories)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(h.render, w, r)
	if !ok {
		return
	}

	category, err := h.categoryRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("CategoryHandler.Get: falha ao buscar categoria %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	if category == nil {
		notFound(h.render, w, "categoria não encontrada")
		return
	}
	respondOK(h.render, w, http.StatusOK, category)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload CategoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(h.render, w, "corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Struct(&payload); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		badRequest(h.render, w, "dados inválidos", helpers.FormatValidationErrors(validationErrors))
		return
	}

	categorySlug := helpers.GenerateSlug(payload.Name)
	existing, err := h.categoryRepo.GetBySlug(r.Context(), categorySlug)
	if err != nil {
		log.Printf("CategoryHandler.Create: falha ao checar slug %q: %v", categorySlug, err)
		internalError(h.render, w)
		return
	}
	if existing != nil {
		conflict(h.render, w, "já existe uma categoria com esse nome")
		return
	}

	category := &models.Category{
		ID:          uuid.New().String(),
		Name:        payload.Name,
		Slug:        categorySlug,
		Description: payload.Description,
		Image:       payload.Image,
		Color:       payload.Color,
	}

	if err := h.categoryRepo.Create(r.Context(), category); err != nil {
		log.Printf("CategoryHandler.Create: falha ao criar categoria %q: %v", payload.Name, err)
		internalError(h.render, w)
		return
	}
	respondOK(h.render, w, http.StatusCreated, category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(h.render, w, r)
	if !ok {
		return
	}

	var payload CategoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(h.render, w, "corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Struct(&payload); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		badRequest(h.render, w, "dados inválidos", helpers.FormatValidationErrors(validationErrors))
		return
	}

	category, err := h.categoryRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("CategoryHandler.Update: falha ao buscar categoria %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	if category == nil {
		notFound(h.render, w, "categoria não encontrada")
		return
	}

	newSlug := helpers.GenerateSlug(payload.Name)
	if newSlug != category.Slug {
		existing, err := h.categoryRepo.GetBySlug(r.Context(), newSlug)
		if err != nil {
			log.Printf("CategoryHandler.Update: falha ao checar slug %q: %v", newSlug, err)
			internalError(h.render, w)
			return
		}
		if existing != nil {
			conflict(h.render, w, "já existe uma categoria com esse nome")
			return
		}
	}

	category.Name = payload.Name
	category.Slug = newSlug
	category.Description = payload.Description
	category.Image = payload.Image
	category.Color = payload.Color

	if err := h.categoryRepo.Update(r.Context(), category); err != nil {
		log.Printf("CategoryHandler.Update: falha ao atualizar categoria %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	respondOK(h.render, w, http.StatusOK, category)
}

// Delete rejects the removal of a category that still has linked products.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(h.render, w, r)
	if !ok {
		return
	}

	category, err := h.categoryRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("CategoryHandler.Delete: falha ao buscar categoria %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	if category == nil {
		notFound(h.render, w, "categoria não encontrada")
		return
	}

	count, err := h.categoryRepo.CountProducts(r.Context(), id)
	if err != nil {
		log.Printf("CategoryHandler.Delete: falha ao contar produtos da categoria %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	if count > 0 {
		conflict(h.render, w, "categoria possui produtos vinculados e não pode ser removida")
		return
	}

	if err := h.categoryRepo.Delete(r.Context(), id); err != nil {
		log.Printf("CategoryHandler.Delete: falha ao remover categoria %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	respondOK(h.render, w, http.StatusOK, map[string]string{"id": id, "status": "deleted"})
}
