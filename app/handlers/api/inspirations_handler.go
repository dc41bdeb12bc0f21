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

type InspirationHandler struct {
	inspirationRepo repositories.InspirationRepositoryImpl
	render          *render.Render
	validator       *validator.Validate
}

func NewInspirationHandler(inspirationRepo repositories.InspirationRepositoryImpl, rnd *render.Render) *InspirationHandler {
	return &InspirationHandler{
		inspirationRepo: inspirationRepo,
		render:          rnd,
		validator:       validator.New(),
	}
}

type InspirationPayload struct {
	Title       string `json:"title" validate:"required,min=2,max=255"`
	Description string `json:"description"`
	Image       string `json:"image" validate:"required,max=500"`
}

func (h *InspirationHandler) List(w http.ResponseWriter, r *http.Request) {
	inspirations, err := h.inspirationRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("InspirationHandler.List: falha ao listar inspirações: %v", err)
		internalError(h.render, w)
		return
	}
	respondOK(h.render, w, http.StatusOK, inspirations)
}

func (h *InspirationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(h.render, w, r)
	if !ok {
		return
	}

	inspiration, err := h.inspirationRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("InspirationHandler.Get: falha ao buscar inspiração %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	if inspiration == nil {
		notFound(h.render, w, "inspiração não encontrada")
		return
	}
	respondOK(h.render, w, http.StatusOK, inspiration)
}

func (h *InspirationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload InspirationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(h.render, w, "corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Struct(&payload); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		badRequest(h.render, w, "dados inválidos", helpers.FormatValidationErrors(validationErrors))
		return
	}

	inspiration := &models.Inspiration{
		ID:          uuid.New().String(),
		Title:       payload.Title,
		Description: payload.Description,
		Image:       payload.Image,
	}

	if err := h.inspirationRepo.Create(r.Context(), inspiration); err != nil {
		log.Printf("InspirationHandler.Create: falha ao criar inspiração %q: %v", payload.Title, err)
		internalError(h.render, w)
		return
	}
	respondOK(h.render, w, http.StatusCreated, inspiration)
}

func (h *InspirationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(h.render, w, r)
	if !ok {
		return
	}

	var payload InspirationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(h.render, w, "corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Struct(&payload); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		badRequest(h.render, w, "dados inválidos", helpers.FormatValidationErrors(validationErrors))
		return
	}

	inspiration, err := h.inspirationRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("InspirationHandler.Update: falha ao buscar inspiração %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	if inspiration == nil {
		notFound(h.render, w, "inspiração não encontrada")
		return
	}

	inspiration.Title = payload.Title
	inspiration.Description = payload.Description
	inspiration.Image = payload.Image

	if err := h.inspirationRepo.Update(r.Context(), inspiration); err != nil {
		log.Printf("InspirationHandler.Update: falha ao atualizar inspiração %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	respondOK(h.render, w, http.StatusOK, inspiration)
}

func (h *InspirationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(h.render, w, r)
	if !ok {
		return
	}

	inspiration, err := h.inspirationRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("InspirationHandler.Delete: falha ao buscar inspiração %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	if inspiration == nil {
		notFound(h.render, w, "inspiração não encontrada")
		return
	}

	if err := h.inspirationRepo.Delete(r.Context(), id); err != nil {
		log.Printf("InspirationHandler.Delete: falha ao remover inspiração %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	respondOK(h.render, w, http.StatusOK, map[string]string{"id": id, "status": "deleted"})
}
