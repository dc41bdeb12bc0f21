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

type TestimonialHandler struct {
	testimonialRepo repositories.TestimonialRepositoryImpl
	render          *render.Render
	validator       *validator.Validate
}

func NewTestimonialHandler(testimonialRepo repositories.TestimonialRepositoryImpl, rnd *render.Render) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialRepo: testimonialRepo,
		render:          rnd,
		validator:       validator.New(),
	}
}

type TestimonialPayload struct {
	Name   string `json:"name" validate:"required,min=2,max=120"`
	Body   string `json:"body" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Photo  string `json:"photo" validate:"max=500"`
}

func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.testimonialRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("TestimonialHandler.List: falha ao listar depoimentos: %v", err)
		internalError(h.render, w)
		return
	}
	respondOK(h.render, w, http.StatusOK, testimonials)
}

func (h *TestimonialHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(h.render, w, r)
	if !ok {
		return
	}

	testimonial, err := h.testimonialRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("TestimonialHandler.Get: falha ao buscar depoimento %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	if testimonial == nil {
		notFound(h.render, w, "depoimento não encontrado")
		return
	}
	respondOK(h.render, w, http.StatusOK, testimonial)
}

func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload TestimonialPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(h.render, w, "corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Struct(&payload); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		badRequest(h.render, w, "dados inválidos", helpers.FormatValidationErrors(validationErrors))
		return
	}

	testimonial := &models.Testimonial{
		ID:     uuid.New().String(),
		Name:   payload.Name,
		Body:   payload.Body,
		Rating: payload.Rating,
		Photo:  payload.Photo,
	}

	if err := h.testimonialRepo.Create(r.Context(), testimonial); err != nil {
		log.Printf("TestimonialHandler.Create: falha ao criar depoimento de %q: %v", payload.Name, err)
		internalError(h.render, w)
		return
	}
	respondOK(h.render, w, http.StatusCreated, testimonial)
}

func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(h.render, w, r)
	if !ok {
		return
	}

	var payload TestimonialPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(h.render, w, "corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Struct(&payload); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		badRequest(h.render, w, "dados inválidos", helpers.FormatValidationErrors(validationErrors))
		return
	}

	testimonial, err := h.testimonialRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("TestimonialHandler.Update: falha ao buscar depoimento %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	if testimonial == nil {
		notFound(h.render, w, "depoimento não encontrado")
		return
	}

	testimonial.Name = payload.Name
	testimonial.Body = payload.Body
	testimonial.Rating = payload.Rating
	testimonial.Photo = payload.Photo

	if err := h.testimonialRepo.Update(r.Context(), testimonial); err != nil {
		log.Printf("TestimonialHandler.Update: falha ao atualizar depoimento %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	respondOK(h.render, w, http.StatusOK, testimonial)
}

func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(h.render, w, r)
	if !ok {
		return
	}

	testimonial, err := h.testimonialRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("TestimonialHandler.Delete: falha ao buscar depoimento %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	if testimonial == nil {
		notFound(h.render, w, "depoimento não encontrado")
		return
	}

	if err := h.testimonialRepo.Delete(r.Context(), id); err != nil {
		log.Printf("TestimonialHandler.Delete: falha ao remover depoimento %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	respondOK(h.render, w, http.StatusOK, map[string]string{"id": id, "status": "deleted"})
}
