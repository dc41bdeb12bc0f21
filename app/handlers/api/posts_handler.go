package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/helpers"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/models"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type PostHandler struct {
	postRepo  repositories.PostRepositoryImpl
	render    *render.Render
	validator *validator.Validate
}

func NewPostHandler(postRepo repositories.PostRepositoryImpl, rnd *render.Render) *PostHandler {
	return &PostHandler{
		postRepo:  postRepo,
		render:    rnd,
		validator: validator.New(),
	}
}

type PostPayload struct {
	Title   string `json:"title" validate:"required,min=2,max=255"`
	Summary string `json:"summary" validate:"max=500"`
	Body    string `json:"body" validate:"required"`
	Image   string `json:"image" validate:"max=500"`
	Author  string `json:"author" validate:"max=120"`
	Status  string `json:"status" validate:"omitempty,oneof=draft published"`
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		posts []models.Post
		err   error
	)
	if r.URL.Query().Get("status") == models.PostStatusPublished {
		posts, err = h.postRepo.GetPublished(r.Context())
	} else {
		posts, err = h.postRepo.GetAll(r.Context())
	}
	if err != nil {
		log.Printf("PostHandler.List: falha ao listar posts: %v", err)
		internalError(h.render, w)
		return
	}
	respondOK(h.render, w, http.StatusOK, posts)
}

// Get accepts a uuid or a slug, matching the blog's public URLs.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["id"]

	var (
		post *models.Post
		err  error
	)
	if _, parseErr := uuid.Parse(key); parseErr == nil {
		post, err = h.postRepo.GetByID(r.Context(), key)
	} else {
		post, err = h.postRepo.GetBySlug(r.Context(), key)
	}
	if err != nil {
		log.Printf("PostHandler.Get: falha ao buscar post %s: %v", key, err)
		internalError(h.render, w)
		return
	}
	if post == nil {
		notFound(h.render, w, "post não encontrado")
		return
	}
	respondOK(h.render, w, http.StatusOK, post)
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(h.render, w, "corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Struct(&payload); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		badRequest(h.render, w, "dados inválidos", helpers.FormatValidationErrors(validationErrors))
		return
	}

	postID := uuid.New().String()
	post := &models.Post{
		ID:      postID,
		Title:   payload.Title,
		Slug:    helpers.GenerateSlug(payload.Title) + "-" + postID[:8],
		Summary: payload.Summary,
		Body:    payload.Body,
		Image:   payload.Image,
		Author:  payload.Author,
		Status:  payload.Status,
	}
	if post.Status == "" {
		post.Status = models.PostStatusDraft
	}
	if post.Status == models.PostStatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := h.postRepo.Create(r.Context(), post); err != nil {
		log.Printf("PostHandler.Create: falha ao criar post %q: %v", payload.Title, err)
		internalError(h.render, w)
		return
	}
	respondOK(h.render, w, http.StatusCreated, post)
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(h.render, w, r)
	if !ok {
		return
	}

	var payload PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(h.render, w, "corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Struct(&payload); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		badRequest(h.render, w, "dados inválidos", helpers.FormatValidationErrors(validationErrors))
		return
	}

	post, err := h.postRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("PostHandler.Update: falha ao buscar post %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	if post == nil {
		notFound(h.render, w, "post não encontrado")
		return
	}

	wasPublished := post.Status == models.PostStatusPublished

	post.Title = payload.Title
	post.Summary = payload.Summary
	post.Body = payload.Body
	post.Image = payload.Image
	post.Author = payload.Author
	if payload.Status != "" {
		post.Status = payload.Status
	}
	if post.Status == models.PostStatusPublished && !wasPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := h.postRepo.Update(r.Context(), post); err != nil {
		log.Printf("PostHandler.Update: falha ao atualizar post %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	respondOK(h.render, w, http.StatusOK, post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(h.render, w, r)
	if !ok {
		return
	}

	post, err := h.postRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("PostHandler.Delete: falha ao buscar post %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	if post == nil {
		notFound(h.render, w, "post não encontrado")
		return
	}

	if err := h.postRepo.Delete(r.Context(), id); err != nil {
		log.Printf("PostHandler.Delete: falha ao remover post %s: %v", id, err)
		internalError(h.render, w)
		return
	}
	respondOK(h.render, w, http.StatusOK, map[string]string{"id": id, "status": "deleted"})
}
