package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

func newCategoryRouter(repo *fakeCategoryRepo) *mux.Router {
	h := NewCategoryHandler(repo, render.New())
	r := mux.NewRouter()
	r.HandleFunc("/api/categorias", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/categorias", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/categorias/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/categorias/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/categorias/{id}", h.Delete).Methods(http.MethodDelete)
	return r
}

func TestCategoryCreate(t *testing.T) {
	repo := newFakeCategoryRepo()
	router := newCategoryRouter(repo)

	body, _ := json.Marshal(map[string]string{"name": "Pisos e Revestimentos", "color": "#4a6b8a"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/categorias", bytes.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (%s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp struct {
		Data models.Category `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Slug != "pisos-e-revestimentos" {
		t.Errorf("slug = %q, want %q", resp.Data.Slug, "pisos-e-revestimentos")
	}
	if len(repo.categories) != 1 {
		t.Errorf("stored categories = %d, want 1", len(repo.categories))
	}
}

func TestCategoryCreateDuplicateName(t *testing.T) {
	existing := &models.Category{ID: uuid.New().String(), Name: "Hidráulica", Slug: "hidraulica"}
	repo := newFakeCategoryRepo(existing)
	router := newCategoryRouter(repo)

	body, _ := json.Marshal(map[string]string{"name": "Hidráulica"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/categorias", bytes.NewReader(body)))

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
	if len(repo.categories) != 1 {
		t.Errorf("stored categories = %d, want 1", len(repo.categories))
	}
}

func TestCategoryDeleteWithProductsConflicts(t *testing.T) {
	category := &models.Category{ID: uuid.New().String(), Name: "Cimentos", Slug: "cimentos"}
	repo := newFakeCategoryRepo(category)
	repo.productCounts[category.ID] = 3
	router := newCategoryRouter(repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/categorias/"+category.ID, nil))

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
	if len(repo.deleteCalls) != 0 {
		t.Errorf("delete calls = %d, want 0", len(repo.deleteCalls))
	}
}

func TestCategoryDeleteEmpty(t *testing.T) {
	category := &models.Category{ID: uuid.New().String(), Name: "Vazia", Slug: "vazia"}
	repo := newFakeCategoryRepo(category)
	router := newCategoryRouter(repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/categorias/"+category.ID, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (%s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	if len(repo.deleteCalls) != 1 || repo.deleteCalls[0] != category.ID {
		t.Errorf("delete calls = %v, want [%s]", repo.deleteCalls, category.ID)
	}
}

func TestCategoryGetUnknownID(t *testing.T) {
	router := newCategoryRouter(newFakeCategoryRepo())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categorias/"+uuid.New().String(), nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categorias/not-a-uuid", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed id: status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
