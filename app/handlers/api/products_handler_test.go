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
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

func newProductRouter(productRepo *fakeProductRepo, categoryRepo *fakeCategoryRepo) *mux.Router {
	h := NewProductHandler(productRepo, categoryRepo, render.New())
	r := mux.NewRouter()
	r.HandleFunc("/api/produtos", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/produtos", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/produtos/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/produtos/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/produtos/{id}", h.Delete).Methods(http.MethodDelete)
	return r
}

func productPayload(categoryIDs ...string) map[string]interface{} {
	return map[string]interface{}{
		"name":          "Cimento CP-II 50kg",
		"unit":          "saco",
		"price_fabrica": "32.90",
		"category_ids":  categoryIDs,
	}
}

func TestProductCreate(t *testing.T) {
	category := &models.Category{ID: uuid.New().String(), Name: "Cimentos", Slug: "cimentos"}
	productRepo := newFakeProductRepo()
	router := newProductRouter(productRepo, newFakeCategoryRepo(category))

	body, _ := json.Marshal(productPayload(category.ID))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/produtos", bytes.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (%s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp struct {
		Data models.Product `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Data.PriceFabrica.Equal(decimal.RequireFromString("32.90")) {
		t.Errorf("price_fabrica = %s, want 32.90", resp.Data.PriceFabrica)
	}
	// Defaults when the flags are omitted.
	if !resp.Data.FabricaAvailable || resp.Data.ProntaAvailable {
		t.Errorf("availability = (%v, %v), want (true, false)", resp.Data.FabricaAvailable, resp.Data.ProntaAvailable)
	}
	if len(resp.Data.Categories) != 1 || resp.Data.Categories[0].ID != category.ID {
		t.Errorf("categories = %v, want the linked category", resp.Data.Categories)
	}
}

func TestProductCreateWithoutCategoryRejected(t *testing.T) {
	productRepo := newFakeProductRepo()
	router := newProductRouter(productRepo, newFakeCategoryRepo())

	body, _ := json.Marshal(productPayload())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/produtos", bytes.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if productRepo.createCalls != 0 {
		t.Errorf("create calls = %d, want 0", productRepo.createCalls)
	}
}

func TestProductCreateUnknownCategoryRejected(t *testing.T) {
	productRepo := newFakeProductRepo()
	router := newProductRouter(productRepo, newFakeCategoryRepo())

	body, _ := json.Marshal(productPayload(uuid.New().String()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/produtos", bytes.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if productRepo.createCalls != 0 {
		t.Errorf("create calls = %d, want 0", productRepo.createCalls)
	}
}

func TestProductCreateZeroPriceRejected(t *testing.T) {
	category := &models.Category{ID: uuid.New().String(), Name: "Cimentos", Slug: "cimentos"}
	productRepo := newFakeProductRepo()
	router := newProductRouter(productRepo, newFakeCategoryRepo(category))

	payload := productPayload(category.ID)
	payload["price_fabrica"] = "0"
	body, _ := json.Marshal(payload)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/produtos", bytes.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if productRepo.createCalls != 0 {
		t.Errorf("create calls = %d, want 0", productRepo.createCalls)
	}
}

func TestProductGetByIDOrSlug(t *testing.T) {
	product := &models.Product{ID: uuid.New().String(), Name: "Telha Portuguesa", Slug: "telha-portuguesa-abc12345"}
	router := newProductRouter(newFakeProductRepo(product), newFakeCategoryRepo())

	for _, key := range []string{product.ID, product.Slug} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/produtos/"+key, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("get %q: status = %d, want %d", key, rec.Code, http.StatusOK)
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/produtos/slug-inexistente", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown slug: status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestProductDelete(t *testing.T) {
	product := &models.Product{ID: uuid.New().String(), Name: "Brita 1", Slug: "brita-1"}
	productRepo := newFakeProductRepo(product)
	router := newProductRouter(productRepo, newFakeCategoryRepo())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/produtos/"+product.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/produtos/"+product.ID, nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestProductListUnpaginatedAndPaged(t *testing.T) {
	product := &models.Product{ID: uuid.New().String(), Name: "Areia", Slug: "areia"}
	router := newProductRouter(newFakeProductRepo(product), newFakeCategoryRepo())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/produtos", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("plain list: status = %d", rec.Code)
	}
	var plain struct {
		Data []models.Product `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &plain); err != nil {
		t.Fatalf("decode plain list: %v", err)
	}
	if len(plain.Data) != 1 {
		t.Errorf("plain list len = %d, want 1", len(plain.Data))
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/produtos?page=1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("paged list: status = %d", rec.Code)
	}
	var paged struct {
		Data    []models.Product `json:"data"`
		Total   int64            `json:"total"`
		Page    int              `json:"page"`
		PerPage int              `json:"per_page"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &paged); err != nil {
		t.Fatalf("decode paged list: %v", err)
	}
	if paged.Total != 1 || paged.Page != 1 || paged.PerPage != 12 {
		t.Errorf("paged envelope = total %d page %d per_page %d", paged.Total, paged.Page, paged.PerPage)
	}
}
