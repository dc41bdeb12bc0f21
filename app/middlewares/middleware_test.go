package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/services"
	"github.com/unrolled/render"
)

func protected(t *testing.T) (http.Handler, *int) {
	t.Helper()
	hits := 0
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
	})
	mw := AdminAPIKeyMiddleware(services.NewStaticKeyVerifier("topsecret"), render.New())
	return mw(inner), &hits
}

func TestAdminKeyHeader(t *testing.T) {
	h, hits := protected(t)
	req := httptest.NewRequest(http.MethodPost, "/api/produtos", nil)
	req.Header.Set("x-admin-api-key", "topsecret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || *hits != 1 {
		t.Fatalf("expected pass-through, got status %d hits %d", rec.Code, *hits)
	}
}

func TestAdminKeyBearer(t *testing.T) {
	h, hits := protected(t)
	req := httptest.NewRequest(http.MethodPost, "/api/produtos", nil)
	req.Header.Set("Authorization", "Bearer topsecret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || *hits != 1 {
		t.Fatalf("expected pass-through, got status %d hits %d", rec.Code, *hits)
	}
}

func TestAdminKeyQueryParam(t *testing.T) {
	h, hits := protected(t)
	req := httptest.NewRequest(http.MethodPost, "/api/produtos?admin_key=topsecret", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || *hits != 1 {
		t.Fatalf("expected pass-through, got status %d hits %d", rec.Code, *hits)
	}
}

func TestAdminKeyHeaderTakesPrecedence(t *testing.T) {
	h, hits := protected(t)
	// Wrong header must lose even when the query param is right.
	req := httptest.NewRequest(http.MethodPost, "/api/produtos?admin_key=topsecret", nil)
	req.Header.Set("x-admin-api-key", "wrong")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized || *hits != 0 {
		t.Fatalf("expected 401 with no handler hit, got status %d hits %d", rec.Code, *hits)
	}
}

func TestAdminKeyMissing(t *testing.T) {
	h, hits := protected(t)
	req := httptest.NewRequest(http.MethodDelete, "/api/categorias/1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized || *hits != 0 {
		t.Fatalf("expected 401 before any side effect, got status %d hits %d", rec.Code, *hits)
	}
}

func TestRecoverMiddlewareMasksPanic(t *testing.T) {
	mw := RecoverMiddleware(render.New())
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom: secret detail")
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/produtos", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret detail") {
		t.Errorf("panic detail leaked to the client: %s", rec.Body.String())
	}
}
