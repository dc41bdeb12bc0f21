package api

import (
	"log"
	"net/http"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/configs"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/models"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

type DiagnosticsHandler struct {
	db     *gorm.DB
	env    configs.ENV
	render *render.Render
}

func NewDiagnosticsHandler(db *gorm.DB, env configs.ENV, rnd *render.Render) *DiagnosticsHandler {
	return &DiagnosticsHandler{db: db, env: env, render: rnd}
}

// TestDB pings the database and reports per-table row counts.
func (h *DiagnosticsHandler) TestDB(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := h.db.DB()
	if err != nil {
		log.Printf("DiagnosticsHandler.TestDB: falha ao obter conexão: %v", err)
		internalError(h.render, w)
		return
	}
	if err := sqlDB.PingContext(r.Context()); err != nil {
		log.Printf("DiagnosticsHandler.TestDB: ping falhou: %v", err)
		internalError(h.render, w)
		return
	}

	counts := map[string]int64{}
	tables := map[string]interface{}{
		"produtos":    &models.Product{},
		"categorias":  &models.Category{},
		"posts":       &models.Post{},
		"depoimentos": &models.Testimonial{},
		"inspiracoes": &models.Inspiration{},
	}
	for name, model := range tables {
		var count int64
		if err := h.db.WithContext(r.Context()).Model(model).Count(&count).Error; err != nil {
			log.Printf("DiagnosticsHandler.TestDB: falha ao contar %s: %v", name, err)
			internalError(h.render, w)
			return
		}
		counts[name] = count
	}

	respondOK(h.render, w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"counts": counts,
	})
}

// TestConfig reports which settings are present. Values are never echoed.
func (h *DiagnosticsHandler) TestConfig(w http.ResponseWriter, r *http.Request) {
	respondOK(h.render, w, http.StatusOK, map[string]interface{}{
		"db_host_set":        h.env.DBHost != "",
		"db_name_set":        h.env.DBName != "",
		"admin_api_key_set":  h.env.AdminAPIKey != "",
		"session_key_set":    h.env.SessionKey != "",
		"blob_base_url_set":  h.env.BlobBaseURL != "",
		"blob_token_set":     h.env.BlobToken != "",
		"whatsapp_phone_set": h.env.WhatsAppPhone != "",
		"max_upload_bytes":   h.env.MaxUploadBytes,
		"app_env":            h.env.APP_ENV,
	})
}
