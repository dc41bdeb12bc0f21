package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/helpers"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/models"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type SiteConfigHandler struct {
	siteConfigRepo repositories.SiteConfigRepositoryImpl
	render         *render.Render
	validator      *validator.Validate
}

func NewSiteConfigHandler(siteConfigRepo repositories.SiteConfigRepositoryImpl, rnd *render.Render) *SiteConfigHandler {
	return &SiteConfigHandler{
		siteConfigRepo: siteConfigRepo,
		render:         rnd,
		validator:      validator.New(),
	}
}

type BannerPayload struct {
	DesktopImage string `json:"desktop_image" validate:"required,max=500"`
	TabletImage  string `json:"tablet_image" validate:"max=500"`
	MobileImage  string `json:"mobile_image" validate:"max=500"`
	Link         string `json:"link" validate:"max=500"`
}

type SiteConfigPayload struct {
	Phone         string          `json:"phone" validate:"max=30"`
	WhatsAppPhone string          `json:"whatsapp_phone" validate:"max=30"`
	Email         string          `json:"email" validate:"omitempty,email"`
	Address       string          `json:"address" validate:"max=255"`
	FooterText    string          `json:"footer_text"`
	LogoURL       string          `json:"logo_url" validate:"max=500"`
	LogoDarkURL   string          `json:"logo_dark_url" validate:"max=500"`
	Banners       []BannerPayload `json:"banners" validate:"dive"`
}

func (h *SiteConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	config, err := h.siteConfigRepo.GetOrCreate(r.Context())
	if err != nil {
		log.Printf("SiteConfigHandler.Get: falha ao carregar configurações: %v", err)
		internalError(h.render, w)
		return
	}
	respondOK(h.render, w, http.StatusOK, config)
}

func (h *SiteConfigHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload SiteConfigPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(h.render, w, "corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Struct(&payload); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		badRequest(h.render, w, "dados inválidos", helpers.FormatValidationErrors(validationErrors))
		return
	}

	config, err := h.siteConfigRepo.GetOrCreate(r.Context())
	if err != nil {
		log.Printf("SiteConfigHandler.Update: falha ao carregar configurações: %v", err)
		internalError(h.render, w)
		return
	}

	config.Phone = payload.Phone
	config.WhatsAppPhone = payload.WhatsAppPhone
	config.Email = payload.Email
	config.Address = payload.Address
	config.FooterText = payload.FooterText
	config.LogoURL = payload.LogoURL
	config.LogoDarkURL = payload.LogoDarkURL

	banners := make([]models.Banner, 0, len(payload.Banners))
	for _, b := range payload.Banners {
		banners = append(banners, models.Banner{
			DesktopImage: b.DesktopImage,
			TabletImage:  b.TabletImage,
			MobileImage:  b.MobileImage,
			Link:         b.Link,
		})
	}

	if err := h.siteConfigRepo.Update(r.Context(), config, banners); err != nil {
		log.Printf("SiteConfigHandler.Update: falha ao salvar configurações: %v", err)
		internalError(h.render, w)
		return
	}
	respondOK(h.render, w, http.StatusOK, config)
}
