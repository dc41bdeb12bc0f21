package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/models"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/orcamento"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/repositories"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/utils/sessions"
	"github.com/unrolled/render"
)

// OrcamentoHandler exposes the quote cart over HTTP. Each browser gets its
// own cart through the session cookie; the cart never becomes an order
// server-side, it only feeds the WhatsApp hand-off.
type OrcamentoHandler struct {
	registry       *orcamento.Registry
	productRepo    repositories.ProductRepositoryImpl
	siteConfigRepo repositories.SiteConfigRepositoryImpl
	cartSession    *sessions.CartSession
	render         *render.Render
	fallbackPhone  string
}

func NewOrcamentoHandler(
	registry *orcamento.Registry,
	productRepo repositories.ProductRepositoryImpl,
	siteConfigRepo repositories.SiteConfigRepositoryImpl,
	cartSession *sessions.CartSession,
	rnd *render.Render,
	fallbackPhone string,
) *OrcamentoHandler {
	return &OrcamentoHandler{
		registry:       registry,
		productRepo:    productRepo,
		siteConfigRepo: siteConfigRepo,
		cartSession:    cartSession,
		render:         rnd,
		fallbackPhone:  fallbackPhone,
	}
}

type orcamentoItemPayload struct {
	ProductID string          `json:"product_id"`
	Modality  models.Modality `json:"modality"`
	Quantity  int             `json:"quantity"`
}

func (h *OrcamentoHandler) cart(w http.ResponseWriter, r *http.Request) (*orcamento.Service, bool) {
	cartID, err := h.cartSession.GetCartID(w, r)
	if err != nil {
		log.Printf("OrcamentoHandler: falha ao obter cart ID da sessão: %v", err)
		internalError(h.render, w)
		return nil, false
	}
	return h.registry.Get(cartID), true
}

func (h *OrcamentoHandler) state(svc *orcamento.Service) map[string]interface{} {
	return map[string]interface{}{
		"items":      svc.Items(),
		"total":      svc.Total(),
		"item_count": svc.TotalItemCount(),
	}
}

func (h *OrcamentoHandler) Get(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.cart(w, r)
	if !ok {
		return
	}
	respondOK(h.render, w, http.StatusOK, h.state(svc))
}

func (h *OrcamentoHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var payload orcamentoItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(h.render, w, "corpo da requisição inválido", nil)
		return
	}
	if payload.ProductID == "" {
		badRequest(h.render, w, "product_id é obrigatório", nil)
		return
	}
	if !payload.Modality.Valid() {
		badRequest(h.render, w, "modality deve ser fabrica ou pronta_entrega", nil)
		return
	}
	if payload.Quantity < 1 {
		payload.Quantity = 1
	}

	product, err := h.productRepo.GetByID(r.Context(), payload.ProductID)
	if err != nil {
		log.Printf("OrcamentoHandler.AddItem: falha ao buscar produto %s: %v", payload.ProductID, err)
		internalError(h.render, w)
		return
	}
	if product == nil {
		notFound(h.render, w, "produto não encontrado")
		return
	}
	if !product.AvailableFor(payload.Modality) {
		badRequest(h.render, w, "produto indisponível nessa modalidade", nil)
		return
	}

	svc, ok := h.cart(w, r)
	if !ok {
		return
	}

	image := ""
	if len(product.ProductImages) > 0 {
		image = product.ProductImages[0].Path
	}

	// The price is snapshotted here; later catalog edits leave the line alone.
	svc.AddItem(orcamento.Line{
		Product: orcamento.ProductSnapshot{
			ID:    product.ID,
			Name:  product.Name,
			Slug:  product.Slug,
			Unit:  product.Unit,
			Image: image,
		},
		Modality:  payload.Modality,
		Quantity:  payload.Quantity,
		UnitPrice: product.PriceFor(payload.Modality),
	})

	respondOK(h.render, w, http.StatusOK, h.state(svc))
}

func (h *OrcamentoHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var payload orcamentoItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(h.render, w, "corpo da requisição inválido", nil)
		return
	}
	if payload.ProductID == "" || !payload.Modality.Valid() {
		badRequest(h.render, w, "product_id e modality são obrigatórios", nil)
		return
	}

	svc, ok := h.cart(w, r)
	if !ok {
		return
	}

	// Quantities below 1 and unknown lines are silent no-ops by contract.
	svc.UpdateQuantity(payload.ProductID, payload.Modality, payload.Quantity)
	respondOK(h.render, w, http.StatusOK, h.state(svc))
}

func (h *OrcamentoHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	productID := query.Get("product_id")
	modality := models.Modality(query.Get("modality"))
	if productID == "" || !modality.Valid() {
		badRequest(h.render, w, "product_id e modality são obrigatórios", nil)
		return
	}

	svc, ok := h.cart(w, r)
	if !ok {
		return
	}

	svc.RemoveItem(productID, modality)
	respondOK(h.render, w, http.StatusOK, h.state(svc))
}

func (h *OrcamentoHandler) Clear(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.cart(w, r)
	if !ok {
		return
	}
	svc.Clear()
	respondOK(h.render, w, http.StatusOK, h.state(svc))
}

// WhatsAppLink turns the current cart into the wa.me hand-off URL. The phone
// comes from the site configuration, falling back to the environment.
func (h *OrcamentoHandler) WhatsAppLink(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.cart(w, r)
	if !ok {
		return
	}

	items := svc.Items()
	if len(items) == 0 {
		badRequest(h.render, w, "orçamento vazio", nil)
		return
	}

	phone := h.fallbackPhone
	config, err := h.siteConfigRepo.GetOrCreate(r.Context())
	if err != nil {
		log.Printf("OrcamentoHandler.WhatsAppLink: falha ao carregar configurações, usando telefone do ambiente: %v", err)
	} else if config.WhatsAppPhone != "" {
		phone = config.WhatsAppPhone
	}
	if phone == "" {
		log.Printf("OrcamentoHandler.WhatsAppLink: nenhum telefone WhatsApp configurado")
		internalError(h.render, w)
		return
	}

	notes := r.URL.Query().Get("notes")
	respondOK(h.render, w, http.StatusOK, map[string]string{
		"url": orcamento.Link(phone, items, notes),
	})
}
