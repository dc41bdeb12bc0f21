package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/services"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	credentials services.CredentialVerifier
	render      *render.Render
}

func NewAuthHandler(credentials services.CredentialVerifier, rnd *render.Render) *AuthHandler {
	return &AuthHandler{credentials: credentials, render: rnd}
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks the admin credential pair through the pluggable verifier. The
// admin UI keeps its authenticated flag client-side; the server only answers
// yes or no.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(h.render, w, "corpo da requisição inválido", nil)
		return
	}
	if payload.Username == "" || payload.Password == "" {
		badRequest(h.render, w, "username e password são obrigatórios", nil)
		return
	}

	if !h.credentials.Verify(payload.Username, payload.Password) {
		log.Printf("AuthHandler.Login: credenciais inválidas para %q", payload.Username)
		unauthorized(h.render, w, "credenciais inválidas")
		return
	}

	respondOK(h.render, w, http.StatusOK, map[string]bool{"authenticated": true})
}
