package api

import (
	"net/http"

	"github.com/unrolled/render"
)

const (
	codeBadRequest   = "BAD_REQUEST"
	codeNotFound     = "NOT_FOUND"
	codeConflict     = "CONFLICT"
	codeUnauthorized = "UNAUTHORIZED"
	codeInternal     = "INTERNAL_ERROR"
)

type errorBody struct {
	Code   string            `json:"code"`
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func respondOK(rnd *render.Render, w http.ResponseWriter, status int, data interface{}) {
	rnd.JSON(w, status, map[string]interface{}{"data": data})
}

func respondPaged(rnd *render.Render, w http.ResponseWriter, data interface{}, total int64, page, perPage int) {
	rnd.JSON(w, http.StatusOK, map[string]interface{}{
		"data":     data,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	})
}

func respondError(rnd *render.Render, w http.ResponseWriter, status int, code, message string, fields map[string]string) {
	rnd.JSON(w, status, errorBody{Code: code, Error: message, Fields: fields})
}

func badRequest(rnd *render.Render, w http.ResponseWriter, message string, fields map[string]string) {
	respondError(rnd, w, http.StatusBadRequest, codeBadRequest, message, fields)
}

func notFound(rnd *render.Render, w http.ResponseWriter, message string) {
	respondError(rnd, w, http.StatusNotFound, codeNotFound, message, nil)
}

func conflict(rnd *render.Render, w http.ResponseWriter, message string) {
	respondError(rnd, w, http.StatusConflict, codeConflict, message, nil)
}

func unauthorized(rnd *render.Render, w http.ResponseWriter, message string) {
	respondError(rnd, w, http.StatusUnauthorized, codeUnauthorized, message, nil)
}

// internalError answers a generic message; the logged detail stays on the
// server side.
func internalError(rnd *render.Render, w http.ResponseWriter) {
	respondError(rnd, w, http.StatusInternalServerError, codeInternal, "erro interno do servidor", nil)
}
