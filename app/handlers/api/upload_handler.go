package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/services"
	"github.com/unrolled/render"
)

type UploadHandler struct {
	uploadSvc *services.UploadService
	render    *render.Render
}

func NewUploadHandler(uploadSvc *services.UploadService, rnd *render.Render) *UploadHandler {
	return &UploadHandler{uploadSvc: uploadSvc, render: rnd}
}

// Upload accepts one image in the multipart "file" field and answers the
// public blob URL.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Cap the request body itself; a small slack covers the multipart framing.
	r.Body = http.MaxBytesReader(w, r.Body, h.uploadSvc.MaxBytes()+(1<<20))

	if err := r.ParseMultipartForm(h.uploadSvc.MaxBytes()); err != nil {
		badRequest(h.render, w, "upload inválido ou acima do limite", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		badRequest(h.render, w, "campo 'file' ausente", nil)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	url, err := h.uploadSvc.Upload(r.Context(), header.Filename, contentType, header.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotImage):
			badRequest(h.render, w, "apenas imagens são aceitas", nil)
		case errors.Is(err, services.ErrTooLarge):
			badRequest(h.render, w, "arquivo acima do limite de upload", nil)
		default:
			log.Printf("UploadHandler: falha ao armazenar %q: %v", header.Filename, err)
			internalError(h.render, w)
		}
		return
	}

	respondOK(h.render, w, http.StatusOK, map[string]string{"url": url})
}
