package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/services"
	"github.com/unrolled/render"
)

type stubBlobClient struct {
	puts []string
}

func (s *stubBlobClient) Put(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	s.puts = append(s.puts, filename)
	return "https://blob.example.com/" + filename, nil
}

func multipartUpload(t *testing.T, filename, contentType string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadHandler(t *testing.T) {
	blob := &stubBlobClient{}
	h := NewUploadHandler(services.NewUploadService(blob, 1024), render.New())

	rec := httptest.NewRecorder()
	h.Upload(rec, multipartUpload(t, "Foto Produto.PNG", "image/png", []byte("fake-png-bytes")))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	url := resp.Data["url"]
	if !strings.HasPrefix(url, "https://blob.example.com/") || !strings.HasSuffix(url, ".png") {
		t.Errorf("url = %q, want blob URL ending in .png", url)
	}
	// The stored name is regenerated, never the user-supplied one.
	if len(blob.puts) != 1 || strings.Contains(blob.puts[0], "Foto") {
		t.Errorf("stored names = %v, want one generated name", blob.puts)
	}
}

func TestUploadHandlerRejectsNonImage(t *testing.T) {
	blob := &stubBlobClient{}
	h := NewUploadHandler(services.NewUploadService(blob, 1024), render.New())

	rec := httptest.NewRecorder()
	h.Upload(rec, multipartUpload(t, "nota.pdf", "application/pdf", []byte("%PDF-1.4")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if len(blob.puts) != 0 {
		t.Errorf("blob puts = %d, want 0", len(blob.puts))
	}
}

func TestUploadHandlerMissingFileField(t *testing.T) {
	blob := &stubBlobClient{}
	h := NewUploadHandler(services.NewUploadService(blob, 1024), render.New())

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.Close()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if len(blob.puts) != 0 {
		t.Errorf("blob puts = %d, want 0", len(blob.puts))
	}
}
