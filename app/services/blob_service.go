package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// BlobClient stores uploaded bytes in the external blob provider and returns
// the public URL.
type BlobClient interface {
	Put(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

type httpBlobClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewHTTPBlobClient(baseURL, token string) BlobClient {
	return &httpBlobClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type blobPutResponse struct {
	URL string `json:"url"`
}

func (c *httpBlobClient) Put(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	fullURL := c.baseURL + "/" + filename
	log.Printf("BlobClient.Put: enviando %s (%s) para %s", filename, contentType, fullURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, fullURL, body)
	if err != nil {
		return "", fmt.Errorf("failed to build blob request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("blob request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read blob response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("blob store returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed blobPutResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse blob response: %w", err)
	}
	if parsed.URL == "" {
		return "", fmt.Errorf("blob store response missing url")
	}

	return parsed.URL, nil
}
