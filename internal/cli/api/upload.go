package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// UploadClient talks to the signed-URL asset-upload service and performs
// the direct PUT against the issued URL.
type UploadClient struct {
	c *Client
}

func NewUploadClient(c *Client) *UploadClient {
	return &UploadClient{c: c}
}

// SignedURLRequest is the generatesignedurl payload.
type SignedURLRequest struct {
	ObjectName        string `json:"object_name"`
	ContentType       string `json:"content_type"`
	ExpirationMinutes int    `json:"expiration_minutes"`
}

// GenerateSignedURL requests a write-once destination URL for objectName.
func (uc *UploadClient) GenerateSignedURL(ctx context.Context, req SignedURLRequest) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := uc.c.doJSON(ctx, http.MethodPost, "/generatesignedurl", req, &out); err != nil {
		return "", err
	}
	if out.URL == "" {
		return "", fmt.Errorf("upload service returned no url")
	}
	return out.URL, nil
}

// PutFile streams the raw file bytes to the signed URL. The signed URL is
// already authorized, so no credential is attached; the content type must
// match the one the URL was generated for.
func (uc *UploadClient) PutFile(ctx context.Context, signedURL string, body io.Reader, size int64, contentType string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, signedURL, body)
	if err != nil {
		return err
	}
	req.ContentLength = size
	req.Header.Set("Content-Type", contentType)

	resp, err := uc.c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		return &ServerError{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
	}
	return nil
}
