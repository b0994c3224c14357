package store

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/dmitrijs2005/gophportal/internal/netx"
)

// Uploader hands out presigned upload URLs and public links.
type Uploader interface {
	RequestUpload(ctx context.Context, name, contentType string) (key, url string, err error)
	PublicURL(ctx context.Context, key string) (string, error)
}

type Blobs struct {
	backend Uploader
	http    *http.Client
}

// NewBlobs returns a Blobs using hc for transfers; nil selects
// netx.DefaultClient.
func NewBlobs(backend Uploader, hc *http.Client) *Blobs {
	return &Blobs{backend: backend, http: hc}
}

// ContentType guesses the MIME type from name's extension.
func ContentType(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// Upload stores data under name and returns the object key.
func (b *Blobs) Upload(ctx context.Context, name string, data []byte) (string, error) {
	ct := ContentType(name)

	key, url, err := b.backend.RequestUpload(ctx, name, ct)
	if err != nil {
		return "", fmt.Errorf("request upload: %w", err)
	}

	if err := netx.Upload(ctx, b.http, url, ct, data); err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	return key, nil
}

// GetPublicURL returns the shareable link for an uploaded object.
func (b *Blobs) GetPublicURL(ctx context.Context, key string) (string, error) {
	return b.backend.PublicURL(ctx, key)
}
