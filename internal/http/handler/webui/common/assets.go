package common

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

//go:embed assets/*
var assetsFS embed.FS

// AssetsHandler serves the embedded stylesheets and scripts. Embedded files
// have no modification time, so each response carries a content based ETag.
type AssetsHandler struct {
	mux    *http.ServeMux
	etags  map[string]string
	maxAge time.Duration
}

// ServeHTTP implements http.Handler.
func (h *AssetsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *AssetsHandler) withCacheHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if etag, exists := h.etags[r.PathValue("file")]; exists {
			w.Header().Set("ETag", etag)
			w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.maxAge.Seconds())))
		}

		next.ServeHTTP(w, r)
	})
}

func NewAssetsHandler(maxAge time.Duration) *AssetsHandler {
	assets, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(errors.WithStack(err))
	}

	etags, err := computeETags(assets)
	if err != nil {
		panic(errors.WithStack(err))
	}

	handler := &AssetsHandler{
		mux:    http.NewServeMux(),
		etags:  etags,
		maxAge: maxAge,
	}

	handler.mux.Handle("GET /{file...}", handler.withCacheHeaders(http.FileServerFS(assets)))

	return handler
}

func computeETags(assets fs.FS) (map[string]string, error) {
	etags := map[string]string{}

	err := fs.WalkDir(assets, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.WithStack(err)
		}

		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(assets, path)
		if err != nil {
			return errors.WithStack(err)
		}

		sum := sha256.Sum256(data)
		etags[path] = `"` + hex.EncodeToString(sum[:8]) + `"`

		return nil
	})
	if err != nil {
		return nil, err
	}

	return etags, nil
}

var _ http.Handler = &AssetsHandler{}
