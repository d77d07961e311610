// Package site serves the static assets shared by the HTML pages.
package site

import (
	"context"
	"net/http"
)

// AssetsPrefix is the URL path the embedded assets are mounted under.
const AssetsPrefix = "/assets/"

// Register attaches the embedded asset routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle(AssetsPrefix, NewAssetsHandler())
}

// NewAssetsHandler serves the embedded files with the prefix stripped and a
// short client cache.
func NewAssetsHandler() http.Handler {
	files := http.StripPrefix(AssetsPrefix, http.FileServer(FS()))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=300")
		files.ServeHTTP(w, r)
	})
}
