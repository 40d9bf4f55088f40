// Package web embeds the static chat frontend and provides an HTTP
// handler that serves it, falling back to index.html for unknown paths.
package web

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
)

//go:embed static
var staticFS embed.FS

// Handler returns an http.Handler that serves the embedded frontend.
func Handler() http.Handler {
	subFS, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("web: failed to create sub filesystem: " + err.Error())
	}

	fileServer := http.FileServer(http.FS(subFS))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/")
		if path == "" {
			path = "index.html"
		}

		if f, err := subFS.Open(path); err == nil {
			if closeErr := f.Close(); closeErr != nil {
				slog.Debug("web: failed to close embedded file", "path", path, "error", closeErr)
			}
			fileServer.ServeHTTP(w, r)
			return
		}

		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	})
}
