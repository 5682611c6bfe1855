package handler

import (
	"net/http"

	"github.com/bolao/landing/internal/view"
)

// Static serves the embedded page assets under /static/.
//
// GET /static/*
func Static() http.Handler {
	files := http.StripPrefix("/static/", http.FileServerFS(view.StaticFS()))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}
