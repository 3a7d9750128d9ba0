package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the dev server's router: public auth and health endpoints,
// a static image route, and the JWT-guarded API surface.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/static/*", h.serveImage)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.withAuth)

		r.Get("/api/albums", h.listAlbums)
		r.Post("/api/albums", h.createAlbum)
		r.Put("/api/albums/{albumID}", h.updateAlbum)
		r.Post("/api/albums/{albumID}/cover", h.uploadAlbumCover)

		r.Get("/api/albums/{albumID}/memories", h.listMemories)
		r.Post("/api/albums/{albumID}/memories", h.createMemory)

		r.Get("/api/user", h.getUser)
		r.Put("/api/user", h.updateUser)
		r.Post("/api/user/avatar", h.uploadAvatar)
	})

	return router
}
