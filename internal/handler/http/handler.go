package http

import (
	"net/http"

	"github.com/mlukashe/go-photo-keeper/internal/config"
	"github.com/mlukashe/go-photo-keeper/internal/logger"
	"github.com/mlukashe/go-photo-keeper/internal/validators"
)

// Handler holds the dev server's request handlers and their dependencies.
type Handler struct {
	store     *memStore
	cfg       config.DevServer
	validator validators.Validator
	logger    *logger.Logger
}

func NewHandler(cfg config.DevServer, log *logger.Logger) *Handler {
	return &Handler{
		store:     newMemStore(),
		cfg:       cfg,
		validator: validators.NewPhotoValidator(),
		logger:    log,
	}
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// responseWriter captures status and size for the logging middleware.
type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
