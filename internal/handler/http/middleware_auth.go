package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/mlukashe/go-photo-keeper/internal/utils"
)

// withAuth validates the bearer token and stores the user id in the request
// context for the handlers downstream.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			writeError(w, http.StatusUnauthorized, msgTokenMissing)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(parts[1], h.cfg.SignKey, h.cfg.TokenIssuer)
		if err != nil {
			writeError(w, http.StatusUnauthorized, msgTokenInvalid)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, token.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
