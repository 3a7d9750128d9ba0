package http

import (
	"net/http"

	"github.com/mlukashe/go-photo-keeper/internal/utils"
)

const (
	msgInvalidData    = "invalid data provided"
	msgInvalidLogin   = "invalid login/password"
	msgLoginTaken     = "login already taken"
	msgTokenMissing   = "authorization required"
	msgTokenInvalid   = "token is expired or invalid"
	msgAlbumNotFound  = "album not found"
	msgInternalError  = "internal server error"
	msgNoFileProvided = "no file provided"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	_, _ = utils.WriteJSON(w, errorResponse{Error: message}, status)
}
