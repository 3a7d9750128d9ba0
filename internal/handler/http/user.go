package http

import (
	"encoding/json"
	"net/http"

	"github.com/mlukashe/go-photo-keeper/internal/utils"
	"github.com/mlukashe/go-photo-keeper/models"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgTokenMissing)
		return
	}

	acc, err := h.store.GetAccount(userID)
	if err != nil {
		writeError(w, http.StatusNotFound, msgInvalidData)
		return
	}
	_, _ = utils.WriteJSON(w, userResponse(acc), http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgTokenMissing)
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidData)
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	acc, err := h.store.UpdateAccount(userID, req.Name, req.Birthday)
	if err != nil {
		writeError(w, http.StatusNotFound, msgInvalidData)
		return
	}
	_, _ = utils.WriteJSON(w, userResponse(acc), http.StatusOK)
}

// uploadAvatar answers with the full refreshed profile, not a bare URL: the
// client treats the post-upload response as the authoritative record.
func (h *Handler) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgTokenMissing)
		return
	}

	fileName, data, err := readUploadedFile(r, h)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgNoFileProvided)
		return
	}

	url := h.store.SaveImage("avatars", userID, fileName, data)
	acc, err := h.store.SetAvatar(userID, url)
	if err != nil {
		writeError(w, http.StatusNotFound, msgInvalidData)
		return
	}
	_, _ = utils.WriteJSON(w, userResponse(acc), http.StatusOK)
}

func userResponse(acc account) models.UserResponse {
	return models.UserResponse{
		ID:        acc.ID,
		Login:     acc.Login,
		Name:      acc.Name,
		Birthday:  acc.Birthday,
		AvatarURL: acc.AvatarURL,
	}
}
