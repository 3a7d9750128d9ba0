package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mlukashe/go-photo-keeper/internal/utils"
	"github.com/mlukashe/go-photo-keeper/models"
)

// createMemory accepts the multipart upload the client gateway sends: a
// "meta" part with the JSON metadata and a "file" part with the photo.
func (h *Handler) createMemory(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgTokenMissing)
		return
	}

	albumID, err := strconv.ParseInt(chi.URLParam(r, "albumID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidData)
		return
	}

	if err = r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidData)
		return
	}

	var req models.CreateMemoryRequest
	if err = json.Unmarshal([]byte(r.FormValue("meta")), &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidData)
		return
	}
	req.AlbumID = albumID
	if err = h.validator.Validate(r.Context(), req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fileName, data, err := readUploadedFile(r, h)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgNoFileProvided)
		return
	}

	url := h.store.SaveImage("memories", albumID, fileName, data)
	rec, err := h.store.CreateMemory(userID, albumID, req.Title, req.Description, url, req.TakenAt)
	if err != nil {
		if errors.Is(err, errAlbumMissing) {
			writeError(w, http.StatusNotFound, msgAlbumNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	_, _ = utils.WriteJSON(w, memoryResponse(rec), http.StatusOK)
}

func (h *Handler) listMemories(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgTokenMissing)
		return
	}

	albumID, err := strconv.ParseInt(chi.URLParam(r, "albumID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidData)
		return
	}

	items, hasMore, err := h.store.ListMemories(userID, albumID, pagedRequest(r))
	if err != nil {
		writeError(w, http.StatusNotFound, msgAlbumNotFound)
		return
	}

	out := models.Paged[models.MemoryResponse]{HasMore: hasMore}
	for _, rec := range items {
		out.Items = append(out.Items, memoryResponse(rec))
	}
	_, _ = utils.WriteJSON(w, out, http.StatusOK)
}

func memoryResponse(rec memoryRecord) models.MemoryResponse {
	return models.MemoryResponse{
		ID:          rec.ID,
		AlbumID:     rec.AlbumID,
		Title:       rec.Title,
		Description: rec.Description,
		ImageURL:    rec.ImageURL,
		TakenAt:     rec.TakenAt,
		CreatedAt:   rec.CreatedAt,
	}
}
