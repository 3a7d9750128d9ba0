package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mlukashe/go-photo-keeper/internal/utils"
	"github.com/mlukashe/go-photo-keeper/models"
)

func (h *Handler) createAlbum(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgTokenMissing)
		return
	}

	var req models.CreateAlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidData)
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec := h.store.CreateAlbum(userID, req.Title)
	_, _ = utils.WriteJSON(w, albumResponse(rec), http.StatusOK)
}

func (h *Handler) updateAlbum(w http.ResponseWriter, r *http.Request) {
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

	var req models.UpdateAlbumRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidData)
		return
	}
	if err = h.validator.Validate(r.Context(), req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.store.UpdateAlbum(userID, albumID, req.Title)
	if err != nil {
		writeError(w, http.StatusNotFound, msgAlbumNotFound)
		return
	}
	_, _ = utils.WriteJSON(w, albumResponse(rec), http.StatusOK)
}

func (h *Handler) listAlbums(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgTokenMissing)
		return
	}

	items, hasMore := h.store.ListAlbums(userID, pagedRequest(r))

	out := models.Paged[models.AlbumResponse]{HasMore: hasMore}
	for _, rec := range items {
		out.Items = append(out.Items, albumResponse(rec))
	}
	_, _ = utils.WriteJSON(w, out, http.StatusOK)
}

func (h *Handler) uploadAlbumCover(w http.ResponseWriter, r *http.Request) {
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

	fileName, data, err := readUploadedFile(r, h)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgNoFileProvided)
		return
	}

	url := h.store.SaveImage("covers", albumID, fileName, data)
	if _, err = h.store.SetAlbumCover(userID, albumID, url); err != nil {
		writeError(w, http.StatusNotFound, msgAlbumNotFound)
		return
	}

	_, _ = utils.WriteJSON(w, models.UploadResponse{URL: url}, http.StatusOK)
}

func (h *Handler) serveImage(w http.ResponseWriter, r *http.Request) {
	data, ok := h.store.GetImage(r.URL.Path)
	if !ok {
		writeError(w, http.StatusNotFound, msgNoFileProvided)
		return
	}
	w.Header().Set("Content-Type", "image/jpeg")
	_, _ = w.Write(data)
}

func albumResponse(rec albumRecord) models.AlbumResponse {
	return models.AlbumResponse{
		ID:        rec.ID,
		Title:     rec.Title,
		CoverURL:  rec.CoverURL,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func pagedRequest(r *http.Request) models.PagedRequest {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	return models.PagedRequest{Page: page, PageSize: pageSize}
}

// readUploadedFile extracts the "file" part of a multipart upload and runs it
// through image validation.
func readUploadedFile(r *http.Request, h *Handler) (string, []byte, error) {
	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, err
	}
	if err = h.validator.Validate(r.Context(), data); err != nil {
		return "", nil, err
	}
	return header.Filename, data, nil
}
