package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mlukashe/go-photo-keeper/internal/utils"
	"github.com/mlukashe/go-photo-keeper/internal/validators"
	"github.com/mlukashe/go-photo-keeper/models"
)

// register creates an account and answers with a bearer token in the
// Authorization header, the contract the client's auth gateway expects.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidData)
		return
	}
	if err := h.validator.Validate(r.Context(), creds); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	acc, err := h.store.CreateAccount(creds.Login, utils.HashString(creds.Password, h.cfg.HashKey), creds.Name)
	if err != nil {
		if errors.Is(err, errLoginTaken) {
			writeError(w, http.StatusConflict, msgLoginTaken)
			return
		}
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	h.issueToken(w, acc)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidData)
		return
	}
	if err := h.validator.Validate(r.Context(), creds, validators.FieldLogin); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	acc, err := h.store.Authenticate(creds.Login, utils.HashString(creds.Password, h.cfg.HashKey))
	if err != nil {
		writeError(w, http.StatusUnauthorized, msgInvalidLogin)
		return
	}

	h.issueToken(w, acc)
}

func (h *Handler) issueToken(w http.ResponseWriter, acc account) {
	token, err := utils.GenerateJWTToken(h.cfg.TokenIssuer, acc.ID, h.cfg.TokenTTL, h.cfg.SignKey)
	if err != nil {
		h.logger.Err(err).Str("func", "issueToken").Msg("failed to sign token")
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	_, _ = utils.WriteJSON(w, userResponse(acc), http.StatusOK)
}
