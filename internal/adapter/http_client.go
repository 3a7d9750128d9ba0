package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mlukashe/go-photo-keeper/internal/config"
	"github.com/mlukashe/go-photo-keeper/internal/logger"
	"github.com/mlukashe/go-photo-keeper/models"
)

// HTTPGateways is the resty-backed implementation of all four gateway
// interfaces. One instance is shared by the whole engine so the bearer token
// set by the auth flow is visible to every entity gateway.
type HTTPGateways struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

var (
	_ AlbumGateway  = (*HTTPGateways)(nil)
	_ MemoryGateway = (*HTTPGateways)(nil)
	_ UserGateway   = (*HTTPGateways)(nil)
	_ AuthGateway   = (*HTTPGateways)(nil)
)

// NewHTTPGateways constructs the HTTP gateway set from the API configuration.
// Returns an error if the base URL is empty or unparsable.
func NewHTTPGateways(cfg config.API, log *logger.Logger) (*HTTPGateways, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &HTTPGateways{client: cli, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [AuthGateway]. The token is trimmed before storing.
func (h *HTTPGateways) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [AuthGateway].
func (h *HTTPGateways) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *HTTPGateways) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// ── Auth ────────────────────────────────────────────────────────────────────

// Register implements [AuthGateway]. On success the bearer token from the
// Authorization response header is stored for subsequent requests.
func (h *HTTPGateways) Register(ctx context.Context, creds models.Credentials) (models.Token, error) {
	return h.authenticate(ctx, "/api/auth/register", creds)
}

// Login implements [AuthGateway].
func (h *HTTPGateways) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	return h.authenticate(ctx, "/api/auth/login", creds)
}

func (h *HTTPGateways) authenticate(ctx context.Context, path string, creds models.Credentials) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(path)
	if err != nil {
		return models.Token{}, mapRequestError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

// ── Albums ──────────────────────────────────────────────────────────────────

func (h *HTTPGateways) CreateAlbum(ctx context.Context, req models.CreateAlbumRequest) (models.AlbumResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/albums")
	if err != nil {
		return models.AlbumResponse{}, mapRequestError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AlbumResponse{}, err
	}

	var album models.AlbumResponse
	if err = json.Unmarshal(resp.Body(), &album); err != nil {
		return models.AlbumResponse{}, fmt.Errorf("decode create album response: %w", err)
	}
	return album, nil
}

func (h *HTTPGateways) UpdateAlbum(ctx context.Context, serverID int64, req models.UpdateAlbumRequest) (models.AlbumResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/albums/" + strconv.FormatInt(serverID, 10))
	if err != nil {
		return models.AlbumResponse{}, mapRequestError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AlbumResponse{}, err
	}

	var album models.AlbumResponse
	if err = json.Unmarshal(resp.Body(), &album); err != nil {
		return models.AlbumResponse{}, fmt.Errorf("decode update album response: %w", err)
	}
	return album, nil
}

func (h *HTTPGateways) ListAlbums(ctx context.Context, page models.PagedRequest) (models.Paged[models.AlbumResponse], error) {
	var out models.Paged[models.AlbumResponse]

	resp, err := h.authedRequest(ctx).
		SetQueryParam("page", strconv.Itoa(page.Page)).
		SetQueryParam("page_size", strconv.Itoa(page.PageSize)).
		Get("/api/albums")
	if err != nil {
		return out, mapRequestError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("decode album list response: %w", err)
	}
	return out, nil
}

func (h *HTTPGateways) UploadAlbumCover(ctx context.Context, serverID int64, fileName string, image []byte) (models.UploadResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetFileReader("file", fileName, bytes.NewReader(image)).
		Post("/api/albums/" + strconv.FormatInt(serverID, 10) + "/cover")
	if err != nil {
		return models.UploadResponse{}, mapRequestError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}

	var up models.UploadResponse
	if err = json.Unmarshal(resp.Body(), &up); err != nil {
		return models.UploadResponse{}, fmt.Errorf("decode cover upload response: %w", err)
	}
	return up, nil
}

// ── Memories ────────────────────────────────────────────────────────────────

func (h *HTTPGateways) CreateMemory(ctx context.Context, req models.CreateMemoryRequest, fileName string, image []byte) (models.MemoryResponse, error) {
	meta, err := json.Marshal(req)
	if err != nil {
		return models.MemoryResponse{}, fmt.Errorf("encode memory metadata: %w", err)
	}

	resp, err := h.authedRequest(ctx).
		SetMultipartField("meta", "", "application/json", bytes.NewReader(meta)).
		SetFileReader("file", fileName, bytes.NewReader(image)).
		Post("/api/albums/" + strconv.FormatInt(req.AlbumID, 10) + "/memories")
	if err != nil {
		return models.MemoryResponse{}, mapRequestError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MemoryResponse{}, err
	}

	var memory models.MemoryResponse
	if err = json.Unmarshal(resp.Body(), &memory); err != nil {
		return models.MemoryResponse{}, fmt.Errorf("decode create memory response: %w", err)
	}
	return memory, nil
}

func (h *HTTPGateways) ListMemories(ctx context.Context, albumServerID int64, page models.PagedRequest) (models.Paged[models.MemoryResponse], error) {
	var out models.Paged[models.MemoryResponse]

	resp, err := h.authedRequest(ctx).
		SetQueryParam("page", strconv.Itoa(page.Page)).
		SetQueryParam("page_size", strconv.Itoa(page.PageSize)).
		Get("/api/albums/" + strconv.FormatInt(albumServerID, 10) + "/memories")
	if err != nil {
		return out, mapRequestError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("decode memory list response: %w", err)
	}
	return out, nil
}

// ── User ────────────────────────────────────────────────────────────────────

func (h *HTTPGateways) GetUser(ctx context.Context) (models.UserResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/user")
	if err != nil {
		return models.UserResponse{}, mapRequestError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	var user models.UserResponse
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.UserResponse{}, fmt.Errorf("decode user response: %w", err)
	}
	return user, nil
}

func (h *HTTPGateways) UpdateUser(ctx context.Context, req models.UpdateUserRequest) (models.UserResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/user")
	if err != nil {
		return models.UserResponse{}, mapRequestError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	var user models.UserResponse
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.UserResponse{}, fmt.Errorf("decode update user response: %w", err)
	}
	return user, nil
}

func (h *HTTPGateways) UploadAvatar(ctx context.Context, fileName string, image []byte) (models.UserResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetFileReader("file", fileName, bytes.NewReader(image)).
		Post("/api/user/avatar")
	if err != nil {
		return models.UserResponse{}, mapRequestError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	var user models.UserResponse
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.UserResponse{}, fmt.Errorf("decode avatar upload response: %w", err)
	}
	return user, nil
}

// ── Helpers ─────────────────────────────────────────────────────────────────

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func parseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
