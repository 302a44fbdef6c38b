package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	headerRequestID  = "X-Request-ID"
	headerChannelKey = "X-Channel-Key"

	pathLocalStorageKEK  = "/api/users/local-storage/kek"
	pathLocalStorageSalt = "/api/users/local-storage/salt"
	pathNote             = "/api/notes/{noteID}"
	pathNoteContent      = "/api/notes/{noteID}/content"
	pathNoteEncryption   = "/api/notes/{noteID}/encryption"
)

type httpServerAdapter struct {
	client    *utils.HTTPClient
	requestID *utils.UUIDGenerator

	mu         sync.RWMutex
	token      string
	channelKey string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// adapterCfg.HTTPAddress may be a full URL or a bare host:port.
//
// Returns [ErrInvalidAddress] if the address is empty or has no host.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL := utils.NormalizeBaseURL(adapterCfg.HTTPAddress)
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, adapterCfg.HTTPAddress)
	}

	return &httpServerAdapter{
		client:    utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		requestID: utils.NewUUIDGenerator(),
		logger:    logger,
	}, nil
}

// SetToken implements [ServerAdapter]. A "Bearer " prefix is accepted and
// stripped.
func (h *httpServerAdapter) SetToken(token string) {
	token = strings.TrimSpace(token)
	if t, err := utils.ParseBearerToken(token); err == nil {
		token = t
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SetChannelKey implements [ServerAdapter].
func (h *httpServerAdapter) SetChannelKey(channelKey string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.channelKey = strings.TrimSpace(channelKey)
}

func (h *httpServerAdapter) getChannelKey() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.channelKey
}

// GetUserLocalStorageKeyEncryptionKey implements [ServerAdapter].
func (h *httpServerAdapter) GetUserLocalStorageKeyEncryptionKey(ctx context.Context) (string, error) {
	resp, err := h.authedRequest(ctx).Get(pathLocalStorageKEK)
	if err != nil {
		return "", fmt.Errorf("get local storage kek request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var body models.LocalStorageKEKResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("%w: decode kek: %v", ErrUnexpectedResponse, err)
	}
	if body.KEK == "" {
		return "", fmt.Errorf("%w: empty kek", ErrUnexpectedResponse)
	}

	return body.KEK, nil
}

// GetUserLocalStorageSalt implements [ServerAdapter].
func (h *httpServerAdapter) GetUserLocalStorageSalt(ctx context.Context) (models.LocalStorageSalt, error) {
	resp, err := h.authedRequest(ctx).Get(pathLocalStorageSalt)
	if err != nil {
		return models.LocalStorageSalt{}, fmt.Errorf("get local storage salt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LocalStorageSalt{}, err
	}

	var body models.LocalStorageSalt
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.LocalStorageSalt{}, fmt.Errorf("%w: decode salt: %v", ErrUnexpectedResponse, err)
	}
	if body.SaltB64 == "" {
		return models.LocalStorageSalt{}, fmt.Errorf("%w: empty salt", ErrUnexpectedResponse)
	}

	return body, nil
}

// GetNote implements [ServerAdapter].
func (h *httpServerAdapter) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	if noteID == "" {
		return models.Note{}, ErrEmptyNoteID
	}

	resp, err := h.authedRequest(ctx).
		SetPathParam("noteID", noteID).
		Get(pathNote)
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var note models.Note
	if err = json.Unmarshal(resp.Body(), &note); err != nil {
		return models.Note{}, fmt.Errorf("%w: decode note: %v", ErrUnexpectedResponse, err)
	}

	return note, nil
}

// SetNoteContent implements [ServerAdapter].
func (h *httpServerAdapter) SetNoteContent(ctx context.Context, noteID string, contents models.NoteContents) error {
	if noteID == "" {
		return ErrEmptyNoteID
	}

	resp, err := h.noteWriteRequest(ctx).
		SetPathParam("noteID", noteID).
		SetBody(contents).
		Put(pathNoteContent)
	if err != nil {
		return fmt.Errorf("set note content request: %w", err)
	}

	return mapHTTPError(resp)
}

// SetNoteEncryptionMethod implements [ServerAdapter].
func (h *httpServerAdapter) SetNoteEncryptionMethod(ctx context.Context, noteID string, body models.NoteEncryptionBody) error {
	if noteID == "" {
		return ErrEmptyNoteID
	}

	resp, err := h.noteWriteRequest(ctx).
		SetPathParam("noteID", noteID).
		SetBody(body).
		Put(pathNoteEncryption)
	if err != nil {
		return fmt.Errorf("set note encryption request: %w", err)
	}

	return mapHTTPError(resp)
}

// authedRequest prepares a request carrying the bearer token and a request
// ID. An ID already present in ctx is reused.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.requestID.Generate()
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(headerRequestID, requestID)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}

	h.logger.Debug().
		Str("func", "httpServerAdapter.authedRequest").
		Str("request_id", requestID).
		Bool("authorized", h.Token() != "").
		Msg("preparing request")

	return req
}

func (h *httpServerAdapter) noteWriteRequest(ctx context.Context) *resty.Request {
	req := h.authedRequest(ctx).SetHeader("Content-Type", "application/json")
	if channelKey := h.getChannelKey(); channelKey != "" {
		req.SetHeader(headerChannelKey, channelKey)
	}
	return req
}
