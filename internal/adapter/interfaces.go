// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the go-note-keeper
// client and the note server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the note server. Implementations
// attach the bearer token and a request ID to every request.
type ServerAdapter interface {
	// SetToken stores the bearer token used by all subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// SetChannelKey stores the push channel key sent with note writes so
	// the server can skip echoing the change back to this client.
	SetChannelKey(channelKey string)

	// GetUserLocalStorageKeyEncryptionKey fetches the Base64 KEK that wraps
	// the master key in local storage.
	GetUserLocalStorageKeyEncryptionKey(ctx context.Context) (string, error)

	// GetUserLocalStorageSalt fetches the user's PBKDF2 salt and optional
	// derivation parameters.
	GetUserLocalStorageSalt(ctx context.Context) (models.LocalStorageSalt, error)

	// GetNote fetches a note by ID.
	GetNote(ctx context.Context, noteID string) (models.Note, error)

	// SetNoteContent replaces the note contents. The contents must already be
	// in the note's current representation.
	SetNoteContent(ctx context.Context, noteID string, contents models.NoteContents) error

	// SetNoteEncryptionMethod switches the note's scheme together with the
	// re-encoded contents.
	SetNoteEncryptionMethod(ctx context.Context, noteID string, body models.NoteEncryptionBody) error
}
