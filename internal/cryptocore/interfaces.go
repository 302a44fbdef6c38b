// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cryptocore holds the stateful half of client-side encryption: the
// per-process master key session for each encryption scheme and the registry
// that hands those sessions out.
//
// A session starts NotReady. It becomes Ready once the master key has been
// derived from the user's password ([CryptoCore.CreateAndStoreMasterKey]) or
// restored from local storage ([CryptoCore.LoadMasterKey]). Per-note sub-keys
// and text encryption are refused with [ErrNotReady] until then.
package cryptocore

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_core_mock.go -package=mock

// ContextType selects how the HKDF context of a sub-key is turned into bytes.
type ContextType string

const (
	// ContextTypeText uses the UTF-8 bytes of the context.
	ContextTypeText ContextType = "text"

	// ContextTypeBase64 decodes the context as standard Base64.
	ContextTypeBase64 ContextType = "base64"
)

// CryptoCore is a master key session for one encryption scheme.
type CryptoCore interface {
	// IsReady reports whether a master key is loaded.
	IsReady() bool

	// IsSupported reports whether the platform primitives are usable.
	IsSupported() bool

	// CreateAndStoreMasterKey derives the master key from password, wraps it
	// with the settings' KEK and stores it under storageKey.
	//
	// It fails with [ErrAlreadyReady] on a Ready session. When a blob already
	// exists and unwraps under the KEK, the derived key must equal it: a
	// match is adopted without rewriting storage, a mismatch returns
	// [ErrMasterKeyMismatch] and leaves storage untouched.
	CreateAndStoreMasterKey(ctx context.Context, password string, settings models.EncryptionSettings, storageKey store.LocalStorageKey) error

	// RotateMasterKey derives a new master key and overwrites the stored blob
	// unconditionally.
	RotateMasterKey(ctx context.Context, password string, settings models.EncryptionSettings, storageKey store.LocalStorageKey) error

	// LoadMasterKey restores the master key from storageKey. Every failure,
	// including a missing blob, is logged and reported as false.
	LoadMasterKey(ctx context.Context, serverKEKB64 string, storageKey store.LocalStorageKey) bool

	// CreateSubKey derives the deterministic per-note key from the master
	// key. saltB64 is standard Base64.
	CreateSubKey(saltB64, contextPermutation string, contextType ContextType) (*crypto.Key, error)

	// EncryptText encrypts text under key into a serialized blob.
	EncryptText(key *crypto.Key, text string) (string, error)

	// DecryptText is the inverse of EncryptText.
	DecryptText(key *crypto.Key, blob string) (string, error)
}
