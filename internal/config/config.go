// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-note-keeper client. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local storage backend settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the note server endpoint and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Crypto holds key derivation and key storage settings.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// NoteID is the note to open after the session is unlocked.
	// Empty means unlock only.
	// Env: APP_NOTE_ID
	NoteID string `env:"NOTE_ID"`

	// CopyToClipboard copies the decrypted note text to the system clipboard.
	// Env: APP_COPY_TO_CLIPBOARD
	CopyToClipboard bool `env:"COPY_TO_CLIPBOARD"`

	// WatchInterval keeps the opened note on screen and refreshes it at this
	// interval until the process is interrupted. Zero disables watching.
	// Env: APP_WATCH_INTERVAL
	WatchInterval time.Duration `env:"WATCH_INTERVAL"`
}

// Storage groups the configuration for the client storage backends.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the path of the SQLite file. The value ":memory:" selects a
	// process-local store that does not survive a restart.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration for the note server transport.
type Adapter struct {
	// HTTPAddress is the base URL of the note server
	// (e.g. "http://localhost:8080"). A bare host:port is accepted.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Crypto holds key derivation and key storage settings.
type Crypto struct {
	// PBKDF2Iterations is used when the server does not send an iteration
	// count with the user's salt. Zero selects the library default.
	// Env: CRYPTO_PBKDF2_ITERATIONS
	PBKDF2Iterations int `env:"PBKDF2_ITERATIONS"`

	// MasterKeyStorageKey is the local storage key of the wrapped master key.
	// Env: CRYPTO_MASTER_KEY_STORAGE_KEY
	MasterKeyStorageKey string `env:"MASTER_KEY_STORAGE_KEY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (os.Args)
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
