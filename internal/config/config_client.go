package config

import (
	"fmt"
	"time"
)

const (
	// DefaultRequestTimeout applies when no adapter timeout is configured.
	DefaultRequestTimeout = 15 * time.Second

	// DefaultMasterKeyStorageKey is the local storage key of the wrapped
	// master key when none is configured.
	DefaultMasterKeyStorageKey = "MASTER_KEY"

	// DefaultDSN is the SQLite file used when no DSN is configured.
	DefaultDSN = "go-note-keeper.db"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	Version         string
	NoteID          string
	CopyToClipboard bool
	WatchInterval   time.Duration
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the note server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path, or ":memory:".
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientCrypto holds the settings of the client crypto core.
type ClientCrypto struct {
	// PBKDF2Iterations is the fallback iteration count; zero means default.
	PBKDF2Iterations int
	// MasterKeyStorageKey names the local storage entry of the wrapped key.
	MasterKeyStorageKey string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Crypto  ClientCrypto
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields into a
// [ClientConfig], fills defaults and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version:         cfg.App.Version,
			NoteID:          cfg.App.NoteID,
			CopyToClipboard: cfg.App.CopyToClipboard,
			WatchInterval:   cfg.App.WatchInterval,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Crypto: ClientCrypto{
			PBKDF2Iterations:    cfg.Crypto.PBKDF2Iterations,
			MasterKeyStorageKey: cfg.Crypto.MasterKeyStorageKey,
		},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Crypto.MasterKeyStorageKey == "" {
		clientCfg.Crypto.MasterKeyStorageKey = DefaultMasterKeyStorageKey
	}
	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = DefaultDSN
	}

	return clientCfg
}
