package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		Adapter: Adapter{HTTPAddress: "http://localhost:8080"},
	})

	require.NoError(t, cfg.validate())
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultMasterKeyStorageKey, cfg.Crypto.MasterKeyStorageKey)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Crypto.PBKDF2Iterations)
}

func TestNewClientConfig_CopiesValues(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		App:     App{Version: "1.0.0", NoteID: "note-42", CopyToClipboard: true},
		Storage: Storage{DB: DB{DSN: ":memory:"}},
		Adapter: Adapter{HTTPAddress: "http://localhost:8080", RequestTimeout: 3 * time.Second},
		Crypto:  Crypto{PBKDF2Iterations: 1000, MasterKeyStorageKey: "MK"},
	})

	require.NoError(t, cfg.validate())
	assert.Equal(t, ClientApp{Version: "1.0.0", NoteID: "note-42", CopyToClipboard: true}, cfg.App)
	assert.Equal(t, ":memory:", cfg.Storage.DB.DSN)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, ClientCrypto{PBKDF2Iterations: 1000, MasterKeyStorageKey: "MK"}, cfg.Crypto)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: time.Second},
			Storage: ClientStorage{DB: ClientDB{DSN: "notes.db"}},
			Crypto:  ClientCrypto{MasterKeyStorageKey: "MASTER_KEY"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{"valid", func(c *ClientConfig) {}, nil},
		{"missing address", func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, ErrInvalidAdapterConfigs},
		{"bad address", func(c *ClientConfig) { c.Adapter.HTTPAddress = "http://[::1" }, ErrInvalidAdapterConfigs},
		{"zero timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"blank dsn", func(c *ClientConfig) { c.Storage.DB.DSN = "  " }, ErrInvalidStorageConfigs},
		{"negative iterations", func(c *ClientConfig) { c.Crypto.PBKDF2Iterations = -5 }, ErrInvalidCryptoConfigs},
		{"blank storage key", func(c *ClientConfig) { c.Crypto.MasterKeyStorageKey = "" }, ErrInvalidCryptoConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
