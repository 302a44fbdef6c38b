package cryptocore

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// AesGcmCore is the [CryptoCore] of the PASSWORD scheme.
//
// Key hierarchy: PBKDF2(password, server salt) gives the master key, which is
// kept in memory for the process lifetime and persisted only wrapped under
// the server-issued KEK. Note keys are HKDF sub-keys of the master key.
type AesGcmCore struct {
	platform crypto.Primitives
	storage  store.LocalStorage
	logger   *logger.Logger

	// defaultIterations applies when the server sends no iteration count.
	defaultIterations int

	mu        sync.RWMutex
	masterKey *crypto.Key
}

// NewAesGcmCore returns a NotReady session. A zero defaultIterations selects
// [crypto.DefaultPBKDF2Iterations].
func NewAesGcmCore(platform crypto.Primitives, storage store.LocalStorage, defaultIterations int, logger *logger.Logger) *AesGcmCore {
	return &AesGcmCore{
		platform:          platform,
		storage:           storage,
		logger:            logger,
		defaultIterations: defaultIterations,
	}
}

// IsReady implements [CryptoCore].
func (c *AesGcmCore) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.masterKey != nil
}

// IsSupported implements [CryptoCore].
func (c *AesGcmCore) IsSupported() bool {
	return c.platform.IsAvailable()
}

// CreateAndStoreMasterKey implements [CryptoCore].
func (c *AesGcmCore) CreateAndStoreMasterKey(ctx context.Context, password string, settings models.EncryptionSettings, storageKey store.LocalStorageKey) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.masterKey != nil {
		return ErrAlreadyReady
	}

	candidate, kek, err := c.deriveWithKEK(password, settings)
	if err != nil {
		return err
	}
	defer kek.Destroy()

	log := c.logger.With().
		Str("func", "AesGcmCore.CreateAndStoreMasterKey").
		Str("storage_key", string(storageKey)).
		Logger()

	var stored crypto.EncryptedBlob
	found, err := c.storage.GetItem(ctx, storageKey, store.ItemObject, &stored)
	switch {
	case err != nil && !found:
		candidate.Destroy()
		return fmt.Errorf("read stored master key: %w", err)
	case err != nil:
		log.Warn().Err(err).Msg("stored master key is unreadable, replacing it")
	case found:
		existing, unwrapErr := c.platform.UnwrapKey(stored, kek, true, crypto.UsagesDerive)
		if unwrapErr != nil {
			log.Warn().Err(unwrapErr).Msg("stored master key does not unwrap under the current KEK, replacing it")
			break
		}

		match := existing.Equal(candidate)
		existing.Destroy()
		if !match {
			candidate.Destroy()
			return ErrMasterKeyMismatch
		}

		c.masterKey = candidate
		log.Info().Msg("derived master key matches the stored one")
		return nil
	}

	if err = c.wrapAndStore(ctx, candidate, kek, storageKey); err != nil {
		candidate.Destroy()
		return err
	}

	c.masterKey = candidate
	log.Info().Msg("master key created and stored")
	return nil
}

// RotateMasterKey implements [CryptoCore].
func (c *AesGcmCore) RotateMasterKey(ctx context.Context, password string, settings models.EncryptionSettings, storageKey store.LocalStorageKey) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	candidate, kek, err := c.deriveWithKEK(password, settings)
	if err != nil {
		return err
	}
	defer kek.Destroy()

	if err = c.wrapAndStore(ctx, candidate, kek, storageKey); err != nil {
		candidate.Destroy()
		return err
	}

	if c.masterKey != nil {
		c.masterKey.Destroy()
	}
	c.masterKey = candidate

	c.logger.Info().
		Str("func", "AesGcmCore.RotateMasterKey").
		Str("storage_key", string(storageKey)).
		Msg("master key rotated")
	return nil
}

// LoadMasterKey implements [CryptoCore].
func (c *AesGcmCore) LoadMasterKey(ctx context.Context, serverKEKB64 string, storageKey store.LocalStorageKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	log := c.logger.With().
		Str("func", "AesGcmCore.LoadMasterKey").
		Str("storage_key", string(storageKey)).
		Logger()

	if c.masterKey != nil {
		return true
	}

	var stored crypto.EncryptedBlob
	found, err := c.storage.GetItem(ctx, storageKey, store.ItemObject, &stored)
	if err != nil {
		log.Err(err).Msg("failed to read stored master key")
		return false
	}
	if !found {
		log.Debug().Msg("no stored master key")
		return false
	}

	kek, err := c.platform.ImportKeyB64(serverKEKB64, false, crypto.UsagesWrapUnwrap)
	if err != nil {
		log.Err(err).Msg("failed to import KEK")
		return false
	}
	defer kek.Destroy()

	master, err := c.platform.UnwrapKey(stored, kek, true, crypto.UsagesDerive)
	if err != nil {
		log.Err(err).Msg("failed to unwrap stored master key")
		return false
	}

	c.masterKey = master
	log.Info().Msg("master key restored")
	return true
}

// CreateSubKey implements [CryptoCore].
func (c *AesGcmCore) CreateSubKey(saltB64, contextPermutation string, contextType ContextType) (*crypto.Key, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.masterKey == nil {
		return nil, ErrNotReady
	}

	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return nil, fmt.Errorf("%w: sub-key salt is not base64: %v", ErrInvalidSettings, err)
	}

	var info []byte
	switch contextType {
	case ContextTypeText:
		info = []byte(contextPermutation)
	case ContextTypeBase64:
		info, err = base64.StdEncoding.DecodeString(contextPermutation)
		if err != nil {
			return nil, fmt.Errorf("%w: context is not base64: %v", ErrInvalidContextType, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidContextType, string(contextType))
	}

	key, err := c.platform.DeriveSubKey(c.masterKey, salt, info, true, crypto.UsagesEncryptDecrypt, crypto.HKDFParams{})
	if err != nil {
		return nil, fmt.Errorf("derive sub-key: %w", err)
	}
	return key, nil
}

// EncryptText implements [CryptoCore].
func (c *AesGcmCore) EncryptText(key *crypto.Key, text string) (string, error) {
	if !c.IsReady() {
		return "", ErrNotReady
	}

	blob, err := c.platform.Encrypt(key, []byte(text), nil, nil)
	if err != nil {
		return "", fmt.Errorf("encrypt text: %w", err)
	}
	return crypto.EncodeBlob(blob)
}

// DecryptText implements [CryptoCore].
func (c *AesGcmCore) DecryptText(key *crypto.Key, blob string) (string, error) {
	if !c.IsReady() {
		return "", ErrNotReady
	}

	decoded, err := crypto.DecodeBlob(blob)
	if err != nil {
		return "", err
	}

	plaintext, err := c.platform.Decrypt(decoded, key)
	if err != nil {
		return "", fmt.Errorf("decrypt text: %w", err)
	}
	return string(plaintext), nil
}

// deriveWithKEK derives the candidate master key and imports the KEK. The
// caller owns both keys.
func (c *AesGcmCore) deriveWithKEK(password string, settings models.EncryptionSettings) (*crypto.Key, *crypto.Key, error) {
	if password == "" {
		return nil, nil, fmt.Errorf("%w: empty password", ErrInvalidSettings)
	}

	params, salt, err := c.pbkdf2Params(settings.AesGcm)
	if err != nil {
		return nil, nil, err
	}

	kek, err := c.platform.ImportKeyB64(settings.KEKB64, false, crypto.UsagesWrapUnwrap)
	if err != nil {
		return nil, nil, fmt.Errorf("import KEK: %w", err)
	}

	master, err := c.platform.DeriveKeyFromPassword(password, salt, true, crypto.UsagesDerive, params)
	if err != nil {
		kek.Destroy()
		return nil, nil, fmt.Errorf("derive master key: %w", err)
	}

	return master, kek, nil
}

func (c *AesGcmCore) pbkdf2Params(s models.AesGcmSettings) (crypto.PBKDF2Params, []byte, error) {
	salt, err := base64.StdEncoding.DecodeString(s.SaltB64)
	if err != nil {
		return crypto.PBKDF2Params{}, nil, fmt.Errorf("%w: salt is not base64: %v", ErrInvalidSettings, err)
	}
	if len(salt) == 0 {
		return crypto.PBKDF2Params{}, nil, fmt.Errorf("%w: empty salt", ErrInvalidSettings)
	}

	iterations := s.PBKDF2Iterations
	if iterations == 0 {
		iterations = c.defaultIterations
	}

	params := crypto.PBKDF2Params{
		BlockSize:  crypto.BlockSize(s.BlockSize),
		Iterations: iterations,
	}
	if params.BlockSize != 0 {
		if err = params.BlockSize.Validate(); err != nil {
			return crypto.PBKDF2Params{}, nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}
	}

	return params, salt, nil
}

func (c *AesGcmCore) wrapAndStore(ctx context.Context, master, kek *crypto.Key, storageKey store.LocalStorageKey) error {
	blob, err := c.platform.WrapKey(master, kek, nil, nil)
	if err != nil {
		return fmt.Errorf("wrap master key: %w", err)
	}

	if err = c.storage.SetItem(ctx, storageKey, blob, store.ItemObject); err != nil {
		return fmt.Errorf("store master key: %w", err)
	}
	return nil
}
