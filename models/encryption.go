package models

import (
	"encoding/json"
	"fmt"
)

// EncryptionScheme identifies how a note's contents are protected. The string
// values are the ones exchanged with the server.
type EncryptionScheme string

const (
	// EncryptionNone marks a note whose contents are stored in plain text.
	EncryptionNone EncryptionScheme = "NONE"

	// EncryptionPassword marks a note encrypted with a sub-key derived from
	// the password-based master key.
	EncryptionPassword EncryptionScheme = "PASSWORD"

	// EncryptionCertificate is reserved for certificate-based encryption,
	// which clients do not implement yet.
	EncryptionCertificate EncryptionScheme = "CERTIFICATE"
)

// IsEncrypted reports whether contents under this scheme are ciphertext.
func (s EncryptionScheme) IsEncrypted() bool {
	return s != EncryptionNone && s != ""
}

// UnmarshalJSON accepts the known scheme names and treats null or an empty
// string as NONE.
func (s *EncryptionScheme) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode encryption scheme: %w", err)
	}
	if raw == nil || *raw == "" {
		*s = EncryptionNone
		return nil
	}

	switch scheme := EncryptionScheme(*raw); scheme {
	case EncryptionNone, EncryptionPassword, EncryptionCertificate:
		*s = scheme
		return nil
	default:
		return fmt.Errorf("decode encryption scheme: unknown value %q", *raw)
	}
}

// AesGcmSettings carries the password-derivation parameters handed out by
// the server for the AES-GCM scheme.
type AesGcmSettings struct {
	// SaltB64 is the Base64 PBKDF2 salt.
	SaltB64 string `json:"saltB64"`

	// PBKDF2Iterations overrides the client default when non-zero.
	PBKDF2Iterations int `json:"pbkdf2Iterations,omitempty"`

	// BlockSize is the AES key length in bits (128, 192 or 256).
	BlockSize int `json:"blockSize"`
}

// EncryptionSettings is everything the crypto core needs to create a master
// key for a user.
type EncryptionSettings struct {
	// KEKB64 is the Base64 key-encryption key that wraps the master key
	// before it is persisted locally.
	KEKB64 string `json:"kekB64"`

	AesGcm AesGcmSettings `json:"aesGcm"`
}
