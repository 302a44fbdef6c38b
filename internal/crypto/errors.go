package crypto

import "errors"

// Sentinel errors returned by the primitives and the blob codec. Callers
// should match them with [errors.Is]; most are wrapped with operation context.
var (
	// ErrCryptoUnsupported is returned by every operation when the platform
	// has no usable entropy source or AES-GCM implementation.
	ErrCryptoUnsupported = errors.New("cryptography is not available on this platform")

	// ErrAuthenticationFailed is returned when the AES-GCM tag does not match:
	// wrong key, tampered ciphertext, tampered IV or mismatching associated data.
	ErrAuthenticationFailed = errors.New("authentication tag mismatch")

	// ErrMalformedBlob is returned when a serialized blob is not valid JSON,
	// misses a mandatory field or carries invalid Base64.
	ErrMalformedBlob = errors.New("malformed encrypted blob")

	// ErrKeyNotExtractable is returned when raw material of a key created as
	// non-exportable is requested (export or wrap).
	ErrKeyNotExtractable = errors.New("key is not extractable")

	// ErrInvalidKeyUsage is returned when a key is used for an operation it
	// was not created for.
	ErrInvalidKeyUsage = errors.New("key usage does not permit operation")

	ErrUnsupportedBlockSize = errors.New("unsupported AES block size")
	ErrUnsupportedHash      = errors.New("unsupported hash function")
	ErrInvalidIterations    = errors.New("pbkdf2 iterations must be positive")
	ErrInvalidKeyLength     = errors.New("invalid AES key length")
	ErrInvalidIV            = errors.New("invalid initialization vector")
)
