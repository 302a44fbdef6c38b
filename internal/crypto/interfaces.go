// Package crypto implements the low-level cryptographic primitives of the
// note client: secure randomness, PBKDF2 and HKDF key derivation, AES-GCM
// authenticated encryption, raw key import/export and key wrapping.
//
// It also owns the canonical serialization of AES-GCM results, the
// [EncryptedBlob] JSON/Base64 wire format shared with the server and the
// note push channel.
//
// Key hierarchy used by the client:
//
//	MasterKey = PBKDF2(password, serverSalt)          (DeriveKeyFromPassword)
//	Wrapped   = AES-GCM(KEK, MasterKey)               (WrapKey, stored locally)
//	SubKey    = HKDF(MasterKey, noteSalt, noteID)     (DeriveSubKey)
//	Content   = AES-GCM(SubKey, noteText)             (Encrypt)
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/primitives_mock.go -package=mock

// Primitives is the contract of the platform crypto subsystem. Every method
// first checks [Primitives.IsAvailable] and fails with [ErrCryptoUnsupported]
// when it reports false. Implementations never retry internally.
type Primitives interface {
	// IsAvailable reports whether an entropy source and AES-GCM are usable.
	IsAvailable() bool

	// SecureRandomBytes returns n bytes from the CSPRNG.
	SecureRandomBytes(n int) ([]byte, error)

	// PBKDF2Salt returns a fresh 32-byte salt for password derivation.
	PBKDF2Salt() ([]byte, error)

	// DeriveKeyFromPassword stretches password with PBKDF2-HMAC into an AES
	// key of params.BlockSize bits. Zero params fields take the defaults
	// (256 bits, SHA-512, DefaultPBKDF2Iterations).
	DeriveKeyFromPassword(password string, salt []byte, exportable bool, usages KeyUsage, params PBKDF2Params) (*Key, error)

	// DeriveSubKey runs HKDF extract-and-expand over the master key material.
	// The master key must carry UsageDeriveKey. The result is deterministic
	// for a fixed (master, salt, info, params) tuple.
	DeriveSubKey(master *Key, salt, info []byte, exportable bool, usages KeyUsage, params HKDFParams) (*Key, error)

	// Encrypt seals plaintext with AES-GCM and a 128-bit tag. A nil iv is
	// replaced by DefaultIVBytes fresh random bytes.
	Encrypt(key *Key, plaintext, associatedData, iv []byte) (EncryptedBlob, error)

	// Decrypt opens blob. A tag mismatch yields [ErrAuthenticationFailed].
	Decrypt(blob EncryptedBlob, key *Key) ([]byte, error)

	// WrapKey encrypts the raw material of keyToExport under wrappingKey.
	// keyToExport must be extractable.
	WrapKey(keyToExport, wrappingKey *Key, iv, associatedData []byte) (EncryptedBlob, error)

	// UnwrapKey is the inverse of WrapKey; the restored key receives the
	// given exportability and usages.
	UnwrapKey(blob EncryptedBlob, wrappingKey *Key, exportable bool, usages KeyUsage) (*Key, error)

	// ImportKey turns raw AES material into a key handle.
	ImportKey(raw []byte, exportable bool, usages KeyUsage) (*Key, error)

	// ImportKeyB64 decodes standard Base64 and imports the result.
	ImportKeyB64(rawB64 string, exportable bool, usages KeyUsage) (*Key, error)
}
