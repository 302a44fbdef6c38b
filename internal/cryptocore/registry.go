package cryptocore

import (
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// Options tunes the cores created by [NewRegistry].
type Options struct {
	// PBKDF2Iterations is used when the server omits an iteration count.
	// Zero selects [crypto.DefaultPBKDF2Iterations].
	PBKDF2Iterations int
}

// Registry maps an encryption scheme to its crypto core. It holds exactly one
// core per scheme for its lifetime, so the master key is derived or loaded
// once per process. Build it once and pass it explicitly.
type Registry struct {
	password *AesGcmCore
}

// NewRegistry builds the cores of all implemented schemes.
func NewRegistry(platform crypto.Primitives, localStorage store.LocalStorage, opts Options, logger *logger.Logger) *Registry {
	return &Registry{
		password: NewAesGcmCore(platform, localStorage, opts.PBKDF2Iterations, logger),
	}
}

// Get returns the core of scheme.
//
// NONE has no core and yields [ErrSchemeNotEncrypted]; CERTIFICATE yields
// [ErrNotImplemented].
func (r *Registry) Get(scheme models.EncryptionScheme) (CryptoCore, error) {
	switch scheme {
	case models.EncryptionPassword:
		return r.password, nil
	case models.EncryptionNone, "":
		return nil, ErrSchemeNotEncrypted
	case models.EncryptionCertificate:
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, scheme)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, string(scheme))
	}
}

// Password returns the PASSWORD scheme core.
func (r *Registry) Password() CryptoCore {
	return r.password
}
