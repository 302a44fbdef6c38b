package cryptocore

import "errors"

var (
	// ErrNotReady is returned by key-dependent operations before a master
	// key is loaded.
	ErrNotReady = errors.New("crypto core is not ready: master key not loaded")

	// ErrAlreadyReady is returned by CreateAndStoreMasterKey on a session
	// that already holds a master key. Use RotateMasterKey to replace it.
	ErrAlreadyReady = errors.New("crypto core is already ready")

	// ErrMasterKeyMismatch means the password derived a key different from
	// the one already stored on this device. Usually a wrong password.
	ErrMasterKeyMismatch = errors.New("derived master key does not match the stored one")

	ErrInvalidSettings    = errors.New("invalid encryption settings")
	ErrInvalidContextType = errors.New("invalid sub-key context type")

	ErrNotImplemented     = errors.New("encryption scheme is not implemented")
	ErrSchemeNotEncrypted = errors.New("encryption scheme does not use a crypto core")
	ErrUnknownScheme      = errors.New("unknown encryption scheme")
)
