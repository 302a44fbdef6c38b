package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrNoStoredToken           = errors.New("no stored token")

	ErrNoteNotFound          = errors.New("note not found")
	ErrNoteAccessDenied      = errors.New("access to note denied")
	ErrChannelKeyMismatch    = errors.New("channel key mismatch")
	ErrEncryptionConflict    = errors.New("note encryption changed concurrently")
	ErrLocalStorageNotIssued = errors.New("local storage key is not issued yet")

	// ErrNoteSaltMissing is returned when a note is switched to an encrypted
	// scheme before the server assigned it a random salt.
	ErrNoteSaltMissing = errors.New("note has no random salt")
)
