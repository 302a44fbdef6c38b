package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/cryptocore"
	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientPasswordService bootstraps the PASSWORD scheme session: it turns the
// user's password, or a master key persisted by an earlier run, into a Ready
// crypto core.
type ClientPasswordService interface {
	// LoadPassword derives the master key from plainPassword and the salt
	// settings issued by the server, verifies it against a stored key and
	// persists it wrapped under the server KEK.
	// It reports true when the core is Ready afterwards, including the case
	// where it already was. Every failure is logged and reported as false.
	LoadPassword(ctx context.Context, plainPassword string) bool

	// LoadPasswordMasterKey restores the master key persisted by an earlier
	// run, fetching only the KEK from the server. It reports true when the
	// core is Ready afterwards; a missing or undecryptable blob yields false.
	LoadPasswordMasterKey(ctx context.Context) bool

	// ForgetMasterKey removes the wrapped master key from local storage.
	// The in-memory key of the running process is not affected.
	ForgetMasterKey(ctx context.Context) error

	// RestoreToken reads the bearer token persisted under DEV_TOKEN and
	// hands it to the server adapter.
	// Returns ErrNoStoredToken when nothing is stored and ErrTokenIsExpired
	// when the token's exp claim has passed.
	RestoreToken(ctx context.Context) error
}

// ClientNoteService opens and edits notes, applying the note's encryption
// scheme transparently. Notes returned by it always carry plaintext contents.
type ClientNoteService interface {
	// Get fetches the note from the server and decrypts its contents.
	Get(ctx context.Context, noteID string) (models.Note, error)

	// Decrypt returns note with plaintext contents. A NONE note is returned
	// as is. On failure the returned note is empty: ciphertext is never
	// handed out as plaintext.
	Decrypt(ctx context.Context, note models.Note) (models.Note, error)

	// SetContents encrypts contents under the note's scheme, pushes them to
	// the server and returns note with the new plaintext contents.
	SetContents(ctx context.Context, note models.Note, contents models.NoteContents) (models.Note, error)

	// SetEncryption switches the note to scheme, re-encrypting or decrypting
	// both contents. Switching to the current scheme is a no-op. The updated
	// note is returned only after the server accepted the change.
	SetEncryption(ctx context.Context, note models.Note, scheme models.EncryptionScheme) (models.Note, error)

	// ApplyFeedUpdate merges a push-channel message into note. Events other
	// than FEED and messages for another note leave note unchanged. When the
	// message names a scheme other than the note's, nothing is merged and
	// the note is re-read from the server and decrypted instead.
	ApplyFeedUpdate(ctx context.Context, note models.Note, update models.NoteUpdate) (models.Note, error)
}

// NoteFeedJob applies push-channel updates to an open note in the
// background.
type NoteFeedJob interface {
	// Start consumes updates until ctx is cancelled, Stop is called or the
	// channel is closed. Every applied update is reported to onUpdate with
	// the merged note or the error that prevented the merge. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, note models.Note, updates <-chan models.NoteUpdate, onUpdate func(models.Note, error))

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Current returns the note with all updates applied so far.
	Current() models.Note

	// Replace swaps the note later updates are merged into, e.g. after its
	// encryption scheme was switched locally. A merge in flight when Replace
	// is called is dropped and not reported.
	Replace(note models.Note)
}

// NotePoller turns periodic server reads of a note into FEED updates.
type NotePoller interface {
	// Poll fetches noteID every interval and sends a FEED update whenever
	// its stored contents or encryption scheme change. Interval defaults to 5
	// seconds when zero or negative. The returned channel is closed when ctx
	// is done.
	Poll(ctx context.Context, noteID string, interval time.Duration) <-chan models.NoteUpdate
}

// CoreResolver looks up the crypto core of an encryption scheme.
// [cryptocore.Registry] implements it.
type CoreResolver interface {
	Get(scheme models.EncryptionScheme) (cryptocore.CryptoCore, error)
}
