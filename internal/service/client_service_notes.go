package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/cryptocore"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

type clientNoteService struct {
	cores   CoreResolver
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientNoteService(cores CoreResolver, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientNoteService {
	return &clientNoteService{cores: cores, adapter: serverAdapter, logger: logger}
}

func (n *clientNoteService) Get(ctx context.Context, noteID string) (models.Note, error) {
	note, err := n.adapter.GetNote(ctx, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("get note %s: %w", noteID, mapAdapterError(err))
	}
	return n.Decrypt(ctx, note)
}

func (n *clientNoteService) Decrypt(ctx context.Context, note models.Note) (models.Note, error) {
	if !note.IsEncrypted() {
		return note, nil
	}

	contents, err := n.decryptContents(note, models.NoteContents{
		ContentText: note.ContentText,
		ContentHTML: note.ContentHTML,
	})
	if err != nil {
		return models.Note{}, err
	}

	note.ContentText = contents.ContentText
	note.ContentHTML = contents.ContentHTML
	return note, nil
}

func (n *clientNoteService) SetContents(ctx context.Context, note models.Note, contents models.NoteContents) (models.Note, error) {
	body := contents
	if note.IsEncrypted() {
		encrypted, err := n.encryptContents(note.Encryption, note, contents)
		if err != nil {
			return note, err
		}
		body = encrypted
	}

	if err := n.adapter.SetNoteContent(ctx, note.ID, body); err != nil {
		return note, fmt.Errorf("push contents of note %s: %w", note.ID, mapAdapterError(err))
	}

	note.ContentText = contents.ContentText
	note.ContentHTML = contents.ContentHTML
	return note, nil
}

func (n *clientNoteService) SetEncryption(ctx context.Context, note models.Note, scheme models.EncryptionScheme) (models.Note, error) {
	scheme = normalizeScheme(scheme)
	current := normalizeScheme(note.Encryption)
	if scheme == current {
		return note, nil
	}

	plain := models.NoteContents{ContentText: note.ContentText, ContentHTML: note.ContentHTML}
	body := models.NoteEncryptionBody{
		Encryption:  scheme,
		ContentText: plain.ContentText,
		ContentHTML: plain.ContentHTML,
	}

	if scheme.IsEncrypted() {
		if note.RandomNoteSalt == "" {
			return note, ErrNoteSaltMissing
		}
		encrypted, err := n.encryptContents(scheme, note, plain)
		if err != nil {
			return note, err
		}
		body.ContentText = encrypted.ContentText
		body.ContentHTML = encrypted.ContentHTML
	}

	if err := n.adapter.SetNoteEncryptionMethod(ctx, note.ID, body); err != nil {
		return note, fmt.Errorf("switch encryption of note %s: %w", note.ID, mapAdapterError(err))
	}

	n.logger.ForNote(note.ID).Info().
		Str("func", "clientNoteService.SetEncryption").
		Str("from", string(current)).
		Str("to", string(scheme)).
		Msg("note encryption switched")

	note.Encryption = scheme
	return note, nil
}

func (n *clientNoteService) ApplyFeedUpdate(ctx context.Context, note models.Note, update models.NoteUpdate) (models.Note, error) {
	if update.Event != models.NoteUpdateFeed || update.NoteID != note.ID {
		return note, nil
	}

	// Contents stored under another scheme are never merged: the note is
	// re-read so that its salt and scheme come from the server too.
	if update.Encryption != "" && normalizeScheme(update.Encryption) != normalizeScheme(note.Encryption) {
		n.logger.ForNote(note.ID).Info().
			Str("func", "clientNoteService.ApplyFeedUpdate").
			Str("from", string(note.Encryption)).
			Str("to", string(update.Encryption)).
			Msg("note encryption changed remotely, reopening")

		reopened, err := n.Get(ctx, note.ID)
		if err != nil {
			return note, err
		}
		return reopened, nil
	}

	incoming := models.NoteContents{ContentText: update.ContentText, ContentHTML: update.ContentHTML}
	if note.IsEncrypted() {
		decrypted, err := n.decryptContents(note, incoming)
		if err != nil {
			return note, err
		}
		incoming = decrypted
	}

	note.ContentHTML = incoming.ContentHTML
	if incoming.ContentText != "" {
		note.ContentText = incoming.ContentText
	}
	return note, nil
}

// encryptContents encrypts both contents with the sub-key of note under
// scheme.
func (n *clientNoteService) encryptContents(scheme models.EncryptionScheme, note models.Note, plain models.NoteContents) (models.NoteContents, error) {
	core, key, err := n.noteKey(scheme, note)
	if err != nil {
		return models.NoteContents{}, err
	}
	defer key.Destroy()

	var out models.NoteContents
	if out.ContentText, err = encryptField(core, key, plain.ContentText); err != nil {
		return models.NoteContents{}, fmt.Errorf("encrypt text of note %s: %w", note.ID, err)
	}
	if out.ContentHTML, err = encryptField(core, key, plain.ContentHTML); err != nil {
		return models.NoteContents{}, fmt.Errorf("encrypt html of note %s: %w", note.ID, err)
	}
	return out, nil
}

func (n *clientNoteService) decryptContents(note models.Note, encrypted models.NoteContents) (models.NoteContents, error) {
	core, key, err := n.noteKey(note.Encryption, note)
	if err != nil {
		return models.NoteContents{}, err
	}
	defer key.Destroy()

	var out models.NoteContents
	if out.ContentText, err = decryptField(core, key, encrypted.ContentText); err != nil {
		return models.NoteContents{}, fmt.Errorf("decrypt text of note %s: %w", note.ID, err)
	}
	if out.ContentHTML, err = decryptField(core, key, encrypted.ContentHTML); err != nil {
		return models.NoteContents{}, fmt.Errorf("decrypt html of note %s: %w", note.ID, err)
	}
	return out, nil
}

// noteKey derives the sub-key of note: HKDF over the note's random salt with
// the note ID as context.
func (n *clientNoteService) noteKey(scheme models.EncryptionScheme, note models.Note) (cryptocore.CryptoCore, *crypto.Key, error) {
	core, err := n.cores.Get(scheme)
	if err != nil {
		return nil, nil, err
	}

	key, err := core.CreateSubKey(note.RandomNoteSalt, note.ID, cryptocore.ContextTypeText)
	if err != nil {
		return nil, nil, fmt.Errorf("derive key of note %s: %w", note.ID, err)
	}
	return core, key, nil
}

// encryptField encrypts plain, including the empty string, so the server
// cannot tell empty fields apart.
func encryptField(core cryptocore.CryptoCore, key *crypto.Key, plain string) (string, error) {
	return core.EncryptText(key, plain)
}

// decryptField accepts an empty field for notes written before empty
// contents were encrypted and for feed messages that omit the text.
func decryptField(core cryptocore.CryptoCore, key *crypto.Key, blob string) (string, error) {
	if blob == "" {
		return "", nil
	}
	return core.DecryptText(key, blob)
}

func normalizeScheme(scheme models.EncryptionScheme) models.EncryptionScheme {
	if scheme == "" {
		return models.EncryptionNone
	}
	return scheme
}
