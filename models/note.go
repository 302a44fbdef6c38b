package models

import "time"

// Note is a user note as returned by the server. When Encryption is not
// NONE, ContentText and ContentHTML hold serialized encrypted blobs.
type Note struct {
	// ID is the server-assigned note identifier. It is also the HKDF context
	// of the note's sub-key, so it must never change for an existing note.
	ID string `json:"id"`

	UserID string `json:"userId,omitempty"`

	Name string `json:"name"`

	ContentText string `json:"contentText"`
	ContentHTML string `json:"contentHTML"`

	Encryption EncryptionScheme `json:"encryption"`

	// RandomNoteSalt is the Base64 HKDF salt generated for the note.
	RandomNoteSalt string `json:"randomNoteSalt"`

	Tags []string `json:"tags,omitempty"`

	// CreationTime and LastModifiedTime are Unix epoch milliseconds.
	CreationTime     int64 `json:"creationTime,omitempty"`
	LastModifiedTime int64 `json:"lastModifiedTime,omitempty"`
}

// Created returns CreationTime as a local time.
func (n Note) Created() time.Time {
	return time.UnixMilli(n.CreationTime)
}

// LastModified returns LastModifiedTime as a local time.
func (n Note) LastModified() time.Time {
	return time.UnixMilli(n.LastModifiedTime)
}

// IsEncrypted reports whether the note contents are ciphertext.
func (n Note) IsEncrypted() bool {
	return n.Encryption.IsEncrypted()
}

// NoteContents is the body of PUT /api/notes/{id}/content.
type NoteContents struct {
	ContentText string `json:"contentText"`
	ContentHTML string `json:"contentHTML"`
}

// NoteEncryptionBody is the body of PUT /api/notes/{id}/encryption. The
// contents are already in the representation of the target scheme.
type NoteEncryptionBody struct {
	Encryption  EncryptionScheme `json:"encryption"`
	ContentText string           `json:"contentText"`
	ContentHTML string           `json:"contentHTML"`
}

// NoteUpdateEvent names the kind of push-channel message.
type NoteUpdateEvent string

const (
	// NoteUpdateFeed carries fresh contents of a note edited elsewhere.
	NoteUpdateFeed NoteUpdateEvent = "FEED"

	// NoteUpdateJoin and NoteUpdateLeave announce collaborators and carry
	// no contents.
	NoteUpdateJoin  NoteUpdateEvent = "JOIN"
	NoteUpdateLeave NoteUpdateEvent = "LEAVE"
)

// NoteUpdate is a message received on the note push channel. Encryption is
// the scheme the contents are stored under; empty means the sender did not
// say and the scheme of the open note applies.
type NoteUpdate struct {
	Event       NoteUpdateEvent  `json:"event"`
	NoteID      string           `json:"noteId"`
	ContentHTML string           `json:"contentHTML"`
	ContentText string           `json:"contentText"`
	Encryption  EncryptionScheme `json:"encryption,omitempty"`
}
