package tui

import (
	"github.com/MKhiriev/go-note-keeper/models"
)

// unlockResultMsg carries the outcome of a password attempt.
type unlockResultMsg struct {
	ok bool
}

// noteUpdatedMsg is sent by the feed job whenever the open note changed on
// the server.
type noteUpdatedMsg struct {
	note models.Note
	err  error
}

type encryptionSwitchedMsg struct {
	note models.Note
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
