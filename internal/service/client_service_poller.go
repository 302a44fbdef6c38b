package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

const defaultPollInterval = 5 * time.Second

type notePoller struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewNotePoller returns a [NotePoller] reading notes through serverAdapter.
func NewNotePoller(serverAdapter adapter.ServerAdapter, logger *logger.Logger) NotePoller {
	return &notePoller{adapter: serverAdapter, logger: logger}
}

// Poll implements NotePoller. The first read only records the current
// contents and scheme. Read errors are logged and polling continues.
func (p *notePoller) Poll(ctx context.Context, noteID string, interval time.Duration) <-chan models.NoteUpdate {
	if interval <= 0 {
		interval = defaultPollInterval
	}

	out := make(chan models.NoteUpdate)

	go func() {
		defer close(out)
		t := time.NewTicker(interval)
		defer t.Stop()

		log := p.logger.ForNote(noteID).With().
			Str("func", "notePoller.Poll").
			Logger()

		var (
			last       models.NoteContents
			lastScheme models.EncryptionScheme
			seen       bool
		)

		for {
			note, err := p.adapter.GetNote(ctx, noteID)
			switch {
			case ctx.Err() != nil:
				return
			case err != nil:
				log.Warn().Err(mapAdapterError(err)).Msg("failed to poll note")
			default:
				contents := models.NoteContents{ContentText: note.ContentText, ContentHTML: note.ContentHTML}
				if seen && (contents != last || note.Encryption != lastScheme) {
					update := models.NoteUpdate{
						Event:       models.NoteUpdateFeed,
						NoteID:      note.ID,
						ContentHTML: note.ContentHTML,
						ContentText: note.ContentText,
						Encryption:  note.Encryption,
					}
					select {
					case out <- update:
					case <-ctx.Done():
						return
					}
				}
				last, lastScheme, seen = contents, note.Encryption, true
			}

			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
		}
	}()

	return out
}
