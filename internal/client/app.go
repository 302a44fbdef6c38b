package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

type App struct {
	services *service.ClientServices
	ui       UI
	cfg      config.ClientApp
	logger   *logger.Logger

	out    io.Writer
	copyFn func(string) error
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientApp, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}

	return &App{
		services: services,
		ui:       ui,
		cfg:      cfg,
		logger:   logger,
		out:      os.Stdout,
		copyFn:   clipboard.WriteAll,
	}, nil
}

// Run restores the session, unlocks the PASSWORD crypto core and, when a
// note ID is configured, opens that note.
func (a *App) Run(ctx context.Context) error {
	if err := a.services.PasswordService.RestoreToken(ctx); err != nil {
		if errors.Is(err, service.ErrNoStoredToken) {
			a.logger.Info().Msg("no stored token, requests will be unauthenticated")
		} else {
			a.logger.Warn().Err(err).Msg("failed to restore token")
		}
	}

	if a.services.PasswordService.LoadPasswordMasterKey(ctx) {
		a.logger.Info().Msg("master key restored from local storage")
	} else if err := a.ui.Unlock(ctx); err != nil {
		return err
	}

	if a.cfg.NoteID == "" {
		fmt.Fprintln(a.out, "Сессия разблокирована")
		return nil
	}

	note, err := a.services.NoteService.Get(ctx, a.cfg.NoteID)
	if err != nil {
		return fmt.Errorf("open note %s: %w", a.cfg.NoteID, err)
	}

	if a.cfg.WatchInterval > 0 {
		if _, err = a.ui.ShowNote(ctx, note, a.cfg.WatchInterval); err != nil {
			return fmt.Errorf("show note: %w", err)
		}
		return nil
	}

	fmt.Fprintln(a.out, note.ContentText)
	if a.cfg.CopyToClipboard {
		if err = a.copyFn(note.ContentText); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		a.logger.Debug().Str("note_id", note.ID).Msg("note text copied to clipboard")
	}

	return nil
}
