package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Unlock prompts for the password until the session is unlocked. It returns
// ErrUserQuit when the user leaves the prompt.
func (t *TUI) Unlock(ctx context.Context) error {
	page := NewUnlockModel(ctx, t.services.PasswordService)

	finalModel, runErr := tea.NewProgram(NewRootModel(page, t.buildInfo), tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser || !page.Unlocked() {
		return ErrUserQuit
	}
	return nil
}

// ShowNote displays note until the user quits. With a positive watch
// interval the note is refreshed from the server while it is shown.
func (t *TUI) ShowNote(ctx context.Context, note models.Note, watch time.Duration) (models.Note, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	page := NewNoteModel(ctx, t.services.NoteService, note, watch > 0)
	program := tea.NewProgram(NewRootModel(page, t.buildInfo), tea.WithAltScreen())

	if watch > 0 {
		updates := t.services.Poller.Poll(ctx, note.ID, watch)
		t.services.FeedJob.Start(ctx, note, updates, func(updated models.Note, err error) {
			if err != nil {
				t.logger.ForNote(note.ID).Warn().Err(err).Msg("failed to apply note update")
			}
			program.Send(noteUpdatedMsg{note: updated, err: err})
		})
		defer t.services.FeedJob.Stop()
		page.onSwitched = t.services.FeedJob.Replace
	}

	if _, err := program.Run(); err != nil {
		return note, err
	}
	return page.Note(), nil
}
