package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
)

const statusTimeout = 2 * time.Second

// NoteModel shows an opened note. It re-renders on feed updates, copies the
// text on "c" and toggles password encryption on "e".
type NoteModel struct {
	ctx   context.Context
	notes service.ClientNoteService

	note      models.Note
	watching  bool
	switching bool
	status    string
	errMsg    string

	copyFn func(string) error

	// onSwitched is told about the note after a successful scheme switch.
	onSwitched func(models.Note)
}

// NewNoteModel creates a [NoteModel] for note, which must already be
// decrypted.
func NewNoteModel(ctx context.Context, notes service.ClientNoteService, note models.Note, watching bool) *NoteModel {
	return &NoteModel{
		ctx:      ctx,
		notes:    notes,
		note:     note,
		watching: watching,
		copyFn:   clipboard.WriteAll,
	}
}

// Init implements [tea.Model].
func (m *NoteModel) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model].
func (m *NoteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noteUpdatedMsg:
		// merged under the scheme being replaced
		if m.switching {
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = humanizeNoteError(msg.err)
			return m, nil
		}
		m.note = msg.note
		m.errMsg = ""
		m.status = "Заметка обновлена"
		return m, clearStatusAfter(statusTimeout)

	case encryptionSwitchedMsg:
		m.switching = false
		if msg.err != nil {
			m.errMsg = humanizeNoteError(msg.err)
			return m, nil
		}
		m.note = msg.note
		m.errMsg = ""
		m.status = "Шифрование: " + schemeLabel(m.note.IsEncrypted())
		if m.onSwitched != nil {
			m.onSwitched(m.note)
		}
		return m, clearStatusAfter(statusTimeout)

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", msg.err)
			return m, nil
		}
		m.status = "Скопировано"
		return m, clearStatusAfter(statusTimeout)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit), key.Matches(msg, keys.esc):
			return m, tea.Quit
		case key.Matches(msg, keys.copy):
			if m.note.ContentText == "" {
				m.status = "Нечего копировать"
				return m, nil
			}
			return m, m.cmdCopy(m.note.ContentText)
		case key.Matches(msg, keys.encrypt):
			if m.switching {
				return m, nil
			}
			m.switching = true
			return m, m.cmdToggleEncryption()
		}
	}

	return m, nil
}

// View implements [tea.Model].
func (m *NoteModel) View() string {
	var b strings.Builder
	b.WriteString("Название   │ ")
	b.WriteString(valueOrDash(fitText(m.note.Name, 48)))
	b.WriteString("\n")
	b.WriteString("Шифрование │ ")
	b.WriteString(schemeLabel(m.note.IsEncrypted()))
	b.WriteString("\n")
	if m.note.LastModifiedTime > 0 {
		b.WriteString("Изменена   │ ")
		b.WriteString(m.note.LastModified().Format("02.01.2006 15:04"))
		b.WriteString("\n")
	}
	if m.watching {
		b.WriteString("Обновления │ включены\n")
	}
	b.WriteString("\n")
	b.WriteString(valueOrDash(m.note.ContentText))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ЗАМЕТКА", strings.TrimRight(b.String(), "\n"), "c: копировать │ e: шифрование │ q: выход")
}

// Note returns the note as currently shown.
func (m *NoteModel) Note() models.Note {
	return m.note
}

func (m *NoteModel) cmdCopy(text string) tea.Cmd {
	copyFn := m.copyFn
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func (m *NoteModel) cmdToggleEncryption() tea.Cmd {
	ctx := m.ctx
	notes := m.notes
	note := m.note

	target := models.EncryptionPassword
	if note.IsEncrypted() {
		target = models.EncryptionNone
	}

	return func() tea.Msg {
		updated, err := notes.SetEncryption(ctx, note, target)
		return encryptionSwitchedMsg{note: updated, err: err}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
