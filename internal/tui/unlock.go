// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-keeper/internal/service"
)

// UnlockModel is the Bubble Tea model of the password prompt. Enter submits
// the password to [service.ClientPasswordService.LoadPassword]; a failed
// attempt clears the input and prompts again.
type UnlockModel struct {
	ctx       context.Context
	passwords service.ClientPasswordService

	input      textinput.Model
	submitting bool
	attempts   int
	errMsg     string
	unlocked   bool
}

// NewUnlockModel creates an [UnlockModel] with a focused, masked input.
func NewUnlockModel(ctx context.Context, passwords service.ClientPasswordService) *UnlockModel {
	passwordInput := textinput.New()
	passwordInput.Placeholder = "пароль"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.Focus()

	return &UnlockModel{
		ctx:       ctx,
		passwords: passwords,
		input:     passwordInput,
	}
}

// Init implements [tea.Model].
func (m *UnlockModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(unlockResultMsg); ok {
		m.submitting = false
		if result.ok {
			m.unlocked = true
			m.errMsg = ""
			return m, tea.Quit
		}
		m.attempts++
		m.errMsg = "Неверный пароль или сервер недоступен (попытка " + strconv.Itoa(m.attempts) + ")"
		m.input.Reset()
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			password := m.input.Value()
			if strings.TrimSpace(password) == "" {
				m.errMsg = "Пароль обязателен"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdUnlock(password)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *UnlockModel) View() string {
	var b strings.Builder
	b.WriteString("Пароль │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Разблокировка...]\n")
	} else {
		b.WriteString("\n[Разблокировать]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("РАЗБЛОКИРОВКА ЗАМЕТОК", strings.TrimRight(b.String(), "\n"), "esc: выход │ enter: подтвердить")
}

// Unlocked reports whether a password attempt succeeded.
func (m *UnlockModel) Unlocked() bool {
	return m.unlocked
}

func (m *UnlockModel) cmdUnlock(password string) tea.Cmd {
	ctx := m.ctx
	passwords := m.passwords

	return func() tea.Msg {
		return unlockResultMsg{ok: passwords.LoadPassword(ctx, password)}
	}
}
