// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/cryptocore"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

var ErrUserQuit = errors.New("вышел из программы")

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}

// humanizeNoteError turns note service errors into short messages.
func humanizeNoteError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, crypto.ErrAuthenticationFailed), errors.Is(err, crypto.ErrMalformedBlob):
		return "Не удалось расшифровать заметку"
	case errors.Is(err, cryptocore.ErrNotReady):
		return "Сессия заблокирована"
	case errors.Is(err, cryptocore.ErrNotImplemented):
		return "Схема шифрования не поддерживается"
	case errors.Is(err, service.ErrNoteNotFound):
		return "Заметка не найдена"
	case errors.Is(err, service.ErrNoteAccessDenied):
		return "Нет доступа к заметке"
	case errors.Is(err, service.ErrEncryptionConflict):
		return "Шифрование заметки изменено другим клиентом, обновите её"
	case errors.Is(err, service.ErrNoteSaltMissing):
		return "У заметки нет соли, шифрование невозможно"
	case errors.Is(err, service.ErrTokenIsExpired), errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Сессия истекла, войдите заново"
	}

	return humanizeServerUnavailableError(err)
}
