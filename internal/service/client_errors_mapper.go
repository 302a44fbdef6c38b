// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := serverMessage(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgInvalidDataProvided {
			return ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgTokenIsExpired:
			return ErrTokenIsExpired
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrForbidden):
		if msg == app.MsgChannelKeyMismatch {
			return ErrChannelKeyMismatch
		}
		return ErrNoteAccessDenied

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgLocalStorageKeyNotIssued {
			return ErrLocalStorageNotIssued
		}
		return ErrNoteNotFound

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgEncryptionConflict {
			return ErrEncryptionConflict
		}
	}

	return err
}

// serverMessage returns the message the server sent with a non-2xx status.
// Errors built without [adapter.StatusError] are read as "<sentinel>: <body>".
func serverMessage(err error) string {
	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Message
	}

	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
