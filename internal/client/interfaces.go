// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit or until ctx
	// is cancelled.
	Run(ctx context.Context) error
}

// UI is the interactive part of the client. [tui.TUI] implements it.
type UI interface {
	// Unlock prompts for the password until the crypto session is Ready.
	Unlock(ctx context.Context) error

	// ShowNote displays a decrypted note and returns it as last shown.
	ShowNote(ctx context.Context, note models.Note, watch time.Duration) (models.Note, error)
}
