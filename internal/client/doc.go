// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the note client application runtime.
//
// It restores the stored session, unlocks the password crypto core either
// from the persisted master key or through the terminal UI, and then opens
// the configured note.
package client
