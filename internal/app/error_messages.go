// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-note-keeper client.
//
// All Msg* constants are the message strings the note server writes into
// error response bodies. The service layer matches on them to turn a
// transport error into a business error.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgTokenIsExpired is returned when the bearer token is well formed
	// but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when the bearer token is either
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when the authenticated user reads or
	// modifies a note shared without the required permission.
	MsgAccessDenied = "access denied"

	// MsgChannelKeyMismatch is returned when a note write carries an
	// X-Channel-Key that does not belong to the note's live channel.
	MsgChannelKeyMismatch = "channel key mismatch"

	// MsgNoteNotFound is returned when the note does not exist or is not
	// visible to the current user.
	MsgNoteNotFound = "note not found"

	// MsgLocalStorageKeyNotIssued is returned by the local-storage endpoints
	// before the server has generated a KEK or salt for the user.
	MsgLocalStorageKeyNotIssued = "local storage key not issued"

	// MsgEncryptionConflict is returned when the note's encryption scheme was
	// switched concurrently by another client.
	MsgEncryptionConflict = "encryption scheme changed, please reload"
)
