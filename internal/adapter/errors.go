package adapter

import "errors"

// Sentinel errors returned by [ServerAdapter] implementations. Non-2xx
// responses wrap one of these together with the response body.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrInvalidAddress is returned by the constructor for an unusable
	// server address.
	ErrInvalidAddress = errors.New("invalid server address")

	// ErrEmptyNoteID is returned before any request is sent.
	ErrEmptyNoteID = errors.New("empty note id")

	// ErrUnexpectedResponse marks a 2xx response whose body does not have
	// the expected shape.
	ErrUnexpectedResponse = errors.New("unexpected server response")
)
