package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

// StatusError is returned for every non-2xx response. It unwraps to the
// sentinel of its status code, if there is one, so callers can match it
// with errors.Is and still read the server message.
type StatusError struct {
	StatusCode int
	// Message is the server's explanation: the "error" field of a JSON body,
	// the trimmed plain-text body, or the status text for an empty body.
	Message string

	sentinel error
}

// NewStatusError builds the error for a response with the given status and
// body.
func NewStatusError(statusCode int, body []byte) *StatusError {
	return &StatusError{
		StatusCode: statusCode,
		Message:    responseMessage(statusCode, body),
		sentinel:   statusSentinels[statusCode],
	}
}

func (e *StatusError) Error() string {
	if e.sentinel != nil {
		return e.sentinel.Error() + ": " + e.Message
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error {
	return e.sentinel
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return NewStatusError(resp.StatusCode(), resp.Body())
}

func responseMessage(statusCode int, body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return http.StatusText(statusCode)
	}

	var payload struct {
		Error string `json:"error"`
	}
	if strings.HasPrefix(trimmed, "{") && json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		return payload.Error
	}

	return trimmed
}
