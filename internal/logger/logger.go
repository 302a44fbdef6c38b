// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the note client.
//
// *Logger embeds zerolog.Logger, so the usual Debug/Info/Warn/Error chain is
// available directly. Every entry carries the component role, a timestamp
// and the calling function under "func". Key material, passwords and
// decrypted note contents must never be passed to a logger.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileEnv overrides the log file used by [NewClientLogger].
const LogFileEnv = "GO_NOTE_KEEPER_LOG_FILE"

type Logger struct {
	zerolog.Logger
}

var configureOnce sync.Once

// configure sets the process-wide zerolog knobs. zerolog keeps them in
// package globals, so they are applied once.
func configure() {
	configureOnce.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerFieldName = "func"
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			return runtime.FuncForPC(pc).Name()
		}
	})
}

func newLogger(w io.Writer, role string) *Logger {
	configure()
	return &Logger{
		zerolog.New(w).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// NewLogger writes JSON entries to os.Stdout.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger is [NewLogger] for the interactive client. The terminal
// belongs to the UI, so entries go to the file named by [LogFileEnv], or to
// "logs" next to the executable. os.Stderr is used when neither can be
// opened.
func NewClientLogger(role string) *Logger {
	var w io.Writer = os.Stderr
	if f, err := os.OpenFile(clientLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
		w = f
	}
	return newLogger(w, role)
}

func clientLogPath() string {
	if p := os.Getenv(LogFileEnv); p != "" {
		return p
	}
	execPath, err := os.Executable()
	if err != nil {
		return "logs"
	}
	return filepath.Join(filepath.Dir(execPath), "logs")
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can be enriched without touching the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// ForNote returns a child logger tagged with the note ID.
func (l *Logger) ForNote(noteID string) *Logger {
	return &Logger{l.With().Str("note_id", noteID).Logger()}
}

// WithContext attaches the receiver to ctx for [FromContext].
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger attached to ctx, or zerolog's default
// logger when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
