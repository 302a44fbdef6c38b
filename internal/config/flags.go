package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the client command line.
//
// Flags:
//
//	-a note server address (URL or host:port)
//	-request-timeout request timeout (e.g. "15s")
//	-d local storage SQLite file, or ":memory:"
//	-pbkdf2-iterations fallback PBKDF2 iteration count
//	-master-key-storage-key local storage key of the wrapped master key
//	-note note id to open after unlock
//	-clipboard copy the decrypted note to the clipboard
//	-watch refresh interval of the opened note (e.g. "5s")
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress       string
		requestTimeout      time.Duration
		databaseDSN         string
		pbkdf2Iterations    int
		masterKeyStorageKey string
		noteID              string
		copyToClipboard     bool
		watchInterval       time.Duration
		jsonConfigPath      string
	)

	fs := flag.NewFlagSet("go-note-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&serverAddress, "a", "", "Note server address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Local storage SQLite file")
	fs.IntVar(&pbkdf2Iterations, "pbkdf2-iterations", 0, "Fallback PBKDF2 iteration count")
	fs.StringVar(&masterKeyStorageKey, "master-key-storage-key", "", "Local storage key of the wrapped master key")
	fs.StringVar(&noteID, "note", "", "Note to open after unlock")
	fs.BoolVar(&copyToClipboard, "clipboard", false, "Copy the decrypted note to the clipboard")
	fs.DurationVar(&watchInterval, "watch", 0, "Refresh interval of the opened note (e.g., 5s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			NoteID:          noteID,
			CopyToClipboard: copyToClipboard,
			WatchInterval:   watchInterval,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Crypto: Crypto{
			PBKDF2Iterations:    pbkdf2Iterations,
			MasterKeyStorageKey: masterKeyStorageKey,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
