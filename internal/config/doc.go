// Package config loads the note client configuration.
//
// Environment variables, command-line flags and an optional JSON file
// (CONFIG / -c) are each parsed into a [StructuredConfig] and merged with
// mergo, so a non-zero value from a later source wins. [GetClientConfig]
// projects the merged result into a validated [ClientConfig] with the
// storage key, request timeout and DSN defaults filled in.
package config
