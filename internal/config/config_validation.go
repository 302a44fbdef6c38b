// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks the merged [StructuredConfig] for values that are wrong
// regardless of which view is built from it.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Crypto.PBKDF2Iterations < 0 {
		return ErrInvalidCryptoConfigs
	}
	if cfg.App.WatchInterval < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if _, err := url.Parse(cfg.Adapter.HTTPAddress); err != nil {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Crypto.PBKDF2Iterations < 0 || strings.TrimSpace(cfg.Crypto.MasterKeyStorageKey) == "" {
		return ErrInvalidCryptoConfigs
	}

	return nil
}
