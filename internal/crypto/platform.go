// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

const (
	// DefaultIVBytes is the AES-GCM nonce length used for fresh encryptions.
	DefaultIVBytes = 12

	// SaltBytes is the length of salts returned by PBKDF2Salt.
	SaltBytes = 32

	// TagBits is the AES-GCM authentication tag length.
	TagBits = 128
)

// platform is the default [Primitives] implementation backed by the Go
// standard library ciphers and an injectable entropy source.
type platform struct {
	random io.Reader
}

// NewPlatform returns [Primitives] reading entropy from crypto/rand.
func NewPlatform() Primitives {
	return &platform{random: rand.Reader}
}

// NewPlatformWithRandom returns [Primitives] reading entropy from r. A nil
// reader produces a platform that reports itself unavailable.
func NewPlatformWithRandom(r io.Reader) Primitives {
	return &platform{random: r}
}

// IsAvailable implements [Primitives]. It probes the entropy source with a
// one-byte read and constructs a throwaway AES-GCM instance.
func (p *platform) IsAvailable() bool {
	if p == nil || p.random == nil {
		return false
	}

	probe := make([]byte, 1)
	if _, err := io.ReadFull(p.random, probe); err != nil {
		return false
	}

	block, err := aes.NewCipher(make([]byte, BlockSize256.Bytes()))
	if err != nil {
		return false
	}
	if _, err = cipher.NewGCM(block); err != nil {
		return false
	}

	return true
}

func (p *platform) ensureAvailable() error {
	if !p.IsAvailable() {
		return ErrCryptoUnsupported
	}
	return nil
}

// SecureRandomBytes implements [Primitives].
func (p *platform) SecureRandomBytes(n int) ([]byte, error) {
	if err := p.ensureAvailable(); err != nil {
		return nil, err
	}
	return p.readRandom(n)
}

func (p *platform) readRandom(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("random bytes: negative length %d", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(p.random, buf); err != nil {
		return nil, fmt.Errorf("random bytes: %w", err)
	}
	return buf, nil
}

// PBKDF2Salt implements [Primitives].
func (p *platform) PBKDF2Salt() ([]byte, error) {
	return p.SecureRandomBytes(SaltBytes)
}

// ImportKey implements [Primitives]. The material is copied so the caller
// may zero its buffer.
func (p *platform) ImportKey(raw []byte, exportable bool, usages KeyUsage) (*Key, error) {
	if err := p.ensureAvailable(); err != nil {
		return nil, err
	}
	if err := validKeyLength(len(raw)); err != nil {
		return nil, fmt.Errorf("import key: %w", err)
	}

	material := make([]byte, len(raw))
	copy(material, raw)
	return newKey(material, usages, exportable), nil
}

// ImportKeyB64 implements [Primitives].
func (p *platform) ImportKeyB64(rawB64 string, exportable bool, usages KeyUsage) (*Key, error) {
	raw, err := base64.StdEncoding.DecodeString(rawB64)
	if err != nil {
		return nil, fmt.Errorf("import key: decode base64: %w", err)
	}
	defer zero(raw)

	return p.ImportKey(raw, exportable, usages)
}
