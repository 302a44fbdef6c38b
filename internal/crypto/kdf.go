// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultPBKDF2Iterations is the work factor applied when neither the
	// server nor the configuration provides one.
	DefaultPBKDF2Iterations = 310_000

	// LegacyPBKDF2Iterations is the work factor of accounts created by early
	// clients. Servers still hand it out for those accounts.
	LegacyPBKDF2Iterations = 1000
)

// PBKDF2Params tunes [Primitives.DeriveKeyFromPassword]. Zero fields take
// the defaults.
type PBKDF2Params struct {
	BlockSize  BlockSize
	Hash       Hash
	Iterations int
}

func (p PBKDF2Params) withDefaults() PBKDF2Params {
	if p.BlockSize == 0 {
		p.BlockSize = BlockSize256
	}
	if p.Hash == "" {
		p.Hash = HashSHA512
	}
	if p.Iterations == 0 {
		p.Iterations = DefaultPBKDF2Iterations
	}
	return p
}

// HKDFParams tunes [Primitives.DeriveSubKey]. Zero fields take the defaults
// (SHA-512, 256 bits).
type HKDFParams struct {
	Hash      Hash
	BlockSize BlockSize
}

func (p HKDFParams) withDefaults() HKDFParams {
	if p.Hash == "" {
		p.Hash = HashSHA512
	}
	if p.BlockSize == 0 {
		p.BlockSize = BlockSize256
	}
	return p
}

// DeriveKeyFromPassword implements [Primitives].
func (p *platform) DeriveKeyFromPassword(password string, salt []byte, exportable bool, usages KeyUsage, params PBKDF2Params) (*Key, error) {
	if err := p.ensureAvailable(); err != nil {
		return nil, err
	}

	params = params.withDefaults()
	if err := params.BlockSize.Validate(); err != nil {
		return nil, fmt.Errorf("derive key from password: %w", err)
	}
	if params.Iterations < 0 {
		return nil, fmt.Errorf("derive key from password: %w", ErrInvalidIterations)
	}
	hashFn, err := params.Hash.New()
	if err != nil {
		return nil, fmt.Errorf("derive key from password: %w", err)
	}

	material := pbkdf2.Key([]byte(password), salt, params.Iterations, params.BlockSize.Bytes(), hashFn)
	return newKey(material, usages, exportable), nil
}

// DeriveSubKey implements [Primitives].
func (p *platform) DeriveSubKey(master *Key, salt, info []byte, exportable bool, usages KeyUsage, params HKDFParams) (*Key, error) {
	if err := p.ensureAvailable(); err != nil {
		return nil, err
	}
	if err := master.require(UsageDeriveKey); err != nil {
		return nil, fmt.Errorf("derive sub key: %w", err)
	}

	params = params.withDefaults()
	if err := params.BlockSize.Validate(); err != nil {
		return nil, fmt.Errorf("derive sub key: %w", err)
	}
	hashFn, err := params.Hash.New()
	if err != nil {
		return nil, fmt.Errorf("derive sub key: %w", err)
	}

	material := make([]byte, params.BlockSize.Bytes())
	if _, err = io.ReadFull(hkdf.New(hashFn, master.material, salt, info), material); err != nil {
		return nil, fmt.Errorf("derive sub key: %w", err)
	}

	return newKey(material, usages, exportable), nil
}
