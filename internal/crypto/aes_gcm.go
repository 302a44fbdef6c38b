// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// newGCM builds an AES-GCM AEAD for the given nonce length. IVs other than
// 12 bytes are accepted so blobs produced by other clients still open.
func newGCM(material []byte, ivLen int) (cipher.AEAD, error) {
	if ivLen <= 0 {
		return nil, ErrInvalidIV
	}

	block, err := aes.NewCipher(material)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyLength, err)
	}

	if ivLen == DefaultIVBytes {
		return cipher.NewGCM(block)
	}
	return cipher.NewGCMWithNonceSize(block, ivLen)
}

// Encrypt implements [Primitives].
func (p *platform) Encrypt(key *Key, plaintext, associatedData, iv []byte) (EncryptedBlob, error) {
	if err := p.ensureAvailable(); err != nil {
		return EncryptedBlob{}, err
	}
	if err := key.require(UsageEncrypt); err != nil {
		return EncryptedBlob{}, fmt.Errorf("encrypt: %w", err)
	}
	return p.seal(key.material, plaintext, associatedData, iv)
}

// Decrypt implements [Primitives].
func (p *platform) Decrypt(blob EncryptedBlob, key *Key) ([]byte, error) {
	if err := p.ensureAvailable(); err != nil {
		return nil, err
	}
	if err := key.require(UsageDecrypt); err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	return open(key.material, blob)
}

// WrapKey implements [Primitives].
func (p *platform) WrapKey(keyToExport, wrappingKey *Key, iv, associatedData []byte) (EncryptedBlob, error) {
	if err := p.ensureAvailable(); err != nil {
		return EncryptedBlob{}, err
	}
	if keyToExport == nil || !keyToExport.extractable {
		return EncryptedBlob{}, fmt.Errorf("wrap key: %w", ErrKeyNotExtractable)
	}
	if err := wrappingKey.require(UsageWrapKey); err != nil {
		return EncryptedBlob{}, fmt.Errorf("wrap key: %w", err)
	}
	return p.seal(wrappingKey.material, keyToExport.material, associatedData, iv)
}

// UnwrapKey implements [Primitives].
func (p *platform) UnwrapKey(blob EncryptedBlob, wrappingKey *Key, exportable bool, usages KeyUsage) (*Key, error) {
	if err := p.ensureAvailable(); err != nil {
		return nil, err
	}
	if err := wrappingKey.require(UsageUnwrapKey); err != nil {
		return nil, fmt.Errorf("unwrap key: %w", err)
	}

	material, err := open(wrappingKey.material, blob)
	if err != nil {
		return nil, fmt.Errorf("unwrap key: %w", err)
	}
	if err = validKeyLength(len(material)); err != nil {
		zero(material)
		return nil, fmt.Errorf("unwrap key: %w", err)
	}

	return newKey(material, usages, exportable), nil
}

func (p *platform) seal(material, plaintext, associatedData, iv []byte) (EncryptedBlob, error) {
	if len(iv) == 0 {
		fresh, err := p.readRandom(DefaultIVBytes)
		if err != nil {
			return EncryptedBlob{}, fmt.Errorf("encrypt: %w", err)
		}
		iv = fresh
	}

	gcm, err := newGCM(material, len(iv))
	if err != nil {
		return EncryptedBlob{}, fmt.Errorf("encrypt: %w", err)
	}

	return EncryptedBlob{
		Ciphertext:     gcm.Seal(nil, iv, plaintext, associatedData),
		IV:             iv,
		AdditionalData: associatedData,
	}, nil
}

func open(material []byte, blob EncryptedBlob) ([]byte, error) {
	gcm, err := newGCM(material, len(blob.IV))
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}

	plaintext, err := gcm.Open(nil, blob.IV, blob.Ciphertext, blob.AdditionalData)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}
