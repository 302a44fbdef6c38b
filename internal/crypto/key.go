// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"
	"hash"
	"runtime"
	"strings"
)

// KeyUsage is a bitmask of operations a [Key] may take part in.
type KeyUsage uint8

const (
	UsageEncrypt KeyUsage = 1 << iota
	UsageDecrypt
	UsageWrapKey
	UsageUnwrapKey
	UsageDeriveKey
	UsageDeriveBits
)

// Common usage sets.
const (
	UsagesEncryptDecrypt = UsageEncrypt | UsageDecrypt
	UsagesWrapUnwrap     = UsageWrapKey | UsageUnwrapKey
	UsagesDerive         = UsageDeriveKey | UsageDeriveBits
)

// Has reports whether every bit of want is present in u.
func (u KeyUsage) Has(want KeyUsage) bool {
	return u&want == want
}

func (u KeyUsage) String() string {
	names := []struct {
		bit  KeyUsage
		name string
	}{
		{UsageEncrypt, "encrypt"},
		{UsageDecrypt, "decrypt"},
		{UsageWrapKey, "wrapKey"},
		{UsageUnwrapKey, "unwrapKey"},
		{UsageDeriveKey, "deriveKey"},
		{UsageDeriveBits, "deriveBits"},
	}

	parts := make([]string, 0, len(names))
	for _, n := range names {
		if u&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, ",")
}

// BlockSize is the AES key length in bits.
type BlockSize int

const (
	BlockSize128 BlockSize = 128
	BlockSize192 BlockSize = 192
	BlockSize256 BlockSize = 256
)

// Validate returns [ErrUnsupportedBlockSize] for anything but 128, 192 or 256.
func (b BlockSize) Validate() error {
	switch b {
	case BlockSize128, BlockSize192, BlockSize256:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBlockSize, int(b))
	}
}

// Bytes returns the key length in bytes.
func (b BlockSize) Bytes() int {
	return int(b) / 8
}

// Hash names a digest accepted by the key derivation functions.
type Hash string

const (
	HashSHA1   Hash = "SHA-1"
	HashSHA256 Hash = "SHA-256"
	HashSHA384 Hash = "SHA-384"
	HashSHA512 Hash = "SHA-512"
)

// New returns the constructor of the named digest.
func (h Hash) New() (func() hash.Hash, error) {
	switch h {
	case HashSHA1:
		return sha1.New, nil
	case HashSHA256:
		return sha256.New, nil
	case HashSHA384:
		return sha512.New384, nil
	case HashSHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedHash, string(h))
	}
}

// Key is an opaque AES key handle. Raw material is reachable only through
// [Key.Export] and only when the key was created as extractable.
type Key struct {
	material    []byte
	usages      KeyUsage
	extractable bool
}

func newKey(material []byte, usages KeyUsage, extractable bool) *Key {
	return &Key{material: material, usages: usages, extractable: extractable}
}

// Usages returns the operations the key was created for.
func (k *Key) Usages() KeyUsage { return k.usages }

// Extractable reports whether the raw material may leave the handle.
func (k *Key) Extractable() bool { return k.extractable }

// BlockSize returns the key length in bits.
func (k *Key) BlockSize() BlockSize { return BlockSize(len(k.material) * 8) }

// Export returns a copy of the raw key material.
func (k *Key) Export() ([]byte, error) {
	if !k.extractable {
		return nil, ErrKeyNotExtractable
	}
	out := make([]byte, len(k.material))
	copy(out, k.material)
	return out, nil
}

// Equal compares the material of two keys in constant time. Usages and
// extractability are not compared.
func (k *Key) Equal(other *Key) bool {
	if k == nil || other == nil {
		return k == other
	}
	return subtle.ConstantTimeCompare(k.material, other.material) == 1
}

// Destroy overwrites the key material with zeros. The handle is unusable
// afterwards.
func (k *Key) Destroy() {
	if k == nil {
		return
	}
	zero(k.material)
	k.material = nil
	k.usages = 0
}

func (k *Key) require(usage KeyUsage) error {
	if k == nil || len(k.material) == 0 {
		return fmt.Errorf("%w: empty key", ErrInvalidKeyLength)
	}
	if !k.usages.Has(usage) {
		return fmt.Errorf("%w: need %s, have %s", ErrInvalidKeyUsage, usage, k.usages)
	}
	return nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

func validKeyLength(n int) error {
	switch n {
	case 16, 24, 32:
		return nil
	default:
		return fmt.Errorf("%w: %d bytes", ErrInvalidKeyLength, n)
	}
}
