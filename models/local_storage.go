// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LocalStorageKEKResponse is the body of GET /api/users/local-storage/kek.
type LocalStorageKEKResponse struct {
	// KEK is the Base64 key-encryption key issued for this user and device.
	KEK string `json:"kek"`
}

// LocalStorageSalt is the body of GET /api/users/local-storage/salt.
//
// BlockSize and PBKDF2Iterations are optional; zero means "use the client
// default".
type LocalStorageSalt struct {
	SaltB64          string `json:"salt"`
	BlockSize        int    `json:"blockSize,omitempty"`
	PBKDF2Iterations int    `json:"pbkdf2Iterations,omitempty"`
}

// Settings merges the salt response with a KEK into [EncryptionSettings].
func (s LocalStorageSalt) Settings(kekB64 string) EncryptionSettings {
	return EncryptionSettings{
		KEKB64: kekB64,
		AesGcm: AesGcmSettings{
			SaltB64:          s.SaltB64,
			PBKDF2Iterations: s.PBKDF2Iterations,
			BlockSize:        s.BlockSize,
		},
	}
}
