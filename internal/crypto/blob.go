package crypto

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// EncryptedBlob is the result of an AES-GCM encryption: ciphertext with the
// tag appended, the IV it was sealed with and the optional associated data.
//
// On the wire it is a JSON object with standard padded Base64 fields:
//
//	{"b64EncryptedData":"...","b64Iv":"...","b64AdditionalData":"..."}
//
// b64AdditionalData is present iff AdditionalData is non-nil.
type EncryptedBlob struct {
	Ciphertext     []byte
	IV             []byte
	AdditionalData []byte
}

type blobWire struct {
	EncryptedData  *string `json:"b64EncryptedData"`
	IV             *string `json:"b64Iv"`
	AdditionalData *string `json:"b64AdditionalData,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (b EncryptedBlob) MarshalJSON() ([]byte, error) {
	if len(b.IV) == 0 {
		return nil, fmt.Errorf("%w: empty iv", ErrMalformedBlob)
	}

	ciphertext := base64.StdEncoding.EncodeToString(b.Ciphertext)
	iv := base64.StdEncoding.EncodeToString(b.IV)
	wire := blobWire{EncryptedData: &ciphertext, IV: &iv}
	if b.AdditionalData != nil {
		aad := base64.StdEncoding.EncodeToString(b.AdditionalData)
		wire.AdditionalData = &aad
	}

	return json.Marshal(wire)
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *EncryptedBlob) UnmarshalJSON(data []byte) error {
	var wire blobWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBlob, err)
	}
	if wire.EncryptedData == nil {
		return fmt.Errorf("%w: missing b64EncryptedData", ErrMalformedBlob)
	}
	if wire.IV == nil {
		return fmt.Errorf("%w: missing b64Iv", ErrMalformedBlob)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(*wire.EncryptedData)
	if err != nil {
		return fmt.Errorf("%w: b64EncryptedData: %v", ErrMalformedBlob, err)
	}
	iv, err := base64.StdEncoding.DecodeString(*wire.IV)
	if err != nil {
		return fmt.Errorf("%w: b64Iv: %v", ErrMalformedBlob, err)
	}
	if len(iv) == 0 {
		return fmt.Errorf("%w: empty iv", ErrMalformedBlob)
	}

	var aad []byte
	if wire.AdditionalData != nil {
		if aad, err = base64.StdEncoding.DecodeString(*wire.AdditionalData); err != nil {
			return fmt.Errorf("%w: b64AdditionalData: %v", ErrMalformedBlob, err)
		}
	}

	*b = EncryptedBlob{Ciphertext: ciphertext, IV: iv, AdditionalData: aad}
	return nil
}

// EncodeBlob serializes b into its JSON string form.
func EncodeBlob(b EncryptedBlob) (string, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("encode blob: %w", err)
	}
	return string(data), nil
}

// DecodeBlob parses the JSON string form produced by [EncodeBlob].
func DecodeBlob(s string) (EncryptedBlob, error) {
	var b EncryptedBlob
	if err := json.Unmarshal([]byte(s), &b); err != nil {
		return EncryptedBlob{}, fmt.Errorf("decode blob: %w", err)
	}
	return b, nil
}
