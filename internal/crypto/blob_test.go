package crypto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIV() []byte {
	iv := make([]byte, 12)
	for i := range iv {
		iv[i] = byte(i)
	}
	return iv
}

func TestEncodeBlob_WireFormat(t *testing.T) {
	tests := []struct {
		name string
		blob EncryptedBlob
		want string
	}{
		{
			name: "without additional data",
			blob: EncryptedBlob{Ciphertext: []byte("abc"), IV: sampleIV()},
			want: `{"b64EncryptedData":"YWJj","b64Iv":"AAECAwQFBgcICQoL"}`,
		},
		{
			name: "with additional data",
			blob: EncryptedBlob{Ciphertext: []byte("abc"), IV: sampleIV(), AdditionalData: []byte("note-42")},
			want: `{"b64EncryptedData":"YWJj","b64Iv":"AAECAwQFBgcICQoL","b64AdditionalData":"bm90ZS00Mg=="}`,
		},
		{
			name: "empty additional data is still present",
			blob: EncryptedBlob{Ciphertext: []byte("abc"), IV: sampleIV(), AdditionalData: []byte{}},
			want: `{"b64EncryptedData":"YWJj","b64Iv":"AAECAwQFBgcICQoL","b64AdditionalData":""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeBlob(tt.blob)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, got)
		})
	}
}

func TestEncodeBlob_EmptyIV(t *testing.T) {
	_, err := EncodeBlob(EncryptedBlob{Ciphertext: []byte("abc")})
	assert.ErrorIs(t, err, ErrMalformedBlob)
}

func TestDecodeBlob(t *testing.T) {
	got, err := DecodeBlob(`{"b64EncryptedData":"YWJj","b64Iv":"AAECAwQFBgcICQoL","b64AdditionalData":"bm90ZS00Mg=="}`)
	require.NoError(t, err)

	assert.Equal(t, []byte("abc"), got.Ciphertext)
	assert.Equal(t, sampleIV(), got.IV)
	assert.Equal(t, []byte("note-42"), got.AdditionalData)
}

func TestDecodeBlob_AbsentAdditionalDataStaysNil(t *testing.T) {
	got, err := DecodeBlob(`{"b64EncryptedData":"YWJj","b64Iv":"AAECAwQFBgcICQoL"}`)
	require.NoError(t, err)
	assert.Nil(t, got.AdditionalData)
}

func TestDecodeBlob_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `hello world`},
		{"json null", `null`},
		{"missing iv", `{"b64EncryptedData":"YWJj"}`},
		{"missing ciphertext", `{"b64Iv":"AAECAwQFBgcICQoL"}`},
		{"empty iv", `{"b64EncryptedData":"YWJj","b64Iv":""}`},
		{"bad ciphertext base64", `{"b64EncryptedData":"!!!","b64Iv":"AAECAwQFBgcICQoL"}`},
		{"bad iv base64", `{"b64EncryptedData":"YWJj","b64Iv":"***"}`},
		{"bad aad base64", `{"b64EncryptedData":"YWJj","b64Iv":"AAECAwQFBgcICQoL","b64AdditionalData":"@"}`},
		{"wrong type", `{"b64EncryptedData":1,"b64Iv":"AAECAwQFBgcICQoL"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBlob(tt.input)
			assert.ErrorIs(t, err, ErrMalformedBlob)
		})
	}
}

func TestBlob_RoundTripThroughCipher(t *testing.T) {
	p := NewPlatform()
	key := testKey(t, 1, UsagesEncryptDecrypt, false)

	sealed, err := p.Encrypt(key, []byte("hello world"), []byte("ctx"), nil)
	require.NoError(t, err)

	encoded, err := EncodeBlob(sealed)
	require.NoError(t, err)
	decoded, err := DecodeBlob(encoded)
	require.NoError(t, err)

	assert.Equal(t, sealed, decoded)

	plain, err := p.Decrypt(decoded, key)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(plain))
}

// TestBlob_EmbeddedInStruct checks that the blob marshals as a nested object.
func TestBlob_EmbeddedInStruct(t *testing.T) {
	type envelope struct {
		Key EncryptedBlob `json:"key"`
	}

	data, err := json.Marshal(envelope{Key: EncryptedBlob{Ciphertext: []byte("abc"), IV: sampleIV()}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":{"b64EncryptedData":"YWJj","b64Iv":"AAECAwQFBgcICQoL"}}`, string(data))

	var back envelope
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []byte("abc"), back.Key.Ciphertext)
}
