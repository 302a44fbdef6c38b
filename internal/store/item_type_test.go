package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profile struct {
	Name  string `json:"name"`
	Theme string `json:"theme"`
}

func TestEncodeItem(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		itemType ItemType
		want     string
		wantErr  error
	}{
		{"string", "token-123", ItemString, "token-123", nil},
		{"int", 3, ItemNumber, "3", nil},
		{"int64", int64(-42), ItemNumber, "-42", nil},
		{"float", 1.5, ItemNumber, "1.5", nil},
		{"bool true", true, ItemBoolean, "true", nil},
		{"bool false", false, ItemBoolean, "false", nil},
		{"object", profile{Name: "alice", Theme: "dark"}, ItemObject, `{"name":"alice","theme":"dark"}`, nil},
		{"string mismatch", 1, ItemString, "", ErrItemTypeMismatch},
		{"number mismatch", "1", ItemNumber, "", ErrItemTypeMismatch},
		{"bool mismatch", "true", ItemBoolean, "", ErrItemTypeMismatch},
		{"object not serializable", make(chan int), ItemObject, "", ErrItemTypeMismatch},
		{"unknown type", "x", ItemType("bytes"), "", ErrUnknownItemType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeItem(tt.value, tt.itemType)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeItem_String(t *testing.T) {
	var s string
	require.NoError(t, decodeItem("token-123", ItemString, &s))
	assert.Equal(t, "token-123", s)

	var n int
	assert.ErrorIs(t, decodeItem("x", ItemString, &n), ErrItemTypeMismatch)
}

func TestDecodeItem_Number(t *testing.T) {
	var i int
	require.NoError(t, decodeItem("3", ItemNumber, &i))
	assert.Equal(t, 3, i)

	var i64 int64
	require.NoError(t, decodeItem("-42", ItemNumber, &i64))
	assert.Equal(t, int64(-42), i64)

	var f float64
	require.NoError(t, decodeItem("1.5", ItemNumber, &f))
	assert.Equal(t, 1.5, f)

	assert.ErrorIs(t, decodeItem("abc", ItemNumber, &i), ErrCorruptedItem)

	var s string
	assert.ErrorIs(t, decodeItem("3", ItemNumber, &s), ErrItemTypeMismatch)
}

func TestDecodeItem_Boolean(t *testing.T) {
	var b bool
	require.NoError(t, decodeItem("true", ItemBoolean, &b))
	assert.True(t, b)

	assert.ErrorIs(t, decodeItem("yes please", ItemBoolean, &b), ErrCorruptedItem)
}

func TestDecodeItem_Object(t *testing.T) {
	var p profile
	require.NoError(t, decodeItem(`{"name":"alice","theme":"dark"}`, ItemObject, &p))
	assert.Equal(t, profile{Name: "alice", Theme: "dark"}, p)

	assert.ErrorIs(t, decodeItem(`{broken`, ItemObject, &p), ErrCorruptedItem)
}

func TestDecodeItem_UnknownType(t *testing.T) {
	var s string
	assert.ErrorIs(t, decodeItem("x", ItemType("bytes"), &s), ErrUnknownItemType)
}
