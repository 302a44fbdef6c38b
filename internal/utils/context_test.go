package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "0190c7a4-1111-7000-8000-000000000000")

	id, ok := GetRequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "0190c7a4-1111-7000-8000-000000000000", id)
}

func TestRequestID_Missing(t *testing.T) {
	id, ok := GetRequestIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestRequestID_EmptyOrWrongType(t *testing.T) {
	_, ok := GetRequestIDFromContext(WithRequestID(context.Background(), ""))
	assert.False(t, ok)

	ctx := context.WithValue(context.Background(), RequestIDCtxKey, 42)
	_, ok = GetRequestIDFromContext(ctx)
	assert.False(t, ok)
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "requestID", RequestIDCtxKey.String())
}
