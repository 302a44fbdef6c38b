package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/cryptocore"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	testKEK        = "a2VrLWtlay1rZWsta2VrLWtlay1rZWsta2VrLWtlay0="
	testStorageKey = store.KeyMasterKey
)

// newTestPasswordSvc builds clientPasswordService on mocks
func newTestPasswordSvc(t *testing.T, ctrl *gomock.Controller) (
	*clientPasswordService,
	*mock.MockCryptoCore,
	*mock.MockServerAdapter,
	*mock.MockLocalStorage,
) {
	t.Helper()
	mockCore := mock.NewMockCryptoCore(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockStorage := mock.NewMockLocalStorage(ctrl)

	svc := NewClientPasswordService(mockCore, mockAdapter, mockStorage, testStorageKey, logger.Nop()).(*clientPasswordService)
	return svc, mockCore, mockAdapter, mockStorage
}

// ── LoadPassword ─────────────────────────────────────────────────────────────

func TestClientPasswordService_LoadPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockCore, mockAdapter, _ := newTestPasswordSvc(t, ctrl)
	ctx := context.Background()

	salt := models.LocalStorageSalt{SaltB64: "c2FsdA==", BlockSize: 256, PBKDF2Iterations: 1000}

	gomock.InOrder(
		mockCore.EXPECT().IsReady().Return(false),
		mockAdapter.EXPECT().GetUserLocalStorageKeyEncryptionKey(ctx).Return(testKEK, nil),
		mockAdapter.EXPECT().GetUserLocalStorageSalt(ctx).Return(salt, nil),
		mockCore.EXPECT().
			CreateAndStoreMasterKey(ctx, "correct horse", gomock.Any(), testStorageKey).
			DoAndReturn(func(_ context.Context, _ string, s models.EncryptionSettings, _ store.LocalStorageKey) error {
				assert.Equal(t, testKEK, s.KEKB64)
				assert.Equal(t, models.AesGcmSettings{SaltB64: "c2FsdA==", PBKDF2Iterations: 1000, BlockSize: 256}, s.AesGcm)
				return nil
			}),
	)

	assert.True(t, svc.LoadPassword(ctx, "correct horse"))
}

func TestClientPasswordService_LoadPassword_AlreadyReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockCore, _, _ := newTestPasswordSvc(t, ctrl)

	// no network round trip when the session is already unlocked
	mockCore.EXPECT().IsReady().Return(true)

	assert.True(t, svc.LoadPassword(context.Background(), "whatever"))
}

func TestClientPasswordService_LoadPassword_KEKFetchFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockCore, mockAdapter, _ := newTestPasswordSvc(t, ctrl)
	ctx := context.Background()

	mockCore.EXPECT().IsReady().Return(false)
	mockAdapter.EXPECT().GetUserLocalStorageKeyEncryptionKey(ctx).
		Return("", fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgTokenIsExpired))

	assert.False(t, svc.LoadPassword(ctx, "correct horse"))
}

func TestClientPasswordService_LoadPassword_SaltFetchFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockCore, mockAdapter, _ := newTestPasswordSvc(t, ctrl)
	ctx := context.Background()

	mockCore.EXPECT().IsReady().Return(false)
	mockAdapter.EXPECT().GetUserLocalStorageKeyEncryptionKey(ctx).Return(testKEK, nil)
	mockAdapter.EXPECT().GetUserLocalStorageSalt(ctx).
		Return(models.LocalStorageSalt{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgLocalStorageKeyNotIssued))

	assert.False(t, svc.LoadPassword(ctx, "correct horse"))
}

func TestClientPasswordService_LoadPassword_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockCore, mockAdapter, _ := newTestPasswordSvc(t, ctrl)
	ctx := context.Background()

	mockCore.EXPECT().IsReady().Return(false)
	mockAdapter.EXPECT().GetUserLocalStorageKeyEncryptionKey(ctx).Return(testKEK, nil)
	mockAdapter.EXPECT().GetUserLocalStorageSalt(ctx).Return(models.LocalStorageSalt{SaltB64: "c2FsdA=="}, nil)
	mockCore.EXPECT().CreateAndStoreMasterKey(ctx, "wrong horse", gomock.Any(), testStorageKey).
		Return(cryptocore.ErrMasterKeyMismatch)

	assert.False(t, svc.LoadPassword(ctx, "wrong horse"))
}

// ── LoadPasswordMasterKey ────────────────────────────────────────────────────

func TestClientPasswordService_LoadPasswordMasterKey(t *testing.T) {
	ctx := context.Background()

	t.Run("restored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockCore, mockAdapter, _ := newTestPasswordSvc(t, ctrl)

		gomock.InOrder(
			mockCore.EXPECT().IsReady().Return(false),
			mockAdapter.EXPECT().GetUserLocalStorageKeyEncryptionKey(ctx).Return(testKEK, nil),
			mockCore.EXPECT().LoadMasterKey(ctx, testKEK, testStorageKey).Return(true),
		)

		assert.True(t, svc.LoadPasswordMasterKey(ctx))
	})

	t.Run("nothing stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockCore, mockAdapter, _ := newTestPasswordSvc(t, ctrl)

		mockCore.EXPECT().IsReady().Return(false)
		mockAdapter.EXPECT().GetUserLocalStorageKeyEncryptionKey(ctx).Return(testKEK, nil)
		mockCore.EXPECT().LoadMasterKey(ctx, testKEK, testStorageKey).Return(false)

		assert.False(t, svc.LoadPasswordMasterKey(ctx))
	})

	t.Run("already ready", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockCore, _, _ := newTestPasswordSvc(t, ctrl)

		mockCore.EXPECT().IsReady().Return(true)

		assert.True(t, svc.LoadPasswordMasterKey(ctx))
	})

	t.Run("server unreachable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockCore, mockAdapter, _ := newTestPasswordSvc(t, ctrl)

		mockCore.EXPECT().IsReady().Return(false)
		mockAdapter.EXPECT().GetUserLocalStorageKeyEncryptionKey(ctx).Return("", errors.New("connection refused"))

		assert.False(t, svc.LoadPasswordMasterKey(ctx))
	})
}

// ── ForgetMasterKey ──────────────────────────────────────────────────────────

func TestClientPasswordService_ForgetMasterKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, mockStorage := newTestPasswordSvc(t, ctrl)
	ctx := context.Background()

	mockStorage.EXPECT().RemoveItem(ctx, testStorageKey).Return(nil)
	require.NoError(t, svc.ForgetMasterKey(ctx))

	dbErr := errors.New("readonly database")
	mockStorage.EXPECT().RemoveItem(ctx, testStorageKey).Return(dbErr)
	assert.ErrorIs(t, svc.ForgetMasterKey(ctx), dbErr)
}

// ── RestoreToken ─────────────────────────────────────────────────────────────

func expectStoredToken(mockStorage *mock.MockLocalStorage, token string, found bool, err error) {
	mockStorage.EXPECT().
		GetItem(gomock.Any(), store.KeyDevToken, store.ItemString, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ store.LocalStorageKey, _ store.ItemType, dest any) (bool, error) {
			if found {
				*dest.(*string) = token
			}
			return found, err
		})
}

func TestClientPasswordService_RestoreToken_JWT(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockAdapter, mockStorage := newTestPasswordSvc(t, ctrl)

	token, err := utils.GenerateJWTToken("notes", "user-7", time.Hour, "secret")
	require.NoError(t, err)

	expectStoredToken(mockStorage, token, true, nil)
	mockAdapter.EXPECT().SetToken(token)

	require.NoError(t, svc.RestoreToken(context.Background()))
}

func TestClientPasswordService_RestoreToken_OpaqueToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockAdapter, mockStorage := newTestPasswordSvc(t, ctrl)

	expectStoredToken(mockStorage, "dev-token-123", true, nil)
	mockAdapter.EXPECT().SetToken("dev-token-123")

	require.NoError(t, svc.RestoreToken(context.Background()))
}

func TestClientPasswordService_RestoreToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, mockStorage := newTestPasswordSvc(t, ctrl)

	token, err := utils.GenerateJWTToken("notes", "user-7", time.Minute, "secret")
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Now().Add(time.Hour) }

	// SetToken must not be called for an expired token
	expectStoredToken(mockStorage, token, true, nil)

	assert.ErrorIs(t, svc.RestoreToken(context.Background()), ErrTokenIsExpired)
}

func TestClientPasswordService_RestoreToken_NotStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, mockStorage := newTestPasswordSvc(t, ctrl)

	expectStoredToken(mockStorage, "", false, nil)

	assert.ErrorIs(t, svc.RestoreToken(context.Background()), ErrNoStoredToken)
}

func TestClientPasswordService_RestoreToken_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, mockStorage := newTestPasswordSvc(t, ctrl)

	expectStoredToken(mockStorage, "", true, store.ErrCorruptedItem)

	err := svc.RestoreToken(context.Background())
	assert.ErrorIs(t, err, store.ErrCorruptedItem)
	assert.NotErrorIs(t, err, ErrNoStoredToken)
}
