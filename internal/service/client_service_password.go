package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/cryptocore"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

type clientPasswordService struct {
	core         cryptocore.CryptoCore
	adapter      adapter.ServerAdapter
	localStorage store.LocalStorage
	storageKey   store.LocalStorageKey
	logger       *logger.Logger

	now func() time.Time
}

// NewClientPasswordService returns the bootstrap for core. The wrapped master
// key is kept in localStorage under storageKey.
func NewClientPasswordService(
	core cryptocore.CryptoCore,
	serverAdapter adapter.ServerAdapter,
	localStorage store.LocalStorage,
	storageKey store.LocalStorageKey,
	logger *logger.Logger,
) ClientPasswordService {
	return &clientPasswordService{
		core:         core,
		adapter:      serverAdapter,
		localStorage: localStorage,
		storageKey:   storageKey,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *clientPasswordService) LoadPassword(ctx context.Context, plainPassword string) bool {
	if s.core.IsReady() {
		return true
	}

	log := s.logger.With().Str("func", "clientPasswordService.LoadPassword").Logger()

	kek, err := s.adapter.GetUserLocalStorageKeyEncryptionKey(ctx)
	if err != nil {
		log.Err(mapAdapterError(err)).Msg("failed to fetch local storage KEK")
		return false
	}

	salt, err := s.adapter.GetUserLocalStorageSalt(ctx)
	if err != nil {
		log.Err(mapAdapterError(err)).Msg("failed to fetch local storage salt")
		return false
	}

	if err = s.core.CreateAndStoreMasterKey(ctx, plainPassword, salt.Settings(kek), s.storageKey); err != nil {
		log.Err(err).Msg("failed to create master key")
		return false
	}

	return true
}

func (s *clientPasswordService) LoadPasswordMasterKey(ctx context.Context) bool {
	if s.core.IsReady() {
		return true
	}

	kek, err := s.adapter.GetUserLocalStorageKeyEncryptionKey(ctx)
	if err != nil {
		s.logger.Err(mapAdapterError(err)).
			Str("func", "clientPasswordService.LoadPasswordMasterKey").
			Msg("failed to fetch local storage KEK")
		return false
	}

	return s.core.LoadMasterKey(ctx, kek, s.storageKey)
}

func (s *clientPasswordService) ForgetMasterKey(ctx context.Context) error {
	if err := s.localStorage.RemoveItem(ctx, s.storageKey); err != nil {
		return fmt.Errorf("remove stored master key: %w", err)
	}
	return nil
}

func (s *clientPasswordService) RestoreToken(ctx context.Context) error {
	var token string
	found, err := s.localStorage.GetItem(ctx, store.KeyDevToken, store.ItemString, &token)
	if err != nil {
		return fmt.Errorf("read stored token: %w", err)
	}
	if !found || token == "" {
		return ErrNoStoredToken
	}

	log := s.logger.With().Str("func", "clientPasswordService.RestoreToken").Logger()

	// opaque tokens are handed over unchecked
	claims, err := utils.InspectToken(token)
	if err != nil {
		log.Debug().Err(err).Msg("stored token is not a JWT")
	} else {
		if claims.Expired(s.now()) {
			return ErrTokenIsExpired
		}
		log.Debug().Str("subject", claims.Subject).Msg("restored token")
	}

	s.adapter.SetToken(token)
	return nil
}
