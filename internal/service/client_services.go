package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/cryptocore"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type ClientServices struct {
	PasswordService ClientPasswordService
	NoteService     ClientNoteService
	FeedJob         NoteFeedJob
	Poller          NotePoller
}

func NewClientServices(
	registry *cryptocore.Registry,
	localStorage store.LocalStorage,
	serverAdapter adapter.ServerAdapter,
	masterKeyStorageKey store.LocalStorageKey,
	logger *logger.Logger,
) *ClientServices {
	noteSvc := NewClientNoteService(registry, serverAdapter, logger)

	return &ClientServices{
		PasswordService: NewClientPasswordService(registry.Password(), serverAdapter, localStorage, masterKeyStorageKey, logger),
		NoteService:     noteSvc,
		FeedJob:         NewNoteFeedJob(noteSvc),
		Poller:          NewNotePoller(serverAdapter, logger),
	}
}
