package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-note-keeper/models"
)

type noteFeedJob struct {
	notes ClientNoteService

	mu      sync.Mutex
	cancel  context.CancelFunc
	current models.Note
	gen     uint64 // bumped by Replace; merges started under an older gen are dropped
	wg      sync.WaitGroup
}

// NewNoteFeedJob creates a job that merges push-channel updates into an open
// note through notes.ApplyFeedUpdate. The job is idle until Start is called.
func NewNoteFeedJob(notes ClientNoteService) NoteFeedJob {
	return &noteFeedJob{notes: notes}
}

// Start implements NoteFeedJob. onUpdate is called from the job goroutine and
// may be nil.
func (j *noteFeedJob) Start(ctx context.Context, note models.Note, updates <-chan models.NoteUpdate, onUpdate func(models.Note, error)) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.current = note
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		for {
			select {
			case <-jobCtx.Done():
				return
			case update, ok := <-updates:
				if !ok {
					return
				}
				if update.Event != models.NoteUpdateFeed {
					continue
				}

				j.mu.Lock()
				base, gen := j.current, j.gen
				j.mu.Unlock()

				merged, err := j.notes.ApplyFeedUpdate(jobCtx, base, update)

				j.mu.Lock()
				stale := gen != j.gen
				if err == nil && !stale {
					j.current = merged
				}
				j.mu.Unlock()

				if stale {
					continue
				}
				if onUpdate != nil {
					onUpdate(merged, err)
				}
			}
		}
	}()
}

// Stop implements NoteFeedJob. Safe to call when the job is not running.
func (j *noteFeedJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *noteFeedJob) Current() models.Note {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.current
}

func (j *noteFeedJob) Replace(note models.Note) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.current = note
	j.gen++
}
