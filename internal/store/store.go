package store

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/team-roster-bot/internal/domain"
	"github.com/preston-bernstein/team-roster-bot/internal/logging"
	"github.com/preston-bernstein/team-roster-bot/internal/metrics"
)

// Persister is the durable side of the Store.
type Persister interface {
	Load() (domain.Document, error)
	Save(domain.Document) error
}

// Store keeps the roster document in memory and serializes every mutation
// together with its save, so concurrent handlers cannot lose updates.
type Store struct {
	mu      sync.Mutex
	doc     domain.Document
	file    Persister
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// New constructs a Store with an empty document. Call Open to load from disk.
func New(file Persister, logger *slog.Logger, recorder *metrics.Recorder) *Store {
	return &Store{
		doc:     domain.NewDocument(),
		file:    file,
		logger:  logger,
		metrics: recorder,
	}
}

// Open loads the persisted document. A corrupt file is logged and replaced by
// an empty document; the error is returned only for unexpected failures.
func (s *Store) Open() error {
	doc, err := s.file.Load()
	if err != nil && !errors.Is(err, ErrStorageRead) {
		return err
	}
	if err != nil {
		logging.Warn(s.logger, "data file unreadable, starting empty", "error", err)
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	logging.Info(s.logger, "roster loaded",
		slog.Int(logging.FieldPlayers, len(doc.Players)),
		slog.Int(logging.FieldTeams, len(doc.Teams)),
	)
	return nil
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Update applies fn to a copy of the document and persists it. The copy is
// published only when fn and the save both succeed.
func (s *Store) Update(fn func(*domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Clone()
	if err := fn(&next); err != nil {
		return err
	}

	start := time.Now()
	err := s.file.Save(next)
	s.metrics.RecordStoreWrite(time.Since(start), err)
	if err != nil {
		logging.Error(s.logger, "persist roster failed", err)
		return fmt.Errorf("persist roster: %w", err)
	}
	s.doc = next
	return nil
}
