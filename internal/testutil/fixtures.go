package testutil

import (
	"sync"

	"github.com/preston-bernstein/team-roster-bot/internal/domain"
	"github.com/preston-bernstein/team-roster-bot/internal/domain/players"
	"github.com/preston-bernstein/team-roster-bot/internal/domain/teams"
)

// SampleDocument returns two teams and three players:
// Ace (captain, Alpha), Bee (top player, Alpha) and Cat (unassigned).
func SampleDocument() domain.Document {
	doc := domain.NewDocument()
	doc.Teams["alpha"] = teams.Team{Name: "Alpha", Points: 10}
	doc.Teams["beta"] = teams.Team{Name: "Beta"}
	doc.Players["ace"] = players.Player{Tag: "Ace", Team: "Alpha", Captain: true}
	doc.Players["bee"] = players.Player{Tag: "Bee", Team: "Alpha", TopPlayer: true}
	doc.Players["cat"] = players.Player{Tag: "Cat"}
	return doc
}

// MemStore is an in-memory stand-in for store.Store with the same
// publish-on-success semantics and no disk access.
type MemStore struct {
	mu      sync.Mutex
	doc     domain.Document
	Updates int
	SaveErr error
}

// NewMemStore seeds a MemStore with doc.
func NewMemStore(doc domain.Document) *MemStore {
	doc.Ensure()
	return &MemStore{doc: doc}
}

func (m *MemStore) Snapshot() domain.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.doc.Clone()
}

func (m *MemStore) Update(fn func(*domain.Document) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.doc.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Updates++
	m.doc = next
	return nil
}
