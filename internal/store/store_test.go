package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/preston-bernstein/team-roster-bot/internal/domain"
	"github.com/preston-bernstein/team-roster-bot/internal/metrics"
	"github.com/preston-bernstein/team-roster-bot/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type failingPersister struct {
	saves int
	err   error
}

func (f *failingPersister) Load() (domain.Document, error) { return domain.NewDocument(), nil }
func (f *failingPersister) Save(domain.Document) error {
	f.saves++
	return f.err
}

func TestUpdatePersistsAndPublishes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	rec := metrics.NewRecorder()
	s := New(NewFileStore(path), nil, rec)
	require.NoError(t, s.Open())

	err := s.Update(func(d *domain.Document) error {
		_, err := d.AddPlayer("Ace")
		return err
	})
	require.NoError(t, err)

	_, ok := s.Snapshot().Player("ace")
	assert.True(t, ok)
	assert.Equal(t, 1, rec.StoreWrites())

	reloaded, err := NewFileStore(path).Load()
	require.NoError(t, err)
	assert.Contains(t, reloaded.Players, "ace")
}

func TestUpdateMutationErrorLeavesDocument(t *testing.T) {
	p := &failingPersister{}
	s := New(p, nil, nil)

	err := s.Update(func(d *domain.Document) error {
		_, _ = d.AddPlayer("Ace")
		return domain.ErrDuplicate
	})
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, s.Snapshot().Players)
	assert.Equal(t, 0, p.saves)
}

func TestUpdateSaveErrorLeavesDocument(t *testing.T) {
	p := &failingPersister{err: errors.New("disk full")}
	logger, buf := testutil.NewBufferLogger()
	s := New(p, logger, nil)

	err := s.Update(func(d *domain.Document) error {
		_, err := d.AddTeam("Alpha")
		return err
	})
	require.Error(t, err)
	assert.Empty(t, s.Snapshot().Teams)
	assert.Contains(t, buf.String(), "persist roster failed")
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New(&failingPersister{}, nil, nil)
	require.NoError(t, s.Update(func(d *domain.Document) error {
		_, err := d.AddPlayer("Ace")
		return err
	}))

	snap := s.Snapshot()
	delete(snap.Players, "ace")
	assert.Contains(t, s.Snapshot().Players, "ace")
}

func TestOpenToleratesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))
	logger, buf := testutil.NewBufferLogger()

	s := New(NewFileStore(path), logger, nil)
	require.NoError(t, s.Open())
	assert.Empty(t, s.Snapshot().Players)
	assert.True(t, strings.Contains(buf.String(), "data file unreadable"))
}

func TestConcurrentUpdatesAreSerialized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	s := New(NewFileStore(path), nil, nil)
	require.NoError(t, s.Open())

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Update(func(d *domain.Document) error {
				_, err := d.AddPlayer(fmt.Sprintf("p%d", i))
				return err
			})
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Snapshot().Players, 25)
	reloaded, err := NewFileStore(path).Load()
	require.NoError(t, err)
	assert.Len(t, reloaded.Players, 25)
}
