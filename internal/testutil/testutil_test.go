package testutil

import (
	"errors"
	"net/http"
	"testing"

	"github.com/preston-bernstein/team-roster-bot/internal/domain"
)

func TestFixedRandWraps(t *testing.T) {
	r := &FixedRand{Values: []float64{0.1, 0.2}}
	got := []float64{r.Float64(), r.Float64(), r.Float64()}
	if got[0] != 0.1 || got[1] != 0.2 || got[2] != 0.1 {
		t.Fatalf("unexpected sequence %v", got)
	}
	if (&FixedRand{}).Float64() != 0.5 {
		t.Fatalf("expected 0.5 for empty values")
	}
}

func TestMemStorePublishesOnSuccessOnly(t *testing.T) {
	s := NewMemStore(SampleDocument())

	err := s.Update(func(d *domain.Document) error {
		_, _ = d.RemovePlayer("Ace")
		return errors.New("abort")
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if _, ok := s.Snapshot().Player("Ace"); !ok {
		t.Fatalf("expected failed update to be discarded")
	}

	s.SaveErr = errors.New("disk")
	if err := s.Update(func(d *domain.Document) error { _, err := d.AddPlayer("Dan"); return err }); err == nil {
		t.Fatalf("expected save error")
	}
	if _, ok := s.Snapshot().Player("Dan"); ok {
		t.Fatalf("expected unsaved update to be discarded")
	}

	s.SaveErr = nil
	if err := s.Update(func(d *domain.Document) error { _, err := d.AddPlayer("Dan"); return err }); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if s.Updates != 1 {
		t.Fatalf("expected one successful update, got %d", s.Updates)
	}
}

func TestHTTPHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	var body map[string]bool
	DecodeJSON(t, Get(handler, "/x"), http.StatusCreated, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}
}

func TestBufferLogger(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered output")
	}
}
