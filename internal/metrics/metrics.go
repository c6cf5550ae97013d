package metrics

import (
	"sync"
	"time"
)

type counterStats struct {
	calls       int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about bot activity and
// mirrors them to OpenTelemetry instruments when Setup configured them.
// All methods are safe on a nil receiver.
type Recorder struct {
	mu           sync.Mutex
	interactions map[string]*counterStats
	commands     map[string]*counterStats
	storeWrites  counterStats
	otel         *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		interactions: make(map[string]*counterStats),
		commands:     make(map[string]*counterStats),
		otel:         otel,
	}
}

// RecordInteraction counts a component, modal or slash interaction by kind.
func (r *Recorder) RecordInteraction(kind string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	record(ensure(r.interactions, kind), duration, err)
	r.mu.Unlock()
	r.otel.recordInteraction(kind, duration, err)
}

// RecordCommand counts a text or slash command by its root name.
func (r *Recorder) RecordCommand(name string, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	record(ensure(r.commands, name), 0, err)
	r.mu.Unlock()
	r.otel.recordCommand(name, err)
}

// RecordStoreWrite tracks a data file save and its latency.
func (r *Recorder) RecordStoreWrite(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	record(&r.storeWrites, duration, err)
	r.mu.Unlock()
	r.otel.recordStoreWrite(duration, err)
}

// RecordHTTPRequest tracks basic HTTP metrics for the ops server.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the counters for one key.
type Snapshot struct {
	Calls       int
	Errors      int
	LastLatency time.Duration
}

// Interactions returns the counters recorded for an interaction kind.
func (r *Recorder) Interactions(kind string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return snapshotOf(r.interactions[kind])
}

// Commands returns the counters recorded for a command name.
func (r *Recorder) Commands(name string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return snapshotOf(r.commands[name])
}

// StoreWrites returns the number of save attempts.
func (r *Recorder) StoreWrites() int {
	return r.StoreSnapshot().Calls
}

// StoreWriteErrors returns the number of failed saves.
func (r *Recorder) StoreWriteErrors() int {
	return r.StoreSnapshot().Errors
}

// StoreSnapshot returns the store write counters.
func (r *Recorder) StoreSnapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return snapshotOf(&r.storeWrites)
}

func ensure(m map[string]*counterStats, key string) *counterStats {
	stats, ok := m[key]
	if !ok {
		stats = &counterStats{}
		m[key] = stats
	}
	return stats
}

func record(stats *counterStats, duration time.Duration, err error) {
	stats.calls++
	if duration > 0 {
		stats.lastLatency = duration
	}
	if err != nil {
		stats.errors++
	}
}

func snapshotOf(stats *counterStats) Snapshot {
	if stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:       stats.calls,
		Errors:      stats.errors,
		LastLatency: stats.lastLatency,
	}
}
