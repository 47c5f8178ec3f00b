package engine

import (
	"sync"
	"time"
)

// ManualScheduler provides a controllable scheduler for testing
// Callbacks run synchronously inside Advance, in deadline order, ties in scheduling order
type ManualScheduler struct {
	mu      sync.Mutex
	elapsed time.Duration
	seq     uint64
	entries []*manualEntry
}

type manualEntry struct {
	at   time.Duration
	seq  uint64
	task *Task
	f    func()
}

// NewManualScheduler creates a scheduler at virtual time zero
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc schedules f at the current virtual time plus d
func (m *ManualScheduler) AfterFunc(d time.Duration, f func()) *Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d < 0 {
		d = 0
	}
	t := &Task{}
	m.seq++
	m.entries = append(m.entries, &manualEntry{at: m.elapsed + d, seq: m.seq, task: t, f: f})
	return t
}

// Advance moves virtual time forward by d, running every task due on the way
// Tasks scheduled by callbacks run within the same call if they fall inside the window
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.elapsed + d
	m.mu.Unlock()

	for {
		e := m.popDue(target)
		if e == nil {
			break
		}
		e.task.run(e.f)
	}

	m.mu.Lock()
	m.elapsed = target
	m.mu.Unlock()
}

// popDue removes and returns the earliest entry due at or before target
func (m *ManualScheduler) popDue(target time.Duration) *manualEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	best := -1
	for i, e := range m.entries {
		if e.at > target {
			continue
		}
		if best < 0 || e.at < m.entries[best].at || (e.at == m.entries[best].at && e.seq < m.entries[best].seq) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}

	e := m.entries[best]
	m.entries = append(m.entries[:best], m.entries[best+1:]...)
	if e.at > m.elapsed {
		m.elapsed = e.at
	}
	return e
}

// Elapsed returns the virtual time
func (m *ManualScheduler) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.elapsed
}

// Pending returns the number of scheduled tasks that are neither canceled nor run
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, e := range m.entries {
		if !e.task.Canceled() {
			n++
		}
	}
	return n
}
