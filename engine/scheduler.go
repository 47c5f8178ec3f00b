package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler runs one-shot delayed callbacks on the game goroutine
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) *Task
}

// Task is the cancellation handle of a scheduled callback
// A canceled task never runs, even when its timer already expired and the callback is queued
type Task struct {
	canceled atomic.Bool
	fired    atomic.Bool
	timer    *time.Timer
}

// Cancel prevents the callback from running, returns false if it already ran or was canceled
// Safe on a nil task
func (t *Task) Cancel() bool {
	if t == nil || t.fired.Load() {
		return false
	}
	if !t.canceled.CompareAndSwap(false, true) {
		return false
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	return true
}

// Canceled reports whether Cancel succeeded on this task
func (t *Task) Canceled() bool {
	return t != nil && t.canceled.Load()
}

// Fired reports whether the callback ran
func (t *Task) Fired() bool {
	return t != nil && t.fired.Load()
}

// run executes f unless the task was canceled or already ran
func (t *Task) run(f func()) bool {
	if t.canceled.Load() {
		return false
	}
	if !t.fired.CompareAndSwap(false, true) {
		return false
	}
	f()
	return true
}

// Loop is the real-time scheduler
// Timers fire on runtime goroutines and only post the callback; the owner drains Events() on the game goroutine
type Loop struct {
	queue    chan func()
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewLoop creates a loop with a bounded callback queue
func NewLoop(queueSize int) *Loop {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Loop{
		queue:    make(chan func(), queueSize),
		stopChan: make(chan struct{}),
	}
}

// AfterFunc schedules f to be queued after d
func (l *Loop) AfterFunc(d time.Duration, f func()) *Task {
	t := &Task{}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() { t.run(f) })
	})
	return t
}

// Post queues f for the game goroutine, blocks while the queue is full, drops f after Stop
func (l *Loop) Post(f func()) {
	select {
	case l.queue <- f:
	case <-l.stopChan:
	}
}

// Events returns the callback queue drained by the game goroutine
func (l *Loop) Events() <-chan func() {
	return l.queue
}

// Stop releases timer goroutines blocked in Post
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}
