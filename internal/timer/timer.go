// Package timer implements the cancellable deferred-task primitive behind
// every simulated "processing" phase of the checkout wizard.
package timer

import (
	"sync"
	"time"

	"mobi-voucher-gateway/internal/core/ports"
)

// Real schedules tasks on the runtime timer wheel via time.AfterFunc.
type Real struct{}

// NewScheduler creates the production scheduler.
func NewScheduler() *Real {
	return &Real{}
}

// Schedule runs fn once after delay. The returned handle stops the timer;
// Cancel reports false when fn already started.
func (*Real) Schedule(delay time.Duration, fn func()) ports.TaskHandle {
	return &realHandle{t: time.AfterFunc(delay, fn)}
}

type realHandle struct {
	t *time.Timer
}

func (h *realHandle) Cancel() bool {
	return h.t.Stop()
}

// Manual is a scheduler for tests: tasks never fire on their own, the test
// drives them with Fire. Safe for concurrent use.
type Manual struct {
	mu    sync.Mutex
	tasks []*manualTask
}

// NewManual creates an empty manual scheduler.
func NewManual() *Manual {
	return &Manual{}
}

// Schedule queues fn without starting any timer.
func (m *Manual) Schedule(_ time.Duration, fn func()) ports.TaskHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	task := &manualTask{fn: fn}
	m.tasks = append(m.tasks, task)
	return task
}

// Fire synchronously runs every task queued so far that has not been
// cancelled, and returns how many ran. Tasks scheduled by a firing task are
// left for the next call.
func (m *Manual) Fire() int {
	m.mu.Lock()
	pending := m.tasks
	m.tasks = nil
	m.mu.Unlock()

	fired := 0
	for _, task := range pending {
		if task.run() {
			fired++
		}
	}
	return fired
}

// Pending returns the number of queued, uncancelled tasks.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, task := range m.tasks {
		if !task.done {
			n++
		}
	}
	return n
}

type manualTask struct {
	mu   sync.Mutex
	fn   func()
	done bool
}

func (t *manualTask) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}

func (t *manualTask) run() bool {
	t.mu.Lock()
	if t.done {
		t.mu.Unlock()
		return false
	}
	t.done = true
	fn := t.fn
	t.mu.Unlock()
	fn()
	return true
}
