package ports

import "time"

// TaskHandle is a cancellable deferred task. Cancel returns false when the
// task already fired or was cancelled before.
type TaskHandle interface {
	Cancel() bool
}

// Scheduler runs one-shot deferred callbacks. Every simulated "processing"
// phase in the wizard is a task scheduled here, so teardown can abort
// pending transitions instead of letting them mutate a dead session.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) TaskHandle
}
