package domain

import (
	"time"

	"github.com/google/uuid"
)

// AllocationSet maps recipient ids to in-progress Mobi allocations.
// Invariant: the sum of all allocations never exceeds the session's
// remaining balance. Allocate enforces this by clamping, not by rejecting.
type AllocationSet map[string]int64

// NewAllocationSet creates an empty allocation set.
func NewAllocationSet() AllocationSet {
	return make(AllocationSet)
}

// Total returns the sum of all allocations.
func (a AllocationSet) Total() int64 {
	var sum int64
	for _, amount := range a {
		sum += amount
	}
	return sum
}

// Allocate sets the allocation for a recipient, clamping the requested
// amount into [0, remaining - Total() + previous allocation for this
// recipient]. The clamp keeps the sum invariant under any call order,
// including rapid repeated overshoot attempts. Returns the stored value.
func (a AllocationSet) Allocate(recipientID string, amount, remaining int64) int64 {
	previous := a[recipientID]
	max := remaining - a.Total() + previous
	if max < 0 {
		max = 0
	}
	if amount > max {
		amount = max
	}
	if amount <= 0 {
		delete(a, recipientID)
		return 0
	}
	a[recipientID] = amount
	return amount
}

// Clear drops every in-progress allocation.
func (a AllocationSet) Clear() {
	clear(a)
}

// Transfer is one committed distribution of Mobi to a recipient.
// Transfers are append-only: never mutated or deleted once created.
type Transfer struct {
	ID              uuid.UUID `json:"id"`
	SessionID       uuid.UUID `json:"session_id"`
	RecipientID     string    `json:"recipient_id"`
	RecipientName   string    `json:"recipient_name"`
	RecipientAvatar string    `json:"recipient_avatar"`
	Amount          int64     `json:"amount"`
	CreatedAt       time.Time `json:"created_at"`
}
