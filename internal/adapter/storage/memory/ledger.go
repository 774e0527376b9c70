package memory

import (
	"context"
	"sync"

	"mobi-voucher-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// TransferLedger implements ports.TransferLedger as an append-only
// in-memory log keyed by session. Entries are never mutated or deleted.
type TransferLedger struct {
	mu        sync.RWMutex
	bySession map[uuid.UUID][]domain.Transfer
}

// NewTransferLedger creates an empty ledger.
func NewTransferLedger() *TransferLedger {
	return &TransferLedger{bySession: make(map[uuid.UUID][]domain.Transfer)}
}

// Append records committed transfers.
func (l *TransferLedger) Append(_ context.Context, transfers []domain.Transfer) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, t := range transfers {
		l.bySession[t.SessionID] = append(l.bySession[t.SessionID], t)
	}
	return nil
}

// ListBySession returns a session's transfers in append order.
func (l *TransferLedger) ListBySession(_ context.Context, sessionID uuid.UUID) ([]domain.Transfer, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	entries := l.bySession[sessionID]
	out := make([]domain.Transfer, len(entries))
	copy(out, entries)
	return out, nil
}
