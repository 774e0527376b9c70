package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"mobi-voucher-gateway/config"
	"mobi-voucher-gateway/internal/core/domain"
	"mobi-voucher-gateway/internal/core/ports"
	"mobi-voucher-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// errStaleTimer aborts a deferred transition whose session moved on (or was
// torn down) before the timer fired. Never surfaced to callers.
var errStaleTimer = errors.New("stale deferred transition")

// SessionManager is the shared machinery under the checkout, distribution
// and redeem services: it loads/saves sessions, serializes mutations per
// session, builds client views, and tracks the pending deferred transition
// of each session so teardown can cancel it.
type SessionManager struct {
	store     ports.SessionStore
	catalog   ports.CatalogRepository
	merchants ports.MerchantDirectory
	users     ports.UserDirectory
	ledger    ports.TransferLedger
	scheduler ports.Scheduler
	cfg       config.CheckoutConfig
	log       zerolog.Logger

	mu      sync.Mutex
	locks   map[uuid.UUID]*sync.Mutex
	pending map[uuid.UUID]pendingTask
}

type pendingTask struct {
	attempt int64
	handle  ports.TaskHandle
}

// NewSessionManager creates the shared session machinery.
func NewSessionManager(
	store ports.SessionStore,
	catalog ports.CatalogRepository,
	merchants ports.MerchantDirectory,
	users ports.UserDirectory,
	ledger ports.TransferLedger,
	scheduler ports.Scheduler,
	cfg config.CheckoutConfig,
	log zerolog.Logger,
) *SessionManager {
	return &SessionManager{
		store:     store,
		catalog:   catalog,
		merchants: merchants,
		users:     users,
		ledger:    ledger,
		scheduler: scheduler,
		cfg:       cfg,
		log:       log,
		locks:     make(map[uuid.UUID]*sync.Mutex),
		pending:   make(map[uuid.UUID]pendingTask),
	}
}

// lock returns the per-session mutex, creating it on first use. The wizard
// is a single-user flow; the mutex reproduces its one-event-at-a-time
// semantics under a concurrent HTTP server.
func (m *SessionManager) lock(id uuid.UUID) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	mu, ok := m.locks[id]
	if !ok {
		mu = &sync.Mutex{}
		m.locks[id] = mu
	}
	return mu
}

// releaseIfGone frees the lock entry for a session that no longer exists
// (TTL expiry, or a request for an id that never did). Without this the
// locks map would grow by one entry per abandoned session and per unknown
// id probed, since TTL expiry never runs teardown.
func (m *SessionManager) releaseIfGone(id uuid.UUID, mu *sync.Mutex) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if current, ok := m.locks[id]; ok && current == mu {
		delete(m.locks, id)
	}
}

// withSession runs fn against the stored session under its lock and saves
// the result. fn errors abort the save.
func (m *SessionManager) withSession(ctx context.Context, id uuid.UUID, fn func(*domain.Session) error) (*ports.SessionView, error) {
	mu := m.lock(id)
	mu.Lock()
	defer mu.Unlock()

	session, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, apperror.ErrSessionStore(err)
	}
	if session == nil {
		m.releaseIfGone(id, mu)
		return nil, apperror.ErrSessionNotFound()
	}

	if err := fn(session); err != nil {
		return nil, err
	}

	session.UpdatedAt = time.Now().UTC()
	if err := m.store.Save(ctx, session); err != nil {
		return nil, apperror.ErrSessionStore(err)
	}
	return m.view(ctx, session)
}

// getSession returns a read-only view without touching the session.
func (m *SessionManager) getSession(ctx context.Context, id uuid.UUID) (*ports.SessionView, error) {
	mu := m.lock(id)
	mu.Lock()
	defer mu.Unlock()

	session, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, apperror.ErrSessionStore(err)
	}
	if session == nil {
		m.releaseIfGone(id, mu)
		return nil, apperror.ErrSessionNotFound()
	}
	return m.view(ctx, session)
}

// view assembles the client-facing snapshot: order summary priced against
// the selected merchant, the staged processing message, and the transfer
// history once the session is in the distribution phase.
func (m *SessionManager) view(ctx context.Context, session *domain.Session) (*ports.SessionView, error) {
	denominations, err := m.catalog.ListDenominations(ctx)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	var merchant *domain.SubMerchant
	if session.MerchantID != "" {
		merchant, err = m.merchants.GetMerchant(ctx, session.MerchantID)
		if err != nil {
			return nil, apperror.InternalError(err)
		}
	}

	v := &ports.SessionView{
		Session:        *session,
		Order:          domain.Summarize(session.Cart, denominations, merchant),
		AllDistributed: session.AllDistributed(),
	}

	if session.Step == domain.StepProcessing && session.ProcessingStartedAt != nil {
		elapsed := time.Now().UTC().Sub(*session.ProcessingStartedAt)
		v.ProcessingMessage = domain.ProcessingMessageAt(elapsed, m.cfg.ProcessingMessageInterval)
	}

	if session.BalanceSet && (session.Step == domain.StepDistribute || session.Step == domain.StepSendToUsers) {
		transfers, err := m.ledger.ListBySession(ctx, session.ID)
		if err != nil {
			return nil, apperror.InternalError(err)
		}
		v.Transfers = transfers
	}

	return v, nil
}

// scheduleTransition queues fn to run for (id, attempt) after delay,
// replacing any previously pending transition for the session.
func (m *SessionManager) scheduleTransition(id uuid.UUID, attempt int64, delay time.Duration, fn func(id uuid.UUID, attempt int64)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.pending[id]; ok {
		prev.handle.Cancel()
		delete(m.pending, id)
	}

	handle := m.scheduler.Schedule(delay, func() {
		m.mu.Lock()
		if current, ok := m.pending[id]; ok && current.attempt == attempt {
			delete(m.pending, id)
		}
		m.mu.Unlock()
		fn(id, attempt)
	})
	m.pending[id] = pendingTask{attempt: attempt, handle: handle}
}

// applyDeferred runs a timer-driven transition. The fn must verify the
// session is still waiting for this attempt and return errStaleTimer
// otherwise; stale fires are dropped silently.
func (m *SessionManager) applyDeferred(id uuid.UUID, attempt int64, fn func(*domain.Session) error) {
	ctx := context.Background()
	_, err := m.withSession(ctx, id, func(session *domain.Session) error {
		if session.Attempt != attempt {
			return errStaleTimer
		}
		return fn(session)
	})
	if err != nil {
		if errors.Is(err, errStaleTimer) {
			m.log.Debug().Str("session_id", id.String()).Int64("attempt", attempt).Msg("deferred transition dropped, session moved on")
			return
		}
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == "WIZ_001" {
			m.log.Debug().Str("session_id", id.String()).Msg("deferred transition dropped, session gone")
			return
		}
		m.log.Error().Err(err).Str("session_id", id.String()).Msg("deferred transition failed")
	}
}

// teardown deletes the session and cancels its pending transition.
func (m *SessionManager) teardown(ctx context.Context, id uuid.UUID) error {
	mu := m.lock(id)
	mu.Lock()
	defer mu.Unlock()

	m.mu.Lock()
	if task, ok := m.pending[id]; ok {
		task.handle.Cancel()
		delete(m.pending, id)
	}
	delete(m.locks, id)
	m.mu.Unlock()

	if err := m.store.Delete(ctx, id); err != nil {
		return apperror.ErrSessionStore(err)
	}
	return nil
}

// purchasedTotal computes the full Mobi value of the cart (the undiscounted
// total: the buyer receives the face value even when paying less).
func (m *SessionManager) purchasedTotal(ctx context.Context, session *domain.Session) (int64, error) {
	denominations, err := m.catalog.ListDenominations(ctx)
	if err != nil {
		return 0, apperror.InternalError(err)
	}
	summary := domain.Summarize(session.Cart, denominations, nil)
	return summary.TotalRegular, nil
}
