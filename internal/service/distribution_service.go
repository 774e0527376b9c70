package service

import (
	"context"
	"sort"
	"time"

	"mobi-voucher-gateway/internal/core/domain"
	"mobi-voucher-gateway/internal/core/ports"
	"mobi-voucher-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DistributionServiceImpl implements ports.DistributionService: recipient
// allocations against the remaining balance and the append-only transfer
// ledger.
type DistributionServiceImpl struct {
	m   *SessionManager
	log zerolog.Logger
}

// NewDistributionService creates a new DistributionServiceImpl.
func NewDistributionService(m *SessionManager, log zerolog.Logger) *DistributionServiceImpl {
	return &DistributionServiceImpl{m: m, log: log}
}

// Allocate sets the in-progress allocation for a recipient. Overshoot is
// clamped to the remaining headroom, never rejected: the sum of allocations
// can never exceed the remaining balance.
func (s *DistributionServiceImpl) Allocate(ctx context.Context, sessionID uuid.UUID, recipientID string, amount int64) (*ports.SessionView, error) {
	return s.m.withSession(ctx, sessionID, func(session *domain.Session) error {
		if session.Step != domain.StepSendToUsers {
			return apperror.ErrInvalidStep("allocate", string(session.Step))
		}
		recipient, err := s.m.users.GetRecipient(ctx, recipientID)
		if err != nil {
			return apperror.InternalError(err)
		}
		if recipient == nil {
			return apperror.ErrUnknownRecipient(recipientID)
		}
		stored := session.Allocations.Allocate(recipientID, amount, session.RemainingMobi)
		if stored != amount {
			s.log.Debug().
				Str("session_id", sessionID.String()).
				Str("recipient_id", recipientID).
				Int64("requested", amount).
				Int64("stored", stored).
				Msg("allocation clamped")
		}
		return nil
	})
}

// Send commits the in-progress allocations: enters the sending sub-state
// and schedules the deferred commit. Guard: at least one allocation > 0.
func (s *DistributionServiceImpl) Send(ctx context.Context, sessionID uuid.UUID) (*ports.SessionView, error) {
	var attempt int64
	view, err := s.m.withSession(ctx, sessionID, func(session *domain.Session) error {
		if session.Step != domain.StepSendToUsers {
			return apperror.ErrInvalidStep("send", string(session.Step))
		}
		if session.SendState == domain.SendSending {
			return apperror.ErrInvalidStep("send", "sending")
		}
		if session.Allocations.Total() <= 0 {
			return apperror.ErrNothingToSend()
		}
		session.SendState = domain.SendSending
		session.Attempt++
		attempt = session.Attempt
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.m.scheduleTransition(sessionID, attempt, s.m.cfg.SendingDelay, s.completeSending)
	return view, nil
}

// completeSending is the deferred sending -> sent transition: one Transfer
// per non-zero allocation is appended to the ledger (in recipient-id order,
// so a commit's transfers list deterministically), the remaining balance
// drops by the sum sent, and the allocation map is cleared.
func (s *DistributionServiceImpl) completeSending(sessionID uuid.UUID, attempt int64) {
	ctx := context.Background()
	s.m.applyDeferred(sessionID, attempt, func(session *domain.Session) error {
		if session.Step != domain.StepSendToUsers || session.SendState != domain.SendSending {
			return errStaleTimer
		}

		// Stable ledger order: map iteration is randomized.
		recipientIDs := make([]string, 0, len(session.Allocations))
		for recipientID := range session.Allocations {
			recipientIDs = append(recipientIDs, recipientID)
		}
		sort.Strings(recipientIDs)

		now := time.Now().UTC()
		var transfers []domain.Transfer
		var total int64
		for _, recipientID := range recipientIDs {
			amount := session.Allocations[recipientID]
			if amount <= 0 {
				continue
			}
			recipient, err := s.m.users.GetRecipient(ctx, recipientID)
			if err != nil {
				return apperror.InternalError(err)
			}
			transfer := domain.Transfer{
				ID:          uuid.New(),
				SessionID:   session.ID,
				RecipientID: recipientID,
				Amount:      amount,
				CreatedAt:   now,
			}
			if recipient != nil {
				transfer.RecipientName = recipient.Name
				transfer.RecipientAvatar = recipient.Avatar
			}
			transfers = append(transfers, transfer)
			total += amount
		}

		if err := s.m.ledger.Append(ctx, transfers); err != nil {
			return apperror.InternalError(err)
		}

		session.RemainingMobi -= total
		session.Allocations.Clear()
		session.SendState = domain.SendSent

		s.log.Info().
			Str("session_id", sessionID.String()).
			Int("transfers", len(transfers)).
			Int64("total_sent", total).
			Int64("remaining_mobi", session.RemainingMobi).
			Msg("distribution committed")
		return nil
	})
}

// ListTransfers returns the session's committed transfers in append order.
func (s *DistributionServiceImpl) ListTransfers(ctx context.Context, sessionID uuid.UUID) ([]domain.Transfer, error) {
	session, err := s.m.store.Get(ctx, sessionID)
	if err != nil {
		return nil, apperror.ErrSessionStore(err)
	}
	if session == nil {
		return nil, apperror.ErrSessionNotFound()
	}
	transfers, err := s.m.ledger.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return transfers, nil
}
