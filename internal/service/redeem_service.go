package service

import (
	"context"

	"mobi-voucher-gateway/internal/core/domain"
	"mobi-voucher-gateway/internal/core/ports"
	"mobi-voucher-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RedeemServiceImpl implements ports.RedeemService: the redeem-by-PIN
// branch of the wizard.
type RedeemServiceImpl struct {
	m   *SessionManager
	log zerolog.Logger
}

// NewRedeemService creates a new RedeemServiceImpl.
func NewRedeemService(m *SessionManager, log zerolog.Logger) *RedeemServiceImpl {
	return &RedeemServiceImpl{m: m, log: log}
}

// StartRedeem branches from voucher selection to PIN entry.
func (s *RedeemServiceImpl) StartRedeem(ctx context.Context, sessionID uuid.UUID) (*ports.SessionView, error) {
	return s.m.withSession(ctx, sessionID, func(session *domain.Session) error {
		if session.Step != domain.StepVouchers {
			return apperror.ErrInvalidStep("redeem", string(session.Step))
		}
		session.Step = domain.StepRedeemPin
		return nil
	})
}

// SubmitPin validates the 16-digit PIN and enters the simulated redeem
// processing. An invalid PIN leaves the step unchanged.
func (s *RedeemServiceImpl) SubmitPin(ctx context.Context, sessionID uuid.UUID, pin string) (*ports.SessionView, error) {
	var attempt int64
	view, err := s.m.withSession(ctx, sessionID, func(session *domain.Session) error {
		if session.Step != domain.StepRedeemPin {
			return apperror.ErrInvalidStep("submit-pin", string(session.Step))
		}
		if !domain.ValidRedeemPin(pin) {
			return apperror.ErrInvalidPin()
		}
		session.Step = domain.StepRedeemProcessing
		session.Attempt++
		attempt = session.Attempt
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.m.scheduleTransition(sessionID, attempt, s.m.cfg.RedeemDelay, s.completeRedeem)
	s.log.Info().Str("session_id", sessionID.String()).Msg("redeem processing started")
	return view, nil
}

// completeRedeem is the deferred redeemProcessing -> redeemSuccess
// transition; it credits the configured redeem value.
func (s *RedeemServiceImpl) completeRedeem(sessionID uuid.UUID, attempt int64) {
	s.m.applyDeferred(sessionID, attempt, func(session *domain.Session) error {
		if session.Step != domain.StepRedeemProcessing {
			return errStaleTimer
		}
		session.Step = domain.StepRedeemSuccess
		session.RedeemedMobi = s.m.cfg.RedeemValue
		s.log.Info().
			Str("session_id", sessionID.String()).
			Int64("redeemed_mobi", session.RedeemedMobi).
			Msg("voucher PIN redeemed")
		return nil
	})
}
