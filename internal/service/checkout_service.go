package service

import (
	"context"
	"time"

	"mobi-voucher-gateway/internal/core/domain"
	"mobi-voucher-gateway/internal/core/ports"
	"mobi-voucher-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CheckoutServiceImpl implements ports.CheckoutService: the wizard state
// machine from voucher selection to the simulated payment and its success
// branches.
type CheckoutServiceImpl struct {
	m   *SessionManager
	log zerolog.Logger
}

// NewCheckoutService creates a new CheckoutServiceImpl.
func NewCheckoutService(m *SessionManager, log zerolog.Logger) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{m: m, log: log}
}

// CreateSession starts a wizard at the voucher selection step. A merchant
// name in the request resolves to the local country's first active
// sub-merchant and skips the country/merchant screens later.
func (s *CheckoutServiceImpl) CreateSession(ctx context.Context, req ports.CreateSessionRequest) (*ports.SessionView, error) {
	session := domain.NewSession(req.Source, false, time.Now().UTC())

	if req.MerchantName != "" {
		country, merchant, err := s.m.merchants.FirstActiveLocalMerchant(ctx)
		if err != nil {
			s.log.Warn().Err(err).Str("merchant", req.MerchantName).Msg("merchant pre-selection failed, continuing without it")
		} else {
			session.PreselectedMerchant = true
			session.CountryID = country.ID
			session.MerchantID = merchant.ID
		}
	}

	if err := s.m.store.Save(ctx, session); err != nil {
		return nil, apperror.ErrSessionStore(err)
	}

	s.log.Info().
		Str("session_id", session.ID.String()).
		Str("source", session.Source).
		Bool("preselected_merchant", session.PreselectedMerchant).
		Msg("checkout session created")

	return s.m.view(ctx, session)
}

// GetSession returns the current session snapshot.
func (s *CheckoutServiceImpl) GetSession(ctx context.Context, id uuid.UUID) (*ports.SessionView, error) {
	return s.m.getSession(ctx, id)
}

// TeardownSession discards the session and cancels any pending deferred
// transition, so no timer mutates state after the wizard is gone.
func (s *CheckoutServiceImpl) TeardownSession(ctx context.Context, id uuid.UUID) error {
	if err := s.m.teardown(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("session_id", id.String()).Msg("checkout session torn down")
	return nil
}

// ToggleVoucher adds a denomination with quantity 1 or removes it entirely.
func (s *CheckoutServiceImpl) ToggleVoucher(ctx context.Context, id uuid.UUID, denominationID string) (*ports.SessionView, error) {
	return s.m.withSession(ctx, id, func(session *domain.Session) error {
		if session.Step != domain.StepVouchers {
			return apperror.ErrInvalidStep("toggle", string(session.Step))
		}
		if err := s.checkDenomination(ctx, denominationID); err != nil {
			return err
		}
		session.Cart.Toggle(denominationID)
		return nil
	})
}

// ChangeQuantity adjusts a cart line by delta; dropping below 1 removes it.
func (s *CheckoutServiceImpl) ChangeQuantity(ctx context.Context, id uuid.UUID, denominationID string, delta int64) (*ports.SessionView, error) {
	return s.m.withSession(ctx, id, func(session *domain.Session) error {
		if session.Step != domain.StepVouchers {
			return apperror.ErrInvalidStep("change-quantity", string(session.Step))
		}
		if err := s.checkDenomination(ctx, denominationID); err != nil {
			return err
		}
		session.Cart.ChangeQuantity(denominationID, delta)
		return nil
	})
}

// SetQuantity sets a cart line directly. Non-positive values keep the
// previous quantity.
func (s *CheckoutServiceImpl) SetQuantity(ctx context.Context, id uuid.UUID, denominationID string, value int64) (*ports.SessionView, error) {
	return s.m.withSession(ctx, id, func(session *domain.Session) error {
		if session.Step != domain.StepVouchers {
			return apperror.ErrInvalidStep("set-quantity", string(session.Step))
		}
		if err := s.checkDenomination(ctx, denominationID); err != nil {
			return err
		}
		session.Cart.SetQuantity(denominationID, value)
		return nil
	})
}

// ClearCart empties the cart.
func (s *CheckoutServiceImpl) ClearCart(ctx context.Context, id uuid.UUID) (*ports.SessionView, error) {
	return s.m.withSession(ctx, id, func(session *domain.Session) error {
		if session.Step != domain.StepVouchers {
			return apperror.ErrInvalidStep("clear", string(session.Step))
		}
		session.Cart.Clear()
		return nil
	})
}

// Continue leaves voucher selection: to the payment step when a merchant is
// pre-selected, to country selection otherwise. Guard: cart non-empty.
func (s *CheckoutServiceImpl) Continue(ctx context.Context, id uuid.UUID) (*ports.SessionView, error) {
	return s.m.withSession(ctx, id, func(session *domain.Session) error {
		if session.Step != domain.StepVouchers {
			return apperror.ErrInvalidStep("continue", string(session.Step))
		}
		if session.Cart.IsEmpty() {
			return apperror.ErrEmptyCart()
		}
		session.Step = session.ContinueTarget()
		return nil
	})
}

// Back resolves the static back table; steps outside it have no back action.
func (s *CheckoutServiceImpl) Back(ctx context.Context, id uuid.UUID) (*ports.SessionView, error) {
	return s.m.withSession(ctx, id, func(session *domain.Session) error {
		target, ok := session.BackStep()
		if !ok {
			return apperror.ErrNoBackAction(string(session.Step))
		}
		session.Step = target
		return nil
	})
}

// SelectCountry picks a country and moves to its merchant list.
func (s *CheckoutServiceImpl) SelectCountry(ctx context.Context, id uuid.UUID, countryID string) (*ports.SessionView, error) {
	return s.m.withSession(ctx, id, func(session *domain.Session) error {
		if session.Step != domain.StepCountries {
			return apperror.ErrInvalidStep("select-country", string(session.Step))
		}
		country, err := s.m.merchants.GetCountry(ctx, countryID)
		if err != nil {
			return apperror.InternalError(err)
		}
		if country == nil {
			return apperror.ErrInvalidSelection("unknown country " + countryID)
		}
		session.CountryID = country.ID
		session.MerchantID = ""
		session.Step = domain.StepMerchants
		return nil
	})
}

// SelectMerchant picks an active sub-merchant of the selected country and
// moves to the payment step.
func (s *CheckoutServiceImpl) SelectMerchant(ctx context.Context, id uuid.UUID, merchantID string) (*ports.SessionView, error) {
	return s.m.withSession(ctx, id, func(session *domain.Session) error {
		if session.Step != domain.StepMerchants {
			return apperror.ErrInvalidStep("select-merchant", string(session.Step))
		}
		country, err := s.m.merchants.GetCountry(ctx, session.CountryID)
		if err != nil {
			return apperror.InternalError(err)
		}
		if country == nil {
			return apperror.ErrInvalidSelection("no country selected")
		}
		for i := range country.Merchants {
			if country.Merchants[i].ID != merchantID {
				continue
			}
			if !country.Merchants[i].Selectable() {
				return apperror.ErrInvalidSelection("merchant " + merchantID + " is not active")
			}
			session.MerchantID = merchantID
			session.Step = domain.StepPayment
			return nil
		}
		return apperror.ErrInvalidSelection("unknown merchant " + merchantID)
	})
}

// Pay enters the simulated processing phase and schedules the transition to
// success. Processing cannot fail: the deferred task always completes the
// payment unless the session moves on first.
func (s *CheckoutServiceImpl) Pay(ctx context.Context, id uuid.UUID) (*ports.SessionView, error) {
	var attempt int64
	view, err := s.m.withSession(ctx, id, func(session *domain.Session) error {
		if session.Step != domain.StepPayment {
			return apperror.ErrInvalidStep("pay", string(session.Step))
		}
		now := time.Now().UTC()
		session.Step = domain.StepProcessing
		session.ProcessingStartedAt = &now
		session.Attempt++
		attempt = session.Attempt
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.m.scheduleTransition(id, attempt, s.m.cfg.ProcessingDelay, s.completeProcessing)
	s.log.Info().Str("session_id", id.String()).Msg("payment processing started")
	return view, nil
}

// completeProcessing is the deferred processing -> success transition. It
// records the purchased balance exactly once.
func (s *CheckoutServiceImpl) completeProcessing(id uuid.UUID, attempt int64) {
	s.m.applyDeferred(id, attempt, func(session *domain.Session) error {
		if session.Step != domain.StepProcessing {
			return errStaleTimer
		}
		total, err := s.m.purchasedTotal(context.Background(), session)
		if err != nil {
			return err
		}
		session.Step = domain.StepSuccess
		session.ProcessingStartedAt = nil
		session.SetPurchasedBalance(total)
		s.log.Info().
			Str("session_id", id.String()).
			Int64("total_mobi", total).
			Msg("payment processed successfully")
		return nil
	})
}

// UseForSelf starts the crediting sub-state on the success step.
func (s *CheckoutServiceImpl) UseForSelf(ctx context.Context, id uuid.UUID) (*ports.SessionView, error) {
	var attempt int64
	view, err := s.m.withSession(ctx, id, func(session *domain.Session) error {
		if session.Step != domain.StepSuccess {
			return apperror.ErrInvalidStep("use-for-self", string(session.Step))
		}
		session.CreditState = domain.CreditCrediting
		session.Attempt++
		attempt = session.Attempt
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.m.scheduleTransition(id, attempt, s.m.cfg.CreditingDelay, s.completeCrediting)
	return view, nil
}

func (s *CheckoutServiceImpl) completeCrediting(id uuid.UUID, attempt int64) {
	s.m.applyDeferred(id, attempt, func(session *domain.Session) error {
		if session.Step != domain.StepSuccess || session.CreditState != domain.CreditCrediting {
			return errStaleTimer
		}
		session.CreditState = domain.CreditCredited
		s.log.Info().Str("session_id", id.String()).Msg("purchased balance credited to own wallet")
		return nil
	})
}

// SendToSomeone moves from success to the distribution step.
func (s *CheckoutServiceImpl) SendToSomeone(ctx context.Context, id uuid.UUID) (*ports.SessionView, error) {
	return s.m.withSession(ctx, id, func(session *domain.Session) error {
		if session.Step != domain.StepSuccess {
			return apperror.ErrInvalidStep("send-to-someone", string(session.Step))
		}
		session.Step = domain.StepDistribute
		return nil
	})
}

// ChooseRecipients picks the recipient list and moves to allocation.
func (s *CheckoutServiceImpl) ChooseRecipients(ctx context.Context, id uuid.UUID, group domain.RecipientGroup) (*ports.SessionView, error) {
	return s.m.withSession(ctx, id, func(session *domain.Session) error {
		if session.Step != domain.StepDistribute {
			return apperror.ErrInvalidStep("choose-recipients", string(session.Step))
		}
		if group != domain.GroupCommunity && group != domain.GroupFriends {
			return apperror.ErrInvalidSelection("unknown recipient group " + string(group))
		}
		session.RecipientGroup = group
		session.SendState = domain.SendIdle
		session.Step = domain.StepSendToUsers
		return nil
	})
}

func (s *CheckoutServiceImpl) checkDenomination(ctx context.Context, denominationID string) error {
	d, err := s.m.catalog.GetDenomination(ctx, denominationID)
	if err != nil {
		return apperror.InternalError(err)
	}
	if d == nil {
		return apperror.ErrUnknownDenomination(denominationID)
	}
	return nil
}
