package service

import (
	"context"
	"testing"
	"time"

	"mobi-voucher-gateway/config"
	"mobi-voucher-gateway/internal/adapter/storage/memory"
	redisstore "mobi-voucher-gateway/internal/adapter/storage/redis"
	"mobi-voucher-gateway/internal/core/domain"
	"mobi-voucher-gateway/internal/core/ports"
	"mobi-voucher-gateway/internal/timer"
	"mobi-voucher-gateway/pkg/apperror"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// harness wires the services over real adapters: miniredis-backed session
// store, seeded in-memory directories, and a manual scheduler so tests fire
// deferred transitions deterministically.
type harness struct {
	checkout *CheckoutServiceImpl
	dist     *DistributionServiceImpl
	redeem   *RedeemServiceImpl
	manager  *SessionManager
	sched    *timer.Manual
	store    ports.SessionStore
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	store := redisstore.NewSessionStore(client, time.Hour)

	cfg := config.CheckoutConfig{
		ProcessingDelay:           10 * time.Millisecond,
		ProcessingMessageInterval: 800 * time.Millisecond,
		RedeemDelay:               10 * time.Millisecond,
		CreditingDelay:            10 * time.Millisecond,
		SendingDelay:              10 * time.Millisecond,
		RedeemValue:               500,
		SessionTTL:                time.Hour,
	}

	sched := timer.NewManual()
	log := zerolog.Nop()
	manager := NewSessionManager(
		store,
		memory.NewCatalogRepo(),
		memory.NewMerchantRepo(),
		memory.NewUserRepo(),
		memory.NewTransferLedger(),
		sched,
		cfg,
		log,
	)

	return &harness{
		checkout: NewCheckoutService(manager, log),
		dist:     NewDistributionService(manager, log),
		redeem:   NewRedeemService(manager, log),
		manager:  manager,
		sched:    sched,
		store:    store,
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

// driveToSuccess walks a fresh session to the success step with a purchased
// balance of 5000 Mobi (ten m500 vouchers through sm-lagos-hub).
func driveToSuccess(t *testing.T, h *harness) *ports.SessionView {
	t.Helper()
	ctx := context.Background()

	view, err := h.checkout.CreateSession(ctx, ports.CreateSessionRequest{})
	require.NoError(t, err)
	id := view.Session.ID

	_, err = h.checkout.ToggleVoucher(ctx, id, "m500")
	require.NoError(t, err)
	_, err = h.checkout.SetQuantity(ctx, id, "m500", 10)
	require.NoError(t, err)
	_, err = h.checkout.Continue(ctx, id)
	require.NoError(t, err)
	_, err = h.checkout.SelectCountry(ctx, id, "ng")
	require.NoError(t, err)
	_, err = h.checkout.SelectMerchant(ctx, id, "sm-lagos-hub")
	require.NoError(t, err)
	_, err = h.checkout.Pay(ctx, id)
	require.NoError(t, err)

	require.Equal(t, 1, h.sched.Fire())

	view, err = h.checkout.GetSession(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.StepSuccess, view.Session.Step)
	require.Equal(t, int64(5000), view.Session.TotalMobi)
	require.Equal(t, int64(5000), view.Session.RemainingMobi)
	return view
}

func TestCreateSession_StartsAtVouchers(t *testing.T) {
	h := newHarness(t)

	view, err := h.checkout.CreateSession(context.Background(), ports.CreateSessionRequest{Source: domain.SourceFundWallet})
	require.NoError(t, err)

	assert.Equal(t, domain.StepVouchers, view.Session.Step)
	assert.Equal(t, domain.SourceFundWallet, view.Session.Source)
	assert.False(t, view.Session.PreselectedMerchant)
	assert.True(t, view.Session.Cart.IsEmpty())
}

func TestCreateSession_PreselectsLocalMerchant(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	view, err := h.checkout.CreateSession(ctx, ports.CreateSessionRequest{MerchantName: "Lagos Voucher Hub"})
	require.NoError(t, err)

	assert.True(t, view.Session.PreselectedMerchant)
	assert.Equal(t, "ng", view.Session.CountryID)
	assert.Equal(t, "sm-lagos-hub", view.Session.MerchantID)

	// Continue now skips the country and merchant screens.
	id := view.Session.ID
	_, err = h.checkout.ToggleVoucher(ctx, id, "m1000")
	require.NoError(t, err)
	view, err = h.checkout.Continue(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StepPayment, view.Session.Step)

	// Back from payment returns straight to voucher selection.
	view, err = h.checkout.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StepVouchers, view.Session.Step)
}

func TestCartOperations(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	view, err := h.checkout.CreateSession(ctx, ports.CreateSessionRequest{})
	require.NoError(t, err)
	id := view.Session.ID

	view, err = h.checkout.ToggleVoucher(ctx, id, "m500")
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.Session.Cart.Quantity("m500"))

	view, err = h.checkout.ChangeQuantity(ctx, id, "m500", 4)
	require.NoError(t, err)
	assert.Equal(t, int64(5), view.Session.Cart.Quantity("m500"))

	// Dropping below 1 removes the line.
	view, err = h.checkout.ChangeQuantity(ctx, id, "m500", -5)
	require.NoError(t, err)
	assert.True(t, view.Session.Cart.IsEmpty())

	view, err = h.checkout.SetQuantity(ctx, id, "m200", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), view.Session.Cart.Quantity("m200"))

	view, err = h.checkout.ClearCart(ctx, id)
	require.NoError(t, err)
	assert.True(t, view.Session.Cart.IsEmpty())

	_, err = h.checkout.ToggleVoucher(ctx, id, "no-such-denomination")
	assertCode(t, err, "CART_001")
}

func TestContinue_EmptyCartRejected(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	view, err := h.checkout.CreateSession(ctx, ports.CreateSessionRequest{})
	require.NoError(t, err)

	_, err = h.checkout.Continue(ctx, view.Session.ID)
	assertCode(t, err, "WIZ_003")
}

func TestStepGuards(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	view, err := h.checkout.CreateSession(ctx, ports.CreateSessionRequest{})
	require.NoError(t, err)
	id := view.Session.ID

	// No back action exists from the first step.
	_, err = h.checkout.Back(ctx, id)
	assertCode(t, err, "WIZ_004")

	// Events outside the current step are rejected.
	_, err = h.checkout.Pay(ctx, id)
	assertCode(t, err, "WIZ_002")
	_, err = h.checkout.SelectCountry(ctx, id, "ng")
	assertCode(t, err, "WIZ_002")
	_, err = h.checkout.SendToSomeone(ctx, id)
	assertCode(t, err, "WIZ_002")

	// Cart mutations lock once voucher selection is left.
	_, err = h.checkout.ToggleVoucher(ctx, id, "m500")
	require.NoError(t, err)
	_, err = h.checkout.Continue(ctx, id)
	require.NoError(t, err)
	_, err = h.checkout.ToggleVoucher(ctx, id, "m500")
	assertCode(t, err, "WIZ_002")
}

func TestSelectMerchant_Validation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	view, err := h.checkout.CreateSession(ctx, ports.CreateSessionRequest{})
	require.NoError(t, err)
	id := view.Session.ID

	_, err = h.checkout.ToggleVoucher(ctx, id, "m500")
	require.NoError(t, err)
	_, err = h.checkout.Continue(ctx, id)
	require.NoError(t, err)
	_, err = h.checkout.SelectCountry(ctx, id, "xx")
	assertCode(t, err, "WIZ_005")
	_, err = h.checkout.SelectCountry(ctx, id, "ng")
	require.NoError(t, err)

	// Inactive and foreign merchants are both rejected.
	_, err = h.checkout.SelectMerchant(ctx, id, "sm-ph-depot")
	assertCode(t, err, "WIZ_005")
	_, err = h.checkout.SelectMerchant(ctx, id, "sm-accra-point")
	assertCode(t, err, "WIZ_005")

	view, err = h.checkout.SelectMerchant(ctx, id, "sm-abuja-mart")
	require.NoError(t, err)
	assert.Equal(t, domain.StepPayment, view.Session.Step)
}

func TestPay_ProcessingThenSuccess(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	view, err := h.checkout.CreateSession(ctx, ports.CreateSessionRequest{})
	require.NoError(t, err)
	id := view.Session.ID

	_, err = h.checkout.SetQuantity(ctx, id, "m500", 10)
	require.NoError(t, err)
	_, err = h.checkout.Continue(ctx, id)
	require.NoError(t, err)
	_, err = h.checkout.SelectCountry(ctx, id, "ng")
	require.NoError(t, err)
	_, err = h.checkout.SelectMerchant(ctx, id, "sm-lagos-hub")
	require.NoError(t, err)

	view, err = h.checkout.Pay(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StepProcessing, view.Session.Step)
	assert.Equal(t, "Contacting merchant...", view.ProcessingMessage)
	assert.False(t, view.Session.BalanceSet)
	// The order pays the discounted amount; the balance is face value.
	assert.Equal(t, int64(4000), view.Order.TotalToPay)

	require.Equal(t, 1, h.sched.Fire())

	view, err = h.checkout.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSuccess, view.Session.Step)
	assert.True(t, view.Session.BalanceSet)
	assert.Equal(t, int64(5000), view.Session.TotalMobi)
	assert.Equal(t, int64(5000), view.Session.RemainingMobi)
	assert.Nil(t, view.Session.ProcessingStartedAt)
}

func TestTeardown_CancelsPendingTransition(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	view := driveToSuccess(t, h)
	id := view.Session.ID

	// Start crediting, then tear the session down before the timer fires.
	_, err := h.checkout.UseForSelf(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 1, h.sched.Pending())

	require.NoError(t, h.checkout.TeardownSession(ctx, id))
	assert.Zero(t, h.sched.Fire(), "cancelled task must not run")

	_, err = h.checkout.GetSession(ctx, id)
	assertCode(t, err, "WIZ_001")
}

func TestStaleTimer_DoesNotMutateSession(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	view, err := h.checkout.CreateSession(ctx, ports.CreateSessionRequest{})
	require.NoError(t, err)
	id := view.Session.ID

	_, err = h.checkout.ToggleVoucher(ctx, id, "m500")
	require.NoError(t, err)
	_, err = h.checkout.Continue(ctx, id)
	require.NoError(t, err)
	_, err = h.checkout.SelectCountry(ctx, id, "ng")
	require.NoError(t, err)
	_, err = h.checkout.SelectMerchant(ctx, id, "sm-lagos-hub")
	require.NoError(t, err)
	view, err = h.checkout.Pay(ctx, id)
	require.NoError(t, err)

	// A fire carrying a stale attempt id is dropped.
	h.checkout.completeProcessing(id, view.Session.Attempt+1)

	view, err = h.checkout.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StepProcessing, view.Session.Step)
	assert.False(t, view.Session.BalanceSet)
}

func TestUseForSelf_CreditingToCredited(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	view := driveToSuccess(t, h)
	id := view.Session.ID

	view, err := h.checkout.UseForSelf(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.CreditCrediting, view.Session.CreditState)

	require.Equal(t, 1, h.sched.Fire())

	view, err = h.checkout.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.CreditCredited, view.Session.CreditState)
	// Crediting never touches the distributable balance.
	assert.Equal(t, int64(5000), view.Session.RemainingMobi)
}

func TestChooseRecipients_GroupValidation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	view := driveToSuccess(t, h)
	id := view.Session.ID

	_, err := h.checkout.SendToSomeone(ctx, id)
	require.NoError(t, err)

	_, err = h.checkout.ChooseRecipients(ctx, id, domain.RecipientGroup("strangers"))
	assertCode(t, err, "WIZ_005")

	view, err = h.checkout.ChooseRecipients(ctx, id, domain.GroupFriends)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSendToUsers, view.Session.Step)
	assert.Equal(t, domain.GroupFriends, view.Session.RecipientGroup)
	assert.Equal(t, domain.SendIdle, view.Session.SendState)
}

func TestUnknownSession(t *testing.T) {
	h := newHarness(t)

	_, err := h.checkout.GetSession(context.Background(), uuid.New())
	assertCode(t, err, "WIZ_001")
}

func heldLocks(m *SessionManager) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}

func TestGoneSession_ReleasesLockEntry(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// Probing ids that never existed must not accumulate lock entries.
	for i := 0; i < 5; i++ {
		_, err := h.checkout.GetSession(ctx, uuid.New())
		assertCode(t, err, "WIZ_001")
	}
	assert.Zero(t, heldLocks(h.manager))

	// A session that expired out of the store (the abandoned-wizard path,
	// which never runs an explicit teardown) frees its entry on next touch.
	view, err := h.checkout.CreateSession(ctx, ports.CreateSessionRequest{})
	require.NoError(t, err)
	id := view.Session.ID
	_, err = h.checkout.ToggleVoucher(ctx, id, "m500")
	require.NoError(t, err)
	assert.Equal(t, 1, heldLocks(h.manager))

	require.NoError(t, h.store.Delete(ctx, id))
	_, err = h.checkout.GetSession(ctx, id)
	assertCode(t, err, "WIZ_001")
	assert.Zero(t, heldLocks(h.manager))
}
