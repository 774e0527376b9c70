package redis

import (
	"context"
	"testing"
	"time"

	"mobi-voucher-gateway/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*SessionStore, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	return NewSessionStore(client, ttl), s
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	session := domain.NewSession(domain.SourceFundWallet, true, time.Now().UTC())
	session.Cart.SetQuantity("m500", 3)
	session.Step = domain.StepPayment
	session.MerchantID = "sm-lagos-hub"

	require.NoError(t, store.Save(ctx, session))

	loaded, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, session.ID, loaded.ID)
	assert.Equal(t, domain.StepPayment, loaded.Step)
	assert.Equal(t, domain.SourceFundWallet, loaded.Source)
	assert.True(t, loaded.PreselectedMerchant)
	assert.Equal(t, int64(3), loaded.Cart.Quantity("m500"))
	assert.Equal(t, "sm-lagos-hub", loaded.MerchantID)
}

func TestSessionStore_GetMissing(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	loaded, err := store.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionStore_TTLExpiry(t *testing.T) {
	store, mr := newTestStore(t, time.Second)
	ctx := context.Background()

	session := domain.NewSession("", false, time.Now().UTC())
	require.NoError(t, store.Save(ctx, session))

	mr.FastForward(2 * time.Second)

	loaded, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded, "expired session should be gone")
}

func TestSessionStore_SaveRefreshesTTL(t *testing.T) {
	store, mr := newTestStore(t, 10*time.Second)
	ctx := context.Background()

	session := domain.NewSession("", false, time.Now().UTC())
	require.NoError(t, store.Save(ctx, session))

	mr.FastForward(8 * time.Second)
	require.NoError(t, store.Save(ctx, session))
	mr.FastForward(8 * time.Second)

	loaded, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.NotNil(t, loaded, "save should reset the TTL clock")
}

func TestSessionStore_Delete(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	session := domain.NewSession("", false, time.Now().UTC())
	require.NoError(t, store.Save(ctx, session))
	require.NoError(t, store.Delete(ctx, session.ID))

	loaded, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Deleting again is a no-op.
	require.NoError(t, store.Delete(ctx, session.ID))
}
