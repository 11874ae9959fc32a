package services

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/client/records"
	"github.com/dmitrijs2005/recipebox/internal/client/repositories/kv"
	"github.com/dmitrijs2005/recipebox/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionState_String(t *testing.T) {
	assert.Equal(t, "init", SessionInit.String())
	assert.Equal(t, "active", SessionActive.String())
	assert.Equal(t, "cleared", SessionCleared.String())
	assert.Equal(t, "unknown", SessionState(42).String())
}

func TestSession_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewSession(kv.NewMemoryStore(), logging.Nop())
	assert.Equal(t, SessionInit, s.State())

	assert.Nil(t, s.Current(ctx))
	assert.Equal(t, SessionCleared, s.State())

	u := models.User{ID: "1", Email: "a@b.com", Name: "Ann"}
	require.NoError(t, s.Start(ctx, u))
	assert.Equal(t, SessionActive, s.State())
	assert.Equal(t, u, *s.Current(ctx))

	require.NoError(t, s.Clear(ctx))
	assert.Equal(t, SessionCleared, s.State())
	assert.Nil(t, s.Current(ctx))
}

func TestSession_CurrentReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewSession(kv.NewMemoryStore(), logging.Nop())
	require.NoError(t, s.Start(ctx, models.User{ID: "1", Name: "Ann"}))

	s.Current(ctx).Name = "Mallory"
	assert.Equal(t, "Ann", s.Current(ctx).Name)
}

func TestSession_CorruptRecordIsNoSession(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, records.KeyCurrentUser, "{not json"))

	s := NewSession(store, logging.Nop())
	assert.Nil(t, s.Current(ctx))
	assert.Equal(t, SessionCleared, s.State())
}

func TestSession_StartFailureKeepsPreviousState(t *testing.T) {
	ctx := context.Background()
	store := &brokenStore{MemoryStore: kv.NewMemoryStore(), setErr: errStoreDown}
	s := NewSession(store, logging.Nop())

	require.ErrorIs(t, s.Start(ctx, models.User{ID: "1"}), errStoreDown)
	assert.Nil(t, s.Current(ctx))
}

func TestSession_StartAndClearStayConsistent(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	s := NewSession(store, logging.Nop())

	for i := 0; i < 50; i++ {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Start(ctx, models.User{ID: "1", Name: "Ann"})
		}()
		go func() {
			defer wg.Done()
			_ = s.Clear(ctx)
		}()
		wg.Wait()

		_, persisted, err := store.Get(ctx, records.KeyCurrentUser)
		require.NoError(t, err)
		assert.Equal(t, persisted, s.Current(ctx) != nil, "iteration %d", i)
	}
}
