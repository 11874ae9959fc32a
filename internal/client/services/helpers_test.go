package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/client/repositories/kv"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store down")

// brokenStore wraps a MemoryStore and fails the selected operations.
type brokenStore struct {
	*kv.MemoryStore
	getErr error
	setErr error
}

func (b *brokenStore) Get(ctx context.Context, key string) (string, bool, error) {
	if b.getErr != nil {
		return "", false, b.getErr
	}
	return b.MemoryStore.Get(ctx, key)
}

func (b *brokenStore) Set(ctx context.Context, key, value string) error {
	if b.setErr != nil {
		return b.setErr
	}
	return b.MemoryStore.Set(ctx, key, value)
}

func (b *brokenStore) SetMany(ctx context.Context, pairs map[string]string) error {
	if b.setErr != nil {
		return b.setErr
	}
	return b.MemoryStore.SetMany(ctx, pairs)
}

func openSQLite(t *testing.T, path string) kv.Store {
	t.Helper()
	s, err := kv.OpenSQLite(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func tempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "recipebox.db")
}

func recipe(id, name string) models.Recipe {
	return models.Recipe{ID: id, Name: name}
}
