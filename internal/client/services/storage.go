package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recipebox/internal/client/repositories/kv"
	"github.com/dmitrijs2005/recipebox/internal/logging"
)

// load reads key and decodes it. A missing key, a store read failure or an
// undecodable value all yield def; the latter two are logged.
func load[T any](ctx context.Context, store kv.Store, log logging.Logger, key string, decode func(string) (T, error), def T) T {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		log.Warn(ctx, "store read failed, using default", "key", key, "error", err)
		return def
	}
	if !ok {
		return def
	}
	v, err := decode(raw)
	if err != nil {
		log.Warn(ctx, "unreadable record, using default", "key", key, "error", err)
		return def
	}
	return v
}

// loadForUpdate is load for read-modify-write paths. A missing or
// undecodable value still yields def, but a store read failure is returned so
// the caller aborts instead of overwriting data it could not see.
func loadForUpdate[T any](ctx context.Context, store kv.Store, log logging.Logger, key string, decode func(string) (T, error), def T) (T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return def, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return def, nil
	}
	v, err := decode(raw)
	if err != nil {
		log.Warn(ctx, "unreadable record, using default", "key", key, "error", err)
		return def, nil
	}
	return v, nil
}

// save encodes v and writes it under key.
func save[T any](ctx context.Context, store kv.Store, key string, encode func(T) (string, error), v T) error {
	raw, err := encode(v)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, raw)
}
