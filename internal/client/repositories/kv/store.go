package kv

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/recipebox/internal/common"
	"github.com/dmitrijs2005/recipebox/internal/filex"
	"github.com/redis/go-redis/v9"
)

type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Batcher is implemented by backends that can write several keys at once.
type Batcher interface {
	SetMany(ctx context.Context, pairs map[string]string) error
}

// SetAll writes pairs through SetMany when s supports it, key by key otherwise.
func SetAll(ctx context.Context, s Store, pairs map[string]string) error {
	if b, ok := s.(Batcher); ok {
		return b.SetMany(ctx, pairs)
	}
	for k, v := range pairs {
		if err := s.Set(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Options selects and configures a backend.
type Options struct {
	Backend       string
	DataDir       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// DBFileName is the SQLite file created inside Options.DataDir.
const DBFileName = common.AppName + ".db"

// Open builds the Store described by opts. The redis backend is pinged
// before it is returned.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendSQLite, "":
		dir, err := filex.EnsureDir(opts.DataDir)
		if err != nil {
			return nil, err
		}
		return OpenSQLite(ctx, filepath.Join(dir, DBFileName))

	case BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis ping %s: %w", opts.RedisAddr, err)
		}
		return NewRedisStore(rdb, common.AppName), nil

	case BackendMemory:
		return NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}
