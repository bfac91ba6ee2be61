package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/tunnelpanel/internal/logging"
	"github.com/go-redis/redis/v8"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Options selects and configures a Store backend.
type Options struct {
	Backend     string
	SQLitePath  string
	RedisAddr   string
	RedisPrefix string
}

// Open builds the Store selected by opts.Backend (sqlite by default).
func Open(ctx context.Context, opts Options, logger logging.Logger) (Store, error) {
	switch opts.Backend {
	case "", BackendSQLite:
		if dir := filepath.Dir(opts.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, fmt.Errorf("creating session directory: %w", err)
			}
		}
		db, err := InitDatabase(ctx, opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(db, logger), nil

	case BackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: opts.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis ping %s: %w", opts.RedisAddr, err)
		}
		return NewRedisStore(rdb, opts.RedisPrefix, logger), nil

	default:
		return nil, fmt.Errorf("unknown session backend %q", opts.Backend)
	}
}
