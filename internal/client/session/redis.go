package session

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tunnelpanel/internal/client/models"
	"github.com/dmitrijs2005/tunnelpanel/internal/logging"
	"github.com/go-redis/redis/v8"
)

// RedisStore keeps the session in Redis under prefix+"token" and
// prefix+"user", written in one MULTI/EXEC.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	logger logging.Logger
	now    func() time.Time
}

func NewRedisStore(rdb *redis.Client, prefix string, logger logging.Logger) *RedisStore {
	if logger == nil {
		logger = logging.Nop()
	}
	return &RedisStore{rdb: rdb, prefix: prefix, logger: logger, now: time.Now}
}

func (s *RedisStore) keys() (string, string) {
	return s.prefix + KeyToken, s.prefix + KeyUser
}

func (s *RedisStore) Load(ctx context.Context) (*models.Session, error) {
	tk, uk := s.keys()

	vals, err := s.rdb.MGet(ctx, tk, uk).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}

	token, _ := vals[0].(string)
	userJSON, _ := vals[1].(string)

	sess, reason := decode(token, userJSON, s.now())
	if sess == nil && reason != "" {
		s.logger.Warn(ctx, "ignoring stored session", "reason", reason)
	}
	return sess, nil
}

func (s *RedisStore) Save(ctx context.Context, sess *models.Session) error {
	token, userJSON, err := encode(sess)
	if err != nil {
		return err
	}
	tk, uk := s.keys()

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, tk, token, 0)
		pipe.Set(ctx, uk, userJSON, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis save session: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	tk, uk := s.keys()
	if err := s.rdb.Del(ctx, tk, uk).Err(); err != nil {
		return fmt.Errorf("redis clear session: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
