package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/qihang-dev/qihang/internal/assessment"
)

// DefaultKeyPrefix namespaces all assessment keys in Redis.
const DefaultKeyPrefix = "qihang:assessment:"

// DefaultSessionTTL bounds how long an unfinished session survives.
const DefaultSessionTTL = 24 * time.Hour

// RedisStore keeps sessions under a TTL and results without one, mirroring
// the file store's durability split.
type RedisStore struct {
	client     *redis.Client
	prefix     string
	sessionTTL time.Duration
}

// RedisOptions configures a RedisStore.
type RedisOptions struct {
	Addr       string
	Password   string
	DB         int
	Prefix     string
	SessionTTL time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return newRedisStore(client, opts), nil
}

// NewRedisStoreFromClient wraps an existing client, used in tests.
func NewRedisStoreFromClient(client *redis.Client, opts RedisOptions) *RedisStore {
	return newRedisStore(client, opts)
}

func newRedisStore(client *redis.Client, opts RedisOptions) *RedisStore {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &RedisStore{client: client, prefix: prefix, sessionTTL: ttl}
}

func (r *RedisStore) sessionKey(id string) string { return r.prefix + "session:" + id }
func (r *RedisStore) resultKey(key string) string { return r.prefix + "result:" + key }

// Save writes the session with its TTL and, on completion, the result with
// no expiry. Both writes go out in one pipeline.
func (r *RedisStore) Save(ctx context.Context, session *assessment.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.sessionKey(session.SessionID), data, r.sessionTTL)
	if session.Completed && session.Result != nil {
		resultData, err := json.Marshal(session.Result)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		pipe.Set(ctx, r.resultKey(session.Key), resultData, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis save: %w", err)
	}
	return nil
}

// FindByID loads a live session.
func (r *RedisStore) FindByID(ctx context.Context, sessionID string) (*assessment.Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var session assessment.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

// FindByKey prefers the durable result; an expired session with a surviving
// result still resolves to a completed session.
func (r *RedisStore) FindByKey(ctx context.Context, key string) (*assessment.Session, error) {
	resultData, err := r.client.Get(ctx, r.resultKey(key)).Bytes()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis get result: %w", err)
	}
	if err == nil {
		var result assessment.Result
		if err := json.Unmarshal(resultData, &result); err != nil {
			return nil, fmt.Errorf("decode result: %w", err)
		}
		session, err := r.FindByID(ctx, key)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				return nil, err
			}
			session = &assessment.Session{SessionID: key, Key: key}
		}
		session.Completed = true
		session.Result = &result
		return session, nil
	}

	return r.FindByID(ctx, key)
}

// Close releases the redis client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
