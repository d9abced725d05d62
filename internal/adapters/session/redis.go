package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/csg33k/hrms-lite/internal/domain"
)

// RedisStore keeps each page's state as JSON under hrms:session:{id}:{page}.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) LoadEmployees(ctx context.Context, sessionID string) (*domain.EmployeesPageState, error) {
	return getJSON[domain.EmployeesPageState](ctx, s.rdb, Key(sessionID, PageEmployees))
}

func (s *RedisStore) SaveEmployees(ctx context.Context, sessionID string, st *domain.EmployeesPageState) error {
	return s.setJSON(ctx, Key(sessionID, PageEmployees), st)
}

func (s *RedisStore) LoadAttendance(ctx context.Context, sessionID string) (*domain.AttendancePageState, error) {
	return getJSON[domain.AttendancePageState](ctx, s.rdb, Key(sessionID, PageAttendance))
}

func (s *RedisStore) SaveAttendance(ctx context.Context, sessionID string, st *domain.AttendancePageState) error {
	return s.setJSON(ctx, Key(sessionID, PageAttendance), st)
}

// getJSON decodes the value at key; a missing key yields the zero value.
func getJSON[T any](ctx context.Context, rdb *redis.Client, key string) (*T, error) {
	raw, err := rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return new(T), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	v := new(T)
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return v, nil
}

func (s *RedisStore) setJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.rdb.Set(ctx, key, string(b), s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Connect opens a redis client and pings it, retrying up to maxRetries times.
func Connect(ctx context.Context, addr string, maxRetries int, wait time.Duration) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		if lastErr = rdb.Ping(ctx).Err(); lastErr == nil {
			return rdb, nil
		}
		select {
		case <-ctx.Done():
			_ = rdb.Close()
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	_ = rdb.Close()
	return nil, fmt.Errorf("redis connection failed after %d retries: %w", maxRetries, lastErr)
}
