package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pkgerrors "github.com/Alberto-Moura/pedidos-backend/pkg/errors"
	"github.com/Alberto-Moura/pedidos-backend/pkg/redis"
)

type redisCommands interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	SessionKey(sessionID string) string
}

// RedisStore keeps session state in Redis so multiple instances can share
// order sessions.
type RedisStore struct {
	client redisCommands
	ttl    time.Duration
}

// NewRedisStore builds a Redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*OrderState, error) {
	raw, err := r.client.Get(ctx, r.client.SessionKey(sessionID))
	if err != nil {
		if redis.IsNotFound(err) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading session state")
	}
	var state OrderState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decoding session state")
	}
	if state.Quantities == nil {
		state.Quantities = map[string]int{}
	}
	return &state, nil
}

func (r *RedisStore) Put(ctx context.Context, sessionID string, state *OrderState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding session state")
	}
	if err := r.client.Set(ctx, r.client.SessionKey(sessionID), string(raw), r.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storing session state")
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.client.SessionKey(sessionID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting session state")
	}
	return nil
}
