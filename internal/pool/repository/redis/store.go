// Package redis persists pool records as JSON documents in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	goredis "github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

const defaultPrefix = "giftpool"

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Store keeps each pool under <prefix>:pool:<id>, an index of ids ordered by
// creation time in <prefix>:pools and the id counter in <prefix>:pool-counter.
type Store struct {
	client  goredis.UniversalClient
	prefix  string
	metrics Metrics
}

// New builds a store. An empty prefix defaults to "giftpool".
func New(client goredis.UniversalClient, prefix string, metrics Metrics) *Store {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Store{client: client, prefix: prefix, metrics: metrics}
}

// Dial connects to addr and verifies the connection.
func Dial(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (s *Store) poolKey(id string) string { return s.prefix + ":pool:" + id }
func (s *Store) indexKey() string         { return s.prefix + ":pools" }
func (s *Store) counterKey() string       { return s.prefix + ":pool-counter" }

func (s *Store) Get(ctx context.Context, id string) (p model.Pool, found bool, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("get", err, started)
	}()

	raw, err := s.client.Get(ctx, s.poolKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return model.Pool{}, false, nil
	}
	if err != nil {
		return model.Pool{}, false, fmt.Errorf("get pool %s: %w", id, err)
	}
	if err = json.Unmarshal(raw, &p); err != nil {
		return model.Pool{}, false, fmt.Errorf("decode pool %s: %w", id, err)
	}
	return p, true, nil
}

// List returns pools in creation order. Index entries whose document is gone are ignored.
func (s *Store) List(ctx context.Context) (pools []model.Pool, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("list", err, started)
	}()

	ids, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list pool ids: %w", err)
	}
	if len(ids) == 0 {
		return []model.Pool{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.poolKey(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load pools: %w", err)
	}

	pools = make([]model.Pool, 0, len(values))
	for i, v := range values {
		str, ok := v.(string)
		if !ok {
			continue
		}
		var p model.Pool
		if err = json.Unmarshal([]byte(str), &p); err != nil {
			return nil, fmt.Errorf("decode pool %s: %w", ids[i], err)
		}
		pools = append(pools, p)
	}
	return pools, nil
}

func (s *Store) Upsert(ctx context.Context, p model.Pool) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("upsert", err, started)
	}()

	if p.ID == "" {
		return errors.New("upsert pool: empty id")
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode pool %s: %w", p.ID, err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, s.poolKey(p.ID), raw, 0)
		pipe.ZAddNX(ctx, s.indexKey(), goredis.Z{
			Score:  float64(p.CreatedAt.UnixMilli()),
			Member: p.ID,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("store pool %s: %w", p.ID, err)
	}
	return nil
}

func (s *Store) NextID(ctx context.Context) (id string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("next_id", err, started)
	}()

	n, err := s.client.Incr(ctx, s.counterKey()).Result()
	if err != nil {
		return "", fmt.Errorf("increment pool counter: %w", err)
	}
	return fmt.Sprintf("pool-%d", n), nil
}
