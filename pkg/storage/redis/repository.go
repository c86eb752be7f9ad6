// Copyright 2022 The jackal Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package redisrepository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"
	presencemodel "github.com/ortuman/traffic/pkg/model/presence"
)

// Type is redis repository type identifier.
const Type = "redis"

const (
	sessionKeyPrefix  = "session:"
	directedKeyPrefix = "presence:"
)

// Config contains Redis repository configuration.
type Config struct {
	Addresses    []string      `fig:"addresses" default:"[localhost:6379]"`
	Username     string        `fig:"username"`
	Password     string        `fig:"password"`
	DB           int           `fig:"db"`
	DialTimeout  time.Duration `fig:"dial_timeout" default:"3s"`
	ReadTimeout  time.Duration `fig:"read_timeout" default:"5s"`
	WriteTimeout time.Duration `fig:"write_timeout" default:"5s"`
}

// Repository stores available sessions and directed presence targets in Redis hashes.
type Repository struct {
	clients []*redis.Client
	logger  kitlog.Logger
}

// New creates and returns an initialized Redis Repository instance.
func New(cfg Config, logger kitlog.Logger) *Repository {
	r := &Repository{logger: kitlog.With(logger, "repository", "redis")}
	for _, addr := range cfg.Addresses {
		r.clients = append(r.clients, redis.NewClient(&redis.Options{
			Addr:         addr,
			Username:     cfg.Username,
			Password:     cfg.Password,
			DB:           cfg.DB,
			DialTimeout:  cfg.DialTimeout,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		}))
	}
	return r
}

// NewWithClients returns a Repository backed by already dialed clients.
func NewWithClients(clients []*redis.Client, logger kitlog.Logger) *Repository {
	return &Repository{clients: clients, logger: logger}
}

// UpsertSession satisfies repository.Session interface.
func (r *Repository) UpsertSession(ctx context.Context, s *presencemodel.Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	k := sessionKey(s.Owner)
	return r.pickClient(k).HSet(ctx, k, s.Resource, b).Err()
}

// DeleteSession satisfies repository.Session interface.
func (r *Repository) DeleteSession(ctx context.Context, owner, resource string) error {
	k := sessionKey(owner)
	return r.pickClient(k).HDel(ctx, k, resource).Err()
}

// FetchSessions satisfies repository.Session interface.
func (r *Repository) FetchSessions(ctx context.Context, owner string) ([]*presencemodel.Session, error) {
	k := sessionKey(owner)
	vals, err := r.pickClient(k).HGetAll(ctx, k).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	ret := make([]*presencemodel.Session, 0, len(vals))
	for res, val := range vals {
		var s presencemodel.Session
		if err := json.Unmarshal([]byte(val), &s); err != nil {
			level.Warn(r.logger).Log("msg", "skipping malformed session entry", "owner", owner, "resource", res, "err", err)
			continue
		}
		s.Owner = owner
		s.Resource = res
		ret = append(ret, &s)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Resource < ret[j].Resource })
	return ret, nil
}

// UpsertDirected satisfies repository.Directed interface.
func (r *Repository) UpsertDirected(ctx context.Context, owner, target string) error {
	k := directedKey(owner)
	return r.pickClient(k).HSet(ctx, k, target, time.Now().UnixMilli()).Err()
}

// DeleteDirected satisfies repository.Directed interface.
func (r *Repository) DeleteDirected(ctx context.Context, owner, target string) error {
	k := directedKey(owner)
	return r.pickClient(k).HDel(ctx, k, target).Err()
}

// HasDirected satisfies repository.Directed interface.
func (r *Repository) HasDirected(ctx context.Context, owner, target string) (bool, error) {
	k := directedKey(owner)
	return r.pickClient(k).HExists(ctx, k, target).Result()
}

// FetchDirected satisfies repository.Directed interface.
func (r *Repository) FetchDirected(ctx context.Context, owner string) ([]string, error) {
	k := directedKey(owner)
	targets, err := r.pickClient(k).HKeys(ctx, k).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	sort.Strings(targets)
	return targets, nil
}

// ClearDirected satisfies repository.Directed interface.
func (r *Repository) ClearDirected(ctx context.Context, owner string) error {
	k := directedKey(owner)
	return r.pickClient(k).Del(ctx, k).Err()
}

// Start verifies every Redis client is reachable.
func (r *Repository) Start(ctx context.Context) error {
	for _, cl := range r.clients {
		if err := cl.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redisrepository: unable to reach %s: %w", cl.Options().Addr, err)
		}
	}
	level.Info(r.logger).Log("msg", "dialed Redis connections", "count", len(r.clients))
	return nil
}

// Stop closes all Redis clients.
func (r *Repository) Stop(_ context.Context) error {
	for _, cl := range r.clients {
		if err := cl.Close(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) pickClient(key string) *redis.Client {
	if len(r.clients) == 1 {
		return r.clients[0]
	}
	cs := xxhash.Sum64String(key)
	idx := jumpHash(cs, len(r.clients))
	return r.clients[idx]
}

func sessionKey(owner string) string  { return sessionKeyPrefix + owner }
func directedKey(owner string) string { return directedKeyPrefix + owner }

// jumpHash maps key into one of n buckets (Lamping & Veach).
func jumpHash(key uint64, n int) int {
	var b, j int64 = -1, 0
	for j < int64(n) {
		b = j
		key = key*2862933555777941757 + 1
		j = int64(float64(b+1) * (float64(int64(1)<<31) / float64((key>>33)+1)))
	}
	return int(b)
}
