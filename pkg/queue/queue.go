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

package queue

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "queue:"

// Config contains durable queue configuration.
type Config struct {
	// LockTTL is the drain lease duration.
	LockTTL time.Duration `fig:"lock_ttl" default:"3s"`

	// NotifyChannel is the pub/sub channel where queue keys are announced after every push.
	NotifyChannel string `fig:"notify_channel" default:"queue-notify"`

	// KeyspaceEvents makes processors rely on Redis keyspace notifications instead of explicit announcements.
	// Server must be configured with 'notify-keyspace-events El' (or broader).
	KeyspaceEvents bool `fig:"keyspace_events"`

	// DB is the Redis database index used to compose the keyspace events channel name.
	DB int `fig:"-"`
}

// Channel returns the channel processors must subscribe to in order to get notified about pushes.
func (c Config) Channel() string {
	if c.KeyspaceEvents {
		return keyspaceChannel(c.DB)
	}
	return c.NotifyChannel
}

// Queue is a Redis backed per-destination FIFO.
type Queue struct {
	rdb *redis.Client
	cfg Config
}

// New returns a new Queue instance.
func New(rdb *redis.Client, cfg Config) *Queue {
	return &Queue{rdb: rdb, cfg: cfg}
}

// Push appends e to the tail of key queue.
func (q *Queue) Push(ctx context.Context, key string, e Entry) error {
	qk := keyPrefix + key

	if q.cfg.KeyspaceEvents {
		return q.rdb.LPush(ctx, qk, e.Encode()).Err()
	}
	_, err := q.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, qk, e.Encode())
		pipe.Publish(ctx, q.cfg.NotifyChannel, qk)
		return nil
	})
	return err
}

// Peek returns the head of key queue without removing it.
// A nil entry is returned in case the queue is empty.
func (q *Queue) Peek(ctx context.Context, key string) (*Entry, error) {
	raw, err := q.rdb.LIndex(ctx, keyPrefix+key, -1).Result()
	switch {
	case err == nil:
		e, err := DecodeEntry(raw)
		if err != nil {
			return nil, err
		}
		return &e, nil
	case errors.Is(err, redis.Nil):
		return nil, nil
	default:
		return nil, err
	}
}

// Ack removes the head of key queue once it has been processed.
func (q *Queue) Ack(ctx context.Context, key string) error {
	err := q.rdb.RPop(ctx, keyPrefix+key).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}

// Len returns key queue length.
func (q *Queue) Len(ctx context.Context, key string) (int64, error) {
	return q.rdb.LLen(ctx, keyPrefix+key).Result()
}
