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

package redislocker

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/ortuman/traffic/pkg/locker"
)

const keyPrefix = "lock:"

var (
	extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)
	releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)
)

type redisLock struct {
	rdb   *redis.Client
	key   string
	token string
}

func (l *redisLock) Extend(ctx context.Context, ttl time.Duration) error {
	n, err := extendScript.Run(ctx, l.rdb, []string{l.key}, l.token, ttl.Milliseconds()).Int()
	if err != nil {
		return err
	}
	if n == 0 {
		return locker.ErrLost
	}
	return nil
}

func (l *redisLock) Release(ctx context.Context) error {
	n, err := releaseScript.Run(ctx, l.rdb, []string{l.key}, l.token).Int()
	if err != nil {
		return err
	}
	if n == 0 {
		return locker.ErrLost
	}
	return nil
}

// Locker defines a Redis locker.Locker implementation.
// Each acquired lease is identified by a random token so that only its owner can extend or release it.
type Locker struct {
	rdb *redis.Client
}

// New returns a new initialized Redis locker.
func New(rdb *redis.Client) *Locker {
	return &Locker{rdb: rdb}
}

// AcquireLock satisfies locker.Locker interface.
func (l *Locker) AcquireLock(ctx context.Context, lockID string, ttl time.Duration) (locker.Lock, error) {
	key := keyPrefix + lockID
	token := uuid.New().String()

	ok, err := l.rdb.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, locker.ErrNotAcquired
	}
	return &redisLock{rdb: l.rdb, key: key, token: token}, nil
}
