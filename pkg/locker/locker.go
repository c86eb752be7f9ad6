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

package locker

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotAcquired is returned when a lock is already owned by someone else.
	ErrNotAcquired = errors.New("locker: lock not acquired")

	// ErrLost is returned when a lock lease expired or was taken over before being extended or released.
	ErrLost = errors.New("locker: lock lost")
)

// Lock represents a lease-based acquired lock.
type Lock interface {
	// Extend renews the lease for another ttl period.
	Extend(ctx context.Context, ttl time.Duration) error

	// Release releases the lock.
	Release(ctx context.Context) error
}

// Locker defines distributed lease-lock service.
type Locker interface {
	// AcquireLock tries to acquire lockID lease for a ttl period.
	// It doesn't wait for the lock to become available, ErrNotAcquired is returned instead.
	AcquireLock(ctx context.Context, lockID string, ttl time.Duration) (Lock, error)
}
