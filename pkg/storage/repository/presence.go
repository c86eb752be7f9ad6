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

package repository

import (
	"context"

	presencemodel "github.com/ortuman/traffic/pkg/model/presence"
)

// Session defines per resource presence repository operations.
type Session interface {
	// UpsertSession inserts or replaces the session entry of an owner's resource.
	UpsertSession(ctx context.Context, s *presencemodel.Session) error

	// DeleteSession deletes the session entry of an owner's resource.
	DeleteSession(ctx context.Context, owner, resource string) error

	// FetchSessions fetches all session entries associated to an owner.
	FetchSessions(ctx context.Context, owner string) ([]*presencemodel.Session, error)
}

// Directed defines directed presence repository operations.
type Directed interface {
	// UpsertDirected records a directed presence sent from owner to target.
	UpsertDirected(ctx context.Context, owner, target string) error

	// DeleteDirected removes a directed presence record.
	DeleteDirected(ctx context.Context, owner, target string) error

	// HasDirected tells whether owner sent a directed presence to target.
	HasDirected(ctx context.Context, owner, target string) (bool, error)

	// FetchDirected fetches all targets owner sent a directed presence to.
	FetchDirected(ctx context.Context, owner string) ([]string, error)

	// ClearDirected removes all directed presence records of owner.
	ClearDirected(ctx context.Context, owner string) error
}

// Last defines last unavailable presence repository operations.
type Last interface {
	// UpsertLast inserts or replaces owner's last unavailable presence.
	UpsertLast(ctx context.Context, last *presencemodel.Last) error

	// FetchLast fetches owner's last unavailable presence.
	// A nil value is returned in case it doesn't exist.
	FetchLast(ctx context.Context, owner string) (*presencemodel.Last, error)

	// DeleteLast deletes owner's last unavailable presence.
	DeleteLast(ctx context.Context, owner string) error
}
