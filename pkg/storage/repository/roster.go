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

	rostermodel "github.com/ortuman/traffic/pkg/model/roster"
)

// Roster defines roster repository operations.
type Roster interface {
	// UpsertRosterItem inserts or replaces a roster item entity into repository.
	UpsertRosterItem(ctx context.Context, ri *rostermodel.Item) error

	// DeleteRosterItem deletes a roster item entity from repository.
	DeleteRosterItem(ctx context.Context, owner, contact string) error

	// FetchRosterItems fetches from repository all roster item entities associated to a given owner.
	FetchRosterItems(ctx context.Context, owner string) ([]*rostermodel.Item, error)

	// FetchRosterItem fetches from repository a roster item entity.
	// A nil item is returned in case it doesn't exist.
	FetchRosterItem(ctx context.Context, owner, contact string) (*rostermodel.Item, error)
}
