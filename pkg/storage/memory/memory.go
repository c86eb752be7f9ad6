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

package memoryrepository

import (
	"context"
	"sort"
	"sync"

	presencemodel "github.com/ortuman/traffic/pkg/model/presence"
	rostermodel "github.com/ortuman/traffic/pkg/model/roster"
)

// Type is the in-memory repository type identifier.
const Type = "memory"

// Repository is an in-memory Repository implementation.
type Repository struct {
	mu       sync.RWMutex
	roster   map[string]map[string]rostermodel.Item
	sessions map[string]map[string]presencemodel.Session
	directed map[string]map[string]struct{}
	last     map[string]presencemodel.Last
}

// New returns an empty in-memory Repository.
func New() *Repository {
	return &Repository{
		roster:   make(map[string]map[string]rostermodel.Item),
		sessions: make(map[string]map[string]presencemodel.Session),
		directed: make(map[string]map[string]struct{}),
		last:     make(map[string]presencemodel.Last),
	}
}

// UpsertRosterItem satisfies repository.Roster interface.
func (r *Repository) UpsertRosterItem(_ context.Context, ri *rostermodel.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.roster[ri.Owner]
	if items == nil {
		items = make(map[string]rostermodel.Item)
		r.roster[ri.Owner] = items
	}
	items[ri.Contact] = copyItem(ri)
	return nil
}

// DeleteRosterItem satisfies repository.Roster interface.
func (r *Repository) DeleteRosterItem(_ context.Context, owner, contact string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.roster[owner], contact)
	if len(r.roster[owner]) == 0 {
		delete(r.roster, owner)
	}
	return nil
}

// FetchRosterItems satisfies repository.Roster interface.
func (r *Repository) FetchRosterItems(_ context.Context, owner string) ([]*rostermodel.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.roster[owner]
	ret := make([]*rostermodel.Item, 0, len(items))
	for _, ri := range items {
		ci := copyItem(&ri)
		ret = append(ret, &ci)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Contact < ret[j].Contact })
	return ret, nil
}

// FetchRosterItem satisfies repository.Roster interface.
func (r *Repository) FetchRosterItem(_ context.Context, owner, contact string) (*rostermodel.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ri, ok := r.roster[owner][contact]
	if !ok {
		return nil, nil
	}
	ci := copyItem(&ri)
	return &ci, nil
}

// UpsertSession satisfies repository.Session interface.
func (r *Repository) UpsertSession(_ context.Context, s *presencemodel.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions := r.sessions[s.Owner]
	if sessions == nil {
		sessions = make(map[string]presencemodel.Session)
		r.sessions[s.Owner] = sessions
	}
	sessions[s.Resource] = *s
	return nil
}

// DeleteSession satisfies repository.Session interface.
func (r *Repository) DeleteSession(_ context.Context, owner, resource string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions[owner], resource)
	if len(r.sessions[owner]) == 0 {
		delete(r.sessions, owner)
	}
	return nil
}

// FetchSessions satisfies repository.Session interface.
func (r *Repository) FetchSessions(_ context.Context, owner string) ([]*presencemodel.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := r.sessions[owner]
	ret := make([]*presencemodel.Session, 0, len(sessions))
	for _, s := range sessions {
		cs := s
		ret = append(ret, &cs)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Resource < ret[j].Resource })
	return ret, nil
}

// UpsertDirected satisfies repository.Directed interface.
func (r *Repository) UpsertDirected(_ context.Context, owner, target string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	targets := r.directed[owner]
	if targets == nil {
		targets = make(map[string]struct{})
		r.directed[owner] = targets
	}
	targets[target] = struct{}{}
	return nil
}

// DeleteDirected satisfies repository.Directed interface.
func (r *Repository) DeleteDirected(_ context.Context, owner, target string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.directed[owner], target)
	return nil
}

// HasDirected satisfies repository.Directed interface.
func (r *Repository) HasDirected(_ context.Context, owner, target string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.directed[owner][target]
	return ok, nil
}

// FetchDirected satisfies repository.Directed interface.
func (r *Repository) FetchDirected(_ context.Context, owner string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ret []string
	for target := range r.directed[owner] {
		ret = append(ret, target)
	}
	sort.Strings(ret)
	return ret, nil
}

// ClearDirected satisfies repository.Directed interface.
func (r *Repository) ClearDirected(_ context.Context, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.directed, owner)
	return nil
}

// UpsertLast satisfies repository.Last interface.
func (r *Repository) UpsertLast(_ context.Context, last *presencemodel.Last) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.last[last.Owner] = *last
	return nil
}

// FetchLast satisfies repository.Last interface.
func (r *Repository) FetchLast(_ context.Context, owner string) (*presencemodel.Last, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	last, ok := r.last[owner]
	if !ok {
		return nil, nil
	}
	return &last, nil
}

// DeleteLast satisfies repository.Last interface.
func (r *Repository) DeleteLast(_ context.Context, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.last, owner)
	return nil
}

// Start satisfies repository.Repository interface.
func (r *Repository) Start(_ context.Context) error { return nil }

// Stop satisfies repository.Repository interface.
func (r *Repository) Stop(_ context.Context) error { return nil }

func copyItem(ri *rostermodel.Item) rostermodel.Item {
	ci := *ri
	if ri.Groups != nil {
		ci.Groups = append([]string(nil), ri.Groups...)
	}
	return ci
}
