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

package measuredrepository

import (
	"context"
	"time"

	rostermodel "github.com/ortuman/traffic/pkg/model/roster"
	"github.com/ortuman/traffic/pkg/storage/repository"
)

const rosterEntity = "roster"

type measuredRosterRep struct {
	rep repository.Roster
}

func (m *measuredRosterRep) UpsertRosterItem(ctx context.Context, ri *rostermodel.Item) error {
	t0 := time.Now()
	err := m.rep.UpsertRosterItem(ctx, ri)
	reportOpMetric(rosterEntity, upsertOp, time.Since(t0).Seconds(), err == nil)
	return err
}

func (m *measuredRosterRep) DeleteRosterItem(ctx context.Context, owner, contact string) error {
	t0 := time.Now()
	err := m.rep.DeleteRosterItem(ctx, owner, contact)
	reportOpMetric(rosterEntity, deleteOp, time.Since(t0).Seconds(), err == nil)
	return err
}

func (m *measuredRosterRep) FetchRosterItems(ctx context.Context, owner string) (items []*rostermodel.Item, err error) {
	t0 := time.Now()
	items, err = m.rep.FetchRosterItems(ctx, owner)
	reportOpMetric(rosterEntity, fetchOp, time.Since(t0).Seconds(), err == nil)
	return
}

func (m *measuredRosterRep) FetchRosterItem(ctx context.Context, owner, contact string) (ri *rostermodel.Item, err error) {
	t0 := time.Now()
	ri, err = m.rep.FetchRosterItem(ctx, owner, contact)
	reportOpMetric(rosterEntity, fetchOp, time.Since(t0).Seconds(), err == nil)
	return
}
