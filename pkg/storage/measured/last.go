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

	presencemodel "github.com/ortuman/traffic/pkg/model/presence"
	"github.com/ortuman/traffic/pkg/storage/repository"
)

const lastEntity = "last"

type measuredLastRep struct {
	rep repository.Last
}

func (m *measuredLastRep) UpsertLast(ctx context.Context, last *presencemodel.Last) error {
	t0 := time.Now()
	err := m.rep.UpsertLast(ctx, last)
	reportOpMetric(lastEntity, upsertOp, time.Since(t0).Seconds(), err == nil)
	return err
}

func (m *measuredLastRep) FetchLast(ctx context.Context, owner string) (last *presencemodel.Last, err error) {
	t0 := time.Now()
	last, err = m.rep.FetchLast(ctx, owner)
	reportOpMetric(lastEntity, fetchOp, time.Since(t0).Seconds(), err == nil)
	return
}

func (m *measuredLastRep) DeleteLast(ctx context.Context, owner string) error {
	t0 := time.Now()
	err := m.rep.DeleteLast(ctx, owner)
	reportOpMetric(lastEntity, deleteOp, time.Since(t0).Seconds(), err == nil)
	return err
}
