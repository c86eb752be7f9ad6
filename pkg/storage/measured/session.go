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

const (
	sessionEntity  = "session"
	directedEntity = "directed"
)

type measuredSessionRep struct {
	rep repository.Session
}

func (m *measuredSessionRep) UpsertSession(ctx context.Context, s *presencemodel.Session) error {
	t0 := time.Now()
	err := m.rep.UpsertSession(ctx, s)
	reportOpMetric(sessionEntity, upsertOp, time.Since(t0).Seconds(), err == nil)
	return err
}

func (m *measuredSessionRep) DeleteSession(ctx context.Context, owner, resource string) error {
	t0 := time.Now()
	err := m.rep.DeleteSession(ctx, owner, resource)
	reportOpMetric(sessionEntity, deleteOp, time.Since(t0).Seconds(), err == nil)
	return err
}

func (m *measuredSessionRep) FetchSessions(ctx context.Context, owner string) (sessions []*presencemodel.Session, err error) {
	t0 := time.Now()
	sessions, err = m.rep.FetchSessions(ctx, owner)
	reportOpMetric(sessionEntity, fetchOp, time.Since(t0).Seconds(), err == nil)
	return
}

type measuredDirectedRep struct {
	rep repository.Directed
}

func (m *measuredDirectedRep) UpsertDirected(ctx context.Context, owner, target string) error {
	t0 := time.Now()
	err := m.rep.UpsertDirected(ctx, owner, target)
	reportOpMetric(directedEntity, upsertOp, time.Since(t0).Seconds(), err == nil)
	return err
}

func (m *measuredDirectedRep) DeleteDirected(ctx context.Context, owner, target string) error {
	t0 := time.Now()
	err := m.rep.DeleteDirected(ctx, owner, target)
	reportOpMetric(directedEntity, deleteOp, time.Since(t0).Seconds(), err == nil)
	return err
}

func (m *measuredDirectedRep) HasDirected(ctx context.Context, owner, target string) (ok bool, err error) {
	t0 := time.Now()
	ok, err = m.rep.HasDirected(ctx, owner, target)
	reportOpMetric(directedEntity, existsOp, time.Since(t0).Seconds(), err == nil)
	return
}

func (m *measuredDirectedRep) FetchDirected(ctx context.Context, owner string) (targets []string, err error) {
	t0 := time.Now()
	targets, err = m.rep.FetchDirected(ctx, owner)
	reportOpMetric(directedEntity, fetchOp, time.Since(t0).Seconds(), err == nil)
	return
}

func (m *measuredDirectedRep) ClearDirected(ctx context.Context, owner string) error {
	t0 := time.Now()
	err := m.rep.ClearDirected(ctx, owner)
	reportOpMetric(directedEntity, deleteOp, time.Since(t0).Seconds(), err == nil)
	return err
}
