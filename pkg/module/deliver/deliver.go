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

package deliver

import (
	"context"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	presencemodel "github.com/ortuman/traffic/pkg/model/presence"
	"github.com/ortuman/traffic/pkg/pipeline"
)

// ModuleName represents deliver module name.
const ModuleName = "deliver"

const stageName = "deliver.message"

//go:generate moq -out topresolver.mock_test.go . topResolver:topResolverMock
type topResolver interface {
	Top(ctx context.Context, owner *jid.JID) (*presencemodel.Session, error)
}

//go:generate moq -out pipeline.mock_test.go . userPipeline:userPipelineMock
type userPipeline interface {
	User() *pipeline.Pipeline
}

//go:generate moq -out router.mock_test.go ../../pipeline Router:routerMock

// Deliver hands messages addressed to a bare user JID over to the owner resources.
type Deliver struct {
	presence topResolver
	pipeline userPipeline
	logger   kitlog.Logger
}

// New returns a new initialized Deliver instance.
func New(presence topResolver, pipeline userPipeline, logger kitlog.Logger) *Deliver {
	return &Deliver{
		presence: presence,
		pipeline: pipeline,
		logger:   kitlog.With(logger, "module", ModuleName),
	}
}

// Name returns deliver module name.
func (d *Deliver) Name() string { return ModuleName }

// StreamFeature returns deliver module stream feature.
func (d *Deliver) StreamFeature(_ context.Context, _ string) (stravaganza.Element, error) {
	return nil, nil
}

// ServerFeatures returns deliver server features.
func (d *Deliver) ServerFeatures(_ context.Context) ([]string, error) {
	return nil, nil
}

// AccountFeatures returns deliver account features.
func (d *Deliver) AccountFeatures(_ context.Context) ([]string, error) {
	return nil, nil
}

// Start registers deliver stage.
func (d *Deliver) Start(_ context.Context) error {
	d.pipeline.User().Add(stageName, d.deliver, pipeline.LowPriority)
	level.Info(d.logger).Log("msg", "started deliver module")
	return nil
}

// Stop unregisters deliver stage.
func (d *Deliver) Stop(_ context.Context) error {
	d.pipeline.User().Remove(stageName)
	level.Info(d.logger).Log("msg", "stopped deliver module")
	return nil
}

func (d *Deliver) deliver(pc *pipeline.Context) error {
	msg, ok := pc.Stanza.(*stravaganza.Message)
	if !ok {
		return nil
	}
	toJID := msg.ToJID()
	if toJID == nil || !toJID.IsBare() || len(toJID.Node()) == 0 {
		return nil
	}
	switch msg.Attribute(stravaganza.Type) {
	case "", stravaganza.NormalType, stravaganza.ChatType:
		top, err := d.presence.Top(pc.Context, toJID)
		if err != nil {
			return err
		}
		if top != nil && top.Priority >= 0 {
			resJID, err := jid.New(toJID.Node(), toJID.Domain(), top.Resource, true)
			if err != nil {
				return err
			}
			if err := pc.Router.Route(pc.Context, resJID, msg); err != nil {
				return err
			}
			return pipeline.ErrHandled
		}
		fallthrough

	case stravaganza.HeadlineType:
		if err := pc.Router.Route(pc.Context, toJID, msg); err != nil {
			return err
		}
	}
	// any other type is silently ignored
	return pipeline.ErrHandled
}
