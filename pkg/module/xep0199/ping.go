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

package xep0199

import (
	"context"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
	"github.com/ortuman/traffic/pkg/pipeline"
)

const pingNamespace = "urn:xmpp:ping"

const (
	// ModuleName represents ping module name.
	ModuleName = "ping"

	// XEPNumber represents ping XEP number.
	XEPNumber = "0199"
)

// Ping represents ping (XEP-0199) module type.
type Ping struct {
	logger kitlog.Logger
}

// New returns a new initialized Ping instance.
func New(logger kitlog.Logger) *Ping {
	return &Ping{
		logger: kitlog.With(logger, "module", ModuleName, "xep", XEPNumber),
	}
}

// Name returns ping module name.
func (p *Ping) Name() string { return ModuleName }

// StreamFeature returns ping module stream feature.
func (p *Ping) StreamFeature(_ context.Context, _ string) (stravaganza.Element, error) {
	return nil, nil
}

// ServerFeatures returns ping server disco features.
func (p *Ping) ServerFeatures(_ context.Context) ([]string, error) {
	return []string{pingNamespace}, nil
}

// AccountFeatures returns ping account disco features.
func (p *Ping) AccountFeatures(_ context.Context) ([]string, error) {
	return []string{pingNamespace}, nil
}

// MatchesNamespace tells whether namespace matches ping module.
func (p *Ping) MatchesNamespace(namespace string, _ bool) bool {
	return namespace == pingNamespace
}

// ProcessIQ process a ping iq.
func (p *Ping) ProcessIQ(pc *pipeline.Context, iq *stravaganza.IQ) error {
	if !iq.IsGet() || iq.ChildNamespace("ping", pingNamespace) == nil {
		return stanzaerror.E(stanzaerror.BadRequest, iq)
	}
	level.Debug(p.logger).Log("msg", "received ping", "from", iq.FromJID().String())
	return pc.Respond()
}

// Start starts ping module.
func (p *Ping) Start(_ context.Context) error {
	level.Info(p.logger).Log("msg", "started ping module")
	return nil
}

// Stop stops ping module.
func (p *Ping) Stop(_ context.Context) error {
	level.Info(p.logger).Log("msg", "stopped ping module")
	return nil
}
