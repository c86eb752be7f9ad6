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

package xep0030

import (
	"context"
	"errors"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	"github.com/ortuman/traffic/pkg/module"
	"github.com/ortuman/traffic/pkg/pipeline"
	"github.com/ortuman/traffic/pkg/storage/repository"
)

const (
	discoInfoNamespace  = "http://jabber.org/protocol/disco#info"
	discoItemsNamespace = "http://jabber.org/protocol/disco#items"
)

var errSubscriptionRequired = errors.New("xep0030: subscription required")

const (
	// ModuleName represents disco module name.
	ModuleName = "disco"

	// XEPNumber represents disco XEP number.
	XEPNumber = "0030"
)

// Disco represents a disco info (XEP-0030) module type.
type Disco struct {
	rep    repository.Repository
	logger kitlog.Logger

	mu      sync.RWMutex
	srvProv InfoProvider
	accProv InfoProvider
}

// New returns a new initialized disco module instance.
func New(rep repository.Repository, logger kitlog.Logger) *Disco {
	return &Disco{
		rep:    rep,
		logger: kitlog.With(logger, "module", ModuleName, "xep", XEPNumber),
	}
}

// Name returns disco module name.
func (m *Disco) Name() string { return ModuleName }

// StreamFeature returns disco stream feature.
func (m *Disco) StreamFeature(_ context.Context, _ string) (stravaganza.Element, error) {
	return nil, nil
}

// ServerFeatures returns server disco features.
func (m *Disco) ServerFeatures(_ context.Context) ([]string, error) {
	return []string{discoInfoNamespace, discoItemsNamespace}, nil
}

// AccountFeatures returns account disco features.
func (m *Disco) AccountFeatures(_ context.Context) ([]string, error) {
	return []string{discoInfoNamespace, discoItemsNamespace}, nil
}

// MatchesNamespace tells whether namespace matches disco module.
func (m *Disco) MatchesNamespace(namespace string, _ bool) bool {
	return namespace == discoInfoNamespace || namespace == discoItemsNamespace
}

// ProcessIQ process a disco info iq.
func (m *Disco) ProcessIQ(pc *pipeline.Context, iq *stravaganza.IQ) error {
	if !iq.IsGet() {
		return stanzaerror.E(stanzaerror.Forbidden, iq)
	}
	return m.getDiscoInfo(pc, iq)
}

// Start starts disco module.
func (m *Disco) Start(_ context.Context) error {
	level.Info(m.logger).Log("msg", "started disco module")
	return nil
}

// Stop stops disco module.
func (m *Disco) Stop(_ context.Context) error {
	level.Info(m.logger).Log("msg", "stopped disco module")
	return nil
}

// ModulesStarted builds disco providers from the whole started module set.
func (m *Disco) ModulesStarted(ctx context.Context, mods *module.Modules) error {
	srvFeatures, err := mods.ServerFeatures(ctx)
	if err != nil {
		return err
	}
	accFeatures, err := mods.AccountFeatures(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.srvProv = newServerProvider(srvFeatures)
	m.accProv = newAccountProvider(accFeatures, m.rep)
	m.mu.Unlock()

	level.Info(m.logger).Log("msg", "disco providers ready", "server_features", len(srvFeatures), "account_features", len(accFeatures))
	return nil
}

// ServerProvider returns current disco info server provider.
func (m *Disco) ServerProvider() InfoProvider {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.srvProv
}

// AccountProvider returns current disco info account provider.
func (m *Disco) AccountProvider() InfoProvider {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.accProv
}

func (m *Disco) getDiscoInfo(pc *pipeline.Context, iq *stravaganza.IQ) error {
	q := iq.Child("query")
	if q == nil {
		return stanzaerror.E(stanzaerror.BadRequest, iq)
	}
	toJID := iq.ToJID()

	var prov InfoProvider
	if toJID.IsServer() {
		prov = m.ServerProvider()
	} else {
		prov = m.AccountProvider()
	}
	if prov == nil {
		return stanzaerror.E(stanzaerror.ServiceUnavailable, iq)
	}
	node := q.Attribute("node")
	switch q.Attribute(stravaganza.Namespace) {
	case discoInfoNamespace:
		return m.sendDiscoInfo(pc, prov, toJID, iq.FromJID(), node, iq)
	case discoItemsNamespace:
		return m.sendDiscoItems(pc, prov, toJID, iq.FromJID(), node, iq)
	default:
		return stanzaerror.E(stanzaerror.BadRequest, iq)
	}
}

func (m *Disco) sendDiscoInfo(pc *pipeline.Context, prov InfoProvider, toJID, fromJID *jid.JID, node string, iq *stravaganza.IQ) error {
	features, err := prov.Features(pc.Context, toJID, fromJID, node)
	if err != nil {
		return providerError(err, iq)
	}
	qb := stravaganza.NewBuilder("query").
		WithAttribute(stravaganza.Namespace, discoInfoNamespace)
	if len(node) > 0 {
		qb.WithAttribute("node", node)
	}
	for _, identity := range prov.Identities(pc.Context, toJID, fromJID, node) {
		qb.WithChild(identity.Element())
	}
	for _, feature := range features {
		qb.WithChild(stravaganza.NewBuilder("feature").
			WithAttribute("var", feature).
			Build(),
		)
	}
	return pc.Respond(qb.Build())
}

func (m *Disco) sendDiscoItems(pc *pipeline.Context, prov InfoProvider, toJID, fromJID *jid.JID, node string, iq *stravaganza.IQ) error {
	items, err := prov.Items(pc.Context, toJID, fromJID, node)
	if err != nil {
		return providerError(err, iq)
	}
	qb := stravaganza.NewBuilder("query").
		WithAttribute(stravaganza.Namespace, discoItemsNamespace)
	if len(node) > 0 {
		qb.WithAttribute("node", node)
	}
	for _, item := range items {
		qb.WithChild(item.Element())
	}
	return pc.Respond(qb.Build())
}

func providerError(err error, iq *stravaganza.IQ) error {
	if errors.Is(err, errSubscriptionRequired) {
		return stanzaerror.E(stanzaerror.SubscriptionRequired, iq)
	}
	return err
}
