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

	"github.com/jackal-xmpp/stravaganza/v2/jid"
	discomodel "github.com/ortuman/traffic/pkg/model/disco"
	"github.com/ortuman/traffic/pkg/storage/repository"
	"github.com/ortuman/traffic/pkg/version"
)

// InfoProvider represents a general entity disco info provider interface.
type InfoProvider interface {
	// Identities returns all identities associated to the provider.
	Identities(ctx context.Context, toJID, fromJID *jid.JID, node string) []discomodel.Identity

	// Items returns all items associated to the provider.
	Items(ctx context.Context, toJID, fromJID *jid.JID, node string) ([]discomodel.Item, error)

	// Features returns all features associated to the provider.
	Features(ctx context.Context, toJID, fromJID *jid.JID, node string) ([]discomodel.Feature, error)
}

type serverProvider struct {
	features []discomodel.Feature
}

func newServerProvider(features []string) *serverProvider {
	return &serverProvider{features: features}
}

func (p *serverProvider) Identities(_ context.Context, _, _ *jid.JID, node string) []discomodel.Identity {
	if len(node) > 0 {
		return nil
	}
	return []discomodel.Identity{{Category: "server", Type: "im", Name: version.ApplicationName}}
}

func (p *serverProvider) Items(_ context.Context, _, fromJID *jid.JID, node string) ([]discomodel.Item, error) {
	if len(node) > 0 {
		return nil, nil
	}
	return []discomodel.Item{{Jid: fromJID.ToBareJID().String()}}, nil
}

func (p *serverProvider) Features(_ context.Context, _, _ *jid.JID, node string) ([]discomodel.Feature, error) {
	if len(node) > 0 {
		return nil, nil
	}
	return p.features, nil
}

type accountProvider struct {
	rep      repository.Repository
	features []discomodel.Feature
}

func newAccountProvider(features []string, rep repository.Repository) *accountProvider {
	return &accountProvider{rep: rep, features: features}
}

func (p *accountProvider) Identities(_ context.Context, _, _ *jid.JID, node string) []discomodel.Identity {
	if len(node) > 0 {
		return nil
	}
	return []discomodel.Identity{{Category: "account", Type: "registered"}}
}

func (p *accountProvider) Items(ctx context.Context, toJID, fromJID *jid.JID, node string) ([]discomodel.Item, error) {
	if len(node) > 0 {
		return nil, nil
	}
	if err := p.checkSubscription(ctx, toJID, fromJID); err != nil {
		return nil, err
	}
	sessions, err := p.rep.FetchSessions(ctx, toJID.ToBareJID().String())
	if err != nil {
		return nil, err
	}
	items := make([]discomodel.Item, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, discomodel.Item{Jid: s.Owner + "/" + s.Resource})
	}
	return items, nil
}

func (p *accountProvider) Features(ctx context.Context, toJID, fromJID *jid.JID, node string) ([]discomodel.Feature, error) {
	if len(node) > 0 {
		return nil, nil
	}
	if err := p.checkSubscription(ctx, toJID, fromJID); err != nil {
		return nil, err
	}
	return p.features, nil
}

func (p *accountProvider) checkSubscription(ctx context.Context, toJID, fromJID *jid.JID) error {
	if toJID.MatchesWithOptions(fromJID, jid.MatchesBare) {
		return nil
	}
	ri, err := p.rep.FetchRosterItem(ctx, toJID.ToBareJID().String(), fromJID.ToBareJID().String())
	if err != nil {
		return err
	}
	if ri == nil || !ri.From {
		return errSubscriptionRequired
	}
	return nil
}
