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

package roster

import (
	"context"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/jackal-xmpp/stravaganza/v2"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	rostermodel "github.com/ortuman/traffic/pkg/model/roster"
	"github.com/ortuman/traffic/pkg/pipeline"
	"github.com/ortuman/traffic/pkg/storage/repository"
	xmpputil "github.com/ortuman/traffic/pkg/util/xmpp"
)

const rosterNamespace = "jabber:iq:roster"

// ModuleName represents roster module name.
const ModuleName = "roster"

//go:generate moq -out repository.mock_test.go ../../storage/repository Roster:repositoryMock
//go:generate moq -out router.mock_test.go ../../pipeline Router:routerMock

// Roster represents a roster module type.
type Roster struct {
	rep    repository.Roster
	logger kitlog.Logger
}

// New returns a new initialized Roster instance.
func New(rep repository.Roster, logger kitlog.Logger) *Roster {
	return &Roster{
		rep:    rep,
		logger: kitlog.With(logger, "module", ModuleName),
	}
}

// Name returns roster module name.
func (r *Roster) Name() string { return ModuleName }

// StreamFeature returns roster module stream feature.
func (r *Roster) StreamFeature(_ context.Context, _ string) (stravaganza.Element, error) {
	return nil, nil
}

// ServerFeatures returns roster server features.
func (r *Roster) ServerFeatures(_ context.Context) ([]string, error) {
	return nil, nil
}

// AccountFeatures returns roster account features.
func (r *Roster) AccountFeatures(_ context.Context) ([]string, error) {
	return nil, nil
}

// MatchesNamespace tells whether namespace matches roster module.
func (r *Roster) MatchesNamespace(namespace string, serverTarget bool) bool {
	if serverTarget {
		return false
	}
	return namespace == rosterNamespace
}

// ProcessIQ process a roster iq.
func (r *Roster) ProcessIQ(pc *pipeline.Context, iq *stravaganza.IQ) error {
	fromJID := iq.FromJID()
	toJID := iq.ToJID()
	if fromJID == nil || toJID == nil || !fromJID.MatchesWithOptions(toJID, jid.MatchesBare) {
		return stanzaerror.E(stanzaerror.Forbidden, iq)
	}
	q := iq.ChildNamespace("query", rosterNamespace)
	if q == nil {
		return stanzaerror.E(stanzaerror.BadRequest, iq)
	}
	switch {
	case iq.IsGet():
		return r.sendRoster(pc, iq, q)
	case iq.IsSet():
		return r.updateRoster(pc, iq, q)
	}
	return nil
}

// Start starts roster module.
func (r *Roster) Start(_ context.Context) error {
	level.Info(r.logger).Log("msg", "started roster module")
	return nil
}

// Stop stops roster module.
func (r *Roster) Stop(_ context.Context) error {
	level.Info(r.logger).Log("msg", "stopped roster module")
	return nil
}

func (r *Roster) sendRoster(pc *pipeline.Context, iq *stravaganza.IQ, q stravaganza.Element) error {
	if len(q.Children("item")) > 0 {
		return stanzaerror.E(stanzaerror.BadRequest, iq)
	}
	owner := iq.FromJID().ToBareJID().String()

	items, err := r.rep.FetchRosterItems(pc.Context, owner)
	if err != nil {
		return err
	}
	sb := stravaganza.NewBuilder("query").
		WithAttribute(stravaganza.Namespace, rosterNamespace)
	for _, ri := range items {
		if ri.IsDummy() {
			continue // pending inbound request only
		}
		sb.WithChild(EncodeItem(ri))
	}
	if err := pc.Respond(sb.Build()); err != nil {
		return err
	}
	level.Info(r.logger).Log("msg", "fetched user roster", "jid", iq.FromJID().String(), "items_count", len(items))
	return nil
}

func (r *Roster) updateRoster(pc *pipeline.Context, iq *stravaganza.IQ, q stravaganza.Element) error {
	items := q.Children("item")
	if len(items) != 1 {
		return stanzaerror.E(stanzaerror.BadRequest, iq)
	}
	owner := iq.FromJID().ToBareJID()

	upd, err := decodeItem(items[0])
	if err != nil {
		return stanzaerror.E(stanzaerror.BadRequest, iq)
	}
	upd.Owner = owner.String()

	if items[0].Attribute("subscription") == rostermodel.SubscriptionRemove {
		if err := r.removeItem(pc, owner, upd.Contact); err != nil {
			return err
		}
	} else if err := r.updateItem(pc, upd); err != nil {
		return err
	}
	return pc.Respond()
}

func (r *Roster) updateItem(pc *pipeline.Context, upd *rostermodel.Item) error {
	ri, err := r.rep.FetchRosterItem(pc.Context, upd.Owner, upd.Contact)
	if err != nil {
		return err
	}
	if ri == nil {
		ri = &rostermodel.Item{Owner: upd.Owner, Contact: upd.Contact}
	}
	ri.Name = upd.Name
	ri.Groups = upd.Groups

	if err := r.rep.UpsertRosterItem(pc.Context, ri); err != nil {
		return err
	}
	if err := Push(pc.Context, pc.Router, ri); err != nil {
		return err
	}
	level.Info(r.logger).Log("msg", "updated roster item", "owner", ri.Owner, "contact", ri.Contact)
	return nil
}

func (r *Roster) removeItem(pc *pipeline.Context, owner *jid.JID, contact string) error {
	ri, err := r.rep.FetchRosterItem(pc.Context, owner.String(), contact)
	if err != nil {
		return err
	}
	if ri == nil {
		return stanzaerror.E(stanzaerror.ItemNotFound, pc.Stanza)
	}
	if err := r.rep.DeleteRosterItem(pc.Context, ri.Owner, ri.Contact); err != nil {
		return err
	}
	// let the contact know about the cancelled subscriptions
	contactJID, _ := jid.NewWithString(contact, true)
	if ri.To || ri.PendingOut() {
		unsub := xmpputil.MakePresence(owner, contactJID, stravaganza.UnsubscribeType, nil)
		if err := pc.Router.Process(pc.Context, unsub); err != nil {
			return err
		}
	}
	if ri.From || ri.PendingIn() {
		unsubd := xmpputil.MakePresence(owner, contactJID, stravaganza.UnsubscribedType, nil)
		if err := pc.Router.Process(pc.Context, unsubd); err != nil {
			return err
		}
	}
	if err := push(pc.Context, pc.Router, owner, encodeRemoval(contact)); err != nil {
		return err
	}
	level.Info(r.logger).Log("msg", "removed roster item", "owner", ri.Owner, "contact", ri.Contact)
	return nil
}

// Push routes a roster push reflecting ri state to every resource of the item owner.
func Push(ctx context.Context, router pipeline.Router, ri *rostermodel.Item) error {
	ownerJID, err := jid.NewWithString(ri.Owner, true)
	if err != nil {
		return err
	}
	return push(ctx, router, ownerJID, EncodeItem(ri))
}

func push(ctx context.Context, router pipeline.Router, ownerJID *jid.JID, item stravaganza.Element) error {
	pushIQ, err := stravaganza.NewIQBuilder().
		WithAttribute(stravaganza.ID, uuid.New().String()).
		WithAttribute(stravaganza.Type, stravaganza.SetType).
		WithAttribute(stravaganza.From, ownerJID.String()).
		WithAttribute(stravaganza.To, ownerJID.String()).
		WithChild(
			stravaganza.NewBuilder("query").
				WithAttribute(stravaganza.Namespace, rosterNamespace).
				WithChild(item).
				Build(),
		).
		BuildIQ()
	if err != nil {
		return err
	}
	return router.Route(ctx, ownerJID, pushIQ)
}

// EncodeItem returns the roster item element representation of ri.
func EncodeItem(ri *rostermodel.Item) stravaganza.Element {
	b := stravaganza.NewBuilder("item").
		WithAttribute("jid", ri.Contact).
		WithAttribute("subscription", ri.Subscription())
	if len(ri.Name) > 0 {
		b.WithAttribute("name", ri.Name)
	}
	if ri.PendingOut() {
		b.WithAttribute("ask", "subscribe")
	}
	if ri.Approved {
		b.WithAttribute("approved", "true")
	}
	for _, group := range ri.Groups {
		b.WithChild(stravaganza.NewBuilder("group").
			WithText(group).
			Build(),
		)
	}
	return b.Build()
}

func encodeRemoval(contact string) stravaganza.Element {
	return stravaganza.NewBuilder("item").
		WithAttribute("jid", contact).
		WithAttribute("subscription", rostermodel.SubscriptionRemove).
		Build()
}
