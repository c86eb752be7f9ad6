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

package subscription

import (
	"context"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	rostermodel "github.com/ortuman/traffic/pkg/model/roster"
	"github.com/ortuman/traffic/pkg/module/roster"
	xmppparser "github.com/ortuman/traffic/pkg/parser"
	"github.com/ortuman/traffic/pkg/pipeline"
	"github.com/ortuman/traffic/pkg/storage/repository"
	xmpputil "github.com/ortuman/traffic/pkg/util/xmpp"
)

// ModuleName represents subscription module name.
const ModuleName = "subscription"

const preApprovalNamespace = "urn:xmpp:features:pre-approval"

const (
	outboundStageName = "subscription.outbound"
	inboundStageName  = "subscription.inbound"
)

//go:generate moq -out repository.mock_test.go ../../storage/repository Repository:repositoryMock
//go:generate moq -out router.mock_test.go ../../pipeline Router:routerMock
//go:generate moq -out pipelines.mock_test.go . pipelines:pipelinesMock
type pipelines interface {
	Outbound() *pipeline.Pipeline
	User() *pipeline.Pipeline
}

// Subscription runs presence subscription transitions over the owner roster.
type Subscription struct {
	rep       repository.Repository
	parser    *xmppparser.Parser
	pipelines pipelines
	logger    kitlog.Logger
}

// New returns a new initialized Subscription instance.
func New(rep repository.Repository, parser *xmppparser.Parser, pipelines pipelines, logger kitlog.Logger) *Subscription {
	return &Subscription{
		rep:       rep,
		parser:    parser,
		pipelines: pipelines,
		logger:    kitlog.With(logger, "module", ModuleName),
	}
}

// Name returns subscription module name.
func (s *Subscription) Name() string { return ModuleName }

// StreamFeature returns subscription pre-approval stream feature.
func (s *Subscription) StreamFeature(_ context.Context, _ string) (stravaganza.Element, error) {
	return stravaganza.NewBuilder("sub").
		WithAttribute(stravaganza.Namespace, preApprovalNamespace).
		Build(), nil
}

// ServerFeatures returns subscription server features.
func (s *Subscription) ServerFeatures(_ context.Context) ([]string, error) {
	return nil, nil
}

// AccountFeatures returns subscription account features.
func (s *Subscription) AccountFeatures(_ context.Context) ([]string, error) {
	return nil, nil
}

// Start registers subscription stages.
func (s *Subscription) Start(_ context.Context) error {
	s.pipelines.Outbound().Add(outboundStageName, s.processOutbound, pipeline.HighPriority)
	s.pipelines.User().Add(inboundStageName, s.processInbound, pipeline.DefaultPriority+100)

	level.Info(s.logger).Log("msg", "started subscription module")
	return nil
}

// Stop unregisters subscription stages.
func (s *Subscription) Stop(_ context.Context) error {
	s.pipelines.Outbound().Remove(outboundStageName)
	s.pipelines.User().Remove(inboundStageName)

	level.Info(s.logger).Log("msg", "stopped subscription module")
	return nil
}

func (s *Subscription) processInbound(pc *pipeline.Context) error {
	pr, ok := pc.Stanza.(*stravaganza.Presence)
	if !ok || !isSubscriptionType(pr.Type()) {
		return nil
	}
	ownerJID, err := bareJID(pr.Attribute(stravaganza.To))
	if err != nil {
		return stanzaerror.E(stanzaerror.JIDMalformed, pr)
	}
	contactJID := pr.FromJID().ToBareJID()

	stanza, err := xmpputil.WithAttributes(pr,
		stravaganza.Attribute{Label: stravaganza.From, Value: contactJID.String()},
		stravaganza.Attribute{Label: stravaganza.To, Value: ownerJID.String()},
	)
	if err != nil {
		return err
	}
	h := &handler{
		pc:         pc,
		rep:        s.rep,
		parser:     s.parser,
		ownerJID:   ownerJID,
		contactJID: contactJID,
		stanza:     stanza,
	}
	h.ri, err = s.rep.FetchRosterItem(pc.Context, ownerJID.String(), contactJID.String())
	if err != nil {
		return err
	}
	switch pr.Type() {
	case stravaganza.SubscribeType:
		err = h.inboundSubscribe()
	case stravaganza.SubscribedType:
		err = h.inboundSubscribed()
	case stravaganza.UnsubscribeType:
		err = h.inboundUnsubscribe()
	case stravaganza.UnsubscribedType:
		err = h.inboundUnsubscribed()
	}
	if err != nil {
		return err
	}
	level.Debug(s.logger).Log("msg", "processed inbound subscription", "type", pr.Type(), "owner", ownerJID.String(), "contact", contactJID.String())
	return pipeline.ErrHandled
}

func (s *Subscription) processOutbound(pc *pipeline.Context) error {
	pr, ok := pc.Stanza.(*stravaganza.Presence)
	if !ok {
		return nil
	}
	if !isSubscriptionType(pr.Type()) {
		if pr.IsAvailable() && isBroadcast(pr) {
			if err := s.resendRequests(pc, pr); err != nil {
				return err
			}
		}
		return nil
	}
	ownerJID := pr.FromJID().ToBareJID()
	contactJID, err := bareJID(pr.Attribute(stravaganza.To))
	if err != nil {
		return stanzaerror.E(stanzaerror.JIDMalformed, pr)
	}
	stanza, err := xmpputil.WithAttributes(pr,
		stravaganza.Attribute{Label: stravaganza.From, Value: ownerJID.String()},
		stravaganza.Attribute{Label: stravaganza.To, Value: contactJID.String()},
	)
	if err != nil {
		return err
	}
	h := &handler{
		pc:         pc,
		rep:        s.rep,
		parser:     s.parser,
		ownerJID:   ownerJID,
		contactJID: contactJID,
		stanza:     stanza,
	}
	h.ri, err = s.rep.FetchRosterItem(pc.Context, ownerJID.String(), contactJID.String())
	if err != nil {
		return err
	}
	switch pr.Type() {
	case stravaganza.SubscribeType:
		err = h.outboundSubscribe()
	case stravaganza.SubscribedType:
		err = h.outboundSubscribed()
	case stravaganza.UnsubscribeType:
		err = h.outboundUnsubscribe()
	case stravaganza.UnsubscribedType:
		err = h.outboundUnsubscribed()
	}
	if err != nil {
		return err
	}
	level.Debug(s.logger).Log("msg", "processed outbound subscription", "type", pr.Type(), "owner", ownerJID.String(), "contact", contactJID.String())
	return pipeline.ErrHandled
}

// resendRequests replays every unresolved subscription request whenever the owner broadcasts availability.
func (s *Subscription) resendRequests(pc *pipeline.Context, pr *stravaganza.Presence) error {
	ctx := pc.Context

	items, err := s.rep.FetchRosterItems(ctx, pr.FromJID().ToBareJID().String())
	if err != nil {
		return err
	}
	for _, ri := range items {
		if ri.PendingIn() {
			in, err := s.parser.ParseStanza(ri.In)
			if err != nil {
				level.Warn(s.logger).Log("msg", "failed to decode pending inbound request", "owner", ri.Owner, "contact", ri.Contact, "err", err)
			} else if err := pc.Reply(ctx, in); err != nil {
				return err
			}
		}
		if ri.PendingOut() {
			ask, err := s.parser.ParseStanza(ri.Ask)
			if err != nil {
				level.Warn(s.logger).Log("msg", "failed to decode pending outbound request", "owner", ri.Owner, "contact", ri.Contact, "err", err)
			} else if err := pc.Router.Process(ctx, ask); err != nil {
				return err
			}
		}
	}
	return nil
}

type handler struct {
	pc     *pipeline.Context
	rep    repository.Repository
	parser *xmppparser.Parser

	ownerJID   *jid.JID
	contactJID *jid.JID
	stanza     stravaganza.Stanza
	ri         *rostermodel.Item
}

func (h *handler) inboundSubscribe() error {
	switch {
	case h.ri != nil && h.ri.From:
		return h.autoApprove()

	case h.ri != nil && h.ri.Approved:
		if err := h.autoApprove(); err != nil {
			return err
		}
		h.ri.From = true
		h.ri.Approved = false
		h.ri.In = ""
		return h.updateAndPush()
	}
	if err := h.deliverToOwner(); err != nil {
		return err
	}
	ri := h.item()
	ri.In = h.stanza.String()
	return h.rep.UpsertRosterItem(h.pc.Context, ri)
}

func (h *handler) inboundSubscribed() error {
	if h.ri == nil || h.ri.To || !h.ri.PendingOut() {
		return nil
	}
	if err := h.deliverToOwner(); err != nil {
		return err
	}
	h.ri.To = true
	h.ri.Ask = ""
	return h.updateAndPush()
}

func (h *handler) inboundUnsubscribe() error {
	if h.ri == nil {
		return nil
	}
	if !h.ri.From {
		h.ri.In = ""
		if h.ri.IsDummy() {
			return h.rep.DeleteRosterItem(h.pc.Context, h.ri.Owner, h.ri.Contact)
		}
		return h.rep.UpsertRosterItem(h.pc.Context, h.ri)
	}
	if err := h.deliverToOwner(); err != nil {
		return err
	}
	h.ri.From = false
	h.ri.In = ""
	if err := h.updateAndPush(); err != nil {
		return err
	}
	return h.sendUnavailable()
}

func (h *handler) inboundUnsubscribed() error {
	if h.ri == nil || (!h.ri.To && !h.ri.PendingOut()) {
		return nil
	}
	if err := h.deliverToOwner(); err != nil {
		return err
	}
	h.ri.To = false
	h.ri.Ask = ""
	return h.updateAndPush()
}

func (h *handler) outboundSubscribe() error {
	ri := h.item()
	ri.Ask = h.stanza.String()
	if err := h.updateAndPush(); err != nil {
		return err
	}
	return h.deliverToContact()
}

func (h *handler) outboundSubscribed() error {
	switch {
	case h.ri != nil && h.ri.From:
		return nil // already approved

	case h.ri == nil || !h.ri.PendingIn():
		ri := h.item()
		ri.Approved = true
		return h.updateAndPush()
	}
	if err := h.deliverToContact(); err != nil {
		return err
	}
	h.ri.From = true
	h.ri.In = ""
	h.ri.Approved = false
	if err := h.updateAndPush(); err != nil {
		return err
	}
	return h.sendCurrentPresence()
}

func (h *handler) outboundUnsubscribe() error {
	if err := h.deliverToContact(); err != nil {
		return err
	}
	if h.ri == nil {
		return nil
	}
	h.ri.To = false
	h.ri.Ask = ""
	return h.updateAndPush()
}

func (h *handler) outboundUnsubscribed() error {
	if h.ri == nil {
		return h.deliverToContact()
	}
	pendingIn := h.ri.PendingIn()
	h.ri.In = ""

	switch {
	case h.ri.From:
		if err := h.sendUnavailable(); err != nil {
			return err
		}
		if err := h.deliverToContact(); err != nil {
			return err
		}
		h.ri.From = false
		h.ri.Approved = false
		return h.updateAndPush()

	case h.ri.Approved:
		// cancelling a pre-approval is never delivered
		h.ri.Approved = false
		return h.updateAndPush()
	}
	if pendingIn {
		if h.ri.IsDummy() {
			if err := h.rep.DeleteRosterItem(h.pc.Context, h.ri.Owner, h.ri.Contact); err != nil {
				return err
			}
		} else if err := h.rep.UpsertRosterItem(h.pc.Context, h.ri); err != nil {
			return err
		}
	}
	return h.deliverToContact()
}

// item returns the handled roster item, creating it if needed.
func (h *handler) item() *rostermodel.Item {
	if h.ri == nil {
		h.ri = &rostermodel.Item{
			Owner:   h.ownerJID.String(),
			Contact: h.contactJID.String(),
		}
	}
	return h.ri
}

func (h *handler) updateAndPush() error {
	if err := h.rep.UpsertRosterItem(h.pc.Context, h.ri); err != nil {
		return err
	}
	return roster.Push(h.pc.Context, h.pc.Router, h.ri)
}

func (h *handler) autoApprove() error {
	subscribed := xmpputil.MakePresence(h.ownerJID, h.contactJID, stravaganza.SubscribedType, nil)
	return h.pc.Reply(h.pc.Context, subscribed)
}

func (h *handler) deliverToOwner() error {
	return h.pc.Router.Route(h.pc.Context, h.ownerJID, h.stanza)
}

func (h *handler) deliverToContact() error {
	return h.pc.Router.Process(h.pc.Context, h.stanza)
}

// sendUnavailable sends unavailable presence from every available owner resource to the contact.
func (h *handler) sendUnavailable() error {
	return h.fromSessions(func(resJID *jid.JID, _ string) (stravaganza.Stanza, error) {
		return xmpputil.MakePresence(resJID, h.contactJID, stravaganza.UnavailableType, nil), nil
	})
}

// sendCurrentPresence sends last presence of every available owner resource to the contact.
func (h *handler) sendCurrentPresence() error {
	return h.fromSessions(func(resJID *jid.JID, raw string) (stravaganza.Stanza, error) {
		stanza, err := h.parser.ParseStanza(raw)
		if err != nil {
			return nil, err
		}
		return xmpputil.WithAttributes(stanza,
			stravaganza.Attribute{Label: stravaganza.From, Value: resJID.String()},
			stravaganza.Attribute{Label: stravaganza.To, Value: h.contactJID.String()},
		)
	})
}

func (h *handler) fromSessions(makeFn func(resJID *jid.JID, raw string) (stravaganza.Stanza, error)) error {
	ctx := h.pc.Context

	sessions, err := h.rep.FetchSessions(ctx, h.ownerJID.String())
	if err != nil {
		return err
	}
	for _, sess := range sessions {
		resJID, err := jid.New(h.ownerJID.Node(), h.ownerJID.Domain(), sess.Resource, true)
		if err != nil {
			return err
		}
		stanza, err := makeFn(resJID, sess.Presence)
		if err != nil {
			return err
		}
		if err := h.pc.Router.Process(ctx, stanza); err != nil {
			return err
		}
	}
	return nil
}

func isSubscriptionType(typ string) bool {
	switch typ {
	case stravaganza.SubscribeType, stravaganza.SubscribedType, stravaganza.UnsubscribeType, stravaganza.UnsubscribedType:
		return true
	}
	return false
}

func isBroadcast(pr *stravaganza.Presence) bool {
	toJID := pr.ToJID()
	return toJID == nil || (toJID.IsBare() && toJID.MatchesWithOptions(pr.FromJID(), jid.MatchesBare))
}

func bareJID(s string) (*jid.JID, error) {
	j, err := jid.NewWithString(s, false)
	if err != nil {
		return nil, err
	}
	return j.ToBareJID(), nil
}
