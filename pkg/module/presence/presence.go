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

package presence

import (
	"context"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	presencemodel "github.com/ortuman/traffic/pkg/model/presence"
	xmppparser "github.com/ortuman/traffic/pkg/parser"
	"github.com/ortuman/traffic/pkg/pipeline"
	"github.com/ortuman/traffic/pkg/storage/repository"
	xmpputil "github.com/ortuman/traffic/pkg/util/xmpp"
	"golang.org/x/sync/errgroup"
)

// ModuleName represents presence module name.
const ModuleName = "presence"

const (
	outboundStageName = "presence.outbound"
	validateStageName = "presence.validate"
	inboundStageName  = "presence.inbound"
)

//go:generate moq -out repository.mock_test.go ../../storage/repository Repository:repositoryMock
//go:generate moq -out router.mock_test.go ../../pipeline Router:routerMock
//go:generate moq -out pipelines.mock_test.go . pipelines:pipelinesMock
type pipelines interface {
	Outbound() *pipeline.Pipeline
	User() *pipeline.Pipeline
}

// Presence implements availability broadcast, directed presence tracking and probe replies.
type Presence struct {
	rep       repository.Repository
	parser    *xmppparser.Parser
	pipelines pipelines
	logger    kitlog.Logger
	nowFn     func() time.Time
}

// New returns a new initialized Presence instance.
func New(rep repository.Repository, parser *xmppparser.Parser, pipelines pipelines, logger kitlog.Logger) *Presence {
	return &Presence{
		rep:       rep,
		parser:    parser,
		pipelines: pipelines,
		logger:    kitlog.With(logger, "module", ModuleName),
		nowFn:     time.Now,
	}
}

// Name returns presence module name.
func (p *Presence) Name() string { return ModuleName }

// StreamFeature returns presence module stream feature.
func (p *Presence) StreamFeature(_ context.Context, _ string) (stravaganza.Element, error) {
	return nil, nil
}

// ServerFeatures returns presence server features.
func (p *Presence) ServerFeatures(_ context.Context) ([]string, error) {
	return nil, nil
}

// AccountFeatures returns presence account features.
func (p *Presence) AccountFeatures(_ context.Context) ([]string, error) {
	return nil, nil
}

// Start registers presence stages.
func (p *Presence) Start(_ context.Context) error {
	p.pipelines.Outbound().Add(outboundStageName, p.processOutbound, pipeline.DefaultPriority)
	p.pipelines.User().Add(validateStageName, validateStage, pipeline.DefaultPriority+50)
	p.pipelines.User().Add(inboundStageName, p.processInbound, pipeline.DefaultPriority)

	level.Info(p.logger).Log("msg", "started presence module")
	return nil
}

// Stop unregisters presence stages.
func (p *Presence) Stop(_ context.Context) error {
	p.pipelines.Outbound().Remove(outboundStageName)
	p.pipelines.User().Remove(validateStageName)
	p.pipelines.User().Remove(inboundStageName)

	level.Info(p.logger).Log("msg", "stopped presence module")
	return nil
}

// Top returns the highest priority session of owner.
// A nil value is returned in case owner has no available resources.
func (p *Presence) Top(ctx context.Context, owner *jid.JID) (*presencemodel.Session, error) {
	sessions, err := p.rep.FetchSessions(ctx, owner.ToBareJID().String())
	if err != nil {
		return nil, err
	}
	return presencemodel.Top(sessions), nil
}

func (p *Presence) processOutbound(pc *pipeline.Context) error {
	pr, ok := pc.Stanza.(*stravaganza.Presence)
	if !ok {
		return nil
	}
	if err := validateStage(pc); err != nil {
		return err
	}
	if !isBroadcastClass(pr) {
		return nil
	}
	fromJID := pr.FromJID()
	if toJID := pr.ToJID(); toJID != nil && !(toJID.IsBare() && toJID.MatchesWithOptions(fromJID, jid.MatchesBare)) {
		return p.processDirected(pc, pr)
	}
	return p.processBroadcast(pc, pr)
}

func (p *Presence) processDirected(pc *pipeline.Context, pr *stravaganza.Presence) error {
	owner := pr.FromJID().ToBareJID().String()
	target := pr.ToJID().String()

	switch {
	case pr.IsAvailable():
		if err := p.rep.UpsertDirected(pc.Context, owner, target); err != nil {
			return err
		}
	case pr.IsUnavailable():
		if err := p.rep.DeleteDirected(pc.Context, owner, target); err != nil {
			return err
		}
	}
	return nil // continue delivery
}

func (p *Presence) processBroadcast(pc *pipeline.Context, pr *stravaganza.Presence) error {
	priority, err := presencemodel.ParsePriority(pr)
	if err != nil {
		return stanzaerror.E(stanzaerror.BadRequest, pr)
	}
	ctx := pc.Context

	fromJID := pr.FromJID()
	ownerJID := fromJID.ToBareJID()
	owner := ownerJID.String()

	sessions, err := p.rep.FetchSessions(ctx, owner)
	if err != nil {
		return err
	}
	var initial bool
	if pr.IsAvailable() {
		initial = !hasResource(sessions, fromJID.Resource())
		err = p.rep.UpsertSession(ctx, &presencemodel.Session{
			Owner:     owner,
			Resource:  fromJID.Resource(),
			Priority:  priority,
			Presence:  pr.String(),
			UpdatedAt: p.nowFn(),
		})
	} else {
		err = p.goUnavailable(pc, pr, sessions)
	}
	if err != nil {
		return err
	}
	items, err := p.rep.FetchRosterItems(ctx, owner)
	if err != nil {
		return err
	}
	eg, egCtx := errgroup.WithContext(ctx)
	for _, ri := range items {
		ri := ri
		if !ri.From && !(initial && ri.To) {
			continue
		}
		// broadcast goes ahead of the probe to the same contact
		eg.Go(func() error {
			if ri.From {
				out, err := xmpputil.WithTo(pr, ri.Contact)
				if err != nil {
					return err
				}
				if err := pc.Router.Process(egCtx, out); err != nil {
					return err
				}
			}
			if !initial || !ri.To {
				return nil
			}
			contactJID, err := jid.NewWithString(ri.Contact, true)
			if err != nil {
				return err
			}
			probe := xmpputil.MakePresence(ownerJID, contactJID, stravaganza.ProbeType, nil)
			return pc.Router.Process(egCtx, probe)
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	// let every owner resource know about it
	self, err := xmpputil.WithTo(pr, owner)
	if err != nil {
		return err
	}
	if err := pc.Router.Route(ctx, ownerJID, self); err != nil {
		return err
	}
	level.Debug(p.logger).Log("msg", "broadcasted presence", "jid", fromJID.String(), "type", pr.Type(), "initial", initial)
	return pipeline.ErrHandled
}

func (p *Presence) goUnavailable(pc *pipeline.Context, pr *stravaganza.Presence, sessions []*presencemodel.Session) error {
	ctx := pc.Context

	fromJID := pr.FromJID()
	owner := fromJID.ToBareJID().String()

	if err := p.rep.DeleteSession(ctx, owner, fromJID.Resource()); err != nil {
		return err
	}
	err := p.rep.UpsertLast(ctx, &presencemodel.Last{
		Owner:     owner,
		Presence:  pr.String(),
		Timestamp: p.nowFn(),
	})
	if err != nil {
		return err
	}
	for _, s := range sessions {
		if s.Resource != fromJID.Resource() {
			return nil // still available through another resource
		}
	}
	targets, err := p.rep.FetchDirected(ctx, owner)
	if err != nil {
		return err
	}
	for _, target := range targets {
		targetJID, err := jid.NewWithString(target, true)
		if err != nil {
			continue
		}
		unavailable := xmpputil.MakePresence(fromJID, targetJID, stravaganza.UnavailableType, nil)
		if err := pc.Router.Process(ctx, unavailable); err != nil {
			return err
		}
	}
	return p.rep.ClearDirected(ctx, owner)
}

func (p *Presence) processInbound(pc *pipeline.Context) error {
	pr, ok := pc.Stanza.(*stravaganza.Presence)
	if !ok {
		return nil
	}
	switch {
	case pr.Type() == stravaganza.ProbeType:
		if err := p.processProbe(pc, pr); err != nil {
			return err
		}
		return pipeline.ErrHandled

	case isBroadcastClass(pr):
		ownerJID := pr.ToJID().ToBareJID()
		if err := pc.Router.Route(pc.Context, ownerJID, pr); err != nil {
			return err
		}
		return pipeline.ErrHandled
	}
	return nil
}

func (p *Presence) processProbe(pc *pipeline.Context, probe *stravaganza.Presence) error {
	if probe.ToJID().IsFullWithUser() {
		return p.processDirectedProbe(pc, probe)
	}
	ctx := pc.Context

	ownerJID := probe.ToJID().ToBareJID()
	requesterJID := probe.FromJID()
	owner := ownerJID.String()
	requester := requesterJID.ToBareJID().String()

	ri, err := p.rep.FetchRosterItem(ctx, owner, requester)
	if err != nil {
		return err
	}
	if ri == nil || !ri.From {
		return pc.Reply(ctx, xmpputil.MakePresence(ownerJID, requesterJID, stravaganza.UnsubscribedType, nil))
	}
	sessions, err := p.rep.FetchSessions(ctx, owner)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		return p.replyLast(pc, ownerJID, requesterJID)
	}
	for _, s := range sessions {
		resJID, err := jid.New(ownerJID.Node(), ownerJID.Domain(), s.Resource, true)
		if err != nil {
			return err
		}
		reply, err := p.readdress(s.Presence, resJID, requesterJID)
		if err != nil {
			level.Warn(p.logger).Log("msg", "failed to decode session presence", "jid", resJID.String(), "err", err)
			continue
		}
		if err := pc.Reply(ctx, reply); err != nil {
			return err
		}
	}
	return nil
}

// processDirectedProbe answers a probe addressed to a single resource. Roster
// state is ignored: only a directed entry towards the requester makes the
// resource presence visible.
func (p *Presence) processDirectedProbe(pc *pipeline.Context, probe *stravaganza.Presence) error {
	ctx := pc.Context

	resJID := probe.ToJID()
	ownerJID := resJID.ToBareJID()
	requesterJID := probe.FromJID()

	directed, err := p.hasDirected(ctx, ownerJID.String(), requesterJID)
	if err != nil {
		return err
	}
	if directed {
		sessions, err := p.rep.FetchSessions(ctx, ownerJID.String())
		if err != nil {
			return err
		}
		for _, s := range sessions {
			if s.Resource != resJID.Resource() {
				continue
			}
			reply, err := p.readdress(s.Presence, resJID, requesterJID)
			if err != nil {
				return err
			}
			return pc.Reply(ctx, reply)
		}
	}
	return pc.Reply(ctx, xmpputil.MakePresence(resJID, requesterJID, stravaganza.UnavailableType, nil))
}

func (p *Presence) hasDirected(ctx context.Context, owner string, target *jid.JID) (bool, error) {
	ok, err := p.rep.HasDirected(ctx, owner, target.String())
	if err != nil || ok || target.IsBare() {
		return ok, err
	}
	return p.rep.HasDirected(ctx, owner, target.ToBareJID().String())
}

func (p *Presence) replyLast(pc *pipeline.Context, ownerJID, requesterJID *jid.JID) error {
	ctx := pc.Context

	last, err := p.rep.FetchLast(ctx, ownerJID.String())
	if err != nil {
		return err
	}
	if last == nil {
		return pc.Reply(ctx, xmpputil.MakePresence(ownerJID, requesterJID, stravaganza.UnavailableType, nil))
	}
	reply, err := p.readdress(last.Presence, ownerJID, requesterJID)
	if err != nil {
		return err
	}
	reply, err = xmpputil.MakeDelayStanza(reply, last.Timestamp, ownerJID.String())
	if err != nil {
		return err
	}
	return pc.Reply(ctx, reply)
}

func (p *Presence) readdress(raw string, fromJID, toJID *jid.JID) (stravaganza.Stanza, error) {
	stanza, err := p.parser.ParseStanza(raw)
	if err != nil {
		return nil, err
	}
	return xmpputil.WithAttributes(stanza,
		stravaganza.Attribute{Label: stravaganza.From, Value: fromJID.String()},
		stravaganza.Attribute{Label: stravaganza.To, Value: toJID.String()},
	)
}

func validateStage(pc *pipeline.Context) error {
	pr, ok := pc.Stanza.(*stravaganza.Presence)
	if !ok {
		return nil
	}
	switch pr.Type() {
	case stravaganza.AvailableType, stravaganza.UnavailableType, stravaganza.ErrorType, stravaganza.ProbeType,
		stravaganza.SubscribeType, stravaganza.SubscribedType, stravaganza.UnsubscribeType, stravaganza.UnsubscribedType:
		return nil
	}
	return stanzaerror.E(stanzaerror.BadRequest, pr)
}

func isBroadcastClass(pr *stravaganza.Presence) bool {
	switch pr.Type() {
	case stravaganza.AvailableType, stravaganza.UnavailableType, stravaganza.ErrorType:
		return true
	}
	return false
}

func hasResource(sessions []*presencemodel.Session, resource string) bool {
	for _, s := range sessions {
		if s.Resource == resource {
			return true
		}
	}
	return false
}
