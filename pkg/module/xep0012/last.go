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

package xep0012

import (
	"context"
	"strconv"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	xmppparser "github.com/ortuman/traffic/pkg/parser"
	"github.com/ortuman/traffic/pkg/pipeline"
	"github.com/ortuman/traffic/pkg/storage/repository"
)

const lastActivityNamespace = "jabber:iq:last"

const (
	// ModuleName represents last activity module name.
	ModuleName = "last"

	// XEPNumber represents last activity XEP number.
	XEPNumber = "0012"
)

// Last represents a last activity (XEP-0012) module type.
type Last struct {
	rep       repository.Repository
	parser    *xmppparser.Parser
	logger    kitlog.Logger
	nowFn     func() time.Time
	startedAt time.Time
}

// New returns a new initialized Last instance.
func New(rep repository.Repository, parser *xmppparser.Parser, logger kitlog.Logger) *Last {
	return &Last{
		rep:    rep,
		parser: parser,
		logger: kitlog.With(logger, "module", ModuleName, "xep", XEPNumber),
		nowFn:  time.Now,
	}
}

// Name returns last activity module name.
func (m *Last) Name() string { return ModuleName }

// StreamFeature returns last activity stream feature.
func (m *Last) StreamFeature(_ context.Context, _ string) (stravaganza.Element, error) {
	return nil, nil
}

// ServerFeatures returns server last activity features.
func (m *Last) ServerFeatures(_ context.Context) ([]string, error) {
	return []string{lastActivityNamespace}, nil
}

// AccountFeatures returns account last activity features.
func (m *Last) AccountFeatures(_ context.Context) ([]string, error) {
	return []string{lastActivityNamespace}, nil
}

// MatchesNamespace tells whether namespace matches last activity module.
func (m *Last) MatchesNamespace(namespace string, _ bool) bool {
	return namespace == lastActivityNamespace
}

// ProcessIQ process a last activity info iq.
func (m *Last) ProcessIQ(pc *pipeline.Context, iq *stravaganza.IQ) error {
	if !iq.IsGet() || iq.ChildNamespace("query", lastActivityNamespace) == nil {
		return stanzaerror.E(stanzaerror.BadRequest, iq)
	}
	if iq.ToJID().IsServer() {
		uptime := m.nowFn().Sub(m.startedAt)
		return m.reply(pc, int64(uptime.Seconds()), "")
	}
	return m.getAccountLastActivity(pc, iq)
}

// Start starts last activity module.
func (m *Last) Start(_ context.Context) error {
	m.startedAt = m.nowFn()
	level.Info(m.logger).Log("msg", "started last module")
	return nil
}

// Stop stops last activity module.
func (m *Last) Stop(_ context.Context) error {
	level.Info(m.logger).Log("msg", "stopped last module")
	return nil
}

func (m *Last) getAccountLastActivity(pc *pipeline.Context, iq *stravaganza.IQ) error {
	ctx := pc.Context
	fromJID := iq.FromJID()
	toJID := iq.ToJID()

	ok, err := m.isSubscribedTo(ctx, toJID, fromJID)
	if err != nil {
		return err
	}
	if !ok {
		return stanzaerror.E(stanzaerror.Forbidden, iq)
	}
	owner := toJID.ToBareJID().String()

	sessions, err := m.rep.FetchSessions(ctx, owner)
	if err != nil {
		return err
	}
	if len(sessions) > 0 {
		return m.reply(pc, 0, "")
	}
	lst, err := m.rep.FetchLast(ctx, owner)
	if err != nil {
		return err
	}
	if lst == nil {
		return stanzaerror.E(stanzaerror.ItemNotFound, iq)
	}
	var status string
	if pr, err := m.parser.ParseStanza(lst.Presence); err == nil {
		if st := pr.Child("status"); st != nil {
			status = st.Text()
		}
	} else {
		level.Warn(m.logger).Log("msg", "failed to parse last presence", "owner", owner, "err", err)
	}
	if err := m.reply(pc, int64(m.nowFn().Sub(lst.Timestamp).Seconds()), status); err != nil {
		return err
	}
	level.Info(m.logger).Log("msg", "sent last activity", "jid", fromJID.String(), "target", owner)
	return nil
}

func (m *Last) reply(pc *pipeline.Context, seconds int64, status string) error {
	return pc.Respond(stravaganza.NewBuilder("query").
		WithAttribute(stravaganza.Namespace, lastActivityNamespace).
		WithAttribute("seconds", strconv.FormatInt(seconds, 10)).
		WithText(status).
		Build(),
	)
}

func (m *Last) isSubscribedTo(ctx context.Context, contactJID *jid.JID, userJID *jid.JID) (bool, error) {
	if contactJID.MatchesWithOptions(userJID, jid.MatchesBare) {
		return true, nil
	}
	ri, err := m.rep.FetchRosterItem(ctx, contactJID.ToBareJID().String(), userJID.ToBareJID().String())
	if err != nil {
		return false, err
	}
	return ri != nil && ri.From, nil
}
