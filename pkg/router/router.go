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

package router

import (
	"context"
	"fmt"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	"github.com/ortuman/traffic/pkg/bus"
	xmppparser "github.com/ortuman/traffic/pkg/parser"
	"github.com/ortuman/traffic/pkg/pipeline"
	"github.com/ortuman/traffic/pkg/queue"
	"github.com/ortuman/traffic/pkg/s2s"
	xmpputil "github.com/ortuman/traffic/pkg/util/xmpp"
)

const routeChannelPrefix = "route:"

const terminalStage = "router.terminal"

// Conn represents a live client connection as seen by the router.
type Conn interface {
	// ID uniquely identifies the connection.
	ID() string

	// JID returns the connection authenticated full JID.
	JID() *jid.JID

	// SendElement enqueues elem to be written to the connection.
	// The returned channel yields the write result once the element has been written.
	SendElement(elem stravaganza.Element) <-chan error
}

//go:generate moq -out bus.mock_test.go . channelBus:busMock
type channelBus interface {
	Publish(ctx context.Context, channel, payload string) error
	Subscribe(ctx context.Context, channel string, s bus.Subscriber) error
	Unsubscribe(ctx context.Context, channel string, s bus.Subscriber) error
}

//go:generate moq -out queue.mock_test.go . queuePusher:queueMock
type queuePusher interface {
	Push(ctx context.Context, key string, e queue.Entry) error
}

//go:generate moq -out forwarder.mock_test.go ../s2s Forwarder:forwarderMock
//go:generate moq -out conn.mock_test.go . Conn:connMock

// Router decides whether a stanza is delivered to a live connection, queued for asynchronous
// dispatch or forwarded to a federated domain.
type Router struct {
	bus    channelBus
	queue  queuePusher
	s2s    s2s.Forwarder
	parser *xmppparser.Parser
	logger kitlog.Logger

	outbound *pipeline.Pipeline
	user     *pipeline.Pipeline
	server   *pipeline.Pipeline
}

// New returns a new initialized Router instance.
func New(
	bus channelBus,
	queue queuePusher,
	forwarder s2s.Forwarder,
	parser *xmppparser.Parser,
	logger kitlog.Logger,
) *Router {
	r := &Router{
		bus:      bus,
		queue:    queue,
		s2s:      forwarder,
		parser:   parser,
		logger:   kitlog.With(logger, "component", "router"),
		outbound: pipeline.New("outbound"),
		user:     pipeline.New("user"),
		server:   pipeline.New("server"),
	}
	r.outbound.Add(terminalStage, r.processStage, pipeline.LowestPriority)
	r.user.Add(terminalStage, serviceUnavailableStage, pipeline.LowestPriority)
	r.server.Add(terminalStage, serviceUnavailableStage, pipeline.LowestPriority)
	return r
}

// Outbound returns the pipeline run over stanzas sent by live connections.
func (r *Router) Outbound() *pipeline.Pipeline { return r.outbound }

// User returns the pipeline run over queued stanzas addressed to a local bare JID.
func (r *Router) User() *pipeline.Pipeline { return r.user }

// Server returns the pipeline run over queued stanzas addressed to the local domain.
func (r *Router) Server() *pipeline.Pipeline { return r.server }

// Process routes stanza considering it local when both addresses share the same domain.
func (r *Router) Process(ctx context.Context, stanza stravaganza.Stanza) error {
	fromJID, toJID, err := r.addresses(stanza)
	if err != nil {
		return err
	}
	return r.process(ctx, stanza, toJID, toJID.Domain() == fromJID.Domain())
}

// ProcessLocal routes stanza as if it was addressed to a local destination.
func (r *Router) ProcessLocal(ctx context.Context, stanza stravaganza.Stanza) error {
	_, toJID, err := r.addresses(stanza)
	if err != nil {
		return err
	}
	return r.process(ctx, stanza, toJID, true)
}

// Route publishes stanza on the live delivery channel of j.
// Stanza is silently dropped if no connection is listening on it.
func (r *Router) Route(ctx context.Context, j *jid.JID, stanza stravaganza.Stanza) error {
	if err := r.bus.Publish(ctx, routeChannel(j), stanza.String()); err != nil {
		return err
	}
	reportRouted(stanza.Name(), routeTarget)
	return nil
}

// RegisterRoute makes conn receive every stanza routed to j.
func (r *Router) RegisterRoute(ctx context.Context, j *jid.JID, conn Conn) error {
	return r.bus.Subscribe(ctx, routeChannel(j), r.listener(conn))
}

// UnregisterRoute stops delivering j routed stanzas to conn.
func (r *Router) UnregisterRoute(ctx context.Context, j *jid.JID, conn Conn) error {
	return r.bus.Unsubscribe(ctx, routeChannel(j), r.listener(conn))
}

// Queue appends stanza to j durable queue.
func (r *Router) Queue(ctx context.Context, local bool, j *jid.JID, stanza stravaganza.Stanza) error {
	if err := r.queue.Push(ctx, j.String(), queue.Entry{Local: local, Stanza: stanza.String()}); err != nil {
		return err
	}
	reportRouted(stanza.Name(), queueTarget)
	return nil
}

// Dispatch satisfies queue.Dispatcher interface.
func (r *Router) Dispatch(ctx context.Context, local bool, j *jid.JID, raw string) error {
	stanza, err := r.parser.ParseStanza(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnparsableEntry, err)
	}
	if !local {
		if j.Node() != "" || j.Resource() != "" {
			domainJID, _ := jid.New("", j.Domain(), "", true)
			return r.Queue(ctx, false, domainJID, stanza)
		}
		r.forward(ctx, stanza)
		return nil
	}
	if j.IsFull() {
		return ErrFullJIDDispatch
	}
	stanza, err = xmpputil.WithTo(stanza, j.String())
	if err != nil {
		return err
	}
	p, target := r.server, serverTarget
	if j.Node() != "" {
		p, target = r.user, userTarget
	}
	pc := &pipeline.Context{
		Context:  ctx,
		Stanza:   stanza,
		Local:    local,
		Router:   r,
		Reply:    r.Process,
		Response: xmpputil.MakeResponse(j, stanza),
	}
	if _, err := p.Exec(pc); err != nil {
		level.Warn(r.logger).Log("msg", "failed to run pipeline", "pipeline", p.Name(), "jid", j.String(), "err", err)
		return fmt.Errorf("router: %s pipeline: %w", p.Name(), err)
	}
	reportRouted(stanza.Name(), target)
	return nil
}

// Handle runs a stanza sent by a live connection through the outbound pipeline.
// Errors are reported back to the connection as stanza errors.
func (r *Router) Handle(ctx context.Context, conn Conn, stanza stravaganza.Stanza) {
	connJID := conn.JID()

	stanza, err := xmpputil.WithFrom(stanza, connJID.String())
	if err != nil {
		level.Warn(r.logger).Log("msg", "failed to stamp stanza sender", "jid", connJID.String(), "err", err)
		return
	}
	reply := func(ctx context.Context, resp stravaganza.Stanza) error {
		select {
		case err := <-conn.SendElement(resp):
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	pc := &pipeline.Context{
		Context:  ctx,
		Stanza:   stanza,
		Local:    true,
		Router:   r,
		Reply:    reply,
		Response: xmpputil.MakeResponse(connJID, stanza),
	}
	if _, err := r.outbound.Exec(pc); err != nil {
		level.Warn(r.logger).Log("msg", "failed to run outbound pipeline", "jid", connJID.String(), "err", err)

		if stanza.Attribute(stravaganza.Type) == stravaganza.ErrorType {
			return
		}
		if err := reply(ctx, xmpputil.MakeErrorStanza(stanza, stanzaerror.InternalServerError)); err != nil {
			level.Warn(r.logger).Log("msg", "failed to send error response", "jid", connJID.String(), "err", err)
		}
	}
}

func (r *Router) process(ctx context.Context, stanza stravaganza.Stanza, toJID *jid.JID, local bool) error {
	if local && toJID.IsFullWithUser() {
		return r.Route(ctx, toJID, stanza)
	}
	return r.Queue(ctx, local, toJID, stanza)
}

// addresses returns stanza sender and destination.
// Stanzas with no destination are addressed to sender bare JID.
func (r *Router) addresses(stanza stravaganza.Stanza) (fromJID, toJID *jid.JID, err error) {
	if len(stanza.Attribute(stravaganza.From)) == 0 {
		return nil, nil, ErrMissingFrom
	}
	fromJID, err = jid.NewWithString(stanza.Attribute(stravaganza.From), false)
	if err != nil {
		return nil, nil, stanzaerror.E(stanzaerror.JIDMalformed, stanza)
	}
	if len(stanza.Attribute(stravaganza.To)) == 0 {
		return fromJID, fromJID.ToBareJID(), nil
	}
	toJID, err = jid.NewWithString(stanza.Attribute(stravaganza.To), false)
	if err != nil {
		return nil, nil, stanzaerror.E(stanzaerror.JIDMalformed, stanza)
	}
	return fromJID, toJID, nil
}

func (r *Router) forward(ctx context.Context, stanza stravaganza.Stanza) {
	domain := stanza.ToJID().Domain()

	out, err := xmpputil.ToServerNamespace(stanza)
	if err == nil {
		err = r.s2s.Forward(ctx, domain, out)
	}
	if err == nil {
		reportRouted(stanza.Name(), forwardTarget)
		return
	}
	level.Warn(r.logger).Log("msg", "failed to forward stanza", "domain", domain, "err", err)

	if stanza.Attribute(stravaganza.Type) == stravaganza.ErrorType {
		return
	}
	errStanza := xmpputil.MakeErrorStanza(stanza, stanzaerror.RemoteServerNotFound)
	if err := r.ProcessLocal(ctx, errStanza); err != nil {
		level.Warn(r.logger).Log("msg", "failed to process remote server error", "domain", domain, "err", err)
	}
}

func (r *Router) processStage(pc *pipeline.Context) error {
	if err := r.Process(pc.Context, pc.Stanza); err != nil {
		return err
	}
	return pipeline.ErrHandled
}

func serviceUnavailableStage(pc *pipeline.Context) error {
	if iq, ok := pc.Stanza.(*stravaganza.IQ); ok && (iq.IsGet() || iq.IsSet()) {
		return stanzaerror.E(stanzaerror.ServiceUnavailable, pc.Stanza)
	}
	return pipeline.ErrHandled
}

func (r *Router) listener(conn Conn) *connListener {
	return &connListener{conn: conn, parser: r.parser, logger: r.logger}
}

func routeChannel(j *jid.JID) string {
	return routeChannelPrefix + j.String()
}
