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

package c2s

import (
	"context"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/jackal-xmpp/runqueue/v2"
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	"github.com/ortuman/traffic/pkg/router"
)

const (
	streamNamespace  = "http://etherx.jabber.org/streams"
	bindNamespace    = "urn:ietf:params:xml:ns:xmpp-bind"
	sessionNamespace = "urn:ietf:params:xml:ns:xmpp-session"
)

// Transport represents an authenticated and bound client connection.
// Stream framing, TLS and SASL negotiation are handled by the transport owner.
type Transport interface {
	// WriteElement writes an element to the client stream.
	WriteElement(ctx context.Context, elem stravaganza.Element) error

	// Close closes the underlying connection.
	Close() error
}

//go:generate moq -out router.mock_test.go . stanzaRouter:routerMock
type stanzaRouter interface {
	RegisterRoute(ctx context.Context, j *jid.JID, conn router.Conn) error
	UnregisterRoute(ctx context.Context, j *jid.JID, conn router.Conn) error
	Handle(ctx context.Context, conn router.Conn, stanza stravaganza.Stanza)
}

//go:generate moq -out modules.mock_test.go . modules:modulesMock
type modules interface {
	StreamFeatures(ctx context.Context, domain string) ([]stravaganza.Element, error)
}

//go:generate moq -out transport.mock_test.go . Transport:transportMock

// C2S keeps track of every live client connection served by this process.
type C2S struct {
	cfg    Config
	router stanzaRouter
	mods   modules
	logger kitlog.Logger

	mu    sync.RWMutex
	conns map[string]*Conn
}

// New returns a new initialized C2S instance.
func New(cfg Config, router stanzaRouter, mods modules, logger kitlog.Logger) *C2S {
	return &C2S{
		cfg:    cfg,
		router: router,
		mods:   mods,
		logger: kitlog.With(logger, "component", "c2s"),
		conns:  make(map[string]*Conn),
	}
}

// Connect registers a bound client connection making it reachable through its full JID,
// its bare JID and its domain.
func (c *C2S) Connect(ctx context.Context, j *jid.JID, tr Transport) (*Conn, error) {
	id := uuid.New().String()
	conn := &Conn{
		id:     id,
		jd:     j,
		tr:     tr,
		c2s:    c,
		rq:     runqueue.New(id),
		logger: kitlog.With(c.logger, "id", id, "jid", j.String()),
	}
	for _, target := range routeTargets(j) {
		if err := c.router.RegisterRoute(ctx, target, conn); err != nil {
			c.unregisterRoutes(ctx, conn)
			return nil, err
		}
	}
	c.mu.Lock()
	c.conns[id] = conn
	total := len(c.conns)
	c.mu.Unlock()

	reportConnectionRegistered(total)

	level.Info(conn.logger).Log("msg", "registered c2s connection")
	return conn, nil
}

// Conn returns the live connection associated to id.
func (c *C2S) Conn(id string) *Conn {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conns[id]
}

// Len returns the number of live connections.
func (c *C2S) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.conns)
}

// Start starts C2S.
func (c *C2S) Start(_ context.Context) error {
	level.Info(c.logger).Log("msg", "started c2s")
	return nil
}

// Stop closes every live connection.
func (c *C2S) Stop(ctx context.Context) error {
	c.mu.RLock()
	conns := make([]*Conn, 0, len(c.conns))
	for _, conn := range c.conns {
		conns = append(conns, conn)
	}
	c.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.Close(ctx); err != nil {
			level.Warn(c.logger).Log("msg", "failed to close c2s connection", "id", conn.ID(), "err", err)
		}
	}
	level.Info(c.logger).Log("msg", "stopped c2s", "conns", len(conns))
	return nil
}

// StreamFeatures returns the post-binding stream features element of domain.
func (c *C2S) StreamFeatures(ctx context.Context, domain string) (stravaganza.Element, error) {
	modFeatures, err := c.mods.StreamFeatures(ctx, domain)
	if err != nil {
		return nil, err
	}
	return stravaganza.NewBuilder("stream:features").
		WithAttribute(stravaganza.Namespace, streamNamespace).
		WithAttribute("xmlns:stream", streamNamespace).
		WithChild(stravaganza.NewBuilder("bind").WithAttribute(stravaganza.Namespace, bindNamespace).Build()).
		WithChild(stravaganza.NewBuilder("session").WithAttribute(stravaganza.Namespace, sessionNamespace).Build()).
		WithChildren(modFeatures...).
		Build(), nil
}

func (c *C2S) unregister(ctx context.Context, conn *Conn) {
	c.unregisterRoutes(ctx, conn)

	c.mu.Lock()
	delete(c.conns, conn.ID())
	total := len(c.conns)
	c.mu.Unlock()

	reportConnectionUnregistered(total)
}

func (c *C2S) unregisterRoutes(ctx context.Context, conn *Conn) {
	for _, target := range routeTargets(conn.JID()) {
		if err := c.router.UnregisterRoute(ctx, target, conn); err != nil {
			level.Warn(conn.logger).Log("msg", "failed to unregister route", "target", target.String(), "err", err)
		}
	}
}

func routeTargets(j *jid.JID) []*jid.JID {
	domainJID, _ := jid.New("", j.Domain(), "", true)
	return []*jid.JID{j, j.ToBareJID(), domainJID}
}
