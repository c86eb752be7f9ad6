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
	"errors"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/runqueue/v2"
	"github.com/jackal-xmpp/stravaganza/v2"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	xmpputil "github.com/ortuman/traffic/pkg/util/xmpp"
)

// ErrConnClosed is returned when writing to an already closed connection.
var ErrConnClosed = errors.New("c2s: connection closed")

// Conn represents a live client connection.
type Conn struct {
	id     string
	jd     *jid.JID
	tr     Transport
	c2s    *C2S
	rq     *runqueue.RunQueue
	logger kitlog.Logger
	flags  flags
}

// ID returns connection identifier.
func (c *Conn) ID() string { return c.id }

// JID returns connection bound full JID.
func (c *Conn) JID() *jid.JID { return c.jd }

// IsAvailable tells whether the connection resource has broadcast available presence.
func (c *Conn) IsAvailable() bool { return c.flags.isAvailable() }

// SendElement enqueues elem to be written to the client stream. Writes are serialized in arrival order.
// The returned channel yields the write result.
func (c *Conn) SendElement(elem stravaganza.Element) <-chan error {
	errCh := make(chan error, 1)
	if c.flags.isTerminated() {
		errCh <- ErrConnClosed
		return errCh
	}
	c.rq.Run(func() {
		ctx, cancel := c.requestContext()
		defer cancel()

		err := c.tr.WriteElement(ctx, elem)
		if err != nil {
			level.Warn(c.logger).Log("msg", "failed to write element", "name", elem.Name(), "err", err)
		} else {
			reportOutgoingRequest(elem.Name(), elem.Attribute(stravaganza.Type))
		}
		errCh <- err
	})
	return errCh
}

// Send writes elem to the client stream waiting for the write to complete.
func (c *Conn) Send(ctx context.Context, elem stravaganza.Element) error {
	select {
	case err := <-c.SendElement(elem):
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HandleElement processes an element read from the client stream.
func (c *Conn) HandleElement(ctx context.Context, elem stravaganza.Element) {
	if c.flags.isTerminated() {
		return
	}
	t0 := time.Now()

	stanza, err := xmpputil.MakeStanza(elem)
	if err != nil {
		level.Debug(c.logger).Log("msg", "received malformed stanza", "name", elem.Name(), "err", err)

		var se *stanzaerror.Error
		if errors.As(err, &se) {
			errStanza, err := se.Stanza(false)
			if err == nil {
				_ = c.Send(ctx, errStanza)
			}
		}
		return
	}
	if pr, ok := stanza.(*stravaganza.Presence); ok && len(pr.Attribute(stravaganza.To)) == 0 {
		switch {
		case pr.IsAvailable():
			c.flags.setAvailable(true)
		case pr.IsUnavailable():
			c.flags.setAvailable(false)
		}
	}
	c.c2s.router.Handle(ctx, c, stanza)

	reportIncomingRequest(stanza.Name(), stanza.Attribute(stravaganza.Type), time.Since(t0).Seconds())
}

// Close unregisters the connection and closes its transport.
// An unavailable presence is broadcast on behalf of the resource if it was available.
func (c *Conn) Close(ctx context.Context) error {
	if c.flags.isAvailable() {
		c.flags.setAvailable(false)
		pr, _ := stravaganza.NewPresenceBuilder().
			WithAttribute(stravaganza.From, c.jd.String()).
			WithAttribute(stravaganza.Type, stravaganza.UnavailableType).
			BuildPresence()
		c.c2s.router.Handle(ctx, c, pr)
	}
	if c.flags.setTerminated() {
		return nil
	}
	c.c2s.unregister(ctx, c)

	level.Info(c.logger).Log("msg", "unregistered c2s connection")
	return c.tr.Close()
}

func (c *Conn) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.c2s.cfg.RequestTimeout)
}
