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

package xmpputil

import (
	"fmt"
	"time"

	"github.com/jackal-xmpp/stravaganza/v2"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
)

const (
	// ClientNamespace is the stanza namespace used on client streams.
	ClientNamespace = "jabber:client"

	// ServerNamespace is the stanza namespace used on server-to-server streams.
	ServerNamespace = "jabber:server"

	delayNamespace  = "urn:xmpp:delay"
	delayTimeFormat = "2006-01-02T15:04:05.000Z"
)

// MakeResultIQ creates a new result stanza derived from iq.
func MakeResultIQ(iq *stravaganza.IQ, queryChild stravaganza.Element) *stravaganza.IQ {
	b := iq.ResultBuilder()
	if queryChild != nil {
		b.WithChild(queryChild)
	}
	resIQ, _ := b.BuildIQ()
	return resIQ
}

// MakePresence creates presence of type typ using fromJID and toJID addresses.
func MakePresence(fromJID, toJID *jid.JID, typ string, children []stravaganza.Element) *stravaganza.Presence {
	b := stravaganza.NewPresenceBuilder().
		WithAttribute(stravaganza.From, fromJID.String()).
		WithAttribute(stravaganza.To, toJID.String())
	if len(typ) > 0 {
		b.WithAttribute(stravaganza.Type, typ)
	}
	pr, _ := b.WithChildren(children...).BuildPresence()
	return pr
}

// MakeErrorStanza creates an error stanza using errReason as reason.
func MakeErrorStanza(stanza stravaganza.Stanza, errReason stanzaerror.Reason) stravaganza.Stanza {
	errStanza, _ := stanzaerror.E(errReason, stanza).
		Stanza(false)
	return errStanza
}

// MakeDelayStanza returns a copy of stanza carrying a delay element stamped at the given time.
func MakeDelayStanza(stanza stravaganza.Stanza, stamp time.Time, from string) (stravaganza.Stanza, error) {
	sb := stravaganza.NewBuilderFromElement(stanza)
	sb.WithChild(
		stravaganza.NewBuilder("delay").
			WithAttribute(stravaganza.Namespace, delayNamespace).
			WithAttribute(stravaganza.From, from).
			WithAttribute("stamp", stamp.UTC().Format(delayTimeFormat)).
			Build(),
	)
	return buildStanza(stanza.Name(), sb)
}

// MakeStanza builds a typed stanza out of a generic element.
// An element that does not describe a valid iq, presence or message results in a bad-request stanza error.
func MakeStanza(elem stravaganza.Element) (stravaganza.Stanza, error) {
	stanza, err := buildStanza(elem.Name(), stravaganza.NewBuilderFromElement(elem))
	if err != nil {
		return nil, stanzaerror.E(stanzaerror.BadRequest, elem)
	}
	return stanza, nil
}

// WithAttributes returns a copy of stanza with the given attribute values set.
// Empty values remove the attribute.
func WithAttributes(stanza stravaganza.Stanza, attrs ...stravaganza.Attribute) (stravaganza.Stanza, error) {
	sb := stravaganza.NewBuilderFromElement(stanza)
	for _, attr := range attrs {
		if len(attr.Value) == 0 {
			sb.WithoutAttribute(attr.Label)
			continue
		}
		sb.WithAttribute(attr.Label, attr.Value)
	}
	return buildStanza(stanza.Name(), sb)
}

// WithTo returns a copy of stanza addressed to the given JID.
func WithTo(stanza stravaganza.Stanza, to string) (stravaganza.Stanza, error) {
	return WithAttributes(stanza, stravaganza.Attribute{Label: stravaganza.To, Value: to})
}

// WithFrom returns a copy of stanza stamped with the given sender JID.
func WithFrom(stanza stravaganza.Stanza, from string) (stravaganza.Stanza, error) {
	return WithAttributes(stanza, stravaganza.Attribute{Label: stravaganza.From, Value: from})
}

// ToServerNamespace rewrites a client namespaced stanza into its server namespaced form.
func ToServerNamespace(stanza stravaganza.Stanza) (stravaganza.Stanza, error) {
	if stanza.Attribute(stravaganza.Namespace) != ClientNamespace {
		return stanza, nil
	}
	return WithAttributes(stanza, stravaganza.Attribute{Label: stravaganza.Namespace, Value: ServerNamespace})
}

// MakeResponse builds the response template of a stanza: same name, echoed id, swapped addresses
// and, in case of iq, a result type.
func MakeResponse(from *jid.JID, stanza stravaganza.Stanza) stravaganza.Stanza {
	sb := stravaganza.NewBuilder(stanza.Name()).
		WithAttribute(stravaganza.From, from.String())
	if id := stanza.Attribute(stravaganza.ID); len(id) > 0 {
		sb.WithAttribute(stravaganza.ID, id)
	}
	if to := stanza.Attribute(stravaganza.From); len(to) > 0 {
		sb.WithAttribute(stravaganza.To, to)
	}
	if stanza.Name() == "iq" {
		sb.WithAttribute(stravaganza.Type, stravaganza.ResultType)
	}
	resp, err := buildStanza(stanza.Name(), sb)
	if err != nil {
		return nil
	}
	return resp
}

func buildStanza(name string, sb *stravaganza.Builder) (stravaganza.Stanza, error) {
	switch name {
	case "iq":
		return sb.BuildIQ()
	case "presence":
		return sb.BuildPresence()
	case "message":
		return sb.BuildMessage()
	}
	return nil, fmt.Errorf("xmpputil: unsupported stanza type: %s", name)
}
