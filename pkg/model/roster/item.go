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

package rostermodel

// Subscription values as carried by the roster item 'subscription' attribute.
const (
	SubscriptionNone   = "none"
	SubscriptionTo     = "to"
	SubscriptionFrom   = "from"
	SubscriptionBoth   = "both"
	SubscriptionRemove = "remove"
)

// State represents one of the canonical subscription states.
type State int

const (
	// None means neither side is subscribed and nothing is pending.
	None State = iota

	// NonePendingOut means the owner requested a subscription to the contact.
	NonePendingOut

	// NonePendingIn means the contact requested a subscription to the owner.
	NonePendingIn

	// NonePendingOutIn means both requests are pending.
	NonePendingOutIn

	// To means the owner is subscribed to the contact's presence.
	To

	// ToPendingIn means the owner is subscribed and the contact requested a subscription.
	ToPendingIn

	// From means the contact is subscribed to the owner's presence.
	From

	// FromPendingOut means the contact is subscribed and the owner requested a subscription.
	FromPendingOut

	// Both means mutual subscription.
	Both
)

// String satisfies fmt.Stringer interface.
func (s State) String() string {
	switch s {
	case None:
		return "none"
	case NonePendingOut:
		return "none+pending_out"
	case NonePendingIn:
		return "none+pending_in"
	case NonePendingOutIn:
		return "none+pending_out_in"
	case To:
		return "to"
	case ToPendingIn:
		return "to+pending_in"
	case From:
		return "from"
	case FromPendingOut:
		return "from+pending_out"
	case Both:
		return "both"
	}
	return ""
}

// Item represents a roster item keyed by (Owner, Contact) bare JIDs.
type Item struct {
	Owner   string
	Contact string
	Name    string
	Groups  []string

	// To tells whether the owner is subscribed to the contact's presence.
	To bool

	// From tells whether the contact is subscribed to the owner's presence.
	From bool

	// Ask holds the last unresolved outbound subscription request.
	Ask string

	// Approved tells whether the owner pre-approved a subscription request from the contact.
	Approved bool

	// In holds the last unresolved inbound subscription request.
	In string
}

// Subscription returns the subscription attribute value derived from To and From flags.
func (ri *Item) Subscription() string {
	switch {
	case ri.To && ri.From:
		return SubscriptionBoth
	case ri.To:
		return SubscriptionTo
	case ri.From:
		return SubscriptionFrom
	}
	return SubscriptionNone
}

// PendingOut tells whether there's an unresolved outbound request.
func (ri *Item) PendingOut() bool { return len(ri.Ask) > 0 }

// PendingIn tells whether there's an unresolved inbound request.
func (ri *Item) PendingIn() bool { return len(ri.In) > 0 }

// IsDummy tells whether the item only exists to remember an inbound subscription request,
// that is, the contact was never added to the owner's roster.
func (ri *Item) IsDummy() bool {
	return !ri.To && !ri.From && !ri.Approved && !ri.PendingOut() &&
		len(ri.Name) == 0 && len(ri.Groups) == 0
}

// State returns the canonical subscription state of the item.
func (ri *Item) State() State {
	out, in := ri.PendingOut(), ri.PendingIn()
	switch {
	case ri.To && ri.From:
		return Both
	case ri.To && in:
		return ToPendingIn
	case ri.To:
		return To
	case ri.From && out:
		return FromPendingOut
	case ri.From:
		return From
	case out && in:
		return NonePendingOutIn
	case out:
		return NonePendingOut
	case in:
		return NonePendingIn
	}
	return None
}
