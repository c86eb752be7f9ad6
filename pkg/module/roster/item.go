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
	"errors"
	"fmt"

	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	rostermodel "github.com/ortuman/traffic/pkg/model/roster"
)

func decodeItem(elem stravaganza.Element) (*rostermodel.Item, error) {
	if elem.Name() != "item" {
		return nil, fmt.Errorf("roster: invalid item element name: %s", elem.Name())
	}
	jidStr := elem.Attribute("jid")
	if len(jidStr) == 0 {
		return nil, errors.New("roster: item 'jid' attribute is required")
	}
	j, err := jid.NewWithString(jidStr, false)
	if err != nil {
		return nil, err
	}
	switch sub := elem.Attribute("subscription"); sub {
	case "", rostermodel.SubscriptionNone, rostermodel.SubscriptionTo, rostermodel.SubscriptionFrom,
		rostermodel.SubscriptionBoth, rostermodel.SubscriptionRemove:
		break
	default:
		return nil, fmt.Errorf("roster: unrecognized 'subscription' enum type: %s", sub)
	}
	ri := &rostermodel.Item{
		Contact: j.ToBareJID().String(),
		Name:    elem.Attribute("name"),
	}
	seen := make(map[string]struct{})
	for _, group := range elem.Children("group") {
		if group.AttributeCount() > 0 {
			return nil, errors.New("roster: group element must not contain any attribute")
		}
		name := group.Text()
		if len(name) == 0 {
			return nil, errors.New("roster: empty group name")
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("roster: duplicated group: %s", name)
		}
		seen[name] = struct{}{}
		ri.Groups = append(ri.Groups, name)
	}
	return ri, nil
}
