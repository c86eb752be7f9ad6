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

package traffic

import (
	"github.com/ortuman/traffic/pkg/module"
	"github.com/ortuman/traffic/pkg/module/deliver"
	"github.com/ortuman/traffic/pkg/module/presence"
	"github.com/ortuman/traffic/pkg/module/roster"
	"github.com/ortuman/traffic/pkg/module/subscription"
	"github.com/ortuman/traffic/pkg/module/xep0012"
	"github.com/ortuman/traffic/pkg/module/xep0030"
	"github.com/ortuman/traffic/pkg/module/xep0092"
	"github.com/ortuman/traffic/pkg/module/xep0199"
	"github.com/ortuman/traffic/pkg/module/xep0202"
)

var modFns = map[string]func(t *Traffic, cfg *ModulesConfig) module.Module{
	// Roster
	// (https://xmpp.org/rfcs/rfc6121.html#roster)
	roster.ModuleName: func(t *Traffic, _ *ModulesConfig) module.Module {
		return roster.New(t.rep, t.logger)
	},
	// Presence
	// (https://xmpp.org/rfcs/rfc6121.html#presence)
	presence.ModuleName: func(t *Traffic, _ *ModulesConfig) module.Module {
		return t.presenceModule()
	},
	// Subscription and pre-approval
	// (https://xmpp.org/rfcs/rfc6121.html#sub)
	subscription.ModuleName: func(t *Traffic, _ *ModulesConfig) module.Module {
		return subscription.New(t.rep, t.parser, t.router, t.logger)
	},
	// Bare JID message delivery
	// (https://xmpp.org/rfcs/rfc6121.html#rules-localpart-barejid)
	deliver.ModuleName: func(t *Traffic, _ *ModulesConfig) module.Module {
		return deliver.New(t.presenceModule(), t.router, t.logger)
	},
	// XEP-0012: Last Activity
	// (https://xmpp.org/extensions/xep-0012.html)
	xep0012.ModuleName: func(t *Traffic, _ *ModulesConfig) module.Module {
		return xep0012.New(t.rep, t.parser, t.logger)
	},
	// XEP-0030: Service Discovery
	// (https://xmpp.org/extensions/xep-0030.html)
	xep0030.ModuleName: func(t *Traffic, _ *ModulesConfig) module.Module {
		return xep0030.New(t.rep, t.logger)
	},
	// XEP-0092: Software Version
	// (https://xmpp.org/extensions/xep-0092.html)
	xep0092.ModuleName: func(t *Traffic, cfg *ModulesConfig) module.Module {
		return xep0092.New(cfg.Version, t.logger)
	},
	// XEP-0199: XMPP Ping
	// (https://xmpp.org/extensions/xep-0199.html)
	xep0199.ModuleName: func(t *Traffic, _ *ModulesConfig) module.Module {
		return xep0199.New(t.logger)
	},
	// XEP-0202: Entity Time
	// (https://xmpp.org/extensions/xep-0202.html)
	xep0202.ModuleName: func(t *Traffic, _ *ModulesConfig) module.Module {
		return xep0202.New(t.logger)
	},
}

var defaultModules = []string{
	roster.ModuleName,
	presence.ModuleName,
	subscription.ModuleName,
	deliver.ModuleName,
	xep0012.ModuleName,
	xep0030.ModuleName,
	xep0092.ModuleName,
	xep0199.ModuleName,
	xep0202.ModuleName,
}

// presenceModule returns the presence engine shared by every module depending on it.
func (t *Traffic) presenceModule() *presence.Presence {
	if t.presence == nil {
		t.presence = presence.New(t.rep, t.parser, t.router, t.logger)
	}
	return t.presence
}
