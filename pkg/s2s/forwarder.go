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

package s2s

import (
	"context"
	"errors"

	kitlog "github.com/go-kit/log"
	"github.com/jackal-xmpp/stravaganza/v2"
)

// ErrRemoteServerNotFound is returned by a Forwarder when the remote domain could not be reached.
var ErrRemoteServerNotFound = errors.New("s2s: remote server not found")

// Forwarder delivers stanzas to federated domains.
type Forwarder interface {
	// Forward sends a server namespaced stanza to domain.
	Forward(ctx context.Context, domain string, stanza stravaganza.Stanza) error
}

// NewForwarder returns the Forwarder described by cfg.
// Every forward attempt fails with ErrRemoteServerNotFound if no gateway is configured.
func NewForwarder(cfg Config, logger kitlog.Logger) Forwarder {
	if len(cfg.GatewayURL) == 0 {
		return disabledForwarder{}
	}
	return newHTTPGateway(cfg, logger)
}

type disabledForwarder struct{}

func (disabledForwarder) Forward(_ context.Context, _ string, _ stravaganza.Stanza) error {
	return ErrRemoteServerNotFound
}
