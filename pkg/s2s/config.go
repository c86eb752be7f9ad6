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

import "time"

// BreakerConfig contains federation gateway circuit breaker configuration.
type BreakerConfig struct {
	// MaxRequests is the number of requests allowed to pass through while half-open.
	MaxRequests uint32 `fig:"max_requests" default:"1"`

	// Interval is the closed state cyclic period used to clear internal counts.
	Interval time.Duration `fig:"interval"`

	// Timeout is the open state period after which breaker turns half-open.
	Timeout time.Duration `fig:"timeout" default:"30s"`

	// ConsecutiveFailures is the number of consecutive failures that trips the breaker.
	ConsecutiveFailures uint32 `fig:"consecutive_failures" default:"5"`
}

// Config contains federation configuration.
type Config struct {
	// GatewayURL is the federation gateway endpoint. Federation is disabled when empty.
	GatewayURL string `fig:"gateway_url"`

	// AuthToken is sent as Authorization header to the gateway and expected from it on inbound requests.
	AuthToken string `fig:"auth_token"`

	// RequestTimeout bounds every gateway request.
	RequestTimeout time.Duration `fig:"request_timeout" default:"5s"`

	// MaxStanzaSize bounds the size of inbound stanzas.
	MaxStanzaSize int `fig:"max_stanza_size" default:"65536"`

	Breaker BreakerConfig `fig:"breaker"`
}
