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
	"fmt"
	"net/http"
	"strings"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/sony/gobreaker"
)

// DomainHeader carries the remote domain a gateway request is addressed to.
const DomainHeader = "X-Traffic-Domain"

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type httpGateway struct {
	url       string
	authToken string
	cb        *gobreaker.CircuitBreaker
	client    httpClient
	logger    kitlog.Logger
}

func newHTTPGateway(cfg Config, logger kitlog.Logger) *httpGateway {
	logger = kitlog.With(logger, "component", "s2s.gateway")
	failures := cfg.Breaker.ConsecutiveFailures
	return &httpGateway{
		url:       cfg.GatewayURL,
		authToken: cfg.AuthToken,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "s2s.gateway",
			MaxRequests: cfg.Breaker.MaxRequests,
			Interval:    cfg.Breaker.Interval,
			Timeout:     cfg.Breaker.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return failures > 0 && counts.ConsecutiveFailures >= failures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				level.Info(logger).Log("msg", "circuit breaker state changed", "from", from.String(), "to", to.String())
			},
		}),
		client: &http.Client{Timeout: cfg.RequestTimeout},
		logger: logger,
	}
}

// Forward satisfies Forwarder interface.
func (g *httpGateway) Forward(ctx context.Context, domain string, stanza stravaganza.Stanza) error {
	_, err := g.cb.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, strings.NewReader(stanza.String()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/xml")
		req.Header.Set(DomainHeader, domain)
		if len(g.authToken) > 0 {
			req.Header.Set("Authorization", g.authToken)
		}
		resp, err := g.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()

		switch resp.StatusCode {
		case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
			return nil, nil
		case http.StatusNotFound:
			return nil, ErrRemoteServerNotFound
		default:
			return nil, fmt.Errorf("s2s: gateway response status code: %d", resp.StatusCode)
		}
	})
	reportOutgoingRequest(stanza.Name(), err == nil)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%w: %v", ErrRemoteServerNotFound, err)
	default:
		return err
	}
}
