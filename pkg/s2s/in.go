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
	"io"
	"net/http"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	xmppparser "github.com/ortuman/traffic/pkg/parser"
	xmpputil "github.com/ortuman/traffic/pkg/util/xmpp"
)

//go:generate moq -out processor.mock_test.go . localProcessor:processorMock
type localProcessor interface {
	ProcessLocal(ctx context.Context, stanza stravaganza.Stanza) error
}

// InHandler accepts stanzas delivered by the federation gateway and injects them as local traffic.
type InHandler struct {
	proc      localProcessor
	parser    *xmppparser.Parser
	authToken string
	maxSize   int
	logger    kitlog.Logger
}

// NewInHandler returns a new initialized InHandler.
func NewInHandler(proc localProcessor, cfg Config, logger kitlog.Logger) *InHandler {
	return &InHandler{
		proc:      proc,
		parser:    xmppparser.New(cfg.MaxStanzaSize),
		authToken: cfg.AuthToken,
		maxSize:   cfg.MaxStanzaSize,
		logger:    kitlog.With(logger, "component", "s2s.in"),
	}
}

// ServeHTTP satisfies http.Handler interface.
func (h *InHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if len(h.authToken) > 0 && r.Header.Get("Authorization") != h.authToken {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	b, err := io.ReadAll(io.LimitReader(r.Body, int64(h.maxSize)+1))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if len(b) > h.maxSize {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		return
	}
	stanza, err := h.parser.ParseStanza(string(b))
	if err != nil {
		level.Debug(h.logger).Log("msg", "discarded malformed inbound stanza", "err", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if len(stanza.Attribute(stravaganza.From)) == 0 || len(stanza.Attribute(stravaganza.To)) == 0 {
		reportIncomingRequest(stanza.Name(), false)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if stanza.Attribute(stravaganza.Namespace) == xmpputil.ServerNamespace {
		stanza, err = xmpputil.WithAttributes(stanza, stravaganza.Attribute{
			Label: stravaganza.Namespace,
			Value: xmpputil.ClientNamespace,
		})
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}
	if err := h.proc.ProcessLocal(r.Context(), stanza); err != nil {
		reportIncomingRequest(stanza.Name(), false)
		level.Warn(h.logger).Log("msg", "failed to process inbound stanza", "from", stanza.Attribute(stravaganza.From), "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	reportIncomingRequest(stanza.Name(), true)
	w.WriteHeader(http.StatusAccepted)
}
