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

package router

import (
	"context"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	xmppparser "github.com/ortuman/traffic/pkg/parser"
)

// connListener delivers route channel payloads to a live connection.
type connListener struct {
	conn   Conn
	parser *xmppparser.Parser
	logger kitlog.Logger
}

func (l *connListener) ID() string { return l.conn.ID() }

func (l *connListener) Receive(_ context.Context, channel, payload string) {
	elem, err := l.parser.Parse(payload)
	if err != nil {
		level.Warn(l.logger).Log("msg", "discarded malformed routed stanza", "channel", channel, "err", err)
		return
	}
	// write failures are reported by the connection itself
	_ = l.conn.SendElement(elem)
}
