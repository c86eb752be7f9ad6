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

package pipeline

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"

	"github.com/jackal-xmpp/stravaganza/v2"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	xmpputil "github.com/ortuman/traffic/pkg/util/xmpp"
)

// Priority defines stage execution priority.
type Priority int32

const (
	// LowestPriority defines lowest stage execution priority.
	LowestPriority = Priority(math.MinInt32)

	// LowPriority defines low stage execution priority.
	LowPriority = Priority(math.MinInt32 + 1000)

	// DefaultPriority defines default stage execution priority.
	DefaultPriority = Priority(0)

	// HighPriority defines high stage execution priority.
	HighPriority = Priority(math.MaxInt32 - 1000)

	// HighestPriority defines highest stage execution priority.
	HighestPriority = Priority(math.MaxInt32)
)

// ErrHandled error is returned by a stage to signal the stanza was fully handled.
// No more stages are invoked after it.
var ErrHandled = errors.New("pipeline: stanza handled")

// Router defines the routing capabilities a stage may rely on.
type Router interface {
	// Process routes stanza determining its locality from the stanza addresses.
	Process(ctx context.Context, stanza stravaganza.Stanza) error

	// Route delivers stanza to the live connections listening on j.
	Route(ctx context.Context, j *jid.JID, stanza stravaganza.Stanza) error
}

// ReplyFunc sends a response back to the originator of the stanza being processed.
type ReplyFunc func(ctx context.Context, stanza stravaganza.Stanza) error

// Context is the per stanza pipeline execution context.
type Context struct {
	// Context is the stanza processing context.
	Context context.Context

	// Stanza is the stanza being processed. Stages may replace it for the following ones.
	Stanza stravaganza.Stanza

	// Local tells whether the stanza originated from a local connection.
	Local bool

	// Router is used by stages to deliver stanzas.
	Router Router

	// Reply sends a response back to the stanza sender.
	Reply ReplyFunc

	// Response is the response template of the stanza being processed.
	Response stravaganza.Stanza
}

// Respond replies with the response template carrying the given children.
func (pc *Context) Respond(children ...stravaganza.Element) error {
	resp := pc.Response
	if resp == nil {
		resp = xmpputil.MakeResponse(pc.Stanza.ToJID(), pc.Stanza)
	}
	b := stravaganza.NewBuilderFromElement(resp).WithChildren(children...)

	var st stravaganza.Stanza
	var err error
	switch resp.Name() {
	case "iq":
		st, err = b.BuildIQ()
	case "presence":
		st, err = b.BuildPresence()
	default:
		st, err = b.BuildMessage()
	}
	if err != nil {
		return err
	}
	return pc.Reply(pc.Context, st)
}

// Stage defines a pipeline stage function.
type Stage func(pc *Context) error

type stage struct {
	name string
	fn   Stage
	p    Priority
}

// Pipeline represents an ordered list of named stages.
type Pipeline struct {
	name string

	mu     sync.RWMutex
	stages []stage
}

// New returns a new empty Pipeline.
func New(name string) *Pipeline {
	return &Pipeline{name: name}
}

// Name returns pipeline name.
func (p *Pipeline) Name() string { return p.name }

// Add registers a named stage providing an execution priority value.
// Stages with a higher priority are executed first, equal priorities keep registration order.
func (p *Pipeline) Add(name string, fn Stage, priority Priority) {
	p.mu.Lock()
	defer p.mu.Unlock()

	stages := append(p.stages, stage{name: name, fn: fn, p: priority})
	sort.SliceStable(stages, func(i, j int) bool { return stages[i].p > stages[j].p })
	p.stages = stages
}

// Remove unregisters a named stage.
func (p *Pipeline) Remove(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, s := range p.stages {
		if s.name != name {
			continue
		}
		p.stages = append(p.stages[:i], p.stages[i+1:]...)
		return
	}
}

// Stages returns registered stage names in execution order.
func (p *Pipeline) Stages() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	names := make([]string, 0, len(p.stages))
	for _, s := range p.stages {
		names = append(names, s.name)
	}
	return names
}

// Run invokes all stages in order.
// If handled return value is true a stage fully handled the stanza.
func (p *Pipeline) Run(pc *Context) (handled bool, err error) {
	p.mu.RLock()
	stages := p.stages
	p.mu.RUnlock()

	for _, s := range stages {
		err := s.fn(pc)
		switch {
		case err == nil:
			continue
		case errors.Is(err, ErrHandled):
			return true, nil
		default:
			return false, err
		}
	}
	return false, nil
}

// Exec runs the pipeline converting a returned stanza error into a single reply.
// Errors of any other kind are returned to the caller.
func (p *Pipeline) Exec(pc *Context) (handled bool, err error) {
	handled, err = p.Run(pc)
	if err == nil {
		return handled, nil
	}
	var se *stanzaerror.Error
	if !errors.As(err, &se) {
		return false, err
	}
	if pc.Stanza.Attribute(stravaganza.Type) == stravaganza.ErrorType {
		return true, nil // never answer an error with an error
	}
	errStanza, err := se.Stanza(false)
	if err != nil {
		return false, err
	}
	return true, pc.Reply(pc.Context, errStanza)
}
