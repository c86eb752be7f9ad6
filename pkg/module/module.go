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

package module

import (
	"context"
	"sort"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
	"github.com/ortuman/traffic/pkg/pipeline"
)

const iqStageName = "modules.iq"

// Module represents generic module interface.
type Module interface {
	// Name returns specific module name.
	Name() string

	// StreamFeature returns module stream feature element.
	StreamFeature(ctx context.Context, domain string) (stravaganza.Element, error)

	// ServerFeatures returns module server features.
	ServerFeatures(ctx context.Context) ([]string, error)

	// AccountFeatures returns module account features.
	AccountFeatures(ctx context.Context) ([]string, error)

	// Start starts module.
	Start(ctx context.Context) error

	// Stop stops module.
	Stop(ctx context.Context) error
}

// IQProcessor represents an iq processor module type.
type IQProcessor interface {
	Module

	// MatchesNamespace tells whether iq child namespace corresponds to this module.
	// The serverTarget parameter will be true in case iq target is a server entity.
	MatchesNamespace(namespace string, serverTarget bool) bool

	// ProcessIQ will be invoked whenever iq stanza should be processed by this module.
	// A returned stanza error is replied back to the iq sender.
	ProcessIQ(pc *pipeline.Context, iq *stravaganza.IQ) error
}

// Observer is implemented by modules that need to inspect the whole module set once started.
type Observer interface {
	ModulesStarted(ctx context.Context, mods *Modules) error
}

//go:generate moq -out iqprocessor.mock_test.go . IQProcessor:iqProcessorMock
type pipelines interface {
	User() *pipeline.Pipeline
	Server() *pipeline.Pipeline
}

// Modules is the global module hub.
type Modules struct {
	mods         []Module
	iqProcessors []IQProcessor
	pipelines    pipelines
	logger       kitlog.Logger
}

// NewModules returns a new initialized Modules instance.
func NewModules(mods []Module, pipelines pipelines, logger kitlog.Logger) *Modules {
	m := &Modules{
		mods:      mods,
		pipelines: pipelines,
		logger:    kitlog.With(logger, "component", "modules"),
	}
	for _, mod := range mods {
		if iqPr, ok := mod.(IQProcessor); ok {
			m.iqProcessors = append(m.iqProcessors, iqPr)
		}
	}
	return m
}

// Start starts modules.
func (m *Modules) Start(ctx context.Context) error {
	var modNames []string
	for _, mod := range m.mods {
		if err := mod.Start(ctx); err != nil {
			return err
		}
		modNames = append(modNames, mod.Name())
	}
	if len(m.iqProcessors) > 0 {
		m.pipelines.User().Add(iqStageName, m.processIQ, pipeline.HighPriority)
		m.pipelines.Server().Add(iqStageName, m.processIQ, pipeline.DefaultPriority)
	}
	for _, mod := range m.mods {
		obs, ok := mod.(Observer)
		if !ok {
			continue
		}
		if err := obs.ModulesStarted(ctx, m); err != nil {
			return err
		}
	}
	level.Info(m.logger).Log("msg", "started modules", "iq_processors_count", len(m.iqProcessors), "mods", modNames)
	return nil
}

// Stop stops modules.
func (m *Modules) Stop(ctx context.Context) error {
	m.pipelines.User().Remove(iqStageName)
	m.pipelines.Server().Remove(iqStageName)

	for _, mod := range m.mods {
		if err := mod.Stop(ctx); err != nil {
			return err
		}
	}
	level.Info(m.logger).Log("msg", "stopped modules", "mods_count", len(m.mods))
	return nil
}

// StreamFeatures returns stream features of all registered modules.
func (m *Modules) StreamFeatures(ctx context.Context, domain string) ([]stravaganza.Element, error) {
	var sfs []stravaganza.Element
	for _, mod := range m.mods {
		sf, err := mod.StreamFeature(ctx, domain)
		if err != nil {
			return nil, err
		}
		if sf != nil {
			sfs = append(sfs, sf)
		}
	}
	return sfs, nil
}

// ServerFeatures returns the sorted set of server features announced by all modules.
func (m *Modules) ServerFeatures(ctx context.Context) ([]string, error) {
	return m.collectFeatures(func(mod Module) ([]string, error) { return mod.ServerFeatures(ctx) })
}

// AccountFeatures returns the sorted set of account features announced by all modules.
func (m *Modules) AccountFeatures(ctx context.Context) ([]string, error) {
	return m.collectFeatures(func(mod Module) ([]string, error) { return mod.AccountFeatures(ctx) })
}

// IsEnabled tells whether a specific module it's been registered.
func (m *Modules) IsEnabled(moduleName string) bool {
	for _, mod := range m.mods {
		if mod.Name() == moduleName {
			return true
		}
	}
	return false
}

// AllModules returns all configured modules.
func (m *Modules) AllModules() []Module {
	return m.mods
}

func (m *Modules) processIQ(pc *pipeline.Context) error {
	iq, ok := pc.Stanza.(*stravaganza.IQ)
	if !ok || !(iq.IsGet() || iq.IsSet()) {
		return nil
	}
	children := iq.AllChildren()
	if len(children) != 1 {
		return stanzaerror.E(stanzaerror.BadRequest, iq)
	}
	ns := children[0].Attribute(stravaganza.Namespace)
	serverTarget := iq.ToJID().IsServer()

	for _, iqPr := range m.iqProcessors {
		if !iqPr.MatchesNamespace(ns, serverTarget) {
			continue
		}
		if err := iqPr.ProcessIQ(pc, iq); err != nil {
			return err
		}
		return pipeline.ErrHandled
	}
	return nil
}

func (m *Modules) collectFeatures(fn func(mod Module) ([]string, error)) ([]string, error) {
	set := make(map[string]struct{})
	for _, mod := range m.mods {
		features, err := fn(mod)
		if err != nil {
			return nil, err
		}
		for _, f := range features {
			set[f] = struct{}{}
		}
	}
	ret := make([]string, 0, len(set))
	for f := range set {
		ret = append(ret, f)
	}
	sort.Strings(ret)
	return ret, nil
}
