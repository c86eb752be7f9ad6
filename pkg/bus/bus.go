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

package bus

import (
	"context"
	"errors"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"
)

// ErrNotStarted is returned when subscribing to a bus that has not been started.
var ErrNotStarted = errors.New("bus: not started")

// Subscriber receives the payloads published on the channels it subscribed to.
type Subscriber interface {
	// ID uniquely identifies a subscriber.
	ID() string

	// Receive is invoked from the bus delivery loop. Implementations must not block.
	Receive(ctx context.Context, channel, payload string)
}

// Bus is a Redis pub/sub backed delivery bus.
// All local subscribers share a single Redis subscription connection.
type Bus struct {
	rdb    *redis.Client
	logger kitlog.Logger

	mu   sync.RWMutex
	ps   *redis.PubSub
	subs map[string][]Subscriber

	doneCh chan struct{}
}

// New returns a new Bus instance backed by rdb.
func New(rdb *redis.Client, logger kitlog.Logger) *Bus {
	return &Bus{
		rdb:    rdb,
		logger: kitlog.With(logger, "component", "bus"),
		subs:   make(map[string][]Subscriber),
	}
}

// Publish publishes payload on channel.
func (b *Bus) Publish(ctx context.Context, channel, payload string) error {
	return b.rdb.Publish(ctx, channel, payload).Err()
}

// Subscribe registers s as a receiver of channel payloads.
// Subscribing the same subscriber twice to a channel has no effect.
func (b *Bus) Subscribe(ctx context.Context, channel string, s Subscriber) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ps == nil {
		return ErrNotStarted
	}
	subs := b.subs[channel]
	for _, sub := range subs {
		if sub.ID() == s.ID() {
			return nil
		}
	}
	if len(subs) == 0 {
		if err := b.ps.Subscribe(ctx, channel); err != nil {
			return err
		}
	}
	b.subs[channel] = append(subs, s)
	return nil
}

// Unsubscribe removes s from channel receivers.
func (b *Bus) Unsubscribe(ctx context.Context, channel string, s Subscriber) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[channel]
	for i, sub := range subs {
		if sub.ID() != s.ID() {
			continue
		}
		subs = append(subs[:i], subs[i+1:]...)
		if len(subs) > 0 {
			b.subs[channel] = subs
			return nil
		}
		delete(b.subs, channel)
		if b.ps == nil {
			return nil
		}
		return b.ps.Unsubscribe(ctx, channel)
	}
	return nil
}

// SubscriberCount returns the number of local subscribers of channel.
func (b *Bus) SubscriberCount(channel string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[channel])
}

// Start opens the subscription connection and starts the delivery loop.
func (b *Bus) Start(ctx context.Context) error {
	if err := b.rdb.Ping(ctx).Err(); err != nil {
		return err
	}
	ps := b.rdb.Subscribe(ctx)

	b.mu.Lock()
	b.ps = ps
	b.doneCh = make(chan struct{})
	b.mu.Unlock()

	go b.loop(ps.Channel(), b.doneCh)

	level.Info(b.logger).Log("msg", "started bus")
	return nil
}

// Stop closes the subscription connection.
func (b *Bus) Stop(_ context.Context) error {
	b.mu.Lock()
	ps, doneCh := b.ps, b.doneCh
	b.ps = nil
	b.subs = make(map[string][]Subscriber)
	b.mu.Unlock()

	if ps == nil {
		return nil
	}
	if err := ps.Close(); err != nil {
		return err
	}
	<-doneCh

	level.Info(b.logger).Log("msg", "stopped bus")
	return nil
}

func (b *Bus) loop(ch <-chan *redis.Message, doneCh chan<- struct{}) {
	defer close(doneCh)

	ctx := context.Background()
	for msg := range ch {
		b.mu.RLock()
		subs := make([]Subscriber, len(b.subs[msg.Channel]))
		copy(subs, b.subs[msg.Channel])
		b.mu.RUnlock()

		if len(subs) == 0 {
			level.Debug(b.logger).Log("msg", "dropping message on unsubscribed channel", "channel", msg.Channel)
			continue
		}
		for _, s := range subs {
			s.Receive(ctx, msg.Channel, msg.Payload)
		}
	}
}
