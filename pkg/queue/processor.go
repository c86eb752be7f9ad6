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

package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	"github.com/ortuman/traffic/pkg/bus"
	"github.com/ortuman/traffic/pkg/locker"
)

const processorID = "queue.processor"

//go:generate moq -out dispatcher.mock_test.go . Dispatcher:dispatcherMock
//go:generate moq -out locker.mock_test.go ../locker Locker:lockerMock Lock:lockMock

// Dispatcher processes a stanza popped from a destination queue.
type Dispatcher interface {
	Dispatch(ctx context.Context, local bool, j *jid.JID, raw string) error
}

type subscriptions interface {
	Subscribe(ctx context.Context, channel string, s bus.Subscriber) error
	Unsubscribe(ctx context.Context, channel string, s bus.Subscriber) error
}

// Processor drains destination queues on every push notification.
// A lease lock guarantees that at most one processor drains a given queue at a time.
type Processor struct {
	q          *Queue
	locker     locker.Locker
	subs       subscriptions
	dispatcher Dispatcher
	cfg        Config
	logger     kitlog.Logger

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// NewProcessor returns a new initialized Processor.
func NewProcessor(
	q *Queue,
	locker locker.Locker,
	subs subscriptions,
	dispatcher Dispatcher,
	cfg Config,
	logger kitlog.Logger,
) *Processor {
	ctx, cancel := context.WithCancel(context.Background())
	return &Processor{
		q:          q,
		locker:     locker,
		subs:       subs,
		dispatcher: dispatcher,
		cfg:        cfg,
		logger:     kitlog.With(logger, "component", "queue.processor"),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// ID satisfies bus.Subscriber interface.
func (p *Processor) ID() string { return processorID }

// Receive satisfies bus.Subscriber interface.
func (p *Processor) Receive(_ context.Context, _, payload string) {
	if !strings.HasPrefix(payload, keyPrefix) {
		return
	}
	key := strings.TrimPrefix(payload, keyPrefix)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		if err := p.Drain(p.ctx, key); err != nil {
			drainErrors.Inc()
			level.Warn(p.logger).Log("msg", "failed to drain queue", "queue", key, "err", err)
		}
	}()
}

// Drain dispatches key queue entries in order while holding its lease lock.
// An entry is removed only after being dispatched, so a failed dispatch leaves it queued
// for the next drain attempt. Entries that can never be dispatched are discarded.
// Lock contention is not reported as an error.
func (p *Processor) Drain(ctx context.Context, key string) error {
	dst, err := jid.NewWithString(key, true)
	if err != nil {
		return fmt.Errorf("queue: invalid destination %q: %w", key, err)
	}
	for {
		emptied, err := p.drain(ctx, key, dst)
		if err != nil || !emptied {
			return err
		}
		// a push may have landed right before the lease was released
		n, err := p.q.Len(ctx, key)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
	}
}

func (p *Processor) drain(ctx context.Context, key string, dst *jid.JID) (emptied bool, err error) {
	lk, err := p.locker.AcquireLock(ctx, key, p.cfg.LockTTL)
	if errors.Is(err, locker.ErrNotAcquired) {
		lockContended.Inc()
		return false, nil
	}
	if err != nil {
		return false, err
	}
	for {
		e, err := p.q.Peek(ctx, key)
		if err != nil {
			p.discardInvalid(ctx, key, err)
			p.release(ctx, lk, key)
			return false, err
		}
		if e == nil {
			p.release(ctx, lk, key)
			return true, nil
		}
		if err := p.dispatcher.Dispatch(ctx, e.Local, dst, e.Stanza); err != nil {
			p.discardInvalid(ctx, key, err)
			p.release(ctx, lk, key)
			return false, err
		}
		if err := p.q.Ack(ctx, key); err != nil {
			p.release(ctx, lk, key)
			return false, err
		}
		dispatched.Inc()

		if err := lk.Extend(ctx, p.cfg.LockTTL); err != nil {
			if errors.Is(err, locker.ErrLost) {
				level.Debug(p.logger).Log("msg", "queue lock taken over", "queue", key)
				return false, nil
			}
			p.release(ctx, lk, key)
			return false, err
		}
	}
}

func (p *Processor) discardInvalid(ctx context.Context, key string, err error) {
	if !errors.Is(err, ErrInvalidEntry) {
		return
	}
	level.Error(p.logger).Log("msg", "discarding invalid queue entry", "queue", key, "err", err)
	if err := p.q.Ack(ctx, key); err != nil {
		level.Warn(p.logger).Log("msg", "failed to discard invalid queue entry", "queue", key, "err", err)
	}
}

func (p *Processor) release(ctx context.Context, lk locker.Lock, key string) {
	if err := lk.Release(ctx); err != nil {
		level.Warn(p.logger).Log("msg", "failed to release queue lock", "queue", key, "err", err)
	}
}

// Start subscribes processor to queue notifications.
func (p *Processor) Start(ctx context.Context) error {
	ch := p.cfg.Channel()
	if err := p.subs.Subscribe(ctx, ch, p); err != nil {
		return err
	}
	level.Info(p.logger).Log("msg", "started queue processor", "channel", ch)
	return nil
}

// Stop unsubscribes processor and waits for in-flight drains to complete.
func (p *Processor) Stop(ctx context.Context) error {
	if err := p.subs.Unsubscribe(ctx, p.cfg.Channel(), p); err != nil {
		return err
	}
	doneCh := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(doneCh)
	}()
	select {
	case <-doneCh:
	case <-ctx.Done():
		p.cancel()
		return ctx.Err()
	}
	p.cancel()

	level.Info(p.logger).Log("msg", "stopped queue processor")
	return nil
}

func keyspaceChannel(db int) string {
	return fmt.Sprintf("__keyevent@%d__:lpush", db)
}
