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
	"errors"
	"fmt"

	"github.com/ortuman/traffic/pkg/queue"
)

var (
	// ErrMissingFrom will be returned by Process if the stanza carries no sender address.
	ErrMissingFrom = errors.New("router: missing stanza from address")

	// ErrUnparsableEntry will be returned by Dispatch if the queued stanza could not be parsed.
	// It wraps queue.ErrInvalidEntry so that the entry gets discarded.
	ErrUnparsableEntry = fmt.Errorf("router: unparsable queue entry: %w", queue.ErrInvalidEntry)

	// ErrFullJIDDispatch will be returned by Dispatch if a local full JID queue gets drained.
	// It wraps queue.ErrInvalidEntry so that the entry gets discarded.
	ErrFullJIDDispatch = fmt.Errorf("router: full JID dispatch not supported: %w", queue.ErrInvalidEntry)
)
