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
	"errors"
	"fmt"
)

const (
	localMarker  = '!'
	remoteMarker = '^'
)

// ErrInvalidEntry is returned when decoding a malformed queue entry.
var ErrInvalidEntry = errors.New("queue: invalid entry")

// Entry represents a durable queue element.
type Entry struct {
	// Local tells whether the stanza originated locally, as opposed to arriving from a federated peer.
	Local bool

	// Stanza contains the serialized stanza.
	Stanza string
}

// Encode returns entry serialized form.
func (e Entry) Encode() string {
	if e.Local {
		return string(localMarker) + e.Stanza
	}
	return string(remoteMarker) + e.Stanza
}

// DecodeEntry decodes a serialized queue entry.
func DecodeEntry(s string) (Entry, error) {
	if len(s) < 2 {
		return Entry{}, fmt.Errorf("%w: %q", ErrInvalidEntry, s)
	}
	switch s[0] {
	case localMarker:
		return Entry{Local: true, Stanza: s[1:]}, nil
	case remoteMarker:
		return Entry{Local: false, Stanza: s[1:]}, nil
	default:
		return Entry{}, fmt.Errorf("%w: unknown marker %q", ErrInvalidEntry, s[0])
	}
}
