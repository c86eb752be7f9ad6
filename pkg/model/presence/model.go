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

package presencemodel

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackal-xmpp/stravaganza/v2"
)

// ErrInvalidPriority is returned by ParsePriority when priority is not an integer in [-128, 127].
var ErrInvalidPriority = errors.New("presencemodel: invalid priority")

// Session represents the last known presence of an owner's resource.
type Session struct {
	Owner     string    `json:"-"`
	Resource  string    `json:"-"`
	Priority  int8      `json:"priority"`
	Presence  string    `json:"presence"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Last represents the last unavailable presence of an owner.
type Last struct {
	Owner     string
	Presence  string
	Timestamp time.Time
}

// Directed represents a directed presence sent by Owner to Target outside the roster.
type Directed struct {
	Owner  string
	Target string
}

// ParsePriority returns the value of the presence priority child.
// An absent priority defaults to zero.
func ParsePriority(pr stravaganza.Element) (int8, error) {
	elem := pr.Child("priority")
	if elem == nil {
		return 0, nil
	}
	p, err := strconv.ParseInt(strings.TrimSpace(elem.Text()), 10, 8)
	if err != nil {
		return 0, ErrInvalidPriority
	}
	return int8(p), nil
}

// Top returns the session with the highest priority.
// Ties are resolved in favor of the most recently updated one.
func Top(sessions []*Session) *Session {
	var top *Session
	for _, s := range sessions {
		switch {
		case top == nil:
			top = s
		case s.Priority > top.Priority:
			top = s
		case s.Priority == top.Priority && s.UpdatedAt.After(top.UpdatedAt):
			top = s
		}
	}
	return top
}
