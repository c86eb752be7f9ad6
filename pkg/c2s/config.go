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

package c2s

import "time"

// Config contains client connection adapter configuration.
type Config struct {
	// MaxStanzaSize is the maximum size an incoming client stanza may have.
	MaxStanzaSize int `fig:"max_stanza_size" default:"32768"`

	// RequestTimeout bounds every stanza write to a client connection.
	RequestTimeout time.Duration `fig:"req_timeout" default:"15s"`
}
