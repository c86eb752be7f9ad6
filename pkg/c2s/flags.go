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

import "sync"

const (
	fAvailable  uint8 = 1 << 0
	fTerminated       = 1 << 1
)

type flags struct {
	mtx sync.RWMutex
	flg uint8
}

func (f *flags) isAvailable() bool {
	f.mtx.RLock()
	defer f.mtx.RUnlock()
	return f.flg&fAvailable > 0
}

func (f *flags) setAvailable(available bool) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	if available {
		f.flg = f.flg | fAvailable
		return
	}
	f.flg = f.flg &^ fAvailable
}

func (f *flags) isTerminated() bool {
	f.mtx.RLock()
	defer f.mtx.RUnlock()
	return f.flg&fTerminated > 0
}

// setTerminated marks flags as terminated and tells whether they already were.
func (f *flags) setTerminated() bool {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	wasTerminated := f.flg&fTerminated > 0
	f.flg = f.flg | fTerminated
	return wasTerminated
}
