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

package traffic

import (
	"path/filepath"

	"github.com/kkyr/fig"
	"github.com/ortuman/traffic/pkg/c2s"
	"github.com/ortuman/traffic/pkg/log"
	"github.com/ortuman/traffic/pkg/module/xep0092"
	"github.com/ortuman/traffic/pkg/queue"
	"github.com/ortuman/traffic/pkg/s2s"
	"github.com/ortuman/traffic/pkg/storage"
	redisrepository "github.com/ortuman/traffic/pkg/storage/redis"
)

// ModulesConfig contains modules configuration.
type ModulesConfig struct {
	// Enabled defines total set of enabled modules
	Enabled []string `fig:"enabled"`

	// XEP-0092: Software Version
	Version xep0092.Config `fig:"version"`
}

// Config contains traffic server configuration.
type Config struct {
	Logger log.Config `fig:"logger"`

	HTTPPort int `fig:"http_port" default:"6060"`

	// MaxStanzaSize bounds queued and routed stanzas.
	MaxStanzaSize int `fig:"max_stanza_size" default:"65536"`

	Redis   redisrepository.Config `fig:"redis"`
	Storage storage.Config         `fig:"storage"`
	Queue   queue.Config           `fig:"queue"`

	C2S     c2s.Config    `fig:"c2s"`
	S2S     s2s.Config    `fig:"s2s"`
	Modules ModulesConfig `fig:"modules"`
}

func loadConfig(configFile string) (*Config, error) {
	var cfg Config
	file := filepath.Base(configFile)
	dir := filepath.Dir(configFile)

	err := fig.Load(&cfg, fig.File(file), fig.Dirs(dir))
	if err != nil {
		return nil, err
	}
	cfg.Queue.DB = cfg.Redis.DB
	return &cfg, nil
}
