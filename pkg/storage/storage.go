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

package storage

import (
	"context"
	"fmt"

	kitlog "github.com/go-kit/log"
	measuredrepository "github.com/ortuman/traffic/pkg/storage/measured"
	memoryrepository "github.com/ortuman/traffic/pkg/storage/memory"
	pgsqlrepository "github.com/ortuman/traffic/pkg/storage/pgsql"
	redisrepository "github.com/ortuman/traffic/pkg/storage/redis"
	"github.com/ortuman/traffic/pkg/storage/repository"
)

const pgSQLRepositoryType = "pgsql"

// Config contains storage configuration.
type Config struct {
	Type  string                 `fig:"type" default:"memory"`
	PgSQL pgsqlrepository.Config `fig:"pgsql"`
}

// New returns a measured repository of the configured type.
// Session and directed presence state is always kept in Redis for the pgsql type.
func New(cfg Config, redisCfg redisrepository.Config, logger kitlog.Logger) (repository.Repository, error) {
	switch cfg.Type {
	case memoryrepository.Type:
		return measuredrepository.New(memoryrepository.New()), nil

	case pgSQLRepositoryType:
		sqlRep := pgsqlrepository.New(cfg.PgSQL, logger)
		kvRep := redisrepository.New(redisCfg, logger)
		return measuredrepository.New(&composite{
			Roster:   sqlRep,
			Last:     sqlRep,
			Session:  kvRep,
			Directed: kvRep,
			sqlRep:   sqlRep,
			kvRep:    kvRep,
		}), nil

	default:
		return nil, fmt.Errorf("storage: unrecognized repository type: %s", cfg.Type)
	}
}

type composite struct {
	repository.Roster
	repository.Last
	repository.Session
	repository.Directed

	sqlRep *pgsqlrepository.Repository
	kvRep  *redisrepository.Repository
}

func (c *composite) Start(ctx context.Context) error {
	if err := c.sqlRep.Start(ctx); err != nil {
		return err
	}
	return c.kvRep.Start(ctx)
}

func (c *composite) Stop(ctx context.Context) error {
	if err := c.kvRep.Stop(ctx); err != nil {
		return err
	}
	return c.sqlRep.Stop(ctx)
}
