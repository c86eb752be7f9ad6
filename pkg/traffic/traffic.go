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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"
	"github.com/ortuman/traffic/pkg/bus"
	"github.com/ortuman/traffic/pkg/c2s"
	lockerredis "github.com/ortuman/traffic/pkg/locker/redis"
	"github.com/ortuman/traffic/pkg/log"
	"github.com/ortuman/traffic/pkg/module"
	"github.com/ortuman/traffic/pkg/module/presence"
	xmppparser "github.com/ortuman/traffic/pkg/parser"
	"github.com/ortuman/traffic/pkg/queue"
	"github.com/ortuman/traffic/pkg/router"
	"github.com/ortuman/traffic/pkg/s2s"
	"github.com/ortuman/traffic/pkg/storage"
	"github.com/ortuman/traffic/pkg/storage/repository"
	"github.com/ortuman/traffic/pkg/version"
)

const (
	darwinOpenMax = 10240

	defaultBootstrapTimeout = time.Minute
	defaultShutdownTimeout  = time.Second * 30

	envConfigFile = "TRAFFIC_CONFIG_FILE"
)

type starter interface {
	Start(ctx context.Context) error
}

type stopper interface {
	Stop(ctx context.Context) error
}

type startStopper interface {
	starter
	stopper
}

// Traffic is the root data structure of the routing and presence server.
type Traffic struct {
	output io.Writer

	rdb    *redis.Client
	rep    repository.Repository
	parser *xmppparser.Parser

	bus      *bus.Bus
	queue    *queue.Queue
	router   *router.Router
	presence *presence.Presence
	mods     *module.Modules
	c2s      *c2s.C2S

	starters []starter
	stoppers []stopper

	waitStopCh chan os.Signal

	logger kitlog.Logger
}

// New makes a new Traffic.
func New(output io.Writer) *Traffic {
	return &Traffic{
		output:     output,
		waitStopCh: make(chan os.Signal, 1),
	}
}

// C2S returns the client connection registry transports bind authenticated connections to.
func (t *Traffic) C2S() *c2s.C2S { return t.c2s }

// Run starts the server using configFile configuration, and blocks until a stop signal is received.
func (t *Traffic) Run(configFile string) error {
	// if present, override config file url with env var
	if envCfgFile := os.Getenv(envConfigFile); len(envCfgFile) > 0 {
		configFile = envCfgFile
	}
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	if err := t.init(cfg); err != nil {
		return err
	}
	if err := t.bootstrap(); err != nil {
		return err
	}
	// ...wait for stop signal to shut down
	sig := t.waitForStopSignal()
	level.Info(t.logger).Log("msg", "received stop signal... shutting down...",
		"signal", sig.String(),
	)
	return t.shutdown()
}

func (t *Traffic) init(cfg *Config) error {
	logger, err := log.New(cfg.Logger, t.output)
	if err != nil {
		return err
	}
	t.logger = logger

	level.Info(t.logger).Log("msg", "traffic is starting...",
		"version", version.Version,
		"go_ver", runtime.Version(),
		"go_os", runtime.GOOS,
		"go_arch", runtime.GOARCH,
	)
	// set maximum opened files limit
	if err := setRLimit(); err != nil {
		return err
	}
	t.parser = xmppparser.New(cfg.MaxStanzaSize)

	if err := t.initRedis(cfg); err != nil {
		return err
	}
	if err := t.initRepository(cfg); err != nil {
		return err
	}
	t.initRouter(cfg)

	if err := t.initModules(&cfg.Modules); err != nil {
		return err
	}
	t.c2s = c2s.New(cfg.C2S, t.router, t.mods, t.logger)
	t.registerStartStopper(t.c2s)

	s2sIn := s2s.NewInHandler(t.router, cfg.S2S, t.logger)
	t.registerStartStopper(newHTTPServer(cfg.HTTPPort, s2sIn, t.logger))
	return nil
}

func (t *Traffic) initRedis(cfg *Config) error {
	if len(cfg.Redis.Addresses) == 0 {
		return fmt.Errorf("traffic: no redis address configured")
	}
	t.rdb = redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addresses[0],
		Username:     cfg.Redis.Username,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	t.registerStartStopper(&redisCloser{rdb: t.rdb})
	return nil
}

func (t *Traffic) initRepository(cfg *Config) error {
	rep, err := storage.New(cfg.Storage, cfg.Redis, t.logger)
	if err != nil {
		return err
	}
	t.rep = rep
	t.registerStartStopper(t.rep)
	return nil
}

func (t *Traffic) initRouter(cfg *Config) {
	t.bus = bus.New(t.rdb, t.logger)
	t.registerStartStopper(t.bus)

	t.queue = queue.New(t.rdb, cfg.Queue)
	t.router = router.New(t.bus, t.queue, s2s.NewForwarder(cfg.S2S, t.logger), t.parser, t.logger)

	processor := queue.NewProcessor(t.queue, lockerredis.New(t.rdb), t.bus, t.router, cfg.Queue, t.logger)
	t.registerStartStopper(processor)
}

func (t *Traffic) initModules(cfg *ModulesConfig) error {
	var mods []module.Module

	// enabled modules
	enabled := cfg.Enabled
	if len(enabled) == 0 {
		enabled = defaultModules
	}
	for _, mName := range enabled {
		fn, ok := modFns[mName]
		if !ok {
			return fmt.Errorf("traffic: unrecognized module name: %s", mName)
		}
		mods = append(mods, fn(t, cfg))
	}
	t.mods = module.NewModules(mods, t.router, t.logger)
	t.registerStartStopper(t.mods)
	return nil
}

func (t *Traffic) registerStartStopper(ss startStopper) {
	if ss == nil {
		return
	}
	t.starters = append(t.starters, ss)
	t.stoppers = append([]stopper{ss}, t.stoppers...)
}

func (t *Traffic) bootstrap() error {
	// spin up all service subsystems
	ctx, cancel := context.WithTimeout(context.Background(), defaultBootstrapTimeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		// invoke all registered starters...
		for _, s := range t.starters {
			if err := s.Start(ctx); err != nil {
				errCh <- err
				return
			}
		}
		errCh <- nil
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Traffic) shutdown() error {
	// wait until shutdown has been completed
	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		// invoke all registered stoppers...
		for _, st := range t.stoppers {
			if err := st.Stop(ctx); err != nil {
				errCh <- err
				return
			}
		}
		errCh <- nil
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Traffic) waitForStopSignal() os.Signal {
	signal.Notify(t.waitStopCh, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	return <-t.waitStopCh
}

type redisCloser struct {
	rdb *redis.Client
}

func (c *redisCloser) Start(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *redisCloser) Stop(_ context.Context) error {
	return c.rdb.Close()
}

func setRLimit() error {
	var rLim syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLim); err != nil {
		return err
	}
	if rLim.Cur < rLim.Max {
		switch runtime.GOOS {
		case "darwin":
			// The max file limit is 10240, even though
			// the max returned by Getrlimit is 1<<63-1.
			// This is OPEN_MAX in sys/syslimits.h.
			rLim.Cur = darwinOpenMax
		default:
			rLim.Cur = rLim.Max
		}
		return syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLim)
	}
	return nil
}
