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

package log

import (
	"fmt"
	"io"
	"strings"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	debugLevel   = "debug"
	infoLevel    = "info"
	warningLevel = "warn"
	errorLevel   = "error"
	offLevel     = "off"

	jsonFormat   = "json"
	logfmtFormat = "logfmt"
)

// Config contains logger configuration.
type Config struct {
	Level  string `fig:"level" default:"debug"`
	Format string `fig:"format" default:"logfmt"`
}

// New returns a leveled go-kit logger writing to w in the configured format.
func New(cfg Config, w io.Writer) (kitlog.Logger, error) {
	var logger kitlog.Logger

	sw := kitlog.NewSyncWriter(w)
	switch strings.ToLower(cfg.Format) {
	case jsonFormat:
		logger = kitlog.NewJSONLogger(sw)
	case logfmtFormat, "":
		logger = kitlog.NewLogfmtLogger(sw)
	default:
		return nil, fmt.Errorf("log: unrecognized format: %s", cfg.Format)
	}
	allow, err := levelOption(cfg.Level)
	if err != nil {
		return nil, err
	}
	return kitlog.With(level.NewFilter(logger, allow), "ts", kitlog.DefaultTimestampUTC, "caller", kitlog.DefaultCaller), nil
}

func levelOption(lv string) (level.Option, error) {
	switch strings.ToLower(lv) {
	case debugLevel, "":
		return level.AllowDebug(), nil
	case infoLevel:
		return level.AllowInfo(), nil
	case warningLevel:
		return level.AllowWarn(), nil
	case errorLevel:
		return level.AllowError(), nil
	case offLevel:
		return level.AllowNone(), nil
	default:
		return nil, fmt.Errorf("log: unrecognized level: %s", lv)
	}
}
