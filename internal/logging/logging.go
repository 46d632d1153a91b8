// Copyright 2026 Harald Albrecht.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging sets up the structured logger used by assetserve.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// TimeFormat is the timestamp format of log entries.
const TimeFormat = "2006-01-02 15:04:05.000"

// ParseLevel returns the log level for one of "debug", "info", "warn", or
// "error"; an empty level means "info".
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	}
	return log.InfoLevel, fmt.Errorf("invalid log level %q", level)
}

// New returns a new timestamped logger writing to w at the specified level.
// Invalid levels fall back to "info".
func New(w io.Writer, level string) *log.Logger {
	l := log.New(w)
	l.SetTimeFormat(TimeFormat)
	l.SetReportTimestamp(true)
	lvl, _ := ParseLevel(level)
	l.SetLevel(lvl)
	return l
}
