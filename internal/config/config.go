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

// Package config loads the assetserve configuration from defaults, an
// optional YAML file, ASSETSERVE_ environment variables, and command line
// flags, in increasing order of precedence.
package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables overriding configuration
// settings, such as ASSETSERVE_LISTEN.
const EnvPrefix = "ASSETSERVE_"

// Defaults.
const (
	DefaultListen   = "127.0.0.1:0"
	DefaultScheme   = "app"
	DefaultLogLevel = "info"
)

// Config is the assetserve configuration.
type Config struct {
	// ResourceDir is searched first for the "build" static root; the
	// executable's directory is searched next.
	ResourceDir string `koanf:"resource_dir"`
	// Listen is the loopback address to serve on; port 0 picks an ephemeral
	// port.
	Listen string `koanf:"listen"`
	// Scheme is the custom URL scheme the assets are meant for.
	Scheme string `koanf:"scheme"`
	// NoDisk disables serving from the on-disk static root, leaving only
	// the embedded bundle, if any.
	NoDisk   bool   `koanf:"no_disk"`
	LogLevel string `koanf:"log_level"`
}

// RegisterFlags registers the command line flags overriding configuration
// settings.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "YAML configuration file")
	flags.String("resource-dir", "", "application resource directory containing the \"build\" static root")
	flags.String("listen", DefaultListen, "loopback address to serve on")
	flags.String("scheme", DefaultScheme, "custom URL scheme the assets are served for")
	flags.Bool("no-disk", false, "serve only from the embedded bundle")
	flags.String("log-level", DefaultLogLevel, "log level: debug, info, warn, or error")
}

// Load returns the configuration from defaults, the optional YAML file at
// cfgFile, environment variables, and finally the flags explicitly set.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"listen":    DefaultListen,
		"scheme":    DefaultScheme,
		"log_level": DefaultLogLevel,
		"no_disk":   false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// ASSETSERVE_RESOURCE_DIR -> resource_dir
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.Scheme == "" || strings.ContainsAny(c.Scheme, ":/") {
		return fmt.Errorf("invalid URL scheme %q", c.Scheme)
	}
	if _, _, err := net.SplitHostPort(c.Listen); err != nil {
		return fmt.Errorf("invalid listen address %q: %w", c.Listen, err)
	}
	return nil
}

// RootURL returns the root URL of the custom scheme, as a host would point
// its window to.
func (c *Config) RootURL() string {
	return c.Scheme + "://localhost/"
}
