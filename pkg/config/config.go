// Package config loads termtint settings from layered sources:
// embedded defaults, then the user config file, then TERMTINT_*
// environment variables. Later layers win.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

// Config is the resolved termtint configuration.
type Config struct {
	// Theme names the active theme.
	Theme string `koanf:"theme" toml:"theme"`
	// Color is "auto", "always" or "never".
	Color string `koanf:"color" toml:"color"`
	// Emoji gates decorative glyphs independent of the theme.
	Emoji bool `koanf:"emoji" toml:"emoji"`
	// Verbose enables debug output.
	Verbose bool `koanf:"verbose" toml:"verbose"`
	// Quiet suppresses output below warning.
	Quiet bool `koanf:"quiet" toml:"quiet"`
	// ThemeFiles lists extra theme YAML files to register at startup.
	ThemeFiles []string `koanf:"theme_files" toml:"theme_files"`
}

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Path returns the user config file location.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "termtint", "config.toml")
}

// Load resolves the configuration. Overrides, typically flag values
// keyed the same as the TOML file, form the highest-precedence layer;
// pass nil when there are none. A missing user config file is not an
// error; a malformed one is.
func Load(overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	// 2. User config file, when present
	path := Path()
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	// 3. Environment variables: TERMTINT_THEME, TERMTINT_QUIET, ...
	err := k.Load(env.Provider("TERMTINT_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "TERMTINT_")), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Explicit overrides win over everything
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load overrides: %w", err)
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// DefaultTOML renders the default configuration as TOML, for writing a
// starter config file.
func DefaultTOML() (string, error) {
	var cfg Config
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return "", err
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return "", err
	}

	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
