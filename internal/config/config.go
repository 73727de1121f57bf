// Package config loads settings for the todo CLI from defaults, a TOML file,
// TADA_* environment variables and command-line flags, in that order.
package config

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/memtodo/internal/logging"
	"github.com/idilsaglam/memtodo/internal/store/memstore"
	"github.com/idilsaglam/memtodo/internal/ui"
)

// FileName is the config file looked up in the working directory and in
// the user config dir (under "tada/").
const FileName = "tada.toml"

// Front ends selectable through the interface key.
const (
	InterfaceShell = "shell"
	InterfaceTUI   = "tui"
)

// Config holds every tunable of the CLI.
type Config struct {
	Theme       string `toml:"theme"`
	IDPolicy    string `toml:"id_policy"`
	StrictInput bool   `toml:"strict_input"`
	Group       bool   `toml:"group"`
	LogLevel    string `toml:"log_level"`
	Interface   string `toml:"interface"`

	// Path is the config file that was read, empty if none.
	Path string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:     ui.ThemeClassic,
		IDPolicy:  memstore.Monotonic.String(),
		LogLevel:  logging.DefaultLevel,
		Interface: InterfaceShell,
	}
}

// Policy returns the parsed id allocation policy.
func (c *Config) Policy() memstore.IDPolicy {
	p, _ := memstore.ParseIDPolicy(c.IDPolicy)
	return p
}

// Validate rejects unknown enum values.
func (c *Config) Validate() error {
	if !ui.IsTheme(c.Theme) {
		return fmt.Errorf("unknown theme %q (want %s)", c.Theme, strings.Join(ui.Themes(), ", "))
	}
	if _, err := memstore.ParseIDPolicy(c.IDPolicy); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Interface {
	case InterfaceShell, InterfaceTUI:
	default:
		return fmt.Errorf("unknown interface %q (want shell or tui)", c.Interface)
	}
	return nil
}
