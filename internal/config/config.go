// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads the configuration of the kmap command.
//
package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Minimization strategies.
//
const (
	StrategyGreedy = "greedy"
	StrategyExact  = "exact"
)

// Output formats.
//
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the kmap command configuration. Unset fields take their default
// value through the getter methods.
//
type Config struct {
	Strategy *string `json:"strategy,omitempty"` // "greedy" or "exact"
	Format   *string `json:"format,omitempty"`   // "text" or "json"
	Verify   *bool   `json:"verify,omitempty"`   // verify results
	Gates    *bool   `json:"gates,omitempty"`    // print gate netlist
	Map      *bool   `json:"map,omitempty"`      // print the Karnaugh map
}

// Load reads a JSON configuration file.
//
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file %s", path)
	}
	return &cfg, nil
}

// Validate checks that the configuration values are valid.
//
func (c *Config) Validate() error {
	switch s := c.GetStrategy(); s {
	case StrategyGreedy, StrategyExact:
	default:
		return errors.Errorf("unknown strategy %q", s)
	}
	switch f := c.GetFormat(); f {
	case FormatText, FormatJSON:
	default:
		return errors.Errorf("unknown format %q", f)
	}
	return nil
}

// GetStrategy returns the minimization strategy, greedy by default.
//
func (c *Config) GetStrategy() string {
	if c.Strategy == nil {
		return StrategyGreedy
	}
	return *c.Strategy
}

// GetFormat returns the output format, text by default.
//
func (c *Config) GetFormat() string {
	if c.Format == nil {
		return FormatText
	}
	return *c.Format
}

// GetVerify returns true if results must be verified.
//
func (c *Config) GetVerify() bool { return c.Verify != nil && *c.Verify }

// GetGates returns true if the gate netlist must be printed.
//
func (c *Config) GetGates() bool { return c.Gates != nil && *c.Gates }

// GetMap returns true if the Karnaugh map must be printed.
//
func (c *Config) GetMap() bool { return c.Map != nil && *c.Map }

// ptrString and ptrBool return a pointer to a copy of v.
//
func ptrString(v string) *string { return &v }
func ptrBool(v bool) *bool       { return &v }

// SetStrategy sets the minimization strategy.
//
func (c *Config) SetStrategy(s string) { c.Strategy = ptrString(s) }

// SetFormat sets the output format.
//
func (c *Config) SetFormat(f string) { c.Format = ptrString(f) }

// SetVerify sets result verification.
//
func (c *Config) SetVerify(v bool) { c.Verify = ptrBool(v) }

// SetGates sets gate netlist output.
//
func (c *Config) SetGates(v bool) { c.Gates = ptrBool(v) }

// SetMap sets Karnaugh map output.
//
func (c *Config) SetMap(v bool) { c.Map = ptrBool(v) }
