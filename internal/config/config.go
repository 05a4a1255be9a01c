// SPDX-License-Identifier: MIT
// Package: ninefold/internal/config
//
// config.go — file schema, loading and conversion to options.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ninefold/block"
	"github.com/katalvlaran/ninefold/calibrate"
	"github.com/katalvlaran/ninefold/digits"
	"github.com/katalvlaran/ninefold/engine"
	"github.com/katalvlaran/ninefold/internal/logging"
	"github.com/katalvlaran/ninefold/omega"
	"github.com/katalvlaran/ninefold/track"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the root document.
type Config struct {
	Engine    Engine    `yaml:"engine" json:"engine"`
	Log       Log       `yaml:"log" json:"log"`
	Cache     Cache     `yaml:"cache" json:"cache"`
	Batch     Batch     `yaml:"batch" json:"batch"`
	Calibrate Calibrate `yaml:"calibrate" json:"calibrate"`
}

// Engine configures engine.New.
type Engine struct {
	Mode       string            `yaml:"mode" json:"mode"`
	Stride     int               `yaml:"stride,omitempty" json:"stride,omitempty"`
	Basis      string            `yaml:"omega_basis" json:"omega_basis"`
	Thresholds *omega.Thresholds `yaml:"thresholds,omitempty" json:"thresholds,omitempty"`
	Composite  bool              `yaml:"composite" json:"composite"`
	Tracks     []Track           `yaml:"tracks,omitempty" json:"tracks,omitempty"`
}

// Track declares an extra alphabet track added to the reference set.
type Track struct {
	ID      int      `yaml:"id" json:"id"`
	Name    string   `yaml:"name" json:"name"`
	Symbols []string `yaml:"symbols" json:"symbols"`
	Yang    []string `yaml:"yang" json:"yang"`
	Yin     []string `yaml:"yin" json:"yin"`
	Rules   []Rule   `yaml:"rules" json:"rules"`
}

// Rule is one complementary pair; Both adds the reversed orientation.
type Rule struct {
	A        uint8  `yaml:"a" json:"a"`
	B        uint8  `yaml:"b" json:"b"`
	Type     string `yaml:"type" json:"type"`
	Polarity string `yaml:"polarity" json:"polarity"`
	Both     bool   `yaml:"both" json:"both"`
}

// Log configures internal/logging.
type Log struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// Cache configures the sqlite report cache; an empty Path disables it.
type Cache struct {
	Path string `yaml:"path" json:"path"`
}

// Batch configures batch runs.
type Batch struct {
	Parallel int `yaml:"parallel" json:"parallel"`
}

// Calibrate configures calibration runs.
type Calibrate struct {
	Trials   int   `yaml:"trials" json:"trials"`
	Length   int   `yaml:"length" json:"length"`
	Seed     int64 `yaml:"seed" json:"seed"`
	Parallel int   `yaml:"parallel" json:"parallel"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Engine: Engine{Mode: block.Fixed.String(), Basis: omega.BasisDimensions.String()},
		Log:    Log{Level: "info", Format: logging.FormatText},
		Batch:  Batch{Parallel: 4},
		Calibrate: Calibrate{
			Trials:   calibrate.DefaultTrials,
			Length:   calibrate.DefaultLength,
			Seed:     calibrate.DefaultSeed,
			Parallel: calibrate.DefaultParallel,
		},
	}
}

// LoadFromPath reads and validates the file at path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Load(data, filepath.Ext(path))
}

// Load parses data over Default() and validates the result. ext is a format
// hint such as ".yaml" or ".json"; empty means detect from content.
func Load(data []byte, ext string) (*Config, error) {
	c := Default()
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	if ext == "" && strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		ext = ".json"
	}
	if ext == ".json" {
		if err := json.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse config json: %w", err)
		}
	} else if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks every field that would otherwise make an option panic.
func (c *Config) Validate() error {
	if _, err := c.EngineOptions(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	if f := c.Log.Format; f != "" && f != logging.FormatText && f != logging.FormatJSON {
		return fmt.Errorf("%w: log.format %q", ErrInvalid, f)
	}
	if c.Batch.Parallel < 1 {
		return fmt.Errorf("%w: batch.parallel must be >= 1", ErrInvalid)
	}
	cal := c.Calibrate
	if cal.Trials < 1 || cal.Length < 1 || cal.Parallel < 1 {
		return fmt.Errorf("%w: calibrate trials, length and parallel must be >= 1", ErrInvalid)
	}

	return nil
}

// EngineOptions converts the engine section into engine options.
func (c *Config) EngineOptions() ([]engine.Option, error) {
	ec := c.Engine
	mode, ok := block.ParseMode(ec.Mode)
	if !ok {
		return nil, fmt.Errorf("%w: engine.mode %q", ErrInvalid, ec.Mode)
	}
	opts := []engine.Option{engine.WithMode(mode)}
	if ec.Stride < 0 {
		return nil, fmt.Errorf("%w: engine.stride %d", ErrInvalid, ec.Stride)
	}
	if ec.Stride > 0 {
		opts = append(opts, engine.WithStride(ec.Stride))
	}
	basis, err := omega.ParseBasis(ec.Basis)
	if err != nil {
		return nil, fmt.Errorf("%w: engine.omega_basis: %w", ErrInvalid, err)
	}
	opts = append(opts, engine.WithOmegaBasis(basis))
	if ec.Thresholds != nil {
		if err := ec.Thresholds.Validate(); err != nil {
			return nil, fmt.Errorf("%w: engine.thresholds: %w", ErrInvalid, err)
		}
		opts = append(opts, engine.WithThresholds(*ec.Thresholds))
	}
	if ec.Composite {
		opts = append(opts, engine.WithComposite())
	}
	if len(ec.Tracks) > 0 {
		set := track.Reference()
		for _, t := range ec.Tracks {
			def, err := t.definition()
			if err != nil {
				return nil, err
			}
			set = append(set, def)
		}
		if err := set.Validate(); err != nil {
			return nil, fmt.Errorf("%w: engine.tracks: %w", ErrInvalid, err)
		}
		opts = append(opts, engine.WithTracks(set))
	}

	return opts, nil
}

func (t Track) definition() (*track.Definition, error) {
	if t.ID < 1 || t.ID > 255 {
		return nil, fmt.Errorf("%w: track id %d", ErrInvalid, t.ID)
	}
	if len(t.Symbols) != digits.Base {
		return nil, fmt.Errorf("%w: track %d needs %d symbols, got %d", ErrInvalid, t.ID, digits.Base, len(t.Symbols))
	}
	var symbols [digits.Base]track.Symbol
	for i, s := range t.Symbols {
		symbols[i] = track.Symbol(s)
	}
	var rules []track.PairRule
	for _, r := range t.Rules {
		p, err := parsePolarity(r.Polarity)
		if err != nil {
			return nil, fmt.Errorf("%w: track %d: %w", ErrInvalid, t.ID, err)
		}
		rules = append(rules, track.PairRule{A: r.A, B: r.B, Type: track.Symbol(r.Type), Polarity: p})
		if r.Both && r.A != r.B {
			rules = append(rules, track.PairRule{A: r.B, B: r.A, Type: track.Symbol(r.Type), Polarity: p})
		}
	}
	def, err := track.NewAlphabet(track.ID(t.ID), t.Name, symbols, toSymbols(t.Yang), toSymbols(t.Yin), rules)
	if err != nil {
		return nil, fmt.Errorf("%w: track %d: %w", ErrInvalid, t.ID, err)
	}

	return def, nil
}

func parsePolarity(s string) (track.Polarity, error) {
	switch strings.ToLower(s) {
	case "yang":
		return track.Yang, nil
	case "yin":
		return track.Yin, nil
	}

	return track.Yin, fmt.Errorf("polarity %q", s)
}

func toSymbols(ss []string) []track.Symbol {
	out := make([]track.Symbol, len(ss))
	for i, s := range ss {
		out[i] = track.Symbol(s)
	}

	return out
}
