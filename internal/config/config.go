// Package config loads run parameters for the beam deflection solver.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// Defaults applied when a field is absent from the config file and no flag
// overrides it.
const (
	DefaultGridPoints       = 1000
	DefaultBodyForce        = 1.0
	DefaultReferenceSamples = 30
)

// RunConfig holds the solver parameters. Fields are pointers so a partial
// JSON file only overrides what it names; the Get* methods supply defaults
// for the rest.
type RunConfig struct {
	// GridPoints is the number of finite-difference grid points N.
	GridPoints *int `json:"grid_points,omitempty"`
	// BodyForce is the constant distributed load q in u'''' = -q.
	BodyForce *float64 `json:"body_force,omitempty"`
	// ReferenceSamples is the sample count of the analytical curve.
	ReferenceSamples *int `json:"reference_samples,omitempty"`
}

// EmptyRunConfig returns a RunConfig with all fields unset.
func EmptyRunConfig() *RunConfig {
	return &RunConfig{}
}

// Load reads a RunConfig from a JSON file. Fields omitted from the file
// retain their defaults, so partial configs are safe.
func Load(path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyRunConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that every set field holds a usable value.
func (c *RunConfig) Validate() error {
	if c.GridPoints != nil && *c.GridPoints < 5 {
		return fmt.Errorf("grid_points must be at least 5, got %d", *c.GridPoints)
	}
	if c.BodyForce != nil && (math.IsNaN(*c.BodyForce) || math.IsInf(*c.BodyForce, 0)) {
		return fmt.Errorf("body_force must be finite, got %v", *c.BodyForce)
	}
	if c.ReferenceSamples != nil && *c.ReferenceSamples < 2 {
		return fmt.Errorf("reference_samples must be at least 2, got %d", *c.ReferenceSamples)
	}
	return nil
}

// GetGridPoints returns the configured grid point count or the default.
func (c *RunConfig) GetGridPoints() int {
	if c.GridPoints != nil {
		return *c.GridPoints
	}
	return DefaultGridPoints
}

// GetBodyForce returns the configured body force or the default.
func (c *RunConfig) GetBodyForce() float64 {
	if c.BodyForce != nil {
		return *c.BodyForce
	}
	return DefaultBodyForce
}

// GetReferenceSamples returns the configured sample count or the default.
func (c *RunConfig) GetReferenceSamples() int {
	if c.ReferenceSamples != nil {
		return *c.ReferenceSamples
	}
	return DefaultReferenceSamples
}
