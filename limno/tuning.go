package limno

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults for the tuning parameters. The detector thresholds follow the
// published Lake Analyzer constants (Read et al. 2011).
const (
	defaultGridResolution      = 0.1 // m
	defaultSeasonalMinGradient = 0.1 // kg/m^3 per m
	defaultMetaSlopeFraction   = 0.1
	defaultMixedCutoff         = 1.0 // degrees C
	defaultDensityMinTempC     = 0.0
	defaultDensityMaxTempC     = 40.0
)

// Tuning holds the empirical threshold parameters of the stratification
// detector and the density model. Fields are pointers so that a partial JSON
// document only overrides what it names; the Get* accessors supply defaults
// for the rest. A nil *Tuning is valid and yields all defaults.
type Tuning struct {
	// GridResolution is the resample step (m) used for fine-grid detection
	// and integration.
	GridResolution *float64 `json:"grid_resolution,omitempty"`

	// SeasonalMinGradient is the minimum density gradient (kg/m^3 per m) a
	// local peak must reach to count as a seasonal thermocline.
	SeasonalMinGradient *float64 `json:"seasonal_min_gradient,omitempty"`

	// MetaSlopeFraction is the fraction of the maximum density gradient at
	// which the metalimnion is considered to end.
	MetaSlopeFraction *float64 `json:"meta_slope_fraction,omitempty"`

	// MixedCutoff is the temperature range (degrees C) below which a column
	// is reported as mixed.
	MixedCutoff *float64 `json:"mixed_cutoff,omitempty"`

	// DensityRangeCheck toggles temperature validation in the density
	// model. Disable for brackish or otherwise extreme columns.
	DensityRangeCheck *bool    `json:"density_range_check,omitempty"`
	DensityMinTempC   *float64 `json:"density_min_temp_c,omitempty"`
	DensityMaxTempC   *float64 `json:"density_max_temp_c,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }

// GetGridResolution returns the grid_resolution value or the default.
func (c *Tuning) GetGridResolution() float64 {
	if c == nil || c.GridResolution == nil {
		return defaultGridResolution
	}
	return *c.GridResolution
}

// GetSeasonalMinGradient returns the seasonal_min_gradient value or the default.
func (c *Tuning) GetSeasonalMinGradient() float64 {
	if c == nil || c.SeasonalMinGradient == nil {
		return defaultSeasonalMinGradient
	}
	return *c.SeasonalMinGradient
}

// GetMetaSlopeFraction returns the meta_slope_fraction value or the default.
func (c *Tuning) GetMetaSlopeFraction() float64 {
	if c == nil || c.MetaSlopeFraction == nil {
		return defaultMetaSlopeFraction
	}
	return *c.MetaSlopeFraction
}

// GetMixedCutoff returns the mixed_cutoff value or the default.
func (c *Tuning) GetMixedCutoff() float64 {
	if c == nil || c.MixedCutoff == nil {
		return defaultMixedCutoff
	}
	return *c.MixedCutoff
}

// GetDensityRangeCheck returns the density_range_check value or the default.
func (c *Tuning) GetDensityRangeCheck() bool {
	if c == nil || c.DensityRangeCheck == nil {
		return true
	}
	return *c.DensityRangeCheck
}

// GetDensityMinTempC returns the density_min_temp_c value or the default.
func (c *Tuning) GetDensityMinTempC() float64 {
	if c == nil || c.DensityMinTempC == nil {
		return defaultDensityMinTempC
	}
	return *c.DensityMinTempC
}

// GetDensityMaxTempC returns the density_max_temp_c value or the default.
func (c *Tuning) GetDensityMaxTempC() float64 {
	if c == nil || c.DensityMaxTempC == nil {
		return defaultDensityMaxTempC
	}
	return *c.DensityMaxTempC
}

// Validate checks that the configured values are usable.
func (c *Tuning) Validate() error {
	if c == nil {
		return nil
	}
	if c.GridResolution != nil && *c.GridResolution <= 0 {
		return fmt.Errorf("grid_resolution must be positive, got %f", *c.GridResolution)
	}
	if c.SeasonalMinGradient != nil && *c.SeasonalMinGradient < 0 {
		return fmt.Errorf("seasonal_min_gradient must be non-negative, got %f", *c.SeasonalMinGradient)
	}
	if c.MetaSlopeFraction != nil && (*c.MetaSlopeFraction <= 0 || *c.MetaSlopeFraction >= 1) {
		return fmt.Errorf("meta_slope_fraction must be between 0 and 1, got %f", *c.MetaSlopeFraction)
	}
	if c.MixedCutoff != nil && *c.MixedCutoff < 0 {
		return fmt.Errorf("mixed_cutoff must be non-negative, got %f", *c.MixedCutoff)
	}
	if c.DensityMinTempC != nil && c.DensityMaxTempC != nil && *c.DensityMinTempC >= *c.DensityMaxTempC {
		return fmt.Errorf("density temperature range is empty: [%f, %f]", *c.DensityMinTempC, *c.DensityMaxTempC)
	}
	return nil
}

// LoadTuning loads a Tuning from a JSON file. Fields omitted from the file
// keep their defaults, so partial configs are safe.
func LoadTuning(path string) (*Tuning, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("tuning file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat tuning file: %w", err)
	}
	const maxFileSize = 1 << 20
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("tuning file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}

	cfg := &Tuning{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	return cfg, nil
}
