package synth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ModelConfig represents the tuning parameters for a modeling run.
// Fields are pointers so that a partial JSON config leaves unspecified
// values at their defaults; the Get* methods provide the fallbacks.
type ModelConfig struct {
	// DtMs is the uniform time sampling interval in milliseconds.
	DtMs *float64 `json:"dt_ms,omitempty"`

	// WaveletFrequencyHz is the central frequency of the Ricker wavelet.
	// Higher values trade bandwidth for time resolution.
	WaveletFrequencyHz *float64 `json:"wavelet_frequency_hz,omitempty"`

	// Workers bounds trace-level parallelism. Zero or absent means one
	// worker per CPU.
	Workers *int `json:"workers,omitempty"`
}

// EmptyModelConfig returns a ModelConfig with all fields unset so every
// accessor falls back to its default.
func EmptyModelConfig() *ModelConfig {
	return &ModelConfig{}
}

// LoadModelConfig loads a ModelConfig from a JSON file. Fields omitted
// from the file retain their default values, so partial configs are safe.
func LoadModelConfig(path string) (*ModelConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyModelConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration values are usable. Violations
// wrap ErrInvalidConfiguration so callers can classify them.
func (c *ModelConfig) Validate() error {
	if c.DtMs != nil && *c.DtMs <= 0 {
		return fmt.Errorf("%w: dt_ms must be positive, got %g", ErrInvalidConfiguration, *c.DtMs)
	}
	if c.WaveletFrequencyHz != nil && *c.WaveletFrequencyHz <= 0 {
		return fmt.Errorf("%w: wavelet_frequency_hz must be positive, got %g", ErrInvalidConfiguration, *c.WaveletFrequencyHz)
	}
	if c.Workers != nil && *c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalidConfiguration, *c.Workers)
	}
	return nil
}

// GetDtMs returns the time sampling interval or the default.
func (c *ModelConfig) GetDtMs() float64 {
	if c.DtMs == nil {
		return 0.02 // ms
	}
	return *c.DtMs
}

// GetWaveletFrequencyHz returns the wavelet central frequency or the default.
func (c *ModelConfig) GetWaveletFrequencyHz() float64 {
	if c.WaveletFrequencyHz == nil {
		return 4000.0 // Hz
	}
	return *c.WaveletFrequencyHz
}

// GetWorkers returns the worker count or the default of one per CPU.
func (c *ModelConfig) GetWorkers() int {
	if c.Workers == nil || *c.Workers == 0 {
		return runtime.NumCPU()
	}
	return *c.Workers
}
