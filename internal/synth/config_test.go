package synth

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := EmptyModelConfig()
	assert.Equal(t, 0.02, cfg.GetDtMs())
	assert.Equal(t, 4000.0, cfg.GetWaveletFrequencyHz())
	assert.Positive(t, cfg.GetWorkers())
}

func TestModelConfig_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		cfg     ModelConfig
		wantErr bool
	}{
		{"empty is valid", ModelConfig{}, false},
		{"positive values valid", ModelConfig{DtMs: ptrFloat64(0.01), WaveletFrequencyHz: ptrFloat64(2000)}, false},
		{"zero dt invalid", ModelConfig{DtMs: ptrFloat64(0)}, true},
		{"negative dt invalid", ModelConfig{DtMs: ptrFloat64(-0.02)}, true},
		{"zero frequency invalid", ModelConfig{WaveletFrequencyHz: ptrFloat64(0)}, true},
		{"negative workers invalid", ModelConfig{Workers: ptrInt(-1)}, true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.cfg.Validate()
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidConfiguration), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadModelConfig(t *testing.T) {
	t.Parallel()

	t.Run("partial config keeps defaults", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "tuning.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"dt_ms": 0.05}`), 0644))

		cfg, err := LoadModelConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 0.05, cfg.GetDtMs())
		assert.Equal(t, 4000.0, cfg.GetWaveletFrequencyHz(), "omitted field keeps default")
	})

	t.Run("rejects non-json extension", func(t *testing.T) {
		t.Parallel()
		_, err := LoadModelConfig("tuning.yaml")
		require.Error(t, err)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "tuning.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"wavelet_frequency_hz": -1}`), 0644))

		_, err := LoadModelConfig(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration), "got %v", err)
	})
}
