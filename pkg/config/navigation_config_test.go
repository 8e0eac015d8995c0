package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultNavigationConfigIsValid(t *testing.T) {
	cfg := DefaultNavigationConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultFriction, cfg.Friction)
	assert.Equal(t, DefaultAcceleration, cfg.Acceleration)
	assert.Equal(t, DefaultWheelSensitivity, cfg.WheelSensitivity)
	assert.Equal(t, DefaultTouchSensitivity, cfg.TouchSensitivity)
	assert.Equal(t, VelocityThreshold, cfg.VelocityThreshold)
	assert.Equal(t, CompletionSensitivity, cfg.CompletionSensitivity)
	assert.Equal(t, ZoomedInSensitivityMultiplier, cfg.ZoomedInSensitivityMultiplier)
}

func TestParseNavigationConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *NavigationConfig)
	}{
		{
			name: "full config",
			yamlContent: `
friction: 0.9
acceleration: 0.1
wheelSensitivity: 0.4
touchSensitivity: 0.2
velocityThreshold: 0.001
completionSensitivity: 0.02
zoomedInSensitivityMultiplier: 0.25
minSwipeDistance: 12
`,
			validate: func(t *testing.T, cfg *NavigationConfig) {
				assert.Equal(t, 0.9, cfg.Friction)
				assert.Equal(t, 0.1, cfg.Acceleration)
				assert.Equal(t, 0.4, cfg.WheelSensitivity)
				assert.Equal(t, 0.2, cfg.TouchSensitivity)
				assert.Equal(t, 0.001, cfg.VelocityThreshold)
				assert.Equal(t, 0.02, cfg.CompletionSensitivity)
				assert.Equal(t, 0.25, cfg.ZoomedInSensitivityMultiplier)
				assert.Equal(t, 12.0, cfg.MinSwipeDistance)
			},
		},
		{
			name:        "partial config keeps defaults",
			yamlContent: "friction: 0.95\n",
			validate: func(t *testing.T, cfg *NavigationConfig) {
				assert.Equal(t, 0.95, cfg.Friction)
				assert.Equal(t, DefaultAcceleration, cfg.Acceleration)
				assert.Equal(t, CompletionSensitivity, cfg.CompletionSensitivity)
			},
		},
		{
			name:        "friction out of range",
			yamlContent: "friction: 1.5\n",
			wantErr:     true,
			errContains: "friction",
		},
		{
			name:        "zero acceleration",
			yamlContent: "acceleration: 0\n",
			wantErr:     true,
			errContains: "acceleration",
		},
		{
			name:        "negative wheel sensitivity",
			yamlContent: "wheelSensitivity: -1\n",
			wantErr:     true,
			errContains: "wheelSensitivity",
		},
		{
			name:        "completion band too wide",
			yamlContent: "completionSensitivity: 0.5\n",
			wantErr:     true,
			errContains: "completionSensitivity",
		},
		{
			name:        "broken yaml",
			yamlContent: "friction: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseNavigationConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadNavigationConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "navigation.yaml")
	require.NoError(t, os.WriteFile(path, []byte("touchSensitivity: 0.6\n"), 0644))

	cfg, err := LoadNavigationConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.6, cfg.TouchSensitivity)

	_, err = LoadNavigationConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read navigation config")
}

func TestLoadNavigationConfigShippedFile(t *testing.T) {
	cfg, err := LoadNavigationConfig("../../data/navigation.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultNavigationConfig(), *cfg)
}

func TestZoomedInThreshold(t *testing.T) {
	cfg := DefaultNavigationConfig()
	cfg.CompletionSensitivity = 0.02
	cfg.ZoomedInSensitivityMultiplier = 0.5
	assert.InDelta(t, 0.99, cfg.ZoomedInThreshold(), 1e-12)
}
