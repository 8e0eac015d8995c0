package main

import (
	"bytes"
	"testing"

	"github.com/decker502/zoomnav/pkg/app"
	"github.com/decker502/zoomnav/pkg/config"
	"github.com/decker502/zoomnav/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	steps, err := parseScript("in:3, OUT:2")
	require.NoError(t, err)
	assert.Equal(t, []scriptStep{{deltaY: -1, count: 3}, {deltaY: 1, count: 2}}, steps)

	for _, bad := range []string{"", "in", "in:x", "in:-1", "sideways:3"} {
		_, err := parseScript(bad)
		assert.Error(t, err, "script %q", bad)
	}
}

func TestSimulationRoundTrip(t *testing.T) {
	sceneCfg, err := config.ParseSceneConfig([]byte(`
scenes:
  - id: a
    kind: approach
    target:
      position: [0, 0, 5]
  - id: b
    kind: approach
    target:
      position: [0, 0, 2]
`))
	require.NoError(t, err)

	nav, err := app.BuildNavigation(sceneCfg, config.DefaultNavigationConfig())
	require.NoError(t, err)

	var out bytes.Buffer
	sim := newSimulation(nav, &out)
	nav.Manager.Start()

	sim.run([]scriptStep{{deltaY: -1, count: 60}}, 10, 300)
	assert.Equal(t, types.SceneID("b"), nav.Env.State.Current())

	sim.run([]scriptStep{{deltaY: 1, count: 60}}, 10, 300)
	assert.Equal(t, types.SceneID("a"), nav.Env.State.Current())

	assert.GreaterOrEqual(t, sim.transitions, 2)
	assert.Contains(t, out.String(), "scene a -> b")
	assert.Contains(t, out.String(), "scene b -> a")
}
