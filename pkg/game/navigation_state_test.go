package game

import (
	"context"
	"testing"

	"github.com/decker502/zoomnav/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, order ...types.SceneID) *NavigationState {
	t.Helper()
	if len(order) == 0 {
		order = types.DefaultSceneOrder()
	}
	ns, err := NewNavigationState(order)
	require.NoError(t, err)
	return ns
}

func TestNewNavigationStateInitial(t *testing.T) {
	ns := newTestState(t)

	assert.Equal(t, types.SceneGalaxy, ns.Current())
	assert.Equal(t, 0, ns.CurrentIndex())
	assert.Equal(t, types.ZoomNone, ns.ZoomDirection())
	assert.Equal(t, types.ZoomNone, ns.SceneZoomed())
	assert.False(t, ns.FullscreenActive())
}

func TestNewNavigationStateInvalidOrder(t *testing.T) {
	_, err := NewNavigationState(nil)
	assert.Error(t, err)

	_, err = NewNavigationState([]types.SceneID{"a", "b", "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNavigationStateOrderIsImmutable(t *testing.T) {
	order := []types.SceneID{"a", "b", "c"}
	ns := newTestState(t, order...)

	order[0] = "z"
	ns.Order()[1] = "y"

	assert.Equal(t, []types.SceneID{"a", "b", "c"}, ns.Order())
	assert.Equal(t, 2, ns.IndexOf("c"))
	assert.Equal(t, -1, ns.IndexOf("z"))
}

func TestCompleteTransition(t *testing.T) {
	tests := []struct {
		name          string
		start         int
		isZoomIn      bool
		wantIndex     int
		wantDirection types.ZoomState
	}{
		{name: "zoom in from first", start: 0, isZoomIn: true, wantIndex: 1, wantDirection: types.ZoomIn},
		{name: "zoom in from middle", start: 1, isZoomIn: true, wantIndex: 2, wantDirection: types.ZoomIn},
		{name: "zoom in from last is absorbed", start: 2, isZoomIn: true, wantIndex: 2, wantDirection: types.ZoomNone},
		{name: "zoom out from last", start: 2, isZoomIn: false, wantIndex: 1, wantDirection: types.ZoomOut},
		{name: "zoom out from first is absorbed", start: 0, isZoomIn: false, wantIndex: 0, wantDirection: types.ZoomNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns := newTestState(t, "a", "b", "c")
			ns.current = tt.start
			ns.SetSceneZoomed(types.ZoomIn)

			ns.CompleteTransition(tt.isZoomIn)

			assert.Equal(t, tt.wantIndex, ns.CurrentIndex())
			assert.Equal(t, tt.wantDirection, ns.ZoomDirection())
			if tt.wantIndex != tt.start {
				assert.Equal(t, types.ZoomNone, ns.SceneZoomed(), "sceneZoomed must reset on scene change")
			} else {
				assert.Equal(t, types.ZoomIn, ns.SceneZoomed(), "absorbed transition must not touch state")
			}
		})
	}
}

func TestCompleteTransitionAdvancesByExactlyOne(t *testing.T) {
	ns := newTestState(t)
	order := ns.Order()

	for i := 0; i < len(order)-1; i++ {
		ns.CompleteTransition(true)
		assert.Equal(t, order[i+1], ns.Current())
		assert.Equal(t, types.ZoomIn, ns.ZoomDirection())
	}

	ns.CompleteTransition(true)
	assert.Equal(t, order[len(order)-1], ns.Current())
}

func TestOnSceneChangeListener(t *testing.T) {
	ns := newTestState(t, "a", "b")

	var calls []string
	ns.OnSceneChange(func(from, to types.SceneID, direction types.ZoomState) {
		calls = append(calls, string(from)+">"+string(to)+":"+direction.String())
	})

	ns.CompleteTransition(true)
	ns.CompleteTransition(true) // absorbed
	ns.CompleteTransition(false)

	assert.Equal(t, []string{"a>b:in", "b>a:out"}, calls)
}

func TestNavigationStateContext(t *testing.T) {
	ns := newTestState(t)

	_, ok := NavigationStateFrom(context.Background())
	assert.False(t, ok)

	ctx := WithNavigationState(context.Background(), ns)
	got, ok := NavigationStateFrom(ctx)
	require.True(t, ok)
	assert.Same(t, ns, got)
	assert.Same(t, ns, MustNavigationState(ctx))
}

func TestMustNavigationStateOutsideProvider(t *testing.T) {
	assert.PanicsWithValue(t,
		"game: navigation state used outside of its provider scope (missing WithNavigationState)",
		func() { MustNavigationState(context.Background()) })
}
