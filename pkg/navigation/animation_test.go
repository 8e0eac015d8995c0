package navigation

import (
	"testing"
	"time"

	"github.com/decker502/zoomnav/pkg/config"
	"github.com/decker502/zoomnav/pkg/game"
	"github.com/decker502/zoomnav/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTimeline 记录拖动历史的时间轴
type fakeTimeline struct {
	paused     bool
	progress   []float64
	onComplete []func()
}

func (f *fakeTimeline) Pause()               { f.paused = true }
func (f *fakeTimeline) Progress(t float64)   { f.progress = append(f.progress, t) }
func (f *fakeTimeline) OnComplete(fn func()) { f.onComplete = append(f.onComplete, fn) }

type animationFixture struct {
	loop     *FrameLoop
	input    *InputDispatcher
	bus      *ProgressBus
	state    *game.NavigationState
	timeline *fakeTimeline
	results  []bool
	anim     *NavigationAnimation
}

func newAnimationFixture(t *testing.T, backwards bool, directions *types.ZoomDirections) *animationFixture {
	t.Helper()

	state, err := game.NewNavigationState([]types.SceneID{"a", "b"})
	require.NoError(t, err)

	f := &animationFixture{
		loop:     NewFrameLoop(),
		input:    NewInputDispatcher(),
		bus:      NewProgressBus(),
		state:    state,
		timeline: &fakeTimeline{},
	}
	f.anim = NewNavigationAnimation(AnimationOptions{
		Scene:      "a",
		Timeline:   f.timeline,
		OnComplete: func(isZoomIn bool) { f.results = append(f.results, isZoomIn) },
		Backwards:  backwards,
		Directions: directions,
		Config:     config.DefaultNavigationConfig(),
		Scheduler:  f.loop,
		Bus:        f.bus,
		State:      f.state,
		Input:      f.input,
	})
	return f
}

// runUntilIdle 执行帧直到没有待执行的回调
func (f *animationFixture) runUntilIdle(maxTicks int) {
	for i := 0; i < maxTicks && f.loop.Pending() > 0; i++ {
		f.loop.Tick()
	}
}

func (f *animationFixture) wheel(deltaY float64, times int) {
	for i := 0; i < times; i++ {
		f.input.DispatchWheel(WheelEvent{DeltaY: deltaY})
	}
}

func TestStepSpringKeepsProgressInRange(t *testing.T) {
	cfg := config.DefaultNavigationConfig()

	for _, progress := range []float64{0, 0.005, 0.3, 0.5, 0.995, 1} {
		for _, target := range []float64{0, 0.25, 0.75, 1} {
			for _, velocity := range []float64{-1, -0.1, 0, 0.1, 1} {
				for _, backwards := range []bool{false, true} {
					next := StepSpring(AnimationState{Progress: progress, Target: target, Velocity: velocity}, cfg, backwards)
					assert.GreaterOrEqual(t, next.Progress, 0.0)
					assert.LessOrEqual(t, next.Progress, 1.0)
				}
			}
		}
	}
}

// TestStepSpringVelocityFloor 静止时速度被强制为 ±threshold
func TestStepSpringVelocityFloor(t *testing.T) {
	cfg := config.DefaultNavigationConfig()
	rest := AnimationState{Progress: 0.5, Target: 0.5}

	forward := StepSpring(rest, cfg, false)
	assert.Equal(t, cfg.VelocityThreshold, forward.Velocity)
	assert.InDelta(t, 0.5+cfg.VelocityThreshold, forward.Progress, 1e-12)

	backward := StepSpring(rest, cfg, true)
	assert.Equal(t, -cfg.VelocityThreshold, backward.Velocity)
	assert.InDelta(t, 0.5-cfg.VelocityThreshold, backward.Progress, 1e-12)
}

func TestStepSpringMovesTowardTarget(t *testing.T) {
	cfg := config.DefaultNavigationConfig()
	s := AnimationState{Progress: 0, Target: 1}

	s = StepSpring(s, cfg, false)
	assert.InDelta(t, 1*cfg.Acceleration*cfg.Friction, s.Velocity, 1e-12)
	assert.InDelta(t, s.Velocity, s.Progress, 1e-12)
}

func TestClassifyZoom(t *testing.T) {
	cfg := config.DefaultNavigationConfig()

	tests := []struct {
		progress float64
		expected types.ZoomState
	}{
		{1, types.ZoomIn},
		{0.996, types.ZoomIn},
		{0.99, types.ZoomNone},
		{0.5, types.ZoomNone},
		{0.011, types.ZoomNone},
		{0.01, types.ZoomOut},
		{0, types.ZoomOut},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyZoom(tt.progress, cfg), "progress=%v", tt.progress)
	}
}

func TestNewNavigationAnimationPrimesProgress(t *testing.T) {
	t.Run("放大手势", func(t *testing.T) {
		f := newAnimationFixture(t, false, nil)
		assert.Equal(t, AnimationState{}, f.anim.State())
		assert.True(t, f.anim.IsZoomIn())
		assert.True(t, f.anim.Active())
		assert.True(t, f.timeline.paused)
		assert.Equal(t, []float64{0}, f.timeline.progress)
		assert.Equal(t, 1, f.loop.Pending())
		assert.Equal(t, 4, f.input.ListenerCount())
	})

	t.Run("缩小手势", func(t *testing.T) {
		f := newAnimationFixture(t, true, nil)
		assert.Equal(t, AnimationState{Progress: 1, Target: 1}, f.anim.State())
		assert.False(t, f.anim.IsZoomIn())
		assert.Equal(t, []float64{1}, f.timeline.progress)
	})
}

// TestInputOnlyMovesTarget 输入只修改 target，不推进进度也不拖动时间轴
func TestInputOnlyMovesTarget(t *testing.T) {
	f := newAnimationFixture(t, false, nil)

	f.wheel(-50, 3)
	st := f.anim.State()
	assert.InDelta(t, 0.15, st.Target, 1e-9)
	assert.Zero(t, st.Progress)
	assert.Len(t, f.timeline.progress, 1)

	f.loop.Tick()
	assert.Greater(t, f.anim.State().Progress, 0.0)
	assert.Len(t, f.timeline.progress, 2)
}

func TestZoomInCompletesExactlyOnce(t *testing.T) {
	f := newAnimationFixture(t, false, nil)

	var events []ProgressEvent
	f.bus.Subscribe(func(ev ProgressEvent) { events = append(events, ev) })

	f.wheel(-50, 25)
	assert.InDelta(t, 1.0, f.anim.State().Target, 1e-9)

	f.runUntilIdle(2000)

	require.Equal(t, []bool{true}, f.results)
	assert.False(t, f.anim.Active())
	assert.GreaterOrEqual(t, f.anim.State().Progress, 0.99)
	assert.Zero(t, f.loop.Pending())

	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, types.SceneID("a"), last.Scene)
	assert.Equal(t, f.anim.State().Progress, last.Progress)

	// 完成后继续执行帧不会再次回调
	for i := 0; i < 10; i++ {
		f.loop.Tick()
	}
	assert.Len(t, f.results, 1)
}

func TestZoomOutCompletes(t *testing.T) {
	f := newAnimationFixture(t, true, nil)

	f.wheel(50, 25)
	assert.InDelta(t, 0.0, f.anim.State().Target, 1e-9)
	f.runUntilIdle(2000)

	assert.Equal(t, []bool{false}, f.results)
	assert.LessOrEqual(t, f.anim.State().Progress, 0.01)
}

// TestZoomOutNeverCompletesWhenDisallowed 禁止缩小时，进度回到 0 也不会完成
func TestZoomOutNeverCompletesWhenDisallowed(t *testing.T) {
	for _, backwards := range []bool{false, true} {
		f := newAnimationFixture(t, backwards, &types.ZoomDirections{In: true, Out: false})

		for i := 0; i < 2000; i++ {
			if i%5 == 0 {
				f.wheel(50, 1)
			}
			f.loop.Tick()
			assert.GreaterOrEqual(t, f.anim.State().Progress, 0.0)
			assert.LessOrEqual(t, f.anim.State().Progress, 1.0)
		}

		assert.Empty(t, f.results, "backwards=%v", backwards)
		assert.True(t, f.anim.Active())
	}
}

func TestZoomInNeverCompletesWhenDisallowed(t *testing.T) {
	f := newAnimationFixture(t, false, &types.ZoomDirections{In: false, Out: true})

	f.wheel(-50, 25)
	for i := 0; i < 500; i++ {
		f.loop.Tick()
	}

	assert.Empty(t, f.results)
	assert.Equal(t, types.ZoomIn, f.state.SceneZoomed())
}

func TestProcessInputIgnoredWhileFullscreen(t *testing.T) {
	f := newAnimationFixture(t, false, nil)
	f.state.SetFullscreenActive(true)

	f.wheel(-50, 5)
	assert.Zero(t, f.anim.State().Target)

	f.state.SetFullscreenActive(false)
	f.wheel(-50, 1)
	assert.InDelta(t, 0.05, f.anim.State().Target, 1e-9)
}

// TestDeadZoneInputReactivates 死区输入重新激活循环，目标不变，方向置为非放大
func TestDeadZoneInputReactivates(t *testing.T) {
	f := newAnimationFixture(t, false, &types.ZoomDirections{In: true, Out: true})
	f.wheel(-50, 25)
	f.runUntilIdle(2000)
	require.False(t, f.anim.Active())
	require.True(t, f.anim.IsZoomIn())

	before := f.anim.State()
	f.anim.ProcessInput(0.0001, 0.5)

	assert.True(t, f.anim.Active())
	assert.Equal(t, 1, f.loop.Pending())
	assert.Equal(t, before.Target, f.anim.State().Target)
	assert.False(t, f.anim.IsZoomIn())

	// 方向不再是放大，之后的帧不会再次触发完成
	for i := 0; i < 50; i++ {
		f.loop.Tick()
	}
	assert.Equal(t, []bool{true}, f.results)
}

// TestTouchAtStartIsGuarded 起点处松手的反向步长被边界保护改为放大
func TestTouchAtStartIsGuarded(t *testing.T) {
	f := newAnimationFixture(t, false, nil)
	base := time.Unix(1000, 0)

	f.input.DispatchTouchStart(TouchEvent{Y: 500, At: base})
	f.input.DispatchTouchMove(TouchEvent{Y: 450, At: base.Add(16 * time.Millisecond)})
	assert.InDelta(t, 0.03, f.anim.State().Target, 1e-9)
	assert.True(t, f.anim.IsZoomIn())

	f.input.DispatchTouchEnd(TouchEvent{Y: 450, At: base.Add(20 * time.Millisecond)})
	assert.InDelta(t, 0.06, f.anim.State().Target, 1e-9)
	assert.True(t, f.anim.IsZoomIn())
}

// TestTouchEndPullsTargetBack 进度中途松手时，惯性步长把目标往回拉
func TestTouchEndPullsTargetBack(t *testing.T) {
	f := newAnimationFixture(t, false, nil)
	base := time.Unix(1000, 0)

	f.wheel(-50, 10)
	for i := 0; i < 20; i++ {
		f.loop.Tick()
	}
	require.Greater(t, f.anim.State().Progress, config.CompletionSensitivity)
	require.InDelta(t, 0.5, f.anim.State().Target, 1e-9)

	f.input.DispatchTouchStart(TouchEvent{ID: 3, Y: 500, At: base})
	f.input.DispatchTouchMove(TouchEvent{ID: 3, Y: 450, At: base.Add(16 * time.Millisecond)})
	assert.InDelta(t, 0.53, f.anim.State().Target, 1e-9)
	assert.True(t, f.anim.IsZoomIn())

	f.input.DispatchTouchEnd(TouchEvent{ID: 3, Y: 450, At: base.Add(20 * time.Millisecond)})
	assert.InDelta(t, 0.5, f.anim.State().Target, 1e-9)
	assert.False(t, f.anim.IsZoomIn())
}

// TestSecondFingerIgnored 第二根手指不影响目标
func TestSecondFingerIgnored(t *testing.T) {
	f := newAnimationFixture(t, false, nil)
	base := time.Unix(1000, 0)

	// 先离开起点，避免边界保护掩盖方向
	f.wheel(-50, 10)
	for i := 0; i < 20; i++ {
		f.loop.Tick()
	}
	require.Greater(t, f.anim.State().Progress, config.CompletionSensitivity)

	f.input.DispatchTouchStart(TouchEvent{ID: 1, Y: 500, At: base})
	f.input.DispatchTouchStart(TouchEvent{ID: 2, Y: 100, At: base})
	f.input.DispatchTouchMove(TouchEvent{ID: 1, Y: 450, At: base.Add(16 * time.Millisecond)})
	f.input.DispatchTouchMove(TouchEvent{ID: 2, Y: 300, At: base.Add(16 * time.Millisecond)})
	f.input.DispatchTouchMove(TouchEvent{ID: 1, Y: 400, At: base.Add(32 * time.Millisecond)})

	assert.InDelta(t, 0.56, f.anim.State().Target, 1e-9)
	assert.True(t, f.anim.IsZoomIn())
}

func TestCleanupIsIdempotent(t *testing.T) {
	f := newAnimationFixture(t, false, nil)
	require.Equal(t, 1, f.loop.Pending())

	f.anim.Cleanup()
	f.anim.Cleanup()

	assert.False(t, f.anim.Active())
	assert.Zero(t, f.loop.Pending())
	assert.Zero(t, f.input.ListenerCount())

	// 清理后输入无效
	f.anim.ProcessInput(-50, 0.5)
	assert.Zero(t, f.anim.State().Target)
	assert.Zero(t, f.loop.Pending())
}

// TestCleanupFromCompletionCallback 完成回调中清理（场景切换时）不会留下帧
func TestCleanupFromCompletionCallback(t *testing.T) {
	loop := NewFrameLoop()
	input := NewInputDispatcher()
	calls := 0

	var anim *NavigationAnimation
	anim = NewNavigationAnimation(AnimationOptions{
		Scene:      "a",
		Timeline:   &fakeTimeline{},
		OnComplete: func(bool) { calls++; anim.Cleanup() },
		Config:     config.DefaultNavigationConfig(),
		Scheduler:  loop,
		Input:      input,
	})

	for i := 0; i < 25; i++ {
		input.DispatchWheel(WheelEvent{DeltaY: -50})
	}
	for i := 0; i < 2000 && loop.Pending() > 0; i++ {
		loop.Tick()
	}

	assert.Equal(t, 1, calls)
	assert.Zero(t, loop.Pending())
	assert.Zero(t, input.ListenerCount())
}

func TestSceneZoomedFollowsProgress(t *testing.T) {
	f := newAnimationFixture(t, false, nil)

	f.loop.Tick()
	assert.Equal(t, types.ZoomOut, f.state.SceneZoomed())

	f.wheel(-50, 10)
	for i := 0; i < 20; i++ {
		f.loop.Tick()
	}
	assert.Equal(t, types.ZoomNone, f.state.SceneZoomed())
}
