package navigation

import (
	"log"
	"math"

	"github.com/decker502/zoomnav/pkg/config"
	"github.com/decker502/zoomnav/pkg/game"
	"github.com/decker502/zoomnav/pkg/types"
)

// AnimationState 弹簧驱动的进度状态
type AnimationState struct {
	Progress float64 // 当前进度，[0,1]
	Target   float64 // 目标进度，[0,1]
	Velocity float64 // 每帧的进度变化量
}

// StepSpring 推进一帧弹簧阻尼运动（纯函数）
//
//  1. velocity += (target - progress) * acceleration
//  2. velocity *= friction
//  3. |velocity| < threshold 时强制为 ±threshold（放大手势为正，缩小手势为负）
//  4. progress += velocity，并限制在 [0,1]
//
// 第 3 步保证进度不会停在终点附近而无法触发完成。
func StepSpring(s AnimationState, cfg config.NavigationConfig, backwards bool) AnimationState {
	delta := s.Target - s.Progress
	s.Velocity += delta * cfg.Acceleration
	s.Velocity *= cfg.Friction

	if math.Abs(s.Velocity) < cfg.VelocityThreshold {
		if backwards {
			s.Velocity = -cfg.VelocityThreshold
		} else {
			s.Velocity = cfg.VelocityThreshold
		}
	}

	s.Progress = clamp01(s.Progress + s.Velocity)
	return s
}

// ClassifyZoom 根据进度判断场景的放大状态（用于提示 UI）
func ClassifyZoom(progress float64, cfg config.NavigationConfig) types.ZoomState {
	switch {
	case progress >= cfg.ZoomedInThreshold():
		return types.ZoomIn
	case progress <= cfg.CompletionSensitivity:
		return types.ZoomOut
	default:
		return types.ZoomNone
	}
}

// AnimationOptions 导航动画参数
type AnimationOptions struct {
	Scene      types.SceneID
	Timeline   Timeline
	OnComplete func(isZoomIn bool)

	// Backwards 为 true 时从进度 1 开始（缩小手势）
	Backwards bool

	// Directions 允许完成的方向，nil 表示两个方向都允许
	Directions *types.ZoomDirections

	Config    config.NavigationConfig
	Scheduler FrameScheduler
	Bus       *ProgressBus          // 可选
	State     *game.NavigationState // 可选，提供全屏状态并接收放大状态
	Input     *InputDispatcher      // 可选，nil 时只能通过 ProcessInput 驱动
}

// NavigationAnimation 一次手势的弹簧阻尼进度驱动
//
// 输入回调只修改 target；只有帧回调推进 progress、velocity 并拖动时间轴。
// 完成时调用 OnComplete 恰好一次并停止请求帧；之后的输入会重新激活循环。
type NavigationAnimation struct {
	scene      types.SceneID
	timeline   Timeline
	onComplete func(isZoomIn bool)
	backwards  bool
	directions types.ZoomDirections
	cfg        config.NavigationConfig
	scheduler  FrameScheduler
	bus        *ProgressBus
	nav        *game.NavigationState

	state    AnimationState
	isZoomIn bool
	active   bool
	frame    FrameID
	touch    TouchTracker

	unsubscribe []func()
	cleaned     bool
}

// NewNavigationAnimation 创建并启动导航动画
//
// 初始化步骤：
//   - progress 和 target 置为 1（缩小手势）或 0（放大手势）
//   - 暂停时间轴并拖到初始进度
//   - 注册滚轮 / 触摸监听器
//   - 请求第一帧
func NewNavigationAnimation(opts AnimationOptions) *NavigationAnimation {
	initial := 0.0
	if opts.Backwards {
		initial = 1
	}

	directions := types.AllZoomDirections()
	if opts.Directions != nil {
		directions = *opts.Directions
	}

	a := &NavigationAnimation{
		scene:      opts.Scene,
		timeline:   opts.Timeline,
		onComplete: opts.OnComplete,
		backwards:  opts.Backwards,
		directions: directions,
		cfg:        opts.Config,
		scheduler:  opts.Scheduler,
		bus:        opts.Bus,
		nav:        opts.State,
		state:      AnimationState{Progress: initial, Target: initial},
		isZoomIn:   !opts.Backwards,
		active:     true,
	}

	if a.timeline != nil {
		a.timeline.Pause()
		a.timeline.Progress(initial)
	}

	if opts.Input != nil {
		a.unsubscribe = append(a.unsubscribe,
			opts.Input.OnWheel(a.handleWheel),
			opts.Input.OnTouchStart(a.handleTouchStart),
			opts.Input.OnTouchMove(a.handleTouchMove),
			opts.Input.OnTouchEnd(a.handleTouchEnd),
		)
	}

	a.requestFrame()
	return a
}

// State 返回当前进度状态
func (a *NavigationAnimation) State() AnimationState {
	return a.state
}

// Active 返回帧循环是否在运行
func (a *NavigationAnimation) Active() bool {
	return a.active
}

// IsZoomIn 返回最近一次输入的方向
func (a *NavigationAnimation) IsZoomIn() bool {
	return a.isZoomIn
}

// ProcessInput 处理一次归一化前的输入
//
// 参数:
//   - delta: 原始增量，负数表示放大意图
//   - sensitivity: 灵敏度
//
// 全屏面板打开时忽略输入。循环已停止时重新激活并请求一帧。
func (a *NavigationAnimation) ProcessInput(delta, sensitivity float64) {
	if a.cleaned {
		return
	}
	if a.nav != nil && a.nav.FullscreenActive() {
		return
	}

	if !a.active {
		a.active = true
		a.requestFrame()
	}

	// 死区输入归一化为 0：目标不变，但方向被置为非放大
	step := NormalizeDelta(delta, sensitivity)
	step = GuardEdge(step, a.state.Progress, a.backwards, a.cfg.CompletionSensitivity)
	a.isZoomIn = step < 0
	a.state.Target = clamp01(a.state.Target - step)
}

// Cleanup 注销监听器、取消待执行的帧并停止循环，可重复调用
func (a *NavigationAnimation) Cleanup() {
	if a.cleaned {
		return
	}
	a.cleaned = true
	a.active = false

	for _, unsubscribe := range a.unsubscribe {
		unsubscribe()
	}
	a.unsubscribe = nil

	if a.frame != 0 {
		a.scheduler.CancelFrame(a.frame)
		a.frame = 0
	}
}

func (a *NavigationAnimation) handleWheel(ev WheelEvent) {
	a.ProcessInput(WheelDelta(ev), a.cfg.WheelSensitivity)
}

func (a *NavigationAnimation) handleTouchStart(ev TouchEvent) {
	a.touch.Start(ev.ID, ev.Y, ev.At)
}

func (a *NavigationAnimation) handleTouchMove(ev TouchEvent) {
	if step, ok := a.touch.Move(ev.ID, ev.Y, ev.At); ok {
		a.ProcessInput(step, a.cfg.TouchSensitivity)
	}
}

func (a *NavigationAnimation) handleTouchEnd(ev TouchEvent) {
	if fling, ok := a.touch.End(ev.ID); ok {
		a.ProcessInput(fling, a.cfg.TouchSensitivity)
	}
}

func (a *NavigationAnimation) requestFrame() {
	if a.frame != 0 || a.scheduler == nil {
		return
	}
	a.frame = a.scheduler.RequestFrame(a.tick)
}

// tick 帧回调
func (a *NavigationAnimation) tick() {
	a.frame = 0
	if !a.active || a.cleaned {
		return
	}

	a.state = StepSpring(a.state, a.cfg, a.backwards)
	progress := a.state.Progress

	if a.timeline != nil {
		a.timeline.Progress(progress)
	}
	a.bus.Publish(ProgressEvent{Scene: a.scene, Progress: progress})
	if a.nav != nil {
		a.nav.SetSceneZoomed(ClassifyZoom(progress, a.cfg))
	}

	cs := a.cfg.CompletionSensitivity
	reachedIn := progress >= 1-cs && a.directions.In
	zoomInDone := a.isZoomIn && reachedIn
	zoomOutDone := !a.isZoomIn && progress <= cs && a.directions.Out

	if zoomInDone || zoomOutDone {
		a.active = false
		if reachedIn {
			log.Printf("[Navigation] zoom-in complete from %s", a.scene)
		} else {
			log.Printf("[Navigation] zoom-out complete from %s", a.scene)
		}
		if a.onComplete != nil {
			a.onComplete(reachedIn)
		}
		return
	}

	a.requestFrame()
}
