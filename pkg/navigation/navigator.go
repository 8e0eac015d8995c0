package navigation

import (
	"log"
	"math"

	"github.com/decker502/zoomnav/pkg/config"
	"github.com/decker502/zoomnav/pkg/game"
	"github.com/decker502/zoomnav/pkg/types"
)

// Producer 场景动画生成器
// 构建时间轴并启动导航动画，返回清理函数；返回 nil 表示放弃本次手势
type Producer func(backwards bool) (cleanup func())

// NavigatorOptions 导航钩子参数
type NavigatorOptions struct {
	Scene    types.SceneID
	Producer Producer
	State    *game.NavigationState
	Poses    *game.PoseStore
	Input    *InputDispatcher

	// MinSwipeDistance 触发手势的最小滑动距离，<= 0 时使用默认值
	MinSwipeDistance float64
}

// Navigator 场景的导航钩子
//
// 场景可见时：
//   - 上一次过渡留下了方向提示 → 立即沿同一方向开始手势（惯性延续）
//   - 否则注册初始监听器，等待第一次滚动 / 滑动
//
// 场景隐藏时注销所有监听器并清理正在进行的手势。
type Navigator struct {
	scene    types.SceneID
	producer Producer
	state    *game.NavigationState
	poses    *game.PoseStore
	input    *InputDispatcher
	minSwipe float64

	visible bool
	initial []func()
	cleanup func()

	touching    bool
	touchID     int
	touchStartY float64
}

// NewNavigator 创建导航钩子（初始不可见）
func NewNavigator(opts NavigatorOptions) *Navigator {
	minSwipe := opts.MinSwipeDistance
	if minSwipe <= 0 {
		minSwipe = config.DefaultMinSwipeDistance
	}

	return &Navigator{
		scene:    opts.Scene,
		producer: opts.Producer,
		state:    opts.State,
		poses:    opts.Poses,
		input:    opts.Input,
		minSwipe: minSwipe,
	}
}

// Visible 返回场景是否可见
func (n *Navigator) Visible() bool {
	return n.visible
}

// Gesturing 返回是否有正在进行的手势
func (n *Navigator) Gesturing() bool {
	return n.cleanup != nil
}

// SetVisible 设置场景可见性
func (n *Navigator) SetVisible(visible bool) {
	if visible == n.visible {
		return
	}
	n.visible = visible

	if !visible {
		n.removeInitialListeners()
		n.stopGesture()
		return
	}

	switch n.state.ZoomDirection() {
	case types.ZoomIn:
		n.startGesture(false)
	case types.ZoomOut:
		n.startGesture(true)
	default:
		n.addInitialListeners()
	}
}

// isFirstScene 第一个场景且从未放大过，此时不允许缩小
func (n *Navigator) isFirstScene() bool {
	return n.state.IsFirst(n.scene) && !n.poses.Has(n.scene)
}

func (n *Navigator) addInitialListeners() {
	if n.input == nil || len(n.initial) > 0 {
		return
	}

	n.initial = append(n.initial,
		n.input.OnWheel(n.onInitialWheel),
		n.input.OnTouchStart(n.onInitialTouchStart),
		n.input.OnTouchMove(n.onInitialTouchMove),
		n.input.OnTouchEnd(n.onInitialTouchEnd),
	)
}

func (n *Navigator) removeInitialListeners() {
	for _, unsubscribe := range n.initial {
		unsubscribe()
	}
	n.initial = nil
	n.touching = false
}

func (n *Navigator) onInitialWheel(ev WheelEvent) {
	if n.state.FullscreenActive() {
		return
	}

	switch {
	case ev.DeltaY < 0:
		n.startGesture(false)
	case ev.DeltaY > 0 && !n.isFirstScene():
		n.startGesture(true)
	}
}

func (n *Navigator) onInitialTouchStart(ev TouchEvent) {
	if n.state.FullscreenActive() {
		return
	}
	if n.touching && ev.ID != n.touchID {
		return
	}
	n.touching = true
	n.touchID = ev.ID
	n.touchStartY = ev.Y
}

func (n *Navigator) onInitialTouchMove(ev TouchEvent) {
	if n.state.FullscreenActive() {
		return
	}
	if !n.touching {
		n.onInitialTouchStart(ev)
		return
	}
	if ev.ID != n.touchID {
		return
	}

	deltaY := n.touchStartY - ev.Y
	if math.Abs(deltaY) < n.minSwipe {
		return
	}

	switch {
	case deltaY > 0:
		n.touching = false
		n.startGesture(false)
	case deltaY < 0 && !n.isFirstScene():
		n.touching = false
		n.startGesture(true)
	default:
		n.touchStartY = ev.Y
	}
}

func (n *Navigator) onInitialTouchEnd(ev TouchEvent) {
	if ev.ID == n.touchID {
		n.touching = false
	}
}

// startGesture 开始一次手势
// 生成器可能同步触发场景切换（没有可恢复的姿态），此时本场景已经被隐藏
func (n *Navigator) startGesture(backwards bool) {
	n.removeInitialListeners()
	n.stopGesture()

	log.Printf("[Navigator] %s: starting gesture (backwards=%v)", n.scene, backwards)
	cleanup := n.producer(backwards)

	if !n.visible {
		if cleanup != nil {
			cleanup()
		}
		return
	}
	if cleanup == nil {
		n.addInitialListeners()
		return
	}
	n.cleanup = cleanup
}

func (n *Navigator) stopGesture() {
	if n.cleanup == nil {
		return
	}
	cleanup := n.cleanup
	n.cleanup = nil
	cleanup()
}
