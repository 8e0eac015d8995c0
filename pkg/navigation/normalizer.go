package navigation

import (
	"math"
	"time"

	"github.com/decker502/zoomnav/pkg/config"
)

// 输入归一化常量
const (
	// deadZone 低于该绝对值的增量视为噪声
	deadZone = 0.001

	// 触摸跟踪参数
	minTouchInterval   = 10 * time.Millisecond // 两次 move 之间的最小时间间隔
	maxTouchDelta      = 100.0                 // 单次 move 的最大位移（像素）
	touchVelocityScale = 200.0                 // 位移 / 毫秒 → 速度 的换算系数
	maxTouchVelocity   = 2000.0                // 速度上限

	// 松手惯性参数
	minFlingVelocity = 20.0
	maxFlingVelocity = 500.0
	flingFactor      = 0.5
)

// NormalizeDelta 把原始增量归一化为带符号的步长
//
// 参数:
//   - delta: 原始增量（滚轮 deltaY 或触摸位移）
//   - sensitivity: 灵敏度
//
// 返回:
//   - |delta| < 0.001 时返回 0，否则返回 sign(delta) * sensitivity / 10
//
// 步长只取决于方向和灵敏度，与增量大小无关。
func NormalizeDelta(delta, sensitivity float64) float64 {
	abs := math.Abs(delta)
	if abs < deadZone {
		return 0
	}
	return delta / (abs * 10) * sensitivity
}

// GuardEdge 边界保护
//
// 放大手势停在起点附近（progress <= ε）时，步长强制为负（只能继续放大）；
// 缩小手势停在起点附近（progress >= 1-ε）时，步长强制为正（只能继续缩小）。
// 防止手势在起点处反向推出 [0,1] 之外。
func GuardEdge(step, progress float64, backwards bool, completionSensitivity float64) float64 {
	if !backwards && progress <= completionSensitivity {
		return -math.Abs(step)
	}
	if backwards && progress >= 1-completionSensitivity {
		return math.Abs(step)
	}
	return step
}

// WheelDelta 返回以像素为单位的滚轮增量
func WheelDelta(ev WheelEvent) float64 {
	if ev.Mode == DeltaLine {
		return ev.DeltaY * config.WheelLineDeltaMultiplier
	}
	return ev.DeltaY
}

// TouchTracker 单指触摸跟踪
// 把连续的 move 事件转换为归一化前的步长，并估算松手时的速度。
// 只跟踪第一根按下的手指，其它手指的事件被忽略。
type TouchTracker struct {
	active   bool
	id       int
	lastY    float64
	lastAt   time.Time
	velocity float64
}

// Start 记录触摸起点
// 已经在跟踪另一根手指时忽略
func (t *TouchTracker) Start(id int, y float64, at time.Time) {
	if t.active && t.id != id {
		return
	}
	t.active = true
	t.id = id
	t.lastY = y
	t.lastAt = at
	t.velocity = 0
}

// Move 处理触摸移动
//
// 返回:
//   - step: 送入归一化的增量（手指向上移动为负，与向上滚动一致）
//   - ok: false 表示本次移动不产生输入（没有位移、不是跟踪的手指，或者这是第一个事件）
func (t *TouchTracker) Move(id int, y float64, at time.Time) (step float64, ok bool) {
	if !t.active {
		t.Start(id, y, at)
		return 0, false
	}
	if id != t.id {
		return 0, false
	}

	deltaY := t.lastY - y
	if deltaY == 0 {
		return 0, false
	}

	elapsed := at.Sub(t.lastAt)
	if elapsed < minTouchInterval {
		elapsed = minTouchInterval
	}

	clamped := clamp(deltaY, -maxTouchDelta, maxTouchDelta)
	ms := float64(elapsed) / float64(time.Millisecond)
	t.velocity = clamp(clamped/ms*touchVelocityScale, -maxTouchVelocity, maxTouchVelocity)

	t.lastY = y
	t.lastAt = at
	return -clamped, true
}

// End 结束触摸
// 松手速度在 (20, 2000) 之间时返回一次 clamp(v, ±500) * 0.5 的输入。
// 速度与 move 步长符号相反，所以这一步会把目标往回拉一点。
func (t *TouchTracker) End(id int) (fling float64, ok bool) {
	if !t.active || id != t.id {
		return 0, false
	}
	v := t.velocity
	t.active = false
	t.velocity = 0

	abs := math.Abs(v)
	if abs <= minFlingVelocity || abs >= maxTouchVelocity {
		return 0, false
	}
	return clamp(v, -maxFlingVelocity, maxFlingVelocity) * flingFactor, true
}

// Velocity 返回最近一次 move 估算的速度
func (t *TouchTracker) Velocity() float64 {
	return t.velocity
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
