// Package navigation 实现滚轮/滑动驱动的场景导航引擎
//
// 组成：
//   - 输入归一化（normalizer.go）：把原始滚轮 / 触摸增量转换为带符号的步长
//   - 弹簧阻尼进度驱动（animation.go）：逐帧把 progress 推向 targetProgress，并检测完成
//   - 导航钩子（navigator.go）：场景可见时注册输入监听，跨场景延续惯性
//   - 镜头设置（zoom_setup.go）：放大前保存姿态，缩小前恢复姿态
//
// 整个包是单线程、按帧驱动的：输入回调只修改目标值，
// 只有帧回调会推进 progress 和 velocity。
package navigation

import "time"

// DeltaMode 滚轮增量的单位
type DeltaMode int

const (
	// DeltaPixel 以像素为单位（触控板、高精度滚轮）
	DeltaPixel DeltaMode = iota
	// DeltaLine 以行为单位（传统滚轮），换算时乘以 WheelLineDeltaMultiplier
	DeltaLine
)

// WheelEvent 滚轮事件
// DeltaY < 0 表示向上滚动（放大意图），> 0 表示向下滚动（缩小意图）
type WheelEvent struct {
	DeltaY float64
	Mode   DeltaMode
}

// TouchEvent 触摸事件（只关心纵向位置）
type TouchEvent struct {
	ID int
	Y  float64
	At time.Time
}

// InputDispatcher 输入事件分发器
//
// 相当于浏览器中 window 上的事件监听器列表。
// 每个 On* 方法返回取消订阅函数，取消函数可以重复调用。
// 分发时先复制监听器列表：分发过程中新增的监听器只会收到之后的事件，
// 分发过程中取消的监听器立即失效。
type InputDispatcher struct {
	nextID     int
	wheel      []listener[WheelEvent]
	touchStart []listener[TouchEvent]
	touchMove  []listener[TouchEvent]
	touchEnd   []listener[TouchEvent]
}

type listener[T any] struct {
	id int
	fn func(T)
}

// NewInputDispatcher 创建输入分发器
func NewInputDispatcher() *InputDispatcher {
	return &InputDispatcher{}
}

// OnWheel 注册滚轮监听器
func (d *InputDispatcher) OnWheel(fn func(WheelEvent)) (unsubscribe func()) {
	return subscribe(d, &d.wheel, fn)
}

// OnTouchStart 注册触摸开始监听器
func (d *InputDispatcher) OnTouchStart(fn func(TouchEvent)) (unsubscribe func()) {
	return subscribe(d, &d.touchStart, fn)
}

// OnTouchMove 注册触摸移动监听器
func (d *InputDispatcher) OnTouchMove(fn func(TouchEvent)) (unsubscribe func()) {
	return subscribe(d, &d.touchMove, fn)
}

// OnTouchEnd 注册触摸结束监听器
func (d *InputDispatcher) OnTouchEnd(fn func(TouchEvent)) (unsubscribe func()) {
	return subscribe(d, &d.touchEnd, fn)
}

// DispatchWheel 分发滚轮事件
func (d *InputDispatcher) DispatchWheel(ev WheelEvent) {
	dispatch(&d.wheel, ev)
}

// DispatchTouchStart 分发触摸开始事件
func (d *InputDispatcher) DispatchTouchStart(ev TouchEvent) {
	dispatch(&d.touchStart, ev)
}

// DispatchTouchMove 分发触摸移动事件
func (d *InputDispatcher) DispatchTouchMove(ev TouchEvent) {
	dispatch(&d.touchMove, ev)
}

// DispatchTouchEnd 分发触摸结束事件
func (d *InputDispatcher) DispatchTouchEnd(ev TouchEvent) {
	dispatch(&d.touchEnd, ev)
}

// ListenerCount 返回当前注册的监听器总数（调试和测试使用）
func (d *InputDispatcher) ListenerCount() int {
	return len(d.wheel) + len(d.touchStart) + len(d.touchMove) + len(d.touchEnd)
}

func subscribe[T any](d *InputDispatcher, list *[]listener[T], fn func(T)) func() {
	d.nextID++
	id := d.nextID
	*list = append(*list, listener[T]{id: id, fn: fn})

	return func() {
		for i, l := range *list {
			if l.id == id {
				*list = append((*list)[:i:i], (*list)[i+1:]...)
				return
			}
		}
	}
}

// dispatch 按注册顺序调用监听器
// 分发过程中被取消的监听器不会再被调用
func dispatch[T any](list *[]listener[T], ev T) {
	if len(*list) == 0 {
		return
	}
	snapshot := make([]listener[T], len(*list))
	copy(snapshot, *list)
	for _, l := range snapshot {
		if !subscribed(*list, l.id) {
			continue
		}
		l.fn(ev)
	}
}

func subscribed[T any](list []listener[T], id int) bool {
	for _, l := range list {
		if l.id == id {
			return true
		}
	}
	return false
}
