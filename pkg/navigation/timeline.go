package navigation

import "github.com/decker502/zoomnav/pkg/utils"

// Timeline 可拖动的动画时间轴
//
// 导航动画只通过这三个方法驱动时间轴：
// 构造时暂停，之后每帧用 Progress 把时间轴拖到当前进度。
type Timeline interface {
	Pause()
	Progress(t float64)
	OnComplete(fn func())
}

// Ease 缓动函数，输入输出都在 [0,1]
type Ease func(t float64) float64

// 常用缓动函数
var (
	Linear        Ease = utils.EaseLinear
	Power1Out     Ease = utils.EaseOutQuad // 默认缓动
	EaseOutQuad   Ease = utils.EaseOutQuad
	EaseInOutQuad Ease = utils.EaseInOutQuad
)

// Segment 时间轴片段
type Segment struct {
	Duration float64             // 时长（秒），<= 0 视为瞬时片段
	Ease     Ease                // nil 时使用 Power1Out
	Update   func(local float64) // 渲染回调，local 为缓动后的片段进度
}

// Tween 由多个首尾相接的片段组成的时间轴
//
// 本身不随时间播放，进度完全由 Progress 决定。
type Tween struct {
	segments []Segment
	rendered []float64 // 每个片段上一次渲染的原始进度，-1 表示未渲染
	total    float64

	progress float64
	paused   bool
	started  bool

	onStart    func()
	onUpdate   func(t float64)
	onComplete []func()
}

// NewTween 创建时间轴
func NewTween(segments ...Segment) *Tween {
	tw := &Tween{}
	for _, seg := range segments {
		tw.Add(seg)
	}
	return tw
}

// Add 追加片段
func (tw *Tween) Add(seg Segment) *Tween {
	if seg.Ease == nil {
		seg.Ease = Power1Out
	}
	if seg.Duration < 0 {
		seg.Duration = 0
	}
	tw.segments = append(tw.segments, seg)
	tw.rendered = append(tw.rendered, -1)
	tw.total += seg.Duration
	return tw
}

// Duration 返回总时长
func (tw *Tween) Duration() float64 {
	return tw.total
}

// Pause 实现 Timeline
func (tw *Tween) Pause() {
	tw.paused = true
}

// Paused 返回时间轴是否已暂停
func (tw *Tween) Paused() bool {
	return tw.paused
}

// OnStart 设置首次离开起点时的回调
func (tw *Tween) OnStart(fn func()) {
	tw.onStart = fn
}

// OnUpdate 设置每次渲染后的回调
func (tw *Tween) OnUpdate(fn func(t float64)) {
	tw.onUpdate = fn
}

// OnComplete 实现 Timeline，每次从下方到达终点时调用
func (tw *Tween) OnComplete(fn func()) {
	tw.onComplete = append(tw.onComplete, fn)
}

// CurrentProgress 返回最近一次 Progress 设置的进度
func (tw *Tween) CurrentProgress() float64 {
	return tw.progress
}

// Progress 实现 Timeline：把时间轴拖到进度 t（会被限制在 [0,1]）
func (tw *Tween) Progress(t float64) {
	t = clamp01(t)
	prev := tw.progress
	tw.progress = t

	if !tw.started && prev == 0 && t > 0 {
		tw.started = true
		if tw.onStart != nil {
			tw.onStart()
		}
	}

	tw.render(t)

	if tw.onUpdate != nil {
		tw.onUpdate(t)
	}

	if t >= 1 && prev < 1 {
		for _, fn := range tw.onComplete {
			fn()
		}
	}
}

// render 渲染每个进度发生变化的片段
func (tw *Tween) render(t float64) {
	elapsed := t * tw.total
	start := 0.0

	for i, seg := range tw.segments {
		var local float64
		switch {
		case seg.Duration == 0:
			if elapsed >= start && t > 0 {
				local = 1
			}
		default:
			local = clamp01((elapsed - start) / seg.Duration)
		}
		start += seg.Duration

		if tw.rendered[i] == local {
			continue
		}
		tw.rendered[i] = local
		if seg.Update != nil {
			seg.Update(seg.Ease(local))
		}
	}
}
