package navigation

// FrameID 帧回调标识，0 表示无效
type FrameID uint64

// FrameScheduler 帧调度器
// 相当于 requestAnimationFrame / cancelAnimationFrame
type FrameScheduler interface {
	// RequestFrame 请求在下一帧调用 fn
	RequestFrame(fn func()) FrameID
	// CancelFrame 取消尚未执行的帧回调，对已执行或无效的 ID 无影响
	CancelFrame(id FrameID)
}

// FrameLoop 按 Tick 驱动的帧调度器
//
// 每次 Tick 执行上一帧之前请求的回调；回调执行期间请求的新回调
// 会在下一次 Tick 执行。由 ebiten Update、终端前端的定时器或测试手动驱动。
type FrameLoop struct {
	nextID  FrameID
	pending []frameCallback
	frame   uint64

	// 正在执行的批次，本帧尚未执行的回调同样可以取消
	batch  []frameCallback
	cursor int
}

type frameCallback struct {
	id FrameID
	fn func()
}

// NewFrameLoop 创建帧调度器
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{}
}

// RequestFrame 实现 FrameScheduler
func (l *FrameLoop) RequestFrame(fn func()) FrameID {
	l.nextID++
	l.pending = append(l.pending, frameCallback{id: l.nextID, fn: fn})
	return l.nextID
}

// CancelFrame 实现 FrameScheduler
func (l *FrameLoop) CancelFrame(id FrameID) {
	for i := l.cursor; i < len(l.batch); i++ {
		if l.batch[i].id == id {
			l.batch[i].fn = nil
			return
		}
	}
	for i, cb := range l.pending {
		if cb.id == id {
			l.pending = append(l.pending[:i:i], l.pending[i+1:]...)
			return
		}
	}
}

// Tick 执行一帧
// 返回本帧执行的回调数量
func (l *FrameLoop) Tick() int {
	l.frame++
	if len(l.pending) == 0 {
		return 0
	}

	l.batch = l.pending
	l.pending = nil

	ran := 0
	for l.cursor = 0; l.cursor < len(l.batch); {
		cb := l.batch[l.cursor]
		l.cursor++
		if cb.fn == nil {
			continue
		}
		cb.fn()
		ran++
	}
	l.batch = nil
	l.cursor = 0
	return ran
}

// Pending 返回等待执行的回调数量
func (l *FrameLoop) Pending() int {
	return len(l.pending)
}

// Frame 返回已执行的帧数
func (l *FrameLoop) Frame() uint64 {
	return l.frame
}
