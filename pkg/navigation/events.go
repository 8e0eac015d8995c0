package navigation

import "github.com/decker502/zoomnav/pkg/types"

// ProgressEvent 进度更新事件（每帧广播，供缩放进度指示器使用）
type ProgressEvent struct {
	Scene    types.SceneID
	Progress float64
}

// ProgressBus 进度事件总线
// 订阅者按订阅顺序同步调用
type ProgressBus struct {
	nextID      int
	subscribers []progressSubscriber
}

type progressSubscriber struct {
	id int
	fn func(ProgressEvent)
}

// NewProgressBus 创建事件总线
func NewProgressBus() *ProgressBus {
	return &ProgressBus{}
}

// Subscribe 订阅进度事件，返回取消订阅函数
func (b *ProgressBus) Subscribe(fn func(ProgressEvent)) (unsubscribe func()) {
	b.nextID++
	id := b.nextID
	b.subscribers = append(b.subscribers, progressSubscriber{id: id, fn: fn})

	return func() {
		for i, s := range b.subscribers {
			if s.id == id {
				b.subscribers = append(b.subscribers[:i:i], b.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Publish 广播进度事件
// nil 总线上调用是安全的
func (b *ProgressBus) Publish(ev ProgressEvent) {
	if b == nil {
		return
	}
	for _, s := range b.subscribers {
		s.fn(ev)
	}
}
