package app

import (
	"time"

	"github.com/decker502/zoomnav/pkg/navigation"
	"github.com/decker502/zoomnav/pkg/utils"
)

// dispatchInputFrame 把一帧原始输入转换为导航事件并分发
//
// 参数:
//   - d: 输入分发器
//   - frame: InputPoller 读取的原始输入
//   - invertScroll: 反转滚轮方向（用户设置）
//   - now: 当前时间，作为触摸事件的时间戳
func dispatchInputFrame(d *navigation.InputDispatcher, frame utils.InputFrame, invertScroll bool, now time.Time) {
	if frame.WheelY != 0 {
		deltaY := frame.WheelY
		if invertScroll {
			deltaY = -deltaY
		}
		d.DispatchWheel(navigation.WheelEvent{DeltaY: deltaY, Mode: navigation.DeltaLine})
	}

	for _, touch := range frame.Touches {
		ev := navigation.TouchEvent{ID: touch.ID, Y: float64(touch.Y), At: now}
		switch touch.Phase {
		case utils.TouchBegan:
			d.DispatchTouchStart(ev)
		case utils.TouchMoved:
			d.DispatchTouchMove(ev)
		case utils.TouchEnded:
			d.DispatchTouchEnd(ev)
		}
	}
}
