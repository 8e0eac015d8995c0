// Package utils 提供通用工具函数
package utils

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// TouchPhase 触摸变化类型
type TouchPhase int

const (
	// TouchBegan 手指按下
	TouchBegan TouchPhase = iota
	// TouchMoved 手指移动
	TouchMoved
	// TouchEnded 手指抬起
	TouchEnded
)

// MouseTouchID 鼠标左键拖动模拟触摸时使用的触摸ID
const MouseTouchID = -1

// TouchSample 一帧内单个触摸点的变化
type TouchSample struct {
	ID    int
	Y     int
	Phase TouchPhase
}

// InputFrame 一帧的原始导航输入
type InputFrame struct {
	// WheelY 滚轮纵向增量（按行），正数表示向下滚动
	WheelY float64
	// Touches 按 ID 排序的触摸变化
	Touches []TouchSample
}

// InputPoller 每帧轮询 ebiten 的滚轮和触摸状态
//
// ebiten 只提供每帧的触摸位置快照，这里与上一帧比较，
// 还原成按下 / 移动 / 抬起事件。
type InputPoller struct {
	// EmulateTouchWithMouse 为 true 时，按住鼠标左键拖动等同于单指滑动
	EmulateTouchWithMouse bool

	lastY map[int]int
}

// NewInputPoller 创建输入轮询器
func NewInputPoller() *InputPoller {
	return &InputPoller{
		lastY: make(map[int]int),
	}
}

// Poll 读取当前帧的输入（每帧调用一次）
func (p *InputPoller) Poll() InputFrame {
	_, yoff := ebiten.Wheel()

	current := make(map[int]int)
	for _, id := range ebiten.AppendTouchIDs(nil) {
		_, y := ebiten.TouchPosition(id)
		current[int(id)] = y
	}
	if p.EmulateTouchWithMouse && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		_, y := ebiten.CursorPosition()
		current[MouseTouchID] = y
	}

	frame := InputFrame{
		// ebiten 中 yoff > 0 表示向上滚动
		WheelY:  -yoff,
		Touches: DiffTouches(p.lastY, current),
	}
	p.lastY = current
	return frame
}

// DiffTouches 比较前后两帧的触摸位置，生成触摸变化
//
// 参数：
//   - previous: 上一帧的触摸ID → Y 坐标
//   - current: 当前帧的触摸ID → Y 坐标
//
// 返回：
//   - 按 ID 升序排列；抬起事件使用上一帧的位置；位置不变的触摸不产生事件
func DiffTouches(previous, current map[int]int) []TouchSample {
	var samples []TouchSample

	for id, y := range current {
		lastY, existed := previous[id]
		switch {
		case !existed:
			samples = append(samples, TouchSample{ID: id, Y: y, Phase: TouchBegan})
		case lastY != y:
			samples = append(samples, TouchSample{ID: id, Y: y, Phase: TouchMoved})
		}
	}
	for id, y := range previous {
		if _, still := current[id]; !still {
			samples = append(samples, TouchSample{ID: id, Y: y, Phase: TouchEnded})
		}
	}

	sort.Slice(samples, func(i, j int) bool {
		if samples[i].ID != samples[j].ID {
			return samples[i].ID < samples[j].ID
		}
		return samples[i].Phase < samples[j].Phase
	})
	return samples
}
