package modules

import (
	"fmt"
	"image/color"

	"github.com/decker502/zoomnav/pkg/game"
	"github.com/decker502/zoomnav/pkg/navigation"
	"github.com/decker502/zoomnav/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 指示器布局（像素）
const (
	indicatorWidth   = 8
	indicatorHeight  = 200
	indicatorMargin  = 24
	indicatorDotSize = 4
)

var (
	indicatorTrackColor = color.RGBA{R: 80, G: 90, B: 120, A: 180}
	indicatorFillColor  = color.RGBA{R: 240, G: 200, B: 90, A: 230}
	indicatorDotColor   = color.RGBA{R: 200, G: 200, B: 220, A: 200}
	indicatorDoneColor  = color.RGBA{R: 120, G: 220, B: 140, A: 230}
)

// ZoomIndicatorModule 缩放进度指示器
//
// 订阅 ProgressBus，显示当前场景的动画进度，
// 以及当前场景在整个场景序列中的位置。
type ZoomIndicatorModule struct {
	state *game.NavigationState

	scene    types.SceneID
	progress float64

	unsubscribe func()

	windowWidth  int
	windowHeight int
}

// NewZoomIndicatorModule 创建缩放进度指示器
//
// 参数:
//   - bus: 进度事件总线
//   - state: 场景序列状态（用于显示场景位置）
//   - windowWidth, windowHeight: 窗口尺寸
func NewZoomIndicatorModule(bus *navigation.ProgressBus, state *game.NavigationState, windowWidth, windowHeight int) *ZoomIndicatorModule {
	m := &ZoomIndicatorModule{
		state:        state,
		scene:        state.Current(),
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
	}
	m.unsubscribe = bus.Subscribe(m.onProgress)
	return m
}

func (m *ZoomIndicatorModule) onProgress(ev navigation.ProgressEvent) {
	m.scene = ev.Scene
	m.progress = ev.Progress
}

// Progress 返回最近一次收到的进度
func (m *ZoomIndicatorModule) Progress() float64 {
	return m.progress
}

// Scene 返回最近一次进度事件的场景
func (m *ZoomIndicatorModule) Scene() types.SceneID {
	return m.scene
}

// Update 场景切换后清零进度，等待新场景的第一个事件
func (m *ZoomIndicatorModule) Update(deltaTime float64) {
	if current := m.state.Current(); current != m.scene {
		m.scene = current
		m.progress = 0
	}
}

// Draw 在屏幕右侧绘制进度条和场景序列
func (m *ZoomIndicatorModule) Draw(screen *ebiten.Image) {
	x := float32(m.windowWidth - indicatorMargin - indicatorWidth)
	top := float32(m.windowHeight-indicatorHeight) / 2

	vector.StrokeRect(screen, x, top, indicatorWidth, indicatorHeight, 1, indicatorTrackColor, false)

	// 进度从下往上填充
	filled := float32(m.progress) * indicatorHeight
	fill := indicatorFillColor
	if m.state.SceneZoomed() == types.ZoomIn {
		fill = indicatorDoneColor
	}
	vector.DrawFilledRect(screen, x, top+indicatorHeight-filled, indicatorWidth, filled, fill, false)

	// 场景序列：每个场景一个点，当前场景高亮
	order := m.state.Order()
	current := m.state.CurrentIndex()
	dotX := x - 3*indicatorDotSize
	for i := range order {
		y := top + float32(i)*(indicatorHeight/float32(max(len(order)-1, 1)))
		c := indicatorDotColor
		if i == current {
			c = indicatorFillColor
		}
		vector.DrawFilledRect(screen, dotX, y-indicatorDotSize/2, indicatorDotSize, indicatorDotSize, c, false)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%3.0f%%", m.progress*100), int(x)-16, int(top+indicatorHeight)+8)
}

// Cleanup 取消订阅进度事件
func (m *ZoomIndicatorModule) Cleanup() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}
