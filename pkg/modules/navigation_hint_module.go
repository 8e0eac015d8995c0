package modules

import (
	"log"

	"github.com/decker502/zoomnav/pkg/navigation"
	"github.com/decker502/zoomnav/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// 提示文字
const (
	hintDesktop = "Scroll up to zoom in, scroll down to zoom out"
	hintMobile  = "Swipe up to zoom in, swipe down to zoom out"
)

// hintFadeDuration 第一次交互后提示淡出的时间（秒）
const hintFadeDuration = 0.6

// NavigationHintModule 导航提示
//
// 启动时显示操作提示，收到第一次滚轮或触摸输入后淡出，之后不再显示。
// 它只监听输入，不消费输入：导航钩子照常收到同一个事件。
type NavigationHintModule struct {
	text string

	dismissed bool
	fade      float64 // 剩余淡出时间（秒）

	unsubscribe []func()

	windowWidth  int
	windowHeight int
}

// NewNavigationHintModule 创建导航提示
//
// 参数:
//   - input: 输入分发器（监听第一次交互）
//   - windowWidth, windowHeight: 窗口尺寸
func NewNavigationHintModule(input *navigation.InputDispatcher, windowWidth, windowHeight int) *NavigationHintModule {
	m := &NavigationHintModule{
		text:         hintDesktop,
		fade:         hintFadeDuration,
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
	}
	if utils.IsMobile() {
		m.text = hintMobile
	}

	m.unsubscribe = []func(){
		input.OnWheel(func(navigation.WheelEvent) { m.Dismiss() }),
		input.OnTouchStart(func(navigation.TouchEvent) { m.Dismiss() }),
	}
	return m
}

// Text 返回提示文字
func (m *NavigationHintModule) Text() string {
	return m.text
}

// Dismiss 隐藏提示并注销监听器，可重复调用
func (m *NavigationHintModule) Dismiss() {
	if m.dismissed {
		return
	}
	m.dismissed = true
	m.Cleanup()
	log.Printf("[NavigationHint] Dismissed after first interaction")
}

// IsActive 提示是否仍在显示（包括淡出过程）
func (m *NavigationHintModule) IsActive() bool {
	return !m.dismissed || m.fade > 0
}

// Update 推进淡出
func (m *NavigationHintModule) Update(deltaTime float64) {
	if m.dismissed && m.fade > 0 {
		m.fade -= deltaTime
	}
}

// Draw 在屏幕底部居中绘制提示
// DebugPrint 不支持透明度，淡出过程中按剩余时间闪烁
func (m *NavigationHintModule) Draw(screen *ebiten.Image) {
	if !m.IsActive() {
		return
	}
	if m.dismissed && int(m.fade*10)%2 == 1 {
		return
	}

	// DebugPrint 字符宽 6 像素
	x := (m.windowWidth - len(m.text)*6) / 2
	y := m.windowHeight - 48
	ebitenutil.DebugPrintAt(screen, m.text, x, y)
}

// Cleanup 注销输入监听器
func (m *NavigationHintModule) Cleanup() {
	for _, unsubscribe := range m.unsubscribe {
		unsubscribe()
	}
	m.unsubscribe = nil
}
