package modules

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/zoomnav/pkg/game"
	"github.com/decker502/zoomnav/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	panelOverlayColor = color.RGBA{A: 180}
	panelBorderColor  = color.RGBA{R: 160, G: 170, B: 200, A: 255}
)

// 面板布局（像素）
const (
	panelWidth      = 360
	panelLineHeight = 16
	panelPadding    = 20
)

// InfoPanelModule 全屏信息面板
//
// 面板打开期间设置 NavigationState.FullscreenActive，
// 导航钩子和进度驱动会忽略所有滚动 / 滑动输入。
//
// 打开 / 关闭可以由 Toggle 触发，也可以由外部直接修改 NavigationState，
// Update 会检测到变化并同步回调。
type InfoPanelModule struct {
	state *game.NavigationState
	names map[types.SceneID]string // 场景 ID → 显示名称

	// 回调函数（可选）
	onOpen  func()
	onClose func()

	// 上一帧的激活状态
	wasActive bool

	windowWidth  int
	windowHeight int
}

// InfoPanelCallbacks 信息面板回调函数集合
type InfoPanelCallbacks struct {
	OnOpen  func() // 面板打开
	OnClose func() // 面板关闭
}

// NewInfoPanelModule 创建信息面板
//
// 参数:
//   - state: 场景序列状态（读取场景顺序，写入全屏标志）
//   - names: 场景显示名称，缺失时显示场景 ID
//   - windowWidth, windowHeight: 窗口尺寸
//   - callbacks: 回调函数集合
func NewInfoPanelModule(state *game.NavigationState, names map[types.SceneID]string, windowWidth, windowHeight int, callbacks InfoPanelCallbacks) *InfoPanelModule {
	return &InfoPanelModule{
		state:        state,
		names:        names,
		onOpen:       callbacks.OnOpen,
		onClose:      callbacks.OnClose,
		wasActive:    state.FullscreenActive(),
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
	}
}

// Update 同步外部对全屏标志的修改
func (m *InfoPanelModule) Update(deltaTime float64) {
	active := m.state.FullscreenActive()
	if active == m.wasActive {
		return
	}

	m.wasActive = active
	if active {
		log.Printf("[InfoPanel] Opened (triggered by external state change)")
		if m.onOpen != nil {
			m.onOpen()
		}
	} else {
		log.Printf("[InfoPanel] Closed (triggered by external state change)")
		if m.onClose != nil {
			m.onClose()
		}
	}
}

// Show 打开面板
func (m *InfoPanelModule) Show() {
	m.state.SetFullscreenActive(true)
	m.wasActive = true
	if m.onOpen != nil {
		m.onOpen()
	}
	log.Printf("[InfoPanel] Panel shown")
}

// Hide 关闭面板
func (m *InfoPanelModule) Hide() {
	m.state.SetFullscreenActive(false)
	m.wasActive = false
	if m.onClose != nil {
		m.onClose()
	}
	log.Printf("[InfoPanel] Panel hidden")
}

// Toggle 切换面板（Tab 键）
func (m *InfoPanelModule) Toggle() {
	if m.state.FullscreenActive() {
		m.Hide()
	} else {
		m.Show()
	}
}

// IsActive 面板是否打开
func (m *InfoPanelModule) IsActive() bool {
	return m.state.FullscreenActive()
}

// Lines 返回面板内容：场景序列，当前场景带标记
func (m *InfoPanelModule) Lines() []string {
	order := m.state.Order()
	current := m.state.CurrentIndex()

	lines := make([]string, 0, len(order)+2)
	lines = append(lines, fmt.Sprintf("Scene %d / %d", current+1, len(order)), "")
	for i, id := range order {
		name, ok := m.names[id]
		if !ok {
			name = string(id)
		}
		marker := "  "
		if i == current {
			marker = "> "
		}
		lines = append(lines, marker+name)
	}
	return lines
}

// Draw 绘制遮罩和面板
func (m *InfoPanelModule) Draw(screen *ebiten.Image) {
	if !m.IsActive() {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(m.windowWidth), float32(m.windowHeight), panelOverlayColor, false)

	lines := m.Lines()
	height := len(lines)*panelLineHeight + panelPadding*2
	x := (m.windowWidth - panelWidth) / 2
	y := (m.windowHeight - height) / 2
	vector.StrokeRect(screen, float32(x), float32(y), panelWidth, float32(height), 2, panelBorderColor, false)

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+panelPadding, y+panelPadding+i*panelLineHeight)
	}
	ebitenutil.DebugPrintAt(screen, "Tab: close", x+panelPadding, y+height-panelPadding)
}
