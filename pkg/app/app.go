// Package app 提供导航应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/zoomnav/pkg/config"
	"github.com/decker502/zoomnav/pkg/game"
	"github.com/decker502/zoomnav/pkg/modules"
	"github.com/decker502/zoomnav/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// appName gdata 存储使用的应用名
const appName = "zoomnav"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigDir 配置目录，为空则使用嵌入的 data/
	ConfigDir string
}

// App 是导航应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	nav      *Navigation
	settings *game.SettingsManager
	poller   *utils.InputPoller

	indicator *modules.ZoomIndicatorModule
	hint      *modules.NavigationHintModule
	panel     *modules.InfoPanelModule

	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化导航应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	cfgs, err := LoadConfigs(cfg.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configs: %w", err)
	}

	// 用户设置（gdata 不可用时降级为内存设置）
	settings, err := game.NewSettingsManager(game.OpenGdata(appName))
	if err != nil {
		return nil, fmt.Errorf("failed to create settings manager: %w", err)
	}
	navCfg := settings.ApplyTo(*cfgs.Navigation)

	nav, err := BuildNavigation(cfgs.Scenes, navCfg)
	if err != nil {
		return nil, err
	}
	env := nav.Env

	a := &App{
		nav:      nav,
		settings: settings,
		poller:   utils.NewInputPoller(),
		verbose:  cfg.Verbose,
	}
	a.poller.EmulateTouchWithMouse = !utils.IsMobile()

	// 提示模块先于场景注册监听器，第一次输入时先隐藏提示
	a.hint = modules.NewNavigationHintModule(env.Input, config.GameWindowWidth, config.GameWindowHeight)
	a.indicator = modules.NewZoomIndicatorModule(env.Bus, env.State, config.GameWindowWidth, config.GameWindowHeight)
	a.panel = modules.NewInfoPanelModule(env.State, nav.Names(), config.GameWindowWidth, config.GameWindowHeight, modules.InfoPanelCallbacks{})

	nav.Manager.Start()
	log.Printf("[App] Started at scene %s (%d scenes)", env.State.Current(), len(nav.Scenes))

	return a, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// Tab 切换信息面板（打开期间忽略导航输入）
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		a.panel.Toggle()
	}

	// I 反转滚动方向
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		invert := !a.settings.GetSettings().InvertScroll
		a.settings.SetInvertScroll(invert)
		a.saveSettings()
		log.Printf("[App] InvertScroll = %v", invert)
	}

	// 输入回调只修改目标进度，帧回调推进动画
	frame := a.poller.Poll()
	dispatchInputFrame(a.nav.Env.Input, frame, a.settings.GetSettings().InvertScroll, time.Now())

	deltaTime := 1.0 / 60.0
	a.nav.Step(deltaTime)
	a.panel.Update(deltaTime)
	a.hint.Update(deltaTime)
	a.indicator.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := ebiten.IsFullscreen()
	if fullscreen {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settings.SetFullscreen(!fullscreen)
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.nav.Manager.Draw(screen)
	a.indicator.Draw(screen)
	a.hint.Draw(screen)
	a.panel.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.nav.Manager
}

// Settings 返回用户设置
// 桌面端启动时读取 Fullscreen 决定初始窗口模式
func (a *App) Settings() *game.NavigationSettings {
	return a.settings.GetSettings()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
