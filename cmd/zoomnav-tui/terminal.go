package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/decker502/zoomnav/pkg/app"
	"github.com/decker502/zoomnav/pkg/game"
	"github.com/decker502/zoomnav/pkg/navigation"
	"github.com/decker502/zoomnav/pkg/types"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	eventBuffer   = 100
)

// errQuit 用户主动退出
var errQuit = errors.New("quit")

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBar     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleCurrent = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// terminal 终端前端
//
// 输入事件在独立 goroutine 中读取，通过 channel 交给帧循环分发。
// 导航引擎只在帧循环 goroutine 中运行。
type terminal struct {
	screen tcell.Screen
	nav    *app.Navigation
	names  map[types.SceneID]string

	progress float64
	unsub    func()
}

func newTerminal(screen tcell.Screen, nav *app.Navigation) *terminal {
	t := &terminal{
		screen: screen,
		nav:    nav,
		names:  nav.Names(),
	}
	t.unsub = nav.Env.Bus.Subscribe(func(ev navigation.ProgressEvent) {
		t.progress = ev.Progress
	})
	return t
}

// run 启动输入读取和帧循环，直到用户退出或 ctx 取消
func (t *terminal) run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(game.WithNavigationState(ctx, t.nav.Env.State))
	events := make(chan tcell.Event, eventBuffer)

	g.Go(func() error {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				// Fini 之后 PollEvent 返回 nil
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer t.screen.Fini()
		state := game.MustNavigationState(ctx)

		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev := <-events:
				if !t.handleEvent(state, ev) {
					return errQuit
				}
			case <-ticker.C:
				t.nav.Step(frameInterval.Seconds())
				t.draw(state)
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (t *terminal) handleEvent(state *game.NavigationState, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyTab {
			state.SetFullscreenActive(!state.FullscreenActive())
			return true
		}
		if deltaY, ok := keyDelta(ev); ok {
			t.nav.Env.Input.DispatchWheel(navigation.WheelEvent{DeltaY: deltaY, Mode: navigation.DeltaLine})
		}

	case *tcell.EventMouse:
		if deltaY, ok := mouseDelta(ev.Buttons()); ok {
			t.nav.Env.Input.DispatchWheel(navigation.WheelEvent{DeltaY: deltaY, Mode: navigation.DeltaLine})
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// keyDelta 方向键映射为一行滚轮：上键放大，下键缩小
func keyDelta(ev *tcell.EventKey) (float64, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return -1, true
	case tcell.KeyDown:
		return 1, true
	case tcell.KeyPgUp:
		return -3, true
	case tcell.KeyPgDn:
		return 3, true
	}
	return 0, false
}

// mouseDelta 鼠标滚轮映射为一行滚轮
func mouseDelta(buttons tcell.ButtonMask) (float64, bool) {
	switch {
	case buttons&tcell.WheelUp != 0:
		return -1, true
	case buttons&tcell.WheelDown != 0:
		return 1, true
	}
	return 0, false
}

// progressBar 渲染宽度为 width 的文本进度条
func progressBar(progress float64, width int) string {
	if width < 3 {
		return ""
	}
	inner := width - 2
	filled := int(progress*float64(inner) + 0.5)
	filled = max(0, min(inner, filled))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", inner-filled) + "]"
}

func (t *terminal) draw(state *game.NavigationState) {
	t.screen.Clear()
	width, height := t.screen.Size()

	camera := t.nav.Env.Camera
	order := state.Order()
	current := state.CurrentIndex()

	t.print(1, 0, styleTitle, fmt.Sprintf("Scene %d/%d  %s", current+1, len(order), t.names[state.Current()]))

	barWidth := min(width-10, 60)
	t.print(1, 2, styleBar, progressBar(t.progress, barWidth))
	t.print(barWidth+2, 2, styleDefault, fmt.Sprintf("%3.0f%%", t.progress*100))
	t.print(1, 3, styleDim, fmt.Sprintf("zoomed: %s", state.SceneZoomed()))
	t.print(1, 4, styleDim, fmt.Sprintf("camera: (%.2f, %.2f, %.2f)  fov %.1f",
		camera.Position.X, camera.Position.Y, camera.Position.Z, camera.FOV))

	if state.FullscreenActive() {
		for i, id := range order {
			style := styleDefault
			if i == current {
				style = styleCurrent
			}
			t.print(3, 6+i, style, t.names[id])
		}
	}

	t.print(1, height-1, styleDim, "wheel / up / down: zoom   tab: scene list   q: quit")
	t.screen.Show()
}

func (t *terminal) print(x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		t.screen.SetContent(col, y, r, nil, style)
		col++
	}
}

// close 取消进度订阅
func (t *terminal) close() {
	if t.unsub != nil {
		t.unsub()
		t.unsub = nil
	}
}
