package scenes

import (
	"log"

	"github.com/decker502/zoomnav/pkg/config"
	"github.com/decker502/zoomnav/pkg/navigation"
	"github.com/decker502/zoomnav/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// ZoomScene 由滚动 / 滑动驱动镜头动画的场景
//
// 每个场景持有一个导航钩子（Navigator）。场景可见时由钩子决定何时开始手势，
// 手势开始时通过 produce 构建时间轴并启动导航动画。
type ZoomScene struct {
	entry config.SceneEntry
	env   *Env
	build timelineBuilder

	navigator *navigation.Navigator
	animation *navigation.NavigationAnimation

	visible  bool
	progress float64 // 最近一次渲染的时间轴进度
	elapsed  float64 // 可见后经过的时间（秒），用于背景动画
}

func newZoomScene(entry config.SceneEntry, env *Env, build timelineBuilder) *ZoomScene {
	s := &ZoomScene{
		entry: entry,
		env:   env,
		build: build,
	}
	s.navigator = navigation.NewNavigator(navigation.NavigatorOptions{
		Scene:            entry.ID,
		Producer:         s.produce,
		State:            env.State,
		Poses:            env.Poses,
		Input:            env.Input,
		MinSwipeDistance: env.Config.MinSwipeDistance,
	})
	return s
}

// ID 实现 game.Scene
func (s *ZoomScene) ID() types.SceneID {
	return s.entry.ID
}

// Entry 返回场景配置
func (s *ZoomScene) Entry() config.SceneEntry {
	return s.entry
}

// Progress 返回当前时间轴进度
func (s *ZoomScene) Progress() float64 {
	return s.progress
}

// Animating 返回是否有正在进行的手势
func (s *ZoomScene) Animating() bool {
	return s.animation != nil
}

// SetVisible 实现 game.Scene
func (s *ZoomScene) SetVisible(visible bool) {
	if visible == s.visible {
		return
	}
	s.visible = visible
	if visible {
		s.elapsed = 0
	}
	s.navigator.SetVisible(visible)
}

// produce 场景动画生成器
//
// 先准备镜头（保存或恢复姿态），再以当前摄像机为起点构建时间轴，
// 最后启动导航动画。SetupZoom 已经触发过渡时返回 nil。
func (s *ZoomScene) produce(backwards bool) func() {
	camera := s.env.Camera
	zc := navigation.ZoomContext{Poses: s.env.Poses, State: s.env.State}
	if !navigation.SetupZoom(camera, s.entry.ID, backwards, zc) {
		return nil
	}

	timeline := s.build(camera, s.entry)
	timeline.OnStart(func() {
		log.Printf("[Scene] %s: timeline started (backwards=%v)", s.entry.ID, backwards)
	})
	timeline.OnUpdate(func(t float64) {
		s.progress = t
	})

	directions := s.entry.Directions()
	animation := navigation.NewNavigationAnimation(navigation.AnimationOptions{
		Scene:      s.entry.ID,
		Timeline:   timeline,
		OnComplete: s.env.State.CompleteTransition,
		Backwards:  backwards,
		Directions: &directions,
		Config:     s.env.Config,
		Scheduler:  s.env.Frames,
		Bus:        s.env.Bus,
		State:      s.env.State,
		Input:      s.env.Input,
	})
	s.animation = animation

	return func() {
		animation.Cleanup()
		if s.animation == animation {
			s.animation = nil
		}
	}
}

// Update 实现 game.Scene
func (s *ZoomScene) Update(deltaTime float64) {
	if !s.visible {
		return
	}
	s.elapsed += deltaTime
}

// Draw 实现 game.Scene
func (s *ZoomScene) Draw(screen *ebiten.Image) {
	drawScene(screen, s.env.Camera, s.entry, s.elapsed)
}
