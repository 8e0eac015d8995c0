package game

import (
	"log"

	"github.com/decker502/zoomnav/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager keeps the visible scene in sync with NavigationState.
// It ensures only one scene's Update and Draw methods are called at any
// given time, and that visibility changes reach the scenes so their
// navigation hooks can attach and detach input listeners.
type SceneManager struct {
	state        *NavigationState
	scenes       map[types.SceneID]Scene
	currentScene Scene
}

// NewSceneManager creates a SceneManager bound to the given navigation state.
// The manager starts with no active scene; call Start after registering scenes.
func NewSceneManager(state *NavigationState) *SceneManager {
	sm := &SceneManager{
		state:  state,
		scenes: make(map[types.SceneID]Scene),
	}
	state.OnSceneChange(func(from, to types.SceneID, direction types.ZoomState) {
		sm.show(to)
	})
	return sm
}

// Register 注册场景
// 同一个 ID 重复注册时，后注册的覆盖先注册的
func (sm *SceneManager) Register(scene Scene) {
	if sm.state.IndexOf(scene.ID()) < 0 {
		log.Printf("[SceneManager] Warning: scene %s is not part of the scene order", scene.ID())
	}
	sm.scenes[scene.ID()] = scene
}

// Start 显示导航状态中的当前场景
func (sm *SceneManager) Start() {
	sm.show(sm.state.Current())
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// show 切换可见场景：先隐藏旧场景（释放输入监听），再显示新场景
func (sm *SceneManager) show(id types.SceneID) {
	next, ok := sm.scenes[id]
	if !ok {
		log.Printf("[SceneManager] 错误: 场景未注册: %s", id)
		return
	}
	if next == sm.currentScene {
		return
	}

	if sm.currentScene != nil {
		sm.currentScene.SetVisible(false)
	}
	sm.currentScene = next
	log.Printf("[SceneManager] 成功切换到场景: %s", id)
	next.SetVisible(true)
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
