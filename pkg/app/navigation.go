package app

import (
	"fmt"

	"github.com/decker502/zoomnav/pkg/config"
	"github.com/decker502/zoomnav/pkg/game"
	"github.com/decker502/zoomnav/pkg/navigation"
	"github.com/decker502/zoomnav/pkg/scenes"
	"github.com/decker502/zoomnav/pkg/types"
)

// Navigation 一套完整的导航运行环境
// 桌面端、终端前端和模拟工具共用
type Navigation struct {
	Env     *scenes.Env
	Frames  *navigation.FrameLoop
	Manager *game.SceneManager
	Scenes  []*scenes.ZoomScene
}

// BuildNavigation 根据场景配置创建导航环境
//
// 参数:
//   - sceneCfg: 场景序列配置
//   - navCfg: 导航动画配置（已应用用户设置）
//
// 返回的场景均已注册到 Manager，调用 Manager.Start() 后第一个场景可见。
func BuildNavigation(sceneCfg *config.SceneConfig, navCfg config.NavigationConfig) (*Navigation, error) {
	state, err := game.NewNavigationState(sceneCfg.Order())
	if err != nil {
		return nil, fmt.Errorf("failed to create navigation state: %w", err)
	}

	initial := sceneCfg.InitialCamera.Pose()
	camera := types.NewCamera(initial.Position, initial.FOV)
	camera.Orientation = initial.Orientation

	frames := navigation.NewFrameLoop()
	env := &scenes.Env{
		State:  state,
		Poses:  game.NewPoseStore(),
		Camera: camera,
		Input:  navigation.NewInputDispatcher(),
		Frames: frames,
		Bus:    navigation.NewProgressBus(),
		Config: navCfg,
	}

	built, err := scenes.BuildScenes(sceneCfg, env)
	if err != nil {
		return nil, err
	}

	manager := game.NewSceneManager(state)
	for _, scene := range built {
		manager.Register(scene)
	}

	return &Navigation{
		Env:     env,
		Frames:  frames,
		Manager: manager,
		Scenes:  built,
	}, nil
}

// Names 返回场景 ID 到显示名称的映射
func (n *Navigation) Names() map[types.SceneID]string {
	names := make(map[types.SceneID]string, len(n.Scenes))
	for _, scene := range n.Scenes {
		names[scene.ID()] = scene.Entry().DisplayName()
	}
	return names
}

// Step 推进一帧：先执行帧回调，再更新当前场景
func (n *Navigation) Step(deltaTime float64) {
	n.Frames.Tick()
	n.Manager.Update(deltaTime)
}
