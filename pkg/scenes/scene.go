package scenes

import (
	"fmt"

	"github.com/decker502/zoomnav/pkg/config"
	"github.com/decker502/zoomnav/pkg/game"
	"github.com/decker502/zoomnav/pkg/navigation"
	"github.com/decker502/zoomnav/pkg/types"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Env 所有场景共享的运行环境
//
// 由 App 创建一次，按引用传给每个场景。
// 同一时刻只有一个可见场景会修改其中的状态。
type Env struct {
	State  *game.NavigationState
	Poses  *game.PoseStore
	Camera *types.Camera

	Input  *navigation.InputDispatcher
	Frames navigation.FrameScheduler
	Bus    *navigation.ProgressBus

	Config config.NavigationConfig
}

// NewScene 根据场景配置创建场景
//
// 参数:
//   - entry: 场景配置（kind 决定时间轴类型）
//   - env: 共享运行环境
//
// 返回:
//   - *ZoomScene: 初始不可见的场景
//   - error: 未知的场景类型
func NewScene(entry config.SceneEntry, env *Env) (*ZoomScene, error) {
	build, ok := timelineBuilders[entry.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown scene kind '%s' for scene '%s'", entry.Kind, entry.ID)
	}
	return newZoomScene(entry, env, build), nil
}

// BuildScenes 按配置顺序创建所有场景
func BuildScenes(cfg *config.SceneConfig, env *Env) ([]*ZoomScene, error) {
	scenes := make([]*ZoomScene, 0, len(cfg.Scenes))
	for _, entry := range cfg.Scenes {
		scene, err := NewScene(entry, env)
		if err != nil {
			return nil, fmt.Errorf("failed to build scene: %w", err)
		}
		scenes = append(scenes, scene)
	}
	return scenes, nil
}
