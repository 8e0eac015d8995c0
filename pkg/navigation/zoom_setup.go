package navigation

import (
	"log"

	"github.com/decker502/zoomnav/pkg/game"
	"github.com/decker502/zoomnav/pkg/types"
)

// ZoomContext 镜头设置依赖的共享状态
type ZoomContext struct {
	Poses *game.PoseStore
	State *game.NavigationState
}

// SetupZoom 手势开始前的镜头准备
//
// 放大：把当前摄像机姿态保存到场景槽位，之后缩小时用来恢复。
// 缩小：槽位有快照时恢复到摄像机上；没有快照且不是第一个场景时，
// 说明无法还原进入场景前的视角，直接完成一次缩小过渡。
//
// 返回:
//   - false 表示已经触发了过渡，调用方不应再创建动画
func SetupZoom(camera *types.Camera, scene types.SceneID, backwards bool, zc ZoomContext) bool {
	if !backwards {
		zc.Poses.Set(scene, camera.Pose())
		return true
	}

	if pose, ok := zc.Poses.Get(scene); ok {
		camera.Apply(pose)
		return true
	}

	if zc.State != nil && zc.State.IndexOf(scene) > 0 {
		log.Printf("[Navigation] No saved pose for %s, skipping zoom-out animation", scene)
		zc.State.CompleteTransition(false)
		return false
	}

	return true
}
