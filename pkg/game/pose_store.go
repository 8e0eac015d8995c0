package game

import (
	"github.com/decker502/zoomnav/pkg/types"
)

// PoseStore 摄像机姿态快照存储
//
// 每个场景一个槽位：放大开始时保存当前摄像机姿态，
// 缩小开始时读取它，用于精确恢复进入场景前的视角。
//
// "从未保存"通过 Get 的 ok=false 表示，而不是与默认对象比较引用。
// 整个进程共享一个实例，但同一时刻只有一个可见场景会访问它，不需要加锁。
type PoseStore struct {
	poses map[types.SceneID]types.CameraPose
}

// NewPoseStore 创建空的姿态存储
func NewPoseStore() *PoseStore {
	return &PoseStore{
		poses: make(map[types.SceneID]types.CameraPose),
	}
}

// Get 获取场景保存的姿态
//
// 返回：
//   - types.CameraPose: 保存的姿态（未保存时为零值）
//   - bool: 是否保存过
func (ps *PoseStore) Get(scene types.SceneID) (types.CameraPose, bool) {
	pose, ok := ps.poses[scene]
	return pose, ok
}

// Set 保存场景姿态，无条件覆盖
func (ps *PoseStore) Set(scene types.SceneID, pose types.CameraPose) {
	ps.poses[scene] = pose
}

// Has 检查场景是否保存过姿态
func (ps *PoseStore) Has(scene types.SceneID) bool {
	_, ok := ps.poses[scene]
	return ok
}

// Clear 清除场景槽位，恢复为"从未保存"
func (ps *PoseStore) Clear(scene types.SceneID) {
	delete(ps.poses, scene)
}

// Snapshot 返回所有已保存姿态的副本
func (ps *PoseStore) Snapshot() map[types.SceneID]types.CameraPose {
	out := make(map[types.SceneID]types.CameraPose, len(ps.poses))
	for scene, pose := range ps.poses {
		out[scene] = pose
	}
	return out
}
