package types

import "github.com/goki/mat32"

// CameraPose 摄像机姿态快照
// 值类型：复制即快照，修改快照不会影响摄像机本身
type CameraPose struct {
	Position    mat32.Vec3 // 位置
	Orientation mat32.Quat // 朝向（单位四元数）
	FOV         float32    // 垂直视野角度（度）
}

// Equal 判断两个姿态的三个字段是否完全相等
func (p CameraPose) Equal(other CameraPose) bool {
	return p.Position == other.Position &&
		p.Orientation == other.Orientation &&
		p.FOV == other.FOV
}

// Camera 场景共享的实时摄像机
// 场景的时间轴直接修改它，PoseStore 只保存它的快照
type Camera struct {
	Position    mat32.Vec3
	Orientation mat32.Quat
	FOV         float32
}

// NewCamera 创建摄像机，朝向为单位四元数
func NewCamera(position mat32.Vec3, fov float32) *Camera {
	return &Camera{
		Position:    position,
		Orientation: mat32.NewQuat(0, 0, 0, 1),
		FOV:         fov,
	}
}

// Pose 返回当前摄像机姿态的快照
func (c *Camera) Pose() CameraPose {
	return CameraPose{
		Position:    c.Position,
		Orientation: c.Orientation,
		FOV:         c.FOV,
	}
}

// Apply 把快照恢复到摄像机上
func (c *Camera) Apply(pose CameraPose) {
	c.Position = pose.Position
	c.Orientation = pose.Orientation
	c.FOV = pose.FOV
}

// LerpVec3 在两个向量之间线性插值
func LerpVec3(from, to mat32.Vec3, t float32) mat32.Vec3 {
	return from.Add(to.Sub(from).MulScalar(t))
}

// LerpFloat 标量线性插值
func LerpFloat(from, to, t float32) float32 {
	return from + (to-from)*t
}

// SlerpQuat 在两个朝向之间球面插值（不修改参数）
func SlerpQuat(from, to mat32.Quat, t float32) mat32.Quat {
	q := from
	q.Slerp(to, t)
	return q
}
