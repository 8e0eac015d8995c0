package scenes

import (
	"math"

	"github.com/decker502/zoomnav/pkg/config"
	"github.com/decker502/zoomnav/pkg/navigation"
	"github.com/decker502/zoomnav/pkg/types"
	"github.com/decker502/zoomnav/pkg/utils"
	"github.com/goki/mat32"
)

// timelineBuilder 构建场景的镜头时间轴
// 起始姿态取自调用时的摄像机（SetupZoom 已经保存或恢复过它）
type timelineBuilder func(camera *types.Camera, entry config.SceneEntry) *navigation.Tween

var timelineBuilders = map[string]timelineBuilder{
	config.SceneKindGalaxy:   buildGalaxyTimeline,
	config.SceneKindApproach: buildApproachTimeline,
	config.SceneKindOrbit:    buildOrbitTimeline,
}

// 时间轴片段时长（秒）
// 时间轴由进度驱动，时长只决定片段之间的比例
const (
	galaxyFlyDuration    = 2.0
	galaxyNarrowDuration = 1.0
	approachDuration     = 1.0
	orbitDuration        = 1.0
)

// targetPose 返回场景的目标姿态，未配置视野时沿用起始视野
func targetPose(from types.CameraPose, entry config.SceneEntry) types.CameraPose {
	to := entry.Target.Pose()
	if to.FOV == 0 {
		to.FOV = from.FOV
	}
	return to
}

// buildGalaxyTimeline 银河：先飞向中心，再收窄视野
func buildGalaxyTimeline(camera *types.Camera, entry config.SceneEntry) *navigation.Tween {
	from := camera.Pose()
	to := targetPose(from, entry)

	return navigation.NewTween(
		navigation.Segment{
			Duration: galaxyFlyDuration,
			Ease:     navigation.EaseInOutQuad,
			Update: func(t float64) {
				camera.Position = types.LerpVec3(from.Position, to.Position, float32(t))
				camera.Orientation = types.SlerpQuat(from.Orientation, to.Orientation, float32(t))
			},
		},
		navigation.Segment{
			Duration: galaxyNarrowDuration,
			Update: func(t float64) {
				camera.FOV = types.LerpFloat(from.FOV, to.FOV, float32(t))
			},
		},
	)
}

// buildApproachTimeline 接近：位置、朝向、视野同时插值到目标姿态
func buildApproachTimeline(camera *types.Camera, entry config.SceneEntry) *navigation.Tween {
	from := camera.Pose()
	to := targetPose(from, entry)

	return navigation.NewTween(navigation.Segment{
		Duration: approachDuration,
		Ease:     utils.EaseOutCubic,
		Update: func(t float64) {
			camera.Apply(types.CameraPose{
				Position:    types.LerpVec3(from.Position, to.Position, float32(t)),
				Orientation: types.SlerpQuat(from.Orientation, to.Orientation, float32(t)),
				FOV:         types.LerpFloat(from.FOV, to.FOV, float32(t)),
			})
		},
	})
}

// buildOrbitTimeline 环绕：镜头绕 Center 在 XZ 平面旋转 OrbitDegrees 度，朝向同步旋转
func buildOrbitTimeline(camera *types.Camera, entry config.SceneEntry) *navigation.Tween {
	from := camera.Pose()
	center := mat32.NewVec3(entry.Center[0], entry.Center[1], entry.Center[2])
	total := float64(mat32.DegToRad(entry.OrbitDegrees))

	return navigation.NewTween(navigation.Segment{
		Duration: orbitDuration,
		Ease:     utils.EaseInOutCubic,
		Update: func(t float64) {
			angle := total * t
			camera.Position = rotateAroundY(from.Position, center, angle)

			spin := mat32.NewQuatAxisAngle(mat32.NewVec3(0, 1, 0), float32(angle))
			orientation := spin
			orientation.SetMul(from.Orientation)
			camera.Orientation = orientation
		},
	})
}

// rotateAroundY 把点 p 绕经过 center 的 Y 轴旋转 angle 弧度
func rotateAroundY(p, center mat32.Vec3, angle float64) mat32.Vec3 {
	offset := p.Sub(center)
	sin, cos := math.Sincos(angle)
	x := float64(offset.X)*cos + float64(offset.Z)*sin
	z := -float64(offset.X)*sin + float64(offset.Z)*cos
	return center.Add(mat32.NewVec3(float32(x), offset.Y, float32(z)))
}
