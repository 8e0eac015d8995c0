// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// SceneID 场景标识符
// 场景顺序在启动时由配置确定，运行期间不变
type SceneID string

// 默认场景序列（由外向内）
const (
	SceneGalaxy              SceneID = "galaxy"
	SceneSolarSystemApproach SceneID = "solarSystemApproach"
	SceneSolarSystemRotation SceneID = "solarSystemRotation"
	SceneEarthApproach       SceneID = "earthApproach"
	SceneEarth               SceneID = "earth"
	SceneContinent           SceneID = "continent"
	SceneCity                SceneID = "city"
	SceneDistrict            SceneID = "district"
	SceneRoom                SceneID = "room"
)

// DefaultSceneOrder 返回默认的场景顺序（新切片，调用方可以修改）
func DefaultSceneOrder() []SceneID {
	return []SceneID{
		SceneGalaxy,
		SceneSolarSystemApproach,
		SceneSolarSystemRotation,
		SceneEarthApproach,
		SceneEarth,
		SceneContinent,
		SceneCity,
		SceneDistrict,
		SceneRoom,
	}
}

// String 返回场景标识符的字符串表示
func (s SceneID) String() string {
	return string(s)
}

// ZoomState 缩放状态
// 既用于记录上一次场景切换的方向（zoomDirection），
// 也用于表示当前场景进度接近哪一端（sceneZoomed）
type ZoomState int

const (
	// ZoomNone 无状态（尚未切换过场景，或进度不在任何一端）
	ZoomNone ZoomState = iota
	// ZoomIn 放大（进入下一个场景的方向）
	ZoomIn
	// ZoomOut 缩小（返回上一个场景的方向）
	ZoomOut
)

// String 返回缩放状态的字符串表示
func (z ZoomState) String() string {
	switch z {
	case ZoomIn:
		return "in"
	case ZoomOut:
		return "out"
	default:
		return "none"
	}
}

// ZoomDirections 场景允许的缩放方向
// 例如最外层场景（银河）不允许继续缩小
type ZoomDirections struct {
	In  bool `yaml:"in"`
	Out bool `yaml:"out"`
}

// AllZoomDirections 返回两个方向都允许的权限
func AllZoomDirections() ZoomDirections {
	return ZoomDirections{In: true, Out: true}
}
