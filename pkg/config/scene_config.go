package config

import (
	"fmt"
	"os"

	"github.com/decker502/zoomnav/pkg/types"
	"github.com/goki/mat32"
	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

// 场景动画类型
const (
	// SceneKindGalaxy 银河：镜头飞向中心恒星，靠近时收窄视野
	SceneKindGalaxy = "galaxy"
	// SceneKindApproach 接近：镜头从当前位置平移/旋转到目标姿态
	SceneKindApproach = "approach"
	// SceneKindOrbit 环绕：镜头绕中心点在 XZ 平面旋转
	SceneKindOrbit = "orbit"
)

// SceneConfig 场景序列配置
//
// 配置文件位置: data/scenes.yaml
//
// 场景顺序即文件中出现的顺序，启动后不再改变。
type SceneConfig struct {
	// InitialCamera 启动时的摄像机姿态
	InitialCamera PoseConfig `yaml:"initialCamera"`

	// Scenes 有序场景列表（由外向内）
	Scenes []SceneEntry `yaml:"scenes"`
}

// SceneEntry 单个场景的配置
type SceneEntry struct {
	// ID 场景标识符，加载时统一转换为 lowerCamelCase（如 solar_system_approach → solarSystemApproach）
	ID types.SceneID `yaml:"id"`

	// Kind 场景动画类型：galaxy / approach / orbit
	Kind string `yaml:"kind"`

	// ZoomDirections 允许的缩放方向，缺省时两个方向都允许
	ZoomDirections *types.ZoomDirections `yaml:"zoomDirections,omitempty"`

	// Target 动画结束时的摄像机姿态（galaxy / approach 使用）
	Target PoseConfig `yaml:"target"`

	// Center 环绕中心（orbit 使用）
	Center [3]float32 `yaml:"center"`

	// OrbitDegrees 环绕角度（orbit 使用，单位：度）
	OrbitDegrees float32 `yaml:"orbitDegrees"`

	// Label 场景显示名称（可选，UI 使用）
	Label string `yaml:"label"`
}

// PoseConfig YAML 中的摄像机姿态
type PoseConfig struct {
	// Position 位置 [x, y, z]
	Position [3]float32 `yaml:"position"`

	// Yaw 绕 Y 轴的旋转角度（度）
	Yaw float32 `yaml:"yaw"`

	// FOV 视野角度（度），0 表示保持不变
	FOV float32 `yaml:"fov"`
}

// Pose 把配置转换为摄像机姿态
func (p PoseConfig) Pose() types.CameraPose {
	return types.CameraPose{
		Position:    mat32.NewVec3(p.Position[0], p.Position[1], p.Position[2]),
		Orientation: mat32.NewQuatAxisAngle(mat32.NewVec3(0, 1, 0), mat32.DegToRad(p.Yaw)),
		FOV:         p.FOV,
	}
}

// LoadSceneConfig 从文件加载场景序列配置
//
// 参数:
//   - path: 配置文件路径（如 "data/scenes.yaml"）
//
// 返回:
//   - *SceneConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}
	return ParseSceneConfig(data)
}

// ParseSceneConfig 解析 YAML 格式的场景序列配置
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	var config SceneConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}

	for i := range config.Scenes {
		config.Scenes[i].ID = NormalizeSceneID(string(config.Scenes[i].ID))
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}

	return &config, nil
}

// NormalizeSceneID 把任意命名风格的场景名转换为 lowerCamelCase
func NormalizeSceneID(name string) types.SceneID {
	return types.SceneID(strcase.ToLowerCamel(name))
}

// Validate 验证场景配置
//
// 检查：
//   - 至少一个场景
//   - 场景 ID 非空且不重复
//   - 动画类型合法
func (c *SceneConfig) Validate() error {
	if len(c.Scenes) == 0 {
		return fmt.Errorf("scene list is empty")
	}

	seen := make(map[types.SceneID]bool, len(c.Scenes))
	for i, scene := range c.Scenes {
		if scene.ID == "" {
			return fmt.Errorf("scene #%d has no id", i)
		}
		if seen[scene.ID] {
			return fmt.Errorf("duplicate scene id '%s'", scene.ID)
		}
		seen[scene.ID] = true

		switch scene.Kind {
		case SceneKindGalaxy, SceneKindApproach, SceneKindOrbit:
		default:
			return fmt.Errorf("scene '%s' has unknown kind '%s'", scene.ID, scene.Kind)
		}
	}

	return nil
}

// Order 返回场景顺序
func (c *SceneConfig) Order() []types.SceneID {
	order := make([]types.SceneID, len(c.Scenes))
	for i, scene := range c.Scenes {
		order[i] = scene.ID
	}
	return order
}

// Find 根据 ID 查找场景配置
func (c *SceneConfig) Find(id types.SceneID) (SceneEntry, bool) {
	for _, scene := range c.Scenes {
		if scene.ID == id {
			return scene, true
		}
	}
	return SceneEntry{}, false
}

// Directions 返回场景允许的缩放方向（缺省为两个方向都允许）
func (e SceneEntry) Directions() types.ZoomDirections {
	if e.ZoomDirections == nil {
		return types.AllZoomDirections()
	}
	return *e.ZoomDirections
}

// DisplayName 返回场景显示名称
func (e SceneEntry) DisplayName() string {
	if e.Label != "" {
		return e.Label
	}
	return strcase.ToDelimited(string(e.ID), ' ')
}
