package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 导航动画默认参数
// 数值为经验值，可通过 data/navigation.yaml 覆盖
const (
	// DefaultFriction 速度衰减系数（每帧乘一次，< 1 才会衰减）
	DefaultFriction = 0.85

	// DefaultAcceleration 弹簧刚度（目标差值转换为速度的比例）
	DefaultAcceleration = 0.08

	// DefaultWheelSensitivity 滚轮灵敏度（单次滚动的目标进度步长 = 灵敏度 / 10）
	DefaultWheelSensitivity = 0.5

	// DefaultTouchSensitivity 触摸灵敏度
	DefaultTouchSensitivity = 0.3

	// VelocityThreshold 速度下限
	// 速度低于该值时强制保持该速度，避免进度停在 0.97 之类的位置
	VelocityThreshold = 0.0005

	// CompletionSensitivity 完成判定的容差带宽
	CompletionSensitivity = 0.01

	// ZoomedInSensitivityMultiplier "已放大"提示带宽相对完成带宽的倍数（< 1 表示更窄）
	ZoomedInSensitivityMultiplier = 0.5

	// WheelLineDeltaMultiplier 滚轮按行滚动时的换算倍数
	WheelLineDeltaMultiplier = 25.0

	// DefaultMinSwipeDistance 触发手势的最小滑动距离（像素）
	DefaultMinSwipeDistance = 10.0
)

// NavigationConfig 导航动画配置
//
// 配置文件位置: data/navigation.yaml
type NavigationConfig struct {
	// Friction 速度衰减系数
	Friction float64 `yaml:"friction"`

	// Acceleration 弹簧刚度
	Acceleration float64 `yaml:"acceleration"`

	// WheelSensitivity 滚轮灵敏度
	WheelSensitivity float64 `yaml:"wheelSensitivity"`

	// TouchSensitivity 触摸灵敏度
	TouchSensitivity float64 `yaml:"touchSensitivity"`

	// VelocityThreshold 速度下限
	VelocityThreshold float64 `yaml:"velocityThreshold"`

	// CompletionSensitivity 完成判定带宽
	CompletionSensitivity float64 `yaml:"completionSensitivity"`

	// ZoomedInSensitivityMultiplier "已放大"带宽倍数
	ZoomedInSensitivityMultiplier float64 `yaml:"zoomedInSensitivityMultiplier"`

	// MinSwipeDistance 初始手势的最小滑动距离（像素）
	MinSwipeDistance float64 `yaml:"minSwipeDistance"`
}

// DefaultNavigationConfig 返回默认导航配置
func DefaultNavigationConfig() NavigationConfig {
	return NavigationConfig{
		Friction:                      DefaultFriction,
		Acceleration:                  DefaultAcceleration,
		WheelSensitivity:              DefaultWheelSensitivity,
		TouchSensitivity:              DefaultTouchSensitivity,
		VelocityThreshold:             VelocityThreshold,
		CompletionSensitivity:         CompletionSensitivity,
		ZoomedInSensitivityMultiplier: ZoomedInSensitivityMultiplier,
		MinSwipeDistance:              DefaultMinSwipeDistance,
	}
}

// LoadNavigationConfig 从文件加载导航配置
//
// 参数:
//   - path: 配置文件路径（如 "data/navigation.yaml"）
//
// 返回:
//   - *NavigationConfig: 加载成功后的配置（缺省字段使用默认值）
//   - error: 读取、解析或验证失败时返回错误
func LoadNavigationConfig(path string) (*NavigationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read navigation config: %w", err)
	}
	return ParseNavigationConfig(data)
}

// ParseNavigationConfig 解析 YAML 格式的导航配置
// 文件中未出现的字段保留默认值
func ParseNavigationConfig(data []byte) (*NavigationConfig, error) {
	config := DefaultNavigationConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse navigation config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid navigation config: %w", err)
	}

	return &config, nil
}

// Validate 验证配置的有效性
func (c *NavigationConfig) Validate() error {
	if c.Friction <= 0 || c.Friction > 1 {
		return fmt.Errorf("friction must be in (0, 1], got %v", c.Friction)
	}
	if c.Acceleration <= 0 || c.Acceleration > 1 {
		return fmt.Errorf("acceleration must be in (0, 1], got %v", c.Acceleration)
	}
	if c.WheelSensitivity <= 0 {
		return fmt.Errorf("wheelSensitivity must be positive, got %v", c.WheelSensitivity)
	}
	if c.TouchSensitivity <= 0 {
		return fmt.Errorf("touchSensitivity must be positive, got %v", c.TouchSensitivity)
	}
	if c.VelocityThreshold < 0 {
		return fmt.Errorf("velocityThreshold must not be negative, got %v", c.VelocityThreshold)
	}
	if c.CompletionSensitivity <= 0 || c.CompletionSensitivity >= 0.5 {
		return fmt.Errorf("completionSensitivity must be in (0, 0.5), got %v", c.CompletionSensitivity)
	}
	if c.ZoomedInSensitivityMultiplier <= 0 {
		return fmt.Errorf("zoomedInSensitivityMultiplier must be positive, got %v", c.ZoomedInSensitivityMultiplier)
	}
	if c.MinSwipeDistance < 0 {
		return fmt.Errorf("minSwipeDistance must not be negative, got %v", c.MinSwipeDistance)
	}
	return nil
}

// ZoomedInThreshold 返回判定为"已放大"的进度下限
func (c *NavigationConfig) ZoomedInThreshold() float64 {
	return 1 - c.CompletionSensitivity*c.ZoomedInSensitivityMultiplier
}
