package game

import (
	"fmt"
	"log"

	"github.com/decker502/zoomnav/pkg/config"
	"github.com/decker502/zoomnav/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// NavigationSettings 用户导航设置
// 灵敏度为 0 表示使用配置文件中的默认值
type NavigationSettings struct {
	// 输入设置
	WheelSensitivity float64 `yaml:"wheelSensitivity"` // 滚轮灵敏度覆盖值
	TouchSensitivity float64 `yaml:"touchSensitivity"` // 触摸灵敏度覆盖值
	InvertScroll     bool    `yaml:"invertScroll"`     // 反转滚动方向

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏窗口
}

// DefaultSettings 返回默认设置
func DefaultSettings() *NavigationSettings {
	return &NavigationSettings{
		WheelSensitivity: 0,
		TouchSensitivity: 0,
		InvertScroll:     false,
		Fullscreen:       false,
	}
}

// SettingsManager 设置管理器
// 负责用户设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager      // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *NavigationSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "navigation"
)

// 灵敏度覆盖值的上限
const maxSensitivity = 5.0

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方，加载失败不是致命错误
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// OpenGdata 打开 gdata 存储，失败时返回 nil（降级模式）
func OpenGdata(appName string) *gdata.Manager {
	if err := utils.EnsureStorageDir(appName); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[SettingsManager] Warning: gdata unavailable: %v (settings will not persist)", err)
		return nil
	}
	return manager
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loadedSettings NavigationSettings
	if err := yaml.Unmarshal(data, &loadedSettings); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	loadedSettings.WheelSensitivity = clampSensitivity(loadedSettings.WheelSensitivity)
	loadedSettings.TouchSensitivity = clampSensitivity(loadedSettings.TouchSensitivity)
	sm.settings = &loadedSettings
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *NavigationSettings {
	return sm.settings
}

// SetWheelSensitivity 设置滚轮灵敏度（0 表示使用默认值）
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetWheelSensitivity(value float64) {
	sm.settings.WheelSensitivity = clampSensitivity(value)
}

// SetTouchSensitivity 设置触摸灵敏度（0 表示使用默认值）
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetTouchSensitivity(value float64) {
	sm.settings.TouchSensitivity = clampSensitivity(value)
}

// SetInvertScroll 设置是否反转滚动方向
func (sm *SettingsManager) SetInvertScroll(invert bool) {
	sm.settings.InvertScroll = invert
}

// SetFullscreen 设置启动时全屏
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// ApplyTo 把用户覆盖值应用到导航配置上，返回新配置
func (sm *SettingsManager) ApplyTo(cfg config.NavigationConfig) config.NavigationConfig {
	if sm.settings.WheelSensitivity > 0 {
		cfg.WheelSensitivity = sm.settings.WheelSensitivity
	}
	if sm.settings.TouchSensitivity > 0 {
		cfg.TouchSensitivity = sm.settings.TouchSensitivity
	}
	return cfg
}

// clampSensitivity 将灵敏度限制在 0 ~ maxSensitivity 范围内
func clampSensitivity(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > maxSensitivity {
		return maxSensitivity
	}
	return value
}
