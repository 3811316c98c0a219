package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// DemoSettings 用户可调整并持久化的设置
type DemoSettings struct {
	// 音频设置
	AmbientVolume  float64 `yaml:"ambientVolume"`  // 环境音音量 0.0 ~ 1.0
	AmbientEnabled bool    `yaml:"ambientEnabled"` // 环境音开关

	// 过渡设置
	EffectsEnabled     bool    `yaml:"effectsEnabled"`     // 是否生成过渡粒子特效
	TransitionDuration float64 `yaml:"transitionDuration"` // 过渡时长覆盖(秒)，0 表示使用配置文件

	// 显示设置
	ShowDebugText bool `yaml:"showDebugText"` // 是否在屏幕上显示诊断文本
}

// DefaultSettings 返回默认设置
func DefaultSettings() *DemoSettings {
	return &DemoSettings{
		AmbientVolume:  0.5,
		AmbientEnabled: true,
		EffectsEnabled: true,
		ShowDebugText:  true,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *DemoSettings  // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "demo"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 目前总是返回 nil，加载失败只记录警告
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

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或数据不存在，使用默认设置
func (sm *SettingsManager) Load() error {
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

	// 在默认值基础上反序列化，旧版本缺失的字段保持默认
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.AmbientVolume = clampVolume(loaded.AmbientVolume)
	if loaded.TransitionDuration < 0 {
		loaded.TransitionDuration = 0
	}

	sm.settings = loaded
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
func (sm *SettingsManager) GetSettings() *DemoSettings {
	return sm.settings
}

// SetAmbientVolume 设置环境音音量，限制在 0.0 ~ 1.0
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetAmbientVolume(volume float64) {
	sm.settings.AmbientVolume = clampVolume(volume)
}

// SetAmbientEnabled 设置环境音开关
func (sm *SettingsManager) SetAmbientEnabled(enabled bool) {
	sm.settings.AmbientEnabled = enabled
}

// SetEffectsEnabled 设置过渡特效开关
func (sm *SettingsManager) SetEffectsEnabled(enabled bool) {
	sm.settings.EffectsEnabled = enabled
}

// SetTransitionDuration 设置过渡时长覆盖，负数视为 0（使用配置文件）
func (sm *SettingsManager) SetTransitionDuration(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	sm.settings.TransitionDuration = seconds
}

// SetShowDebugText 设置诊断文本显示
func (sm *SettingsManager) SetShowDebugText(show bool) {
	sm.settings.ShowDebugText = show
}

// ResolveTransitionDuration 返回实际使用的过渡时长
// 设置中有覆盖值时优先使用，否则使用配置值
func (sm *SettingsManager) ResolveTransitionDuration(configured float64) float64 {
	if sm.settings.TransitionDuration > 0 {
		return sm.settings.TransitionDuration
	}
	return configured
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
