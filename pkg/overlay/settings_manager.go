package overlay

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ExcitementSettings 渲染层的全局开关设置
// 注意：这些设置是全局的，不绑定到特定用户
type ExcitementSettings struct {
	// Enabled 总开关, 关闭时 Trigger 调用为空操作
	Enabled bool `yaml:"enabled"`

	// 各效果类型的独立开关
	ConfettiEnabled  bool `yaml:"confettiEnabled"`
	BalloonsEnabled  bool `yaml:"balloonsEnabled"`
	FireworksEnabled bool `yaml:"fireworksEnabled"`
	MessagesEnabled  bool `yaml:"messagesEnabled"`
}

// DefaultExcitementSettings 返回默认设置(全部开启)
func DefaultExcitementSettings() *ExcitementSettings {
	return &ExcitementSettings{
		Enabled:          true,
		ConfettiEnabled:  true,
		BalloonsEnabled:  true,
		FireworksEnabled: true,
		MessagesEnabled:  true,
	}
}

// AllowsKind 返回指定效果类型是否被当前设置放行
func (s *ExcitementSettings) AllowsKind(kind string) bool {
	if !s.Enabled {
		return false
	}
	switch kind {
	case "confetti", "sparkles":
		return s.ConfettiEnabled
	case "balloons":
		return s.BalloonsEnabled
	case "fireworks":
		return s.FireworksEnabled
	}
	return false
}

// SettingsManager 设置管理器
// 负责渲染层设置的加载、保存和内存管理
//
// 加载顺序: 默认值 → 持久化存储 → 环境变量覆盖。
// 环境变量覆盖只作用于内存, Save 不会把它写回存储。
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ExcitementSettings
}

// 存储路径常量
const (
	settingsObject   = "excitement"
	settingsProperty = "settings"
)

// 环境变量覆盖
const (
	envEnabled   = "UI_EXCITEMENT_ENABLED"
	envConfetti  = "UI_EXCITEMENT_CONFETTI"
	envBalloons  = "UI_EXCITEMENT_BALLOONS"
	envFireworks = "UI_EXCITEMENT_FIREWORKS"
	envMessages  = "UI_EXCITEMENT_MESSAGES"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultExcitementSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	sm.applyEnvOverrides()
	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultExcitementSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultExcitementSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultExcitementSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded ExcitementSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultExcitementSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
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
	return nil
}

// applyEnvOverrides 应用环境变量覆盖(仅内存, 不持久化)
func (sm *SettingsManager) applyEnvOverrides() {
	overrideBool(envEnabled, &sm.settings.Enabled)
	overrideBool(envConfetti, &sm.settings.ConfettiEnabled)
	overrideBool(envBalloons, &sm.settings.BalloonsEnabled)
	overrideBool(envFireworks, &sm.settings.FireworksEnabled)
	overrideBool(envMessages, &sm.settings.MessagesEnabled)
}

func overrideBool(name string, target *bool) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("[SettingsManager] Warning: invalid value %q for %s, ignored", raw, name)
		return
	}
	*target = v
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *ExcitementSettings {
	return sm.settings
}

// SetEnabled 设置总开关
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetEnabled(enabled bool) {
	sm.settings.Enabled = enabled
}

// SetEffectEnabled 设置单个效果类型的开关
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetEffectEnabled(kind string, enabled bool) {
	switch kind {
	case "confetti", "sparkles":
		sm.settings.ConfettiEnabled = enabled
	case "balloons":
		sm.settings.BalloonsEnabled = enabled
	case "fireworks":
		sm.settings.FireworksEnabled = enabled
	}
}

// SetMessagesEnabled 设置文字消息开关
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetMessagesEnabled(enabled bool) {
	sm.settings.MessagesEnabled = enabled
}
