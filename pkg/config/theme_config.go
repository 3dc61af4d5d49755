package config

import (
	"fmt"
	"os"

	"github.com/gonewx/fanfare/internal/payload"
	"gopkg.in/yaml.v3"
)

// 判定结果 → 视觉主题配置
//
// 决策引擎只产出 verdict/confidence/echo_sense 三个值, 由哪些效果、
// 什么颜色、什么文案来庆祝是本层的事。默认主题内置在代码里,
// 宿主可以通过 YAML 文件整体覆盖。

// ThemeKey 标识一组判定条件对应的主题
type ThemeKey string

const (
	// ThemeAuthenticHigh 高置信度真实判定(庆祝)
	ThemeAuthenticHigh ThemeKey = "authentic_high"
	// ThemeAuthenticModerate 中等置信度真实判定
	ThemeAuthenticModerate ThemeKey = "authentic_moderate"
	// ThemePlausible 中性判定(克制的庆祝)
	ThemePlausible ThemeKey = "plausible"
	// ThemeHallucinationHigh 高置信度检出(警示性效果)
	ThemeHallucinationHigh ThemeKey = "hallucination_high"
	// ThemeEchoSenseBonus 超高 echo_sense 分数的附加效果
	ThemeEchoSenseBonus ThemeKey = "echo_sense_bonus"
)

// 判定分支的置信度阈值
const (
	// AuthenticHighConfidence Authentic 判定进入高庆祝档的置信度下限
	AuthenticHighConfidence = 0.8
	// AuthenticModerateConfidence Authentic 判定进入中档的置信度下限
	AuthenticModerateConfidence = 0.6
	// HallucinationHighConfidence Hallucination 判定触发警示效果的置信度下限
	HallucinationHighConfidence = 0.7
	// EchoSenseBonusThreshold 触发附加闪光效果的 echo_sense 下限
	EchoSenseBonusThreshold = 0.9
)

// TriggerTemplate 是主题中单个触发的模板, 字段与 payload.TriggerSpec 对应
type TriggerTemplate struct {
	Type      string   `yaml:"type"`
	Colors    []string `yaml:"colors"`
	Intensity string   `yaml:"intensity,omitempty"`
	Count     int      `yaml:"count,omitempty"`
	Duration  float64  `yaml:"duration,omitempty"`
	Message   string   `yaml:"message"`
}

// ToSpec 将模板转换为触发规格
func (t TriggerTemplate) ToSpec() payload.TriggerSpec {
	return payload.TriggerSpec{
		Type:      payload.EffectKind(t.Type),
		Colors:    t.Colors,
		Intensity: payload.Intensity(t.Intensity),
		Count:     t.Count,
		Duration:  t.Duration,
		Message:   t.Message,
	}
}

// ThemeConfigFile 定义主题配置文件结构
type ThemeConfigFile struct {
	Version string                        `yaml:"version"`
	Themes  map[ThemeKey][]TriggerTemplate `yaml:"themes"`
}

// DefaultThemes 内置主题表, 颜色与文案沿用决策引擎的既定视觉语言
var DefaultThemes = map[ThemeKey][]TriggerTemplate{
	ThemeAuthenticHigh: {
		{
			Type:      "confetti",
			Intensity: "high",
			Colors:    []string{"#00FF00", "#00CC00", "#32CD32", "#90EE90"},
			Duration:  3000,
			Message:   "Authentic Content Verified!",
		},
		{
			Type:    "fireworks",
			Colors:  []string{"gold", "green", "white"},
			Count:   3,
			Message: "Authenticity Confirmed!",
		},
	},
	ThemeAuthenticModerate: {
		{
			Type:     "balloons",
			Count:    5,
			Colors:   []string{"#90EE90", "#98FB98", "#00FF7F"},
			Duration: 2500,
			Message:  "Content Appears Authentic",
		},
	},
	ThemePlausible: {
		{
			Type:     "balloons",
			Count:    3,
			Colors:   []string{"#FFD700", "#FFA500", "#FFFF00"},
			Duration: 2000,
			Message:  "Plausible Content Detected",
		},
	},
	ThemeHallucinationHigh: {
		{
			Type:      "confetti",
			Intensity: "medium",
			Colors:    []string{"#FF4500", "#FF6347", "#FFA500"},
			Duration:  2000,
			Message:   "AI Generation Detected!",
		},
		{
			Type:    "fireworks",
			Colors:  []string{"red", "orange", "yellow"},
			Count:   2,
			Message: "Potential AI Content Found!",
		},
	},
	ThemeEchoSenseBonus: {
		{
			Type:      "sparkles",
			Intensity: "high",
			Colors:    []string{"#FFD700", "#FFFFFF", "#87CEEB"},
			Duration:  1500,
			Message:   "Exceptional EchoSense Score!",
		},
	},
}

// LoadThemeConfig 从 YAML 文件加载主题表, 覆盖内置默认值
//
// 文件中未出现的主题保留默认值, 出现的主题整体替换。
// 文件不存在或解析失败时返回错误, 调用方可以忽略并继续使用默认主题。
func LoadThemeConfig(path string) (map[ThemeKey][]TriggerTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme config '%s': %w", path, err)
	}

	config := &ThemeConfigFile{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse theme config '%s': %w", path, err)
	}

	// 从默认主题出发, 只覆盖文件中定义的条目
	themes := make(map[ThemeKey][]TriggerTemplate, len(DefaultThemes))
	for key, triggers := range DefaultThemes {
		themes[key] = triggers
	}
	for key, triggers := range config.Themes {
		themes[key] = triggers
	}

	return themes, nil
}
