// Package payload provides data structures and parsing functionality for
// excitement trigger payloads produced by the decision engine.
//
// The decision engine evaluates a verdict elsewhere and hands this layer a
// JSON document describing which visual effects to play. This package only
// decodes and normalizes that document; it never inspects verdict text.
package payload

import (
	"encoding/json"
	"fmt"
)

// EffectKind 标识一种视觉效果类型
//
// 这是针对四种效果的封闭枚举。载荷中的字符串 kind 在进入调度前
// 统一转换为 EffectKind, 未知值不会产生错误, 由调度器静默丢弃。
type EffectKind string

const (
	// EffectConfetti 彩纸屑: 从顶部落下的旋转方块
	EffectConfetti EffectKind = "confetti"
	// EffectBalloons 气球: 从底部升起的圆形+吊绳
	EffectBalloons EffectKind = "balloons"
	// EffectFireworks 烟花: 两阶段(火箭上升 → 火花爆裂)
	EffectFireworks EffectKind = "fireworks"
	// EffectSparkles 闪光: confetti 的别名, 强度固定为 low
	EffectSparkles EffectKind = "sparkles"
)

// Intensity 表示 confetti/sparkles 效果的强度档位
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// 强度档位对应的粒子数量
const (
	particleCountLow    = 50
	particleCountMedium = 100
	particleCountHigh   = 150
)

// ParticleCount 返回该强度档位生成的粒子数量
// 无法识别的强度值按最低档处理, 不报错
func (i Intensity) ParticleCount() int {
	switch i {
	case IntensityLow:
		return particleCountLow
	case IntensityMedium:
		return particleCountMedium
	case IntensityHigh:
		return particleCountHigh
	default:
		return particleCountLow
	}
}

// TriggerSpec 描述一次效果实例的全部参数
//
// 字段按效果类型选用: Intensity 用于 confetti/sparkles,
// Count 用于 balloons/fireworks。Duration 单位为毫秒。
type TriggerSpec struct {
	Type      EffectKind `json:"type"`
	Colors    []string   `json:"colors"`
	Intensity Intensity  `json:"intensity,omitempty"`
	Count     int        `json:"count,omitempty"`
	Duration  float64    `json:"duration,omitempty"`
	Message   string     `json:"message"`
}

// ExcitementPayload 是决策引擎下发的完整触发载荷
//
// ExcitementEnabled 为 false 时整个载荷是空操作。
// Triggers 的顺序决定调度时的错峰顺序, 必须保留。
type ExcitementPayload struct {
	ExcitementEnabled bool          `json:"excitement_enabled"`
	Verdict           string        `json:"verdict,omitempty"`
	Confidence        float64       `json:"confidence,omitempty"`
	EchoSense         float64       `json:"echo_sense,omitempty"`
	Triggers          []TriggerSpec `json:"triggers"`
}

// Decode 解析决策引擎下发的 JSON 载荷
func Decode(data []byte) (*ExcitementPayload, error) {
	var p ExcitementPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode excitement payload: %w", err)
	}
	return &p, nil
}

// Normalized 返回可路由的规格副本
//
// sparkles → confetti 的别名映射在这里显式完成: 强度强制为 low,
// 其余字段原样保留。返回值 ok 为 false 表示 kind 无法识别,
// 调度器应静默丢弃该触发。
func (s TriggerSpec) Normalized() (TriggerSpec, bool) {
	switch s.Type {
	case EffectConfetti, EffectBalloons, EffectFireworks:
		return s, true
	case EffectSparkles:
		s.Type = EffectConfetti
		s.Intensity = IntensityLow
		return s, true
	default:
		return s, false
	}
}

// 各效果类型的默认显示时长(毫秒), 载荷未提供 Duration 时使用
const (
	defaultConfettiDuration  = 3000
	defaultBalloonsDuration  = 2500
	defaultFireworksDuration = 3000
)

// DurationOrDefault 返回 Duration, 未设置时按类型取默认值
func (s TriggerSpec) DurationOrDefault() float64 {
	if s.Duration > 0 {
		return s.Duration
	}
	switch s.Type {
	case EffectBalloons:
		return defaultBalloonsDuration
	case EffectFireworks:
		return defaultFireworksDuration
	default:
		return defaultConfettiDuration
	}
}
