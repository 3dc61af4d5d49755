package overlay

import (
	"strings"

	"github.com/gonewx/fanfare/internal/payload"
	"github.com/gonewx/fanfare/pkg/config"
)

// GenerateTriggers maps a decision-engine verdict to the trigger list of
// the matching built-in theme. The overlay normally receives ready-made
// triggers inside the payload; this helper exists for hosts that only
// have the verdict fields and want the default celebration behavior.
//
// 判定分支:
//   - Authentic 且置信度 > 0.8: 高档彩纸屑 + 3 发烟花
//   - Authentic 且置信度 > 0.6: 5 只绿气球
//   - Plausible: 3 只金气球
//   - Hallucination 且置信度 > 0.7: 中档警示彩纸屑 + 2 发烟花
//
// 此外 echoSense > 0.9 时在末尾附加一个 sparkles 奖励触发,
// 与判定分支相互独立。
func GenerateTriggers(verdict string, confidence, echoSense float64, themes map[config.ThemeKey][]config.TriggerTemplate) []payload.TriggerSpec {
	if themes == nil {
		themes = config.DefaultThemes
	}

	var key config.ThemeKey
	switch strings.ToLower(verdict) {
	case "authentic":
		if confidence > config.AuthenticHighConfidence {
			key = config.ThemeAuthenticHigh
		} else if confidence > config.AuthenticModerateConfidence {
			key = config.ThemeAuthenticModerate
		}
	case "plausible":
		key = config.ThemePlausible
	case "hallucination":
		if confidence > config.HallucinationHighConfidence {
			key = config.ThemeHallucinationHigh
		}
	}

	var triggers []payload.TriggerSpec
	if key != "" {
		for _, tpl := range themes[key] {
			triggers = append(triggers, tpl.ToSpec())
		}
	}

	// echo_sense 奖励独立于判定分支
	if echoSense > config.EchoSenseBonusThreshold {
		for _, tpl := range themes[config.ThemeEchoSenseBonus] {
			triggers = append(triggers, tpl.ToSpec())
		}
	}

	return triggers
}

// FilterTriggers applies per-effect settings to a trigger list: disabled
// effect kinds are dropped entirely, and messages are stripped when the
// message overlay is turned off. A nil settings value passes everything
// through unchanged.
func FilterTriggers(triggers []payload.TriggerSpec, settings *ExcitementSettings) []payload.TriggerSpec {
	if settings == nil {
		return triggers
	}

	filtered := make([]payload.TriggerSpec, 0, len(triggers))
	for _, spec := range triggers {
		if !settings.AllowsKind(string(spec.Type)) {
			continue
		}
		if !settings.MessagesEnabled {
			spec.Message = ""
		}
		filtered = append(filtered, spec)
	}
	return filtered
}
