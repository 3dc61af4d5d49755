package overlay

import (
	"testing"

	"github.com/gonewx/fanfare/internal/payload"
)

func TestGenerateTriggersAuthenticHigh(t *testing.T) {
	triggers := GenerateTriggers("Authentic", 0.9, 0.5, nil)

	// 高置信度真实判定: 高档彩纸屑 + 3 发烟花
	if len(triggers) != 2 {
		t.Fatalf("Expected 2 triggers, got %d", len(triggers))
	}
	if triggers[0].Type != payload.EffectConfetti || triggers[0].Intensity != payload.IntensityHigh {
		t.Errorf("Expected high confetti first, got %+v", triggers[0])
	}
	if triggers[1].Type != payload.EffectFireworks || triggers[1].Count != 3 {
		t.Errorf("Expected 3 fireworks second, got %+v", triggers[1])
	}
}

func TestGenerateTriggersAuthenticModerate(t *testing.T) {
	triggers := GenerateTriggers("Authentic", 0.7, 0.5, nil)

	if len(triggers) != 1 {
		t.Fatalf("Expected 1 trigger, got %d", len(triggers))
	}
	if triggers[0].Type != payload.EffectBalloons || triggers[0].Count != 5 {
		t.Errorf("Expected 5 balloons, got %+v", triggers[0])
	}
}

func TestGenerateTriggersAuthenticLowConfidence(t *testing.T) {
	// 置信度不过中档线: 不庆祝
	if triggers := GenerateTriggers("Authentic", 0.5, 0.5, nil); len(triggers) != 0 {
		t.Errorf("Expected no triggers at low confidence, got %d", len(triggers))
	}
}

func TestGenerateTriggersPlausible(t *testing.T) {
	triggers := GenerateTriggers("Plausible", 0.5, 0.5, nil)

	if len(triggers) != 1 {
		t.Fatalf("Expected 1 trigger, got %d", len(triggers))
	}
	if triggers[0].Type != payload.EffectBalloons || triggers[0].Count != 3 {
		t.Errorf("Expected 3 balloons, got %+v", triggers[0])
	}
}

func TestGenerateTriggersHallucination(t *testing.T) {
	triggers := GenerateTriggers("Hallucination", 0.8, 0.5, nil)

	if len(triggers) != 2 {
		t.Fatalf("Expected 2 triggers, got %d", len(triggers))
	}
	if triggers[0].Type != payload.EffectConfetti || triggers[0].Intensity != payload.IntensityMedium {
		t.Errorf("Expected medium confetti, got %+v", triggers[0])
	}

	// 置信度不足时不触发警示效果
	if triggers := GenerateTriggers("Hallucination", 0.5, 0.5, nil); len(triggers) != 0 {
		t.Errorf("Expected no triggers below threshold, got %d", len(triggers))
	}
}

func TestGenerateTriggersEchoSenseBonus(t *testing.T) {
	// 奖励触发独立于判定分支, 附加在末尾
	triggers := GenerateTriggers("Plausible", 0.5, 0.95, nil)
	if len(triggers) != 2 {
		t.Fatalf("Expected 2 triggers (theme + bonus), got %d", len(triggers))
	}
	last := triggers[len(triggers)-1]
	if last.Type != payload.EffectSparkles {
		t.Errorf("Expected sparkles bonus last, got %+v", last)
	}

	// 没有匹配主题也能单独产出奖励触发
	triggers = GenerateTriggers("Unknown", 0.0, 0.95, nil)
	if len(triggers) != 1 || triggers[0].Type != payload.EffectSparkles {
		t.Errorf("Expected bonus-only trigger list, got %+v", triggers)
	}
}

func TestGenerateTriggersVerdictCaseInsensitive(t *testing.T) {
	if triggers := GenerateTriggers("authentic", 0.9, 0.5, nil); len(triggers) != 2 {
		t.Errorf("Expected lowercase verdict to match, got %d triggers", len(triggers))
	}
}

func TestFilterTriggersDropsDisabledKinds(t *testing.T) {
	settings := DefaultExcitementSettings()
	settings.FireworksEnabled = false

	triggers := []payload.TriggerSpec{
		{Type: payload.EffectConfetti, Intensity: payload.IntensityHigh},
		{Type: payload.EffectFireworks, Count: 3},
	}

	filtered := FilterTriggers(triggers, settings)
	if len(filtered) != 1 {
		t.Fatalf("Expected fireworks dropped, got %d triggers", len(filtered))
	}
	if filtered[0].Type != payload.EffectConfetti {
		t.Errorf("Expected confetti to survive, got %+v", filtered[0])
	}
}

func TestFilterTriggersStripsMessagesWhenDisabled(t *testing.T) {
	settings := DefaultExcitementSettings()
	settings.MessagesEnabled = false

	filtered := FilterTriggers([]payload.TriggerSpec{
		{Type: payload.EffectConfetti, Intensity: payload.IntensityLow, Message: "hi"},
	}, settings)

	if len(filtered) != 1 {
		t.Fatalf("Expected trigger kept, got %d", len(filtered))
	}
	if filtered[0].Message != "" {
		t.Errorf("Expected message stripped, got %q", filtered[0].Message)
	}
}

func TestFilterTriggersMasterSwitch(t *testing.T) {
	settings := DefaultExcitementSettings()
	settings.Enabled = false

	filtered := FilterTriggers([]payload.TriggerSpec{
		{Type: payload.EffectConfetti, Intensity: payload.IntensityLow},
		{Type: payload.EffectBalloons, Count: 2},
	}, settings)

	if len(filtered) != 0 {
		t.Errorf("Expected all triggers dropped with master switch off, got %d", len(filtered))
	}
}

func TestFilterTriggersNilSettingsPassThrough(t *testing.T) {
	triggers := []payload.TriggerSpec{
		{Type: payload.EffectFireworks, Count: 1, Message: "keep"},
	}
	filtered := FilterTriggers(triggers, nil)
	if len(filtered) != 1 || filtered[0].Message != "keep" {
		t.Errorf("Expected pass-through with nil settings, got %+v", filtered)
	}
}
