package payload

import (
	"testing"
)

// TestDecode_FullPayload tests decoding a complete decision engine payload
func TestDecode_FullPayload(t *testing.T) {
	data := []byte(`{
		"excitement_enabled": true,
		"verdict": "Authentic",
		"confidence": 0.92,
		"echo_sense": 0.95,
		"triggers": [
			{"type": "confetti", "intensity": "high", "colors": ["#00FF00", "#32CD32"], "duration": 3000, "message": "Verified"},
			{"type": "fireworks", "colors": ["gold", "green", "white"], "count": 3, "message": "Confirmed"}
		]
	}`)

	p, err := Decode(data)
	if err != nil {
		t.Fatalf("Failed to decode payload: %v", err)
	}

	if !p.ExcitementEnabled {
		t.Error("ExcitementEnabled should be true")
	}
	if p.Verdict != "Authentic" {
		t.Errorf("Expected verdict 'Authentic', got '%s'", p.Verdict)
	}
	if len(p.Triggers) != 2 {
		t.Fatalf("Expected 2 triggers, got %d", len(p.Triggers))
	}

	// 触发顺序必须与载荷一致
	if p.Triggers[0].Type != EffectConfetti {
		t.Errorf("First trigger should be confetti, got '%s'", p.Triggers[0].Type)
	}
	if p.Triggers[0].Intensity != IntensityHigh {
		t.Errorf("Expected intensity high, got '%s'", p.Triggers[0].Intensity)
	}
	if p.Triggers[1].Type != EffectFireworks {
		t.Errorf("Second trigger should be fireworks, got '%s'", p.Triggers[1].Type)
	}
	if p.Triggers[1].Count != 3 {
		t.Errorf("Expected count 3, got %d", p.Triggers[1].Count)
	}
}

// TestDecode_InvalidJSON tests that malformed payloads return an error
func TestDecode_InvalidJSON(t *testing.T) {
	if _, err := Decode([]byte(`{not json`)); err == nil {
		t.Error("Decode should fail on malformed JSON")
	}
}

// TestDecode_DisabledPayload tests that a disabled payload decodes cleanly
func TestDecode_DisabledPayload(t *testing.T) {
	p, err := Decode([]byte(`{"excitement_enabled": false}`))
	if err != nil {
		t.Fatalf("Failed to decode disabled payload: %v", err)
	}
	if p.ExcitementEnabled {
		t.Error("ExcitementEnabled should be false")
	}
	if len(p.Triggers) != 0 {
		t.Errorf("Expected no triggers, got %d", len(p.Triggers))
	}
}

// TestIntensityParticleCount tests the three intensity tiers and the fallback
func TestIntensityParticleCount(t *testing.T) {
	cases := []struct {
		intensity Intensity
		expected  int
	}{
		{IntensityLow, 50},
		{IntensityMedium, 100},
		{IntensityHigh, 150},
		{Intensity("extreme"), 50}, // 未知强度按最低档处理
		{Intensity(""), 50},
	}

	for _, c := range cases {
		if got := c.intensity.ParticleCount(); got != c.expected {
			t.Errorf("Intensity '%s': expected %d particles, got %d", c.intensity, c.expected, got)
		}
	}
}

// TestNormalized_SparklesAlias tests the explicit sparkles → confetti(low) mapping
func TestNormalized_SparklesAlias(t *testing.T) {
	spec := TriggerSpec{
		Type:      EffectSparkles,
		Colors:    []string{"#FFD700", "#FFFFFF"},
		Intensity: IntensityHigh, // 必须被强制覆盖为 low
		Duration:  1500,
		Message:   "sparkle",
	}

	normalized, ok := spec.Normalized()
	if !ok {
		t.Fatal("sparkles should normalize to a routable spec")
	}
	if normalized.Type != EffectConfetti {
		t.Errorf("Expected confetti after aliasing, got '%s'", normalized.Type)
	}
	if normalized.Intensity != IntensityLow {
		t.Errorf("Expected intensity forced to low, got '%s'", normalized.Intensity)
	}

	// 其余字段必须原样保留
	if normalized.Duration != 1500 || normalized.Message != "sparkle" {
		t.Error("Aliasing should preserve all other fields")
	}
	if len(normalized.Colors) != 2 {
		t.Error("Aliasing should preserve the color set")
	}
}

// TestNormalized_KnownKinds tests that the three real kinds pass through unchanged
func TestNormalized_KnownKinds(t *testing.T) {
	for _, kind := range []EffectKind{EffectConfetti, EffectBalloons, EffectFireworks} {
		spec := TriggerSpec{Type: kind, Intensity: IntensityMedium}
		normalized, ok := spec.Normalized()
		if !ok {
			t.Errorf("Kind '%s' should be routable", kind)
		}
		if normalized.Type != kind {
			t.Errorf("Kind '%s' should pass through unchanged, got '%s'", kind, normalized.Type)
		}
		if normalized.Intensity != IntensityMedium {
			t.Errorf("Kind '%s' should not have its intensity rewritten", kind)
		}
	}
}

// TestNormalized_UnknownKind tests that unknown kinds are flagged for silent drop
func TestNormalized_UnknownKind(t *testing.T) {
	spec := TriggerSpec{Type: EffectKind("lasers")}
	if _, ok := spec.Normalized(); ok {
		t.Error("Unknown kind should not be routable")
	}
}

// TestDurationOrDefault tests per-kind duration defaults
func TestDurationOrDefault(t *testing.T) {
	explicit := TriggerSpec{Type: EffectConfetti, Duration: 1200}
	if explicit.DurationOrDefault() != 1200 {
		t.Error("Explicit duration should be used as-is")
	}

	if (TriggerSpec{Type: EffectConfetti}).DurationOrDefault() != 3000 {
		t.Error("Confetti default duration should be 3000ms")
	}
	if (TriggerSpec{Type: EffectBalloons}).DurationOrDefault() != 2500 {
		t.Error("Balloons default duration should be 2500ms")
	}
	if (TriggerSpec{Type: EffectFireworks}).DurationOrDefault() != 3000 {
		t.Error("Fireworks default duration should be 3000ms")
	}
}
