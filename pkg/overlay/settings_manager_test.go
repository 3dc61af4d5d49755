package overlay

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func TestSettingsManagerDegradedMode(t *testing.T) {
	// gdata 管理器为 nil 时使用默认设置, Save 不报错
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}

	settings := sm.GetSettings()
	if !settings.Enabled || !settings.ConfettiEnabled || !settings.FireworksEnabled {
		t.Error("Expected all effects enabled by default")
	}

	if err := sm.Save(); err != nil {
		t.Errorf("Save in degraded mode should not fail: %v", err)
	}
}

func TestSettingsLoadSaveRoundTrip(t *testing.T) {
	// 使用临时目录创建 gdata manager
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "test_excitement_settings",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}

	// 修改设置并保存
	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	sm1.SetEnabled(false)
	sm1.SetEffectEnabled("fireworks", false)
	sm1.SetMessagesEnabled(false)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 新的管理器从存储加载同样的状态
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()
	if settings.Enabled {
		t.Error("Loaded Enabled: got true, want false")
	}
	if settings.FireworksEnabled {
		t.Error("Loaded FireworksEnabled: got true, want false")
	}
	if settings.MessagesEnabled {
		t.Error("Loaded MessagesEnabled: got true, want false")
	}
	// 未改动的开关保持默认
	if !settings.BalloonsEnabled {
		t.Error("Loaded BalloonsEnabled: got false, want true")
	}
}

func TestSettingsEnvOverrides(t *testing.T) {
	t.Setenv("UI_EXCITEMENT_ENABLED", "false")
	t.Setenv("UI_EXCITEMENT_BALLOONS", "0")

	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}

	settings := sm.GetSettings()
	if settings.Enabled {
		t.Error("Expected master switch disabled via env")
	}
	if settings.BalloonsEnabled {
		t.Error("Expected balloons disabled via env")
	}
	// 未设置的环境变量不影响对应开关
	if !settings.ConfettiEnabled {
		t.Error("Confetti should stay at default")
	}
}

func TestSettingsEnvOverrideInvalidValueIgnored(t *testing.T) {
	t.Setenv("UI_EXCITEMENT_ENABLED", "definitely")

	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}

	if !sm.GetSettings().Enabled {
		t.Error("Invalid env value should be ignored, keeping default")
	}
}

func TestAllowsKind(t *testing.T) {
	settings := DefaultExcitementSettings()
	settings.ConfettiEnabled = false

	cases := []struct {
		kind    string
		allowed bool
	}{
		{"confetti", false},
		{"sparkles", false}, // sparkles 跟随 confetti 开关
		{"balloons", true},
		{"fireworks", true},
		{"lasers", false}, // 未知类型一律不放行
	}
	for _, c := range cases {
		if got := settings.AllowsKind(c.kind); got != c.allowed {
			t.Errorf("AllowsKind(%q): expected %v, got %v", c.kind, c.allowed, got)
		}
	}

	// 总开关关闭时全部不放行
	settings.Enabled = false
	if settings.AllowsKind("balloons") {
		t.Error("Master switch off should block everything")
	}
}

func TestSetEffectEnabled(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetEffectEnabled("fireworks", false)
	if sm.GetSettings().FireworksEnabled {
		t.Error("Expected fireworks disabled")
	}

	sm.SetEffectEnabled("sparkles", false)
	if sm.GetSettings().ConfettiEnabled {
		t.Error("sparkles alias should toggle the confetti switch")
	}
}
