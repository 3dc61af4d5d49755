package overlay

import (
	"testing"

	"github.com/gonewx/fanfare/internal/payload"
)

func TestDefaultReturnsSharedInstance(t *testing.T) {
	first := Default()
	second := Default()

	if first == nil {
		t.Fatal("Default() returned nil")
	}
	// 重复调用必须返回同一个实例
	if first != second {
		t.Error("Default() must return the same instance on every call")
	}
}

func TestDefaultInstanceIsUsable(t *testing.T) {
	ov := Default()

	ov.Trigger(&payload.ExcitementPayload{
		ExcitementEnabled: true,
		Triggers: []payload.TriggerSpec{
			{Type: payload.EffectConfetti, Intensity: payload.IntensityLow},
		},
	})

	if !ov.Active() {
		t.Fatal("Default instance should accept triggers")
	}

	// 跑完整个生命周期, 共享实例回到空闲状态, 不影响后续测试
	for i := 0; i < 130; i++ {
		ov.Update(0.05)
	}
	if ov.Active() {
		t.Error("Default instance should tear down like any other")
	}
}
