package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/fanfare/internal/payload"
	"github.com/gonewx/fanfare/pkg/ecs"
)

func TestRenderSystemDrawAllEffectKinds(t *testing.T) {
	em := ecs.NewEntityManager()
	render := NewRenderSystem(em, 800, 600)
	surface := ebiten.NewImage(800, 600)

	// 铺满每种效果实体, 渲染不应崩溃
	NewConfettiSystem(em, 800, 600).Spawn(payload.TriggerSpec{
		Type: payload.EffectConfetti, Intensity: payload.IntensityLow,
	})
	NewBalloonSystem(em, 800, 600).Spawn(payload.TriggerSpec{
		Type: payload.EffectBalloons, Count: 3,
	})
	firework := NewFireworkSystem(em, 800, 600)
	firework.Spawn(payload.TriggerSpec{Type: payload.EffectFireworks, Count: 2})
	firework.Update(0.2) // 第一发火箭进入上升阶段
	NewMessageSystem(em).Show("render test", 3.0)

	render.Draw(surface, 1.5)

	// 渲染是纯读取, 不得标记或删除任何实体
	before := em.EntityCount()
	render.Draw(surface, 1.6)
	if em.EntityCount() != before {
		t.Errorf("Draw must not change entity count: before=%d after=%d", before, em.EntityCount())
	}
}

func TestRenderSystemDrawEmptyWorld(t *testing.T) {
	em := ecs.NewEntityManager()
	render := NewRenderSystem(em, 800, 600)
	surface := ebiten.NewImage(800, 600)

	// 空世界的 Draw 是安全的空操作
	render.Draw(surface, 0)
}

func TestBalloonBodyGeometryUsesSizeAsRadius(t *testing.T) {
	// Size 即半径, 不做二次折半; 摆动偏移只影响横坐标
	cx, cy, radius := balloonBodyGeometry(100, 200, 1.5, 40)

	if radius != 40 {
		t.Errorf("Expected radius 40 (Size is the radius), got %f", radius)
	}
	if cx != 101.5 {
		t.Errorf("Expected bob applied to X only, got cx=%f", cx)
	}
	if cy != 200 {
		t.Errorf("Expected Y unchanged by bob, got cy=%f", cy)
	}
}

func TestRocketBarGeometryExtendsUpward(t *testing.T) {
	left, top := rocketBarGeometry(300, 500)

	// 竖条以位置为底端: 左上角在 (x-宽/2, y-高)
	if left != 298 {
		t.Errorf("Expected left=298, got %f", left)
	}
	if top != 490 {
		t.Errorf("Expected top=490 (bar above the position point), got %f", top)
	}
}

func TestClamp01(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.4, 0.4},
		{1, 1},
		{1.7, 1},
	}
	for _, c := range cases {
		if got := clamp01(c.in); got != c.want {
			t.Errorf("clamp01(%f): expected %f, got %f", c.in, c.want, got)
		}
	}
}
