package systems

import (
	"math"
	"math/rand"

	"github.com/gonewx/fanfare/internal/payload"
	"github.com/gonewx/fanfare/pkg/components"
	"github.com/gonewx/fanfare/pkg/config"
	"github.com/gonewx/fanfare/pkg/ecs"
)

// BalloonSystem owns the spawn rules and per-frame physics for balloons.
// Balloons start below the bottom edge and rise with a small lateral
// drift; a sinusoidal horizontal bob is applied at render time from the
// per-balloon phase offset. Compared to confetti they decay slowly, so a
// balloon usually leaves through the top edge before its life runs out.
//
// Follows ECS zero-coupling principle: communicates only through EntityManager.
type BalloonSystem struct {
	EntityManager *ecs.EntityManager

	viewportWidth  float64
	viewportHeight float64
}

// NewBalloonSystem creates a new BalloonSystem instance.
func NewBalloonSystem(em *ecs.EntityManager, viewportWidth, viewportHeight float64) *BalloonSystem {
	return &BalloonSystem{
		EntityManager:  em,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
	}
}

// Resize 更新视口尺寸
func (s *BalloonSystem) Resize(width, height float64) {
	s.viewportWidth = width
	s.viewportHeight = height
}

// Spawn creates spec.Count balloons below the bottom edge.
// Unlike confetti the count is explicit, not tiered.
func (s *BalloonSystem) Spawn(spec payload.TriggerSpec) {
	for i := 0; i < spec.Count; i++ {
		id := s.EntityManager.CreateEntity()

		// 留出左右边距, 避免气球贴边或越界生成
		spawnRange := s.viewportWidth - 2*config.BalloonSpawnMargin
		if spawnRange < 0 {
			spawnRange = s.viewportWidth
		}

		s.EntityManager.AddComponent(id, &components.PositionComponent{
			X: config.BalloonSpawnMargin + rand.Float64()*spawnRange,
			Y: s.viewportHeight + config.BalloonSpawnOffsetY,
		})
		s.EntityManager.AddComponent(id, &components.BalloonComponent{
			VelocityX: (rand.Float64() - 0.5) * 2 * config.BalloonDriftSpeed,
			VelocityY: -(config.BalloonRiseSpeedMin + rand.Float64()*(config.BalloonRiseSpeedMax-config.BalloonRiseSpeedMin)),
			Color:     payload.RandomColor(spec.Colors),
			Size:      config.BalloonSizeMin + rand.Float64()*(config.BalloonSizeMax-config.BalloonSizeMin),
			BobPhase:  rand.Float64() * 2 * math.Pi,
			Life:      1.0,
		})
	}
}

// Update advances all balloons by dt seconds. A balloon is marked for
// destruction when its life reaches zero OR it has passed fully above
// the top edge, whichever happens first.
func (s *BalloonSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith2[
		*components.BalloonComponent,
		*components.PositionComponent,
	](s.EntityManager)

	for _, id := range entities {
		balloon, ok := ecs.GetComponent[*components.BalloonComponent](s.EntityManager, id)
		if !ok {
			continue
		}
		position, ok := ecs.GetComponent[*components.PositionComponent](s.EntityManager, id)
		if !ok {
			continue
		}

		position.X += balloon.VelocityX * dt
		position.Y += balloon.VelocityY * dt

		// 生命值单调递减(比彩纸屑慢)
		balloon.Life -= config.BalloonLifeDecay * dt

		if balloon.Life <= 0 || position.Y < -balloon.Size {
			s.EntityManager.DestroyEntity(id)
		}
	}
}

// ActiveCount 返回当前存活的气球数量
func (s *BalloonSystem) ActiveCount() int {
	return len(ecs.GetEntitiesWith1[*components.BalloonComponent](s.EntityManager))
}
