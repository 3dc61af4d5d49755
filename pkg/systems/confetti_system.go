package systems

import (
	"math/rand"

	"github.com/gonewx/fanfare/internal/payload"
	"github.com/gonewx/fanfare/pkg/components"
	"github.com/gonewx/fanfare/pkg/config"
	"github.com/gonewx/fanfare/pkg/ecs"
)

// ConfettiSystem owns the spawn rules and per-frame physics for confetti
// particles. Each particle starts just above the top edge with a random
// downward+lateral velocity and falls under constant gravity while its
// life ticks down; the render system draws it as a rotated square with
// opacity equal to its remaining life.
//
// Follows ECS zero-coupling principle: communicates only through EntityManager.
type ConfettiSystem struct {
	EntityManager *ecs.EntityManager

	// 视口尺寸, 决定生成范围
	viewportWidth  float64
	viewportHeight float64
}

// NewConfettiSystem creates a new ConfettiSystem instance.
func NewConfettiSystem(em *ecs.EntityManager, viewportWidth, viewportHeight float64) *ConfettiSystem {
	return &ConfettiSystem{
		EntityManager:  em,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
	}
}

// Resize 更新视口尺寸
func (s *ConfettiSystem) Resize(width, height float64) {
	s.viewportWidth = width
	s.viewportHeight = height
}

// Spawn creates one particle batch for the given trigger spec.
// The particle count is derived from the intensity tier
// (low/medium/high → 50/100/150, anything else → 50).
func (s *ConfettiSystem) Spawn(spec payload.TriggerSpec) {
	count := spec.Intensity.ParticleCount()

	for i := 0; i < count; i++ {
		id := s.EntityManager.CreateEntity()

		s.EntityManager.AddComponent(id, &components.PositionComponent{
			X: rand.Float64() * s.viewportWidth,
			Y: config.ConfettiSpawnY,
		})
		s.EntityManager.AddComponent(id, &components.ConfettiComponent{
			VelocityX:     (rand.Float64() - 0.5) * 2 * config.ConfettiLateralSpeed,
			VelocityY:     config.ConfettiFallSpeedMin + rand.Float64()*(config.ConfettiFallSpeedMax-config.ConfettiFallSpeedMin),
			Rotation:      rand.Float64() * 360,
			RotationSpeed: (rand.Float64() - 0.5) * 2 * config.ConfettiSpinSpeed,
			Color:         payload.RandomColor(spec.Colors),
			Size:          config.ConfettiSizeMin + rand.Float64()*(config.ConfettiSizeMax-config.ConfettiSizeMin),
			Life:          1.0,
		})
	}
}

// Update advances all confetti particles by dt seconds and marks expired
// ones for destruction. Actual removal happens in RemoveMarkedEntities at
// the end of the frame.
func (s *ConfettiSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith2[
		*components.ConfettiComponent,
		*components.PositionComponent,
	](s.EntityManager)

	for _, id := range entities {
		particle, ok := ecs.GetComponent[*components.ConfettiComponent](s.EntityManager, id)
		if !ok {
			continue
		}
		position, ok := ecs.GetComponent[*components.PositionComponent](s.EntityManager, id)
		if !ok {
			continue
		}

		// 速度积分 + 重力
		position.X += particle.VelocityX * dt
		position.Y += particle.VelocityY * dt
		particle.VelocityY += config.ConfettiGravity * dt

		// 旋转
		particle.Rotation += particle.RotationSpeed * dt

		// 生命值单调递减
		particle.Life -= config.ConfettiLifeDecay * dt
		if particle.Life <= 0 {
			s.EntityManager.DestroyEntity(id)
		}
	}
}

// ActiveCount 返回当前存活的彩纸屑粒子数量
func (s *ConfettiSystem) ActiveCount() int {
	return len(ecs.GetEntitiesWith1[*components.ConfettiComponent](s.EntityManager))
}
