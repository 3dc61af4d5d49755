package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/gonewx/fanfare/internal/payload"
	"github.com/gonewx/fanfare/pkg/components"
	"github.com/gonewx/fanfare/pkg/config"
	"github.com/gonewx/fanfare/pkg/ecs"
)

// FireworkSystem owns the two-phase firework effect: rockets ascend from
// the bottom edge toward an independently randomized apex, then burst
// into a fixed number of radially seeded sparks.
//
// All rockets and sparks are advanced by this one centrally driven update
// loop; a rocket's phase field is the only state machine involved. There
// are no per-rocket callback chains, so the total per-frame cost is
// proportional to the live entity count.
//
// Follows ECS zero-coupling principle: communicates only through EntityManager.
type FireworkSystem struct {
	EntityManager *ecs.EntityManager

	viewportWidth  float64
	viewportHeight float64
}

// NewFireworkSystem creates a new FireworkSystem instance.
func NewFireworkSystem(em *ecs.EntityManager, viewportWidth, viewportHeight float64) *FireworkSystem {
	return &FireworkSystem{
		EntityManager:  em,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
	}
}

// Resize 更新视口尺寸
func (s *FireworkSystem) Resize(width, height float64) {
	s.viewportWidth = width
	s.viewportHeight = height
}

// Spawn creates spec.Count launch points along the bottom edge. Launch i
// is delayed by i × RocketLaunchStagger so bursts don't land on the same
// frame; the stagger is local to this spawn and independent of the
// dispatcher's payload stagger.
func (s *FireworkSystem) Spawn(spec payload.TriggerSpec) {
	for i := 0; i < spec.Count; i++ {
		id := s.EntityManager.CreateEntity()

		s.EntityManager.AddComponent(id, &components.PositionComponent{
			X: rand.Float64() * s.viewportWidth,
			Y: s.viewportHeight,
		})
		s.EntityManager.AddComponent(id, &components.RocketComponent{
			// 目标高度在视口上半部随机, 每个发射点独立
			TargetY:     config.RocketApexMarginTop + rand.Float64()*s.viewportHeight*0.5,
			VelocityY:   -config.RocketAscentSpeed,
			Color:       payload.ColorAt(spec.Colors, i),
			Phase:       components.RocketPhasePending,
			LaunchDelay: float64(i) * config.RocketLaunchStagger,
		})
	}
}

// Update advances rockets and sparks by dt seconds.
func (s *FireworkSystem) Update(dt float64) {
	s.updateRockets(dt)
	s.updateSparks(dt)
}

// updateRockets 推进火箭状态机: pending → ascending → exploded
func (s *FireworkSystem) updateRockets(dt float64) {
	entities := ecs.GetEntitiesWith2[
		*components.RocketComponent,
		*components.PositionComponent,
	](s.EntityManager)

	for _, id := range entities {
		rocket, ok := ecs.GetComponent[*components.RocketComponent](s.EntityManager, id)
		if !ok {
			continue
		}
		position, ok := ecs.GetComponent[*components.PositionComponent](s.EntityManager, id)
		if !ok {
			continue
		}

		switch rocket.Phase {
		case components.RocketPhasePending:
			rocket.LaunchDelay -= dt
			if rocket.LaunchDelay <= 0 {
				rocket.Phase = components.RocketPhaseAscending
			}

		case components.RocketPhaseAscending:
			position.Y += rocket.VelocityY * dt

			// 到达或越过目标高度: 状态恰好翻转一次, 火箭当帧销毁,
			// 在爆炸点生成一组火花
			if position.Y <= rocket.TargetY {
				rocket.Phase = components.RocketPhaseExploded
				s.spawnBurst(position.X, position.Y, rocket.Color)
				s.EntityManager.DestroyEntity(id)
			}
		}
	}
}

// spawnBurst emits exactly SparkCount sparks at even angular spacing
// around the explosion point. Speed magnitude and decay rate are
// randomized per spark within fixed bands.
func (s *FireworkSystem) spawnBurst(x, y float64, clr color.RGBA) {
	for i := 0; i < config.SparkCount; i++ {
		angle := 2 * math.Pi * float64(i) / float64(config.SparkCount)
		speed := config.SparkSpeedMin + rand.Float64()*(config.SparkSpeedMax-config.SparkSpeedMin)

		id := s.EntityManager.CreateEntity()
		s.EntityManager.AddComponent(id, &components.PositionComponent{X: x, Y: y})
		s.EntityManager.AddComponent(id, &components.SparkComponent{
			VelocityX: math.Cos(angle) * speed,
			VelocityY: math.Sin(angle) * speed,
			Color:     clr,
			Life:      1.0,
			DecayRate: config.SparkDecayMin + rand.Float64()*(config.SparkDecayMax-config.SparkDecayMin),
		})
	}
}

// updateSparks 推进火花: 速度积分 + 重力 + 生命值衰减
func (s *FireworkSystem) updateSparks(dt float64) {
	entities := ecs.GetEntitiesWith2[
		*components.SparkComponent,
		*components.PositionComponent,
	](s.EntityManager)

	for _, id := range entities {
		spark, ok := ecs.GetComponent[*components.SparkComponent](s.EntityManager, id)
		if !ok {
			continue
		}
		position, ok := ecs.GetComponent[*components.PositionComponent](s.EntityManager, id)
		if !ok {
			continue
		}

		position.X += spark.VelocityX * dt
		position.Y += spark.VelocityY * dt
		spark.VelocityY += config.SparkGravity * dt

		spark.Life -= spark.DecayRate * dt
		if spark.Life <= 0 {
			s.EntityManager.DestroyEntity(id)
		}
	}
}

// ActiveCount 返回当前存活的火箭与火花总数
func (s *FireworkSystem) ActiveCount() int {
	rockets := ecs.GetEntitiesWith1[*components.RocketComponent](s.EntityManager)
	sparks := ecs.GetEntitiesWith1[*components.SparkComponent](s.EntityManager)
	return len(rockets) + len(sparks)
}
