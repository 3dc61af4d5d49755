package systems

import (
	"github.com/gonewx/fanfare/internal/payload"
	"github.com/gonewx/fanfare/pkg/config"
)

// scheduledTrigger 是等待到期的效果触发请求
type scheduledTrigger struct {
	spec payload.TriggerSpec
	due  float64 // 相对内部时钟的到期时刻(秒)
	seq  int     // 入队序号, 同刻到期时保证先进先出
}

// DispatchSystem schedules trigger specs against an internal clock and
// routes each one to the matching effect system when it comes due.
// Triggers from a single payload are staggered by DispatchStagger so
// overlapping effects read as a sequence rather than a single burst.
//
// 时钟只在 Update 中推进, 不依赖真实时间, 便于测试与暂停。
type DispatchSystem struct {
	Confetti *ConfettiSystem
	Balloons *BalloonSystem
	Firework *FireworkSystem
	Message  *MessageSystem

	clock   float64
	nextSeq int
	queue   []scheduledTrigger
}

// NewDispatchSystem creates a new DispatchSystem instance.
func NewDispatchSystem(confetti *ConfettiSystem, balloons *BalloonSystem, firework *FireworkSystem, message *MessageSystem) *DispatchSystem {
	return &DispatchSystem{
		Confetti: confetti,
		Balloons: balloons,
		Firework: firework,
		Message:  message,
	}
}

// Enqueue schedules the triggers with increasing stagger offsets.
// Unknown trigger types are dropped here; aliases are rewritten to
// their canonical form before scheduling.
func (s *DispatchSystem) Enqueue(triggers []payload.TriggerSpec) {
	for i, spec := range triggers {
		normalized, ok := spec.Normalized()
		if !ok {
			continue
		}
		s.queue = append(s.queue, scheduledTrigger{
			spec: normalized,
			due:  s.clock + float64(i)*config.DispatchStagger,
			seq:  s.nextSeq,
		})
		s.nextSeq++
	}
}

// Update advances the clock and fires every trigger whose due time has
// passed, in scheduling order.
func (s *DispatchSystem) Update(dt float64) {
	s.clock += dt
	if len(s.queue) == 0 {
		return
	}

	// 保留未到期的触发, 到期的按序号顺序触发
	remaining := s.queue[:0]
	var due []scheduledTrigger
	for _, t := range s.queue {
		if t.due <= s.clock {
			due = append(due, t)
		} else {
			remaining = append(remaining, t)
		}
	}
	s.queue = remaining

	for i := 1; i < len(due); i++ {
		for j := i; j > 0 && due[j].seq < due[j-1].seq; j-- {
			due[j], due[j-1] = due[j-1], due[j]
		}
	}
	for _, t := range due {
		s.fire(t.spec)
	}
}

func (s *DispatchSystem) fire(spec payload.TriggerSpec) {
	switch spec.Type {
	case payload.EffectConfetti:
		s.Confetti.Spawn(spec)
	case payload.EffectBalloons:
		s.Balloons.Spawn(spec)
	case payload.EffectFireworks:
		s.Firework.Spawn(spec)
	}

	if spec.Message != "" && s.Message != nil {
		s.Message.Show(spec.Message, float64(spec.DurationOrDefault())/1000.0)
	}
}

// Pending 返回尚未触发的排队数量
func (s *DispatchSystem) Pending() int {
	return len(s.queue)
}

// Clock 返回内部时钟当前值(秒), 供渲染侧的摆动动画使用
func (s *DispatchSystem) Clock() float64 {
	return s.clock
}
