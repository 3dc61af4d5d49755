package systems

import (
	"github.com/gonewx/fanfare/pkg/components"
	"github.com/gonewx/fanfare/pkg/config"
	"github.com/gonewx/fanfare/pkg/ecs"
)

// MessageSystem manages the single text overlay shown alongside effects.
// The overlay entity is created lazily on the first Show call and reused
// afterwards: showing a new message while a fade is pending resets the
// text and opacity and restarts the timers instead of stacking a second
// overlay. The message lifetime is independent of particle lifetimes.
//
// Follows ECS zero-coupling principle: communicates only through EntityManager.
type MessageSystem struct {
	EntityManager *ecs.EntityManager
}

// NewMessageSystem creates a new MessageSystem instance.
func NewMessageSystem(em *ecs.EntityManager) *MessageSystem {
	return &MessageSystem{EntityManager: em}
}

// Show displays text at full opacity and schedules the fade.
// holdSeconds 为完全不透明的保持时长, 传 0 使用默认值;
// 淡出过渡时长固定为 MessageFadeDuration。
func (s *MessageSystem) Show(text string, holdSeconds float64) {
	if holdSeconds <= 0 {
		holdSeconds = config.MessageFadeDelay
	}

	// 复用已有的消息实体, 不叠加第二个浮层
	existing := ecs.GetEntitiesWith1[*components.MessageComponent](s.EntityManager)
	if len(existing) > 0 {
		msg, ok := ecs.GetComponent[*components.MessageComponent](s.EntityManager, existing[0])
		if ok {
			msg.Text = text
			msg.Alpha = 1.0
			msg.HoldRemaining = holdSeconds
			msg.FadeRemaining = config.MessageFadeDuration
			return
		}
	}

	id := s.EntityManager.CreateEntity()
	s.EntityManager.AddComponent(id, &components.MessageComponent{
		Text:          text,
		Alpha:         1.0,
		HoldRemaining: holdSeconds,
		FadeRemaining: config.MessageFadeDuration,
	})
}

// Update advances hold and fade timers; the entity is marked for
// destruction once the fade completes.
func (s *MessageSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith1[*components.MessageComponent](s.EntityManager)

	for _, id := range entities {
		msg, ok := ecs.GetComponent[*components.MessageComponent](s.EntityManager, id)
		if !ok {
			continue
		}

		if msg.HoldRemaining > 0 {
			msg.HoldRemaining -= dt
			continue
		}

		msg.FadeRemaining -= dt
		if msg.FadeRemaining <= 0 {
			msg.Alpha = 0
			s.EntityManager.DestroyEntity(id)
			continue
		}
		msg.Alpha = msg.FadeRemaining / config.MessageFadeDuration
	}
}

// Active 返回当前是否存在未淡出完毕的消息
func (s *MessageSystem) Active() bool {
	return len(ecs.GetEntitiesWith1[*components.MessageComponent](s.EntityManager)) > 0
}
