// Package overlay implements the ephemeral visual feedback layer: a
// transparent rendering surface drawn on top of the host application,
// showing confetti, balloons, fireworks and a short text message in
// response to decision-engine verdicts.
//
// The layer is fully self-erasing. The surface is created lazily on the
// first trigger and torn down automatically once every effect has run
// its course, so an idle overlay costs nothing per frame.
package overlay

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/fanfare/internal/payload"
	"github.com/gonewx/fanfare/pkg/config"
	"github.com/gonewx/fanfare/pkg/ecs"
	"github.com/gonewx/fanfare/pkg/systems"
)

// Overlay is the explicit context object for one feedback layer.
// Hosts create one per window and thread it through their frame loop;
// separate instances never contend for state. Single-window hosts can
// use the shared Default() instance instead of carrying their own.
//
// 宿主集成方式:
//
//	ov := overlay.New(800, 600, nil)
//	ov.TriggerPayload(data)        // 收到决策引擎载荷时
//	ov.Update(1.0 / 60.0)          // 每帧
//	ov.Draw(screen)                // 每帧, 在宿主内容之后
type Overlay struct {
	entityManager *ecs.EntityManager

	confetti *systems.ConfettiSystem
	balloons *systems.BalloonSystem
	firework *systems.FireworkSystem
	message  *systems.MessageSystem
	dispatch *systems.DispatchSystem
	render   *systems.RenderSystem

	settings *SettingsManager
	themes   map[config.ThemeKey][]config.TriggerTemplate

	width  int
	height int

	// surface 惰性创建的离屏渲染表面, 空闲时为 nil
	surface *ebiten.Image

	// 淡出收尾状态
	fadingOut     bool
	fadeRemaining float64
}

// New creates an overlay sized to the host viewport.
// settings may be nil, in which case every effect kind is allowed.
func New(width, height int, settings *SettingsManager) *Overlay {
	em := ecs.NewEntityManager()

	confetti := systems.NewConfettiSystem(em, float64(width), float64(height))
	balloons := systems.NewBalloonSystem(em, float64(width), float64(height))
	firework := systems.NewFireworkSystem(em, float64(width), float64(height))
	message := systems.NewMessageSystem(em)

	return &Overlay{
		entityManager: em,
		confetti:      confetti,
		balloons:      balloons,
		firework:      firework,
		message:       message,
		dispatch:      systems.NewDispatchSystem(confetti, balloons, firework, message),
		render:        systems.NewRenderSystem(em, float64(width), float64(height)),
		settings:      settings,
		themes:        config.DefaultThemes,
		width:         width,
		height:        height,
	}
}

// SetThemes 整体替换判定 → 效果的主题表(通常来自 LoadThemeConfig)
func (o *Overlay) SetThemes(themes map[config.ThemeKey][]config.TriggerTemplate) {
	if themes != nil {
		o.themes = themes
	}
}

// TriggerPayload 解码并应用一份决策引擎载荷
//
// 载荷里 excitement_enabled 为 false、解码失败或设置总开关关闭时
// 均为空操作, 不报错: 渲染层的失败不允许影响宿主。
func (o *Overlay) TriggerPayload(data []byte) {
	p, err := payload.Decode(data)
	if err != nil {
		return
	}
	o.Trigger(p)
}

// Trigger applies a decoded payload. When the payload carries no explicit
// trigger list, the verdict fields select one of the built-in themes.
func (o *Overlay) Trigger(p *payload.ExcitementPayload) {
	if p == nil || !p.ExcitementEnabled {
		return
	}
	if o.settings != nil && !o.settings.GetSettings().Enabled {
		return
	}

	triggers := p.Triggers
	if len(triggers) == 0 {
		triggers = GenerateTriggers(p.Verdict, p.Confidence, p.EchoSense, o.themes)
	}
	if o.settings != nil {
		triggers = FilterTriggers(triggers, o.settings.GetSettings())
	}
	if len(triggers) == 0 {
		return
	}

	o.ensureSurface()
	o.dispatch.Enqueue(triggers)
}

// TriggerVerdict 直接用判定字段触发默认主题, 供没有完整载荷的宿主使用
func (o *Overlay) TriggerVerdict(verdict string, confidence, echoSense float64) {
	o.Trigger(&payload.ExcitementPayload{
		ExcitementEnabled: true,
		Verdict:           verdict,
		Confidence:        confidence,
		EchoSense:         echoSense,
	})
}

// ensureSurface 创建或复用离屏渲染表面
//
// 收尾淡出中途来了新触发时取消淡出, 复用原表面。重复调用无副作用。
func (o *Overlay) ensureSurface() {
	o.fadingOut = false
	o.fadeRemaining = 0
	if o.surface != nil {
		return
	}
	o.surface = ebiten.NewImage(o.width, o.height)
}

// Update advances the layer by dt seconds. Safe to call while idle.
func (o *Overlay) Update(dt float64) {
	if o.surface == nil {
		return
	}

	o.dispatch.Update(dt)
	o.confetti.Update(dt)
	o.balloons.Update(dt)
	o.firework.Update(dt)
	o.message.Update(dt)

	// 帧末统一删除被标记的实体
	o.entityManager.RemoveMarkedEntities()

	if o.fadingOut {
		o.fadeRemaining -= dt
		if o.fadeRemaining <= 0 {
			o.teardown()
		}
		return
	}

	// 全部效果结束且没有待触发的排队项: 开始淡出收尾
	if o.idle() {
		o.fadingOut = true
		o.fadeRemaining = config.SurfaceFadeDuration
	}
}

// idle 返回是否没有任何存活实体和待触发项
func (o *Overlay) idle() bool {
	return o.dispatch.Pending() == 0 &&
		o.confetti.ActiveCount() == 0 &&
		o.balloons.ActiveCount() == 0 &&
		o.firework.ActiveCount() == 0 &&
		!o.message.Active()
}

// teardown 释放渲染表面并清空实体, 回到零开销的空闲状态
func (o *Overlay) teardown() {
	if o.surface != nil {
		o.surface.Deallocate()
		o.surface = nil
	}
	o.fadingOut = false
	o.fadeRemaining = 0
	o.entityManager.Clear()
}

// Draw composites the overlay onto the host screen. While idle this is a
// no-op, so hosts can call it unconditionally every frame.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.surface == nil {
		return
	}

	o.surface.Clear()
	o.render.Draw(o.surface, o.dispatch.Clock())

	op := &ebiten.DrawImageOptions{}
	if o.fadingOut {
		op.ColorScale.ScaleAlpha(float32(o.fadeRemaining / config.SurfaceFadeDuration))
	}
	screen.DrawImage(o.surface, op)
}

// Resize 适配宿主视口尺寸变化; 正在显示的表面按新尺寸重建
func (o *Overlay) Resize(width, height int) {
	if width == o.width && height == o.height {
		return
	}
	o.width = width
	o.height = height

	o.confetti.Resize(float64(width), float64(height))
	o.balloons.Resize(float64(width), float64(height))
	o.firework.Resize(float64(width), float64(height))
	o.render.Resize(float64(width), float64(height))

	if o.surface != nil {
		o.surface.Deallocate()
		o.surface = ebiten.NewImage(width, height)
	}
}

// Active 返回当前是否有可见内容(含淡出中的表面)
func (o *Overlay) Active() bool {
	return o.surface != nil
}
