package systems

import (
	"bytes"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gonewx/fanfare/pkg/components"
	"github.com/gonewx/fanfare/pkg/config"
	"github.com/gonewx/fanfare/pkg/ecs"
)

// RenderSystem draws every active effect entity onto the overlay surface.
// It owns no entity state: all drawing inputs come from components, so the
// same frame renders identically however many times Draw is invoked.
type RenderSystem struct {
	EntityManager *ecs.EntityManager

	viewportWidth  float64
	viewportHeight float64

	// 纸屑用单像素白图做仿射变换着色, 避免每帧分配
	whitePixel *ebiten.Image

	messageFace *text.GoTextFace
}

// NewRenderSystem creates a new RenderSystem instance.
func NewRenderSystem(em *ecs.EntityManager, viewportWidth, viewportHeight float64) *RenderSystem {
	s := &RenderSystem{
		EntityManager:  em,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
	}

	s.whitePixel = ebiten.NewImage(1, 1)
	s.whitePixel.Fill(color.White)

	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		// 字体数据是内嵌的, 正常情况下不会失败; 失败时跳过消息渲染
		log.Printf("[RenderSystem] ERROR: failed to load message font: %v", err)
	} else {
		s.messageFace = &text.GoTextFace{
			Source: source,
			Size:   config.MessageFontSize,
		}
	}

	return s
}

// Resize 更新视口尺寸
func (s *RenderSystem) Resize(width, height float64) {
	s.viewportWidth = width
	s.viewportHeight = height
}

// Draw renders confetti, balloons, fireworks and the message overlay.
// now 是调度时钟当前值(秒), 驱动气球的摆动动画。
func (s *RenderSystem) Draw(surface *ebiten.Image, now float64) {
	s.drawConfetti(surface)
	s.drawBalloons(surface, now)
	s.drawRockets(surface)
	s.drawSparks(surface)
	s.drawMessage(surface)
}

func (s *RenderSystem) drawConfetti(surface *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ConfettiComponent](s.EntityManager)

	for _, id := range entities {
		position, ok1 := ecs.GetComponent[*components.PositionComponent](s.EntityManager, id)
		confetti, ok2 := ecs.GetComponent[*components.ConfettiComponent](s.EntityManager, id)
		if !ok1 || !ok2 {
			continue
		}

		// 绕中心旋转的小矩形, 透明度随剩余寿命衰减
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(confetti.Size, confetti.Size)
		op.GeoM.Translate(-confetti.Size/2, -confetti.Size/2)
		op.GeoM.Rotate(confetti.Rotation * math.Pi / 180)
		op.GeoM.Translate(position.X, position.Y)
		op.ColorScale.ScaleWithColor(confetti.Color)
		op.ColorScale.ScaleAlpha(float32(clamp01(confetti.Life)))
		surface.DrawImage(s.whitePixel, op)
	}
}

func (s *RenderSystem) drawBalloons(surface *ebiten.Image, now float64) {
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.BalloonComponent](s.EntityManager)

	for _, id := range entities {
		position, ok1 := ecs.GetComponent[*components.PositionComponent](s.EntityManager, id)
		balloon, ok2 := ecs.GetComponent[*components.BalloonComponent](s.EntityManager, id)
		if !ok1 || !ok2 {
			continue
		}

		alpha := float32(clamp01(balloon.Life))
		bob := math.Sin(now*config.BalloonBobRate+balloon.BobPhase) * config.BalloonBobAmplitude
		cx, cy, radius := balloonBodyGeometry(position.X, position.Y, bob, balloon.Size)

		body := balloon.Color
		body.A = uint8(float64(body.A) * clamp01(balloon.Life))
		vector.DrawFilledCircle(surface, cx, cy, radius, body, true)

		// 气球下方的吊绳
		stringColor := color.RGBA{A: uint8(255 * alpha)}
		vector.StrokeLine(surface, cx, cy+radius, cx, cy+radius+config.BalloonStringLength, 1, stringColor, true)
	}
}

func (s *RenderSystem) drawRockets(surface *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.RocketComponent](s.EntityManager)

	for _, id := range entities {
		position, ok1 := ecs.GetComponent[*components.PositionComponent](s.EntityManager, id)
		rocket, ok2 := ecs.GetComponent[*components.RocketComponent](s.EntityManager, id)
		if !ok1 || !ok2 {
			continue
		}
		// 等待发射或已爆炸的火箭不画
		if rocket.Phase != components.RocketPhaseAscending {
			continue
		}

		left, top := rocketBarGeometry(position.X, position.Y)
		vector.DrawFilledRect(surface,
			left, top,
			config.RocketBarWidth, config.RocketBarHeight,
			rocket.Color, false)
	}
}

func (s *RenderSystem) drawSparks(surface *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.SparkComponent](s.EntityManager)

	for _, id := range entities {
		position, ok1 := ecs.GetComponent[*components.PositionComponent](s.EntityManager, id)
		spark, ok2 := ecs.GetComponent[*components.SparkComponent](s.EntityManager, id)
		if !ok1 || !ok2 {
			continue
		}

		dot := spark.Color
		dot.A = uint8(float64(dot.A) * clamp01(spark.Life))
		vector.DrawFilledRect(surface,
			float32(position.X-config.SparkDotSize/2), float32(position.Y-config.SparkDotSize/2),
			config.SparkDotSize, config.SparkDotSize,
			dot, false)
	}
}

func (s *RenderSystem) drawMessage(surface *ebiten.Image) {
	if s.messageFace == nil {
		return
	}

	entities := ecs.GetEntitiesWith1[*components.MessageComponent](s.EntityManager)
	for _, id := range entities {
		msg, ok := ecs.GetComponent[*components.MessageComponent](s.EntityManager, id)
		if !ok || msg.Text == "" || msg.Alpha <= 0 {
			continue
		}

		centerX := s.viewportWidth / 2
		centerY := s.viewportHeight * config.MessageTopRatio
		s.drawCenteredTextTTF(surface, msg.Text, centerX, centerY, float32(msg.Alpha))
	}
}

// drawCenteredTextTTF 绘制居中文本（白色文字 + 黑色描边）
func (s *RenderSystem) drawCenteredTextTTF(surface *ebiten.Image, textStr string, centerX, centerY float64, alpha float32) {
	width, _ := text.Measure(textStr, s.messageFace, 0)
	x := centerX - width/2
	y := centerY

	// 黑色描边: 8 个方向各偏移 1 像素
	strokeColor := color.RGBA{A: 255}
	strokeOffsets := []struct{ dx, dy float64 }{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	for _, offset := range strokeOffsets {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+offset.dx, y+offset.dy)
		op.ColorScale.ScaleWithColor(strokeColor)
		op.ColorScale.ScaleAlpha(alpha)
		text.Draw(surface, textStr, s.messageFace, op)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(surface, textStr, s.messageFace, op)
}

// balloonBodyGeometry 计算气球圆形主体的绘制参数
// Size 本身就是半径, 摆动偏移只作用于横坐标
func balloonBodyGeometry(x, y, bob, size float64) (cx, cy, radius float32) {
	return float32(x + bob), float32(y), float32(size)
}

// rocketBarGeometry 计算火箭竖条的左上角
// 位置坐标是竖条的底端中点, 竖条由此向上延伸
func rocketBarGeometry(x, y float64) (left, top float32) {
	return float32(x - config.RocketBarWidth/2), float32(y - config.RocketBarHeight)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
