package components

import "image/color"

// ConfettiComponent represents a single confetti particle.
// It stores all the runtime state for an individual particle; position is
// managed via a separate PositionComponent.
//
// Particles are created by the ConfettiSystem in response to a dispatched
// trigger, updated each frame (velocity integration, gravity, rotation,
// life decay), and destroyed once Life reaches zero.
//
// This is a pure data component following ECS principles - it contains no methods.
type ConfettiComponent struct {
	// Velocity (速度, 像素/秒)
	VelocityX float64
	VelocityY float64

	// Rotation (旋转, 角度)
	Rotation      float64 // Current rotation angle in degrees
	RotationSpeed float64 // Rotation speed in degrees per second

	// Visual properties
	Color color.RGBA // 从触发规格的颜色集合中随机选取
	Size  float64    // Square edge length in pixels

	// Life (生命值, 0-1)
	// 每帧按固定速率递减, 渲染时作为不透明度使用, ≤0 时销毁
	Life float64
}
